// Package service contains the application use cases. It orchestrates
// domain objects and the storage interfaces defined in internal/store,
// hashing passwords, applying partial updates and enforcing ownership when
// configured.
//
// The service layer depends on domain entities and store interfaces, never
// on a specific storage implementation.
package service
