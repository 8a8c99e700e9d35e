// Package mocks provides hand-written test doubles for the store and auth
// interfaces.
//
// Store mocks keep their rows in memory and count calls, so handler tests can
// assert that a rejected request never reached the database:
//
//	users := mocks.NewMockUserStore()
//	// ... drive the router ...
//	assert.Zero(t, users.Calls())
//
// Each mock also exposes function fields (for example ValidateTokenFn on
// MockJWTService) that override the default behavior for a single test.
// TestifyMockUserStore is the exception: it embeds mock.Mock for tests that
// set expectations with On/Return.
package mocks
