// Package api handles incoming HTTP requests, request validation and
// response formatting for the blog. Handlers translate HTTP concerns to
// service calls and map service and store errors to status codes without
// leaking internal details.
package api
