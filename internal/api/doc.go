// Package api handles incoming HTTP requests: decoding and validating payloads,
// calling the services, and rendering their results and errors as JSON.
//
// Handlers never decide who may call them. The authorization gate in
// api/middleware runs first and binds an auth.Identity to the request context;
// handlers on authenticated routes read it back with auth.IdentityFromContext.
package api
