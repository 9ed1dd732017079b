// Package rest provides the low-level HTTP primitive shared by every
// Diversion API service group.
//
// The client exposes exactly four operations (Get, Post, Put and Delete),
// all relative to a single base URL. Requests carry the session cookie jar
// (authentication is cookie based), a JSON content type and a generated
// request ID. Responses are decoded as JSON; a 204 or empty body resolves
// to no result; non-2xx responses are decoded into *APIError.
//
// The client deliberately performs no retries, applies no timeouts and
// keeps no cache. Callers that need cancellation pass a context.
//
// Thread Safety: the client is safe for concurrent use. Its fields are
// immutable after construction and *http.Client is safe for concurrent use.
package rest
