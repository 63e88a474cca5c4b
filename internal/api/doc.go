// Package api holds the HTTP layer of the trivia, coffee and casting
// services: chi routers, handlers, request and response DTOs, and the single
// mapping from internal errors to JSON error bodies.
package api
