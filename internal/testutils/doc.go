// Package testutils provides helpers shared by the HTTP and service tests:
// HS256 token minting and JSON request/response helpers.
package testutils
