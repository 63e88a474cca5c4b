// Package auth verifies bearer tokens issued by an external identity
// provider and checks the permissions they grant.
//
// Two verifiers are provided: JWKSVerifier validates RS256 tokens against
// the issuer's published JSON Web Key Set, and HMACVerifier validates HS256
// tokens signed with a shared secret for local development and tests. Both
// enforce issuer, audience and expiry and report failures as *AuthError
// values that carry the HTTP status and error code returned to clients.
package auth
