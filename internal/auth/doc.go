// Package auth implements stateless session authentication.
//
// A session is an HS256 token carried in the auth-token cookie. Tokens are
// never stored server-side: a token is valid while its signature checks out
// against the server secret and its exp claim has not passed. Logging out
// clears the cookie but does not revoke the token string.
//
// The Resolver is the only entry point handlers and middleware need. Resolve
// never fails; it returns an identity or reports absence. RequireResolve is
// for write paths and returns ErrAuthenticationRequired instead.
package auth
