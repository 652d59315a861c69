// Package client implements the gRPC transport used by the user directory
// CLI. GRPCClient wraps the generated stubs, attaches the session token to
// outgoing calls, and maps transport statuses onto the package's sentinel
// errors (ErrUnauthorized, ErrUnavailable, ErrConflict, ...).
package client
