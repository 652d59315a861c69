package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// session token on requests to protected methods.
const AccessTokenHeaderName = "access_token"
