package common

// AuthorizationHeaderName is the gRPC metadata key and HTTP header used to
// carry the bearer token.
const AuthorizationHeaderName = "authorization"

// DateLayout is the wire format of calendar dates (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// NoTagLabel is rendered as the tag name of tasks without a tag.
const NoTagLabel = "No Tag"
