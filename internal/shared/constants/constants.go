// Package constants holds names shared across layers: headers, media types,
// table names and the fixed client-facing messages.
package constants

// Deployment environments accepted by --env.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

const (
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-ID"
	// HeaderXToken carries "$ADMIN$<secret>" or "$USER$<secret>".
	HeaderXToken = "X-TOKEN"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypeJPEG = "image/jpeg"
)

// ContextKeyTier is the gin context key holding the tier the token granted.
const ContextKeyTier = "tier"

const (
	TableAssets   = "assets"
	TableTickets  = "tickets"
	TableComments = "comments"
)

const (
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgInvalidRequestBody  = "invalid request body"
	ErrMsgInvalidID           = "invalid id"
)
