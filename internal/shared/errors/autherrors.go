package errors

// Token rejection messages. They are static so that nothing about the
// configured secrets can leak through the response body.
const (
	MsgTokenMissing   = "`X-TOKEN` header is missing"
	MsgTokenCorrupted = "`X-TOKEN` header is corrupted"
	MsgAccessDenied   = "access denied"
)

// NewTokenMissingError reports a request without the X-TOKEN header.
func NewTokenMissingError() *AppError {
	return NewUnauthorizedError(MsgTokenMissing)
}

// NewTokenCorruptedError reports an X-TOKEN header that is not printable text.
func NewTokenCorruptedError() *AppError {
	return NewUnauthorizedError(MsgTokenCorrupted)
}

// NewAccessDeniedError reports a well-formed token that does not grant the
// tier a route requires.
func NewAccessDeniedError() *AppError {
	return NewForbiddenError(MsgAccessDenied)
}
