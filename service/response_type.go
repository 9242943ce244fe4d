package service

// ResponseType enumerates the outcome classes service operations report to
// the handlers
type ResponseType int

const (
	// InvalidData response
	InvalidData ResponseType = iota

	// Error response
	Error

	// Forbidden response
	Forbidden

	// NotFound response
	NotFound

	// Success response
	Success

	// NotAuthenticated response
	NotAuthenticated

	// MissingProof response
	MissingProof

	// UploadFailed response
	UploadFailed
)

var vals = [...]string{
	"invalid-data",
	"error",
	"forbidden",
	"not-found",
	"success",
	"not-authenticated",
	"missing-proof",
	"upload-failed",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	return vals[a]
}
