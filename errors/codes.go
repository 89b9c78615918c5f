package errors

// Code represents a machine-readable error code.
type Code string

const (
	// CodeInvalidArgument indicates a call was rejected before any work began.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	// CodeCancelled indicates the caller's context was cancelled while the
	// evaluator was joining its workers.
	CodeCancelled Code = "CANCELLED"
	// CodeWorkerFailed indicates a per-partition task returned an error or
	// panicked.
	CodeWorkerFailed Code = "WORKER_FAILED"
)

// Sentinels for use with errors.Is. They match any *Error with the same code.
var (
	ErrInvalidArgument = &Error{Code: CodeInvalidArgument, Message: "invalid argument"}
	ErrCancelled       = &Error{Code: CodeCancelled, Message: "cancelled"}
	ErrWorkerFailed    = &Error{Code: CodeWorkerFailed, Message: "worker failed"}
)
