package errors

// HttpError carries the HTTP status and user-facing message for a failed
// operation, the underlying cause for the logs, and optional structured
// details (e.g. a field->message map for validation failures).
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details map[string]string
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

// WithDetails attaches a field->message map, used by form validation so the
// client can highlight offending inputs.
func (e *HttpError) WithDetails(details map[string]string) *HttpError {
	e.Details = details
	return e
}
