package errors

// ErrorInfo is the body of a failed non-GraphQL response.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// MetaInfo carries the request id back to the caller.
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

func NewSuccessResponse(data any, requestID string) *SuccessResponse {
	return &SuccessResponse{Data: data, Meta: &MetaInfo{RequestID: requestID}}
}

// NewErrorResponse renders an AppError; only its user facing parts are exposed.
func NewErrorResponse(err AppError, requestID string) *ErrorResponse {
	return newErrorResponse(err.ErrorCode(), err.Message(), err.Details(), requestID)
}

// NewCodedErrorResponse renders a failure that has no AppError behind it.
func NewCodedErrorResponse(code, message, requestID string) *ErrorResponse {
	return newErrorResponse(code, message, nil, requestID)
}

func newErrorResponse(code, message string, details any, requestID string) *ErrorResponse {
	return &ErrorResponse{
		Error: &ErrorInfo{Code: code, Message: message, Details: details},
		Meta:  &MetaInfo{RequestID: requestID},
	}
}
