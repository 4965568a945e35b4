package serverutils

// BaseResponse is the success envelope. Data is always present, so an
// empty list renders as [] rather than a missing key.
type BaseResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}

// ErrorBody is the failure envelope; it never carries data.
type ErrorBody struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Error   string `json:"error"`
}

func SuccessResponse[T any](message string, data T) BaseResponse[T] {
	return BaseResponse[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// ErrorResponse carries only what the caller is allowed to see.
func ErrorResponse(code int, message string) ErrorBody {
	return ErrorBody{
		Success: false,
		Code:    code,
		Error:   message,
	}
}
