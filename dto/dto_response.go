package dto

// Response is the envelope every endpoint returns: {success:true, data} on
// success, {success:false, error} on failure.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

type ErrorBody struct {
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

func OK(data any) Response {
	return Response{Success: true, Data: data}
}

func Fail(message string, details map[string][]string) Response {
	return Response{Success: false, Error: &ErrorBody{Message: message, Details: details}}
}
