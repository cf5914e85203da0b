package pkg

// AppError carries an application error code alongside the HTTP status the
// handlers should answer with.

type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	return e.Code + ": " + e.Message
}

// HTTPError is the JSON error body returned by the API.

type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}
