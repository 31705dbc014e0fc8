package ghttp

import "github.com/pkg/errors"

// maxErrorBody bounds how much of a response body is echoed in Error().
const maxErrorBody = 256

type Error struct {
	StatusCode   int
	ResponseBody []byte
	cause        error
}

func NewError(statusCode int, body []byte, cause error) *Error {
	return &Error{
		StatusCode:   statusCode,
		ResponseBody: body,
		cause:        cause,
	}
}

func (e *Error) Cause() error {
	return e.cause
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Error() string {
	if len(e.ResponseBody) > 0 {
		body := e.ResponseBody
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return e.cause.Error() + ": " + string(body)
	}

	return e.cause.Error()
}

// StatusCode returns the HTTP status carried by err, or -1.
func StatusCode(err error) int {
	var httpErr *Error
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return -1
}
