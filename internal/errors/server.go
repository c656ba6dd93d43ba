package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

const defaultErrorMessage = "something went wrong"

// ServerError is used to return custom error codes to client.
type ServerError struct {
	Code    int
	Message string
	cause   error
}

func NewServerError[T ~int](code T, msg string, err error) *ServerError {
	return &ServerError{
		Code:    int(code),
		Message: msg,
		cause:   err,
	}
}

func (s *ServerError) Error() string {
	return fmt.Sprintf("%s: %v", s.Message, s.cause)
}

func (s *ServerError) Unwrap() error {
	return s.cause
}

func GetServerErrorCode(err error) int {
	code, _ := ProcessServerError(err)
	return code
}

// ProcessServerError tries to retrieve from given error it's code and message.
// The static handler only needs the status, the message is what client sees in the body.
func ProcessServerError(err error) (code int, msg string) {
	if errHTTP := new(echo.HTTPError); errors.As(err, &errHTTP) {
		if m, ok := errHTTP.Message.(string); ok {
			return errHTTP.Code, m
		}
		return errHTTP.Code, http.StatusText(errHTTP.Code)
	}

	if errSrv := new(ServerError); errors.As(err, &errSrv) {
		return errSrv.Code, errSrv.Message
	}

	return http.StatusInternalServerError, defaultErrorMessage
}
