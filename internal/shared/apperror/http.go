package apperror

import (
	"errors"
	"net/http"
)

// HTTPError adalah bentuk final yang ditulis handler ke response body.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

// ToHTTP memetakan error apapun ke HTTPError.
// Error yang bukan *AppError dianggap kegagalan tak terduga: client hanya
// menerima pesan generik, detail aslinya untuk logger saja.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "An unexpected error occurred",
	}
}
