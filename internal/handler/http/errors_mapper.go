package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusBadRequest,

	validators.ErrEmptyTitle:    http.StatusBadRequest,
	validators.ErrTitleTooLong:  http.StatusBadRequest,
	validators.ErrInvalidTaskID: http.StatusNotFound,
	validators.ErrInvalidUserID: http.StatusBadRequest,

	store.ErrLoginAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:     http.StatusUnauthorized,
	store.ErrTaskNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrPreparingStatement:   http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// errorMessageMap pins the exact wording the API promises for each known
// failure. Anything not listed degrades to the generic 500 message.
var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:     app.MsgInvalidCredentials,
	service.ErrWrongPassword:           app.MsgInvalidCredentials,
	service.ErrTokenIsExpiredOrInvalid: app.MsgInvalidToken,

	validators.ErrEmptyTitle:    app.MsgTitleRequired,
	validators.ErrTitleTooLong:  app.MsgTitleTooLong,
	validators.ErrInvalidTaskID: app.MsgTaskNotFound,

	store.ErrLoginAlreadyExists: app.MsgUserAlreadyExists,
	store.ErrNoUserWasFound:     app.MsgInvalidCredentials,
	store.ErrTaskNotFound:       app.MsgTaskNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return app.MsgInternalServerError
}
