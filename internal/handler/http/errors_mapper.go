package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/mission-planner/internal/app"
	"github.com/MKhiriev/mission-planner/internal/logger"
	"github.com/MKhiriev/mission-planner/internal/service"
	"github.com/MKhiriev/mission-planner/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidID:   http.StatusBadRequest,
	ErrInvalidJSON: http.StatusBadRequest,

	service.ErrNotFound:                http.StatusNotFound,
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrUserNotFound:            http.StatusUnauthorized,
	service.ErrUserAlreadyExists:       http.StatusConflict,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrDatabaseUnavailable:     http.StatusServiceUnavailable,

	store.ErrEntityNotFound: http.StatusNotFound,
	store.ErrUsernameTaken:  http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	ErrInvalidID:   app.MsgInvalidID,
	ErrInvalidJSON: app.MsgInvalidJSON,

	service.ErrInvalidDataProvided:     app.MsgInvalidDataProvided,
	service.ErrWrongPassword:           app.MsgInvalidLoginPassword,
	service.ErrUserNotFound:            app.MsgInvalidLoginPassword,
	service.ErrUserAlreadyExists:       app.MsgLoginAlreadyExists,
	service.ErrTokenIsExpiredOrInvalid: app.MsgTokenIsExpiredOrInvalid,
	service.ErrTokenCreationFailed:     app.MsgTokenCreationFailed,
	service.ErrDatabaseUnavailable:     app.MsgDatabaseUnavailable,

	store.ErrUsernameTaken: app.MsgLoginAlreadyExists,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error, status int) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	if status >= http.StatusInternalServerError {
		return app.MsgInternalServerError
	}
	return http.StatusText(status)
}

// writeError answers with the status mapped from err. Not found responses
// carry no body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusNotFound {
		w.WriteHeader(status)
		return
	}
	http.Error(w, messageFromError(err, status), status)
}
