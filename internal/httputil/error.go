package httputil

import (
	"log/slog"
	"net/http"
)

func InternalServerError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func BadRequest(w http.ResponseWriter, msg string, err error) {
	clientError(w, http.StatusBadRequest, "bad request", msg, err)
}

func NotFound(w http.ResponseWriter, msg string, err error) {
	clientError(w, http.StatusNotFound, "not found", msg, err)
}

func Conflict(w http.ResponseWriter, msg string, err error) {
	clientError(w, http.StatusConflict, "conflict", msg, err)
}

func clientError(w http.ResponseWriter, status int, kind, msg string, err error) {
	if err != nil {
		slog.Warn(kind, "message", msg, "error", err)
	} else {
		slog.Warn(kind, "message", msg)
	}
	if wantsJSON(w) {
		WriteJSON(w, status, map[string]string{"error": msg})
		return
	}
	http.Error(w, msg, status)
}
