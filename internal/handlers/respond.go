package handlers

import (
	"ParaVault/internal/middleware"
	"ParaVault/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// errInvalidID — id в пути не число; отвечаем как на отсутствующий ресурс.
var errInvalidID = errors.New("invalid id")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON читает тело запроса; неизвестные поля (owner, id, …) игнорируются.
func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// userID — id из контекста; маршруты под RequireAuth гарантируют его наличие.
func userID(r *http.Request) int64 {
	id, _ := middleware.GetUserIDFromContext(r.Context())
	return id
}

// respondError переводит ошибку сервиса в HTTP-статус.
func respondError(w http.ResponseWriter, r *http.Request, logger *zap.SugaredLogger, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrLoginTaken):
		writeError(w, http.StatusBadRequest, "a user with that username already exists")
	case errors.Is(err, service.ErrNotFound), errors.Is(err, errInvalidID):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "no active account found with the given credentials")
	case errors.Is(err, service.ErrInvalidRefresh):
		writeError(w, http.StatusUnauthorized, "token is invalid or expired")
	default:
		logger.Errorw("request failed",
			"method", r.Method,
			"uri", r.RequestURI,
			"user_id", userID(r),
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// badBody — тело запроса не разобралось как JSON или превысило предел.
func badBody(w http.ResponseWriter, r *http.Request, logger *zap.SugaredLogger, err error) {
	logger.Warnw("invalid request body", "uri", r.RequestURI, "error", err)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	writeError(w, http.StatusBadRequest, "invalid request body")
}
