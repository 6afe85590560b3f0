package handlers_test

import (
	"ParaVault/internal/config"
	"ParaVault/internal/handlers"
	"ParaVault/internal/middleware"
	"ParaVault/internal/repo"
	"ParaVault/internal/service"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestRouter поднимает полный стек хендлеров поверх in-memory SQLite.
func newTestRouter(t *testing.T, mutate ...func(*config.Config)) http.Handler {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := repo.InitDB(fmt.Sprintf("file:h_%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	cfg := &config.Config{AuthSecret: "test-secret", AccessTTL: time.Minute, RefreshTTL: time.Hour}
	for _, m := range mutate {
		m(cfg)
	}
	logger := zap.NewNop().Sugar()
	middleware.SetLogger(logger)

	noteRepo := repo.NewNoteRepository(db)
	containerRepo := repo.NewContainerRepository(db)
	notes := service.NewNoteService(noteRepo, logger)

	h := handlers.NewHandler(handlers.Services{
		Users:      service.NewUserService(repo.NewUserRepository(db), logger),
		Tokens:     service.NewTokenService(repo.NewRefreshRepository(db), cfg.AuthSecret, cfg.AccessTTL, cfg.RefreshTTL, logger),
		Containers: service.NewContainerService(containerRepo, logger),
		Notes:      notes,
		Links:      service.NewLinkService(notes, noteRepo, containerRepo, logger),
	}, logger, cfg)
	return h.Router
}

// do выполняет запрос к роутеру; body сериализуется в JSON, token — Bearer.
func do(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

type tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type container struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	TypeDisplay string  `json:"type_display"`
	Description *string `json:"description"`
	Owner       string  `json:"owner"`
}

type note struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	IsArchived bool    `json:"is_archived"`
	Owner      string  `json:"owner"`
	Containers []int64 `json:"containers"`
}

type linkResp struct {
	Status       string  `json:"status"`
	ContainerIDs []int64 `json:"container_ids"`
	IgnoredIDs   []int64 `json:"ignored_ids"`
}

// signup регистрирует пользователя и возвращает его access-токен.
func signup(t *testing.T, h http.Handler, username string) string {
	t.Helper()
	rr := do(t, h, http.MethodPost, "/users/register", "", map[string]string{"username": username, "password": "pw-" + username})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	rr = do(t, h, http.MethodPost, "/users/login", "", map[string]string{"username": username, "password": "pw-" + username})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	return decode[tokens](t, rr).Access
}

func mkContainer(t *testing.T, h http.Handler, token, name, typ string) container {
	t.Helper()
	rr := do(t, h, http.MethodPost, "/containers", token, map[string]string{"name": name, "type": typ})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[container](t, rr)
}

func mkNote(t *testing.T, h http.Handler, token, title, content string) note {
	t.Helper()
	rr := do(t, h, http.MethodPost, "/notes", token, map[string]string{"title": title, "content": content})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[note](t, rr)
}
