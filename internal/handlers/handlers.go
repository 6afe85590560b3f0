package handlers

import (
	"ParaVault/internal/config"
	"ParaVault/internal/middleware"
	"ParaVault/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// Services — зависимости хендлеров.
type Services struct {
	Users      *service.UserService
	Tokens     *service.TokenService
	Containers *service.ContainerService
	Notes      *service.NoteService
	Links      *service.LinkService
}

// NewHandler разводящий для хендлеров
func NewHandler(svc Services, logger *zap.SugaredLogger, config *config.Config) *Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.WithLogging)
	r.Use(chimw.Recoverer)
	r.Use(chimw.StripSlashes)
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(svc.Users, svc.Tokens, logger, config)
	containerHandler := NewContainerHandler(svc.Containers, logger)
	noteHandler := NewNoteHandler(svc.Notes, svc.Links, logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// User routes
	r.Route("/users", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.WithRateLimit(config.AuthRateLimit))
			r.Post("/register", userHandler.Register)
			r.Post("/login", userHandler.Login)
			r.Post("/token/refresh", userHandler.Refresh)
		})
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/profile", userHandler.Profile)
			r.Patch("/profile", userHandler.UpdateProfile)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		// Container routes
		r.Route("/containers", func(r chi.Router) {
			r.Get("/", containerHandler.List)
			r.Post("/", containerHandler.Create)
			r.Get("/{id}", containerHandler.Get)
			r.Put("/{id}", containerHandler.Replace)
			r.Patch("/{id}", containerHandler.Update)
			r.Delete("/{id}", containerHandler.Delete)
			r.Get("/{id}/notes", containerHandler.Notes)
		})

		// Note routes
		r.Route("/notes", func(r chi.Router) {
			r.Get("/", noteHandler.List)
			r.Post("/", noteHandler.Create)
			r.Get("/{id}", noteHandler.Get)
			r.Put("/{id}", noteHandler.Replace)
			r.Patch("/{id}", noteHandler.Update)
			r.Delete("/{id}", noteHandler.Delete)
			r.Post("/{id}/link", noteHandler.Link)
			r.Post("/{id}/unlink", noteHandler.Unlink)
		})
	})

	return &Handler{Router: r}
}
