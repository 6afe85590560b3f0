package handlers

import (
	"ParaVault/internal/config"
	"ParaVault/internal/service"
	"net/http"

	"go.uber.org/zap"
)

// UserHandler — регистрация, выдача токенов и профиль.
type UserHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
	Logger       *zap.SugaredLogger
	Config       *config.Config
}

func NewUserHandler(userService *service.UserService, tokenService *service.TokenService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, TokenService: tokenService, Logger: logger, Config: cfg}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

// Register создаёт учётную запись → 201.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in service.RegisterInput
	if err := decodeJSON(r, &in); err != nil {
		badBody(w, r, h.Logger, err)
		return
	}
	user, err := h.UserService.Register(r.Context(), in)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	h.Logger.Infow("user registered", "user_id", user.ID, "username", user.Username)
	writeJSON(w, http.StatusCreated, newUserView(user))
}

// Login проверяет пароль и выдаёт пару access/refresh.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		badBody(w, r, h.Logger, err)
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}
	user, err := h.UserService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	pair, err := h.TokenService.Issue(r.Context(), user.ID)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, pair)
}

// Refresh выдаёт новый access по refresh-токену.
func (h *UserHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeJSON(r, &req); err != nil {
		badBody(w, r, h.Logger, err)
		return
	}
	if req.Refresh == "" {
		writeError(w, http.StatusBadRequest, "refresh is required")
		return
	}
	access, err := h.TokenService.Refresh(r.Context(), req.Refresh)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"access": access})
}

func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.UserService.Profile(r.Context(), userID(r))
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newUserView(user))
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var patch service.ProfilePatch
	if err := decodeJSON(r, &patch); err != nil {
		badBody(w, r, h.Logger, err)
		return
	}
	user, err := h.UserService.UpdateProfile(r.Context(), userID(r), patch)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newUserView(user))
}
