package handlers

import (
	"ParaVault/internal/model"
	"ParaVault/internal/service"
	"context"
	"net/http"

	"go.uber.org/zap"
)

// ContainerHandler — CRUD контейнеров текущего пользователя.
type ContainerHandler struct {
	ContainerService *service.ContainerService
	Logger           *zap.SugaredLogger
}

func NewContainerHandler(containerService *service.ContainerService, logger *zap.SugaredLogger) *ContainerHandler {
	return &ContainerHandler{ContainerService: containerService, Logger: logger}
}

// List — GET /containers?type=P
func (h *ContainerHandler) List(w http.ResponseWriter, r *http.Request) {
	cs, err := h.ContainerService.List(r.Context(), userID(r), r.URL.Query().Get("type"))
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newContainerViews(cs))
}

func (h *ContainerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.ContainerInput
	if err := decodeJSON(r, &in); err != nil {
		badBody(w, r, h.Logger, err)
		return
	}
	c, err := h.ContainerService.Create(r.Context(), userID(r), in)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, newContainerView(c))
}

func (h *ContainerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	c, err := h.ContainerService.Get(r.Context(), userID(r), id)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newContainerView(c))
}

// Replace — PUT: полное обновление.
func (h *ContainerHandler) Replace(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, h.ContainerService.Replace)
}

// Update — PATCH: частичное обновление.
func (h *ContainerHandler) Update(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, h.ContainerService.Update)
}

type containerUpdateFunc func(ctx context.Context, userID, id int64, patch service.ContainerPatch) (*model.Container, error)

func (h *ContainerHandler) update(w http.ResponseWriter, r *http.Request, apply containerUpdateFunc) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	var patch service.ContainerPatch
	if err := decodeJSON(r, &patch); err != nil {
		badBody(w, r, h.Logger, err)
		return
	}
	c, err := apply(r.Context(), userID(r), id, patch)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newContainerView(c))
}

// Delete — физическое удаление → 204.
func (h *ContainerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	if err := h.ContainerService.Delete(r.Context(), userID(r), id); err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Notes — GET /containers/{id}/notes
func (h *ContainerHandler) Notes(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	notes, err := h.ContainerService.ListNotes(r.Context(), userID(r), id)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newNoteViews(notes))
}
