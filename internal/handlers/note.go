package handlers

import (
	"ParaVault/internal/model"
	"ParaVault/internal/service"
	"context"
	"net/http"

	"go.uber.org/zap"
)

// NoteHandler — заметки текущего пользователя и их связи с контейнерами.
type NoteHandler struct {
	NoteService *service.NoteService
	LinkService *service.LinkService
	Logger      *zap.SugaredLogger
}

func NewNoteHandler(noteService *service.NoteService, linkService *service.LinkService, logger *zap.SugaredLogger) *NoteHandler {
	return &NoteHandler{NoteService: noteService, LinkService: linkService, Logger: logger}
}

type linkRequest struct {
	ContainerIDs []int64 `json:"container_ids"`
}

type linkResponse struct {
	Status string `json:"status"`
	service.LinkResult
}

// List — GET /notes?search=…&ordering=-updated_at
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	notes, err := h.NoteService.List(r.Context(), userID(r), service.NoteQuery{
		Search:   q.Get("search"),
		Ordering: q.Get("ordering"),
	})
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newNoteViews(notes))
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.NoteInput
	if err := decodeJSON(r, &in); err != nil {
		badBody(w, r, h.Logger, err)
		return
	}
	n, err := h.NoteService.Create(r.Context(), userID(r), in)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, newNoteView(n))
}

func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	n, err := h.NoteService.Get(r.Context(), userID(r), id)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newNoteView(n))
}

// Replace — PUT: title и content обязательны.
func (h *NoteHandler) Replace(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, h.NoteService.Replace)
}

// Update — PATCH.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, h.NoteService.Update)
}

func (h *NoteHandler) update(w http.ResponseWriter, r *http.Request, apply func(context.Context, int64, int64, service.NotePatch) (*model.Note, error)) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	var patch service.NotePatch
	if err := decodeJSON(r, &patch); err != nil {
		badBody(w, r, h.Logger, err)
		return
	}
	n, err := apply(r.Context(), userID(r), id, patch)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newNoteView(n))
}

// Delete архивирует заметку → 204.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	if err := h.NoteService.SoftDelete(r.Context(), userID(r), id); err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Link — POST /notes/{id}/link {"container_ids":[…]}
func (h *NoteHandler) Link(w http.ResponseWriter, r *http.Request) {
	h.link(w, r, h.LinkService.Link, "linked successfully")
}

// Unlink — POST /notes/{id}/unlink {"container_ids":[…]}
func (h *NoteHandler) Unlink(w http.ResponseWriter, r *http.Request) {
	h.link(w, r, h.LinkService.Unlink, "unlinked successfully")
}

func (h *NoteHandler) link(w http.ResponseWriter, r *http.Request, apply func(context.Context, int64, int64, []int64) (service.LinkResult, error), status string) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	var req linkRequest
	if err := decodeJSON(r, &req); err != nil {
		badBody(w, r, h.Logger, err)
		return
	}
	res, err := apply(r.Context(), userID(r), id, req.ContainerIDs)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, linkResponse{Status: status, LinkResult: res})
}
