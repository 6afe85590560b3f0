package service

import (
	"ParaVault/internal/model"
	"ParaVault/internal/policy"
	"ParaVault/internal/repo"
	"context"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

// orderable — поля, по которым разрешена сортировка заметок.
var orderable = map[string]string{
	"id":          "id",
	"title":       "title",
	"content":     "content",
	"is_archived": "is_archived",
	"created_at":  "created_at",
	"updated_at":  "updated_at",
}

// NoteQuery — параметры выборки заметок: строка поиска и сортировка в виде "-updated_at,title".
type NoteQuery struct {
	Search   string
	Ordering string
}

// NoteInput — создание заметки. Связи с контейнерами задаются только через link/unlink.
type NoteInput struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

// NotePatch — обновление заметки. Владелец и контейнеры не меняются.
type NotePatch struct {
	Title      *string `json:"title" validate:"omitnil,min=1,max=255"`
	Content    *string `json:"content" validate:"omitnil,min=1"`
	IsArchived *bool   `json:"is_archived"`
}

// NoteService — операции над заметками в пределах владельца.
type NoteService struct {
	notes  repo.NoteRepository
	logger *zap.SugaredLogger
}

func NewNoteService(notes repo.NoteRepository, logger *zap.SugaredLogger) *NoteService {
	return &NoteService{notes: notes, logger: logger}
}

// List возвращает заметки пользователя, включая архивные.
func (s *NoteService) List(ctx context.Context, userID int64, q NoteQuery) ([]model.Note, error) {
	return s.notes.ListByOwner(ctx, userID, repo.NoteFilter{
		Terms:    searchTerms(q.Search),
		Ordering: parseOrdering(q.Ordering),
	})
}

func (s *NoteService) Create(ctx context.Context, userID int64, in NoteInput) (*model.Note, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	if err := validateStruct(in); err != nil {
		s.logger.Warnw("note rejected", "user_id", userID, "err", err)
		return nil, err
	}

	n := &model.Note{OwnerID: userID, Title: in.Title, Content: in.Content}
	if err := s.notes.Create(ctx, n); err != nil {
		return nil, err
	}
	return s.notes.GetByID(ctx, n.ID)
}

// Get возвращает заметку, если она принадлежит пользователю; иначе ErrNotFound.
func (s *NoteService) Get(ctx context.Context, userID, id int64) (*model.Note, error) {
	n, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if !policy.Permits(userID, n) {
		return nil, ErrNotFound
	}
	return n, nil
}

// Update — частичное обновление (PATCH).
func (s *NoteService) Update(ctx context.Context, userID, id int64, patch NotePatch) (*model.Note, error) {
	return s.update(ctx, userID, id, patch, false)
}

// Replace — полное обновление (PUT): title и content обязательны.
func (s *NoteService) Replace(ctx context.Context, userID, id int64, patch NotePatch) (*model.Note, error) {
	return s.update(ctx, userID, id, patch, true)
}

func (s *NoteService) update(ctx context.Context, userID, id int64, patch NotePatch, full bool) (*model.Note, error) {
	patch.Title = trimPtr(patch.Title)
	patch.Content = trimPtr(patch.Content)
	if full {
		if patch.Title == nil {
			return nil, validationError("title is required")
		}
		if patch.Content == nil {
			return nil, validationError("content is required")
		}
	}
	if err := validateStruct(patch); err != nil {
		return nil, err
	}

	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if patch.IsArchived != nil {
		updates["is_archived"] = *patch.IsArchived
	}
	if err := s.notes.Update(ctx, id, updates); err != nil {
		return nil, notFound(err)
	}
	return s.Get(ctx, userID, id)
}

// SoftDelete архивирует заметку. Запись и её связи сохраняются.
func (s *NoteService) SoftDelete(ctx context.Context, userID, id int64) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	return notFound(s.notes.Update(ctx, id, map[string]any{"is_archived": true}))
}

// searchTerms делит строку поиска на термы по пробелам и запятым.
func searchTerms(search string) []string {
	return strings.FieldsFunc(search, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// parseOrdering разбирает "-updated_at,title"; неизвестные поля пропускаются.
func parseOrdering(raw string) []repo.OrderField {
	var out []repo.OrderField
	seen := map[string]bool{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		desc := strings.HasPrefix(part, "-")
		col, ok := orderable[strings.TrimPrefix(part, "-")]
		if !ok || seen[col] {
			continue
		}
		seen[col] = true
		out = append(out, repo.OrderField{Column: col, Desc: desc})
	}
	return out
}
