package service

import (
	"ParaVault/internal/repo"
	"context"

	"go.uber.org/zap"
)

// LinkResult — итог link/unlink: принятые id контейнеров и отброшенные (чужие или несуществующие).
type LinkResult struct {
	Applied []int64 `json:"container_ids"`
	Ignored []int64 `json:"ignored_ids"`
}

// LinkService управляет связями заметок с контейнерами одного владельца.
type LinkService struct {
	notes      *NoteService
	noteRepo   repo.NoteRepository
	containers repo.ContainerRepository
	logger     *zap.SugaredLogger
}

func NewLinkService(notes *NoteService, noteRepo repo.NoteRepository, containers repo.ContainerRepository, logger *zap.SugaredLogger) *LinkService {
	return &LinkService{notes: notes, noteRepo: noteRepo, containers: containers, logger: logger}
}

// Link привязывает к заметке контейнеры пользователя. Чужие id молча отбрасываются,
// уже существующие связи не дублируются.
func (s *LinkService) Link(ctx context.Context, userID, noteID int64, containerIDs []int64) (LinkResult, error) {
	res, err := s.resolve(ctx, userID, noteID, containerIDs)
	if err != nil {
		return LinkResult{}, err
	}
	if len(res.Applied) == 0 {
		return res, nil
	}
	if err := s.noteRepo.AddContainers(ctx, noteID, res.Applied); err != nil {
		return LinkResult{}, err
	}
	return res, nil
}

// Unlink отвязывает контейнеры пользователя; отсутствующие связи игнорируются.
func (s *LinkService) Unlink(ctx context.Context, userID, noteID int64, containerIDs []int64) (LinkResult, error) {
	res, err := s.resolve(ctx, userID, noteID, containerIDs)
	if err != nil {
		return LinkResult{}, err
	}
	if len(res.Applied) == 0 {
		return res, nil
	}
	if err := s.noteRepo.RemoveContainers(ctx, noteID, res.Applied); err != nil {
		return LinkResult{}, err
	}
	return res, nil
}

// resolve проверяет владельца заметки и делит запрошенные id на свои и чужие.
func (s *LinkService) resolve(ctx context.Context, userID, noteID int64, containerIDs []int64) (LinkResult, error) {
	if _, err := s.notes.Get(ctx, userID, noteID); err != nil {
		return LinkResult{}, err
	}
	// пустой список — успешный no-op, как и список из одних чужих id
	if len(containerIDs) == 0 {
		return LinkResult{Applied: []int64{}, Ignored: []int64{}}, nil
	}

	requested := dedupe(containerIDs)
	owned, err := s.containers.OwnedIDs(ctx, userID, requested)
	if err != nil {
		return LinkResult{}, err
	}

	ownedSet := make(map[int64]struct{}, len(owned))
	for _, id := range owned {
		ownedSet[id] = struct{}{}
	}
	res := LinkResult{Applied: []int64{}, Ignored: []int64{}}
	for _, id := range requested {
		if _, ok := ownedSet[id]; ok {
			res.Applied = append(res.Applied, id)
		} else {
			res.Ignored = append(res.Ignored, id)
		}
	}
	if len(res.Ignored) > 0 {
		s.logger.Debugw("link: foreign container ids dropped", "user_id", userID, "note_id", noteID, "ignored", res.Ignored)
	}
	return res, nil
}

// dedupe убирает повторы, сохраняя порядок первого появления.
func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
