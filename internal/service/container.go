package service

import (
	"ParaVault/internal/model"
	"ParaVault/internal/policy"
	"ParaVault/internal/repo"
	"context"
	"strings"

	"go.uber.org/zap"
)

// ContainerInput — создание контейнера. Владелец берётся только из аутентификации.
type ContainerInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Type        string  `json:"type" validate:"required,oneof=P A R ARCHIVE"`
	Description *string `json:"description"`
}

// ContainerPatch — обновление контейнера. nil означает «не менять».
type ContainerPatch struct {
	Name        *string `json:"name" validate:"omitnil,min=1,max=100"`
	Type        *string `json:"type" validate:"omitnil,oneof=P A R ARCHIVE"`
	Description *string `json:"description"`
}

// ContainerService — операции над контейнерами в пределах владельца.
type ContainerService struct {
	containers repo.ContainerRepository
	logger     *zap.SugaredLogger
}

func NewContainerService(containers repo.ContainerRepository, logger *zap.SugaredLogger) *ContainerService {
	return &ContainerService{containers: containers, logger: logger}
}

// List возвращает контейнеры пользователя; typeFilter == "" — без фильтра.
func (s *ContainerService) List(ctx context.Context, userID int64, typeFilter string) ([]model.Container, error) {
	var filter *model.ContainerType
	if typeFilter = strings.TrimSpace(typeFilter); typeFilter != "" {
		t := model.ContainerType(typeFilter)
		filter = &t
	}
	return s.containers.ListByOwner(ctx, userID, filter)
}

func (s *ContainerService) Create(ctx context.Context, userID int64, in ContainerInput) (*model.Container, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Type = strings.TrimSpace(in.Type)
	if err := validateStruct(in); err != nil {
		s.logger.Warnw("container rejected", "user_id", userID, "err", err)
		return nil, err
	}

	c := &model.Container{
		OwnerID:     userID,
		Name:        in.Name,
		Type:        model.ContainerType(in.Type),
		Description: in.Description,
	}
	if err := s.containers.Create(ctx, c); err != nil {
		return nil, err
	}
	return s.containers.GetByID(ctx, c.ID)
}

// Get возвращает контейнер, если он принадлежит пользователю; иначе ErrNotFound.
func (s *ContainerService) Get(ctx context.Context, userID, id int64) (*model.Container, error) {
	c, err := s.containers.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if !policy.Permits(userID, c) {
		return nil, ErrNotFound
	}
	return c, nil
}

// Update — частичное обновление (PATCH).
func (s *ContainerService) Update(ctx context.Context, userID, id int64, patch ContainerPatch) (*model.Container, error) {
	return s.update(ctx, userID, id, patch, false)
}

// Replace — полное обновление (PUT): name и type обязательны, отсутствующее описание очищается.
func (s *ContainerService) Replace(ctx context.Context, userID, id int64, patch ContainerPatch) (*model.Container, error) {
	return s.update(ctx, userID, id, patch, true)
}

func (s *ContainerService) update(ctx context.Context, userID, id int64, patch ContainerPatch, full bool) (*model.Container, error) {
	patch.Name = trimPtr(patch.Name)
	patch.Type = trimPtr(patch.Type)
	if full {
		if patch.Name == nil {
			return nil, validationError("name is required")
		}
		if patch.Type == nil {
			return nil, validationError("type is required")
		}
	}
	if err := validateStruct(patch); err != nil {
		return nil, err
	}

	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Type != nil {
		updates["type"] = model.ContainerType(*patch.Type)
	}
	if patch.Description != nil || full {
		updates["description"] = patch.Description
	}
	if err := s.containers.Update(ctx, id, updates); err != nil {
		return nil, notFound(err)
	}
	return s.Get(ctx, userID, id)
}

// Delete физически удаляет контейнер; связанные заметки остаются.
func (s *ContainerService) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	return notFound(s.containers.Delete(ctx, id))
}

// ListNotes — все заметки контейнера, включая архивные.
func (s *ContainerService) ListNotes(ctx context.Context, userID, id int64) ([]model.Note, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, err
	}
	return s.containers.ListNotes(ctx, id)
}
