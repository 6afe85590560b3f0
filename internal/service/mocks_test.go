package service

import (
	"ParaVault/internal/model"
	"ParaVault/internal/repo"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// мок для repo.UserRepository
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) UpdateUser(ctx context.Context, id int64, updates map[string]any) (*model.User, error) {
	args := m.Called(ctx, id, updates)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

// мок для repo.ContainerRepository
type mockContainerRepo struct{ mock.Mock }

func (m *mockContainerRepo) Create(ctx context.Context, c *model.Container) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockContainerRepo) GetByID(ctx context.Context, id int64) (*model.Container, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Container); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockContainerRepo) ListByOwner(ctx context.Context, ownerID int64, typeFilter *model.ContainerType) ([]model.Container, error) {
	args := m.Called(ctx, ownerID, typeFilter)
	if v, ok := args.Get(0).([]model.Container); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockContainerRepo) Update(ctx context.Context, id int64, updates map[string]any) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

func (m *mockContainerRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockContainerRepo) ListNotes(ctx context.Context, containerID int64) ([]model.Note, error) {
	args := m.Called(ctx, containerID)
	if v, ok := args.Get(0).([]model.Note); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockContainerRepo) OwnedIDs(ctx context.Context, ownerID int64, ids []int64) ([]int64, error) {
	args := m.Called(ctx, ownerID, ids)
	if v, ok := args.Get(0).([]int64); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.ContainerRepository = (*mockContainerRepo)(nil)

// мок для repo.NoteRepository
type mockNoteRepo struct{ mock.Mock }

func (m *mockNoteRepo) Create(ctx context.Context, n *model.Note) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *mockNoteRepo) GetByID(ctx context.Context, id int64) (*model.Note, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Note); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNoteRepo) ListByOwner(ctx context.Context, ownerID int64, filter repo.NoteFilter) ([]model.Note, error) {
	args := m.Called(ctx, ownerID, filter)
	if v, ok := args.Get(0).([]model.Note); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNoteRepo) Update(ctx context.Context, id int64, updates map[string]any) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

func (m *mockNoteRepo) AddContainers(ctx context.Context, noteID int64, containerIDs []int64) error {
	args := m.Called(ctx, noteID, containerIDs)
	return args.Error(0)
}

func (m *mockNoteRepo) RemoveContainers(ctx context.Context, noteID int64, containerIDs []int64) error {
	args := m.Called(ctx, noteID, containerIDs)
	return args.Error(0)
}

var _ repo.NoteRepository = (*mockNoteRepo)(nil)

// мок для repo.RefreshStore
type mockRefreshStore struct{ mock.Mock }

func (m *mockRefreshStore) Save(ctx context.Context, s *model.RefreshSession) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockRefreshStore) GetByHash(ctx context.Context, hash string) (*model.RefreshSession, error) {
	args := m.Called(ctx, hash)
	if v, ok := args.Get(0).(*model.RefreshSession); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRefreshStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.RefreshStore = (*mockRefreshStore)(nil)
