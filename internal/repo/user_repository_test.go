package repo

import (
	"ParaVault/internal/model"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	// успешное создание
	u, err := r.CreateUser(ctx, &model.User{Username: "john", Password: "hash", Email: "j@example.com"})
	assert.NoError(t, err)
	assert.NotZero(t, u.ID)

	// поиск по логину — найдено
	got, err := r.GetUserByLogin(ctx, "john")
	assert.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	// уникальный логин — вторая вставка даёт gorm.ErrDuplicatedKey
	_, err = r.CreateUser(ctx, &model.User{Username: "john", Password: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// поиск несуществующего — ожидаем gorm.ErrRecordNotFound
	got, err = r.GetUserByLogin(ctx, "doesnotexist")
	assert.Nil(t, got)
	assert.Equal(t, gorm.ErrRecordNotFound, err)

	byID, err := r.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "john", byID.Username)
}

// Тест: InitDB + modernc: нарушение UNIQUE распознаётся как дубликат, прочие ошибки не подменяются
func TestUserRepository_CreateUser_DuplicateViaInitDB(t *testing.T) {
	db, err := InitDB("file:dup_users?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	r := NewUserRepository(db)
	ctx := context.Background()

	_, err = r.CreateUser(ctx, &model.User{Username: "alice", Password: "h"})
	require.NoError(t, err)
	_, err = r.CreateUser(ctx, &model.User{Username: "alice", Password: "h2"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	plain := errors.New("boom")
	assert.Same(t, plain, translateError(plain))
	assert.NoError(t, translateError(nil))
}

func TestUserRepository_UpdateUser(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	u := mkUser(t, db, "alice")

	got, err := r.UpdateUser(ctx, u.ID, map[string]any{"first_name": "Alice", "email": "a@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.FirstName)
	assert.Equal(t, "a@example.com", got.Email)
	assert.Equal(t, "alice", got.Username)

	// пустой патч — просто чтение
	got, err = r.UpdateUser(ctx, u.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.FirstName)

	_, err = r.UpdateUser(ctx, 9999, map[string]any{"first_name": "x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
