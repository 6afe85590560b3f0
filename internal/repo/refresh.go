package repo

import (
	"ParaVault/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// RefreshStore хранит сессии refresh-токенов по отпечатку токена.
// Отсутствующая сессия сообщается как gorm.ErrRecordNotFound.
type RefreshStore interface {
	Save(ctx context.Context, s *model.RefreshSession) error
	GetByHash(ctx context.Context, hash string) (*model.RefreshSession, error)
	// DeleteExpired удаляет сессии с истёкшим сроком и возвращает их количество.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type refreshRepo struct {
	db *gorm.DB
}

// NewRefreshRepository — хранилище сессий в основной БД.
func NewRefreshRepository(db *gorm.DB) RefreshStore {
	return &refreshRepo{db: db}
}

func (r *refreshRepo) Save(ctx context.Context, s *model.RefreshSession) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *refreshRepo) GetByHash(ctx context.Context, hash string) (*model.RefreshSession, error) {
	var s model.RefreshSession
	if err := r.db.WithContext(ctx).Where("token_hash = ?", hash).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *refreshRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&model.RefreshSession{})
	return tx.RowsAffected, tx.Error
}
