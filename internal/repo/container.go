package repo

import (
	"ParaVault/internal/model"
	"context"

	"gorm.io/gorm"
)

// ContainerRepository — доступ к контейнерам.
// Методы не проверяют владельца у записи по id: это делает сервис через policy.
type ContainerRepository interface {
	Create(ctx context.Context, c *model.Container) error
	GetByID(ctx context.Context, id int64) (*model.Container, error)
	// ListByOwner возвращает контейнеры владельца в порядке создания, опционально по точному типу.
	ListByOwner(ctx context.Context, ownerID int64, typeFilter *model.ContainerType) ([]model.Container, error)
	Update(ctx context.Context, id int64, updates map[string]any) error
	// Delete физически удаляет контейнер вместе со строками связей с заметками.
	Delete(ctx context.Context, id int64) error
	// ListNotes возвращает все заметки, привязанные к контейнеру, включая архивные.
	ListNotes(ctx context.Context, containerID int64) ([]model.Note, error)
	// OwnedIDs оставляет из ids только существующие контейнеры владельца.
	OwnedIDs(ctx context.Context, ownerID int64, ids []int64) ([]int64, error)
}

type containerRepo struct {
	db *gorm.DB
}

// NewContainerRepository создаёт реализацию репозитория контейнеров.
func NewContainerRepository(db *gorm.DB) ContainerRepository {
	return &containerRepo{db: db}
}

func (r *containerRepo) Create(ctx context.Context, c *model.Container) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *containerRepo) GetByID(ctx context.Context, id int64) (*model.Container, error) {
	var c model.Container
	if err := r.db.WithContext(ctx).Preload("Owner").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *containerRepo) ListByOwner(ctx context.Context, ownerID int64, typeFilter *model.ContainerType) ([]model.Container, error) {
	q := r.db.WithContext(ctx).Preload("Owner").Where("owner_id = ?", ownerID)
	if typeFilter != nil {
		q = q.Where("type = ?", *typeFilter)
	}
	out := []model.Container{}
	if err := q.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *containerRepo) Update(ctx context.Context, id int64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	tx := r.db.WithContext(ctx).Model(&model.Container{ID: id}).Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *containerRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("container_id = ?", id).Delete(&model.NoteContainer{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Container{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *containerRepo) ListNotes(ctx context.Context, containerID int64) ([]model.Note, error) {
	out := []model.Note{}
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Containers", orderByID).
		Joins("JOIN note_containers ON note_containers.note_id = notes.id").
		Where("note_containers.container_id = ?", containerID).
		Order("notes.id ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *containerRepo) OwnedIDs(ctx context.Context, ownerID int64, ids []int64) ([]int64, error) {
	out := []int64{}
	if len(ids) == 0 {
		return out, nil
	}
	err := r.db.WithContext(ctx).
		Model(&model.Container{}).
		Where("owner_id = ? AND id IN ?", ownerID, ids).
		Order("id ASC").
		Pluck("id", &out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// orderByID — условие для Preload связанных контейнеров.
func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("containers.id ASC")
}
