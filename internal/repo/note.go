package repo

import (
	"ParaVault/internal/model"
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderField — одно поле сортировки. Column должен быть из белого списка сервиса.
type OrderField struct {
	Column string
	Desc   bool
}

// NoteFilter — параметры выборки заметок владельца.
type NoteFilter struct {
	// Terms: каждый терм должен встречаться (без учёта регистра) в title или content.
	Terms    []string
	Ordering []OrderField
}

// NoteRepository — доступ к заметкам и их связям с контейнерами.
type NoteRepository interface {
	Create(ctx context.Context, n *model.Note) error
	GetByID(ctx context.Context, id int64) (*model.Note, error)
	ListByOwner(ctx context.Context, ownerID int64, filter NoteFilter) ([]model.Note, error)
	Update(ctx context.Context, id int64, updates map[string]any) error
	// AddContainers вставляет связи; уже существующие пропускаются атомарно.
	AddContainers(ctx context.Context, noteID int64, containerIDs []int64) error
	// RemoveContainers удаляет связи; отсутствующие игнорируются.
	RemoveContainers(ctx context.Context, noteID int64, containerIDs []int64) error
}

type noteRepo struct {
	db *gorm.DB
}

// NewNoteRepository создаёт реализацию репозитория заметок.
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepo{db: db}
}

func (r *noteRepo) Create(ctx context.Context, n *model.Note) error {
	// связи создаются только через AddContainers
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(n).Error
}

func (r *noteRepo) GetByID(ctx context.Context, id int64) (*model.Note, error) {
	var n model.Note
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Containers", orderByID).
		First(&n, id).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *noteRepo) ListByOwner(ctx context.Context, ownerID int64, filter NoteFilter) ([]model.Note, error) {
	q := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Containers", orderByID).
		Where("notes.owner_id = ?", ownerID)

	// LOWER в SQLite понимает только ASCII, поэтому там термы проверяются в Go
	sqlSearch := r.db.Dialector.Name() == "postgres"
	if sqlSearch {
		for _, term := range filter.Terms {
			pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
			q = q.Where(`(LOWER(notes.title) LIKE ? ESCAPE '\' OR LOWER(notes.content) LIKE ? ESCAPE '\')`, pattern, pattern)
		}
	}

	for _, o := range filter.Ordering {
		q = q.Order(clause.OrderByColumn{
			Column: clause.Column{Table: "notes", Name: o.Column},
			Desc:   o.Desc,
		})
	}
	// стабильный порядок вставки как последний ключ
	q = q.Order("notes.id ASC")

	out := []model.Note{}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	if sqlSearch || len(filter.Terms) == 0 {
		return out, nil
	}
	matched := out[:0]
	for _, n := range out {
		if matchesTerms(n, filter.Terms) {
			matched = append(matched, n)
		}
	}
	return matched, nil
}

// matchesTerms: каждый терм — подстрока title или content без учёта регистра (Unicode).
func matchesTerms(n model.Note, terms []string) bool {
	title, content := strings.ToLower(n.Title), strings.ToLower(n.Content)
	for _, term := range terms {
		t := strings.ToLower(term)
		if !strings.Contains(title, t) && !strings.Contains(content, t) {
			return false
		}
	}
	return true
}

func (r *noteRepo) Update(ctx context.Context, id int64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	tx := r.db.WithContext(ctx).Model(&model.Note{ID: id}).Omit(clause.Associations).Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *noteRepo) AddContainers(ctx context.Context, noteID int64, containerIDs []int64) error {
	if len(containerIDs) == 0 {
		return nil
	}
	rows := make([]model.NoteContainer, 0, len(containerIDs))
	for _, cid := range containerIDs {
		rows = append(rows, model.NoteContainer{NoteID: noteID, ContainerID: cid})
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

func (r *noteRepo) RemoveContainers(ctx context.Context, noteID int64, containerIDs []int64) error {
	if len(containerIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("note_id = ? AND container_id IN ?", noteID, containerIDs).
		Delete(&model.NoteContainer{}).Error
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike экранирует спецсимволы LIKE, чтобы терм искался буквально.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
