package model

import "time"

// Note — атомарная единица содержимого. Удаление заметки — это архивация.
type Note struct {
	ID      int64 `gorm:"primaryKey;autoIncrement"`
	OwnerID int64 `gorm:"not null;index"`

	// Связи
	Owner      *User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Containers []Container `gorm:"many2many:note_containers"`

	Title      string `gorm:"size:255;not null"`
	Content    string `gorm:"type:text;not null"`
	IsArchived bool   `gorm:"not null;default:false;index"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// OwnerUserID возвращает id владельца (для policy.Owned).
func (n *Note) OwnerUserID() int64 {
	if n == nil {
		return 0
	}
	return n.OwnerID
}

// ContainerIDs возвращает id связанных контейнеров в порядке загрузки.
func (n *Note) ContainerIDs() []int64 {
	ids := make([]int64, 0, len(n.Containers))
	for _, c := range n.Containers {
		ids = append(ids, c.ID)
	}
	return ids
}

// NoteContainer — строка связи заметки и контейнера.
// Составной первичный ключ делает повторную привязку no-op при ON CONFLICT DO NOTHING.
type NoteContainer struct {
	NoteID      int64 `gorm:"primaryKey;autoIncrement:false"`
	ContainerID int64 `gorm:"primaryKey;autoIncrement:false;index"`
}
