package model

import "time"

// User — учётная запись, владелец контейнеров и заметок.
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Username string `gorm:"size:150;not null;uniqueIndex"`
	Password string `gorm:"not null"` // bcrypt-хеш, наружу не отдаётся

	Email     string `gorm:"size:254"`
	FirstName string `gorm:"size:150"`
	LastName  string `gorm:"size:150"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
