package model

import "time"

// RefreshSession — выданный refresh-токен. Хранится только отпечаток токена.
type RefreshSession struct {
	ID        string    `gorm:"primaryKey;size:26" json:"id"` // ULID
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	TokenHash string    `gorm:"size:64;not null;uniqueIndex" json:"token_hash"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Expired сообщает, истёк ли срок сессии на момент now.
func (s *RefreshSession) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
