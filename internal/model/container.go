package model

import "time"

// ContainerType — код категории P.A.R.A.
type ContainerType string

const (
	ContainerProject  ContainerType = "P"
	ContainerArea     ContainerType = "A"
	ContainerResource ContainerType = "R"
	ContainerArchive  ContainerType = "ARCHIVE"
)

// ContainerTypes перечисляет допустимые коды в порядке P.A.R.A.
var ContainerTypes = []ContainerType{ContainerProject, ContainerArea, ContainerResource, ContainerArchive}

// Valid сообщает, является ли код одним из четырёх допустимых.
func (t ContainerType) Valid() bool {
	switch t {
	case ContainerProject, ContainerArea, ContainerResource, ContainerArchive:
		return true
	}
	return false
}

// Display возвращает человекочитаемое имя категории.
func (t ContainerType) Display() string {
	switch t {
	case ContainerProject:
		return "Project"
	case ContainerArea:
		return "Area"
	case ContainerResource:
		return "Resource"
	case ContainerArchive:
		return "Archive"
	}
	return string(t)
}

// Container — корзина классификации P.A.R.A., принадлежащая одному пользователю.
type Container struct {
	ID      int64 `gorm:"primaryKey;autoIncrement"`
	OwnerID int64 `gorm:"not null;index"`

	// Связи
	Owner *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Name        string        `gorm:"size:100;not null"`
	Type        ContainerType `gorm:"size:10;not null;index"`
	Description *string

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// OwnerUserID возвращает id владельца (для policy.Owned).
func (c *Container) OwnerUserID() int64 {
	if c == nil {
		return 0
	}
	return c.OwnerID
}
