// Package policy решает, может ли пользователь работать с конкретной сущностью.
package policy

// Owned — сущность, у которой есть владелец.
type Owned interface {
	OwnerUserID() int64
}

// Permits разрешает доступ только владельцу сущности.
// Нулевой userID (анонимный запрос) не получает доступ никогда.
func Permits(userID int64, entity Owned) bool {
	if userID == 0 || entity == nil {
		return false
	}
	return entity.OwnerUserID() == userID
}
