package service

import "StockKeeper/internal/model"

// Operation — вид действия над складской позицией.
type Operation string

const (
	OpCreate Operation = "create"
	OpRead   Operation = "read"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Actor — аутентифицированный пользователь, от имени которого выполняется запрос.
type Actor struct {
	ID   int64
	Role model.Role
}

// CanMutate — чистая функция политики доступа.
// create разрешён обеим ролям (владельца ещё нет), update/delete — админу
// либо владельцу, read — любому аутентифицированному пользователю.
func CanMutate(actorID int64, actorRole model.Role, ownerID int64, op Operation) bool {
	switch op {
	case OpCreate:
		return actorRole == model.RoleAdmin || actorRole == model.RoleStaff
	case OpRead:
		return actorRole.Valid()
	case OpUpdate, OpDelete:
		return actorRole == model.RoleAdmin || actorID == ownerID
	default:
		return false
	}
}
