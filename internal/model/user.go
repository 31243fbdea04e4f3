package model

import "time"

// Role — уровень привилегий пользователя.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Valid сообщает, входит ли роль в допустимый набор.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStaff
}

// User — серверная модель пользователя склада.
type User struct {
	ID    int64  `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`

	// Хеш пароля (bcrypt). Никогда не сериализуется наружу.
	Password string `gorm:"not null" json:"-"`

	Role Role `gorm:"not null;default:staff" json:"role"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
