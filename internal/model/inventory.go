package model

import "time"

// InventoryItem — серверная модель складской позиции.
// Владелец назначается при создании и далее не меняется.
type InventoryItem struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID int64  `gorm:"not null;index" json:"-"` // ссылка на users.id

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user,omitempty"`

	Name        string  `gorm:"not null" json:"name"`
	Description string  `gorm:"not null" json:"description"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	Price       float64 `gorm:"not null" json:"price"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
