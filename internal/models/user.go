package models

import "time"

// Permission определяет уровень доступа пользователя
type Permission int

const (
	// PermissionAdmin - администратор сайта, создается при первичной настройке
	PermissionAdmin Permission = 1
	// PermissionMember - обычный пользователь
	PermissionMember Permission = 2
)

// Valid reports whether p is a known permission level
func (p Permission) Valid() bool {
	return p == PermissionAdmin || p == PermissionMember
}

func (p Permission) String() string {
	switch p {
	case PermissionAdmin:
		return "admin"
	case PermissionMember:
		return "member"
	default:
		return "unknown"
	}
}

// User представляет пользователя в системе
type User struct {
	CreatedAt    time.Time  `json:"created_at"`    // время создания
	UpdatedAt    time.Time  `json:"updated_at"`    // время последнего обновления
	Username     string     `json:"username"`      // уникальный username
	PasswordHash string     `json:"-"`             // bcrypt хеш пароля
	ID           int64      `json:"id"`            // первичный ключ
	Permission   Permission `json:"permission"`    // уровень доступа
}
