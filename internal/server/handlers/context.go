package handlers

import (
	"context"

	"github.com/iudanet/gophmedia/internal/models"
)

// contextKey тип для ключей контекста
type contextKey string

const (
	// UserIDKey ключ для хранения user_id в контексте
	UserIDKey contextKey = "user_id"
	// PermissionKey ключ для хранения уровня доступа в контексте
	PermissionKey contextKey = "permission"
)

// WithUser returns ctx carrying the authenticated user
func WithUser(ctx context.Context, userID int64, permission models.Permission) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	return context.WithValue(ctx, PermissionKey, permission)
}

// GetUserID извлекает user_id из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}

// GetPermission извлекает уровень доступа из контекста запроса
func GetPermission(ctx context.Context) (models.Permission, bool) {
	perm, ok := ctx.Value(PermissionKey).(models.Permission)
	return perm, ok
}
