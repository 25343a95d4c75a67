package api

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Username string `json:"username"` // username пользователя
	Password string `json:"password"` // пароль в открытом виде, только по TLS
}

// LoginResponse is returned by login and refresh. Tokens travel in cookies only.
type LoginResponse struct {
	Username   string `json:"username"`
	Permission int    `json:"permission"` // 1 - admin, 2 - member
	Expire     int64  `json:"expire"`     // unix-время истечения access token
}

// ChangePasswordRequest представляет запрос на смену пароля
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// SetupRequest creates the site and its first admin account
type SetupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Storage  string `json:"storage"` // абсолютный путь к корню хранилища
}

// SetupStatusResponse reports whether the site still awaits setup
type SetupStatusResponse struct {
	FirstRun bool `json:"first_run"`
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
