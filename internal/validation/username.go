package validation

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// UsernamePattern определяет допустимый формат username
// Латинские буквы, цифры, '_', '-', '.'; первый символ не точка.
// Username становится именем каталога пользователя в хранилище.
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-][a-zA-Z0-9_.-]*$`)

const (
	// MinUsernameLen минимальная длина username
	MinUsernameLen = 2
	// MaxUsernameLen максимальная длина username
	MaxUsernameLen = 32
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 6
	// MaxPasswordLen bcrypt ignores bytes past 72
	MaxPasswordLen = 72
)

// ValidateUsername проверяет, что username соответствует требованиям
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters, numbers, '_', '-' and '.', and must not start with '.'")
	}

	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if utf8.RuneCountInString(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	if len(password) > MaxPasswordLen {
		return fmt.Errorf("password must not exceed %d bytes", MaxPasswordLen)
	}

	return nil
}

// ValidateCredentials performs the cheap format check done before a login lookup.
// Only lengths are checked so that a malformed name is a 400 and an unknown one a 401.
func ValidateCredentials(username, password string) error {
	if len(username) < MinUsernameLen || len(username) > MaxUsernameLen {
		return fmt.Errorf("username must be %d-%d characters long", MinUsernameLen, MaxUsernameLen)
	}
	if utf8.RuneCountInString(password) < MinPasswordLen || len(password) > MaxPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}
	return nil
}
