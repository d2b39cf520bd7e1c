package validation

import (
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"
)

var usernameChars = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// Ограничения учётных данных, общие для клиента и сервера
const (
	MinUsernameLen = 3
	MaxUsernameLen = 32
	MinPasswordLen = 8
	MaxPasswordLen = 128
)

var (
	ErrUsernameEmpty   = errors.New("username cannot be empty")
	ErrUsernameLength  = fmt.Errorf("username must be %d-%d characters long", MinUsernameLen, MaxUsernameLen)
	ErrUsernameCharset = errors.New("username can only contain letters (a-z, A-Z), numbers (0-9), and underscores (_)")
	ErrPasswordEmpty   = errors.New("password cannot be empty")
	ErrPasswordLength  = fmt.Errorf("password must be %d-%d characters long", MinPasswordLen, MaxPasswordLen)
)

// ValidateUsername checks the login name used for both the account and the MQTT username.
func ValidateUsername(username string) error {
	switch {
	case username == "":
		return ErrUsernameEmpty
	case len(username) < MinUsernameLen || len(username) > MaxUsernameLen:
		return ErrUsernameLength
	case !usernameChars.MatchString(username):
		return ErrUsernameCharset
	}
	return nil
}

// ValidatePassword проверяет длину пароля в символах
func ValidatePassword(password string) error {
	if password == "" {
		return ErrPasswordEmpty
	}
	if n := utf8.RuneCountInString(password); n < MinPasswordLen || n > MaxPasswordLen {
		return ErrPasswordLength
	}
	return nil
}

// Credentials validates a username/password pair and reports every failed rule.
func Credentials(username, password string) error {
	return errors.Join(ValidateUsername(username), ValidatePassword(password))
}
