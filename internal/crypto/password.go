// Package crypto hashes user passwords for the sync server.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Параметры Argon2id
const (
	// Argon2Time - количество итераций (time cost)
	Argon2Time = 1
	// Argon2Memory - объем памяти в KB (64MB = 64*1024 KB)
	Argon2Memory = 64 * 1024
	// Argon2Threads - количество параллельных потоков
	Argon2Threads = 4
	// Argon2KeyLen - длина выходного ключа в байтах
	Argon2KeyLen = 32
	// SaltSize - размер соли в байтах
	SaltSize = 32
)

// ErrPasswordMismatch возвращается, если пароль не совпал с сохранённым хешем
var ErrPasswordMismatch = errors.New("password does not match")

// GenerateSalt генерирует криптографически случайную соль
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// HashPassword derives an Argon2id hash of password with a fresh salt.
// Both values are returned base64 encoded, ready to be stored.
func HashPassword(password string) (hash, salt string, err error) {
	if password == "" {
		return "", "", fmt.Errorf("password cannot be empty")
	}

	rawSalt, err := GenerateSalt()
	if err != nil {
		return "", "", err
	}

	key := argon2.IDKey([]byte(password), rawSalt, Argon2Time, Argon2Memory, Argon2Threads, Argon2KeyLen)
	return base64.StdEncoding.EncodeToString(key), base64.StdEncoding.EncodeToString(rawSalt), nil
}

// VerifyPassword checks password against a hash produced by HashPassword.
func VerifyPassword(password, hash, salt string) error {
	if password == "" {
		return ErrPasswordMismatch
	}

	rawSalt, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return fmt.Errorf("failed to decode salt: %w", err)
	}
	want, err := base64.StdEncoding.DecodeString(hash)
	if err != nil {
		return fmt.Errorf("failed to decode hash: %w", err)
	}

	got := argon2.IDKey([]byte(password), rawSalt, Argon2Time, Argon2Memory, Argon2Threads, uint32(len(want)))
	if subtle.ConstantTimeCompare(got, want) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}
