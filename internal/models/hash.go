package models

import (
	"encoding/hex"
	"strconv"
	"time"

	"golang.org/x/crypto/blake2b"
)

// ContentHash вычисляет отпечаток бизнес-полей записи.
// Одинаковый хеш означает повторный импорт той же записи.
// Служебные поля (ID, статус, время изменения) в хеш не входят.
func ContentHash(b *Bill) string {
	h, _ := blake2b.New256(nil) // nil key never fails

	write := func(s string) {
		_, _ = h.Write([]byte(s))
		_, _ = h.Write([]byte{0})
	}

	write(b.BookID)
	write(strconv.FormatInt(int64(b.Money), 10))
	write(strconv.Itoa(int(b.Type)))
	write(b.Category)
	write(b.Time.UTC().Truncate(time.Second).Format(time.RFC3339))
	write(b.Remark)

	return hex.EncodeToString(h.Sum(nil))
}
