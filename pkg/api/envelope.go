package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Коды ответов сервера. Любой ненулевой код означает неудачу операции.
const (
	CodeOK           = 0
	CodeBadRequest   = 400
	CodeUnauthorized = 401
	CodeForbidden    = 403
	CodeNotFound     = 404
	CodeConflict     = 409
	CodeTooMany      = 429
	CodeInternal     = 500
)

// HeaderDeviceID заголовок с id устройства-отправителя изменений
const HeaderDeviceID = "X-Device-ID"

// ErrRemote wraps every failure reported by the server envelope.
var ErrRemote = errors.New("remote operation failed")

// Response единый конверт ответа сервера {code, msg, data}
type Response struct {
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data,omitempty"`
	Code int             `json:"code"`
}

// Error ошибка, возвращённая сервером в конверте
type Error struct {
	Msg  string
	Code int
}

func (e *Error) Error() string {
	return fmt.Sprintf("remote error %d: %s", e.Code, e.Msg)
}

// Is makes errors.Is(err, ErrRemote) true for every *Error.
func (e *Error) Is(target error) bool {
	return target == ErrRemote
}
