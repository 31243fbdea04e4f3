package service

import (
	"errors"
	"strings"
)

// Ошибки уровня сервиса. Хендлеры переводят их в HTTP-статусы.
var (
	// ErrInvalidCredentials — неизвестный email или неверный пароль.
	// Формулировка едина, чтобы не раскрывать существование аккаунта.
	ErrInvalidCredentials = errors.New("Invalid credentials")

	// ErrNotFound — запрошенная запись отсутствует.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden — аутентифицирован, но прав недостаточно.
	ErrForbidden = errors.New("not authorized to perform this action")
)

// ValidationError перечисляет нарушенные ограничения входных данных.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, ", ")
}

// AsValidationError извлекает *ValidationError из цепочки ошибок.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
