package slots

import "errors"

var (
	// ErrInvalidTemplate возвращается при некорректном диапазоне часов генерации
	ErrInvalidTemplate = errors.New("slots: invalid slot template")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slots: internal error")
)
