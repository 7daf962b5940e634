package accountservice

import "errors"

var (
	// ErrAccountNotFound возвращается, когда аккаунт не найден в справочнике
	ErrAccountNotFound = errors.New("accountservice client: account not found")

	// ErrInternal возвращается при сетевых и внутренних ошибках клиента
	ErrInternal = errors.New("accountservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("accountservice client: invalid response")
)
