package navigation

import "errors"

var (
	// ErrAccountNotFound возвращается, когда аккаунт вызывающего не найден
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountDirectory возвращается, когда справочник аккаунтов недоступен
	ErrAccountDirectory = errors.New("account directory unavailable")
)
