package fleetservice

import "errors"

var (
	// ErrYachtNotFound возвращается, когда яхта с указанным slug не найдена
	ErrYachtNotFound = errors.New("fleetservice client: yacht not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("fleetservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("fleetservice client: invalid response")
)
