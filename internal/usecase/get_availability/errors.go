package get_availability

import "errors"

var (
	// ErrYachtNotFound возвращается, когда яхта не найдена или выведена из флота
	ErrYachtNotFound = errors.New("get_availability: yacht not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrStoreUnavailable возвращается при недоступности хранилища
	// Временная ошибка: можно повторить с backoff
	ErrStoreUnavailable = errors.New("get_availability: reservation store unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
