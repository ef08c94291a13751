package cancel_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrForbidden возвращается, когда отмену запрашивает не владелец
	// бронирования и не администратор
	ErrForbidden = errors.New("cancel_booking: actor is neither owner nor admin")

	// ErrBookingNotFound возвращается, когда бронирование не найдено по UID
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrStoreUnavailable возвращается при недоступности хранилища
	ErrStoreUnavailable = errors.New("cancel_booking: reservation store unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
