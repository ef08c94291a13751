package reschedule_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrForbidden возвращается, когда действие доступно только администратору
	ErrForbidden = errors.New("reschedule_booking: operation requires admin role")

	// ErrBookingNotFound возвращается, когда бронирование не найдено по UID
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrAlreadyCancelled возвращается при попытке перенести отмененное бронирование
	ErrAlreadyCancelled = errors.New("reschedule_booking: booking is already cancelled")

	// ErrPolicyViolation возвращается, когда новый интервал нарушает правила расписания
	ErrPolicyViolation = errors.New("reschedule_booking: interval violates charter policy")

	// ErrSlotConflict возвращается, когда новый интервал конфликтует с
	// другим бронированием с учетом межрейсового буфера
	ErrSlotConflict = errors.New("reschedule_booking: slot conflicts with existing booking")

	// ErrStoreUnavailable возвращается при недоступности хранилища
	ErrStoreUnavailable = errors.New("reschedule_booking: reservation store unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)
