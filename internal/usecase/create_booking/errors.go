package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrYachtNotFound возвращается, когда яхта не найдена или выведена из флота
	ErrYachtNotFound = errors.New("create_booking: yacht not found")

	// ErrPolicyViolation возвращается, когда интервал нарушает правила
	// расписания (окно дня, длительность, полуденный буфер)
	ErrPolicyViolation = errors.New("create_booking: interval violates charter policy")

	// ErrSlotConflict возвращается, когда интервал конфликтует с
	// существующим бронированием с учетом межрейсового буфера
	ErrSlotConflict = errors.New("create_booking: slot conflicts with existing booking")

	// ErrStoreUnavailable возвращается при недоступности хранилища
	ErrStoreUnavailable = errors.New("create_booking: reservation store unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
