package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrIntervalTaken возвращается, когда БД отклонила запись из-за
	// пересечения буферизованных интервалов (exclusion constraint).
	// Это последний рубеж защиты от двойного бронирования.
	ErrIntervalTaken = errors.New("reservation.repository: interval already taken")

	// ErrAlreadyCancelled возвращается при попытке изменить отмененное бронирование
	ErrAlreadyCancelled = errors.New("reservation.repository: reservation already cancelled")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
