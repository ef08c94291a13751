package get_availability

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.YachtSlug == "" {
		return fmt.Errorf("%w: yachtSlug is required", ErrInvalidInput)
	}

	if req.Month.IsZero() {
		return fmt.Errorf("%w: month is required", ErrInvalidInput)
	}

	if req.Month.Day() != 1 {
		return fmt.Errorf("%w: month must be the first day of a month", ErrInvalidInput)
	}

	return nil
}
