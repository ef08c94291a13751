package fleetservice

// Yacht модель яхты из FleetService
type Yacht struct {
	ID       int64  `json:"id"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Timezone string `json:"timezone"` // IANA, например "Europe/Athens"
	Active   bool   `json:"active"`
}

// ErrorResponse модель ошибки от FleetService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
