package dto

// RememberDriverRequest sets the driver that bookings in this session are made for.
type RememberDriverRequest struct {
	DriverID string `json:"driver_id" validate:"required,numeric"`
}
