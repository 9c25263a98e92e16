package dto

import "time"

// TimeEntryResponse fichaje.
type TimeEntryResponse struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	ClockIn       time.Time  `json:"clock_in"`
	ClockOut      *time.Time `json:"clock_out,omitempty"`
	DurationHours float64    `json:"duration_hours,omitempty"`
}

// ClockOutResponse resultado de cerrar un turno.
type ClockOutResponse struct {
	Entry         TimeEntryResponse `json:"entry"`
	DurationHours float64           `json:"duration_hours"`
	TotalHours    float64           `json:"total_hours"`
	Message       string            `json:"message"`
}

// TimeStatusResponse estado del turno de una identidad.
type TimeStatusResponse struct {
	ClockedIn  bool               `json:"clocked_in"`
	OpenEntry  *TimeEntryResponse `json:"open_entry,omitempty"`
	TotalHours float64            `json:"total_hours"`
}
