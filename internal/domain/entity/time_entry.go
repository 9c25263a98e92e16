package entity

import "time"

// TimeEntry es un fichaje. ClockOut nil significa turno abierto.
type TimeEntry struct {
	ID       string
	UserID   string // referencia débil a User.ID
	ClockIn  time.Time
	ClockOut *time.Time
}

// IsOpen indica si el turno sigue abierto.
func (e *TimeEntry) IsOpen() bool {
	return e.ClockOut == nil
}

// DurationHours devuelve la duración del turno cerrado en horas (0 si sigue abierto).
func (e *TimeEntry) DurationHours() float64 {
	if e.ClockOut == nil {
		return 0
	}
	return float64(e.ClockOut.Sub(e.ClockIn).Milliseconds()) / 3_600_000
}
