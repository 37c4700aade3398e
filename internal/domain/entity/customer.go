package entity

import "time"

// Customer representa un cliente al que se le emiten facturas.
// El email es único en todo el sistema (comparación exacta, sensible a mayúsculas).
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string // opcional
	CreatedAt time.Time
	UpdatedAt time.Time
}
