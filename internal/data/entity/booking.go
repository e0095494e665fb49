package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a single visit reservation. TotalAmount is stored exactly as submitted.
type Booking struct {
	BaseSimple
	MonumentID  uuid.UUID `db:"monument_id"`
	UserName    string    `db:"user_name"`
	UserEmail   string    `db:"user_email"`
	BookingDate time.Time `db:"booking_date"`
	Pax         int       `db:"pax"`
	TotalAmount float64   `db:"total_amount"`
}

// BookingWithMonument is a booking joined with the monument it points at.
type BookingWithMonument struct {
	Booking
	Monument Monument
}
