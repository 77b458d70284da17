package bookingRepo

import "roamify/models"

// BookingRepository defines persistence operations for booking inquiries.
// Bookings are write-once: the system never updates or deletes them.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetAll() ([]models.Booking, error)
}
