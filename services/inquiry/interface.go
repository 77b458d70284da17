package inquiry

import "roamify/models"

// BookingInput is the allow-listed shape accepted for a new booking
// inquiry. Fields outside this list are dropped, never persisted.
type BookingInput struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Destination string  `json:"destination"`
	Package     string  `json:"package"`
	BudgetMin   float64 `json:"budgetMin"`
	BudgetMax   float64 `json:"budgetMax"`
	People      int     `json:"people"`
	Days        int     `json:"days"`
	Message     string  `json:"message"`
}

// BookingService defines operations over booking inquiries.
type BookingService interface {
	CreateBooking(in BookingInput) (*models.Booking, error)
	ListBookings() ([]models.Booking, error)
}
