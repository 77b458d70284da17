package inquiry

import (
	bookingRepo "roamify/database/repository/booking"
	"roamify/models"
)

// DefaultBookingService implements BookingService over the booking
// repository.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}

// CreateBooking persists a new inquiry built from the allow-listed input.
func (s *DefaultBookingService) CreateBooking(in BookingInput) (*models.Booking, error) {
	booking := &models.Booking{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Destination: in.Destination,
		Package:     in.Package,
		BudgetMin:   in.BudgetMin,
		BudgetMax:   in.BudgetMax,
		People:      in.People,
		Days:        in.Days,
		Message:     in.Message,
	}
	if err := s.Repo.Create(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// ListBookings returns all inquiries, newest first.
func (s *DefaultBookingService) ListBookings() ([]models.Booking, error) {
	return s.Repo.GetAll()
}
