package inquiry

import (
	"errors"
	"testing"
	"time"

	"roamify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock repository for testing
type mockBookingRepo struct {
	createFunc func(b *models.Booking) error
	getAllFunc func() ([]models.Booking, error)
}

func (m *mockBookingRepo) Create(b *models.Booking) error {
	if m.createFunc != nil {
		return m.createFunc(b)
	}
	return nil
}

func (m *mockBookingRepo) GetAll() ([]models.Booking, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc()
	}
	return []models.Booking{}, nil
}

func TestCreateBookingCopiesAllowListedFields(t *testing.T) {
	var saved *models.Booking
	svc := &DefaultBookingService{Repo: &mockBookingRepo{
		createFunc: func(b *models.Booking) error {
			saved = b
			return nil
		},
	}}

	_, err := svc.CreateBooking(BookingInput{
		Name:        "A",
		Email:       "a@x.com",
		Phone:       "12345",
		Destination: "Goa",
		Package:     "Goa Getaway",
		BudgetMin:   500,
		BudgetMax:   900,
		People:      2,
		Days:        5,
		Message:     "window seats please",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, "A", saved.Name)
	assert.Equal(t, "a@x.com", saved.Email)
	assert.Equal(t, "Goa", saved.Destination)
	assert.Equal(t, "Goa Getaway", saved.Package)
	assert.Equal(t, 500.0, saved.BudgetMin)
	assert.Equal(t, 900.0, saved.BudgetMax)
	assert.Equal(t, 2, saved.People)
	assert.Equal(t, 5, saved.Days)
	assert.Equal(t, "window seats please", saved.Message)
}

func TestCreateBookingPropagatesRepoError(t *testing.T) {
	svc := &DefaultBookingService{Repo: &mockBookingRepo{
		createFunc: func(b *models.Booking) error {
			return errors.New("connection reset")
		},
	}}

	_, err := svc.CreateBooking(BookingInput{Name: "A"})
	assert.Error(t, err)
}

func TestListBookingsPreservesRepoOrder(t *testing.T) {
	newest := models.Booking{Name: "B", CreatedAt: time.Now()}
	oldest := models.Booking{Name: "A", CreatedAt: time.Now().Add(-time.Hour)}
	svc := &DefaultBookingService{Repo: &mockBookingRepo{
		getAllFunc: func() ([]models.Booking, error) {
			return []models.Booking{newest, oldest}, nil
		},
	}}

	bookings, err := svc.ListBookings()
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "B", bookings[0].Name)
	assert.Equal(t, "A", bookings[1].Name)
}
