package mocks

import (
	"context"

	"github.com/sudhar3084/sriram-cab-service/domain"
)

// MockBookingService implements domain.BookingService interface for testing
type MockBookingService struct {
	CreateFunc func(ctx context.Context, userID uint, input domain.BookingInput) (*domain.Booking, error)
	ListFunc   func(ctx context.Context, userID uint) ([]domain.Booking, error)
}

// NewMockBookingService creates a new MockBookingService with default behaviors
func NewMockBookingService() *MockBookingService {
	return &MockBookingService{}
}

// Create books a new ride
func (m *MockBookingService) Create(ctx context.Context, userID uint, input domain.BookingInput) (*domain.Booking, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, input)
	}
	// Default behavior: success
	return &domain.Booking{
		ID:            1,
		UserID:        userID,
		Pickup:        input.Pickup,
		Dropoff:       input.Dropoff,
		Distance:      input.Distance,
		Fare:          input.Fare,
		EstimatedTime: input.EstimatedTime,
		Status:        domain.BookingStatusBooked,
	}, nil
}

// List returns a user's bookings
func (m *MockBookingService) List(ctx context.Context, userID uint) ([]domain.Booking, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	// Default behavior: empty list
	return []domain.Booking{}, nil
}

// Compile-time interface compliance verification
var _ domain.BookingService = (*MockBookingService)(nil)
