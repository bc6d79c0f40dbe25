package mocks

import (
	"context"

	"github.com/sudhar3084/sriram-cab-service/domain"
)

// MockBookingRepository implements domain.BookingRepository interface for testing
type MockBookingRepository struct {
	CreateFunc     func(ctx context.Context, booking *domain.Booking) error
	ListByUserFunc func(ctx context.Context, userID uint) ([]domain.Booking, error)
}

// NewMockBookingRepository creates a new MockBookingRepository with default behaviors
func NewMockBookingRepository() *MockBookingRepository {
	return &MockBookingRepository{}
}

// Create creates a new booking
func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, booking)
	}
	// Default behavior: success
	return nil
}

// ListByUser lists bookings owned by a user
func (m *MockBookingRepository) ListByUser(ctx context.Context, userID uint) ([]domain.Booking, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	// Default behavior: empty list
	return []domain.Booking{}, nil
}

// Compile-time interface compliance verification
var _ domain.BookingRepository = (*MockBookingRepository)(nil)
