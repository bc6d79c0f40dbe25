package services

import (
	"context"
	"fmt"

	"github.com/sudhar3084/sriram-cab-service/domain"
)

// BookingServiceImpl implements domain.BookingService
type BookingServiceImpl struct {
	bookingRepo domain.BookingRepository
}

// NewBookingService creates a new booking service
func NewBookingService(bookingRepo domain.BookingRepository) domain.BookingService {
	return &BookingServiceImpl{bookingRepo: bookingRepo}
}

// Create implements domain.BookingService
func (s *BookingServiceImpl) Create(ctx context.Context, userID uint, input domain.BookingInput) (*domain.Booking, error) {
	booking := &domain.Booking{
		UserID:        userID,
		Pickup:        input.Pickup,
		Dropoff:       input.Dropoff,
		Distance:      input.Distance,
		Fare:          input.Fare,
		EstimatedTime: input.EstimatedTime,
		Status:        domain.BookingStatusBooked,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return booking, nil
}

// List implements domain.BookingService
func (s *BookingServiceImpl) List(ctx context.Context, userID uint) ([]domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}
