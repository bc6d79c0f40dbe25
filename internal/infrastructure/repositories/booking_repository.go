package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/sudhar3084/sriram-cab-service/domain"
)

// BookingRepositoryImpl implements domain.BookingRepository using GORM
type BookingRepositoryImpl struct {
	db *gorm.DB
}

// DBBooking represents the database model for Booking (with GORM tags)
type DBBooking struct {
	ID            uint   `gorm:"primaryKey"`
	UserID        uint   `gorm:"index"`
	Pickup        string `gorm:"size:255"`
	Dropoff       string `gorm:"size:255"`
	Distance      float64
	Fare          float64
	EstimatedTime float64
	Status        string `gorm:"size:32;default:booked"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
}

// TableName returns the table name for GORM
func (DBBooking) TableName() string {
	return "bookings"
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) domain.BookingRepository {
	return &BookingRepositoryImpl{db: db}
}

// Create implements domain.BookingRepository
func (r *BookingRepositoryImpl) Create(ctx context.Context, booking *domain.Booking) error {
	dbBooking := &DBBooking{
		UserID:        booking.UserID,
		Pickup:        booking.Pickup,
		Dropoff:       booking.Dropoff,
		Distance:      booking.Distance,
		Fare:          booking.Fare,
		EstimatedTime: booking.EstimatedTime,
		Status:        booking.Status,
	}
	if err := r.db.WithContext(ctx).Create(dbBooking).Error; err != nil {
		return err
	}
	booking.ID = dbBooking.ID
	booking.CreatedAt = dbBooking.CreatedAt
	booking.UpdatedAt = dbBooking.UpdatedAt
	return nil
}

// ListByUser implements domain.BookingRepository, most recent first.
func (r *BookingRepositoryImpl) ListByUser(ctx context.Context, userID uint) ([]domain.Booking, error) {
	var dbBookings []DBBooking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&dbBookings).Error
	if err != nil {
		return nil, err
	}

	bookings := make([]domain.Booking, 0, len(dbBookings))
	for _, b := range dbBookings {
		bookings = append(bookings, domain.Booking{
			ID:            b.ID,
			UserID:        b.UserID,
			Pickup:        b.Pickup,
			Dropoff:       b.Dropoff,
			Distance:      b.Distance,
			Fare:          b.Fare,
			EstimatedTime: b.EstimatedTime,
			Status:        b.Status,
			CreatedAt:     b.CreatedAt,
			UpdatedAt:     b.UpdatedAt,
		})
	}
	return bookings, nil
}
