package repositories

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/sudhar3084/sriram-cab-service/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags). OTP slot
// columns are nullable; a code and its expiry are always written together.
type DBUser struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"size:255"`
	Email          string `gorm:"uniqueIndex;size:255"`
	Phone          string `gorm:"size:32"`
	PasswordHash   string `gorm:"column:password"`
	GoogleID       string `gorm:"index;size:64"`
	ProfilePicture string
	OTP            *string `gorm:"size:6"`
	OTPExpiry      *time.Time
	ResetOTP       *string `gorm:"size:6"`
	ResetOTPExpiry *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository. Emails are stored lowercase so
// uniqueness is case-insensitive.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	user.Email = strings.ToLower(user.Email)
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return err
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// Update implements domain.UserRepository. Save writes the whole record,
// including cleared OTP slot columns.
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	user.Email = strings.ToLower(user.Email)
	return r.db.WithContext(ctx).Save(r.domainToDB(user)).Error
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Phone:          user.Phone,
		PasswordHash:   user.PasswordHash,
		GoogleID:       user.GoogleID,
		ProfilePicture: user.ProfilePicture,
		OTP:            user.OTP,
		OTPExpiry:      user.OTPExpiry,
		ResetOTP:       user.ResetOTP,
		ResetOTPExpiry: user.ResetOTPExpiry,
		CreatedAt:      user.CreatedAt,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:             dbUser.ID,
		Name:           dbUser.Name,
		Email:          dbUser.Email,
		Phone:          dbUser.Phone,
		PasswordHash:   dbUser.PasswordHash,
		GoogleID:       dbUser.GoogleID,
		ProfilePicture: dbUser.ProfilePicture,
		OTP:            dbUser.OTP,
		OTPExpiry:      dbUser.OTPExpiry,
		ResetOTP:       dbUser.ResetOTP,
		ResetOTPExpiry: dbUser.ResetOTPExpiry,
		CreatedAt:      dbUser.CreatedAt,
		UpdatedAt:      dbUser.UpdatedAt,
	}
}
