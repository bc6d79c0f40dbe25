package domain

import "time"

// User represents a rider account. PasswordHash is empty for accounts
// created through Google sign-in only.
type User struct {
	ID             uint
	Name           string
	Email          string
	Phone          string
	PasswordHash   string
	GoogleID       string
	ProfilePicture string

	// Login OTP slot
	OTP       *string
	OTPExpiry *time.Time

	// Password-reset OTP slot, independent of the login slot
	ResetOTP       *string
	ResetOTPExpiry *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OTPSlot selects which one-time-code pair on a user record an operation
// works against.
type OTPSlot int

const (
	SlotLogin OTPSlot = iota
	SlotReset
)

func (s OTPSlot) String() string {
	if s == SlotReset {
		return "reset"
	}
	return "login"
}

// Slot returns the code and expiry stored in the given slot.
func (u *User) Slot(slot OTPSlot) (*string, *time.Time) {
	if slot == SlotReset {
		return u.ResetOTP, u.ResetOTPExpiry
	}
	return u.OTP, u.OTPExpiry
}

// SetSlot stores a code and its expiry in the given slot. Code and expiry
// are always written together.
func (u *User) SetSlot(slot OTPSlot, code string, expiry time.Time) {
	if slot == SlotReset {
		u.ResetOTP = &code
		u.ResetOTPExpiry = &expiry
		return
	}
	u.OTP = &code
	u.OTPExpiry = &expiry
}

// ClearSlot empties the given slot. The other slot is never touched.
func (u *User) ClearSlot(slot OTPSlot) {
	if slot == SlotReset {
		u.ResetOTP = nil
		u.ResetOTPExpiry = nil
		return
	}
	u.OTP = nil
	u.OTPExpiry = nil
}

// PublicUser is the projection of a User that is safe to return to
// clients. It never carries the password hash or OTP state.
type PublicUser struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// Public returns the client-facing projection of the user.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Phone:          u.Phone,
		ProfilePicture: u.ProfilePicture,
	}
}

// AuthResult represents a successful authentication outcome.
type AuthResult struct {
	User  *User
	Token string
}

// Booking statuses
const (
	BookingStatusBooked     = "booked"
	BookingStatusInProgress = "in-progress"
	BookingStatusCompleted  = "completed"
	BookingStatusCancelled  = "cancelled"
)

// Booking represents a ride booked by a user. Bookings are immutable once
// created; there is no update or cancel operation in this API.
type Booking struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"user"`
	Pickup        string    `json:"pickup"`
	Dropoff       string    `json:"dropoff"`
	Distance      float64   `json:"distance"`
	Fare          float64   `json:"fare"`
	EstimatedTime float64   `json:"estimatedTime"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BookingInput carries the client-supplied fields of a new booking.
type BookingInput struct {
	Pickup        string
	Dropoff       string
	Distance      float64
	Fare          float64
	EstimatedTime float64
}

// GoogleClaims are the identity fields extracted from a verified Google
// ID token.
type GoogleClaims struct {
	Subject string
	Email   string
	Name    string
	Picture string
}
