package model

import "time"

type User struct {
	DTO
	Username    string  `gorm:"uniqueIndex;not null" validate:"required,min=3,max=50" json:"username"`
	Password    string  `gorm:"not null" json:"-"`
	Role        string  `gorm:"not null" json:"role"` // Admin hoặc User
	FullName    string  `gorm:"not null" json:"fullName"`
	PhoneNumber string  `gorm:"not null" json:"phoneNumber"`
	Age         int     `gorm:"not null" json:"age"`
	IsActive    bool    `gorm:"not null;default:true" json:"isActive"`
	Email       *string `json:"email"`

	Bookings        []Booking        `gorm:"foreignKey:UserId" json:"-"`
	PackageBookings []PackageBooking `gorm:"foreignKey:UserId" json:"-"`
}

type Users []User

// UserResponse không bao giờ chứa password hash
type UserResponse struct {
	ID                  uint      `json:"id"`
	Username            string    `json:"username"`
	Role                string    `json:"role"`
	FullName            string    `json:"fullName"`
	PhoneNumber         string    `json:"phoneNumber"`
	Age                 int       `json:"age"`
	IsActive            bool      `json:"isActive"`
	Email               *string   `json:"email"`
	CreatedAt           time.Time `json:"createdAt"`
	BookingCount        int64     `json:"bookingCount"`
	PackageBookingCount int64     `json:"packageBookingCount"`
}

type SignupInput struct {
	Username        string  `json:"username" validate:"required,min=3,max=50"`
	Password        string  `json:"password" validate:"required,min=6,max=50"`
	ConfirmPassword string  `json:"confirmPassword" validate:"required"`
	FullName        string  `json:"fullName" validate:"required"`
	PhoneNumber     string  `json:"phoneNumber" validate:"required"`
	Age             int     `json:"age" validate:"required,min=1,max=120"`
	Email           *string `json:"email" validate:"omitempty,email"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=Admin User"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type PasswordResetToken struct {
	DTO
	UserId    uint      `gorm:"not null" json:"userId"`
	Token     string    `gorm:"type:varchar(255);not null;unique" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	User      User      `gorm:"foreignKey:UserId" json:"user"`
}
