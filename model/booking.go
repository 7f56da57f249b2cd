package model

import "time"

type Booking struct {
	DTO
	PublicCode      string    `gorm:"uniqueIndex;size:20" json:"publicCode"`
	UserId          uint      `gorm:"not null" json:"userId"`
	ServiceId       uint      `gorm:"not null" json:"serviceId"`
	StartDate       time.Time `gorm:"type:date;not null" json:"startDate"`
	EndDate         time.Time `gorm:"type:date;not null" json:"endDate"`
	TotalPriceRwf   float64   `gorm:"not null" json:"totalPriceRwf"`
	Status          string    `gorm:"not null;default:'pending'" json:"status"` // pending, approved, rejected
	GuestCount      int       `gorm:"default:1" json:"guestCount"`
	SpecialRequests string    `gorm:"type:text" json:"specialRequests"`

	User    User    `gorm:"foreignKey:UserId" json:"user"`
	Service Service `gorm:"foreignKey:ServiceId" json:"service"`
}

type Bookings []Booking

type PackageBooking struct {
	DTO
	PublicCode      string    `gorm:"uniqueIndex;size:20" json:"publicCode"`
	UserId          uint      `gorm:"not null" json:"userId"`
	PackageId       uint      `gorm:"not null" json:"packageId"`
	StartDate       time.Time `gorm:"type:date;not null" json:"startDate"`
	EndDate         time.Time `gorm:"type:date;not null" json:"endDate"`
	TotalPriceRwf   float64   `gorm:"not null" json:"totalPriceRwf"`
	Status          string    `gorm:"not null;default:'pending'" json:"status"`
	GuestCount      int       `gorm:"not null" json:"guestCount"`
	SpecialRequests string    `gorm:"type:text" json:"specialRequests"`

	User             User                    `gorm:"foreignKey:UserId" json:"user"`
	Package          Package                 `gorm:"foreignKey:PackageId" json:"package"`
	SelectedServices []PackageBookingService `gorm:"foreignKey:PackageBookingId;constraint:OnDelete:CASCADE" json:"selectedServices"`
}

type PackageBookings []PackageBooking

// PackageBookingService ghi lại các dịch vụ đã chọn tại thời điểm đặt
// (các dịch vụ kèm theo gói cộng với add-on khách chọn thêm)
type PackageBookingService struct {
	PackageBookingId uint    `gorm:"primaryKey" json:"packageBookingId"`
	ServiceId        uint    `gorm:"primaryKey" json:"serviceId"`
	Service          Service `gorm:"foreignKey:ServiceId" json:"service"`
}

type CreateBookingInput struct {
	ServiceId       uint   `json:"serviceId" validate:"required"`
	StartDate       string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate         string `json:"endDate" validate:"required,datetime=2006-01-02"`
	GuestCount      int    `json:"guestCount" validate:"required,min=1"`
	SpecialRequests string `json:"specialRequests"`
}

type CreatePackageBookingInput struct {
	PackageId       uint   `json:"packageId" validate:"required"`
	StartDate       string `json:"startDate" validate:"required,datetime=2006-01-02"`
	GuestCount      int    `json:"guestCount" validate:"required,min=1"`
	ExtraServiceIds []uint `json:"extraServiceIds" validate:"omitempty,dive,required"`
	SpecialRequests string `json:"specialRequests"`
}
