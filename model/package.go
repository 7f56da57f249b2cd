package model

type Package struct {
	DTO
	Name           string  `gorm:"not null" validate:"required" json:"name"`
	Slug           string  `gorm:"uniqueIndex;size:120" json:"slug"`
	Description    string  `gorm:"type:text" json:"description"`
	BasePriceRwf   float64 `gorm:"not null" json:"basePriceRwf"`
	Category       string  `gorm:"not null" json:"category"` // Wedding, Conference
	DurationDays   int     `gorm:"default:1" json:"durationDays"`
	MaxGuests      int     `gorm:"not null;default:1" json:"maxGuests"`
	IsCustomizable bool    `gorm:"default:true" json:"isCustomizable"`
	CoverImage     *string `json:"coverImage"`

	Services []Service        `gorm:"many2many:package_services;" json:"services"`
	Bookings []PackageBooking `gorm:"foreignKey:PackageId" json:"-"`
}

type Packages []Package

type CreatePackageInput struct {
	Name           string  `json:"name" validate:"required,min=2,max=100"`
	Category       string  `json:"category" validate:"required,oneof=Wedding Conference"`
	Description    string  `json:"description" validate:"required"`
	BasePriceRwf   float64 `json:"basePriceRwf" validate:"required,gt=0"`
	DurationDays   int     `json:"durationDays" validate:"required,min=1"`
	MaxGuests      int     `json:"maxGuests" validate:"required,min=1"`
	IsCustomizable *bool   `json:"isCustomizable"`
	ServiceIds     []uint  `json:"serviceIds" validate:"required,min=1,dive,required"`
}

type EditPackageInput struct {
	Name           *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Category       *string  `json:"category" validate:"omitempty,oneof=Wedding Conference"`
	Description    *string  `json:"description"`
	BasePriceRwf   *float64 `json:"basePriceRwf" validate:"omitempty,gte=0"`
	DurationDays   *int     `json:"durationDays" validate:"omitempty,min=1"`
	MaxGuests      *int     `json:"maxGuests" validate:"omitempty,min=1"`
	IsCustomizable *bool    `json:"isCustomizable"`
}

type AddPackageServiceInput struct {
	ServiceId uint `json:"serviceId" validate:"required"`
}
