package model

type Service struct {
	DTO
	Name        string  `gorm:"not null" validate:"required" json:"name"`
	Slug        string  `gorm:"uniqueIndex;size:120" json:"slug"`
	Category    string  `gorm:"not null" json:"category"` // Single, Double, Suite, Conference, Add-on
	Description string  `gorm:"type:text" json:"description"`
	PriceRwf    float64 `gorm:"not null" json:"priceRwf"` // giá mỗi đêm
	Size        string  `json:"size"`                     // ví dụ: 18m²
	Details     string  `gorm:"type:text" json:"details"`
	CoverImage  *string `json:"coverImage"`
	MaxCapacity *int    `json:"maxCapacity"`
	IsAddOn     bool    `gorm:"default:false" json:"isAddOn"`

	Images   []ServiceImage `gorm:"foreignKey:ServiceId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"images"`
	Bookings []Booking      `gorm:"foreignKey:ServiceId" json:"-"`
	Packages []Package      `gorm:"many2many:package_services;" json:"-"`
}

type Services []Service

type ServiceImage struct {
	DTO
	ServiceId uint    `gorm:"not null" json:"serviceId"`
	ImagePath string  `gorm:"not null" json:"imagePath"`
	IsCover   bool    `gorm:"default:false" json:"isCover"`
	Caption   string  `json:"caption"`
	Service   Service `gorm:"foreignKey:ServiceId" json:"-"`
}

type CreateServiceInput struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Category    string  `json:"category" validate:"required,oneof=Single Double Suite Conference Add-on"`
	Description string  `json:"description" validate:"required"`
	PriceRwf    float64 `json:"priceRwf" validate:"required,gt=0"`
	Size        string  `json:"size" validate:"required"`
	Details     string  `json:"details" validate:"required"`
	MaxCapacity *int    `json:"maxCapacity" validate:"omitempty,min=1"`
	IsAddOn     *bool   `json:"isAddOn"`
}

type EditServiceInput struct {
	Name        *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Category    *string  `json:"category" validate:"omitempty,oneof=Single Double Suite Conference Add-on"`
	Description *string  `json:"description"`
	PriceRwf    *float64 `json:"priceRwf" validate:"omitempty,gte=0"`
	Size        *string  `json:"size"`
	Details     *string  `json:"details"`
	MaxCapacity *int     `json:"maxCapacity" validate:"omitempty,min=1"`
	IsAddOn     *bool    `json:"isAddOn"`
}

type AddServiceImagesInput struct {
	Caption string `json:"caption"`
}
