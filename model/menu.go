package model

type MenuItem struct {
	DTO
	Name        string  `gorm:"size:100;not null" json:"name"`
	Slug        string  `gorm:"size:120;uniqueIndex" json:"slug"`
	Description string  `gorm:"not null" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Category    string  `gorm:"size:30;not null" json:"category"`
	Image       string  `json:"image"`
	IsAvailable bool    `gorm:"default:true" json:"isAvailable"`
	ChefTip     string  `json:"chefTip"`
}

type CreateMenuItemInput struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required"`
	// Base64 payload or an already-hosted URL.
	Image   string `json:"image"`
	ChefTip string `json:"chefTip"`
}

type UpdateMenuItemInput struct {
	Name        *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string  `json:"description" validate:"omitempty"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Category    *string  `json:"category" validate:"omitempty"`
	Image       *string  `json:"image"`
	IsAvailable *bool    `json:"isAvailable"`
	ChefTip     *string  `json:"chefTip"`
}
