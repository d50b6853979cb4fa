package model

// Zone is one of the four dining rooms. IsOpen is the global availability
// switch the booking flow consults; a closed zone is skipped regardless of
// date ("temporarily closed for maintenance").
type Zone struct {
	DTO
	Name   string `gorm:"size:30;uniqueIndex;not null" json:"name"`
	Prefix string `gorm:"size:1;not null" json:"prefix"`
	IsOpen bool   `gorm:"default:true" json:"isOpen"`
	Note   string `gorm:"size:200" json:"note"`
}

type CloseZoneInput struct {
	Note string `json:"note"`
}
