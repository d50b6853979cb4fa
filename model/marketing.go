package model

import "time"

// MarketingPost is a promotional post for the public site. Only live posts
// are served to guests; scheduled posts go live via the publish scheduler.
type MarketingPost struct {
	DTO
	Title     string     `gorm:"size:150;not null" json:"title"`
	Caption   string     `gorm:"not null" json:"caption"`
	Status    string     `gorm:"size:10;not null;default:'draft'" json:"status"`
	Image     string     `json:"image"`
	Hashtags  string     `gorm:"default:'#LalibelaTerminal'" json:"hashtags"`
	PublishAt *time.Time `json:"publishAt"`
}

type CreateMarketingPostInput struct {
	Title    string `json:"title" validate:"required,min=2,max=150"`
	Caption  string `json:"caption" validate:"required"`
	Status   string `json:"status" validate:"omitempty,oneof=draft scheduled live"`
	Image    string `json:"image"`
	Hashtags string `json:"hashtags"`
	// Required when status is scheduled.
	PublishAt *time.Time `json:"publishAt"`
}

type UpdateMarketingPostInput struct {
	Title     *string    `json:"title" validate:"omitempty,min=2,max=150"`
	Caption   *string    `json:"caption" validate:"omitempty"`
	Status    *string    `json:"status" validate:"omitempty,oneof=draft scheduled live"`
	Image     *string    `json:"image"`
	Hashtags  *string    `json:"hashtags"`
	PublishAt *time.Time `json:"publishAt"`
}
