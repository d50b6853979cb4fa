package model

// Account is the single back-office admin. Password holds a bcrypt hash.
type Account struct {
	DTO
	Username string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
