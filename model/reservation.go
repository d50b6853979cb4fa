package model

// Reservation is one booked table. Date and Time stay strings on purpose:
// the booking vocabulary is "YYYY-MM-DD" plus a slot label like "7:00 PM",
// and nothing downstream needs instants.
type Reservation struct {
	DTO
	ReferenceCode string `gorm:"size:20;uniqueIndex" json:"referenceCode"`
	Date          string `gorm:"size:10;not null" json:"date"`
	Time          string `gorm:"size:10;not null" json:"time"`
	Guests        string `gorm:"size:10;not null" json:"guests"`
	Name          string `gorm:"size:100;not null" json:"name"`
	Email         string `gorm:"size:100;not null" json:"email"`
	Phone         string `gorm:"size:30;not null" json:"phone"`
	Notes         string `json:"notes"`
	TableZone     string `gorm:"size:30;not null" json:"tableZone"`
	TableId       string `gorm:"size:6" json:"tableId"`
	Status        string `gorm:"size:12;not null;default:'Pending'" json:"status"`
}

type CreateReservationInput struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"time" validate:"required"`
	Guests    string `json:"guests" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Notes     string `json:"notes"`
	TableZone string `json:"tableZone" validate:"required"`
	TableId   string `json:"tableId"`
	// Optional; unrecognized values are rejected, absence defaults to Pending.
	Status string `json:"status"`
}

type UpdateReservationStatusInput struct {
	Status string `json:"status" validate:"required"`
}

type ReservationFilter struct {
	Pagination
	Date   *string `json:"date" query:"date"`
	Status *string `json:"status" query:"status"`
}
