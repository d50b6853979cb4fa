package helper

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"gorm.io/gorm"

	"lalibela_manager/constants"
	"lalibela_manager/model"
)

// GenerateReferenceCode returns a guest-facing booking code like LAL-9F3C2A.
// Uniqueness is settled at insert time, not here.
func GenerateReferenceCode() string {
	buf := make([]byte, 3)
	rand.Read(buf)
	return constants.REF_CODE_PREFIX + "-" + strings.ToUpper(hex.EncodeToString(buf))
}

// CreateReservationWithCode inserts the reservation, generating a reference
// code when none is set and regenerating on a unique-index collision instead
// of trusting randomness.
func CreateReservationWithCode(db *gorm.DB, r *model.Reservation) error {
	for attempt := 0; attempt < 5; attempt++ {
		if r.ReferenceCode == "" || attempt > 0 {
			r.ReferenceCode = GenerateReferenceCode()
		}

		err := db.Create(r).Error
		if err == nil {
			return nil
		}
		if !isDuplicateKey(err) {
			return err
		}
	}

	return errors.New("could not allocate a unique reference code")
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key")
}
