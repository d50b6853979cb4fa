package helper

import (
	"errors"
	"regexp"
	"testing"

	"gorm.io/gorm"
)

func TestGenerateReferenceCodeShape(t *testing.T) {
	pattern := regexp.MustCompile(`^LAL-[0-9A-F]{6}$`)
	for i := 0; i < 50; i++ {
		code := GenerateReferenceCode()
		if !pattern.MatchString(code) {
			t.Fatalf("code %q does not match LAL-XXXXXX", code)
		}
	}
}

func TestIsDuplicateKey(t *testing.T) {
	if !isDuplicateKey(gorm.ErrDuplicatedKey) {
		t.Error("gorm.ErrDuplicatedKey should count as a duplicate")
	}
	if !isDuplicateKey(errors.New(`pq: duplicate key value violates unique constraint "idx_reservations_reference_code"`)) {
		t.Error("raw postgres duplicate message should count as a duplicate")
	}
	if isDuplicateKey(errors.New("connection refused")) {
		t.Error("unrelated errors are not duplicates")
	}
}
