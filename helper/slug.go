package helper

import (
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"lalibela_manager/model"
)

// GenerateUniqueMenuSlug derives a slug from the dish name, suffixing a
// counter until it is free.
func GenerateUniqueMenuSlug(tx *gorm.DB, name string) string {
	base := slug.Make(name)
	result := base
	i := 1

	for {
		var count int64
		tx.Model(&model.MenuItem{}).
			Where("slug = ?", result).
			Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
