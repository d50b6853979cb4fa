package database

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lalibela_manager/config"
	"lalibela_manager/constants"
	"lalibela_manager/model"
)

func SeedData(db *gorm.DB) {
	seedAdmin(db)
	seedZones(db)
	seedMenu(db)
}

func seedAdmin(db *gorm.DB) {
	var count int64
	db.Model(&model.Account{}).Count(&count)
	if count > 0 {
		return
	}

	username := config.Config("ADMIN_USERNAME")
	if username == "" {
		username = "admin@lalibela.com"
	}
	password := config.Config("ADMIN_PASSWORD")
	if password == "" {
		password = "LalibelaPassword2026"
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Printf("Seed admin: hash failed: %v", err)
		return
	}

	if err := db.Create(&model.Account{
		Username: username,
		Password: string(bytes),
	}).Error; err != nil {
		log.Printf("Seed admin failed: %v", err)
		return
	}
	log.Printf("Seeded admin account %s", username)
}

func seedZones(db *gorm.DB) {
	var count int64
	db.Model(&model.Zone{}).Count(&count)
	if count > 0 {
		return
	}

	for _, name := range constants.TableZones {
		if err := db.Create(&model.Zone{
			Name:   name,
			Prefix: name[:1],
			IsOpen: true,
		}).Error; err != nil {
			log.Printf("Seed zone %s failed: %v", name, err)
		}
	}
	log.Println("Seeded dining zones")
}

func seedMenu(db *gorm.DB) {
	var count int64
	db.Model(&model.MenuItem{}).Count(&count)
	if count > 0 {
		return
	}

	items := []model.MenuItem{
		{
			Name:        "Special Kitfo",
			Slug:        "special-kitfo",
			Description: "Finely chopped prime beef seasoned with mitmita and niter kibbeh.",
			Price:       18.50,
			Category:    "Meat Mains",
			IsAvailable: true,
			ChefTip:     "Best served medium-rare with homemade Ayibe.",
		},
		{
			Name:        "Doro Wat",
			Slug:        "doro-wat",
			Description: "Slow-simmered chicken stew in berbere sauce with a hard-boiled egg.",
			Price:       16.00,
			Category:    "Meat Mains",
			IsAvailable: true,
		},
		{
			Name:        "Beyaynetu",
			Slug:        "beyaynetu",
			Description: "A vegan platter of lentils, split peas and seasonal greens on injera.",
			Price:       14.00,
			Category:    "Vegetarian & Vegan",
			IsAvailable: true,
		},
	}

	for _, item := range items {
		if err := db.Create(&item).Error; err != nil {
			log.Printf("Seed menu item %s failed: %v", item.Name, err)
		}
	}
	log.Println("Seeded sample menu")
}
