package migrate

import (
	"log"

	"DermaGlow-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) {
	db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`)

	err := db.AutoMigrate(
		&entities.User{},
		&entities.AnalysisRecord{},
		&entities.Product{},
		&entities.CartItem{},
		&entities.Order{},
		&entities.OrderItem{},
		&entities.Doctor{},
		&entities.ConsultationBooking{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	seedDoctors(db)
	seedProducts(db)
}

func seedDoctors(db *gorm.DB) {
	var count int64
	db.Model(&entities.Doctor{}).Count(&count)
	if count > 0 {
		return
	}

	doctors := []*entities.Doctor{
		{
			Name:       "Prof. Dr. Ikram Ullah Khan",
			Specialty:  "Dermatology",
			Experience: "20+ years",
			Rating:     4.9,
			Price:      "PKR 15,000",
			IsActive:   true,
		},
		{
			Name:       "DR AASMA TAYYAB KHAN",
			Specialty:  "Cosmetic Dermatology",
			Experience: "15 years",
			Rating:     4.8,
			Price:      "PKR 12,000",
			IsActive:   true,
		},
		{
			Name:       "Dr Mahvish Zahra",
			Specialty:  "Pediatric Dermatology",
			Experience: "12 years",
			Rating:     4.9,
			Price:      "PKR 10,000",
			IsActive:   true,
		},
	}

	if err := db.Create(&doctors).Error; err != nil {
		log.Printf("Doctor seeding failed: %v", err)
	}
}

func seedProducts(db *gorm.DB) {
	var count int64
	db.Model(&entities.Product{}).Count(&count)
	if count > 0 {
		return
	}

	products := []*entities.Product{
		{
			Name:        "Gentle Foaming Cleanser",
			Description: "A mild daily cleanser that removes impurities without stripping the skin barrier.",
			Price:       1450,
			Category:    "Cleanser",
			Brand:       "CeraVe",
			SkinType:    "normal",
			IsActive:    true,
		},
		{
			Name:        "Oil-Free Salicylic Acid Wash",
			Description: "A 2% salicylic acid cleanser that clears pores and reduces breakouts.",
			Price:       1800,
			Category:    "Cleanser",
			Brand:       "Neutrogena",
			SkinType:    "oily",
			IsActive:    true,
		},
		{
			Name:        "Hydrating Hyaluronic Serum",
			Description: "A lightweight serum with hyaluronic acid and B5 for deep hydration.",
			Price:       2200,
			Category:    "Serum",
			Brand:       "The Ordinary",
			SkinType:    "dry",
			IsActive:    true,
		},
		{
			Name:        "Niacinamide 10% + Zinc 1%",
			Description: "Balances sebum production and visibly reduces blemishes and congestion.",
			Price:       1950,
			Category:    "Serum",
			Brand:       "The Ordinary",
			SkinType:    "combination",
			IsActive:    true,
		},
		{
			Name:        "Soothing Centella Moisturizer",
			Description: "A fragrance-free moisturizer with centella asiatica for reactive skin.",
			Price:       2600,
			Category:    "Moisturizer",
			Brand:       "COSRX",
			SkinType:    "sensitive",
			IsActive:    true,
		},
		{
			Name:        "Daily Mineral Sunscreen SPF 50",
			Description: "A broad-spectrum zinc oxide sunscreen with no white cast.",
			Price:       3100,
			Category:    "Sunscreen",
			Brand:       "La Roche-Posay",
			SkinType:    "normal",
			IsActive:    true,
		},
		{
			Name:        "Rich Ceramide Night Cream",
			Description: "An overnight barrier-repair cream with three essential ceramides.",
			Price:       2850,
			Category:    "Moisturizer",
			Brand:       "CeraVe",
			SkinType:    "dry",
			IsActive:    true,
		},
		{
			Name:        "Dark Spot Correcting Serum",
			Description: "A vitamin C and tranexamic acid serum that fades spots and evens tone.",
			Price:       3400,
			Category:    "Serum",
			Brand:       "Garnier",
			SkinType:    "combination",
			IsActive:    true,
		},
	}

	if err := db.Create(&products).Error; err != nil {
		log.Printf("Product seeding failed: %v", err)
	}
}
