package database

import (
	"fmt"
	"log"

	"restaurant-site-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// A migration is one additive schema patch. Each must be idempotent by
// construction: running it against a fresh database, a database from any
// earlier version, or an already-current one converges without error.
type migration struct {
	name string
	run  func(tx *gorm.DB) error
}

func createTable(model interface{}) func(tx *gorm.DB) error {
	return func(tx *gorm.DB) error {
		if tx.Migrator().HasTable(model) {
			return nil
		}
		return tx.Migrator().CreateTable(model)
	}
}

func addColumn(model interface{}, field string) func(tx *gorm.DB) error {
	return func(tx *gorm.DB) error {
		if tx.Migrator().HasColumn(model, field) {
			return nil
		}
		return tx.Migrator().AddColumn(model, field)
	}
}

// Ordered list of schema patches, oldest first. New patches are appended,
// never reordered or edited, so any older database repairs forward cleanly.
var migrations = []migration{
	{"001_create_menu_items", createTable(&models.MenuItem{})},
	{"002_create_reservations", createTable(&models.Reservation{})},
	{"003_create_settings", createTable(&models.Setting{})},
	{"004_create_categories", createTable(&models.Category{})},
	{"005_create_gallery_images", createTable(&models.GalleryImage{})},
	{"006_create_spaces", createTable(&models.Space{})},
	{"007_menu_items_is_featured", addColumn(&models.MenuItem{}, "IsFeatured")},
	{"008_menu_items_priority", addColumn(&models.MenuItem{}, "Priority")},
	{"009_categories_priority", addColumn(&models.Category{}, "Priority")},
	{"010_gallery_images_is_home_featured", addColumn(&models.GalleryImage{}, "IsHomeFeatured")},
}

// Migrate applies every schema patch in order, each inside its own
// transaction. It must run to completion before the HTTP listener starts.
func Migrate(db *gorm.DB) error {
	for _, m := range migrations {
		err := db.Transaction(func(tx *gorm.DB) error {
			return m.run(tx)
		})
		if err != nil {
			return fmt.Errorf("migration %s: %w", m.name, err)
		}
	}
	return nil
}

// Seed performs one-time data seeding on empty tables: categories are
// derived from the distinct category names already present on the menu, and
// one default space is created so the reservation form has a choice.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count == 0 {
		var names []string
		err := db.Model(&models.MenuItem{}).
			Distinct("category").
			Where("category <> ''").
			Pluck("category", &names).Error
		if err != nil {
			return fmt.Errorf("failed to read menu categories: %w", err)
		}
		for _, name := range names {
			cat := models.Category{Name: name, Image: "/img/placeholder.jpg", Priority: 0}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&cat).Error; err != nil {
				return fmt.Errorf("failed to seed category %q: %w", name, err)
			}
		}
		if len(names) > 0 {
			log.Printf("Seeded %d categories from existing menu items", len(names))
		}
	}

	if err := db.Model(&models.Space{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count spaces: %w", err)
	}
	if count == 0 {
		space := models.Space{
			Name:        "Main Hall",
			Description: "Our main dining hall",
		}
		if err := db.Create(&space).Error; err != nil {
			return fmt.Errorf("failed to seed default space: %w", err)
		}
		log.Println("Seeded default space")
	}

	return nil
}

// Bootstrap repairs the schema and seeds defaults. Errors are returned for
// logging but the caller keeps the process alive: serving against an
// incomplete schema surfaces as per-request errors instead of downtime.
func Bootstrap(db *gorm.DB) error {
	if err := Migrate(db); err != nil {
		return err
	}
	return Seed(db)
}
