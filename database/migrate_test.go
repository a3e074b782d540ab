package database_test

import (
	"testing"

	"restaurant-site-api/database"
	"restaurant-site-api/models"
	"restaurant-site-api/testutil"
)

func TestMigrateIsIdempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)

	// Second run against an already-current schema must be a clean no-op.
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Second migration run failed: %v", err)
	}

	m := db.Migrator()
	for _, model := range []interface{}{
		&models.MenuItem{}, &models.Category{}, &models.GalleryImage{},
		&models.Space{}, &models.Reservation{}, &models.Setting{},
	} {
		if !m.HasTable(model) {
			t.Errorf("Expected table for %T to exist", model)
		}
	}
	if !m.HasColumn(&models.MenuItem{}, "IsFeatured") {
		t.Error("Expected menu_items.is_featured to exist")
	}
	if !m.HasColumn(&models.MenuItem{}, "Priority") {
		t.Error("Expected menu_items.priority to exist")
	}
	if !m.HasColumn(&models.Category{}, "Priority") {
		t.Error("Expected categories.priority to exist")
	}
	if !m.HasColumn(&models.GalleryImage{}, "IsHomeFeatured") {
		t.Error("Expected gallery_images.is_home_featured to exist")
	}
}

func TestSeedDerivesCategoriesFromMenu(t *testing.T) {
	db := testutil.SetupTestDB(t)

	items := []models.MenuItem{
		{Name: "Espresso", Category: "Drinks", Price: 3},
		{Name: "Latte", Category: "Drinks", Price: 4.5},
		{Name: "Burger", Category: "Mains", Price: 12},
		{Name: "Mystery", Category: "", Price: 1},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			t.Fatalf("Failed to insert menu item: %v", err)
		}
	}

	if err := database.Seed(db); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	var categories []models.Category
	if err := db.Order("name ASC").Find(&categories).Error; err != nil {
		t.Fatalf("Failed to list categories: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("Expected 2 derived categories, got %d", len(categories))
	}
	if categories[0].Name != "Drinks" || categories[1].Name != "Mains" {
		t.Errorf("Unexpected category names: %q, %q", categories[0].Name, categories[1].Name)
	}
	for _, cat := range categories {
		if cat.Priority != 0 {
			t.Errorf("Seeded category %q should have priority 0, got %d", cat.Name, cat.Priority)
		}
		if cat.Image == "" {
			t.Errorf("Seeded category %q should have a placeholder image", cat.Name)
		}
	}

	var spaces []models.Space
	if err := db.Find(&spaces).Error; err != nil {
		t.Fatalf("Failed to list spaces: %v", err)
	}
	if len(spaces) != 1 {
		t.Fatalf("Expected 1 default space, got %d", len(spaces))
	}

	// Seeding again must not duplicate anything.
	if err := database.Seed(db); err != nil {
		t.Fatalf("Second seed run failed: %v", err)
	}
	var catCount, spaceCount int64
	db.Model(&models.Category{}).Count(&catCount)
	db.Model(&models.Space{}).Count(&spaceCount)
	if catCount != 2 || spaceCount != 1 {
		t.Errorf("Second seed duplicated rows: %d categories, %d spaces", catCount, spaceCount)
	}
}

func TestSeedSkipsNonEmptyTables(t *testing.T) {
	db := testutil.SetupTestDB(t)

	if err := db.Create(&models.Category{Name: "Existing"}).Error; err != nil {
		t.Fatalf("Failed to insert category: %v", err)
	}
	if err := db.Create(&models.MenuItem{Name: "Cake", Category: "Desserts", Price: 6}).Error; err != nil {
		t.Fatalf("Failed to insert menu item: %v", err)
	}

	if err := database.Seed(db); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	var count int64
	db.Model(&models.Category{}).Count(&count)
	if count != 1 {
		t.Errorf("Seed should not touch a non-empty category table, got %d rows", count)
	}
}
