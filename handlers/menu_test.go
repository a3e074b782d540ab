package handlers_test

import (
	"net/http"
	"testing"

	"restaurant-site-api/models"
	"restaurant-site-api/testutil"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func newMenuRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return testutil.NewRouter(t, db, testutil.TestConfig(t)), db
}

func TestCreateAndListMenu(t *testing.T) {
	r, _ := newMenuRouter(t)

	// Priority dominates, then featured, then insertion order.
	bodies := []map[string]interface{}{
		{"name": "Latte", "category": "Drinks", "price": 4.5, "priority": 2},
		{"name": "Espresso", "category": "Drinks", "price": 3, "priority": 1},
		{"name": "Burger", "category": "Mains", "price": 12, "priority": 1},
	}
	for _, body := range bodies {
		w := testutil.Do(r, testutil.MakeRequest("POST", "/api/menu", body, nil))
		testutil.AssertStatus(t, w, http.StatusOK)

		var created models.MenuItem
		testutil.DecodeJSON(t, w, &created)
		if created.ID == 0 {
			t.Error("Created menu item should have a generated id")
		}
		if created.IsFeatured {
			t.Error("New menu items should not be featured by default")
		}
	}

	// Feature the burger so it jumps ahead of espresso within priority 1.
	w := testutil.Do(r, testutil.MakeRequest("PATCH", "/api/menu/3/toggle-feature", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = testutil.Do(r, testutil.MakeRequest("GET", "/api/menu", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var items []models.MenuItem
	testutil.DecodeJSON(t, w, &items)
	if len(items) != 3 {
		t.Fatalf("Expected 3 items, got %d", len(items))
	}
	wantOrder := []string{"Burger", "Espresso", "Latte"}
	for i, want := range wantOrder {
		if items[i].Name != want {
			t.Errorf("Position %d: expected %q, got %q", i, want, items[i].Name)
		}
	}

	// Exact-match category filter.
	w = testutil.Do(r, testutil.MakeRequest("GET", "/api/menu?category=Drinks", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.DecodeJSON(t, w, &items)
	if len(items) != 2 {
		t.Fatalf("Expected 2 drinks, got %d", len(items))
	}
}

func TestCreateMenuValidation(t *testing.T) {
	r, _ := newMenuRouter(t)

	w := testutil.Do(r, testutil.MakeRequest("POST", "/api/menu", map[string]interface{}{
		"category": "Drinks",
		"price":    3,
	}, nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var resp map[string]string
	testutil.DecodeJSON(t, w, &resp)
	if resp["error"] == "" {
		t.Error("Validation failure should use the error envelope")
	}

	w = testutil.Do(r, testutil.MakeRequest("POST", "/api/menu", map[string]interface{}{
		"name":     "Freebie",
		"category": "Drinks",
		"price":    -1,
	}, nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestToggleFeatureTwiceRestoresValue(t *testing.T) {
	r, _ := newMenuRouter(t)

	w := testutil.Do(r, testutil.MakeRequest("POST", "/api/menu", map[string]interface{}{
		"name": "Espresso", "category": "Drinks", "price": 3,
	}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var item models.MenuItem
	testutil.DecodeJSON(t, w, &item)

	w = testutil.Do(r, testutil.MakeRequest("PATCH", "/api/menu/1/toggle-feature", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.DecodeJSON(t, w, &item)
	if !item.IsFeatured {
		t.Error("First toggle should set is_featured")
	}

	w = testutil.Do(r, testutil.MakeRequest("PATCH", "/api/menu/1/toggle-feature", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.DecodeJSON(t, w, &item)
	if item.IsFeatured {
		t.Error("Second toggle should restore the original value")
	}

	w = testutil.Do(r, testutil.MakeRequest("PATCH", "/api/menu/99/toggle-feature", nil, nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestUpdateMenuItem(t *testing.T) {
	r, _ := newMenuRouter(t)

	w := testutil.Do(r, testutil.MakeRequest("POST", "/api/menu", map[string]interface{}{
		"name": "Espresso", "category": "Drinks", "price": 3,
	}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = testutil.Do(r, testutil.MakeRequest("PUT", "/api/menu/1", map[string]interface{}{
		"name": "Double Espresso", "category": "Drinks", "price": 4, "priority": 5,
	}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var item models.MenuItem
	testutil.DecodeJSON(t, w, &item)
	if item.Name != "Double Espresso" || item.Price != 4 || item.Priority != 5 {
		t.Errorf("Update did not replace fields: %+v", item)
	}

	w = testutil.Do(r, testutil.MakeRequest("PUT", "/api/menu/99", map[string]interface{}{
		"name": "Ghost", "category": "Drinks", "price": 1,
	}, nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestDeleteMenuItem(t *testing.T) {
	r, _ := newMenuRouter(t)

	w := testutil.Do(r, testutil.MakeRequest("POST", "/api/menu", map[string]interface{}{
		"name": "Espresso", "category": "Drinks", "price": 3,
	}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = testutil.Do(r, testutil.MakeRequest("DELETE", "/api/menu/1", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp map[string]bool
	testutil.DecodeJSON(t, w, &resp)
	if !resp["success"] {
		t.Error("Delete should respond with success:true")
	}

	var items []models.MenuItem
	w = testutil.Do(r, testutil.MakeRequest("GET", "/api/menu", nil, nil))
	testutil.DecodeJSON(t, w, &items)
	if len(items) != 0 {
		t.Errorf("Deleted item still listed: %+v", items)
	}

	w = testutil.Do(r, testutil.MakeRequest("DELETE", "/api/menu/1", nil, nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)
}
