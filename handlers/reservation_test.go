package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"restaurant-site-api/models"
	"restaurant-site-api/testutil"
)

func TestCreateReservation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(t, db, testutil.TestConfig(t))

	w := testutil.Do(r, testutil.MakeRequest("POST", "/api/reservations", map[string]interface{}{
		"name":     "Sara",
		"phone":    "555-0101",
		"date":     "2026-09-12",
		"time":     "19:30",
		"guests":   4,
		"space":    "Main Hall",
		"occasion": "birthday",
	}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var res models.Reservation
	testutil.DecodeJSON(t, w, &res)
	if res.ID == 0 {
		t.Error("Reservation should have a generated id")
	}
	if time.Since(res.CreatedAt) > 5*time.Second {
		t.Errorf("createdAt should be close to now, got %v", res.CreatedAt)
	}
}

func TestReservationRequiredFieldsRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(t, db, testutil.TestConfig(t))

	// Missing phone.
	w := testutil.Do(r, testutil.MakeRequest("POST", "/api/reservations", map[string]interface{}{
		"name": "Sara", "date": "2026-09-12", "time": "19:30", "guests": 4,
	}, nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	// Zero guests.
	w = testutil.Do(r, testutil.MakeRequest("POST", "/api/reservations", map[string]interface{}{
		"name": "Sara", "phone": "555-0101", "date": "2026-09-12", "time": "19:30", "guests": 0,
	}, nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var count int64
	db.Model(&models.Reservation{}).Count(&count)
	if count != 0 {
		t.Errorf("Rejected reservations must not be stored, found %d", count)
	}
}

func TestListAndDeleteReservations(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(t, db, testutil.TestConfig(t))

	for _, name := range []string{"First", "Second"} {
		w := testutil.Do(r, testutil.MakeRequest("POST", "/api/reservations", map[string]interface{}{
			"name": name, "phone": "555-0101", "date": "2026-09-12", "time": "19:30", "guests": 2,
		}, nil))
		testutil.AssertStatus(t, w, http.StatusOK)
	}

	w := testutil.Do(r, testutil.MakeRequest("GET", "/api/reservations", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var reservations []models.Reservation
	testutil.DecodeJSON(t, w, &reservations)
	if len(reservations) != 2 {
		t.Fatalf("Expected 2 reservations, got %d", len(reservations))
	}
	if reservations[0].CreatedAt.Before(reservations[1].CreatedAt) {
		t.Error("Reservations should list newest first")
	}

	w = testutil.Do(r, testutil.MakeRequest("DELETE", "/api/reservations/1", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = testutil.Do(r, testutil.MakeRequest("GET", "/api/reservations", nil, nil))
	testutil.DecodeJSON(t, w, &reservations)
	if len(reservations) != 1 {
		t.Errorf("Expected 1 reservation after delete, got %d", len(reservations))
	}
}
