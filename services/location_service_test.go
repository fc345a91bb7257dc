package services

import (
	"testing"

	"github.com/AtifZafar596/Jetak-food-backend-api/pkg/apperr"
	"github.com/AtifZafar596/Jetak-food-backend-api/repository"
)

func TestLocations(t *testing.T) {
	db := newTestDB(t)
	svc := NewLocationService(repository.NewLocationRepository(db))
	userID := seedUser(t, db)

	t.Run("create and list", func(t *testing.T) {
		l, err := svc.Create(userID, &LocationIn{Label: "Home", Address: "1 Main St", Lat: 40.7, Lng: -74.0})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if l.ID == 0 {
			t.Error("id not assigned")
		}
		items, err := svc.List(userID)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(items) != 1 {
			t.Errorf("list len = %d, want 1", len(items))
		}
	})

	t.Run("rejects out-of-range coordinates", func(t *testing.T) {
		if _, err := svc.Create(userID, &LocationIn{Address: "x", Lat: 91}); !apperr.IsValidation(err) {
			t.Errorf("lat: err = %v, want ValidationError", err)
		}
		if _, err := svc.Create(userID, &LocationIn{Address: "x", Lng: 181}); !apperr.IsValidation(err) {
			t.Errorf("lng: err = %v, want ValidationError", err)
		}
		if _, err := svc.Create(userID, &LocationIn{Address: "   "}); !apperr.IsValidation(err) {
			t.Errorf("address: err = %v, want ValidationError", err)
		}
	})

	t.Run("update and delete are scoped to the owner", func(t *testing.T) {
		l, err := svc.Create(userID, &LocationIn{Label: "Work", Address: "2 Office Rd"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		otherUser := userID + 1000
		if _, err := svc.Update(otherUser, l.ID, &LocationIn{Address: "hijack"}); !apperr.IsNotFound(err) {
			t.Errorf("foreign update: err = %v, want NotFoundError", err)
		}
		if err := svc.Delete(otherUser, l.ID); !apperr.IsNotFound(err) {
			t.Errorf("foreign delete: err = %v, want NotFoundError", err)
		}

		updated, err := svc.Update(userID, l.ID, &LocationIn{Label: "Work", Address: "3 Office Rd"})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.Address != "3 Office Rd" {
			t.Errorf("address = %q", updated.Address)
		}
		if err := svc.Delete(userID, l.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
	})
}
