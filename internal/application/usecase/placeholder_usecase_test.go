// internal/application/usecase/placeholder_usecase_test.go
package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/genproto/googleapis/type/latlng"

	orderdom "fencecalendar/internal/domain/order"
)

func newPlaceholderFixture(f *fakeStore, draws ...int) *PlaceholderUsecase {
	u := NewPlaceholderUsecase(f)
	i := 0
	u.randInt = func(n int) int {
		if i < len(draws) {
			v := draws[i]
			i++
			return v
		}
		return draws[len(draws)-1]
	}
	return u
}

func sampleCreateInput() CreatePlaceholderInput {
	return CreatePlaceholderInput{
		ProjectType: "Residential",
		Notes:       "tentative",
		Address:     "12 Main St",
		WorkType:    "Install",
		Driver:      "D. Smith",
		ClientName:  "Acme",
		StartDate:   time.Date(2024, time.May, 10, 17, 45, 12, 0, time.Local),
		EndDate:     time.Date(2024, time.May, 12, 2, 3, 4, 0, time.Local),
		Fences:      []orderdom.Fence{{FenceType: "Chain Link", NoOfUnits: 12}},
		Branch:      "CAL",
		GeoPoint:    orderdom.GeoPoint{Latitude: 51.05, Longitude: -114.07},
	}
}

func TestCreatePlaceholder(t *testing.T) {
	f := newFakeStore()
	u := newPlaceholderFixture(f, 42)

	res, err := u.Create(context.Background(), sampleCreateInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if res.PlaceholderID != "p-42" {
		t.Errorf("placeholderId = %q, want p-42", res.PlaceholderID)
	}
	if res.Message != "placeholder created" {
		t.Errorf("message = %q", res.Message)
	}

	doc := f.cols[colPlaceholder]["p-42"]
	if doc == nil {
		t.Fatal("placeholder document missing")
	}
	if doc["order_id"] != "p-42" {
		t.Errorf("order_id = %v, want the generated name", doc["order_id"])
	}
	// Time-of-day on the input is discarded; dates are pinned to 10:00 and
	// 13:00 local.
	wantStart := time.Date(2024, time.May, 10, 10, 0, 0, 0, time.Local)
	wantEnd := time.Date(2024, time.May, 12, 13, 0, 0, 0, time.Local)
	if got := doc["start_date"].(time.Time); !got.Equal(wantStart) {
		t.Errorf("start_date = %v, want %v", got, wantStart)
	}
	if got := doc["end_date"].(time.Time); !got.Equal(wantEnd) {
		t.Errorf("end_date = %v, want %v", got, wantEnd)
	}
	if doc["created_at"] != firestore.ServerTimestamp {
		t.Errorf("created_at = %v, want server timestamp sentinel", doc["created_at"])
	}
	if doc["phone"] != nil {
		t.Errorf("phone = %v, want null for absent phone", doc["phone"])
	}
	geo, ok := doc["geo_point"].(*latlng.LatLng)
	if !ok || geo.Latitude != 51.05 || geo.Longitude != -114.07 {
		t.Errorf("geo_point = %v", doc["geo_point"])
	}
}

func TestCreatePlaceholderRetriesOnCollision(t *testing.T) {
	f := newFakeStore()
	f.seed(colPlaceholder, "p-42", map[string]any{"order_id": "p-42"})
	u := newPlaceholderFixture(f, 42, 42, 7)

	res, err := u.Create(context.Background(), sampleCreateInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if res.PlaceholderID != "p-7" {
		t.Errorf("placeholderId = %q, want p-7 after collisions", res.PlaceholderID)
	}
}

func TestCreatePlaceholderGivesUpAfterCap(t *testing.T) {
	f := newFakeStore()
	f.seed(colPlaceholder, "p-42", map[string]any{"order_id": "p-42"})
	u := newPlaceholderFixture(f, 42) // every draw collides

	if _, err := u.Create(context.Background(), sampleCreateInput()); err == nil {
		t.Fatal("expected error when the id space never clears")
	}
}

func TestUpdatePlaceholderMerge(t *testing.T) {
	f := newFakeStore()
	u := newPlaceholderFixture(f, 42)
	if _, err := u.Create(context.Background(), sampleCreateInput()); err != nil {
		t.Fatalf("seed create error: %v", err)
	}

	newNotes := "confirmed by phone"
	empty := ""
	newEnd := time.Date(2024, time.May, 14, 23, 59, 0, 0, time.Local)
	res, err := u.Update(context.Background(), "p-42", UpdatePlaceholderInput{
		Notes:   &newNotes,
		Address: &empty, // falsy: stored address survives
		EndDate: &newEnd,
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if res.Message != "Placeholder Updated Successfully" {
		t.Errorf("message = %q", res.Message)
	}

	doc := f.cols[colPlaceholder]["p-42"]
	if doc["notes"] != "confirmed by phone" {
		t.Errorf("notes = %v", doc["notes"])
	}
	if doc["address"] != "12 Main St" {
		t.Errorf("address = %v, empty-string patch must keep the stored value", doc["address"])
	}
	if doc["client_name"] != "Acme" {
		t.Errorf("client_name = %v, untouched field must survive", doc["client_name"])
	}
	if doc["order_id"] != "p-42" || doc["branch"] != "CAL" {
		t.Errorf("identity fields changed: order_id=%v branch=%v", doc["order_id"], doc["branch"])
	}
	// End date re-pinned to 13:00; start date untouched.
	wantEnd := time.Date(2024, time.May, 14, 13, 0, 0, 0, time.Local)
	if got := doc["end_date"].(time.Time); !got.Equal(wantEnd) {
		t.Errorf("end_date = %v, want %v", got, wantEnd)
	}
	wantStart := time.Date(2024, time.May, 10, 10, 0, 0, 0, time.Local)
	if got := doc["start_date"].(time.Time); !got.Equal(wantStart) {
		t.Errorf("start_date = %v, want %v", got, wantStart)
	}
}

// A patched start date keeps the caller's time-of-day; only the end date is
// re-pinned on this path.
func TestUpdatePlaceholderStartDateNotPinned(t *testing.T) {
	f := newFakeStore()
	u := newPlaceholderFixture(f, 42)
	if _, err := u.Create(context.Background(), sampleCreateInput()); err != nil {
		t.Fatalf("seed create error: %v", err)
	}

	newStart := time.Date(2024, time.May, 11, 8, 15, 0, 0, time.Local)
	if _, err := u.Update(context.Background(), "p-42", UpdatePlaceholderInput{StartDate: &newStart}); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got := f.cols[colPlaceholder]["p-42"]["start_date"].(time.Time); !got.Equal(newStart) {
		t.Errorf("start_date = %v, want %v as supplied", got, newStart)
	}
}

func TestUpdatePlaceholderFencesReplacedWholesale(t *testing.T) {
	f := newFakeStore()
	u := newPlaceholderFixture(f, 42)
	if _, err := u.Create(context.Background(), sampleCreateInput()); err != nil {
		t.Fatalf("seed create error: %v", err)
	}

	_, err := u.Update(context.Background(), "p-42", UpdatePlaceholderInput{
		Fences: []orderdom.Fence{{FenceType: "Vinyl", NoOfUnits: 3}},
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	fences := mapGetFences(f.cols[colPlaceholder]["p-42"], "fences")
	if len(fences) != 1 || fences[0].FenceType != "Vinyl" || fences[0].NoOfUnits != 3 {
		t.Errorf("fences = %+v, want wholesale replacement", fences)
	}
}

func TestUpdatePlaceholderMissing(t *testing.T) {
	u := newPlaceholderFixture(newFakeStore(), 1)
	_, err := u.Update(context.Background(), "p-404", UpdatePlaceholderInput{})
	if !errors.Is(err, orderdom.ErrPlaceholderNotFound) {
		t.Errorf("err = %v, want ErrPlaceholderNotFound", err)
	}
}

func TestDeletePlaceholder(t *testing.T) {
	f := newFakeStore()
	u := newPlaceholderFixture(f, 42)
	if _, err := u.Create(context.Background(), sampleCreateInput()); err != nil {
		t.Fatalf("seed create error: %v", err)
	}

	msg, err := u.Delete(context.Background(), "p-42")
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if !strings.Contains(msg, "successfully deleted") {
		t.Errorf("message = %q", msg)
	}

	// Second delete of the same id is an error.
	if _, err := u.Delete(context.Background(), "p-42"); err == nil {
		t.Fatal("expected error deleting an already-deleted placeholder")
	}
}
