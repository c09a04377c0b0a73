// internal/application/usecase/placeholder_usecase.go
package usecase

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/genproto/googleapis/type/latlng"

	orderdom "fencecalendar/internal/domain/order"
)

// Placeholder IDs are "p-" plus a decimal in [0, 100000). The space is
// large relative to realistic placeholder volume, so a handful of retries
// is plenty; running out means something is badly wrong with the
// collection.
const maxIDAttempts = 50

// PlaceholderUsecase owns the provisional-order lifecycle: system-assigned
// IDs, fixed 10:00/13:00 wall-clock pinning, merge-style partial updates
// and hard deletes.
type PlaceholderUsecase struct {
	store   DocStore
	randInt func(n int) int
}

func NewPlaceholderUsecase(store DocStore) *PlaceholderUsecase {
	return &PlaceholderUsecase{
		store:   store,
		randInt: rand.Intn,
	}
}

// CreatePlaceholderInput carries the caller-supplied fields of a new
// placeholder. StartDate/EndDate are calendar dates; any time-of-day on
// them is discarded.
type CreatePlaceholderInput struct {
	ProjectType string
	Notes       string
	Address     string
	WorkType    string
	Driver      string
	ClientName  string
	StartDate   time.Time
	EndDate     time.Time
	Fences      []orderdom.Fence
	Branch      string
	Phone       *string
	GeoPoint    orderdom.GeoPoint
}

// PlaceholderResult reports a create/update outcome together with the
// (possibly just generated) document ID.
type PlaceholderResult struct {
	Message       string `json:"message"`
	PlaceholderID string `json:"placeholderId"`
}

// Create stores a new placeholder under a freshly generated collision-free
// ID. Start is pinned to 10:00 and end to 13:00 local time; created_at is
// the server's commit timestamp.
func (u *PlaceholderUsecase) Create(ctx context.Context, in CreatePlaceholderInput) (PlaceholderResult, error) {
	documentName, err := u.generateUniqueDocumentName(ctx)
	if err != nil {
		return PlaceholderResult{}, err
	}

	data := map[string]any{
		"project_type": in.ProjectType,
		"notes":        in.Notes,
		"address":      in.Address,
		"work_type":    in.WorkType,
		"driver":       in.Driver,
		"client_name":  in.ClientName,
		"order_id":     documentName,
		"fences":       encodeFences(in.Fences),
		"branch":       in.Branch,
		"created_at":   firestore.ServerTimestamp,
		"start_date":   pinTime(in.StartDate, 10),
		"end_date":     pinTime(in.EndDate, 13),
		"phone":        strPtrValue(in.Phone),
		"geo_point":    &latlng.LatLng{Latitude: in.GeoPoint.Latitude, Longitude: in.GeoPoint.Longitude},
	}

	if err := u.store.SetDocument(ctx, colPlaceholder, documentName, data); err != nil {
		return PlaceholderResult{}, err
	}
	return PlaceholderResult{Message: "placeholder created", PlaceholderID: documentName}, nil
}

// generateUniqueDocumentName draws IDs until one misses the collection,
// capped instead of retrying forever.
func (u *PlaceholderUsecase) generateUniqueDocumentName(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		documentName := "p-" + strconv.Itoa(u.randInt(100000))
		doc, err := u.store.GetDocumentByName(ctx, colPlaceholder, documentName)
		if err != nil {
			return "", err
		}
		if doc == nil {
			return documentName, nil
		}
	}
	return "", errors.New("could not generate a unique placeholder id")
}

// UpdatePlaceholderInput is a merge patch: nil (or empty string, matching
// the endpoint's falsy handling) keeps the stored value. Fences and
// GeoPoint, when supplied, replace the stored value wholesale.
type UpdatePlaceholderInput struct {
	ProjectType *string
	Notes       *string
	Address     *string
	WorkType    *string
	Driver      *string
	ClientName  *string
	StartDate   *time.Time
	EndDate     *time.Time
	Fences      []orderdom.Fence
	Phone       *string
	GeoPoint    *orderdom.GeoPoint
}

// Update merges the patch over the stored document and rewrites it.
// order_id, branch and created_at always survive from the stored copy.
// A supplied end date is pinned to 13:00; a supplied start date keeps the
// caller's time-of-day (contract quirk, covered by tests).
func (u *PlaceholderUsecase) Update(ctx context.Context, orderID string, in UpdatePlaceholderInput) (PlaceholderResult, error) {
	orderID = strings.TrimSpace(orderID)

	doc, err := u.store.GetDocumentByName(ctx, colPlaceholder, orderID)
	if err != nil {
		return PlaceholderResult{}, err
	}
	if doc == nil {
		return PlaceholderResult{}, orderdom.ErrPlaceholderNotFound
	}

	data := map[string]any{
		"project_type": pickStr(in.ProjectType, doc["project_type"]),
		"notes":        pickStr(in.Notes, doc["notes"]),
		"address":      pickStr(in.Address, doc["address"]),
		"work_type":    pickStr(in.WorkType, doc["work_type"]),
		"driver":       pickStr(in.Driver, doc["driver"]),
		"client_name":  pickStr(in.ClientName, doc["client_name"]),
		"order_id":     doc["order_id"],
		"branch":       doc["branch"],
		"created_at":   doc["created_at"],
		"phone":        pickStr(in.Phone, doc["phone"]),
		"fences":       doc["fences"],
		"start_date":   doc["start_date"],
		"end_date":     doc["end_date"],
		"geo_point":    doc["geo_point"],
	}
	if in.Fences != nil {
		data["fences"] = encodeFences(in.Fences)
	}
	if in.StartDate != nil {
		data["start_date"] = *in.StartDate
	}
	if in.EndDate != nil {
		data["end_date"] = pinTime(*in.EndDate, 13)
	}
	if in.GeoPoint != nil {
		data["geo_point"] = &latlng.LatLng{Latitude: in.GeoPoint.Latitude, Longitude: in.GeoPoint.Longitude}
	}

	if err := u.store.SetDocument(ctx, colPlaceholder, orderID, data); err != nil {
		return PlaceholderResult{}, err
	}
	return PlaceholderResult{Message: "Placeholder Updated Successfully", PlaceholderID: orderID}, nil
}

// Delete hard-deletes a placeholder and returns the store's confirmation
// message. Deleting a missing placeholder is an error.
func (u *PlaceholderUsecase) Delete(ctx context.Context, orderID string) (string, error) {
	return u.store.RemoveDocument(ctx, colPlaceholder, strings.TrimSpace(orderID))
}

// ========================
// encode helpers
// ========================

func encodeFences(fences []orderdom.Fence) []map[string]any {
	out := make([]map[string]any, 0, len(fences))
	for _, f := range fences {
		out = append(out, map[string]any{
			"fence_type":  f.FenceType,
			"no_of_units": f.NoOfUnits,
		})
	}
	return out
}

// pinTime keeps the calendar date and forces the wall-clock time to
// hour:00 local.
func pinTime(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, time.Local)
}

// pickStr applies the endpoint's falsy merge rule: nil and "" both keep
// the stored value.
func pickStr(p *string, stored any) any {
	if p != nil && *p != "" {
		return *p
	}
	return stored
}

func strPtrValue(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
