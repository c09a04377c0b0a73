// internal/application/usecase/store_port.go
package usecase

import (
	"context"
	"time"
)

// Collection / field names of the storage schema.
const (
	colOrders      = "orders"
	colPlaceholder = "placeholder"
	colUsers       = "Users"
	colBranches    = "branches"

	fieldBranch = "branch"
)

// viewsCol は該当ユーザーの calendar_views サブコレクションのパス。
func viewsCol(userID string) string {
	return colUsers + "/" + userID + "/calendar_views"
}

// DocUpdate is one field-merge against a single document, applied as part
// of an atomic BatchUpdate.
type DocUpdate struct {
	Collection string
	Doc        string
	Fields     map[string]any
}

// DocStore is the persistence port required by every usecase: a narrow
// gateway over a document database. Implementations live in
// internal/adapters/out/firestore (production) and
// internal/adapters/out/memory (tests).
type DocStore interface {
	// GetCollection returns the data of every document in a collection.
	GetCollection(ctx context.Context, collection string) ([]map[string]any, error)

	// GetDocumentByName returns a document's data, or (nil, nil) when the
	// document does not exist. Absence is not an error here.
	GetDocumentByName(ctx context.Context, collection, name string) (map[string]any, error)

	// SetDocument creates or fully replaces a document.
	SetDocument(ctx context.Context, collection, name string, data map[string]any) error

	// UpdateSingleDoc patches one field on one document. A failed write is
	// reported as ok=false, not as an error.
	UpdateSingleDoc(ctx context.Context, collection, docID, field string, value any) (bool, error)

	// UpdateDocumentsWithField sets field=value on every document in the
	// collection except the named one.
	UpdateDocumentsWithField(ctx context.Context, collection, exceptDoc, field string, value any) error

	// QueryOverlapping returns documents whose `field` value is in `values`
	// and whose [start_date, end_date] interval overlaps the given window
	// (start_date <= windowEnd AND end_date >= windowStart).
	QueryOverlapping(ctx context.Context, collection, field string, values []string, windowStart, windowEnd time.Time) ([]map[string]any, error)

	// BatchUpdate applies all updates in one atomic commit: either every
	// document is patched or none is.
	BatchUpdate(ctx context.Context, updates []DocUpdate) error

	// RemoveDocument hard-deletes a document and returns a confirmation
	// message. Deleting a missing document is an error.
	RemoveDocument(ctx context.Context, collection, docID string) (string, error)
}
