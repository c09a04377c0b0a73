// internal/application/usecase/store_fake_test.go
package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// fakeStore is a map-backed DocStore with per-method error injection.
type fakeStore struct {
	cols map[string]map[string]map[string]any

	errOn        map[string]error // method name → forced error
	updateDenied bool             // UpdateSingleDoc returns ok=false
	batchCalls   [][]DocUpdate
	demoteCalls  []string // collection paths swept by UpdateDocumentsWithField
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		cols:  make(map[string]map[string]map[string]any),
		errOn: make(map[string]error),
	}
}

func (f *fakeStore) seed(collection, name string, data map[string]any) {
	if f.cols[collection] == nil {
		f.cols[collection] = make(map[string]map[string]any)
	}
	f.cols[collection][name] = data
}

func (f *fakeStore) ids(collection string) []string {
	var out []string
	for id := range f.cols[collection] {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (f *fakeStore) GetCollection(_ context.Context, collection string) ([]map[string]any, error) {
	if err := f.errOn["GetCollection"]; err != nil {
		return nil, err
	}
	var out []map[string]any
	for _, id := range f.ids(collection) {
		out = append(out, f.cols[collection][id])
	}
	return out, nil
}

func (f *fakeStore) GetDocumentByName(_ context.Context, collection, name string) (map[string]any, error) {
	if err := f.errOn["GetDocumentByName"]; err != nil {
		return nil, err
	}
	doc, ok := f.cols[collection][name]
	if !ok {
		return nil, nil
	}
	return doc, nil
}

func (f *fakeStore) SetDocument(_ context.Context, collection, name string, data map[string]any) error {
	if err := f.errOn["SetDocument"]; err != nil {
		return err
	}
	f.seed(collection, name, data)
	return nil
}

func (f *fakeStore) UpdateSingleDoc(_ context.Context, collection, docID, field string, value any) (bool, error) {
	if err := f.errOn["UpdateSingleDoc"]; err != nil {
		return false, err
	}
	if f.updateDenied {
		return false, nil
	}
	doc, ok := f.cols[collection][docID]
	if !ok {
		return false, nil
	}
	doc[field] = value
	return true, nil
}

func (f *fakeStore) UpdateDocumentsWithField(_ context.Context, collection, exceptDoc, field string, value any) error {
	if err := f.errOn["UpdateDocumentsWithField"]; err != nil {
		return err
	}
	f.demoteCalls = append(f.demoteCalls, collection)
	for id, doc := range f.cols[collection] {
		if id == exceptDoc {
			continue
		}
		doc[field] = value
	}
	return nil
}

func (f *fakeStore) QueryOverlapping(_ context.Context, collection, field string, values []string, windowStart, windowEnd time.Time) ([]map[string]any, error) {
	if err := f.errOn["QueryOverlapping:"+collection]; err != nil {
		return nil, err
	}
	if err := f.errOn["QueryOverlapping"]; err != nil {
		return nil, err
	}
	want := make(map[string]bool, len(values))
	for _, v := range values {
		want[v] = true
	}
	var out []map[string]any
	for _, id := range f.ids(collection) {
		doc := f.cols[collection][id]
		fv, _ := doc[field].(string)
		if !want[fv] {
			continue
		}
		start, okS := doc["start_date"].(time.Time)
		end, okE := doc["end_date"].(time.Time)
		if !okS || !okE {
			continue
		}
		if start.After(windowEnd) || end.Before(windowStart) {
			continue
		}
		out = append(out, doc)
	}
	return out, nil
}

func (f *fakeStore) BatchUpdate(_ context.Context, updates []DocUpdate) error {
	if err := f.errOn["BatchUpdate"]; err != nil {
		return err
	}
	for _, u := range updates {
		if _, ok := f.cols[u.Collection][u.Doc]; !ok {
			return fmt.Errorf("batch update: document %s/%s does not exist", u.Collection, u.Doc)
		}
	}
	f.batchCalls = append(f.batchCalls, updates)
	for _, u := range updates {
		doc := f.cols[u.Collection][u.Doc]
		for k, v := range u.Fields {
			doc[k] = v
		}
	}
	return nil
}

func (f *fakeStore) RemoveDocument(_ context.Context, collection, docID string) (string, error) {
	if err := f.errOn["RemoveDocument"]; err != nil {
		return "", err
	}
	if _, ok := f.cols[collection][docID]; !ok {
		return "", fmt.Errorf("Document with ID %s does not exist in collection %s", docID, collection)
	}
	delete(f.cols[collection], docID)
	return fmt.Sprintf("Document with ID %s successfully deleted from collection %s", docID, collection), nil
}

var _ DocStore = (*fakeStore)(nil)
