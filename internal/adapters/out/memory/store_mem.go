// internal/adapters/out/memory/store_mem.go
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	uc "fencecalendar/internal/application/usecase"
)

// StoreMem is an in-memory usecase.DocStore for tests and local hacking.
// Collections are keyed by their full path, so subcollection paths like
// "Users/{uid}/calendar_views" work the same way they do on Firestore.
type StoreMem struct {
	mu   sync.RWMutex
	cols map[string]map[string]map[string]any
}

func NewStoreMem() *StoreMem {
	return &StoreMem{cols: make(map[string]map[string]map[string]any)}
}

func cloneDoc(d map[string]any) map[string]any {
	out := make(map[string]any, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// sortedIDs keeps listing order deterministic.
func sortedIDs(col map[string]map[string]any) []string {
	ids := make([]string, 0, len(col))
	for id := range col {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *StoreMem) GetCollection(_ context.Context, collection string) ([]map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	col := s.cols[collection]
	out := make([]map[string]any, 0, len(col))
	for _, id := range sortedIDs(col) {
		out = append(out, cloneDoc(col[id]))
	}
	return out, nil
}

func (s *StoreMem) GetDocumentByName(_ context.Context, collection, name string) (map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.cols[collection][name]
	if !ok {
		return nil, nil
	}
	return cloneDoc(doc), nil
}

func (s *StoreMem) SetDocument(_ context.Context, collection, name string, data map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cols[collection] == nil {
		s.cols[collection] = make(map[string]map[string]any)
	}
	s.cols[collection][name] = cloneDoc(data)
	return nil
}

func (s *StoreMem) UpdateSingleDoc(_ context.Context, collection, docID, field string, value any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.cols[collection][docID]
	if !ok {
		// mirrors the production adapter: a failed update is ok=false
		return false, nil
	}
	doc[field] = value
	return true, nil
}

func (s *StoreMem) UpdateDocumentsWithField(_ context.Context, collection, exceptDoc, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, doc := range s.cols[collection] {
		if id == exceptDoc {
			continue
		}
		doc[field] = value
	}
	return nil
}

func (s *StoreMem) QueryOverlapping(_ context.Context, collection, field string, values []string, windowStart, windowEnd time.Time) ([]map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	want := make(map[string]bool, len(values))
	for _, v := range values {
		want[v] = true
	}

	col := s.cols[collection]
	var out []map[string]any
	for _, id := range sortedIDs(col) {
		doc := col[id]
		fv, _ := doc[field].(string)
		if !want[fv] {
			continue
		}
		start, okS := doc["start_date"].(time.Time)
		end, okE := doc["end_date"].(time.Time)
		if !okS || !okE {
			continue
		}
		// start_date <= windowEnd AND end_date >= windowStart
		if start.After(windowEnd) || end.Before(windowStart) {
			continue
		}
		out = append(out, cloneDoc(doc))
	}
	return out, nil
}

// BatchUpdate is all-or-nothing: every target must exist before any field
// is touched, like a Firestore batch of Update writes.
func (s *StoreMem) BatchUpdate(_ context.Context, updates []uc.DocUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range updates {
		if _, ok := s.cols[u.Collection][u.Doc]; !ok {
			return fmt.Errorf("batch update: document %s/%s does not exist", u.Collection, u.Doc)
		}
	}
	for _, u := range updates {
		doc := s.cols[u.Collection][u.Doc]
		for k, v := range u.Fields {
			doc[k] = v
		}
	}
	return nil
}

func (s *StoreMem) RemoveDocument(_ context.Context, collection, docID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cols[collection][docID]; !ok {
		return "", fmt.Errorf("Document with ID %s does not exist in collection %s", docID, collection)
	}
	delete(s.cols[collection], docID)
	return fmt.Sprintf("Document with ID %s successfully deleted from collection %s", docID, collection), nil
}
