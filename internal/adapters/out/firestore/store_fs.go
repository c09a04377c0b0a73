// internal/adapters/out/firestore/store_fs.go
package firestore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	uc "fencecalendar/internal/application/usecase"
)

// Firestore implementation of usecase.DocStore.
type StoreFS struct {
	Client *firestore.Client
}

func NewStoreFS(client *firestore.Client) *StoreFS {
	return &StoreFS{Client: client}
}

func (s *StoreFS) col(path string) *firestore.CollectionRef {
	// path may be a subcollection like "Users/{uid}/calendar_views"
	return s.Client.Collection(path)
}

// ========================
// DocStore impl
// ========================

func (s *StoreFS) GetCollection(ctx context.Context, collection string) ([]map[string]any, error) {
	if s.Client == nil {
		return nil, errors.New("firestore client is nil")
	}

	it := s.col(collection).Documents(ctx)
	defer it.Stop()

	var out []map[string]any
	for {
		doc, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, doc.Data())
	}
	return out, nil
}

func (s *StoreFS) GetDocumentByName(ctx context.Context, collection, name string) (map[string]any, error) {
	if s.Client == nil {
		return nil, errors.New("firestore client is nil")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	snap, err := s.col(collection).Doc(name).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}
	return snap.Data(), nil
}

func (s *StoreFS) SetDocument(ctx context.Context, collection, name string, data map[string]any) error {
	if s.Client == nil {
		return errors.New("firestore client is nil")
	}
	_, err := s.col(collection).Doc(name).Set(ctx, data)
	return err
}

// UpdateSingleDoc reports a failed write as ok=false instead of an error;
// callers turn that into a "not updated" message.
func (s *StoreFS) UpdateSingleDoc(ctx context.Context, collection, docID, field string, value any) (bool, error) {
	if s.Client == nil {
		return false, errors.New("firestore client is nil")
	}

	_, err := s.col(collection).Doc(docID).Update(ctx, []firestore.Update{
		{Path: field, Value: value},
	})
	if err != nil {
		log.Printf("[storeFS] update %s/%s %s failed: %v", collection, docID, field, err)
		return false, nil
	}
	return true, nil
}

func (s *StoreFS) UpdateDocumentsWithField(ctx context.Context, collection, exceptDoc, field string, value any) error {
	if s.Client == nil {
		return errors.New("firestore client is nil")
	}

	it := s.col(collection).Documents(ctx)
	defer it.Stop()

	batch := s.Client.Batch()
	count := 0
	for {
		doc, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return err
		}
		if doc.Ref.ID == exceptDoc {
			continue
		}
		batch.Update(doc.Ref, []firestore.Update{{Path: field, Value: value}})
		count++
		if count%400 == 0 {
			if _, err := batch.Commit(ctx); err != nil {
				return err
			}
			batch = s.Client.Batch()
		}
	}
	if count%400 != 0 {
		if _, err := batch.Commit(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *StoreFS) QueryOverlapping(ctx context.Context, collection, field string, values []string, windowStart, windowEnd time.Time) ([]map[string]any, error) {
	if s.Client == nil {
		return nil, errors.New("firestore client is nil")
	}

	q := s.col(collection).
		Where(field, "in", values).
		Where("start_date", "<=", windowEnd).
		Where("end_date", ">=", windowStart)

	it := q.Documents(ctx)
	defer it.Stop()

	var out []map[string]any
	for {
		doc, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, doc.Data())
	}
	return out, nil
}

func (s *StoreFS) BatchUpdate(ctx context.Context, updates []uc.DocUpdate) error {
	if s.Client == nil {
		return errors.New("firestore client is nil")
	}
	if len(updates) == 0 {
		return nil
	}

	batch := s.Client.Batch()
	for _, u := range updates {
		ref := s.col(u.Collection).Doc(u.Doc)
		fsUpdates := make([]firestore.Update, 0, len(u.Fields))
		for k, v := range u.Fields {
			fsUpdates = append(fsUpdates, firestore.Update{Path: k, Value: v})
		}
		batch.Update(ref, fsUpdates)
	}
	_, err := batch.Commit(ctx)
	return err
}

func (s *StoreFS) RemoveDocument(ctx context.Context, collection, docID string) (string, error) {
	if s.Client == nil {
		return "", errors.New("firestore client is nil")
	}

	ref := s.col(collection).Doc(docID)
	_, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", fmt.Errorf("Document with ID %s does not exist in collection %s", docID, collection)
		}
		return "", err
	}

	if _, err := ref.Delete(ctx); err != nil {
		return "", err
	}
	return fmt.Sprintf("Document with ID %s successfully deleted from collection %s", docID, collection), nil
}
