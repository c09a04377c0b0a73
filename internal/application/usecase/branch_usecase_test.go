// internal/application/usecase/branch_usecase_test.go
package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestBranchList(t *testing.T) {
	f := newFakeStore()
	f.seed(colBranches, "CAL", map[string]any{
		"area":        "South",
		"branch_id":   "CAL",
		"region_name": "Alberta",
		"branch_name": "Calgary",
	})
	f.seed(colBranches, "EDM", map[string]any{
		"area":        "North",
		"branch_id":   "EDM",
		"region_name": "Alberta",
		"branch_name": "Edmonton",
	})

	u := NewBranchUsecase(f)
	got, err := u.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d branches, want 2", len(got))
	}
	if got[0].BranchID != "CAL" || got[0].BranchName != "Calgary" || got[0].RegionName != "Alberta" {
		t.Errorf("first branch = %+v", got[0])
	}
}

func TestBranchListEmpty(t *testing.T) {
	u := NewBranchUsecase(newFakeStore())
	got, err := u.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty slice", got)
	}
}

func TestBranchListStoreError(t *testing.T) {
	f := newFakeStore()
	f.errOn["GetCollection"] = errors.New("unavailable")
	if _, err := NewBranchUsecase(f).List(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
