// internal/application/usecase/branch_usecase.go
package usecase

import (
	"context"

	branchdom "fencecalendar/internal/domain/branch"
)

// BranchUsecase lists the branch master data.
type BranchUsecase struct {
	store DocStore
}

func NewBranchUsecase(store DocStore) *BranchUsecase {
	return &BranchUsecase{store: store}
}

func (u *BranchUsecase) List(ctx context.Context) ([]branchdom.Branch, error) {
	docs, err := u.store.GetCollection(ctx, colBranches)
	if err != nil {
		return nil, err
	}
	out := make([]branchdom.Branch, 0, len(docs))
	for _, d := range docs {
		out = append(out, branchdom.Branch{
			Area:       mapGetStr(d, "area"),
			BranchID:   mapGetStr(d, "branch_id"),
			RegionName: mapGetStr(d, "region_name"),
			BranchName: mapGetStr(d, "branch_name"),
		})
	}
	return out, nil
}
