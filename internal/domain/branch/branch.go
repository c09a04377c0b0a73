// internal/domain/branch/branch.go
package branch

// Branch is one depot/branch row from the branches collection.
type Branch struct {
	Area       string `json:"area"`
	BranchID   string `json:"branchId"`
	RegionName string `json:"regionName"`
	BranchName string `json:"branchName"`
}
