// internal/adapters/in/http/handlers/branch_handler.go
package handlers

import (
	"net/http"

	usecase "fencecalendar/internal/application/usecase"
)

// BranchHandler serves GET /branches.
type BranchHandler struct {
	uc *usecase.BranchUsecase
}

func NewBranchHandler(uc *usecase.BranchUsecase) http.Handler {
	return &BranchHandler{uc: uc}
}

func (h *BranchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	branches, err := h.uc.List(r.Context())
	if err != nil {
		// branches has no endpoint-specific code; failures surface
		// filter-style with the HTTP status as statusCode
		writeFail(w, http.StatusOK, http.StatusInternalServerError, "Error occurred while fetching branches", err.Error())
		return
	}
	writeSuccess(w, http.StatusOK, 1000, "Branches Found", branches)
}
