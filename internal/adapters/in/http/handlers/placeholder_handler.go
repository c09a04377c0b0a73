// internal/adapters/in/http/handlers/placeholder_handler.go
package handlers

import (
	"net/http"
	"strings"

	usecase "fencecalendar/internal/application/usecase"
	orderdom "fencecalendar/internal/domain/order"
)

const (
	codeCreatePlaceholderFail = 1005
	codeUpdatePlaceholderFail = 1006
	codeDeletePlaceholderFail = 1010
)

// PlaceholderHandler serves POST /placeholders and
// PATCH|DELETE /placeholders/{orderId}.
type PlaceholderHandler struct {
	uc *usecase.PlaceholderUsecase
}

func NewPlaceholderHandler(uc *usecase.PlaceholderUsecase) http.Handler {
	return &PlaceholderHandler{uc: uc}
}

func (h *PlaceholderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimSuffix(r.URL.Path, "/")

	switch {
	case r.Method == http.MethodPost && path == "/placeholders":
		h.create(w, r)
	case r.Method == http.MethodPatch && strings.HasPrefix(path, "/placeholders/"):
		h.update(w, r, strings.TrimPrefix(path, "/placeholders/"))
	case r.Method == http.MethodDelete && strings.HasPrefix(path, "/placeholders/"):
		h.delete(w, r, strings.TrimPrefix(path, "/placeholders/"))
	default:
		notFoundRoute(w)
	}
}

type fenceReq struct {
	FenceType string `json:"fenceType"`
	NoOfUnits int    `json:"noOfUnits"`
}

type geoPointReq struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type createPlaceholderReq struct {
	StartDate   string      `json:"startDate"`
	EndDate     string      `json:"endDate"`
	ProjectType string      `json:"projectType"`
	Notes       string      `json:"notes"`
	Address     string      `json:"address"`
	WorkType    string      `json:"workType"`
	Driver      string      `json:"driver"`
	ClientName  string      `json:"clientName"`
	Fences      []fenceReq  `json:"fences"`
	Branch      string      `json:"branch"`
	Phone       *string     `json:"phone"`
	GeoPoint    geoPointReq `json:"geoPoint"`
}

// POST /placeholders
func (h *PlaceholderHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createPlaceholderReq
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	startDate, okS := parseDateFlexible(req.StartDate)
	endDate, okE := parseDateFlexible(req.EndDate)
	switch {
	case !okS || !okE:
		writeBadRequest(w, "startDate and endDate must be valid dates")
		return
	case strings.TrimSpace(req.ClientName) == "":
		writeBadRequest(w, "clientName is required")
		return
	case strings.TrimSpace(req.Branch) == "":
		writeBadRequest(w, "branch is required")
		return
	}

	result, err := h.uc.Create(r.Context(), usecase.CreatePlaceholderInput{
		ProjectType: req.ProjectType,
		Notes:       req.Notes,
		Address:     req.Address,
		WorkType:    req.WorkType,
		Driver:      req.Driver,
		ClientName:  req.ClientName,
		StartDate:   startDate,
		EndDate:     endDate,
		Fences:      toFences(req.Fences),
		Branch:      req.Branch,
		Phone:       req.Phone,
		GeoPoint:    orderdom.GeoPoint{Latitude: req.GeoPoint.Latitude, Longitude: req.GeoPoint.Longitude},
	})
	if err != nil {
		writeFail(w, http.StatusCreated, codeCreatePlaceholderFail, "Error creating placeholder", err.Error())
		return
	}
	writeSuccess(w, http.StatusCreated, codeOK, "Placeholder Created", []usecase.PlaceholderResult{result})
}

type updatePlaceholderReq struct {
	StartDate   *string      `json:"startDate"`
	EndDate     *string      `json:"endDate"`
	ProjectType *string      `json:"projectType"`
	Notes       *string      `json:"notes"`
	Address     *string      `json:"address"`
	WorkType    *string      `json:"workType"`
	Driver      *string      `json:"driver"`
	ClientName  *string      `json:"clientName"`
	Fences      []fenceReq   `json:"fences"`
	Phone       *string      `json:"phone"`
	GeoPoint    *geoPointReq `json:"geoPoint"`
}

// PATCH /placeholders/{orderId}
func (h *PlaceholderHandler) update(w http.ResponseWriter, r *http.Request, orderID string) {
	if strings.TrimSpace(orderID) == "" {
		writeBadRequest(w, "orderId is required")
		return
	}

	var req updatePlaceholderReq
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	in := usecase.UpdatePlaceholderInput{
		ProjectType: req.ProjectType,
		Notes:       req.Notes,
		Address:     req.Address,
		WorkType:    req.WorkType,
		Driver:      req.Driver,
		ClientName:  req.ClientName,
		Phone:       req.Phone,
	}
	if req.StartDate != nil {
		// an unparseable date is treated as unset, matching the merge rule
		if t, ok := parseDateFlexible(*req.StartDate); ok {
			in.StartDate = &t
		}
	}
	if req.EndDate != nil {
		if t, ok := parseDateFlexible(*req.EndDate); ok {
			in.EndDate = &t
		}
	}
	if req.Fences != nil {
		in.Fences = toFences(req.Fences)
	}
	if req.GeoPoint != nil {
		in.GeoPoint = &orderdom.GeoPoint{Latitude: req.GeoPoint.Latitude, Longitude: req.GeoPoint.Longitude}
	}

	result, err := h.uc.Update(r.Context(), orderID, in)
	if err != nil {
		writeFail(w, http.StatusOK, codeUpdatePlaceholderFail, "Error updating placeholder", err.Error())
		return
	}
	writeSuccess(w, http.StatusOK, codeOK, "Placeholder Updated", []usecase.PlaceholderResult{result})
}

// DELETE /placeholders/{orderId}
func (h *PlaceholderHandler) delete(w http.ResponseWriter, r *http.Request, orderID string) {
	if strings.TrimSpace(orderID) == "" {
		writeBadRequest(w, "orderId is required")
		return
	}

	message, err := h.uc.Delete(r.Context(), orderID)
	if err != nil {
		writeFail(w, http.StatusOK, codeDeletePlaceholderFail, "Error deleting placeholder", err.Error())
		return
	}
	writeSuccess(w, http.StatusOK, codeOK, message, []string{message})
}

func toFences(in []fenceReq) []orderdom.Fence {
	out := make([]orderdom.Fence, 0, len(in))
	for _, f := range in {
		out = append(out, orderdom.Fence{FenceType: f.FenceType, NoOfUnits: f.NoOfUnits})
	}
	return out
}
