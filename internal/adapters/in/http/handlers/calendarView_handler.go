// internal/adapters/in/http/handlers/calendarView_handler.go
package handlers

import (
	"net/http"
	"strings"

	usecase "fencecalendar/internal/application/usecase"
	calendardom "fencecalendar/internal/domain/calendar"
)

const (
	codeDefaultViewFail = 1002
	codeCreateViewFail  = 1003
	codeUpdateViewFail  = 1008
)

// CalendarViewHandler serves the /calendar-view endpoints.
type CalendarViewHandler struct {
	uc *usecase.CalendarViewUsecase
}

func NewCalendarViewHandler(uc *usecase.CalendarViewUsecase) http.Handler {
	return &CalendarViewHandler{uc: uc}
}

func (h *CalendarViewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/calendar-view/default":
		h.getDefault(w, r)
	case r.Method == http.MethodPost && r.URL.Path == "/calendar-view/create-calendar-view":
		h.create(w, r)
	case r.Method == http.MethodPost && r.URL.Path == "/calendar-view/update-calendar-details":
		h.updateDetails(w, r)
	default:
		notFoundRoute(w)
	}
}

type getDefaultReq struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

// POST /calendar-view/default
func (h *CalendarViewHandler) getDefault(w http.ResponseWriter, r *http.Request) {
	var req getDefaultReq
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if strings.TrimSpace(req.UserID) == "" {
		writeBadRequest(w, "userId is required")
		return
	}

	result, err := h.uc.GetDefaultView(r.Context(), req.UserID, req.UserName)
	if err != nil {
		writeFail(w, http.StatusOK, codeDefaultViewFail, "Error occurred while fetching default calendar view", err.Error())
		return
	}

	message := "Fetched Default Calendar"
	if result.DefaultCalendarView == nil {
		message = "Default Calendar View Not Found"
	}
	writeSuccess(w, http.StatusOK, codeOK, message, []calendardom.DefaultViewResult{result})
}

type createViewReq struct {
	UserID       string   `json:"userId"`
	CalendarName string   `json:"calendarName"`
	Regions      []string `json:"regions"`
	Areas        []string `json:"areas"`
	Branches     []string `json:"branches"`
	IsDefault    bool     `json:"isDefault"`
	IsFavorite   bool     `json:"isFavorite"`
}

type createViewResp struct {
	Message string `json:"message"`
}

// POST /calendar-view/create-calendar-view
func (h *CalendarViewHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createViewReq
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.CalendarName) == "" {
		writeBadRequest(w, "userId and calendarName are required")
		return
	}

	err := h.uc.CreateView(r.Context(), usecase.CreateViewInput{
		UserID:       req.UserID,
		CalendarName: req.CalendarName,
		Regions:      req.Regions,
		Areas:        req.Areas,
		Branches:     req.Branches,
		IsDefault:    req.IsDefault,
		IsFavorite:   req.IsFavorite,
	})
	if err != nil {
		writeFail(w, http.StatusOK, codeCreateViewFail, "Calendar view Creation Failed", err.Error())
		return
	}
	writeSuccess(w, http.StatusOK, codeOK, "Calendar view created",
		[]createViewResp{{Message: "Calendar view created successfully"}})
}

type updateViewReq struct {
	UserID       string `json:"userId"`
	CalendarName string `json:"calendarName"`
	IsDefault    *bool  `json:"isDefault"`
	IsFavorite   *bool  `json:"isFavorite"`
}

type updateViewResp struct {
	CalendarList []calendardom.ViewSummary `json:"calendarList"`
}

// POST /calendar-view/update-calendar-details
func (h *CalendarViewHandler) updateDetails(w http.ResponseWriter, r *http.Request) {
	var req updateViewReq
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.CalendarName) == "" {
		writeBadRequest(w, "userId and calendarName are required")
		return
	}

	list, err := h.uc.UpdateViewDetails(r.Context(), usecase.UpdateViewInput{
		UserID:       req.UserID,
		CalendarName: req.CalendarName,
		IsDefault:    req.IsDefault,
		IsFavorite:   req.IsFavorite,
	})
	if err != nil {
		writeFail(w, http.StatusOK, codeUpdateViewFail, "Error occurred while updating calendar details", err.Error())
		return
	}
	writeSuccess(w, http.StatusOK, codeOK, "Calendar Updated Successfully",
		[]updateViewResp{{CalendarList: list}})
}
