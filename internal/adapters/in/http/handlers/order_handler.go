// internal/adapters/in/http/handlers/order_handler.go
package handlers

import (
	"net/http"
	"strings"

	usecase "fencecalendar/internal/application/usecase"
)

// Per-endpoint failure codes, fixed by the front-end contract.
const (
	codeOK              = 1000
	codeMonthViewFail   = 1001
	codeDayViewFail     = 1007
	codeUpdateNotesFail = 1009
)

// OrderHandler serves the /orders endpoints: month-view, day-view and
// update-notes.
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) http.Handler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/orders/month-view":
		h.monthView(w, r)
	case r.Method == http.MethodPost && r.URL.Path == "/orders/day-view":
		h.dayView(w, r)
	case r.Method == http.MethodPost && r.URL.Path == "/orders/update-notes":
		h.updateNotes(w, r)
	default:
		notFoundRoute(w)
	}
}

type monthViewReq struct {
	Branches  []string `json:"branches"`
	YearMonth string   `json:"yearMonth"`
}

// POST /orders/month-view
func (h *OrderHandler) monthView(w http.ResponseWriter, r *http.Request) {
	var req monthViewReq
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if !isYearMonth(req.YearMonth) {
		writeBadRequest(w, "yearMonth must be in YYYY-MM format")
		return
	}
	if !validBranches(req.Branches) {
		writeBadRequest(w, "branches must be 3-letter branch codes")
		return
	}

	orders, err := h.uc.MonthOrders(r.Context(), req.Branches, req.YearMonth)
	if err != nil {
		writeFail(w, http.StatusOK, codeMonthViewFail, "Error occurred while fetching orders", err.Error())
		return
	}
	writeSuccess(w, http.StatusOK, codeOK, ordersMessage(len(orders)), orders)
}

type dayViewReq struct {
	Branches []string `json:"branches"`
	Date     string   `json:"date"`
}

// POST /orders/day-view
func (h *OrderHandler) dayView(w http.ResponseWriter, r *http.Request) {
	var req dayViewReq
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if !isDate(req.Date) {
		writeBadRequest(w, "date must be in YYYY-MM-DD format")
		return
	}
	if !validBranches(req.Branches) {
		writeBadRequest(w, "branches must be 3-letter branch codes")
		return
	}

	orders, err := h.uc.DayOrders(r.Context(), req.Branches, req.Date)
	if err != nil {
		writeFail(w, http.StatusOK, codeDayViewFail, "Error occurred while fetching orders", err.Error())
		return
	}
	writeSuccess(w, http.StatusOK, codeOK, ordersMessage(len(orders)), orders)
}

type updateNotesReq struct {
	OrderID string `json:"orderId"`
	Notes   string `json:"notes"`
}

// POST /orders/update-notes
func (h *OrderHandler) updateNotes(w http.ResponseWriter, r *http.Request) {
	var req updateNotesReq
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if strings.TrimSpace(req.OrderID) == "" {
		writeBadRequest(w, "orderId is required")
		return
	}

	// empty notes is a valid value, not "no update"
	result, err := h.uc.UpdateNotes(r.Context(), req.OrderID, req.Notes)
	if err != nil {
		writeFail(w, http.StatusOK, codeUpdateNotesFail, "Error occurred while updating notes", err.Error())
		return
	}
	writeSuccess(w, http.StatusOK, codeOK, result.Message, []any{result})
}

func ordersMessage(n int) string {
	if n == 0 {
		return "Orders Not Found"
	}
	return "Orders Found"
}
