// internal/application/usecase/order_usecase.go
package usecase

import (
	"context"
	"strings"
	"time"

	orderdom "fencecalendar/internal/domain/order"
)

// OrderUsecase merges confirmed orders and placeholders into the calendar
// datasets and owns the notes patch path.
type OrderUsecase struct {
	store DocStore
}

func NewOrderUsecase(store DocStore) *OrderUsecase {
	return &OrderUsecase{store: store}
}

// queryResult carries one collection's fetch over the fan-out channel.
type queryResult struct {
	docs []map[string]any
	err  error
}

// fetchBoth issues the placeholder query and the orders query concurrently
// and waits for both. Any failure aborts the whole aggregation; no partial
// results are returned.
func (u *OrderUsecase) fetchBoth(
	ctx context.Context,
	branches []string,
	start, end time.Time,
) (placeholders, orders []map[string]any, err error) {
	phCh := make(chan queryResult, 1)
	odCh := make(chan queryResult, 1)

	go func() {
		docs, qerr := u.store.QueryOverlapping(ctx, colPlaceholder, fieldBranch, branches, start, end)
		phCh <- queryResult{docs: docs, err: qerr}
	}()
	go func() {
		docs, qerr := u.store.QueryOverlapping(ctx, colOrders, fieldBranch, branches, start, end)
		odCh <- queryResult{docs: docs, err: qerr}
	}()

	ph := <-phCh
	od := <-odCh
	if ph.err != nil {
		return nil, nil, ph.err
	}
	if od.err != nil {
		return nil, nil, od.err
	}
	return ph.docs, od.docs, nil
}

// MonthOrders returns every order and placeholder overlapping the
// week-aligned window of yearMonth ("YYYY-MM") for the given branches.
// Placeholders come first, then confirmed orders — fixed contract.
func (u *OrderUsecase) MonthOrders(ctx context.Context, branches []string, yearMonth string) ([]orderdom.MonthRecord, error) {
	out := []orderdom.MonthRecord{}
	if len(branches) == 0 {
		return out, nil
	}

	start, end, err := MonthWindow(yearMonth)
	if err != nil {
		return nil, err
	}

	phDocs, odDocs, err := u.fetchBoth(ctx, branches, start, end)
	if err != nil {
		return nil, err
	}

	for _, d := range phDocs {
		out = append(out, toMonthRecord(d, orderdom.Provisional))
	}
	for _, d := range odDocs {
		out = append(out, toMonthRecord(d, orderdom.Confirmed))
	}
	return out, nil
}

// DayOrders returns every order and placeholder overlapping the 24-hour
// window of date ("YYYY-MM-DD") for the given branches, in the same
// placeholders-first order as MonthOrders.
func (u *OrderUsecase) DayOrders(ctx context.Context, branches []string, date string) ([]orderdom.DayRecord, error) {
	out := []orderdom.DayRecord{}
	if len(branches) == 0 {
		return out, nil
	}

	start, end, err := DayWindow(date)
	if err != nil {
		return nil, err
	}

	phDocs, odDocs, err := u.fetchBoth(ctx, branches, start, end)
	if err != nil {
		return nil, err
	}

	for _, d := range phDocs {
		out = append(out, toDayRecord(d, orderdom.Provisional))
	}
	for _, d := range odDocs {
		out = append(out, toDayRecord(d, orderdom.Confirmed))
	}
	return out, nil
}

// UpdateNotes patches the notes field of an order, looking in the orders
// collection first and falling back to placeholders. A miss in both is a
// normal "Order not found" outcome, not an error. Empty notes is a valid
// value and overwrites whatever is stored.
func (u *OrderUsecase) UpdateNotes(ctx context.Context, orderID, notes string) (orderdom.NotesResult, error) {
	orderID = strings.TrimSpace(orderID)

	for _, col := range []string{colOrders, colPlaceholder} {
		doc, err := u.store.GetDocumentByName(ctx, col, orderID)
		if err != nil {
			return orderdom.NotesResult{}, err
		}
		if doc == nil {
			continue
		}
		ok, err := u.store.UpdateSingleDoc(ctx, col, orderID, "notes", notes)
		if err != nil {
			return orderdom.NotesResult{}, err
		}
		if ok {
			return orderdom.NotesResult{Message: "Notes updated successfully"}, nil
		}
		return orderdom.NotesResult{Message: "Notes Not Updated"}, nil
	}

	return orderdom.NotesResult{Message: "Order not found"}, nil
}

// ========================
// storage schema → API mapping
// ========================

func toMonthRecord(d map[string]any, kind orderdom.Kind) orderdom.MonthRecord {
	return orderdom.MonthRecord{
		ProjectType:   mapGetStr(d, "project_type"),
		ClientName:    mapGetStr(d, "client_name"),
		StartDate:     mapGetTimePtr(d, "start_date"),
		EndDate:       mapGetTimePtr(d, "end_date"),
		Address:       mapGetStr(d, "address"),
		Phone:         mapGetStrPtr(d, "phone"),
		OrderID:       mapGetStr(d, "order_id"),
		Fences:        mapGetFences(d, "fences"),
		WorkType:      mapGetStr(d, "work_type"),
		Driver:        mapGetStr(d, "driver"),
		IsPlaceholder: kind.IsProvisional(),
	}
}

func toDayRecord(d map[string]any, kind orderdom.Kind) orderdom.DayRecord {
	// acumatica_url is a confirmed-order concept; placeholders expose nil.
	var url *string
	if !kind.IsProvisional() {
		url = mapGetStrPtr(d, "acumatica_url")
	}
	return orderdom.DayRecord{
		ProjectType:   mapGetStr(d, "project_type"),
		ClientName:    mapGetStr(d, "client_name"),
		Address:       mapGetStr(d, "address"),
		OrderID:       mapGetStr(d, "order_id"),
		Fences:        mapGetFences(d, "fences"),
		WorkType:      mapGetStr(d, "work_type"),
		Driver:        mapGetStr(d, "driver"),
		Notes:         mapGetStr(d, "notes"),
		URL:           url,
		Branch:        mapGetStr(d, fieldBranch),
		StartDate:     mapGetTimePtr(d, "start_date"),
		EndDate:       mapGetTimePtr(d, "end_date"),
		GeoPoint:      mapGetGeo(d, "geo_point"),
		Phone:         mapGetStrPtr(d, "phone"),
		IsPlaceholder: kind.IsProvisional(),
	}
}
