// internal/application/usecase/calendarview_usecase.go
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	calendardom "fencecalendar/internal/domain/calendar"
)

// CalendarViewUsecase owns the saved-view collection of a user and the
// exactly-one-default invariant:
//
//   - after any successful create or promote, exactly one view document has
//     is_default=true, and it is the one named by the user's
//     default_calendar_view pointer;
//   - the view document + user pointer pair commits atomically, the
//     demotion of sibling views is a separate follow-up write. Readers must
//     therefore derive "the" default from the user pointer only, never by
//     scanning for is_default=true.
type CalendarViewUsecase struct {
	store  DocStore
	orders *OrderUsecase
	now    func() time.Time
}

func NewCalendarViewUsecase(store DocStore, orders *OrderUsecase) *CalendarViewUsecase {
	return &CalendarViewUsecase{
		store:  store,
		orders: orders,
		now:    time.Now,
	}
}

// GetDefaultView resolves a user's default calendar view, the current
// month's orders for its branches, and the full saved-view list.
//
// A first-time user is provisioned lazily (user doc with a null pointer)
// and gets the empty shape back; no orders query runs on that path.
func (u *CalendarViewUsecase) GetDefaultView(ctx context.Context, userID, userName string) (calendardom.DefaultViewResult, error) {
	userID = strings.TrimSpace(userID)

	userDoc, err := u.store.GetDocumentByName(ctx, colUsers, userID)
	if err != nil {
		return calendardom.DefaultViewResult{}, err
	}

	if userDoc == nil {
		newUser := map[string]any{
			"user_id":               userID,
			"user_name":             userName,
			"default_calendar_view": nil,
		}
		if err := u.store.SetDocument(ctx, colUsers, userID, newUser); err != nil {
			return calendardom.DefaultViewResult{}, err
		}
		return calendardom.Empty(), nil
	}

	defaultView := mapGetStr(userDoc, "default_calendar_view")
	if defaultView == "" {
		return calendardom.Empty(), nil
	}

	viewDoc, err := u.store.GetDocumentByName(ctx, viewsCol(userID), defaultView)
	if err != nil {
		return calendardom.DefaultViewResult{}, err
	}
	if viewDoc == nil {
		return calendardom.DefaultViewResult{}, fmt.Errorf("calendar view %q not found for user %s", defaultView, userID)
	}

	branches := mapGetStrSlice(viewDoc, "branches")
	yearMonth := u.now().UTC().Format("2006-01")
	orders, err := u.orders.MonthOrders(ctx, branches, yearMonth)
	if err != nil {
		return calendardom.DefaultViewResult{}, err
	}

	list, err := u.listViews(ctx, userID)
	if err != nil {
		return calendardom.DefaultViewResult{}, err
	}

	return calendardom.DefaultViewResult{
		DefaultCalendarView: &defaultView,
		Orders:              orders,
		CalendarList:        list,
	}, nil
}

// CreateViewInput carries a new saved view. CalendarName doubles as the
// document ID within the user's view collection.
type CreateViewInput struct {
	UserID       string
	CalendarName string
	Regions      []string
	Areas        []string
	Branches     []string
	IsDefault    bool
	IsFavorite   bool
}

// CreateView writes a new view document. The first view a user ever saves
// is forced to be the default regardless of the requested flag. When the
// new view is default, the user pointer is committed in an atomic batch and
// every sibling view is demoted in a follow-up sweep.
func (u *CalendarViewUsecase) CreateView(ctx context.Context, in CreateViewInput) error {
	col := viewsCol(in.UserID)

	existing, err := u.store.GetCollection(ctx, col)
	if err != nil {
		return err
	}

	isDefault := in.IsDefault
	if len(existing) == 0 {
		// 最初のビューは必ずデフォルトにする
		isDefault = true
	}

	data := map[string]any{
		"branches":      in.Branches,
		"regions":       in.Regions,
		"areas":         in.Areas,
		"calendar_name": in.CalendarName,
		"is_default":    isDefault,
		"is_favorite":   in.IsFavorite,
	}
	if err := u.store.SetDocument(ctx, col, in.CalendarName, data); err != nil {
		return err
	}

	if isDefault {
		// Sibling demotion commits before the pointer batch, same order as
		// the behavior this endpoint is contracted to. The new view itself
		// is excluded from the sweep.
		if err := u.store.UpdateDocumentsWithField(ctx, col, in.CalendarName, "is_default", false); err != nil {
			return err
		}
		if err := u.store.BatchUpdate(ctx, []DocUpdate{
			{Collection: colUsers, Doc: in.UserID, Fields: map[string]any{"default_calendar_view": in.CalendarName}},
		}); err != nil {
			return err
		}
	}

	return nil
}

// UpdateViewInput patches the default/favorite flags of one saved view.
// Nil means "leave as stored".
type UpdateViewInput struct {
	UserID       string
	CalendarName string
	IsDefault    *bool
	IsFavorite   *bool
}

// UpdateViewDetails updates the flags of a view and returns the refreshed
// view list. An unknown view name yields an empty list, not an error.
//
// Quirk preserved from the wire contract: isDefault=false is treated the
// same as "unset" — the stored value is retained and explicit demotion
// through this endpoint is impossible. Only an explicit true promotes.
// IsFavorite honors false normally.
func (u *CalendarViewUsecase) UpdateViewDetails(ctx context.Context, in UpdateViewInput) ([]calendardom.ViewSummary, error) {
	col := viewsCol(in.UserID)

	viewDoc, err := u.store.GetDocumentByName(ctx, col, in.CalendarName)
	if err != nil {
		return nil, err
	}
	if viewDoc == nil {
		return []calendardom.ViewSummary{}, nil
	}

	promote := in.IsDefault != nil && *in.IsDefault

	isDefault := mapGetBool(viewDoc, "is_default")
	if promote {
		isDefault = true
	}
	isFavorite := mapGetBool(viewDoc, "is_favorite")
	if in.IsFavorite != nil {
		isFavorite = *in.IsFavorite
	}

	updates := []DocUpdate{
		{Collection: col, Doc: in.CalendarName, Fields: map[string]any{
			"is_default":  isDefault,
			"is_favorite": isFavorite,
		}},
	}
	if promote {
		updates = append(updates, DocUpdate{
			Collection: colUsers,
			Doc:        in.UserID,
			Fields:     map[string]any{"default_calendar_view": in.CalendarName},
		})
		if err := u.store.UpdateDocumentsWithField(ctx, col, in.CalendarName, "is_default", false); err != nil {
			return nil, err
		}
	}

	if err := u.store.BatchUpdate(ctx, updates); err != nil {
		return nil, err
	}

	return u.listViews(ctx, in.UserID)
}

func (u *CalendarViewUsecase) listViews(ctx context.Context, userID string) ([]calendardom.ViewSummary, error) {
	docs, err := u.store.GetCollection(ctx, viewsCol(userID))
	if err != nil {
		return nil, err
	}
	list := make([]calendardom.ViewSummary, 0, len(docs))
	for _, d := range docs {
		list = append(list, calendardom.ViewSummary{
			CalendarName: mapGetStr(d, "calendar_name"),
			Branches:     mapGetStrSlice(d, "branches"),
			IsFavorite:   mapGetBool(d, "is_favorite"),
			IsDefault:    mapGetBool(d, "is_default"),
		})
	}
	return list, nil
}
