// internal/domain/calendar/view.go
package calendar

import orderdom "fencecalendar/internal/domain/order"

// ViewSummary is one saved calendar view as exposed to clients.
type ViewSummary struct {
	CalendarName string   `json:"calendarName"`
	Branches     []string `json:"branches"`
	IsFavorite   bool     `json:"isFavorite"`
	IsDefault    bool     `json:"isDefault"`
}

// DefaultViewResult bundles everything the client needs to render its
// opening screen: the default view name (nil when unset), the current
// month's orders for that view's branches, and every saved view.
type DefaultViewResult struct {
	DefaultCalendarView *string                `json:"defaultCalendarView"`
	Orders              []orderdom.MonthRecord `json:"orders"`
	CalendarList        []ViewSummary          `json:"calendarList"`
}

// Empty returns the shape served to users with no default view yet
// (including freshly provisioned ones).
func Empty() DefaultViewResult {
	return DefaultViewResult{
		DefaultCalendarView: nil,
		Orders:              []orderdom.MonthRecord{},
		CalendarList:        []ViewSummary{},
	}
}
