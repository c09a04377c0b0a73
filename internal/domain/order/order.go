// internal/domain/order/order.go
package order

import (
	"errors"
	"time"
)

// Sentinels shared by usecases and handlers.
// メッセージはクライアント契約の一部なので変更しないこと。
var (
	ErrNotFound            = errors.New("Order not found")
	ErrPlaceholderNotFound = errors.New("Placeholder not found")
)

// Kind distinguishes confirmed orders from provisional placeholders.
// The two live in separate collections; the tag is assigned at query
// time, never sniffed from the ID prefix.
type Kind int

const (
	Confirmed Kind = iota
	Provisional
)

// IsProvisional reports whether the record came from the placeholder collection.
func (k Kind) IsProvisional() bool { return k == Provisional }

// Fence is one fence line item on an order.
type Fence struct {
	FenceType string `json:"fenceType"`
	NoOfUnits int    `json:"noOfUnits"`
}

// GeoPoint is the API-facing coordinate pair for a job site.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MonthRecord is the month-view projection of an order or placeholder.
type MonthRecord struct {
	ProjectType   string     `json:"projectType"`
	ClientName    string     `json:"clientName"`
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	Address       string     `json:"address"`
	Phone         *string    `json:"phone"`
	OrderID       string     `json:"orderId"`
	Fences        []Fence    `json:"fences"`
	WorkType      string     `json:"workType"`
	Driver        string     `json:"driver"`
	IsPlaceholder bool       `json:"isPlaceholder"`
}

// DayRecord is the day-view projection. It carries everything the month
// view has plus notes, the external reference URL (nil for placeholders),
// branch and geo point.
type DayRecord struct {
	ProjectType   string     `json:"projectType"`
	ClientName    string     `json:"clientName"`
	Address       string     `json:"address"`
	OrderID       string     `json:"orderId"`
	Fences        []Fence    `json:"fences"`
	WorkType      string     `json:"workType"`
	Driver        string     `json:"driver"`
	Notes         string     `json:"notes"`
	URL           *string    `json:"url"`
	Branch        string     `json:"branch"`
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	GeoPoint      *GeoPoint  `json:"geoPoint"`
	Phone         *string    `json:"phone"`
	IsPlaceholder bool       `json:"isPlaceholder"`
}

// NotesResult is the outcome of an update-notes call. A missing order is a
// normal outcome here, reported through Message rather than an error.
type NotesResult struct {
	Message string `json:"message"`
}
