// Package models defines the order document: one order per partition
// (partition key /orderId) with embedded customer, location, and package
// snapshot so a point read returns everything needed to render it.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TypeOrder is the document type tag for orders.
const TypeOrder = "order"

// Known order status values. Status is stored as a free-form string and no
// transition is enforced; this set documents the values the clients use.
const (
	StatusPending   = "Pending"
	StatusAccepted  = "Accepted"
	StatusDeclined  = "Declined"
	StatusCancelled = "Cancelled"
	StatusCompleted = "Completed"
)

// Customer is the order's embedded customer snapshot.
type Customer struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
}

// Location is where the event takes place.
type Location struct {
	Pincode string `json:"pincode"`
	Address string `json:"address"`
}

// PackageSnapshot captures the package as it was priced at order time.
type PackageSnapshot struct {
	PackageID     string  `json:"packageId"`
	Name          string  `json:"name"`
	PerPlatePrice float64 `json:"perPlatePrice"`
}

// Order is the order aggregate. Its id always equals its orderId.
type Order struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	OrderID       string          `json:"orderId"`
	CatererID     string          `json:"catererId"`
	Status        string          `json:"status"`
	Customer      Customer        `json:"customer"`
	EventDateTime time.Time       `json:"eventDateTime"`
	GuestCount    int             `json:"guestCount"`
	Location      Location        `json:"location"`
	Package       PackageSnapshot `json:"package"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// Summary is the reduced projection returned by the caterer day view.
type Summary struct {
	OrderID       string    `json:"orderId"`
	EventDateTime time.Time `json:"eventDateTime"`
	Status        string    `json:"status"`
	GuestCount    int       `json:"guestCount"`
	Pincode       string    `json:"pincode"`
	Address       string    `json:"address"`
	PackageName   string    `json:"packageName"`
}

// NewOrderID returns a generated order id with the ORD_ prefix.
func NewOrderID() string {
	return "ORD_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
