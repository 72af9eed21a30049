// Package models defines the catalog documents: one caterer profile per
// partition plus its menu items and packages, all stored in the same
// container (partition key /catererId) discriminated by the type tag.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Document type tags for the shared catalog container.
const (
	TypeCaterer  = "caterer"
	TypeMenuItem = "menuItem"
	TypePackage  = "package"
)

// Veg type values for menu items.
const (
	VegTypeVeg    = "Veg"
	VegTypeNonVeg = "NonVeg"
	VegTypeEgg    = "Egg"
)

// Menu item categories.
const (
	CategoryStarter     = "Starter"
	CategoryMain        = "Main"
	CategoryDessert     = "Dessert"
	CategoryBeverage    = "Beverage"
	CategoryLiveCounter = "LiveCounter"
)

// Caterer is the caterer profile document. Its id equals its catererId so
// point reads need only the partition key value.
type Caterer struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	CatererID    string    `json:"catererId"`
	Name         string    `json:"name"`
	LogoURL      string    `json:"logoUrl,omitempty"`
	ContactPhone string    `json:"contactPhone,omitempty"`
	Gstin        string    `json:"gstin,omitempty"`
	IsVerified   bool      `json:"isVerified"`
	CreatedAt    time.Time `json:"createdAt"`
}

// MenuItem is a single orderable dish belonging to one caterer.
type MenuItem struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	CatererID string    `json:"catererId"`
	Name      string    `json:"name"`
	VegType   string    `json:"vegType"`
	Category  string    `json:"category"`
	Unit      string    `json:"unit"`
	BaseCost  float64   `json:"baseCost"`
	Tags      []string  `json:"tags,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// PackageItem references a menu item inside a package. The reference is
// informal: nothing enforces that the menu item still exists.
type PackageItem struct {
	MenuItemID  string  `json:"menuItemId"`
	QtyPerPlate float64 `json:"qtyPerPlate"`
}

// Package is a priced per-plate bundle of menu items.
type Package struct {
	ID            string        `json:"id"`
	Type          string        `json:"type"`
	CatererID     string        `json:"catererId"`
	Name          string        `json:"name"`
	Description   string        `json:"description,omitempty"`
	PerPlatePrice float64       `json:"perPlatePrice"`
	VegOnly       bool          `json:"vegOnly"`
	Items         []PackageItem `json:"items"`
	IsActive      bool          `json:"isActive"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// NewMenuItemID returns a generated menu item id with the MI_ prefix.
func NewMenuItemID() string {
	return "MI_" + hexUUID()
}

// NewPackageID returns a generated package id with the PKG_ prefix.
func NewPackageID() string {
	return "PKG_" + hexUUID()
}

func hexUUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
