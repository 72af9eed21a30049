// Package models defines the service-area document: one row per
// pincode/caterer pair (partition key /pincode) modeling many-to-many
// coverage between postal codes and caterers.
package models

import "time"

// TypeServiceArea is the document type tag for service areas.
const TypeServiceArea = "serviceArea"

// ServiceArea maps one caterer to one pincode it serves. Its id is always
// the composite ComposeID(pincode, catererId).
type ServiceArea struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Pincode   string    `json:"pincode"`
	CatererID string    `json:"catererId"`
	Regions   []string  `json:"regions,omitempty"`
	Rank      int       `json:"rank"`
	CreatedAt time.Time `json:"createdAt"`
}

// ComposeID builds the composite document id for a pincode/caterer pair.
// The format is fixed: point reads and deletes depend on it.
func ComposeID(pincode, catererID string) string {
	return pincode + "_" + catererID
}
