package models

// Product represents a tour package offered by the agency.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Days        int    `json:"days"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Destination string `json:"destination"`
	Status      string `json:"status"` // "active" unless overridden
	Image       string `json:"image"`  // "/uploads/..." path or placeholder URL
}

// RecordID returns the collection identifier for a product.
func (p Product) RecordID() int64 { return p.ID }
