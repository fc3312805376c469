package domain

import "time"

// MenuItem is a single entry in the restaurant's catalog. Items are seeded at
// startup and never change afterwards.
type MenuItem struct {
	ID          uint32 `json:"id"`
	Name        string `json:"name"`
	CookingTime uint32 `json:"cooking_time"`
}

// OrderEvent is emitted whenever an item is added to or removed from a
// table's order.
type OrderEvent struct {
	Type      string    `json:"type"`
	TableID   uint32    `json:"table_id"`
	ItemID    uint32    `json:"item_id"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	EventItemAdded   = "item_added"
	EventItemRemoved = "item_removed"
)
