package service

import (
	"github.com/PraneethAmbegoda/restaurant-menu-app/internal/domain"
)

// MenuStore exposes the restaurant's read-only menu catalog.
type MenuStore interface {
	GetAllMenus() ([]domain.MenuItem, error)
}

// TableStore exposes the restaurant's read-only table registry.
type TableStore interface {
	GetAllTables() ([]uint32, error)
}

// OrderStore holds the items currently ordered per table. It performs no
// table or menu existence checks; those belong to the facade.
type OrderStore interface {
	AddItem(tableID, itemID uint32) error
	RemoveItem(tableID, itemID uint32) error
	GetItemIDs(tableID uint32) ([]uint32, error)
	GetItemID(tableID, itemID uint32) (uint32, error)
}

// RestaurantServiceInterface is the full domain contract consumed by the
// transport layer.
type RestaurantServiceInterface interface {
	GetAllMenus() ([]domain.MenuItem, error)
	GetAllTables() ([]uint32, error)
	AddItem(tableID, itemID uint32) error
	RemoveItem(tableID, itemID uint32) error
	GetItems(tableID uint32) ([]domain.MenuItem, error)
	GetItem(tableID, itemID uint32) (domain.MenuItem, error)
}

// OrderEventPublisher receives a best-effort stream of add/remove events.
type OrderEventPublisher interface {
	PublishOrderEvent(event domain.OrderEvent) error
}
