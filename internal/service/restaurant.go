package service

import (
	"time"

	"github.com/PraneethAmbegoda/restaurant-menu-app/internal/domain"
)

// RestaurantService composes the three stores into the public domain
// operations and enforces the cross-store invariants: a table must exist
// before its order can be touched, and an item must be on the menu before it
// can be added. The service itself is stateless; all state lives in the
// stores.
type RestaurantService struct {
	menus     MenuStore
	tables    TableStore
	orders    OrderStore
	publisher OrderEventPublisher
}

func NewRestaurantService(menus MenuStore, tables TableStore, orders OrderStore, publisher OrderEventPublisher) *RestaurantService {
	return &RestaurantService{
		menus:     menus,
		tables:    tables,
		orders:    orders,
		publisher: publisher,
	}
}

func (s *RestaurantService) GetAllMenus() ([]domain.MenuItem, error) {
	return s.menus.GetAllMenus()
}

func (s *RestaurantService) GetAllTables() ([]uint32, error) {
	return s.tables.GetAllTables()
}

// checkTableExists re-derives table existence from a fresh registry snapshot
// on every call; nothing is cached.
func (s *RestaurantService) checkTableExists(tableID uint32) error {
	tables, err := s.tables.GetAllTables()
	if err != nil {
		return err
	}
	for _, id := range tables {
		if id == tableID {
			return nil
		}
	}
	return &domain.TableNotFoundError{TableID: tableID}
}

// AddItem places one occurrence of itemID on the table's order. The table
// check runs before the menu check, so an unknown table on an unknown item
// reports TableNotFoundError.
func (s *RestaurantService) AddItem(tableID, itemID uint32) error {
	if err := s.checkTableExists(tableID); err != nil {
		return err
	}

	menus, err := s.menus.GetAllMenus()
	if err != nil {
		return err
	}
	onMenu := false
	for _, item := range menus {
		if item.ID == itemID {
			onMenu = true
			break
		}
	}
	if !onMenu {
		return &domain.MenuNotFoundError{ItemID: itemID}
	}

	if err := s.orders.AddItem(tableID, itemID); err != nil {
		return err
	}

	s.publish(domain.EventItemAdded, tableID, itemID)
	return nil
}

// RemoveItem removes one occurrence of itemID from the table's order. Menu
// existence is deliberately not re-validated: the order record, not the
// catalog, is authoritative for what was actually ordered.
func (s *RestaurantService) RemoveItem(tableID, itemID uint32) error {
	if err := s.checkTableExists(tableID); err != nil {
		return err
	}

	if err := s.orders.RemoveItem(tableID, itemID); err != nil {
		return err
	}

	s.publish(domain.EventItemRemoved, tableID, itemID)
	return nil
}

// GetItems lists the menu items currently ordered at the table. Ordered IDs
// no longer present in the catalog are dropped rather than failing the whole
// listing.
func (s *RestaurantService) GetItems(tableID uint32) ([]domain.MenuItem, error) {
	if err := s.checkTableExists(tableID); err != nil {
		return nil, err
	}

	itemIDs, err := s.orders.GetItemIDs(tableID)
	if err != nil {
		return nil, err
	}

	menus, err := s.menus.GetAllMenus()
	if err != nil {
		return nil, err
	}

	byID := make(map[uint32]domain.MenuItem, len(menus))
	for _, item := range menus {
		byID[item.ID] = item
	}

	items := make([]domain.MenuItem, 0, len(itemIDs))
	for _, id := range itemIDs {
		if item, ok := byID[id]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}

// GetItem returns the catalog entry for an item currently on the table's
// order. A ledger hit with a catalog miss reports MenuNotFoundError, distinct
// from the ledger-level NoMatchingItemError.
func (s *RestaurantService) GetItem(tableID, itemID uint32) (domain.MenuItem, error) {
	if err := s.checkTableExists(tableID); err != nil {
		return domain.MenuItem{}, err
	}

	if _, err := s.orders.GetItemID(tableID, itemID); err != nil {
		return domain.MenuItem{}, err
	}

	menus, err := s.menus.GetAllMenus()
	if err != nil {
		return domain.MenuItem{}, err
	}
	for _, item := range menus {
		if item.ID == itemID {
			return item, nil
		}
	}
	return domain.MenuItem{}, &domain.MenuNotFoundError{ItemID: itemID}
}

// publish emits an order event if a publisher is wired. Failures are dropped;
// the event stream is best-effort and never fails the operation.
func (s *RestaurantService) publish(eventType string, tableID, itemID uint32) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.PublishOrderEvent(domain.OrderEvent{
		Type:      eventType,
		TableID:   tableID,
		ItemID:    itemID,
		Timestamp: time.Now(),
	})
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)
