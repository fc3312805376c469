package storage

import (
	"sync"

	"github.com/PraneethAmbegoda/restaurant-menu-app/internal/domain"
)

// MemoryMenuStore keeps the catalog in seed order behind a single mutex.
type MemoryMenuStore struct {
	mu    sync.Mutex
	menus []domain.MenuItem
}

func NewMemoryMenuStore(menus []domain.MenuItem) *MemoryMenuStore {
	return &MemoryMenuStore{menus: menus}
}

func (s *MemoryMenuStore) GetAllMenus() ([]domain.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.MenuItem, len(s.menus))
	copy(out, s.menus)
	return out, nil
}

// MemoryTableStore keeps the fixed table IDs behind a single mutex.
type MemoryTableStore struct {
	mu     sync.Mutex
	tables []uint32
}

func NewMemoryTableStore(tables []uint32) *MemoryTableStore {
	return &MemoryTableStore{tables: tables}
}

func (s *MemoryTableStore) GetAllTables() ([]uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]uint32, len(s.tables))
	copy(out, s.tables)
	return out, nil
}

// MemoryOrderStore maps table ID to the sequence of ordered item IDs.
// Duplicates are allowed; each occurrence is removable independently. The
// lock is ledger-wide, not per-table, which is fine at the target scale.
// Entries are pruned when their last item is removed, so an existing entry is
// always non-empty.
type MemoryOrderStore struct {
	mu     sync.Mutex
	orders map[uint32][]uint32
}

func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{orders: make(map[uint32][]uint32)}
}

func (s *MemoryOrderStore) AddItem(tableID, itemID uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders[tableID] = append(s.orders[tableID], itemID)
	return nil
}

// RemoveItem drops the first occurrence of itemID from the table's order.
func (s *MemoryOrderStore) RemoveItem(tableID, itemID uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := s.orders[tableID]
	if !ok {
		return &domain.NoOrderForTableError{TableID: tableID}
	}
	for i, id := range items {
		if id == itemID {
			items = append(items[:i], items[i+1:]...)
			if len(items) == 0 {
				delete(s.orders, tableID)
			} else {
				s.orders[tableID] = items
			}
			return nil
		}
	}
	return &domain.NoMatchingItemError{TableID: tableID, ItemID: itemID}
}

func (s *MemoryOrderStore) GetItemIDs(tableID uint32) ([]uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := s.orders[tableID]
	if !ok {
		return nil, &domain.NoOrderForTableError{TableID: tableID}
	}
	out := make([]uint32, len(items))
	copy(out, items)
	return out, nil
}

// GetItemID is a pure existence probe for one occurrence of itemID.
func (s *MemoryOrderStore) GetItemID(tableID, itemID uint32) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.orders[tableID] {
		if id == itemID {
			return itemID, nil
		}
	}
	return 0, &domain.NoMatchingItemError{TableID: tableID, ItemID: itemID}
}
