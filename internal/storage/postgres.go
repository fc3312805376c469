package storage

import (
	"database/sql"
	"fmt"

	"github.com/PraneethAmbegoda/restaurant-menu-app/internal/domain"
)

// PostgresMenuStore reads the catalog from a menu_items table. The rows are
// seeded out of band; the store itself stays read-only like its in-memory
// counterpart.
type PostgresMenuStore struct {
	DB *sql.DB
}

func NewPostgresMenuStore(db *sql.DB) *PostgresMenuStore {
	return &PostgresMenuStore{DB: db}
}

func (s *PostgresMenuStore) GetAllMenus() ([]domain.MenuItem, error) {
	rows, err := s.DB.Query(`
		SELECT id, name, cooking_time
		FROM menu_items
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMenusRetrieve, err)
	}
	defer rows.Close()

	var menus []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.CookingTime); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMenusRetrieve, err)
		}
		menus = append(menus, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMenusRetrieve, err)
	}

	return menus, nil
}

// PostgresTableStore reads the table registry from a tables table.
type PostgresTableStore struct {
	DB *sql.DB
}

func NewPostgresTableStore(db *sql.DB) *PostgresTableStore {
	return &PostgresTableStore{DB: db}
}

func (s *PostgresTableStore) GetAllTables() ([]uint32, error) {
	rows, err := s.DB.Query(`
		SELECT id
		FROM tables
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTablesRetrieve, err)
	}
	defer rows.Close()

	var tables []uint32
	for rows.Next() {
		var id uint32
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrTablesRetrieve, err)
		}
		tables = append(tables, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTablesRetrieve, err)
	}

	return tables, nil
}
