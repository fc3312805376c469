package storage

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/PraneethAmbegoda/restaurant-menu-app/internal/domain"
)

// RedisOrderStore keeps each table's order as a Redis list under
// "order:<table_id>". It honors the same contract and error kinds as
// MemoryOrderStore; Redis drops a list key once it empties, which matches the
// prune-on-empty behavior.
type RedisOrderStore struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisOrderStore(client *redis.Client) *RedisOrderStore {
	return &RedisOrderStore{
		client: client,
		ctx:    context.Background(),
	}
}

func (s *RedisOrderStore) orderKey(tableID uint32) string {
	return "order:" + strconv.FormatUint(uint64(tableID), 10)
}

func (s *RedisOrderStore) AddItem(tableID, itemID uint32) error {
	err := s.client.RPush(s.ctx, s.orderKey(tableID), uint64(itemID)).Err()
	if err != nil {
		return &domain.StoreError{Op: "add_item", Err: err}
	}
	return nil
}

func (s *RedisOrderStore) RemoveItem(tableID, itemID uint32) error {
	key := s.orderKey(tableID)

	exists, err := s.client.Exists(s.ctx, key).Result()
	if err != nil {
		return &domain.StoreError{Op: "remove_item", Err: err}
	}
	if exists == 0 {
		return &domain.NoOrderForTableError{TableID: tableID}
	}

	removed, err := s.client.LRem(s.ctx, key, 1, uint64(itemID)).Result()
	if err != nil {
		return &domain.StoreError{Op: "remove_item", Err: err}
	}
	if removed == 0 {
		return &domain.NoMatchingItemError{TableID: tableID, ItemID: itemID}
	}
	return nil
}

func (s *RedisOrderStore) GetItemIDs(tableID uint32) ([]uint32, error) {
	vals, err := s.client.LRange(s.ctx, s.orderKey(tableID), 0, -1).Result()
	if err != nil {
		return nil, &domain.StoreError{Op: "get_item_ids", Err: err}
	}
	if len(vals) == 0 {
		return nil, &domain.NoOrderForTableError{TableID: tableID}
	}

	ids := make([]uint32, 0, len(vals))
	for _, v := range vals {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return nil, &domain.StoreError{Op: "get_item_ids", Err: err}
		}
		ids = append(ids, uint32(id))
	}
	return ids, nil
}

func (s *RedisOrderStore) GetItemID(tableID, itemID uint32) (uint32, error) {
	vals, err := s.client.LRange(s.ctx, s.orderKey(tableID), 0, -1).Result()
	if err != nil {
		return 0, &domain.StoreError{Op: "get_item_id", Err: err}
	}
	want := strconv.FormatUint(uint64(itemID), 10)
	for _, v := range vals {
		if v == want {
			return itemID, nil
		}
	}
	return 0, &domain.NoMatchingItemError{TableID: tableID, ItemID: itemID}
}
