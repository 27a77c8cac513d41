package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store bundles the repositories behind one interface so service code can be
// written against either the live database or a transaction-scoped view of it.
//
// Atomically runs fn against a Store whose writes all commit together or not
// at all: if fn returns an error, every write it performed is rolled back and
// the error is returned unchanged. This is the unit of atomicity for every
// ledger-mutating operation.
type Store interface {
	Accounts() AccountRepository
	Inventory() InventoryRepository
	Orders() OrderRepository
	OrderedItems() OrderedItemRepository
	Atomically(ctx context.Context, fn func(Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

// NewStore wraps a gorm handle (live connection or open transaction) in a Store.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Accounts() AccountRepository         { return &gormAccountRepository{db: s.db} }
func (s *gormStore) Inventory() InventoryRepository      { return &gormInventoryRepository{db: s.db} }
func (s *gormStore) Orders() OrderRepository             { return &gormOrderRepository{db: s.db} }
func (s *gormStore) OrderedItems() OrderedItemRepository { return &gormOrderedItemRepository{db: s.db} }

func (s *gormStore) Atomically(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
