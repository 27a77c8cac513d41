package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/models"
	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/repository"
)

// fakeStore is an in-memory repository.Store. Atomically snapshots the whole
// state and restores it when fn fails, so tests exercise the same
// rollback-on-error guarantee the gorm store provides, without a database.
// It also enforces the (order_id, product_name) unique constraint the way
// postgres would: as an opaque storage error.
type fakeStore struct {
	accounts  map[uuid.UUID]models.Account
	inventory map[uuid.UUID]models.InventoryItem
	orders    map[uuid.UUID]models.Order
	items     map[uuid.UUID]models.OrderedItem
	itemSeq   map[uuid.UUID]int
	seq       int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		accounts:  make(map[uuid.UUID]models.Account),
		inventory: make(map[uuid.UUID]models.InventoryItem),
		orders:    make(map[uuid.UUID]models.Order),
		items:     make(map[uuid.UUID]models.OrderedItem),
		itemSeq:   make(map[uuid.UUID]int),
	}
}

func (f *fakeStore) Accounts() repository.AccountRepository         { return &fakeAccounts{f} }
func (f *fakeStore) Inventory() repository.InventoryRepository      { return &fakeInventory{f} }
func (f *fakeStore) Orders() repository.OrderRepository             { return &fakeOrders{f} }
func (f *fakeStore) OrderedItems() repository.OrderedItemRepository { return &fakeOrderedItems{f} }

func (f *fakeStore) Atomically(ctx context.Context, fn func(repository.Store) error) error {
	snapshot := f.clone()
	if err := fn(f); err != nil {
		f.accounts = snapshot.accounts
		f.inventory = snapshot.inventory
		f.orders = snapshot.orders
		f.items = snapshot.items
		f.itemSeq = snapshot.itemSeq
		f.seq = snapshot.seq
		return err
	}
	return nil
}

func (f *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	c.seq = f.seq
	for k, v := range f.accounts {
		c.accounts[k] = v
	}
	for k, v := range f.inventory {
		c.inventory[k] = v
	}
	for k, v := range f.orders {
		v.Items = nil
		c.orders[k] = v
	}
	for k, v := range f.items {
		c.items[k] = v
	}
	for k, v := range f.itemSeq {
		c.itemSeq[k] = v
	}
	return c
}

// seedInventory is a test helper adding one product directly to the ledger.
func (f *fakeStore) seedInventory(ownerID uuid.UUID, name string, stock int, price int64) uuid.UUID {
	id := uuid.New()
	f.inventory[id] = models.InventoryItem{
		ID:                id,
		OwnerID:           ownerID,
		ProductName:       name,
		StockLevel:        stock,
		LowStockThreshold: 5,
		Price:             price,
	}
	return id
}

func (f *fakeStore) stockOf(id uuid.UUID) int {
	return f.inventory[id].StockLevel
}

// --- accounts ---

type fakeAccounts struct{ f *fakeStore }

func (r *fakeAccounts) FindByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	if a, ok := r.f.accounts[id]; ok {
		return &a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAccounts) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	for _, a := range r.f.accounts {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAccounts) Create(ctx context.Context, account *models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	r.f.accounts[account.ID] = *account
	return nil
}

func (r *fakeAccounts) Save(ctx context.Context, account *models.Account) error {
	r.f.accounts[account.ID] = *account
	return nil
}

// --- inventory ---

type fakeInventory struct{ f *fakeStore }

func (r *fakeInventory) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*models.InventoryItem, error) {
	if item, ok := r.f.inventory[id]; ok && item.OwnerID == ownerID {
		return &item, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeInventory) FindByName(ctx context.Context, ownerID uuid.UUID, name string) (*models.InventoryItem, error) {
	for _, item := range r.f.inventory {
		if item.OwnerID == ownerID && item.ProductName == name {
			return &item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeInventory) List(ctx context.Context, ownerID uuid.UUID, filter repository.InventoryFilter) ([]models.InventoryItem, int64, error) {
	var items []models.InventoryItem
	for _, item := range r.f.inventory {
		if item.OwnerID != ownerID {
			continue
		}
		if filter.LowStock && item.StockLevel > item.LowStockThreshold {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ProductName < items[j].ProductName })
	total := int64(len(items))

	if filter.Page > 0 && filter.PerPage > 0 {
		start := (filter.Page - 1) * filter.PerPage
		if start > len(items) {
			start = len(items)
		}
		end := start + filter.PerPage
		if end > len(items) {
			end = len(items)
		}
		items = items[start:end]
	}
	return items, total, nil
}

func (r *fakeInventory) LowStock(ctx context.Context, ownerID uuid.UUID, limit int) ([]models.InventoryItem, error) {
	items, _, err := r.List(ctx, ownerID, repository.InventoryFilter{LowStock: true})
	if err != nil {
		return nil, err
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (r *fakeInventory) Stats(ctx context.Context, ownerID uuid.UUID) (*repository.InventoryStats, error) {
	stats := &repository.InventoryStats{}
	for _, item := range r.f.inventory {
		if item.OwnerID != ownerID {
			continue
		}
		stats.TotalProducts++
		stats.TotalStockValue += int64(item.StockLevel) * item.Price
		if item.StockLevel <= item.LowStockThreshold {
			stats.LowStockCount++
		}
	}
	return stats, nil
}

func (r *fakeInventory) Create(ctx context.Context, item *models.InventoryItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.f.inventory[item.ID] = *item
	return nil
}

func (r *fakeInventory) Save(ctx context.Context, item *models.InventoryItem) error {
	r.f.inventory[item.ID] = *item
	return nil
}

func (r *fakeInventory) Delete(ctx context.Context, item *models.InventoryItem) error {
	delete(r.f.inventory, item.ID)
	return nil
}

// --- orders ---

type fakeOrders struct{ f *fakeStore }

func (r *fakeOrders) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*models.Order, error) {
	order, ok := r.f.orders[id]
	if !ok || order.OwnerID != ownerID {
		return nil, gorm.ErrRecordNotFound
	}
	order.Items = r.itemsOf(id)
	return &order, nil
}

func (r *fakeOrders) itemsOf(orderID uuid.UUID) []models.OrderedItem {
	var items []models.OrderedItem
	for _, item := range r.f.items {
		if item.OrderID == orderID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return r.f.itemSeq[items[i].ID] < r.f.itemSeq[items[j].ID]
	})
	return items
}

func (r *fakeOrders) List(ctx context.Context, ownerID uuid.UUID, filter repository.OrderFilter) ([]models.Order, int64, error) {
	var orders []models.Order
	for id, order := range r.f.orders {
		if order.OwnerID != ownerID {
			continue
		}
		if filter.Status != "" && order.Status != filter.Status {
			continue
		}
		order.Items = r.itemsOf(id)
		orders = append(orders, order)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].OrderDate.After(orders[j].OrderDate) })
	return orders, int64(len(orders)), nil
}

func (r *fakeOrders) RecentPending(ctx context.Context, ownerID uuid.UUID, limit int) ([]models.Order, error) {
	orders, _, err := r.List(ctx, ownerID, repository.OrderFilter{Status: models.OrderStatusPending})
	if err != nil {
		return nil, err
	}
	if len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

func (r *fakeOrders) Stats(ctx context.Context, ownerID uuid.UUID) (*repository.OrderStats, error) {
	stats := &repository.OrderStats{}
	for _, order := range r.f.orders {
		if order.OwnerID != ownerID {
			continue
		}
		stats.TotalOrders++
		stats.TotalRevenue += order.TotalPrice
		if order.Status == models.OrderStatusPending {
			stats.PendingOrders++
		}
	}
	return stats, nil
}

func (r *fakeOrders) TopSellingProduct(ctx context.Context, ownerID uuid.UUID) (string, error) {
	sold := make(map[string]int)
	for _, item := range r.f.items {
		order, ok := r.f.orders[item.OrderID]
		if !ok || order.OwnerID != ownerID {
			continue
		}
		sold[item.ProductName] += item.Quantity
	}

	var top string
	var max int
	for name, units := range sold {
		if units > max || (units == max && name < top) {
			top, max = name, units
		}
	}
	return top, nil
}

func (r *fakeOrders) Create(ctx context.Context, order *models.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	stored := *order
	stored.Items = nil
	r.f.orders[order.ID] = stored
	return nil
}

func (r *fakeOrders) Save(ctx context.Context, order *models.Order) error {
	stored := *order
	stored.Items = nil
	r.f.orders[order.ID] = stored
	return nil
}

func (r *fakeOrders) Delete(ctx context.Context, order *models.Order) error {
	delete(r.f.orders, order.ID)
	for id, item := range r.f.items {
		if item.OrderID == order.ID {
			delete(r.f.items, id)
			delete(r.f.itemSeq, id)
		}
	}
	return nil
}

// --- ordered items ---

type fakeOrderedItems struct{ f *fakeStore }

func (r *fakeOrderedItems) FindByID(ctx context.Context, id, orderID uuid.UUID) (*models.OrderedItem, error) {
	if item, ok := r.f.items[id]; ok && item.OrderID == orderID {
		return &item, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeOrderedItems) CountByOrder(ctx context.Context, orderID uuid.UUID) (int64, error) {
	var count int64
	for _, item := range r.f.items {
		if item.OrderID == orderID {
			count++
		}
	}
	return count, nil
}

func (r *fakeOrderedItems) Create(ctx context.Context, item *models.OrderedItem) error {
	for _, existing := range r.f.items {
		if existing.OrderID == item.OrderID && existing.ProductName == item.ProductName {
			return fmt.Errorf("ERROR: duplicate key value violates unique constraint %q", "ux_ordered_items_order_product")
		}
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.f.seq++
	r.f.itemSeq[item.ID] = r.f.seq
	r.f.items[item.ID] = *item
	return nil
}

func (r *fakeOrderedItems) Save(ctx context.Context, item *models.OrderedItem) error {
	r.f.items[item.ID] = *item
	return nil
}

func (r *fakeOrderedItems) Delete(ctx context.Context, item *models.OrderedItem) error {
	delete(r.f.items, item.ID)
	delete(r.f.itemSeq, item.ID)
	return nil
}
