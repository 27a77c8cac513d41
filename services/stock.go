package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/repository"
)

// normalizeProductName trims and title-cases a product name. Every lookup and
// every stored ordered-item snapshot goes through this, so "satchet water"
// and "Satchet Water" address the same inventory row.
func normalizeProductName(name string) string {
	return cases.Title(language.English).String(strings.TrimSpace(name))
}

// reserveStock checks a candidate line against the owner's inventory and, when
// it reconciles cleanly, decrements the stock level. The returned slice holds
// every problem found for this product (a missing row, short stock and a stale
// price are not short-circuited); it is empty exactly when stock was reserved.
// The error return is reserved for storage failures.
//
// Must be called with a transaction-scoped store: the decrement only becomes
// visible if the surrounding operation commits.
func reserveStock(ctx context.Context, s repository.Store, ownerID uuid.UUID, name string, quantity int, expectedPrice int64) ([]string, error) {
	item, err := s.Inventory().FindByName(ctx, ownerID, name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []string{msgNotInInventory(name)}, nil
	}
	if err != nil {
		return nil, err
	}

	var problems []string
	if quantity > item.StockLevel {
		problems = append(problems, msgInsufficientStock(name))
	}
	if expectedPrice != item.Price {
		problems = append(problems, msgPriceMismatch(name))
	}
	if len(problems) > 0 {
		return problems, nil
	}

	item.StockLevel -= quantity
	return nil, s.Inventory().Save(ctx, item)
}

// reserveAdditionalStock reserves delta more units of an already-ordered
// product. The price was snapshotted at line creation, so only availability is
// checked here.
func reserveAdditionalStock(ctx context.Context, s repository.Store, ownerID uuid.UUID, name string, delta int) ([]string, error) {
	item, err := s.Inventory().FindByName(ctx, ownerID, name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []string{msgNotInInventory(name)}, nil
	}
	if err != nil {
		return nil, err
	}

	if delta > item.StockLevel {
		return []string{msgInsufficientStock(name)}, nil
	}

	item.StockLevel -= delta
	return nil, s.Inventory().Save(ctx, item)
}

// releaseStock returns quantity units to the owner's inventory. A missing row
// is a no-op, not an error: the product may have been deleted out from under a
// historical order, and the order's total must still be adjusted by the caller
// either way.
func releaseStock(ctx context.Context, s repository.Store, ownerID uuid.UUID, name string, quantity int) error {
	item, err := s.Inventory().FindByName(ctx, ownerID, name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	item.StockLevel += quantity
	return s.Inventory().Save(ctx, item)
}
