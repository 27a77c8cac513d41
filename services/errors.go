package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ValidationErrors accumulates reconciliation problems keyed by product name
// (or field name for order-level problems). All candidate lines are checked
// before the operation gives up, so a caller can fix every problem in one
// round-trip. Returning a ValidationErrors from the atomic section rolls the
// whole transaction back.
type ValidationErrors map[string][]string

func (ve ValidationErrors) Add(key string, msgs ...string) {
	ve[key] = append(ve[key], msgs...)
}

func (ve ValidationErrors) Error() string {
	keys := make([]string, 0, len(ve))
	for k := range ve {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k + ": " + strings.Join(ve[k], ", "))
	}
	return b.String()
}

// InvalidStatusError reports a status value outside the Pending/Delivered
// lifecycle, echoing the offending value.
type InvalidStatusError struct {
	Value string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("'%s' is not a valid order status", e.Value)
}

// Structural/state errors. These are detected before any storage mutation and
// reported as a single descriptive message.
var (
	ErrNotFound             = errors.New("Item not found")
	ErrEmptyOrder           = errors.New("Order must contain at least one Ordered product")
	ErrOnlyPendingEditable  = errors.New("Only pending orders can be edited")
	ErrOnlyPendingDeletable = errors.New("Only pending orders can be deleted")
	ErrOnlyQuantityEditable = errors.New("Only 'quantity' field can be updated")
	ErrLastOrderedItem      = errors.New("An order must contain at least one ordered item; delete the order instead")
	ErrDuplicateInventory   = errors.New("Multiple inventory items with the same 'product_name' are not allowed")
	ErrEmailTaken           = errors.New("An account with this email already exists")
	ErrInvalidCredentials   = errors.New("Invalid email or password")
)

// Per-product reconciliation messages, keyed by product name in the
// accumulated ValidationErrors.
func msgNotInInventory(name string) string {
	return fmt.Sprintf("'%s' doesn't exist in the Inventory.", name)
}

func msgInsufficientStock(name string) string {
	return fmt.Sprintf("Not enough products in stock to satisfy order for '%s'", name)
}

func msgPriceMismatch(name string) string {
	return fmt.Sprintf("Price isn't the same as that of inventory item for '%s'", name)
}

func msgDuplicateProduct(name string) string {
	return fmt.Sprintf("Duplicate Ordered Product: %s. Use the quantity field to specify multiple items", name)
}
