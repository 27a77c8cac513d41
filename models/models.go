package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the two-state order lifecycle. Pending orders are mutable,
// Delivered orders are not, and the transition is one-way.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusDelivered OrderStatus = "Delivered"
)

// Valid reports whether s is one of the recognized statuses.
func (s OrderStatus) Valid() bool {
	return s == OrderStatusPending || s == OrderStatusDelivered
}

// Account is a business owner. Inventory items and orders hang off it.
type Account struct {
	ID                  uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BusinessName        string      `gorm:"size:200;uniqueIndex;not null" json:"business_name"`
	FullName            string      `gorm:"size:200;not null" json:"full_name"`
	Email               string      `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Password            string      `gorm:"size:128;not null" json:"-"`
	Phone               string      `gorm:"size:24" json:"phone"`
	BusinessPhone       string      `gorm:"size:24" json:"business_phone"`
	BusinessAddress     string      `gorm:"size:150" json:"business_address"`
	BusinessType        string      `gorm:"size:150" json:"business_type"`
	Currency            string      `gorm:"size:3;not null;default:'NGN'" json:"currency"`
	Country             string      `gorm:"size:100;not null;default:'Nigeria'" json:"country"`
	State               string      `gorm:"size:100" json:"state"`
	Language            string      `gorm:"size:50;not null;default:'English'" json:"language"`
	DefaultOrderStatus  OrderStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"default_order_status"`
	LowStockThreshold   int         `gorm:"not null;default:5;check:low_stock_threshold >= 0" json:"low_stock_threshold"`
	RcvMailForNewOrders bool        `gorm:"not null;default:true" json:"rcv_mail_for_new_orders"`
	RcvMailForLowStocks bool        `gorm:"not null;default:true" json:"rcv_mail_for_low_stocks"`
	RcvMailNotification bool        `gorm:"not null;default:true" json:"rcv_mail_notification"`
	RcvMsgNotification  bool        `gorm:"not null;default:true" json:"rcv_msg_notification"`
	EmailVerified       bool        `gorm:"not null;default:false" json:"email_verified"`
	VerificationCode    string      `gorm:"size:64" json:"-"`
	DateJoined          time.Time   `gorm:"autoCreateTime" json:"date_joined"`
	UpdatedAt           time.Time   `gorm:"autoUpdateTime" json:"-"`
}

// InventoryItem is one product owned by one account. Product names are
// title-cased and unique per owner. The stock_level check constraint is the
// final backstop against a concurrent reservation racing past zero.
type InventoryItem struct {
	ID                uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OwnerID           uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_inventory_owner_product" json:"-"`
	ProductName       string    `gorm:"size:100;not null;uniqueIndex:ux_inventory_owner_product" json:"product_name"`
	Description       string    `gorm:"size:300" json:"description"`
	Category          string    `gorm:"size:100" json:"category"`
	StockLevel        int       `gorm:"not null;default:0;check:stock_level >= 0" json:"stock_level"`
	LowStockThreshold int       `gorm:"not null;default:5;check:low_stock_threshold >= 0" json:"low_stock_threshold"`
	Price             int64     `gorm:"not null;check:price > 0" json:"price"`
	DateAdded         time.Time `gorm:"autoCreateTime" json:"date_added"`
	LastUpdated       time.Time `gorm:"autoUpdateTime" json:"last_updated"`
}

// Order is the aggregate root for one customer transaction. TotalPrice is a
// cached sum of the items' cumulative prices and is kept in lockstep with them.
type Order struct {
	ID           uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OwnerID      uuid.UUID   `gorm:"type:uuid;not null;index" json:"-"`
	ClientName   string      `gorm:"size:150;not null" json:"client_name"`
	ClientEmail  string      `gorm:"size:150" json:"client_email"`
	ClientPhone  string      `gorm:"size:150" json:"client_phone"`
	Status       OrderStatus `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status"`
	OrderDate    time.Time   `gorm:"not null" json:"order_date"`
	DeliveryDate *time.Time  `json:"delivery_date"`
	TotalPrice   int64       `gorm:"not null;default:0" json:"total_price"`
	CreatedAt    time.Time   `gorm:"autoCreateTime" json:"-"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime" json:"-"`

	Items []OrderedItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"ordered_items"`
}

// OrderedItem is one product line within an order. ProductName is a
// denormalized snapshot rather than a foreign key so historical orders outlive
// renamed or deleted inventory rows. Quantity is the only mutable field.
type OrderedItem struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID         uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_ordered_items_order_product" json:"-"`
	ProductName     string    `gorm:"size:100;not null;uniqueIndex:ux_ordered_items_order_product" json:"name"`
	Quantity        int       `gorm:"not null;check:quantity > 0" json:"quantity"`
	Price           int64     `gorm:"not null;check:price > 0" json:"price"`
	CumulativePrice int64     `gorm:"not null;check:cumulative_price > 0" json:"cummulative_price"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"-"`
}
