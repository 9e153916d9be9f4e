package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order lifecycle statuses. The workflow runs received → production →
// assembly → packaging → ready → installed, with cancelled reachable from
// any state. Transitions are not restricted: the status field accepts direct
// assignment to any listed value.
const (
	OrderStatusReceived   = "received"
	OrderStatusProduction = "production"
	OrderStatusAssembly   = "assembly"
	OrderStatusPackaging  = "packaging"
	OrderStatusReady      = "ready"
	OrderStatusInstalled  = "installed"
	OrderStatusCancelled  = "cancelled"
)

var orderStatuses = map[string]bool{
	OrderStatusReceived:   true,
	OrderStatusProduction: true,
	OrderStatusAssembly:   true,
	OrderStatusPackaging:  true,
	OrderStatusReady:      true,
	OrderStatusInstalled:  true,
	OrderStatusCancelled:  true,
}

// ValidOrderStatus reports whether s is one of the seven lifecycle statuses.
func ValidOrderStatus(s string) bool {
	return orderStatuses[s]
}

// Glass color options.
const (
	GlassClear  = "clear"
	GlassSmoked = "smoked"
)

type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Customer    primitive.ObjectID `bson:"customer" json:"customer"`
	Width       float64            `bson:"width" json:"width"`
	Height      float64            `bson:"height" json:"height"`
	RalCode     string             `bson:"ralcode" json:"ralCode"`
	GlassColor  string             `bson:"glasscolor" json:"glassColor"`
	Cost        float64            `bson:"cost" json:"cost"`
	Price       float64            `bson:"price" json:"price"`
	Status      string             `bson:"status" json:"status"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"createdat" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedat" json:"updatedAt"`
}

// IsActive reports whether the order is still in flight. Installed and
// cancelled are the two terminal states; the classification is derived,
// never stored.
func (o *Order) IsActive() bool {
	return o.Status != OrderStatusInstalled && o.Status != OrderStatusCancelled
}
