package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the single document type of the store. Address, cart and orders
// live as embedded arrays inside the document; entries get their own
// ObjectID when appended.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Phone    string             `bson:"phone" json:"phone"`
	Email    string             `bson:"email" json:"email"`
	Username string             `bson:"username" json:"username"` // unique index
	Password string             `bson:"password" json:"-"`        // stored in clear text, see DESIGN.md
	Address  []Address          `bson:"address" json:"address"`
	Cart     []CartItem         `bson:"cart" json:"cart"`
	Orders   []Order            `bson:"orders" json:"orders"`
}

// Address entry embedded in User. No structural validation; duplicates are allowed.
type Address struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Address string             `bson:"address" json:"address"`
	City    string             `bson:"city" json:"city"`
	State   string             `bson:"state" json:"state"`
	Zip     int                `bson:"zip" json:"zip"`
	Country string             `bson:"country" json:"country"`
}

// CartItem entry embedded in User. ProductID is the externally supplied
// catalog id; repeated adds of the same product append duplicate entries.
type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProductID int                `bson:"id" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price"`
	Image     string             `bson:"image" json:"image"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// Order's numeric fields are pointers: a missing price or total is rejected
// by validation, an explicit zero is accepted.
type Order struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Items []OrderItem        `bson:"items" json:"items" validate:"required,dive"`
	Total *float64           `bson:"total" json:"total" validate:"required"`
	Date  time.Time          `bson:"date" json:"date"`
}

type OrderItem struct {
	Name     string   `bson:"name" json:"name" validate:"required"`
	Price    *float64 `bson:"price" json:"price" validate:"required"`
	Image    string   `bson:"image" json:"image" validate:"required"`
	Quantity int      `bson:"quantity" json:"quantity" validate:"required,min=1"`
}

// OrderByID returns the order with the given id, or nil if the user document
// holds no such order.
func (u *User) OrderByID(id primitive.ObjectID) *Order {
	for i := range u.Orders {
		if u.Orders[i].ID == id {
			return &u.Orders[i]
		}
	}
	return nil
}
