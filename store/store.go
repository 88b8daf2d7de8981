package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/joseph6369828419/online-saleserver/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrInvalidOrder      = errors.New("invalid order")
	// ErrOrderNotRemoved is returned when the cancel pull reports success but
	// the order is still present on the document afterwards.
	ErrOrderNotRemoved = errors.New("order was not removed")
)

// UserStore is the persistence surface for the single user collection.
// Handlers depend on this interface, never on the mongo client directly.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	UpdatePassword(ctx context.Context, username, newPassword string) error

	PushCartItem(ctx context.Context, username string, item models.CartItem) error
	PullCartItem(ctx context.Context, username string, itemID primitive.ObjectID) error

	Addresses(ctx context.Context, username string) ([]models.Address, error)
	PushAddress(ctx context.Context, username string, addr models.Address) error
	SetAddress(ctx context.Context, username string, addr models.Address) error
	PullAddress(ctx context.Context, username string, addrID primitive.ObjectID) error
	ReplaceAddresses(ctx context.Context, username string, addr models.Address) (*models.User, error)

	PlaceOrder(ctx context.Context, username string, order *models.Order) error
	CancelOrder(ctx context.Context, username string, orderID primitive.ObjectID) error

	Ping(ctx context.Context) error
}
