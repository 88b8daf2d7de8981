package store

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/joseph6369828419/online-saleserver/models"
)

// Mongo implements UserStore on a single "users" collection.
//
// Cart and address add/remove/update go through atomic update operators and
// are safe under concurrent requests. ReplaceAddresses and PlaceOrder follow
// the fetch-mutate-save pattern so that their combined mutations land in one
// document write; concurrent writers can lose updates on those two paths.
type Mongo struct {
	users    *mongo.Collection
	validate *validator.Validate
}

// NewMongo wires the store to the users collection and ensures the unique
// username index exists.
func NewMongo(ctx context.Context, db *mongo.Database) (*Mongo, error) {
	users := db.Collection("users")

	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("create username index: %w", err)
	}

	return &Mongo{users: users, validate: validator.New()}, nil
}

func (m *Mongo) CreateUser(ctx context.Context, user *models.User) error {
	if user.Address == nil {
		user.Address = []models.Address{}
	}
	if user.Cart == nil {
		user.Cart = []models.CartItem{}
	}
	if user.Orders == nil {
		user.Orders = []models.Order{}
	}

	res, err := m.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateUsername
		}
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return nil
}

func (m *Mongo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := m.users.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (m *Mongo) UpdatePassword(ctx context.Context, username, newPassword string) error {
	res, err := m.users.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$set": bson.M{"password": newPassword}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (m *Mongo) PushCartItem(ctx context.Context, username string, item models.CartItem) error {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	res, err := m.users.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$push": bson.M{"cart": item}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// PullCartItem removes the cart entry with the given id. A pull that matches
// no entry still succeeds; only an unknown user is an error.
func (m *Mongo) PullCartItem(ctx context.Context, username string, itemID primitive.ObjectID) error {
	res, err := m.users.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$pull": bson.M{"cart": bson.M{"_id": itemID}}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Addresses returns the address array, or an empty slice when the user is
// unknown. Callers cannot distinguish the two cases; the endpoint does not
// signal not-found.
func (m *Mongo) Addresses(ctx context.Context, username string) ([]models.Address, error) {
	user, err := m.FindByUsername(ctx, username)
	if err == ErrUserNotFound {
		return []models.Address{}, nil
	}
	if err != nil {
		return nil, err
	}
	if user.Address == nil {
		return []models.Address{}, nil
	}
	return user.Address, nil
}

// PushAddress appends an address. An unknown user makes the push a no-op,
// still reported as success.
func (m *Mongo) PushAddress(ctx context.Context, username string, addr models.Address) error {
	if addr.ID.IsZero() {
		addr.ID = primitive.NewObjectID()
	}
	_, err := m.users.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$push": bson.M{"address": addr}},
	)
	return err
}

// SetAddress replaces the address entry whose id matches addr.ID via the
// positional operator. No match is a no-op, still reported as success.
func (m *Mongo) SetAddress(ctx context.Context, username string, addr models.Address) error {
	_, err := m.users.UpdateOne(ctx,
		bson.M{"username": username, "address._id": addr.ID},
		bson.M{"$set": bson.M{"address.$": addr}},
	)
	return err
}

func (m *Mongo) PullAddress(ctx context.Context, username string, addrID primitive.ObjectID) error {
	_, err := m.users.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$pull": bson.M{"address": bson.M{"_id": addrID}}},
	)
	return err
}

// ReplaceAddresses overwrites the whole address array with the single
// supplied address and returns the updated document.
func (m *Mongo) ReplaceAddresses(ctx context.Context, username string, addr models.Address) (*models.User, error) {
	user, err := m.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if addr.ID.IsZero() {
		addr.ID = primitive.NewObjectID()
	}
	user.Address = []models.Address{addr}

	if _, err := m.users.ReplaceOne(ctx, bson.M{"_id": user.ID}, user); err != nil {
		return nil, err
	}
	return user, nil
}

// validateOrder enforces the document-schema rules on an order before it is
// written: items with name/price/image/quantity >= 1 and a total. Explicit
// zero prices and totals pass; only missing values fail.
func (m *Mongo) validateOrder(order *models.Order) error {
	if err := m.validate.Struct(order); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOrder, err)
	}
	return nil
}

// PlaceOrder validates the order, appends it and clears the cart. Both
// mutations land in one ReplaceOne; if the save fails neither is persisted.
func (m *Mongo) PlaceOrder(ctx context.Context, username string, order *models.Order) error {
	if err := m.validateOrder(order); err != nil {
		return err
	}

	user, err := m.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	if order.Date.IsZero() {
		order.Date = time.Now().UTC()
	}
	user.Orders = append(user.Orders, *order)
	user.Cart = []models.CartItem{}

	_, err = m.users.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	return err
}

// CancelOrder pulls the order atomically, then re-reads the document to
// verify the order is gone. Pulling an id that never existed succeeds.
func (m *Mongo) CancelOrder(ctx context.Context, username string, orderID primitive.ObjectID) error {
	var updated models.User
	err := m.users.FindOneAndUpdate(ctx,
		bson.M{"username": username},
		bson.M{"$pull": bson.M{"orders": bson.M{"_id": orderID}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	if updated.OrderByID(orderID) != nil {
		return ErrOrderNotRemoved
	}
	return nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.users.Database().Client().Ping(ctx, nil)
}
