// Package mocks provides a testify mock of store.UserStore for handler tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/joseph6369828419/online-saleserver/models"
	"github.com/joseph6369828419/online-saleserver/store"
)

type UserStore struct {
	mock.Mock
}

var _ store.UserStore = (*UserStore)(nil)

func (m *UserStore) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserStore) UpdatePassword(ctx context.Context, username, newPassword string) error {
	args := m.Called(ctx, username, newPassword)
	return args.Error(0)
}

func (m *UserStore) PushCartItem(ctx context.Context, username string, item models.CartItem) error {
	args := m.Called(ctx, username, item)
	return args.Error(0)
}

func (m *UserStore) PullCartItem(ctx context.Context, username string, itemID primitive.ObjectID) error {
	args := m.Called(ctx, username, itemID)
	return args.Error(0)
}

func (m *UserStore) Addresses(ctx context.Context, username string) ([]models.Address, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Address), args.Error(1)
}

func (m *UserStore) PushAddress(ctx context.Context, username string, addr models.Address) error {
	args := m.Called(ctx, username, addr)
	return args.Error(0)
}

func (m *UserStore) SetAddress(ctx context.Context, username string, addr models.Address) error {
	args := m.Called(ctx, username, addr)
	return args.Error(0)
}

func (m *UserStore) PullAddress(ctx context.Context, username string, addrID primitive.ObjectID) error {
	args := m.Called(ctx, username, addrID)
	return args.Error(0)
}

func (m *UserStore) ReplaceAddresses(ctx context.Context, username string, addr models.Address) (*models.User, error) {
	args := m.Called(ctx, username, addr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserStore) PlaceOrder(ctx context.Context, username string, order *models.Order) error {
	args := m.Called(ctx, username, order)
	return args.Error(0)
}

func (m *UserStore) CancelOrder(ctx context.Context, username string, orderID primitive.ObjectID) error {
	args := m.Called(ctx, username, orderID)
	return args.Error(0)
}

func (m *UserStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
