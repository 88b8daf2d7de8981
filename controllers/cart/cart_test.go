package cartControllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/joseph6369828419/online-saleserver/models"
	"github.com/joseph6369828419/online-saleserver/store"
	"github.com/joseph6369828419/online-saleserver/store/mocks"
)

func newRouter(users store.UserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()

	r := gin.New()
	r.POST("/api/add-to-cart", AddToCart(users, log))
	r.GET("/api/cart/:username", GetCart(users, log))
	r.POST("/api/cart/view", ViewCart(users, log))
	r.DELETE("/api/remove-from-cart/:username/:productId", RemoveFromCart(users, log))
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddToCart(t *testing.T) {
	users := new(mocks.UserStore)
	r := newRouter(users)

	users.On("PushCartItem", mock.Anything, "alice", mock.MatchedBy(func(item models.CartItem) bool {
		return item.ProductID == 7 && item.Quantity == 2
	})).Return(nil).Once()

	w := doJSON(r, "POST", "/api/add-to-cart",
		`{"username":"alice","product":{"id":7,"name":"Mug","price":9.5,"image":"mug.png","quantity":2}}`)
	assert.Equal(t, http.StatusOK, w.Code)
	users.AssertExpectations(t)
}

func TestAddToCartUnknownUser(t *testing.T) {
	users := new(mocks.UserStore)
	r := newRouter(users)

	users.On("PushCartItem", mock.Anything, "ghost", mock.Anything).Return(store.ErrUserNotFound)

	w := doJSON(r, "POST", "/api/add-to-cart", `{"username":"ghost","product":{"id":7}}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// Both cart read endpoints must return the identical {cart: [...]} structure.
func TestCartViewsReturnSameStructure(t *testing.T) {
	users := new(mocks.UserStore)
	r := newRouter(users)

	user := &models.User{
		Username: "alice",
		Cart: []models.CartItem{
			{ID: primitive.NewObjectID(), ProductID: 7, Name: "Mug", Price: 9.5, Image: "mug.png", Quantity: 2},
		},
	}
	users.On("FindByUsername", mock.Anything, "alice").Return(user, nil)

	byPath := doJSON(r, "GET", "/api/cart/alice", "")
	byBody := doJSON(r, "POST", "/api/cart/view", `{"username":"alice"}`)

	assert.Equal(t, http.StatusOK, byPath.Code)
	assert.Equal(t, http.StatusOK, byBody.Code)
	assert.JSONEq(t, byPath.Body.String(), byBody.Body.String())
	assert.Contains(t, byPath.Body.String(), "Mug")
}

func TestGetCartUnknownUser(t *testing.T) {
	users := new(mocks.UserStore)
	r := newRouter(users)

	users.On("FindByUsername", mock.Anything, "ghost").Return(nil, store.ErrUserNotFound)

	w := doJSON(r, "GET", "/api/cart/ghost", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// The POST twin reports an unknown user as 400, not 404.
func TestViewCartUnknownUser(t *testing.T) {
	users := new(mocks.UserStore)
	r := newRouter(users)

	users.On("FindByUsername", mock.Anything, "ghost").Return(nil, store.ErrUserNotFound)

	w := doJSON(r, "POST", "/api/cart/view", `{"username":"ghost"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveFromCart(t *testing.T) {
	users := new(mocks.UserStore)
	r := newRouter(users)

	itemID := primitive.NewObjectID()
	users.On("PullCartItem", mock.Anything, "alice", itemID).Return(nil).Once()

	w := doJSON(r, "DELETE", "/api/remove-from-cart/alice/"+itemID.Hex(), "")
	assert.Equal(t, http.StatusOK, w.Code)
	users.AssertExpectations(t)
}

// A pull that matches no entry is still a success.
func TestRemoveFromCartNoMatch(t *testing.T) {
	users := new(mocks.UserStore)
	r := newRouter(users)

	users.On("PullCartItem", mock.Anything, "alice", mock.Anything).Return(nil)

	w := doJSON(r, "DELETE", "/api/remove-from-cart/alice/"+primitive.NewObjectID().Hex(), "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRemoveFromCartMalformedID(t *testing.T) {
	users := new(mocks.UserStore)
	r := newRouter(users)

	w := doJSON(r, "DELETE", "/api/remove-from-cart/alice/not-an-id", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	users.AssertNotCalled(t, "PullCartItem", mock.Anything, mock.Anything, mock.Anything)
}
