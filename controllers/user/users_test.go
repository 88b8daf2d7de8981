package userControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/joseph6369828419/online-saleserver/models"
	"github.com/joseph6369828419/online-saleserver/store"
	"github.com/joseph6369828419/online-saleserver/store/mocks"
)

func newRouter(users store.UserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()

	r := gin.New()
	r.POST("/api/register", Register(users, log))
	r.POST("/api/login", Login(users, log))
	r.PUT("/api/forgot-password", ForgotPassword(users, log))
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	users := new(mocks.UserStore)
	r := newRouter(users)

	users.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil).Once()

	w := doJSON(r, "POST", "/api/register",
		`{"name":"Alice","phone":"123","email":"a@example.com","username":"alice","password":"p1"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	users.AssertExpectations(t)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	users := new(mocks.UserStore)
	r := newRouter(users)

	users.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).
		Return(store.ErrDuplicateUsername).Once()

	w := doJSON(r, "POST", "/api/register", `{"username":"alice","password":"p1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// A duplicate is indistinguishable from any other registration failure.
	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Registration failed", resp["message"])
}

func TestRegisterMissingFields(t *testing.T) {
	users := new(mocks.UserStore)
	r := newRouter(users)

	w := doJSON(r, "POST", "/api/register", `{"username":"alice"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	users := new(mocks.UserStore)
	r := newRouter(users)

	users.On("FindByUsername", mock.Anything, "alice").Return(&models.User{
		Username: "alice",
		Password: "p1",
		Cart:     []models.CartItem{},
	}, nil)

	w := doJSON(r, "POST", "/api/login", `{"username":"alice","password":"p1"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Username string            `json:"username"`
		Cart     []models.CartItem `json:"cart"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
	assert.Empty(t, resp.Cart)
}

func TestLoginWrongPassword(t *testing.T) {
	users := new(mocks.UserStore)
	r := newRouter(users)

	users.On("FindByUsername", mock.Anything, "alice").Return(&models.User{
		Username: "alice",
		Password: "p1",
	}, nil)

	w := doJSON(r, "POST", "/api/login", `{"username":"alice","password":"wrong"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	users := new(mocks.UserStore)
	r := newRouter(users)

	users.On("FindByUsername", mock.Anything, "ghost").Return(nil, store.ErrUserNotFound)

	w := doJSON(r, "POST", "/api/login", `{"username":"ghost","password":"p1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestForgotPassword(t *testing.T) {
	users := new(mocks.UserStore)
	r := newRouter(users)

	users.On("UpdatePassword", mock.Anything, "alice", "p2").Return(nil).Once()

	w := doJSON(r, "PUT", "/api/forgot-password", `{"username":"alice","newPassword":"p2"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	users.AssertExpectations(t)
}

func TestForgotPasswordUnknownUser(t *testing.T) {
	users := new(mocks.UserStore)
	r := newRouter(users)

	users.On("UpdatePassword", mock.Anything, "ghost", "p2").Return(store.ErrUserNotFound)

	w := doJSON(r, "PUT", "/api/forgot-password", `{"username":"ghost","newPassword":"p2"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
