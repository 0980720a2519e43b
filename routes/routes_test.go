package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shopcraft/storefront/models"
	"github.com/shopcraft/storefront/seed"
	"github.com/shopcraft/storefront/services"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("UPLOAD_DIR", t.TempDir())
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}))

	r := gin.New()
	store := cookie.NewStore([]byte("test-session-secret"))
	r.Use(sessions.Sessions("storefront", store))
	SetupRoutes(r, db)
	return r, db
}

// client holds the session cookie across requests, like a browser would.
type client struct {
	t      *testing.T
	router *gin.Engine
	cookie string
}

func (cl *client) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	cl.t.Helper()
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if cl.cookie != "" {
		req.Header.Set("Cookie", cl.cookie)
	}
	w := httptest.NewRecorder()
	cl.router.ServeHTTP(w, req)
	if set := w.Header().Get("Set-Cookie"); set != "" {
		cl.cookie = set
	}
	return w
}

func (cl *client) login(email, password string) {
	cl.t.Helper()
	w := cl.do(http.MethodPost, "/auth/login", url.Values{
		"email":    {email},
		"password": {password},
	})
	require.Equal(cl.t, http.StatusOK, w.Code, w.Body.String())
}

func registerUser(t *testing.T, router *gin.Engine, username, email, password string) {
	t.Helper()
	cl := &client{t: t, router: router}
	w := cl.do(http.MethodPost, "/auth/register", url.Values{
		"username":         {username},
		"email":            {email},
		"password":         {password},
		"confirm_password": {password},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestRegisterLoginFlow(t *testing.T) {
	router, _ := newTestServer(t)
	registerUser(t, router, "alice", "a@x.com", "secret1")

	cl := &client{t: t, router: router}
	w := cl.do(http.MethodPost, "/auth/login", url.Values{
		"email":    {"a@x.com"},
		"password": {"wrong"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	cl.login("a@x.com", "secret1")

	w = cl.do(http.MethodGet, "/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		User   models.User       `json:"user"`
		Orders []json.RawMessage `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.User.Username)
	assert.Len(t, resp.Orders, 2)
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	router, _ := newTestServer(t)
	registerUser(t, router, "alice", "a@x.com", "secret1")

	cl := &client{t: t, router: router}
	w := cl.do(http.MethodPost, "/auth/register", url.Values{
		"username":         {"bob"},
		"email":            {"a@x.com"},
		"password":         {"secret2"},
		"confirm_password": {"secret2"},
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCartFlow(t *testing.T) {
	router, db := newTestServer(t)
	registerUser(t, router, "alice", "a@x.com", "secret1")

	products := services.NewProductService(db)
	pen, err := products.Create("Pen", 2.5, "", "")
	require.NoError(t, err)

	cl := &client{t: t, router: router}

	// Cart access without a login works; mutation does not.
	w := cl.do(http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = cl.do(http.MethodPost, "/cart/items/1", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	cl.login("a@x.com", "secret1")

	// Unknown product is rejected before the cart is touched.
	w = cl.do(http.MethodPost, "/cart/items/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	addPen := func() {
		w := cl.do(http.MethodPost, "/cart/items/1", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}
	addPen()
	addPen()

	w = cl.do(http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cartResp struct {
		Lines      []models.CartLine `json:"lines"`
		GrandTotal float64           `json:"grand_total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cartResp))
	require.Len(t, cartResp.Lines, 1)
	assert.Equal(t, pen.ID, cartResp.Lines[0].ProductID)
	assert.Equal(t, 2, cartResp.Lines[0].Quantity)
	assert.InDelta(t, 5.0, cartResp.GrandTotal, 1e-9)

	// Checkout clears the cart.
	w = cl.do(http.MethodPost, "/checkout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = cl.do(http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cartResp))
	assert.Empty(t, cartResp.Lines)
	assert.Zero(t, cartResp.GrandTotal)
}

func TestAdminGate(t *testing.T) {
	router, db := newTestServer(t)
	registerUser(t, router, "alice", "a@x.com", "secret1")
	require.NoError(t, seed.Admin(db, "admin", "admin@example.com", "admin123"))

	products := services.NewProductService(db)
	pen, err := products.Create("Pen", 2.5, "", "")
	require.NoError(t, err)

	// Unauthenticated: not even past login.
	cl := &client{t: t, router: router}
	w := cl.do(http.MethodGet, "/admin/panel", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Authenticated non-admin: forbidden, catalog unchanged.
	cl.login("a@x.com", "secret1")
	w = cl.do(http.MethodDelete, "/admin/products/1", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	all, err := products.All()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// Admin: allowed end to end.
	admin := &client{t: t, router: router}
	admin.login("admin@example.com", "admin123")

	w = admin.do(http.MethodGet, "/admin/panel", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = admin.do(http.MethodDelete, "/admin/products/1", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	_, err = products.Get(pen.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
