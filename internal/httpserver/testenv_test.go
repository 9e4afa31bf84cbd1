package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BunniBooXx/Custom-Nails-Backend/internal/models"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/payments"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/repo"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/service"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
	Rp *repo.GormRepo
}

var testJWTSecret = []byte("test-jwt-secret")

const testWebhookSecret = "whsec_test_secret"

func initTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
		return nil
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.NailSizeOption{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.TokenBlocklist{},
	); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := initTestDB(t)
	rp := repo.New(db)

	authSvc := &service.AuthService{Repo: rp, JWTSecret: testJWTSecret}
	productSvc := &service.ProductService{Repo: rp}
	cartSvc := &service.CartService{Repo: rp}
	orderSvc := &service.OrderService{Repo: rp}
	sizeSvc := &service.NailSizeService{Repo: rp}

	stripeClient := payments.NewClient("sk_test_key", testWebhookSecret,
		"http://localhost/success/{ORDER_ID}", "http://localhost/cancel/{ORDER_ID}")
	checkoutSvc := &service.CheckoutService{Repo: rp, Payments: stripeClient}

	e := echo.New()
	Register(e, Deps{
		Users:     &UserHTTP{Svc: authSvc},
		Products:  &ProductHTTP{Svc: productSvc},
		Carts:     &CartHTTP{Svc: cartSvc},
		Orders:    &OrderHTTP{Svc: orderSvc},
		NailSizes: &NailSizeHTTP{Svc: sizeSvc},
		Checkout:  &CheckoutHTTP{Svc: checkoutSvc},
		Webhook:   &WebhookHTTP{Payments: stripeClient, Orders: orderSvc},
		JWTSecret: testJWTSecret,
		Blocklist: rp,
	})

	return &testEnv{T: t, E: e, DB: db, Rp: rp}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func signupAndLogin(t *testing.T, env *testEnv, username string) string {
	t.Helper()

	payload := map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "Secret123",
	}
	rec := env.doJSONRequest(http.MethodPost, "/user/signup", payload, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.doJSONRequest(http.MethodPost, "/user/login", payload, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func seedProduct(t *testing.T, env *testEnv, name string, price float64, stock int) *models.Product {
	t.Helper()
	product := models.Product{Name: name, Description: "d", Price: price, QuantityAvailable: stock, ImageURL: "u"}
	require.NoError(t, env.DB.Create(&product).Error)
	return &product
}

func seedSizeOption(t *testing.T, env *testEnv, name string) *models.NailSizeOption {
	t.Helper()
	option := models.NailSizeOption{Name: name}
	require.NoError(t, env.DB.Create(&option).Error)
	return &option
}
