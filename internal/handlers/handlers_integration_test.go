package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"
	"storefront/pkg/razorpay"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// stubGateway stands in for the Razorpay client. The gateway order id is
// derived from the receipt and a valid signature is "sig-<orderID>-<paymentID>".
type stubGateway struct{}

func (stubGateway) KeyID() string { return "rzp_test_key" }

func (stubGateway) CreateOrder(_ context.Context, amount int64, currency, receipt string) (*razorpay.Order, error) {
	return &razorpay.Order{
		ID:       "order_gw_" + receipt,
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
	}, nil
}

func (stubGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return signature == "sig-"+orderID+"-"+paymentID
}

// testEnv gives tests direct access to the layers behind the app for
// seeding data and minting tokens.
type testEnv struct {
	authService *services.AuthService
	userRepo    repositories.UserRepository
	productRepo repositories.ProductRepository
}

// setupApp builds the full Fiber app against an in-memory SQLite database.
// Each test gets its own database so state never leaks between tests.
func setupApp(t *testing.T) (*fiber.App, *testEnv) {
	t.Helper()

	viper.SetDefault("JWT_SECRET", "test_jwt_secret")
	viper.AutomaticEnv()
	jwtSecret := viper.GetString("JWT_SECRET")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartLine{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderTracking{},
		&models.Payment{},
	))

	userRepo := repositories.NewGORMUserRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	paymentRepo := repositories.NewGORMPaymentRepository(db)

	authService := services.NewAuthService(userRepo, jwtSecret)
	productService := services.NewProductService(productRepo)
	cartService := services.NewCartService(cartRepo, productRepo)
	checkoutService := services.NewCheckoutService(orderRepo, cartService, nil)
	paymentService := services.NewPaymentService(orderRepo, paymentRepo, stubGateway{}, nil)
	shippingService := services.NewShippingService(orderRepo, nil)

	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(checkoutService, paymentService)
	shippingHandler := handlers.NewShippingHandler(shippingService)

	app := fiber.New()
	apiV1 := app.Group("/api/v1")

	authHandler.RegisterRoutes(apiV1)
	productHandler.RegisterRoutes(apiV1)

	protected := apiV1.Group("", middleware.AuthRequired(authService))
	cartHandler.RegisterRoutes(protected)
	orderHandler.RegisterRoutes(protected)
	shippingHandler.RegisterRoutes(protected)

	admin := protected.Group("", middleware.AdminRequired())
	productHandler.RegisterAdminRoutes(admin)
	shippingHandler.RegisterAdminRoutes(admin)

	return app, &testEnv{
		authService: authService,
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

// newToken seeds a user directly and mints a bearer token for it.
func newToken(t *testing.T, env *testEnv, username, role string) string {
	t.Helper()
	user := &models.User{
		ID:       uuid.New().String(),
		Username: username,
		Email:    username + "@example.com",
		Password: "not-a-real-hash",
		Role:     role,
	}
	require.NoError(t, env.userRepo.Create(user))
	token, err := env.authService.GenerateToken(user)
	require.NoError(t, err)
	return token
}

func seedProduct(t *testing.T, env *testEnv, name string, rate float64, stock int) string {
	t.Helper()
	product := &models.Product{Name: name, Brand: "Acme", Rate: rate, Quantity: stock}
	require.NoError(t, env.productRepo.Create(product))
	return product.ID
}

// doJSON fires a request with an optional bearer token and JSON body, and
// decodes the JSON response into a generic map.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestAuthRegisterAndLogin(t *testing.T) {
	app, env := setupApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": "shopper",
		"email":    "shopper@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, true, body["success"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, models.RoleUser, user["role"])
	assert.NotEmpty(t, user["id"])

	// Same username again conflicts.
	status, body = doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": "shopper",
		"email":    "other@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusConflict, status)
	assert.Equal(t, false, body["success"])

	status, body = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "shopper",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, status)
	token := body["token"].(string)
	require.NotEmpty(t, token)

	claims, err := env.authService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "shopper", claims["username"])
	assert.Equal(t, models.RoleUser, claims["role"])

	status, _ = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "shopper",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAuthGate(t *testing.T) {
	app, env := setupApp(t)
	userToken := newToken(t, env, "plainuser", models.RoleUser)

	// Catalog reads are public.
	status, _ := doJSON(t, app, http.MethodGet, "/api/v1/products", "", nil)
	assert.Equal(t, http.StatusOK, status)

	// Missing and malformed headers are 401, a bad token is 403.
	status, _ = doJSON(t, app, http.MethodGet, "/api/v1/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("Authorization", "NotBearer "+userToken)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	status, _ = doJSON(t, app, http.MethodGet, "/api/v1/cart", "garbage.token.here", nil)
	assert.Equal(t, http.StatusForbidden, status)

	// Admin routes reject regular users.
	status, _ = doJSON(t, app, http.MethodPost, "/api/v1/products", userToken, map[string]interface{}{
		"name": "Widget",
		"rate": 9.99,
	})
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = doJSON(t, app, http.MethodGet, "/api/v1/shipping/orders/confirmed", userToken, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestCatalogAdminCRUD(t *testing.T) {
	app, env := setupApp(t)
	adminToken := newToken(t, env, "storeadmin", models.RoleAdmin)

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/products", adminToken, map[string]interface{}{
		"name":        "Trail Runner",
		"brand":       "Acme",
		"description": "Lightweight trail shoe",
		"quantity":    12,
		"rate":        129.99,
	})
	require.Equal(t, http.StatusCreated, status)
	created := body["product"].(map[string]interface{})
	productID := created["id"].(string)
	require.NotEmpty(t, productID)

	status, body = doJSON(t, app, http.MethodGet, "/api/v1/products/"+productID, "", nil)
	require.Equal(t, http.StatusOK, status)
	fetched := body["product"].(map[string]interface{})
	assert.Equal(t, "Trail Runner", fetched["name"])
	assert.Equal(t, 129.99, fetched["rate"])

	status, body = doJSON(t, app, http.MethodPut, "/api/v1/products/"+productID, adminToken, map[string]interface{}{
		"name":     "Trail Runner v2",
		"brand":    "Acme",
		"quantity": 8,
		"rate":     139.99,
	})
	require.Equal(t, http.StatusOK, status)
	updated := body["product"].(map[string]interface{})
	assert.Equal(t, "Trail Runner v2", updated["name"])

	status, _ = doJSON(t, app, http.MethodDelete, "/api/v1/products/"+productID, adminToken, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, app, http.MethodGet, "/api/v1/products/"+productID, "", nil)
	assert.Equal(t, http.StatusNotFound, status)

	// Writes against an unknown id are 404.
	status, _ = doJSON(t, app, http.MethodPut, "/api/v1/products/"+uuid.New().String(), adminToken, map[string]interface{}{
		"name": "Ghost",
		"rate": 1.00,
	})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCartAndCheckoutFlow(t *testing.T) {
	app, env := setupApp(t)
	token := newToken(t, env, "buyer", models.RoleUser)

	productX := seedProduct(t, env, "Product X", 100.00, 10)
	productY := seedProduct(t, env, "Product Y", 50.00, 5)

	status, _ := doJSON(t, app, http.MethodPost, "/api/v1/cart", token, map[string]interface{}{
		"productId": productX,
		"quantity":  2,
	})
	require.Equal(t, http.StatusCreated, status)
	status, _ = doJSON(t, app, http.MethodPost, "/api/v1/cart", token, map[string]interface{}{
		"productId": productY,
		"quantity":  1,
	})
	require.Equal(t, http.StatusCreated, status)

	// Unknown products never enter the cart.
	status, _ = doJSON(t, app, http.MethodPost, "/api/v1/cart", token, map[string]interface{}{
		"productId": uuid.New().String(),
		"quantity":  1,
	})
	assert.Equal(t, http.StatusNotFound, status)

	status, body := doJSON(t, app, http.MethodGet, "/api/v1/cart", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 250.00, body["totalAmount"])
	assert.Equal(t, float64(3), body["totalItems"])
	assert.Equal(t, float64(2), body["itemCount"])

	status, body = doJSON(t, app, http.MethodPost, "/api/v1/orders/create", token, nil)
	require.Equal(t, http.StatusCreated, status)
	order := body["order"].(map[string]interface{})
	orderID := order["id"].(string)
	assert.Equal(t, models.OrderStatusPending, order["status"])
	assert.Equal(t, 250.00, order["totalAmount"])
	assert.Len(t, order["items"], 2)
	assert.NotEmpty(t, order["orderNumber"])

	// Checkout empties the cart, so a second checkout has nothing to buy.
	status, body = doJSON(t, app, http.MethodGet, "/api/v1/cart", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), body["itemCount"])
	assert.Equal(t, float64(0), body["totalAmount"])

	status, _ = doJSON(t, app, http.MethodPost, "/api/v1/orders/create", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = doJSON(t, app, http.MethodGet, "/api/v1/orders", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["orders"], 1)

	status, body = doJSON(t, app, http.MethodGet, "/api/v1/orders/"+orderID, token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, orderID, body["order"].(map[string]interface{})["id"])

	// Another user cannot read it.
	otherToken := newToken(t, env, "stranger", models.RoleUser)
	status, _ = doJSON(t, app, http.MethodGet, "/api/v1/orders/"+orderID, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCartQuantityUpdates(t *testing.T) {
	app, env := setupApp(t)
	token := newToken(t, env, "tinkerer", models.RoleUser)
	productID := seedProduct(t, env, "Mug", 12.50, 100)

	status, _ := doJSON(t, app, http.MethodPost, "/api/v1/cart", token, map[string]interface{}{
		"productId": productID,
		"quantity":  1,
	})
	require.Equal(t, http.StatusCreated, status)

	// Adding the same product again merges into one line.
	status, _ = doJSON(t, app, http.MethodPost, "/api/v1/cart", token, map[string]interface{}{
		"productId": productID,
		"quantity":  2,
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := doJSON(t, app, http.MethodGet, "/api/v1/cart", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["itemCount"])
	assert.Equal(t, float64(3), body["totalItems"])
	assert.Equal(t, 37.50, body["totalAmount"])

	status, _ = doJSON(t, app, http.MethodPut, "/api/v1/cart/"+productID, token, map[string]interface{}{
		"quantity": 5,
	})
	require.Equal(t, http.StatusOK, status)

	status, body = doJSON(t, app, http.MethodGet, "/api/v1/cart", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(5), body["totalItems"])

	// Setting quantity to zero removes the line.
	status, _ = doJSON(t, app, http.MethodPut, "/api/v1/cart/"+productID, token, map[string]interface{}{
		"quantity": 0,
	})
	require.Equal(t, http.StatusOK, status)

	status, body = doJSON(t, app, http.MethodGet, "/api/v1/cart", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), body["itemCount"])

	status, _ = doJSON(t, app, http.MethodPost, "/api/v1/cart", token, map[string]interface{}{
		"productId": productID,
		"quantity":  1,
	})
	require.Equal(t, http.StatusCreated, status)
	status, _ = doJSON(t, app, http.MethodDelete, "/api/v1/cart/clear", token, nil)
	require.Equal(t, http.StatusOK, status)
	status, body = doJSON(t, app, http.MethodGet, "/api/v1/cart", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), body["itemCount"])
}

// checkoutOrder walks a fresh cart through checkout and returns the order.
func checkoutOrder(t *testing.T, app *fiber.App, env *testEnv, token string) map[string]interface{} {
	t.Helper()
	productID := seedProduct(t, env, "Checkout Item", 250.00, 10)
	status, _ := doJSON(t, app, http.MethodPost, "/api/v1/cart", token, map[string]interface{}{
		"productId": productID,
		"quantity":  1,
	})
	require.Equal(t, http.StatusCreated, status)
	status, body := doJSON(t, app, http.MethodPost, "/api/v1/orders/create", token, nil)
	require.Equal(t, http.StatusCreated, status)
	return body["order"].(map[string]interface{})
}

func TestPaymentFlow(t *testing.T) {
	app, env := setupApp(t)
	token := newToken(t, env, "payer", models.RoleUser)
	order := checkoutOrder(t, app, env, token)
	orderID := order["id"].(string)

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/orders/razorpay/create", token, map[string]string{
		"orderId": orderID,
	})
	require.Equal(t, http.StatusOK, status)
	checkout := body["checkout"].(map[string]interface{})
	gatewayOrderID := checkout["gatewayOrderId"].(string)
	assert.Equal(t, "rzp_test_key", checkout["keyId"])
	assert.Equal(t, float64(25000), checkout["amount"]) // 250.00 in paise
	assert.Equal(t, order["orderNumber"], checkout["orderNumber"])

	// The gateway order is created exactly once per order.
	status, _ = doJSON(t, app, http.MethodPost, "/api/v1/orders/razorpay/create", token, map[string]string{
		"orderId": orderID,
	})
	assert.Equal(t, http.StatusConflict, status)

	// A tampered signature is rejected and nothing changes.
	status, _ = doJSON(t, app, http.MethodPost, "/api/v1/orders/razorpay/verify", token, map[string]string{
		"razorpay_order_id":   gatewayOrderID,
		"razorpay_payment_id": "pay_123",
		"razorpay_signature":  "sig-tampered",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = doJSON(t, app, http.MethodGet, "/api/v1/orders/"+orderID, token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.OrderStatusPending, body["order"].(map[string]interface{})["status"])

	// A valid signature confirms the order and records the payment.
	signature := "sig-" + gatewayOrderID + "-pay_123"
	status, body = doJSON(t, app, http.MethodPost, "/api/v1/orders/razorpay/verify", token, map[string]string{
		"razorpay_order_id":   gatewayOrderID,
		"razorpay_payment_id": "pay_123",
		"razorpay_signature":  signature,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.OrderStatusConfirmed, body["order"].(map[string]interface{})["status"])
	payment := body["payment"].(map[string]interface{})
	paymentID := payment["id"].(string)
	assert.Equal(t, models.PaymentStatusSuccess, payment["status"])
	assert.Equal(t, 250.00, payment["amount"])

	// A replayed confirmation is a no-op success, not a second payment.
	status, body = doJSON(t, app, http.MethodPost, "/api/v1/orders/razorpay/verify", token, map[string]string{
		"razorpay_order_id":   gatewayOrderID,
		"razorpay_payment_id": "pay_123",
		"razorpay_signature":  signature,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, paymentID, body["payment"].(map[string]interface{})["id"])

	status, body = doJSON(t, app, http.MethodGet, "/api/v1/orders/"+orderID, token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.OrderStatusConfirmed, body["order"].(map[string]interface{})["status"])
}

// confirmOrder checks out and pays for an order, returning its id.
func confirmOrder(t *testing.T, app *fiber.App, env *testEnv, token string) string {
	t.Helper()
	order := checkoutOrder(t, app, env, token)
	orderID := order["id"].(string)

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/orders/razorpay/create", token, map[string]string{
		"orderId": orderID,
	})
	require.Equal(t, http.StatusOK, status)
	gatewayOrderID := body["checkout"].(map[string]interface{})["gatewayOrderId"].(string)

	status, _ = doJSON(t, app, http.MethodPost, "/api/v1/orders/razorpay/verify", token, map[string]string{
		"razorpay_order_id":   gatewayOrderID,
		"razorpay_payment_id": "pay_ok",
		"razorpay_signature":  "sig-" + gatewayOrderID + "-pay_ok",
	})
	require.Equal(t, http.StatusOK, status)
	return orderID
}

func TestShipmentFlow(t *testing.T) {
	app, env := setupApp(t)
	userToken := newToken(t, env, "recipient", models.RoleUser)
	adminToken := newToken(t, env, "fulfillment", models.RoleAdmin)
	orderID := confirmOrder(t, app, env, userToken)

	// The confirmed order shows up on the fulfillment queue.
	status, body := doJSON(t, app, http.MethodGet, "/api/v1/shipping/orders/confirmed", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	orders := body["orders"].([]interface{})
	require.Len(t, orders, 1)
	assert.Equal(t, orderID, orders[0].(map[string]interface{})["id"])

	status, body = doJSON(t, app, http.MethodPut, "/api/v1/shipping/orders/"+orderID+"/stage", adminToken, map[string]interface{}{
		"stage": models.OrderStatusPacked,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.OrderStatusPacked, body["order"].(map[string]interface{})["status"])

	status, body = doJSON(t, app, http.MethodPut, "/api/v1/shipping/orders/"+orderID+"/stage", adminToken, map[string]interface{}{
		"stage":          models.OrderStatusShipped,
		"trackingNumber": "TRK-42",
		"carrierName":    "BlueDart",
	})
	require.Equal(t, http.StatusOK, status)
	shipped := body["order"].(map[string]interface{})
	assert.Equal(t, models.OrderStatusShipped, shipped["status"])
	assert.Equal(t, "TRK-42", shipped["trackingNumber"])

	// Moving backward is rejected and the status stays put.
	status, _ = doJSON(t, app, http.MethodPut, "/api/v1/shipping/orders/"+orderID+"/stage", adminToken, map[string]interface{}{
		"stage": models.OrderStatusPacked,
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = doJSON(t, app, http.MethodGet, "/api/v1/orders/"+orderID, userToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.OrderStatusShipped, body["order"].(map[string]interface{})["status"])

	// Unknown stages are rejected too.
	status, _ = doJSON(t, app, http.MethodPut, "/api/v1/shipping/orders/"+orderID+"/stage", adminToken, map[string]interface{}{
		"stage": "RETURNED",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	// The owner sees the tracker with completed stages and carrier details.
	status, body = doJSON(t, app, http.MethodGet, "/api/v1/shipping/tracking/"+orderID, userToken, nil)
	require.Equal(t, http.StatusOK, status)
	tracking := body["tracking"].(map[string]interface{})
	assert.Equal(t, models.OrderStatusShipped, tracking["status"])
	assert.Equal(t, "TRK-42", tracking["trackingNumber"])
	stages := tracking["stages"].([]interface{})
	require.Len(t, stages, len(models.ShipmentStages))
	for i, raw := range stages {
		stage := raw.(map[string]interface{})
		assert.Equal(t, models.ShipmentStages[i], stage["stage"])
		assert.Equal(t, i <= models.StageIndex(models.OrderStatusShipped), stage["completed"])
	}
}

func TestCancelOrder(t *testing.T) {
	app, env := setupApp(t)
	userToken := newToken(t, env, "canceller", models.RoleUser)
	adminToken := newToken(t, env, "ops", models.RoleAdmin)
	orderID := confirmOrder(t, app, env, userToken)

	status, body := doJSON(t, app, http.MethodPut, "/api/v1/shipping/orders/"+orderID+"/cancel", adminToken, map[string]string{
		"notes": "customer request",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.OrderStatusCancelled, body["order"].(map[string]interface{})["status"])

	// A cancelled order is terminal for both cancel and stage updates.
	status, _ = doJSON(t, app, http.MethodPut, "/api/v1/shipping/orders/"+orderID+"/cancel", adminToken, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = doJSON(t, app, http.MethodPut, "/api/v1/shipping/orders/"+orderID+"/stage", adminToken, map[string]interface{}{
		"stage": models.OrderStatusPacked,
	})
	assert.Equal(t, http.StatusBadRequest, status)
}
