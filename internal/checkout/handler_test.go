package checkout

import (
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Lawford1337/mood/internal/cart"
	"github.com/Lawford1337/mood/internal/catalog"
	"github.com/Lawford1337/mood/internal/storage"
	"github.com/gofiber/fiber/v2"
)

func makeCheckoutApp(t *testing.T) (*fiber.App, *cart.Service) {
	t.Helper()
	st := storage.Open(filepath.Join(t.TempDir(), "data.json"))
	catalogService := catalog.NewService(catalog.NewStore(st))
	cartService := cart.NewService(cart.NewStore(st), catalogService)

	app := fiber.New()
	cart.NewHandler(cartService).RegisterPublicRoutes(app)
	NewHandler(NewService(cartService)).RegisterPublicRoutes(app)
	return app, cartService
}

func TestCheckoutEmptyCart(t *testing.T) {
	app, _ := makeCheckoutApp(t)

	res, _ := app.Test(httptest.NewRequest("POST", "/api/v1/checkout", nil))
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for empty cart, got %d", res.StatusCode)
	}
}

func TestCheckoutClearsCart(t *testing.T) {
	app, cartService := makeCheckoutApp(t)

	add := httptest.NewRequest("POST", "/api/v1/cart", strings.NewReader(`{"productID":1}`))
	add.Header.Set("Content-Type", "application/json")
	if _, err := app.Test(add); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	add2 := httptest.NewRequest("POST", "/api/v1/cart", strings.NewReader(`{"productID":1}`))
	add2.Header.Set("Content-Type", "application/json")
	if _, err := app.Test(add2); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	res, _ := app.Test(httptest.NewRequest("POST", "/api/v1/checkout", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var r Receipt
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		t.Fatalf("decode receipt: %v", err)
	}
	if r.OrderRef == "" {
		t.Fatalf("expected an order reference")
	}
	if r.Total != 900 || r.Count != 2 {
		t.Fatalf("unexpected receipt totals: %+v", r)
	}

	snap := cartService.Snapshot()
	if len(snap.Items) != 0 || snap.Total != 0 || snap.Count != 0 {
		t.Fatalf("checkout must clear the cart, got %+v", snap)
	}
}
