package retailer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
)

// fake Kroger API: token endpoint plus product search
func newKrogerTestServer(t *testing.T, tokenCalls *int) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/connect/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		*tokenCalls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "test-token", "expires_in": 1800}`))
	})
	mux.HandleFunc("/v1/products", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Query().Get("filter.term") != "milk" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": [
				{
					"productId": "0001",
					"description": "Whole Milk",
					"brand": "Kroger",
					"items": [{"price": {"regular": 3.49}, "inventory": {"stockLevel": "HIGH"}}]
				}
			]
		}`))
	})

	return httptest.NewServer(mux)
}

func newTestKrogerClient(serverURL string) *KrogerClient {
	return &KrogerClient{
		http:         resty.New().SetBaseURL(serverURL),
		clientID:     "id",
		clientSecret: "secret",
	}
}

func TestKrogerSearchProducts(t *testing.T) {
	tokenCalls := 0
	server := newKrogerTestServer(t, &tokenCalls)
	defer server.Close()

	client := newTestKrogerClient(server.URL)

	products, err := client.SearchProducts(context.Background(), "milk", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}

	p := products[0]
	if p.ID != "0001" || p.Name != "Whole Milk" || p.Price != 3.49 || !p.Available {
		t.Fatalf("unexpected product: %+v", p)
	}
	if p.Retailer != "kroger" {
		t.Fatalf("expected retailer kroger, got %q", p.Retailer)
	}
}

// The client-credentials token is fetched once and reused until expiry.
func TestKrogerTokenIsCached(t *testing.T) {
	tokenCalls := 0
	server := newKrogerTestServer(t, &tokenCalls)
	defer server.Close()

	client := newTestKrogerClient(server.URL)

	for i := 0; i < 3; i++ {
		if _, err := client.SearchProducts(context.Background(), "milk", 5); err != nil {
			t.Fatalf("search %d failed: %v", i, err)
		}
	}

	if tokenCalls != 1 {
		t.Fatalf("expected 1 token fetch, got %d", tokenCalls)
	}
}

func TestKrogerTokenRefreshesAfterExpiry(t *testing.T) {
	tokenCalls := 0
	server := newKrogerTestServer(t, &tokenCalls)
	defer server.Close()

	client := newTestKrogerClient(server.URL)

	if _, err := client.SearchProducts(context.Background(), "milk", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// force expiry
	client.mu.Lock()
	client.tokenExpiry = time.Now().Add(-time.Hour)
	client.mu.Unlock()

	if _, err := client.SearchProducts(context.Background(), "milk", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tokenCalls != 2 {
		t.Fatalf("expected 2 token fetches, got %d", tokenCalls)
	}
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	client := newTestKrogerClient("http://localhost:0")

	if _, err := client.SearchProducts(context.Background(), "", 5); err == nil {
		t.Fatalf("expected error for empty query")
	}
}

func TestRegistryLookup(t *testing.T) {
	registry := NewRegistry(NewKrogerClient(), NewWalmartClient(), NewInstacartClient())

	for _, name := range []string{"kroger", "Walmart", "INSTACART"} {
		if _, err := registry.Get(name); err != nil {
			t.Errorf("expected %q to resolve: %v", name, err)
		}
	}

	if _, err := registry.Get("wholefoods"); err == nil {
		t.Errorf("expected unknown retailer error")
	}
}

func TestWalmartCartNotSupported(t *testing.T) {
	client := NewWalmartClient()

	err := client.AddToCart(context.Background(), "token", []CartItem{{ProductID: "1", Quantity: 1}})
	if err != ErrNotSupported {
		t.Fatalf("expected ErrNotSupported, got %v", err)
	}
}
