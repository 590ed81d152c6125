package retailer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

const krogerBaseURL = "https://api.kroger.com"

// KrogerClient wraps the Kroger Products and Cart APIs. Catalog search
// uses a client-credentials token that is cached until shortly before
// expiry; cart pushes use the caller's own OAuth token.
type KrogerClient struct {
	http         *resty.Client
	clientID     string
	clientSecret string

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewKrogerClient() *KrogerClient {
	return &KrogerClient{
		http: resty.New().
			SetBaseURL(krogerBaseURL).
			SetTimeout(15 * time.Second),
		clientID:     os.Getenv("KROGER_CLIENT_ID"),
		clientSecret: os.Getenv("KROGER_CLIENT_SECRET"),
	}
}

func (k *KrogerClient) Name() string { return "kroger" }

// token returns a valid client-credentials token, refreshing when the
// cached one is within a minute of expiry.
func (k *KrogerClient) token(ctx context.Context) (string, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.accessToken != "" && time.Now().Before(k.tokenExpiry.Add(-time.Minute)) {
		return k.accessToken, nil
	}

	if k.clientID == "" || k.clientSecret == "" {
		return "", errors.New("missing KROGER_CLIENT_ID or KROGER_CLIENT_SECRET")
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}

	resp, err := k.http.R().
		SetContext(ctx).
		SetBasicAuth(k.clientID, k.clientSecret).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetFormData(map[string]string{
			"grant_type": "client_credentials",
			"scope":      "product.compact",
		}).
		SetResult(&result).
		Post("/v1/connect/oauth2/token")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("kroger token error: %s", resp.String())
	}
	if result.AccessToken == "" {
		return "", errors.New("empty kroger token response")
	}

	k.accessToken = result.AccessToken
	k.tokenExpiry = time.Now().Add(time.Duration(result.ExpiresIn) * time.Second)
	return k.accessToken, nil
}

func (k *KrogerClient) SearchProducts(ctx context.Context, query string, limit int) ([]Product, error) {
	if query == "" {
		return nil, errors.New("empty search query")
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	token, err := k.token(ctx)
	if err != nil {
		return nil, err
	}

	var result struct {
		Data []struct {
			ProductID   string `json:"productId"`
			Description string `json:"description"`
			Brand       string `json:"brand"`
			Items       []struct {
				Price struct {
					Regular float64 `json:"regular"`
				} `json:"price"`
				Inventory struct {
					StockLevel string `json:"stockLevel"`
				} `json:"inventory"`
			} `json:"items"`
		} `json:"data"`
	}

	resp, err := k.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetQueryParams(map[string]string{
			"filter.term":  query,
			"filter.limit": strconv.Itoa(limit),
		}).
		SetResult(&result).
		Get("/v1/products")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("kroger search error: %s", resp.String())
	}

	products := make([]Product, 0, len(result.Data))
	for _, d := range result.Data {
		p := Product{
			ID:       d.ProductID,
			Name:     d.Description,
			Brand:    d.Brand,
			Retailer: k.Name(),
		}
		if len(d.Items) > 0 {
			p.Price = d.Items[0].Price.Regular
			p.Available = d.Items[0].Inventory.StockLevel != "TEMPORARILY_OUT_OF_STOCK"
		}
		products = append(products, p)
	}
	return products, nil
}

func (k *KrogerClient) AddToCart(ctx context.Context, userToken string, items []CartItem) error {
	if userToken == "" {
		return errors.New("missing kroger user token")
	}
	if len(items) == 0 {
		return errors.New("empty cart")
	}

	type cartLine struct {
		UPC      string `json:"upc"`
		Quantity int    `json:"quantity"`
	}

	lines := make([]cartLine, 0, len(items))
	for _, item := range items {
		q := item.Quantity
		if q < 1 {
			q = 1
		}
		lines = append(lines, cartLine{UPC: item.ProductID, Quantity: q})
	}

	resp, err := k.http.R().
		SetContext(ctx).
		SetAuthToken(userToken).
		SetBody(map[string]any{"items": lines}).
		Put("/v1/cart/add")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("kroger cart error: %s", resp.String())
	}
	return nil
}
