package retailer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

const instacartBaseURL = "https://connect.instacart.com"

// InstacartClient wraps the Instacart Developer Platform. Instacart
// has no catalog search for partners; it builds a shopping-list page
// from item names instead, so SearchProducts is unsupported and cart
// pushes happen through CreateShoppingListLink.
type InstacartClient struct {
	http   *resty.Client
	apiKey string
}

func NewInstacartClient() *InstacartClient {
	return &InstacartClient{
		http: resty.New().
			SetBaseURL(instacartBaseURL).
			SetTimeout(15 * time.Second),
		apiKey: os.Getenv("INSTACART_API_KEY"),
	}
}

func (i *InstacartClient) Name() string { return "instacart" }

func (i *InstacartClient) SearchProducts(ctx context.Context, query string, limit int) ([]Product, error) {
	return nil, ErrNotSupported
}

func (i *InstacartClient) AddToCart(ctx context.Context, userToken string, items []CartItem) error {
	return ErrNotSupported
}

// CreateShoppingListLink builds an Instacart shopping-list page from
// plain item names and returns its URL.
func (i *InstacartClient) CreateShoppingListLink(ctx context.Context, title string, itemNames []string) (string, error) {
	if i.apiKey == "" {
		return "", errors.New("missing INSTACART_API_KEY")
	}
	if len(itemNames) == 0 {
		return "", errors.New("empty shopping list")
	}

	type lineItem struct {
		Name string `json:"name"`
	}

	lines := make([]lineItem, 0, len(itemNames))
	for _, name := range itemNames {
		lines = append(lines, lineItem{Name: name})
	}

	var result struct {
		ProductsLinkURL string `json:"products_link_url"`
	}

	resp, err := i.http.R().
		SetContext(ctx).
		SetAuthToken(i.apiKey).
		SetBody(map[string]any{
			"title":      title,
			"line_items": lines,
		}).
		SetResult(&result).
		Post("/idp/v1/products/products_link")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("instacart link error: %s", resp.String())
	}
	if result.ProductsLinkURL == "" {
		return "", errors.New("empty instacart response")
	}

	return result.ProductsLinkURL, nil
}
