package retailer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const walmartBaseURL = "https://developer.api.walmart.com"

// WalmartClient wraps the Walmart affiliate search API. Walmart has no
// public cart-write API, so AddToCart reports ErrNotSupported.
type WalmartClient struct {
	http       *resty.Client
	consumerID string
}

func NewWalmartClient() *WalmartClient {
	return &WalmartClient{
		http: resty.New().
			SetBaseURL(walmartBaseURL).
			SetTimeout(15 * time.Second),
		consumerID: os.Getenv("WALMART_CONSUMER_ID"),
	}
}

func (w *WalmartClient) Name() string { return "walmart" }

func (w *WalmartClient) SearchProducts(ctx context.Context, query string, limit int) ([]Product, error) {
	if query == "" {
		return nil, errors.New("empty search query")
	}
	if w.consumerID == "" {
		return nil, errors.New("missing WALMART_CONSUMER_ID")
	}
	if limit <= 0 || limit > 25 {
		limit = 10
	}

	var result struct {
		Items []struct {
			ItemID    int     `json:"itemId"`
			Name      string  `json:"name"`
			BrandName string  `json:"brandName"`
			SalePrice float64 `json:"salePrice"`
			Stock     string  `json:"stock"`
		} `json:"items"`
	}

	resp, err := w.http.R().
		SetContext(ctx).
		SetHeader("WM_CONSUMER.ID", w.consumerID).
		SetHeader("WM_QOS.CORRELATION_ID", uuid.New().String()).
		SetQueryParams(map[string]string{
			"query":    query,
			"numItems": strconv.Itoa(limit),
		}).
		SetResult(&result).
		Get("/api-proxy/service/affil/product/v2/search")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("walmart search error: %s", resp.String())
	}

	products := make([]Product, 0, len(result.Items))
	for _, item := range result.Items {
		products = append(products, Product{
			ID:        strconv.Itoa(item.ItemID),
			Name:      item.Name,
			Brand:     item.BrandName,
			Price:     item.SalePrice,
			Available: item.Stock == "Available",
			Retailer:  w.Name(),
		})
	}
	return products, nil
}

func (w *WalmartClient) AddToCart(ctx context.Context, userToken string, items []CartItem) error {
	return ErrNotSupported
}
