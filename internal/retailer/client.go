package retailer

import (
	"context"
	"errors"
	"strings"
)

// ErrNotSupported marks an operation a given retailer has no API for.
var ErrNotSupported = errors.New("operation not supported by retailer")

// Client is one grocery-retailer integration: catalog search and
// cart push. Implementations are thin wrappers over each retailer's
// REST API; all of them degrade with plain errors, never panics.
type Client interface {
	Name() string
	SearchProducts(ctx context.Context, query string, limit int) ([]Product, error)
	AddToCart(ctx context.Context, userToken string, items []CartItem) error
}

// ShoppingListLinker is implemented by retailers that turn a plain
// list of item names into a hosted shopping-list page instead of
// offering cart writes (Instacart).
type ShoppingListLinker interface {
	CreateShoppingListLink(ctx context.Context, title string, itemNames []string) (string, error)
}

// Registry resolves a retailer by name.
type Registry struct {
	clients map[string]Client
}

func NewRegistry(clients ...Client) *Registry {
	r := &Registry{clients: make(map[string]Client)}
	for _, c := range clients {
		r.clients[strings.ToLower(c.Name())] = c
	}
	return r
}

func (r *Registry) Get(name string) (Client, error) {
	c, ok := r.clients[strings.ToLower(name)]
	if !ok {
		return nil, errors.New("unknown retailer: " + name)
	}
	return c, nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.clients))
	for name := range r.clients {
		names = append(names, name)
	}
	return names
}
