// pkg/comparator/client.go
package comparator

import "context"

// Client is the read-only catalog surface the comparator consumes. All
// operations are idempotent and side-effect-free on the catalog; callers
// must treat them as potentially slow and network-bound.
//
// Implementations report ErrCatalogUnavailable on transport or backend
// failure and ErrNotFound when a product id does not resolve.
type Client interface {
	ListCategories(ctx context.Context) ([]Category, error)
	ListBrands(ctx context.Context) ([]Brand, error)
	ListProducts(ctx context.Context, filter Filter) ([]ProductSummary, error)
	GetProductDetail(ctx context.Context, id string) (*Product, error)
}

// SelectDirect fetches a product's detail and places it into the given slot,
// bypassing the browse steps. This is the carousel strip's terminal action
// and the last step of a completed picker flow.
func SelectDirect(ctx context.Context, client Client, state *SelectionState, slot int, id string) (*Product, error) {
	product, err := client.GetProductDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := state.Select(slot, product); err != nil {
		return nil, err
	}
	return product, nil
}
