package services

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"storefront/models"
)

// ProductFetcher is the slice of the gateway the join needs.
type ProductFetcher interface {
	GetProduct(ctx context.Context, id string) (*models.Product, error)
}

// Catalog joins cart entries with their products and prices the cart. Every
// page that shows the cart goes through this one implementation.
type Catalog struct {
	fetcher    ProductFetcher
	generation atomic.Uint64

	mu     sync.Mutex
	latest models.CartView
}

func NewCatalog(fetcher ProductFetcher) *Catalog {
	return &Catalog{fetcher: fetcher}
}

// Resolve fetches all products concurrently and builds the priced view.
// Entries whose fetch failed are listed as unresolved and excluded from the
// total, so the total understates the true cost until every product loads.
//
// Each call gets a generation number; a batch that finishes after a newer one
// started never overwrites the cached latest view.
func (c *Catalog) Resolve(ctx context.Context, entries []models.CartEntry) models.CartView {
	gen := c.generation.Add(1)

	products := make([]*models.Product, len(entries))
	var wg sync.WaitGroup
	for i, entry := range entries {
		wg.Add(1)
		go func(i int, productID string) {
			defer wg.Done()
			product, err := c.fetcher.GetProduct(ctx, productID)
			if err != nil {
				log.Printf("catalog: product %s lookup failed: %v", productID, err)
				return
			}
			products[i] = product
		}(i, entry.ProductID)
	}
	wg.Wait()

	view := models.CartView{
		Items: make([]models.CartLine, 0, len(entries)),
		Total: decimal.Zero,
	}
	for i, entry := range entries {
		line := models.CartLine{
			ProductID: entry.ProductID,
			Quantity:  entry.Quantity,
			Subtotal:  decimal.Zero,
		}
		if p := products[i]; p != nil {
			line.Product = p
			line.Subtotal = p.Price.Mul(decimal.NewFromInt(int64(entry.Quantity)))
			view.Total = view.Total.Add(line.Subtotal)
		} else {
			view.Unresolved = append(view.Unresolved, entry.ProductID)
		}
		view.Items = append(view.Items, line)
	}

	c.mu.Lock()
	if gen == c.generation.Load() {
		c.latest = view
	}
	c.mu.Unlock()

	return view
}

// Latest returns the most recently completed, non-superseded view.
func (c *Catalog) Latest() models.CartView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.latest
}
