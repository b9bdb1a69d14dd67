package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/models"
)

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

type fakeFetcher struct {
	products map[string]models.Product
	gates    map[string]chan struct{}
	started  map[string]chan struct{}
}

func (f *fakeFetcher) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	if f.started != nil {
		if started, ok := f.started[id]; ok {
			close(started)
		}
	}
	if f.gates != nil {
		if gate, ok := f.gates[id]; ok {
			<-gate
		}
	}
	p, ok := f.products[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &p, nil
}

func TestResolvePricesCart(t *testing.T) {
	catalog := NewCatalog(&fakeFetcher{products: map[string]models.Product{
		"p1": {ID: "p1", Name: "Mug", Price: decimalFromString(t, "10.00")},
		"p2": {ID: "p2", Name: "Beans", Price: decimalFromString(t, "4.50")},
	}})

	view := catalog.Resolve(context.Background(), []models.CartEntry{
		{ProductID: "p1", Quantity: 5},
		{ProductID: "p2", Quantity: 1},
	})

	require.Len(t, view.Items, 2)
	assert.True(t, view.Items[0].Subtotal.Equal(decimalFromString(t, "50.00")))
	assert.True(t, view.Items[1].Subtotal.Equal(decimalFromString(t, "4.50")))
	assert.True(t, view.Total.Equal(decimalFromString(t, "54.50")))
	assert.Empty(t, view.Unresolved)
}

func TestResolveSkipsFailedLookups(t *testing.T) {
	catalog := NewCatalog(&fakeFetcher{products: map[string]models.Product{
		"p1": {ID: "p1", Price: decimalFromString(t, "10.00")},
	}})

	view := catalog.Resolve(context.Background(), []models.CartEntry{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "gone", Quantity: 3},
	})

	require.Len(t, view.Items, 2)
	assert.Nil(t, view.Items[1].Product)
	assert.True(t, view.Total.Equal(decimalFromString(t, "20.00")))
	assert.Equal(t, []string{"gone"}, view.Unresolved)
}

func TestResolveEmptyCart(t *testing.T) {
	catalog := NewCatalog(&fakeFetcher{})

	view := catalog.Resolve(context.Background(), nil)

	assert.Empty(t, view.Items)
	assert.True(t, view.Total.IsZero())
}

func TestSupersededBatchDoesNotOverwriteLatest(t *testing.T) {
	gate := make(chan struct{})
	started := make(chan struct{})
	fetcher := &fakeFetcher{
		products: map[string]models.Product{
			"old": {ID: "old", Price: decimalFromString(t, "1.00")},
			"new": {ID: "new", Price: decimalFromString(t, "2.00")},
		},
		gates:   map[string]chan struct{}{"old": gate},
		started: map[string]chan struct{}{"old": started},
	}
	catalog := NewCatalog(fetcher)

	done := make(chan models.CartView)
	go func() {
		done <- catalog.Resolve(context.Background(), []models.CartEntry{{ProductID: "old", Quantity: 1}})
	}()
	<-started

	// The second batch starts while the first is still blocked on its fetch.
	newer := catalog.Resolve(context.Background(), []models.CartEntry{{ProductID: "new", Quantity: 1}})
	close(gate)
	stale := <-done

	// The stale batch still returns its own view to its caller.
	require.Len(t, stale.Items, 1)
	assert.Equal(t, "old", stale.Items[0].ProductID)

	latest := catalog.Latest()
	require.Len(t, latest.Items, 1)
	assert.Equal(t, "new", latest.Items[0].ProductID)
	assert.True(t, latest.Total.Equal(newer.Total))
}
