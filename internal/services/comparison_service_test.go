// internal/services/comparison_service_test.go
package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epoint/product-comparator/pkg/comparator"
)

// gatedClient serves a fixed product set and can hold one product's detail
// lookup open until the test releases it.
type gatedClient struct {
	mu       sync.Mutex
	products map[string]*comparator.Product

	slowID  string
	entered chan struct{}
	release chan struct{}
}

func (c *gatedClient) ListCategories(ctx context.Context) ([]comparator.Category, error) {
	return nil, nil
}

func (c *gatedClient) ListBrands(ctx context.Context) ([]comparator.Brand, error) {
	return nil, nil
}

func (c *gatedClient) ListProducts(ctx context.Context, filter comparator.Filter) ([]comparator.ProductSummary, error) {
	return nil, nil
}

func (c *gatedClient) GetProductDetail(ctx context.Context, id string) (*comparator.Product, error) {
	if id == c.slowID {
		c.entered <- struct{}{}
		<-c.release
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.products[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, fmt.Errorf("%w: id %s", comparator.ErrNotFound, id)
}

func newTestService(client comparator.Client) *ComparisonService {
	return NewComparisonService(client, comparator.NewConfig(3, "sharp"), time.Hour)
}

func TestSelectSlotRejectsPickAfterConcurrentRemoval(t *testing.T) {
	client := &gatedClient{
		products: map[string]*comparator.Product{
			"p1": {ID: "p1", Name: "First", Permalink: "https://shop.example/p/first"},
			"p2": {ID: "p2", Name: "Second", Permalink: "https://shop.example/p/second"},
		},
		slowID:  "p2",
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	service := newTestService(client)

	created := service.CreateSession()
	id := uuid.MustParse(created.ID)

	_, err := service.SelectSlot(context.Background(), id, 1, "p1")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := service.SelectSlot(context.Background(), id, 2, "p2")
		done <- err
	}()

	// Slot 1 is cleared while the slot-2 detail lookup is still in flight
	<-client.entered
	view, err := service.RemoveSlot(id, 1)
	require.NoError(t, err)
	assert.False(t, view.Active)
	close(client.release)

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrSlotNotOpen)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the slot-2 pick")
	}

	// The selection stayed contiguous: nothing landed in slot 2
	view, err = service.GetSession(id)
	require.NoError(t, err)
	assert.False(t, view.Active)
	assert.Equal(t, 1, view.FirstEmptySlot)
	assert.Nil(t, view.Table)
}

func TestSelectSlotFillsInOrder(t *testing.T) {
	client := &gatedClient{
		products: map[string]*comparator.Product{
			"p1": {ID: "p1", Name: "First"},
			"p2": {ID: "p2", Name: "Second"},
		},
	}
	service := newTestService(client)

	created := service.CreateSession()
	id := uuid.MustParse(created.ID)

	_, err := service.SelectSlot(context.Background(), id, 2, "p2")
	assert.ErrorIs(t, err, ErrSlotNotOpen)

	view, err := service.SelectSlot(context.Background(), id, 1, "p1")
	require.NoError(t, err)
	assert.True(t, view.Active)
	assert.Equal(t, 2, view.FirstEmptySlot)
}
