// pkg/comparator/picker_test.go
package comparator

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	mu         sync.Mutex
	categories []Category
	brands     []Brand
	products   map[string]*Product
	listings   []ProductSummary
	listFn     func(Filter) ([]ProductSummary, error)
	filters    []Filter
}

func (f *fakeCatalog) ListCategories(ctx context.Context) ([]Category, error) {
	return f.categories, nil
}

func (f *fakeCatalog) ListBrands(ctx context.Context) ([]Brand, error) {
	return f.brands, nil
}

func (f *fakeCatalog) ListProducts(ctx context.Context, filter Filter) ([]ProductSummary, error) {
	f.mu.Lock()
	f.filters = append(f.filters, filter)
	listFn := f.listFn
	f.mu.Unlock()

	if listFn != nil {
		return listFn(filter)
	}
	return f.listings, nil
}

func (f *fakeCatalog) GetProductDetail(ctx context.Context, id string) (*Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.products[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, fmt.Errorf("%w: id %s", ErrNotFound, id)
}

func (f *fakeCatalog) recordedFilters() []Filter {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Filter, len(f.filters))
	copy(out, f.filters)
	return out
}

type flowError struct {
	op  string
	err error
}

type recorder struct {
	categories chan []Category
	brands     chan []Brand
	products   chan []ProductSummary
	selected   chan *Product
	errors     chan flowError
}

func newRecorder() *recorder {
	return &recorder{
		categories: make(chan []Category, 16),
		brands:     make(chan []Brand, 16),
		products:   make(chan []ProductSummary, 16),
		selected:   make(chan *Product, 16),
		errors:     make(chan flowError, 16),
	}
}

func (r *recorder) CategoriesLoaded(categories []Category)     { r.categories <- categories }
func (r *recorder) BrandsLoaded(brands []Brand)                { r.brands <- brands }
func (r *recorder) ProductsLoaded(products []ProductSummary)   { r.products <- products }
func (r *recorder) ProductSelected(slot int, product *Product) { r.selected <- product }
func (r *recorder) FlowError(op string, err error)             { r.errors <- flowError{op, err} }

func waitProducts(t *testing.T, r *recorder) []ProductSummary {
	t.Helper()
	select {
	case products := <-r.products:
		return products
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for product listing")
		return nil
	}
}

func assertNoProducts(t *testing.T, r *recorder) {
	t.Helper()
	select {
	case products := <-r.products:
		t.Fatalf("unexpected product listing applied: %v", products)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestAnchorBrandOverridesUserFacet(t *testing.T) {
	catalog := &fakeCatalog{listings: []ProductSummary{{ID: "1", Name: "Sharp TV"}}}
	state := NewSelectionState(NewConfig(3, "sharp"))
	events := newRecorder()

	flow, err := OpenPicker(catalog, state, 1, events, FlowOptions{Mode: ModeFlat})
	require.NoError(t, err)
	defer flow.Close()
	waitProducts(t, events)

	require.NoError(t, flow.SetBrand("acme"))
	waitProducts(t, events)

	for _, filter := range catalog.recordedFilters() {
		assert.Equal(t, "sharp", filter.Brand, "anchored slot must always query the anchor brand")
	}
	assert.Equal(t, "acme", flow.Filter().Brand, "the user facet itself is still recorded")
}

func TestUnanchoredSlotUsesUserBrand(t *testing.T) {
	catalog := &fakeCatalog{}
	state := NewSelectionState(NewConfig(3, "sharp"))
	events := newRecorder()

	flow, err := OpenPicker(catalog, state, 2, events, FlowOptions{Mode: ModeFlat})
	require.NoError(t, err)
	defer flow.Close()
	waitProducts(t, events)

	require.NoError(t, flow.SetBrand("acme"))
	waitProducts(t, events)

	filters := catalog.recordedFilters()
	assert.Equal(t, "acme", filters[len(filters)-1].Brand)
}

func TestSupersededListingDiscarded(t *testing.T) {
	release := make(chan struct{})
	catalog := &fakeCatalog{}
	catalog.listFn = func(filter Filter) ([]ProductSummary, error) {
		if filter.Search == "f1" {
			<-release
			return []ProductSummary{{ID: "f1"}}, nil
		}
		return []ProductSummary{{ID: filter.Search}}, nil
	}

	state := NewSelectionState(NewConfig(3, ""))
	events := newRecorder()
	flow, err := OpenPicker(catalog, state, 2, events, FlowOptions{Mode: ModeFlat})
	require.NoError(t, err)
	defer flow.Close()
	waitProducts(t, events)

	require.NoError(t, flow.SetSearch("f1"))
	require.NoError(t, flow.SetSearch("f2"))

	applied := waitProducts(t, events)
	assert.Equal(t, []ProductSummary{{ID: "f2"}}, applied)

	// The earlier response arrives late and must be dropped.
	close(release)
	assertNoProducts(t, events)
}

func TestCloseInvalidatesInFlightRequests(t *testing.T) {
	release := make(chan struct{})
	catalog := &fakeCatalog{}
	catalog.listFn = func(Filter) ([]ProductSummary, error) {
		<-release
		return []ProductSummary{{ID: "late"}}, nil
	}

	state := NewSelectionState(NewConfig(3, ""))
	events := newRecorder()
	flow, err := OpenPicker(catalog, state, 1, events, FlowOptions{Mode: ModeFlat})
	require.NoError(t, err)

	flow.Close()
	close(release)

	assertNoProducts(t, events)
	assert.Equal(t, StateClosed, flow.State())
	assert.True(t, flow.Filter().IsZero(), "transient facets reset on close")
}

func TestSelectFailureKeepsFlowOpen(t *testing.T) {
	catalog := &fakeCatalog{products: map[string]*Product{}}
	state := NewSelectionState(NewConfig(3, "sharp"))
	events := newRecorder()

	flow, err := OpenPicker(catalog, state, 1, events, FlowOptions{Mode: ModeFlat})
	require.NoError(t, err)
	defer flow.Close()
	waitProducts(t, events)

	require.NoError(t, flow.SelectProduct("vanished"))

	select {
	case fe := <-events.errors:
		assert.Equal(t, "select", fe.op)
		assert.ErrorIs(t, fe.err, ErrNotFound)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for flow error")
	}

	assert.Equal(t, StateProductBrowse, flow.State(), "failed selection must not close the flow")
	assert.False(t, state.Active(), "failed selection must not be applied")
}

func TestSteppedPickScenario(t *testing.T) {
	catalog := &fakeCatalog{
		categories: []Category{{Slug: "tv", Name: "TVs"}},
		brands:     []Brand{{Slug: "acme", Name: "Acme"}},
		listings:   []ProductSummary{{ID: "42", Name: "Sharp 42"}},
		products: map[string]*Product{
			"42": {ID: "42", Name: "Sharp 42", Attributes: []Attribute{{Name: "Size", Value: "42"}}},
		},
	}
	state := NewSelectionState(NewConfig(3, "sharp"))
	events := newRecorder()

	flow, err := OpenPicker(catalog, state, 1, events, FlowOptions{})
	require.NoError(t, err)
	assert.Equal(t, StateCategoryBrowse, flow.State())

	select {
	case categories := <-events.categories:
		assert.Equal(t, catalog.categories, categories)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for categories")
	}

	require.NoError(t, flow.ChooseCategory("tv"))
	assert.Equal(t, StateProductBrowse, flow.State())
	waitProducts(t, events)

	require.NoError(t, flow.SelectProduct("42"))
	select {
	case picked := <-events.selected:
		assert.Equal(t, "42", picked.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for selection")
	}

	assert.Equal(t, StateClosed, flow.State(), "successful selection closes the flow")
	assert.True(t, state.Active())

	table := Render(state.Current())
	require.NotNil(t, table)
	assert.Len(t, table.Headers, 1)

	filters := catalog.recordedFilters()
	require.NotEmpty(t, filters)
	assert.Equal(t, Filter{Category: "tv", Brand: "sharp"}, filters[len(filters)-1])
}

func TestBackReturnsToCategoryBrowse(t *testing.T) {
	catalog := &fakeCatalog{categories: []Category{{Slug: "tv", Name: "TVs"}}}
	state := NewSelectionState(NewConfig(3, "sharp"))
	events := newRecorder()

	flow, err := OpenPicker(catalog, state, 2, events, FlowOptions{})
	require.NoError(t, err)
	defer flow.Close()
	<-events.categories

	require.NoError(t, flow.ChooseCategory("tv"))
	waitProducts(t, events)
	require.NoError(t, flow.SetSearch("55 inch"))
	waitProducts(t, events)

	require.NoError(t, flow.Back())
	assert.Equal(t, StateCategoryBrowse, flow.State())
	assert.True(t, flow.Filter().IsZero(), "facets reset when leaving product browse")
	<-events.categories
}

func TestListingFailureIsScopedInline(t *testing.T) {
	catalog := &fakeCatalog{}
	catalog.listFn = func(Filter) ([]ProductSummary, error) {
		return nil, fmt.Errorf("%w: backend down", ErrCatalogUnavailable)
	}
	state := NewSelectionState(NewConfig(2, ""))
	events := newRecorder()

	flow, err := OpenPicker(catalog, state, 1, events, FlowOptions{Mode: ModeFlat})
	require.NoError(t, err)
	defer flow.Close()

	select {
	case fe := <-events.errors:
		assert.Equal(t, "products", fe.op)
		assert.ErrorIs(t, fe.err, ErrCatalogUnavailable)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for flow error")
	}
	assert.Equal(t, StateProductBrowse, flow.State())
}

func TestOpenPickerValidatesSlot(t *testing.T) {
	state := NewSelectionState(NewConfig(2, ""))

	_, err := OpenPicker(&fakeCatalog{}, state, 0, newRecorder(), FlowOptions{})
	assert.ErrorIs(t, err, ErrInvalidSlot)

	_, err = OpenPicker(&fakeCatalog{}, state, 3, newRecorder(), FlowOptions{})
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestSelectProductIgnoredOnCategoryBrowse(t *testing.T) {
	catalog := &fakeCatalog{
		categories: []Category{{Slug: "tv", Name: "TVs"}},
		products:   map[string]*Product{"42": {ID: "42", Name: "Sharp 42"}},
	}
	state := NewSelectionState(NewConfig(3, "sharp"))
	events := newRecorder()

	flow, err := OpenPicker(catalog, state, 1, events, FlowOptions{})
	require.NoError(t, err)
	defer flow.Close()
	<-events.categories

	// Still on the category step; a pick has no product browse to act on
	require.NoError(t, flow.SelectProduct("42"))

	assert.Equal(t, StateCategoryBrowse, flow.State())
	assert.False(t, state.Active())
	select {
	case picked := <-events.selected:
		t.Fatalf("unexpected selection of %s", picked.ID)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSelectDirectFillsSlot(t *testing.T) {
	catalog := &fakeCatalog{products: map[string]*Product{"42": {ID: "42", Name: "Sharp 42"}}}
	state := NewSelectionState(NewConfig(3, "sharp"))

	product, err := SelectDirect(context.Background(), catalog, state, 1, "42")
	require.NoError(t, err)
	assert.Equal(t, "Sharp 42", product.Name)
	assert.True(t, state.Active())

	_, err = SelectDirect(context.Background(), catalog, state, 2, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, state.Current().Product(2))
}
