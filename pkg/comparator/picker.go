// pkg/comparator/picker.go
package comparator

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// FlowState is the picker's position in its two-step workflow.
type FlowState int

const (
	StateCategoryBrowse FlowState = iota
	StateProductBrowse
	StateClosed
)

func (s FlowState) String() string {
	switch s {
	case StateCategoryBrowse:
		return "category_browse"
	case StateProductBrowse:
		return "product_browse"
	default:
		return "closed"
	}
}

// FlowMode selects the entry point of a picker invocation.
type FlowMode int

const (
	// ModeStepped opens on the category browse step.
	ModeStepped FlowMode = iota
	// ModeFlat skips category browse and opens directly on product browse.
	ModeFlat
)

// Events receives the flow's asynchronous results. Callbacks run on the
// goroutine that completed the catalog call; hosts that have a UI thread
// marshal onto it themselves.
type Events interface {
	CategoriesLoaded(categories []Category)
	BrandsLoaded(brands []Brand)
	ProductsLoaded(products []ProductSummary)
	ProductSelected(slot int, product *Product)
	// FlowError reports a failed catalog call scoped to one operation
	// ("categories", "brands", "products", "select"). The flow stays open.
	FlowError(op string, err error)
}

// FlowOptions tunes a picker invocation.
type FlowOptions struct {
	Mode    FlowMode
	Timeout time.Duration // per catalog call, defaults to DefaultTimeout
	Logger  logrus.FieldLogger
}

// DefaultTimeout bounds each catalog call issued by a picker flow.
const DefaultTimeout = 10 * time.Second

// PickerFlow is one modal invocation targeting a single slot. Its filter
// state and in-flight requests live exactly as long as the flow is open;
// Close invalidates anything still pending.
//
// Rapid facet changes may overlap on the wire. Only the most recently
// issued product listing is ever applied; superseded responses are
// discarded via a request generation counter.
type PickerFlow struct {
	client Client
	state  *SelectionState
	events Events
	slot   int
	anchor string
	mode   FlowMode

	timeout time.Duration
	log     logrus.FieldLogger

	mu        sync.Mutex
	flowState FlowState
	filter    Filter
	gen       uint64

	ctx    context.Context
	cancel context.CancelFunc
}

// OpenPicker starts a picker flow for the given slot and issues the entry
// step's catalog loads.
func OpenPicker(client Client, state *SelectionState, slot int, events Events, opts FlowOptions) (*PickerFlow, error) {
	if slot < 1 || slot > state.Config().SlotCount() {
		return nil, ErrInvalidSlot
	}

	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	ctx, cancel := context.WithCancel(context.Background())
	flow := &PickerFlow{
		client:  client,
		state:   state,
		events:  events,
		slot:    slot,
		anchor:  state.Config().AnchorBrand(slot),
		mode:    opts.Mode,
		timeout: opts.Timeout,
		log:     opts.Logger.WithField("slot", slot),
		ctx:     ctx,
		cancel:  cancel,
	}

	if opts.Mode == ModeFlat {
		flow.flowState = StateProductBrowse
		flow.loadBrands()
		flow.refreshProductsLocked()
	} else {
		flow.flowState = StateCategoryBrowse
		flow.loadCategories()
	}

	return flow, nil
}

// State returns the flow's current step.
func (f *PickerFlow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.flowState
}

// Slot returns the slot this invocation targets.
func (f *PickerFlow) Slot() int {
	return f.slot
}

// Filter returns the user-set facets. For anchored slots the brand facet
// shown here may differ from what is actually sent; see EffectiveFilter.
func (f *PickerFlow) Filter() Filter {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filter
}

// EffectiveFilter is the filter actually issued to the catalog: the user
// facets with the slot's anchor brand forced over the brand facet.
func (f *PickerFlow) EffectiveFilter() Filter {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.effectiveFilterLocked()
}

func (f *PickerFlow) effectiveFilterLocked() Filter {
	filter := f.filter
	if f.anchor != "" {
		filter.Brand = f.anchor
	}
	return filter
}

// ChooseCategory moves from category browse to product browse with the
// category facet pre-applied.
func (f *PickerFlow) ChooseCategory(slug string) error {
	return f.enterProductBrowse(Filter{Category: slug})
}

// SeeAll moves to product browse without a category filter.
func (f *PickerFlow) SeeAll() error {
	return f.enterProductBrowse(Filter{})
}

func (f *PickerFlow) enterProductBrowse(filter Filter) error {
	f.mu.Lock()
	if f.flowState == StateClosed {
		f.mu.Unlock()
		return ErrFlowClosed
	}
	f.flowState = StateProductBrowse
	f.filter = filter
	f.refreshProductsLocked()
	f.mu.Unlock()

	f.loadBrands()
	return nil
}

// Back returns to category browse and drops the transient facets. In flat
// mode there is no category step to go back to.
func (f *PickerFlow) Back() error {
	f.mu.Lock()
	if f.flowState == StateClosed {
		f.mu.Unlock()
		return ErrFlowClosed
	}
	if f.mode == ModeFlat {
		f.mu.Unlock()
		return nil
	}
	f.flowState = StateCategoryBrowse
	f.filter = Filter{}
	f.gen++ // anything still in flight is stale now
	f.mu.Unlock()

	f.loadCategories()
	return nil
}

// SetSearch updates the free-text facet and re-issues the product listing.
func (f *PickerFlow) SetSearch(search string) error {
	return f.updateFilter(func(filter *Filter) { filter.Search = search })
}

// SetCategory updates the category facet and re-issues the product listing.
func (f *PickerFlow) SetCategory(slug string) error {
	return f.updateFilter(func(filter *Filter) { filter.Category = slug })
}

// SetBrand updates the brand facet and re-issues the product listing. On an
// anchored slot the value is recorded but the anchor still wins on the wire.
func (f *PickerFlow) SetBrand(slug string) error {
	return f.updateFilter(func(filter *Filter) { filter.Brand = slug })
}

func (f *PickerFlow) updateFilter(apply func(*Filter)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.flowState != StateProductBrowse {
		if f.flowState == StateClosed {
			return ErrFlowClosed
		}
		return nil
	}
	apply(&f.filter)
	f.refreshProductsLocked()
	return nil
}

// SelectProduct resolves the product's full record and, on success, places
// it into the target slot and closes the flow. On failure the flow stays
// open on product browse and the error is surfaced through Events.
func (f *PickerFlow) SelectProduct(id string) error {
	f.mu.Lock()
	if f.flowState != StateProductBrowse {
		state := f.flowState
		f.mu.Unlock()
		if state == StateClosed {
			return ErrFlowClosed
		}
		// Selection belongs to product browse; on the category step a pick
		// has nothing to act on.
		return nil
	}
	f.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(f.ctx, f.timeout)
		defer cancel()

		product, err := f.client.GetProductDetail(ctx, id)

		f.mu.Lock()
		// Back may have left product browse while the lookup was in flight
		if f.flowState != StateProductBrowse {
			f.mu.Unlock()
			return
		}
		if err != nil {
			f.mu.Unlock()
			f.log.WithError(err).WithField("product_id", id).Warn("product detail lookup failed")
			f.events.FlowError("select", err)
			return
		}
		f.state.Select(f.slot, product)
		f.closeLocked()
		f.mu.Unlock()

		f.events.ProductSelected(f.slot, product)
	}()
	return nil
}

// Close ends the invocation, whether by explicit close, backdrop dismissal
// or a completed selection. In-flight requests lose their ability to mutate
// anything, and the transient facets are reset for the next invocation.
func (f *PickerFlow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closeLocked()
}

func (f *PickerFlow) closeLocked() {
	if f.flowState == StateClosed {
		return
	}
	f.flowState = StateClosed
	f.filter = Filter{}
	f.gen++
	f.cancel()
}

func (f *PickerFlow) loadCategories() {
	go func() {
		ctx, cancel := context.WithTimeout(f.ctx, f.timeout)
		defer cancel()

		categories, err := f.client.ListCategories(ctx)
		if f.State() == StateClosed {
			return
		}
		if err != nil {
			f.log.WithError(err).Warn("failed to load categories")
			f.events.FlowError("categories", err)
			return
		}
		f.events.CategoriesLoaded(categories)
	}()
}

func (f *PickerFlow) loadBrands() {
	go func() {
		ctx, cancel := context.WithTimeout(f.ctx, f.timeout)
		defer cancel()

		brands, err := f.client.ListBrands(ctx)
		if f.State() == StateClosed {
			return
		}
		if err != nil {
			f.log.WithError(err).Warn("failed to load brands")
			f.events.FlowError("brands", err)
			return
		}
		f.events.BrandsLoaded(brands)
	}()
}

// refreshProductsLocked issues a product listing for the current effective
// filter. Callers hold f.mu.
func (f *PickerFlow) refreshProductsLocked() {
	f.gen++
	gen := f.gen
	filter := f.effectiveFilterLocked()

	go func() {
		ctx, cancel := context.WithTimeout(f.ctx, f.timeout)
		defer cancel()

		products, err := f.client.ListProducts(ctx, filter)

		f.mu.Lock()
		stale := f.flowState == StateClosed || gen != f.gen
		f.mu.Unlock()
		if stale {
			f.log.WithField("gen", gen).Debug("discarding superseded product listing")
			return
		}
		if err != nil {
			f.log.WithError(err).Warn("failed to load products")
			f.events.FlowError("products", err)
			return
		}
		f.events.ProductsLoaded(products)
	}()
}
