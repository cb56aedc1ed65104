// pkg/comparator/selection.go
package comparator

import "sync"

// SlotConfig carries per-slot behavior. A non-empty AnchorBrand pins every
// product browse for that slot to the given brand, regardless of the brand
// facet the user sets.
type SlotConfig struct {
	AnchorBrand string
}

// Config describes the comparison columns. The slice length is the slot
// count N; slots are addressed 1..N.
type Config struct {
	Slots []SlotConfig
}

// NewConfig builds a config with the given slot count where only slot 1
// carries the anchor brand, which is the shape every deployment uses today.
func NewConfig(slots int, anchorBrand string) Config {
	cfg := Config{Slots: make([]SlotConfig, slots)}
	if slots > 0 {
		cfg.Slots[0].AnchorBrand = anchorBrand
	}
	return cfg
}

func (c Config) SlotCount() int {
	return len(c.Slots)
}

// AnchorBrand returns the brand constraint for a slot, or "" when the slot
// is unconstrained or out of range.
func (c Config) AnchorBrand(slot int) string {
	if slot < 1 || slot > len(c.Slots) {
		return ""
	}
	return c.Slots[slot-1].AnchorBrand
}

// Snapshot is a read-only copy of the selection, indexed by slot. Entries
// are nil for empty slots.
type Snapshot []*Product

// Product returns the product in the given slot, or nil.
func (s Snapshot) Product(slot int) *Product {
	if slot < 1 || slot > len(s) {
		return nil
	}
	return s[slot-1]
}

// Filled returns the filled slot indexes in ascending order.
func (s Snapshot) Filled() []int {
	var filled []int
	for i, p := range s {
		if p != nil {
			filled = append(filled, i+1)
		}
	}
	return filled
}

// SelectionState holds the selected product per slot. It is the only
// mutable state of the comparator; the catalog is never mutated through it.
//
// Comparisons are always contiguous from slot 1: removing slot k clears
// every slot above it as well, so no gaps can exist.
type SelectionState struct {
	mu    sync.Mutex
	cfg   Config
	slots []*Product
}

func NewSelectionState(cfg Config) *SelectionState {
	return &SelectionState{
		cfg:   cfg,
		slots: make([]*Product, cfg.SlotCount()),
	}
}

func (s *SelectionState) Config() Config {
	return s.cfg
}

// Select places a product into the slot. No other slot changes.
func (s *SelectionState) Select(slot int, product *Product) error {
	if slot < 1 || slot > len(s.slots) {
		return ErrInvalidSlot
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[slot-1] = product
	return nil
}

// Remove clears the slot and, to keep the selection contiguous, every slot
// with a higher index. Slots below are never touched.
func (s *SelectionState) Remove(slot int) error {
	if slot < 1 || slot > len(s.slots) {
		return ErrInvalidSlot
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := slot - 1; i < len(s.slots); i++ {
		s.slots[i] = nil
	}
	return nil
}

// Current returns a snapshot for rendering.
func (s *SelectionState) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := make(Snapshot, len(s.slots))
	copy(snap, s.slots)
	return snap
}

// FirstEmptySlot returns the smallest empty slot index, or ok=false when
// all slots are filled. Because removals cascade, this is also the only
// slot that should be offered for picking.
func (s *SelectionState) FirstEmptySlot() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.slots {
		if p == nil {
			return i + 1, true
		}
	}
	return 0, false
}

// Active reports whether a comparison is underway, i.e. slot 1 is filled.
// When it flips back to false the host restores its initial-choice view.
func (s *SelectionState) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.slots) > 0 && s.slots[0] != nil
}

// Reset clears every slot.
func (s *SelectionState) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.slots {
		s.slots[i] = nil
	}
}
