// pkg/comparator/carousel.go
package comparator

// PillAll is the pseudo-category pill that shows every strip item.
const PillAll = "all"

// StripItem is one preloaded product in the carousel strip together with
// the category slugs it belongs to.
type StripItem struct {
	Product    ProductSummary `json:"product"`
	Categories []string       `json:"categories"`
}

// Strip is the anchor-brand carousel: a fixed product list supplied once at
// mount and filtered client-side by a single active category pill. Nothing
// here touches the network.
type Strip struct {
	items  []StripItem
	active string
}

// NewStrip builds a strip over the preloaded items. No pill is active
// initially, so the strip starts hidden.
func NewStrip(items []StripItem) *Strip {
	return &Strip{items: items}
}

// TogglePill activates the pill, or deactivates it when it was already
// active. Pills are mutually exclusive. It returns whether the strip is
// visible afterwards.
func (s *Strip) TogglePill(slug string) bool {
	if s.active == slug {
		s.active = ""
	} else {
		s.active = slug
	}
	return s.active != ""
}

// ActivePill returns the active pill slug, or "" when none is active.
func (s *Strip) ActivePill() string {
	return s.active
}

// Visible returns the items the active pill lets through, in their
// preloaded order. A hidden strip yields nil.
func (s *Strip) Visible() []StripItem {
	if s.active == "" {
		return nil
	}
	if s.active == PillAll {
		out := make([]StripItem, len(s.items))
		copy(out, s.items)
		return out
	}
	var out []StripItem
	for _, item := range s.items {
		for _, slug := range item.Categories {
			if slug == s.active {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
