// pkg/comparator/types.go
package comparator

// Attribute is a single name/value pair on a product. Names are unique
// within a product but are not guaranteed to be consistent across products.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Product is the full catalog record used once a product has been picked
// into a slot. Price is a pre-formatted display string owned by the catalog.
type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Image       string      `json:"image,omitempty"`
	Price       string      `json:"price"`
	Permalink   string      `json:"permalink"`
	Description string      `json:"description,omitempty"`
	Attributes  []Attribute `json:"attributes"`
}

// ProductSummary is the lightweight listing shape shown while browsing.
type ProductSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

type Category struct {
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

type Brand struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// Filter is the conjunction of the three browse facets. Empty fields do not
// constrain the result.
type Filter struct {
	Category string `json:"category,omitempty"`
	Brand    string `json:"brand,omitempty"`
	Search   string `json:"search,omitempty"`
}

// IsZero reports whether no facet is set.
func (f Filter) IsZero() bool {
	return f.Category == "" && f.Brand == "" && f.Search == ""
}
