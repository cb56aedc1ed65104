// pkg/comparator/render.go
package comparator

// Placeholder is the cell value used when a product does not carry an
// attribute present on the reference product.
const Placeholder = "-"

// HeaderCell identifies one comparison column.
type HeaderCell struct {
	Slot  int    `json:"slot"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// Row is one attribute row. Values are aligned with the header cells.
type Row struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// FooterLink points at a compared product's own page.
type FooterLink struct {
	Slot      int    `json:"slot"`
	Permalink string `json:"permalink"`
}

// Table is the comparison view model. Binding it to markup is the host's
// concern.
type Table struct {
	Headers []HeaderCell `json:"headers"`
	Rows    []Row        `json:"rows"`
	Footer  []FooterLink `json:"footer"`
}

// Render projects a selection snapshot into a comparison table. It returns
// nil when no slot is filled: an absent table, not an empty one.
//
// The row set is driven solely by the reference product, the lowest filled
// slot. Attributes that only exist on other products are not shown, and
// attribute names match case-sensitively. Both points are deliberate and
// mirror how every deployed variant behaves.
func Render(snap Snapshot) *Table {
	filled := snap.Filled()
	if len(filled) == 0 {
		return nil
	}

	table := &Table{}
	for _, slot := range filled {
		p := snap.Product(slot)
		table.Headers = append(table.Headers, HeaderCell{Slot: slot, Name: p.Name, Image: p.Image})
		table.Footer = append(table.Footer, FooterLink{Slot: slot, Permalink: p.Permalink})
	}

	reference := snap.Product(filled[0])
	for _, attr := range reference.Attributes {
		row := Row{Name: attr.Name}
		for _, slot := range filled {
			row.Values = append(row.Values, attributeValue(snap.Product(slot), attr.Name))
		}
		table.Rows = append(table.Rows, row)
	}

	return table
}

func attributeValue(p *Product, name string) string {
	for _, attr := range p.Attributes {
		if attr.Name == name {
			return attr.Value
		}
	}
	return Placeholder
}
