// pkg/comparator/render_test.go
package comparator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderEmptySelectionIsAbsent(t *testing.T) {
	state := NewSelectionState(NewConfig(3, "sharp"))

	table := Render(state.Current())

	assert.Nil(t, table, "empty selection renders an absent table, not empty headers")
}

func TestRenderRowsFollowReferenceProduct(t *testing.T) {
	state := NewSelectionState(NewConfig(3, "sharp"))
	state.Select(1, &Product{
		ID:   "1",
		Name: "Sharp 55EQ",
		Attributes: []Attribute{
			{Name: "A", Value: "1"},
			{Name: "B", Value: "2"},
		},
	})
	state.Select(2, &Product{
		ID:   "2",
		Name: "Other TV",
		Attributes: []Attribute{
			{Name: "B", Value: "9"},
			{Name: "C", Value: "5"},
		},
	})

	table := Render(state.Current())

	assert.NotNil(t, table)
	assert.Len(t, table.Rows, 2, "row set comes from the reference product only")
	assert.Equal(t, Row{Name: "A", Values: []string{"1", Placeholder}}, table.Rows[0])
	assert.Equal(t, Row{Name: "B", Values: []string{"2", "9"}}, table.Rows[1])
	for _, row := range table.Rows {
		assert.NotEqual(t, "C", row.Name, "attributes absent from the reference product are dropped")
	}
}

func TestRenderAttributeMatchIsCaseSensitive(t *testing.T) {
	state := NewSelectionState(NewConfig(2, ""))
	state.Select(1, &Product{ID: "1", Attributes: []Attribute{{Name: "Size", Value: "55"}}})
	state.Select(2, &Product{ID: "2", Attributes: []Attribute{{Name: "size", Value: "65"}}})

	table := Render(state.Current())

	assert.Equal(t, []string{"55", Placeholder}, table.Rows[0].Values)
}

func TestRenderHeadersAndFooter(t *testing.T) {
	state := NewSelectionState(NewConfig(3, "sharp"))
	state.Select(1, &Product{ID: "1", Name: "First", Image: "first.jpg", Permalink: "https://shop/1"})
	state.Select(2, &Product{ID: "2", Name: "Second", Permalink: "https://shop/2"})

	table := Render(state.Current())

	assert.Equal(t, []HeaderCell{
		{Slot: 1, Name: "First", Image: "first.jpg"},
		{Slot: 2, Name: "Second"},
	}, table.Headers)
	assert.Equal(t, []FooterLink{
		{Slot: 1, Permalink: "https://shop/1"},
		{Slot: 2, Permalink: "https://shop/2"},
	}, table.Footer)
}

func TestRenderSingleColumn(t *testing.T) {
	state := NewSelectionState(NewConfig(3, "sharp"))
	state.Select(1, &Product{ID: "1", Name: "Only", Attributes: []Attribute{{Name: "A", Value: "x"}}})

	table := Render(state.Current())

	assert.Len(t, table.Headers, 1)
	assert.Equal(t, Row{Name: "A", Values: []string{"x"}}, table.Rows[0])
}
