package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"

	"github.com/raihan324/Food-Application/internal/fooditem"
)

const (
	colName = iota
	colCategory
	colDescription
	colPrice
	colAddedBy
	colAdded
)

func newItemsTable() table.Model {
	t := table.New(
		table.WithColumns(itemColumns(96)),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).Foreground(colHeader)
	s.Selected = s.Selected.Foreground(colSelectedFg).Background(colSelectedBg)
	t.SetStyles(s)
	return t
}

// itemColumns sizes the columns for the given total width, letting the
// description soak up whatever the fixed columns leave over.
func itemColumns(total int) []table.Column {
	cols := []table.Column{
		colName:        {Title: "Item Name", Width: 18},
		colCategory:    {Title: "Category", Width: 12},
		colDescription: {Title: "Description", Width: 24},
		colPrice:       {Title: "Price", Width: 8},
		colAddedBy:     {Title: "Added By", Width: 22},
		colAdded:       {Title: "Date Added", Width: 18},
	}

	fixed := 0
	for i, c := range cols {
		if i != colDescription {
			fixed += c.Width
		}
	}
	if rest := total - fixed - len(cols)*2; rest > cols[colDescription].Width {
		cols[colDescription].Width = rest
	}
	return cols
}

func itemRows(items []fooditem.FoodItem) []table.Row {
	rows := make([]table.Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, table.Row{
			colName:        item.Name,
			colCategory:    item.Category,
			colDescription: item.Description,
			colPrice:       fmt.Sprintf("$%.2f", item.Price),
			colAddedBy:     fmt.Sprintf("%s <%s>", item.OwnerName, item.OwnerEmail),
			colAdded:       item.CreatedAt.Local().Format("Jan 2, 2006 3:04 PM"),
		})
	}
	return rows
}

func (m *Model) resizeTable() {
	if m.width <= 0 {
		return
	}
	m.table.SetColumns(itemColumns(m.width - 6))
	if h := m.height - formHeight - 8; h > 4 {
		m.table.SetHeight(h)
	}
}
