package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/raihan324/Food-Application/internal/fooditem"
)

func TestItemRows_Formatting(t *testing.T) {
	items := []fooditem.FoodItem{{
		Name:       "Soup",
		Category:   "Appetizer",
		Price:      4.5,
		OwnerName:  "Ann",
		OwnerEmail: "a@x.com",
		CreatedAt:  time.Date(2026, 8, 29, 9, 15, 0, 0, time.Local),
	}}

	rows := itemRows(items)
	require.Len(t, rows, 1)
	require.Equal(t, "Soup", rows[0][colName])
	require.Equal(t, "$4.50", rows[0][colPrice])
	require.Equal(t, "Ann <a@x.com>", rows[0][colAddedBy])
	require.Equal(t, "Aug 29, 2026 9:15 AM", rows[0][colAdded])
}

func TestItemRows_Empty(t *testing.T) {
	require.Empty(t, itemRows(nil))
}

func TestItemColumns_DescriptionAbsorbsWidth(t *testing.T) {
	narrow := itemColumns(60)
	wide := itemColumns(200)

	require.Equal(t, narrow[colName].Width, wide[colName].Width)
	require.Greater(t, wide[colDescription].Width, narrow[colDescription].Width)
}
