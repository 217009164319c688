package fooditem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func sampleItems() []FoodItem {
	return []FoodItem{
		{
			ID:          "a1",
			Name:        "Soup",
			Description: "Tomato soup",
			Category:    "Appetizer",
			Price:       4.5,
			OwnerID:     "u1",
			OwnerName:   "Ann",
			OwnerEmail:  "a@x.com",
			CreatedAt:   time.Date(2026, 8, 29, 12, 30, 0, 0, time.UTC),
		},
		{
			ID:        "b2",
			Name:      "Bread",
			CreatedAt: time.Date(2026, 8, 29, 13, 0, 0, 0, time.UTC),
		},
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	items := sampleItems()

	data, err := Encode(items)
	require.NoError(t, err)
	require.Equal(t, items, Decode(data))
}

func TestEncodeDecode_RoundTripEmpty(t *testing.T) {
	data, err := Encode([]FoodItem{})
	require.NoError(t, err)
	require.Equal(t, []byte(`[]`), data)
	require.Empty(t, Decode(data))
}

func TestEncode_NilEncodesAsEmptyArray(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	require.Equal(t, []byte(`[]`), data)
}

func TestDecode_AbsentValueIsEmpty(t *testing.T) {
	require.Empty(t, Decode(nil))
	require.Empty(t, Decode([]byte{}))
}

func TestDecode_MalformedIsEmptyNotError(t *testing.T) {
	for _, bad := range []string{
		`[{"id":"a","name":"Soup"`, // truncated
		`{"id":"a"}`,               // object, not array
		`not json at all`,
		`null`,
	} {
		require.Empty(t, Decode([]byte(bad)), "input: %s", bad)
	}
}

func TestDecode_UnknownAndMissingFieldsTolerated(t *testing.T) {
	data := []byte(`[{"id":"a","name":"Soup","flavor":"salty"},{"id":"b","name":"Tea","price":2.5}]`)

	items := Decode(data)
	require.Len(t, items, 2)
	require.Equal(t, "Soup", items[0].Name)
	require.Zero(t, items[0].Price)
	require.Empty(t, items[0].Category)
	require.Equal(t, 2.5, items[1].Price)
}

func TestCodec_WireFieldNames(t *testing.T) {
	data, err := Encode(sampleItems()[:1])
	require.NoError(t, err)

	for _, field := range []string{`"id"`, `"name"`, `"description"`, `"category"`, `"price"`, `"userId"`, `"userName"`, `"userEmail"`, `"createdAt"`} {
		require.Contains(t, string(data), field)
	}
}
