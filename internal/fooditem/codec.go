package fooditem

import "encoding/json"

// Encode serializes the collection to the stored wire format. A nil slice
// encodes as an empty JSON array, never as null.
func Encode(items []FoodItem) ([]byte, error) {
	if items == nil {
		items = []FoodItem{}
	}
	return json.Marshal(items)
}

// Decode parses a stored collection value. Absent (nil/empty) input and
// malformed input both yield an empty collection: a rendering view must
// never fail because the stored bytes are bad, and the stored bytes
// themselves are left for the next successful write to replace. Unknown
// fields are ignored and missing optional fields default to zero values.
func Decode(data []byte) []FoodItem {
	if len(data) == 0 {
		return []FoodItem{}
	}
	var items []FoodItem
	if err := json.Unmarshal(data, &items); err != nil {
		return []FoodItem{}
	}
	if items == nil {
		return []FoodItem{}
	}
	return items
}
