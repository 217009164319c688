package fooditem

import "time"

// Filter is a predicate applied by Repository.List. Filters never mutate
// the collection.
type Filter func(FoodItem) bool

// CreatedToday keeps records whose createdAt falls on the current calendar
// day in the clock's local zone. The day boundary is taken from now() at
// evaluation time, so a record created just before midnight drops out of
// the filtered view once midnight passes, with no new write required.
func CreatedToday(now func() time.Time) Filter {
	return func(item FoodItem) bool {
		n := now()
		y, m, d := n.Date()
		iy, im, id := item.CreatedAt.In(n.Location()).Date()
		return y == iy && m == im && d == id
	}
}

// InCategory keeps records with the exact category.
func InCategory(category string) Filter {
	return func(item FoodItem) bool {
		return item.Category == category
	}
}
