package fooditem

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/raihan324/Food-Application/internal/actor"
	"github.com/raihan324/Food-Application/internal/backend"
	"github.com/raihan324/Food-Application/internal/logging"
	"github.com/raihan324/Food-Application/internal/notify"
)

// DefaultStorageKey is the backend key holding the whole collection. No
// other key is used by this core.
const DefaultStorageKey = "foodItems"

// Repository is the CRUD surface over the shared backend. It holds no copy
// of the collection between calls: every operation re-reads the stored
// value, and every mutation replaces it with a single backend write
// followed by a same-context notification.
//
// There is no cross-context locking. Two instances interleaving a
// read-modify-write lose the earlier write; that is the storage model's
// accepted behavior, recovered only socially, not by this code.
type Repository struct {
	backend  backend.Backend
	key      string
	actors   actor.Provider
	notifier *notify.Notifier
	log      logging.Logger

	// Seams for tests; production uses the real clock and uuids.
	now   func() time.Time
	newID func() string
}

func NewRepository(b backend.Backend, key string, actors actor.Provider, notifier *notify.Notifier, log logging.Logger) *Repository {
	if key == "" {
		key = DefaultStorageKey
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Repository{
		backend:  b,
		key:      key,
		actors:   actors,
		notifier: notifier,
		log:      log,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// List reads the stored collection and returns it in insertion order,
// keeping only records that pass every filter.
func (r *Repository) List(ctx context.Context, filters ...Filter) ([]FoodItem, error) {
	data, err := r.backend.Get(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("reading collection: %w", err)
	}
	items := Decode(data)
	if len(data) > 0 && len(items) == 0 && !isEmptyEncoding(data) {
		r.log.Warn(ctx, "stored collection did not decode, treating as empty", "key", r.key)
	}
	if len(filters) == 0 {
		return items, nil
	}

	out := make([]FoodItem, 0, len(items))
	for _, item := range items {
		if matchesAll(item, filters) {
			out = append(out, item)
		}
	}
	return out, nil
}

// Create validates the draft, stamps id, creation time, and the current
// actor's attribution, and appends the record to the collection.
func (r *Repository) Create(ctx context.Context, draft Draft) (FoodItem, error) {
	a, err := r.actors.Current(ctx)
	if err != nil {
		return FoodItem{}, fmt.Errorf("resolving actor: %w", err)
	}
	if a == nil {
		return FoodItem{}, &PreconditionError{Reason: "no authenticated actor"}
	}

	var missing []string
	if strings.TrimSpace(draft.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(draft.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(draft.Category) == "" {
		missing = append(missing, "category")
	}
	if draft.Price <= 0 {
		missing = append(missing, "price")
	}
	if len(missing) > 0 {
		return FoodItem{}, &ValidationError{Missing: missing}
	}

	items, err := r.List(ctx)
	if err != nil {
		return FoodItem{}, err
	}

	item := FoodItem{
		ID:          r.newID(),
		Name:        draft.Name,
		Description: draft.Description,
		Category:    draft.Category,
		Price:       draft.Price,
		OwnerID:     a.ID,
		OwnerName:   a.Name,
		OwnerEmail:  a.Email,
		CreatedAt:   r.now().UTC(),
	}
	items = append(items, item)

	if err := r.write(ctx, items); err != nil {
		return FoodItem{}, err
	}
	r.log.Info(ctx, "food item created", "id", item.ID, "name", item.Name)
	return item, nil
}

// Update merges the supplied fields over the stored record. Unsupplied
// fields keep their prior values; id, createdAt, and owner attribution are
// never touched, regardless of who edits.
func (r *Repository) Update(ctx context.Context, id string, patch Patch) (FoodItem, error) {
	var invalid []string
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		invalid = append(invalid, "name")
	}
	if patch.Description != nil && strings.TrimSpace(*patch.Description) == "" {
		invalid = append(invalid, "description")
	}
	if patch.Category != nil && strings.TrimSpace(*patch.Category) == "" {
		invalid = append(invalid, "category")
	}
	if patch.Price != nil && *patch.Price <= 0 {
		invalid = append(invalid, "price")
	}
	if len(invalid) > 0 {
		return FoodItem{}, &ValidationError{Missing: invalid}
	}

	items, err := r.List(ctx)
	if err != nil {
		return FoodItem{}, err
	}

	idx := indexByID(items, id)
	if idx < 0 {
		return FoodItem{}, &NotFoundError{ID: id}
	}

	item := items[idx]
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	items[idx] = item

	if err := r.write(ctx, items); err != nil {
		return FoodItem{}, err
	}
	r.log.Info(ctx, "food item updated", "id", id)
	return item, nil
}

// Delete removes exactly one record by id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	items, err := r.List(ctx)
	if err != nil {
		return err
	}

	idx := indexByID(items, id)
	if idx < 0 {
		return &NotFoundError{ID: id}
	}
	items = append(items[:idx], items[idx+1:]...)

	if err := r.write(ctx, items); err != nil {
		return err
	}
	r.log.Info(ctx, "food item deleted", "id", id)
	return nil
}

func (r *Repository) write(ctx context.Context, items []FoodItem) error {
	data, err := Encode(items)
	if err != nil {
		return fmt.Errorf("encoding collection: %w", err)
	}
	if err := r.backend.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("writing collection: %w", err)
	}
	// The backend's own signal never reaches this instance; the in-process
	// notifier covers the writer's side of the fan-out.
	if r.notifier != nil {
		r.notifier.Publish()
	}
	return nil
}

func indexByID(items []FoodItem, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func matchesAll(item FoodItem, filters []Filter) bool {
	for _, f := range filters {
		if !f(item) {
			return false
		}
	}
	return true
}

// isEmptyEncoding reports whether data is one of the encodings Decode maps
// to an empty collection on purpose, as opposed to malformed input.
func isEmptyEncoding(data []byte) bool {
	switch strings.TrimSpace(string(data)) {
	case "", "[]", "null":
		return true
	}
	return false
}
