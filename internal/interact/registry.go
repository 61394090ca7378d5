package interact

import (
	"fmt"

	"grocerysim/internal/engine"
)

// Registry tracks every object eligible for gaze interaction. Entries keep
// their registration order, which the gaze pass uses to break ties.
type Registry struct {
	entries []*Entry
	byUID   map[engine.UID]*Entry
	seq     uint64
}

func NewRegistry() *Registry {
	return &Registry{
		entries: make([]*Entry, 0),
		byUID:   make(map[engine.UID]*Entry),
	}
}

// Register adds obj with its interaction radius and callback.
func (r *Registry) Register(obj *engine.GameObject, kind Kind, radius float32, onInteract Callback) (*Entry, error) {
	if obj == nil {
		return nil, fmt.Errorf("register: nil object")
	}
	if kind != KindItem && kind != KindSpot {
		return nil, fmt.Errorf("register %q: unknown kind %d", obj.Name, kind)
	}
	if !(radius > 0) {
		return nil, fmt.Errorf("register %q with radius %v: %w", obj.Name, radius, ErrInvalidRadius)
	}
	if _, ok := r.byUID[obj.UID]; ok {
		return nil, fmt.Errorf("register %q: %w", obj.Name, ErrDuplicateRegistration)
	}

	r.seq++
	e := &Entry{
		object:     obj,
		kind:       kind,
		radius:     radius,
		onInteract: onInteract,
		enabled:    true,
		seq:        r.seq,
	}
	r.entries = append(r.entries, e)
	r.byUID[obj.UID] = e
	return e, nil
}

// RegisterItem registers a grocery item with its pickup radius and weight.
func (r *Registry) RegisterItem(obj *engine.GameObject, radius, weight float32, onInteract Callback) (GroceryItem, error) {
	if weight < 0 {
		return GroceryItem{}, fmt.Errorf("register item: negative weight %v", weight)
	}
	e, err := r.Register(obj, KindItem, radius, onInteract)
	if err != nil {
		return GroceryItem{}, err
	}
	e.weight = weight
	return GroceryItem{e}, nil
}

func (r *Registry) RegisterSpot(obj *engine.GameObject, radius float32, onInteract Callback) (PickupSpot, error) {
	e, err := r.Register(obj, KindSpot, radius, onInteract)
	if err != nil {
		return PickupSpot{}, err
	}
	return PickupSpot{e}, nil
}

// Unregister removes uid. An occupied spot or a held item cannot be removed;
// removing an item frees the spot holding it.
func (r *Registry) Unregister(uid engine.UID) error {
	e, ok := r.byUID[uid]
	if !ok {
		return fmt.Errorf("unregister %d: %w", uid, ErrNotRegistered)
	}
	if e.kind == KindSpot && e.Occupied() {
		return fmt.Errorf("unregister spot %q holding %d: %w", e.object.Name, e.occupant.UID, ErrInvalidInteractionState)
	}
	if e.held {
		return fmt.Errorf("unregister item %q: %w", e.object.Name, ErrItemHeld)
	}
	if e.kind == KindItem {
		if spot, ok := r.SpotHolding(uid); ok {
			spot.occupant.Clear()
		}
	}

	for i, entry := range r.entries {
		if entry == e {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			break
		}
	}
	delete(r.byUID, uid)
	return nil
}

// QueryCandidates returns the enabled entries of kind in registration order.
func (r *Registry) QueryCandidates(kind Kind) []*Entry {
	result := make([]*Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if e.kind == kind && e.enabled {
			result = append(result, e)
		}
	}
	return result
}

func (r *Registry) Lookup(uid engine.UID) (*Entry, bool) {
	e, ok := r.byUID[uid]
	return e, ok
}

// SpotHolding returns the spot whose occupant is item.
func (r *Registry) SpotHolding(item engine.UID) (PickupSpot, bool) {
	for _, e := range r.entries {
		if e.kind == KindSpot && e.occupant.Is(item) {
			return PickupSpot{e}, true
		}
	}
	return PickupSpot{}, false
}

func (r *Registry) Len() int {
	return len(r.entries)
}
