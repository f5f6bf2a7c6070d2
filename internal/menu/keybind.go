package menu

import (
	"context"
	"sort"

	"twitchy/internal/errors"
	"twitchy/pkg/types"
)

// KeycodeBase is the first result code assigned to keybinds. Codes
// below it are reserved for Confirm and Cancel.
const KeycodeBase = 10

// Event carries the selection context a keybind action runs against.
type Event struct {
	Item    types.Item
	Items   *types.List
	Keybind *Keybind
}

// Action is the capability bound to a keybind. It receives the current
// selection and returns the engine result code.
type Action func(ctx context.Context, ev Event) (int, error)

// Keybind is a user-invocable shortcut bound to an action.
type Keybind struct {
	Code        int    // Result code, unique per registry
	Bind        string // User-facing key label, e.g. "alt-v"
	Description string
	Hidden      bool // Hidden keybinds still fire but show no hint
	Action      Action
}

// Toggle flips the keybind's hint visibility.
func (k *Keybind) Toggle() { k.Hidden = !k.Hidden }

// Hide suppresses the keybind's hint.
func (k *Keybind) Hide() { k.Hidden = true }

// Registry holds the keybinds active for the current screen. It is
// owned by the single navigation thread; screens swap the active set
// before each render.
type Registry struct {
	keys  map[int]*Keybind
	stash map[int]bool // prior visibility, kept across ToggleHidden
}

// NewRegistry returns an empty keybind registry.
func NewRegistry() *Registry {
	return &Registry{keys: make(map[int]*Keybind)}
}

// Register activates a single keybind. Registering an already-active
// code is a programming error.
func (r *Registry) Register(k *Keybind) error {
	if _, ok := r.keys[k.Code]; ok {
		return errors.Newf(errors.KeybindExists, "keybind code %d already registered", k.Code)
	}
	r.keys[k.Code] = k
	return nil
}

// RegisterAll activates a set of keybinds for the current screen. With
// existOK false an already-registered code is a programming error.
func (r *Registry) RegisterAll(keybinds []*Keybind, existOK bool) error {
	for _, k := range keybinds {
		if _, ok := r.keys[k.Code]; ok {
			if existOK {
				continue
			}
			return errors.Newf(errors.KeybindExists, "keybind code %d already registered", k.Code)
		}
		r.keys[k.Code] = k
	}
	return nil
}

// UnregisterAll clears all active keybinds. Idempotent.
func (r *Registry) UnregisterAll() {
	r.keys = make(map[int]*Keybind)
}

// GetByCode returns the active keybind with the given result code.
func (r *Registry) GetByCode(code int) (*Keybind, error) {
	k, ok := r.keys[code]
	if !ok {
		return nil, errors.Newf(errors.KeybindNotFound, "no keybind registered for code %d", code)
	}
	return k, nil
}

// GetByBind returns the active keybind with the given key label.
func (r *Registry) GetByBind(bind string) (*Keybind, error) {
	for _, k := range r.keys {
		if k.Bind == bind {
			return k, nil
		}
	}
	return nil, errors.Newf(errors.KeybindNotFound, "no keybind registered for bind %q", bind)
}

// GetByBindList is a batch GetByBind.
func (r *Registry) GetByBindList(binds ...string) ([]*Keybind, error) {
	out := make([]*Keybind, 0, len(binds))
	for _, b := range binds {
		k, err := r.GetByBind(b)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

// Current returns the active keybinds ordered by code.
func (r *Registry) Current() []*Keybind {
	out := make([]*Keybind, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// ToggleHidden hides every keybind hint, remembering prior visibility;
// with restore it puts the remembered visibility back. Used around
// free-text input.
func (r *Registry) ToggleHidden(restore bool) {
	if restore {
		for code, hidden := range r.stash {
			if k, ok := r.keys[code]; ok {
				k.Hidden = hidden
			}
		}
		r.stash = nil
		return
	}
	r.stash = make(map[int]bool, len(r.keys))
	for code, k := range r.keys {
		r.stash[code] = k.Hidden
		k.Hidden = true
	}
}
