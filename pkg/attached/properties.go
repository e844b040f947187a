package attached

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// ChangeHandler is invoked after a write changed the value of property on
// owner.
type ChangeHandler func(owner any, property string)

// Properties is the uniform property façade. It owns a Store and resolves
// inherited values through the installed Hierarchy.
type Properties struct {
	store *Store

	mu        sync.RWMutex
	hierarchy Hierarchy

	logger zerolog.Logger
}

// Option configures Properties.
type Option func(*Properties)

// WithStore uses store instead of a fresh one.
func WithStore(store *Store) Option {
	return func(p *Properties) {
		p.store = store
	}
}

// WithHierarchy installs the toolkit hierarchy used for inheriting reads.
func WithHierarchy(h Hierarchy) Option {
	return func(p *Properties) {
		p.hierarchy = h
	}
}

// WithLogger sets the façade logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Properties) {
		p.logger = logger
	}
}

// New creates a façade. Without options it uses a private store and a
// hierarchy in which nothing is visual.
func New(opts ...Option) *Properties {
	p := &Properties{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	if p.store == nil {
		p.store = NewStore(WithStoreLogger(p.logger))
	}
	if p.hierarchy == nil {
		p.hierarchy = flatHierarchy{}
	}
	p.logger = p.logger.With().Str("component", "attached").Logger()
	return p
}

// Store returns the backing store.
func (p *Properties) Store() *Store {
	return p.store
}

// Hierarchy returns the installed hierarchy.
func (p *Properties) Hierarchy() Hierarchy {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.hierarchy
}

// SetHierarchy installs h. A nil h restores the flat hierarchy.
func (p *Properties) SetHierarchy(h Hierarchy) {
	if h == nil {
		h = flatHierarchy{}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.hierarchy = h
}

// key returns the store key for owner under h.
func key(h Hierarchy, owner any) any {
	owner = Unwrap(owner)
	if c, ok := h.(Canonicalizer); ok && !isNil(owner) {
		return c.Canonical(owner)
	}
	return owner
}

// readKey is key for operations that never create an entry. ok is false when
// the hierarchy knows owner has no canonical value yet.
func readKey(h Hierarchy, owner any) (any, bool) {
	owner = Unwrap(owner)
	if l, ok := h.(CanonicalLookup); ok && !isNil(owner) {
		return l.LookupCanonical(owner)
	}
	return key(h, owner), true
}

// GetValue reads name directly from owner, without inheritance.
func (p *Properties) GetValue(owner any, name string) (any, bool) {
	if isNil(owner) {
		return nil, false
	}
	k, ok := readKey(p.Hierarchy(), owner)
	if !ok {
		return nil, false
	}
	return p.store.TryGet(k, name)
}

// SetValue writes name on owner. A nil owner is ignored.
func (p *Properties) SetValue(owner any, name string, value any) error {
	if isNil(owner) {
		return nil
	}

	if err := p.store.Set(key(p.Hierarchy(), owner), name, value); err != nil {
		p.logger.Debug().Err(err).Str("property", name).Msg("set value rejected")
		return err
	}
	p.logger.Trace().Str("property", name).Msg("value set")
	return nil
}

// SetValueNotify writes name on owner and calls onChanged if the stored value
// differs from the previous one. An absent previous value always counts as a
// change. A nil onChanged behaves like SetValue.
func (p *Properties) SetValueNotify(owner any, name string, value any, onChanged ChangeHandler) error {
	if onChanged == nil {
		return p.SetValue(owner, name, value)
	}
	if isNil(owner) {
		return nil
	}

	prior, had, err := p.store.swap(key(p.Hierarchy(), owner), name, value)
	if err != nil {
		p.logger.Debug().Err(err).Str("property", name).Msg("set value rejected")
		return err
	}
	if had && valuesEqual(prior, value) {
		return nil
	}

	p.logger.Trace().Str("property", name).Msg("value changed")
	onChanged(owner, name)
	return nil
}

// ClearValue removes name from owner and reports whether it was set.
func (p *Properties) ClearValue(owner any, name string) bool {
	if isNil(owner) {
		return false
	}
	k, ok := readKey(p.Hierarchy(), owner)
	if !ok {
		return false
	}
	return p.store.Clear(k, name)
}

// Attached returns the property map of owner, creating it if needed.
func (p *Properties) Attached(owner any) (*PropertyMap, error) {
	if isNil(owner) {
		return nil, fmt.Errorf("%w: nil owner", ErrInvalidOwner)
	}
	return p.store.Attached(key(p.Hierarchy(), owner))
}

// Kind classifies owner with the installed hierarchy.
func (p *Properties) Kind(owner any) NodeKind {
	owner = Unwrap(owner)
	if isNil(owner) {
		return KindNone
	}
	return p.Hierarchy().Kind(owner)
}

// IsVisual reports whether owner takes part in value inheritance.
func (p *Properties) IsVisual(owner any) bool {
	return p.Kind(owner).IsVisual()
}
