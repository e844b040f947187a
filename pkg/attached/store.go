package attached

import (
	"fmt"
	"reflect"
	"runtime"
	"sort"
	"sync"
	"unsafe"
	"weak"

	"github.com/rs/zerolog"
)

// DefaultSweepEvery is the number of entry creations between two access-time
// sweeps of dead entries.
const DefaultSweepEvery = 256

// ownerKey identifies an owner without referencing it. Weak pointers made from
// the same address compare equal for the whole lifetime of the object, and a
// new object reusing the address gets a distinct key. The pointer's element
// type is part of the key because a struct and its first field share an
// address.
type ownerKey struct {
	ptr weak.Pointer[struct{}]
	typ reflect.Type
}

// PropertyMap holds the attached values of a single owner.
// Values are held strongly; a value referencing its own owner keeps that
// owner alive.
type PropertyMap struct {
	mu     sync.RWMutex
	values map[string]any
}

func newPropertyMap() *PropertyMap {
	return &PropertyMap{values: make(map[string]any)}
}

// Get returns the value stored under name.
func (m *PropertyMap) Get(name string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[name]
	return v, ok
}

// Set inserts or overwrites the value stored under name.
func (m *PropertyMap) Set(name string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[name] = value
}

// swap stores value and returns what was there before.
func (m *PropertyMap) swap(name string, value any) (prior any, had bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	prior, had = m.values[name]
	m.values[name] = value
	return prior, had
}

// Delete removes name and reports whether it was present.
func (m *PropertyMap) Delete(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.values[name]; !ok {
		return false
	}
	delete(m.values, name)
	return true
}

// Len returns the number of properties.
func (m *PropertyMap) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.values)
}

// Names returns the property names in lexical order.
func (m *PropertyMap) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.values))
	for name := range m.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a copy of all properties.
func (m *PropertyMap) Snapshot() map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]any, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

// Store maps owners to their PropertyMap without extending owner lifetimes.
//
// Each entry is removed by a runtime cleanup once its owner is collected.
// Entries whose owner died but whose cleanup has not run yet are also swept
// every sweepEvery creations and by Prune.
type Store struct {
	mu         sync.Mutex
	entries    map[ownerKey]*PropertyMap
	created    int
	sweepEvery int
	logger     zerolog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithSweepEvery sets how many entry creations trigger a sweep of dead
// entries. Zero or less disables access-time sweeping.
func WithSweepEvery(n int) StoreOption {
	return func(s *Store) {
		s.sweepEvery = n
	}
}

// WithStoreLogger sets the store logger.
func WithStoreLogger(logger zerolog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates an empty store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		entries:    make(map[ownerKey]*PropertyMap),
		sweepEvery: DefaultSweepEvery,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With().Str("component", "attached-store").Logger()
	return s
}

// Lookup returns the property map of owner without creating one.
func (s *Store) Lookup(owner any) (*PropertyMap, bool) {
	ptr, typ, err := identity(owner)
	if err != nil {
		return nil, false
	}

	key := ownerKey{ptr: weak.Make((*struct{})(ptr)), typ: typ}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.entries[key]
	return m, ok
}

// Attached returns the property map of owner, creating and registering an
// empty one if needed.
func (s *Store) Attached(owner any) (*PropertyMap, error) {
	ptr, typ, err := identity(owner)
	if err != nil {
		return nil, err
	}
	return s.getOrCreate(ptr, typ), nil
}

// TryGet returns the value of name on owner. Unknown owners, invalid owners
// and missing properties all report false.
func (s *Store) TryGet(owner any, name string) (any, bool) {
	m, ok := s.Lookup(owner)
	if !ok {
		return nil, false
	}
	return m.Get(name)
}

// Set stores value under name on owner.
func (s *Store) Set(owner any, name string, value any) error {
	m, err := s.Attached(owner)
	if err != nil {
		return err
	}
	m.Set(name, value)
	return nil
}

func (s *Store) swap(owner any, name string, value any) (any, bool, error) {
	m, err := s.Attached(owner)
	if err != nil {
		return nil, false, err
	}
	prior, had := m.swap(name, value)
	return prior, had, nil
}

// Clear removes name from owner and reports whether it was present.
func (s *Store) Clear(owner any, name string) bool {
	m, ok := s.Lookup(owner)
	if !ok {
		return false
	}
	return m.Delete(name)
}

// Len returns the number of owners currently holding an entry, including
// collected owners whose entry has not been swept yet.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// Prune removes entries whose owner has been collected and returns how many
// were removed.
func (s *Store) Prune() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sweepLocked()
}

func (s *Store) getOrCreate(ptr unsafe.Pointer, typ reflect.Type) *PropertyMap {
	base := (*struct{})(ptr)
	key := ownerKey{ptr: weak.Make(base), typ: typ}

	s.mu.Lock()
	defer s.mu.Unlock()

	if m, ok := s.entries[key]; ok {
		return m
	}

	m := newPropertyMap()
	s.entries[key] = m
	runtime.AddCleanup(base, s.remove, key)

	s.created++
	if s.sweepEvery > 0 && s.created%s.sweepEvery == 0 {
		s.sweepLocked()
	}
	return m
}

// remove runs on the runtime cleanup goroutine.
func (s *Store) remove(key ownerKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
}

// sweepLocked must be called with s.mu held.
func (s *Store) sweepLocked() int {
	removed := 0
	for key := range s.entries {
		if key.ptr.Value() == nil {
			delete(s.entries, key)
			removed++
		}
	}
	if removed > 0 {
		s.logger.Debug().Int("removed", removed).Int("live", len(s.entries)).Msg("swept dead owners")
	}
	return removed
}

// identity returns the address and element type that identify owner.
func identity(owner any) (unsafe.Pointer, reflect.Type, error) {
	if owner == nil {
		return nil, nil, fmt.Errorf("%w: nil owner", ErrInvalidOwner)
	}

	v := reflect.ValueOf(owner)
	if v.Kind() != reflect.Pointer {
		return nil, nil, fmt.Errorf("%w: %T is not a pointer", ErrInvalidOwner, owner)
	}
	if v.IsNil() {
		return nil, nil, fmt.Errorf("%w: nil %T", ErrInvalidOwner, owner)
	}
	elem := v.Type().Elem()
	if elem.Size() == 0 {
		return nil, nil, fmt.Errorf("%w: %T points to a zero-sized value", ErrInvalidOwner, owner)
	}
	return v.UnsafePointer(), elem, nil
}

// isNil reports whether v is nil or a typed nil.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
