// Package attached emulates attached dependency properties over arbitrary
// native UI objects.
//
// Any heap-allocated object can carry named values without its type knowing
// about them. Values are read directly (GetValue) or through the visual
// containment hierarchy of the active toolkit backend (GetInheritedValue), in
// which case the first node on the chain widget → container → window →
// application that holds an explicit value wins.
//
// The store never keeps an owner alive: entries are keyed by weak pointers and
// removed when the owner is collected. Owners must be non-nil pointers to
// values of non-zero size. An owner is identified by its address together with
// its pointed-to type, so a struct and its first embedded field are distinct
// owners even though they share an address.
//
// All operations are synchronous and intended to be called from the UI
// thread. The store serializes its own bookkeeping because entries are also
// removed from the garbage collector's cleanup goroutine.
package attached
