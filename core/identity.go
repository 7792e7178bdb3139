package core

import (
	"fmt"
	"sync"
)

// Identity yields the object that currently stands for a category, or nil.
// It is called on every lookup, so objects replaced by Reset are still
// recognised.
type Identity func(c *Context) any

type identityEntry struct {
	cat Category
	id  Identity
}

var (
	identityMu sync.RWMutex
	identities []identityEntry
)

func init() {
	// The doubles themselves come first, in category order. They are looked
	// up without being created.
	for _, cat := range Categories() {
		RegisterIdentity(cat, func(c *Context) any { return c.doubles.peek(cat) })
	}
}

// RegisterIdentity appends an entry to the identity table. Entries are
// checked in registration order and the first match wins. Proxy packages
// call this from init for every peripheral singleton they export.
func RegisterIdentity(cat Category, id Identity) {
	if !cat.valid() {
		panic("core: unknown category " + cat.String())
	}
	if id == nil {
		panic("core: nil identity for " + cat.String())
	}

	identityMu.Lock()
	defer identityMu.Unlock()
	identities = append(identities, identityEntry{cat: cat, id: id})
}

// Identify returns the category of the first identity table entry that is
// the very object concrete. Comparison is by identity, never by type.
func Identify(c *Context, concrete any) (Category, bool) {
	if concrete == nil {
		return 0, false
	}

	identityMu.RLock()
	defer identityMu.RUnlock()

	for _, e := range identities {
		if obj := e.id(c); obj != nil && obj == concrete {
			return e.cat, true
		}
	}
	return 0, false
}

// Resolve returns the active instance of the category concrete belongs to,
// viewed as T. It fails with an UnknownInstance *Error when concrete is not
// in the identity table. Asking for a T the category does not implement is
// a programming error and panics.
func Resolve[T any](c *Context, concrete any) (T, error) {
	var zero T

	cat, ok := Identify(c, concrete)
	if !ok {
		debugf("resolve %T: unknown instance", concrete)
		return zero, &Error{Kind: UnknownInstance, Identity: concrete}
	}

	inst := c.Instance(cat)
	view, ok := inst.(T)
	if !ok {
		panic(fmt.Sprintf("core: %s instance %T does not implement %s", cat, inst, typeName[T]()))
	}
	return view, nil
}

// MustResolve is Resolve for callers that treat an unknown instance as
// fatal.
func MustResolve[T any](c *Context, concrete any) T {
	view, err := Resolve[T](c, concrete)
	if err != nil {
		panic(err)
	}
	return view
}

func typeName[T any]() string {
	return fmt.Sprintf("%T", new(T))[1:]
}
