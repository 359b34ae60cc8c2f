package regions

import (
	"iter"

	"github.com/benbjohnson/immutable"
	"github.com/pkg/errors"

	"github.com/fortscan/fortscan/util"
)

// EnvEntry binds one region-variable name to a sum. Names are not unique:
// the inference engine may bind the same name repeatedly as it walks nested
// loop scopes, and later bindings shadow earlier ones without erasing them.
type EnvEntry struct {
	Name string
	Sum  Sum
}

// Env is the region-variable environment the inference engine consults while
// elaborating specifications. It is persistent: Bind returns a new value and
// never mutates the receiver, so environments for sibling scopes can share
// structure freely.
type Env struct {
	parent  *Env
	entries *immutable.List[EnvEntry]
}

func NewEnv() Env {
	return Env{entries: immutable.NewList[EnvEntry]()}
}

// Child opens a nested scope whose lookups fall back to e.
func (e Env) Child() Env {
	parent := e
	return Env{parent: &parent, entries: immutable.NewList[EnvEntry]()}
}

// Bind adds a binding in the current scope, shadowing earlier ones.
func (e Env) Bind(name string, s Sum) Env {
	entries := e.entries
	if entries == nil {
		entries = immutable.NewList[EnvEntry]()
	}
	return Env{parent: e.parent, entries: entries.Append(EnvEntry{Name: name, Sum: s})}
}

// Lookup returns the most recent binding for name, searching enclosing
// scopes outside-in only after the current scope is exhausted.
func (e Env) Lookup(name string) (Sum, error) {
	if e.entries != nil {
		for i := e.entries.Len() - 1; i >= 0; i-- {
			if entry := e.entries.Get(i); entry.Name == name {
				return entry.Sum, nil
			}
		}
	}
	if e.parent != nil {
		return e.parent.Lookup(name)
	}
	return Sum{}, errors.Errorf("region variable %q is not bound", name)
}

// LookupAll returns every binding for name, most recent first, including
// shadowed ones from enclosing scopes.
func (e Env) LookupAll(name string) []Sum {
	var out []Sum
	for entry := range e.All() {
		if entry.Name == name {
			out = append(out, entry.Sum)
		}
	}
	return out
}

// All iterates every entry visible from this environment, most recent first.
func (e Env) All() iter.Seq[EnvEntry] {
	own := func(yield func(EnvEntry) bool) {
		if e.entries == nil {
			return
		}
		for i := e.entries.Len() - 1; i >= 0; i-- {
			if !yield(e.entries.Get(i)) {
				return
			}
		}
	}
	if e.parent == nil {
		return own
	}
	return util.ConcatIter(own, e.parent.All())
}
