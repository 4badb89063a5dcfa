package native

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
)

var (
	ErrUnknownNative = errors.New("unknown native")
	ErrArgCount      = errors.New("argument count mismatch")
	ErrArgKind       = errors.New("argument kind mismatch")
)

// Hash is the opcode a native is dispatched by on both sides of the bridge.
type Hash uint64

func (h Hash) String() string { return fmt.Sprintf("0x%016X", uint64(h)) }

// HashOf derives the opcode for a native name.
func HashOf(name string) Hash { return Hash(xxhash.Sum64String(name)) }

// Native is one entry of the binding table: a fixed opcode plus the argument
// and return shape every call must respect.
type Native struct {
	Name    string
	Hash    Hash
	Args    []Kind
	Returns Kind
	// Outs lists out-argument kinds returned alongside the result.
	Outs []Kind
}

func (n *Native) String() string { return n.Name }

// Check verifies args against the declared signature.
func (n *Native) Check(args []Value) error {
	if len(args) != len(n.Args) {
		return fmt.Errorf("%s: %w: want %d, got %d", n.Name, ErrArgCount, len(n.Args), len(args))
	}
	for i, a := range args {
		if a.Kind != n.Args[i] {
			return fmt.Errorf("%s: %w: arg %d want %s, got %s", n.Name, ErrArgKind, i, n.Args[i], a.Kind)
		}
	}
	return nil
}

var (
	tableMu sync.RWMutex
	table   = make(map[Hash]*Native)
)

// define registers a native at package init. Duplicate names and opcode
// collisions are programming errors and stop the process before any call is made.
func define(name string, returns Kind, args ...Kind) *Native {
	n := &Native{Name: name, Hash: HashOf(name), Args: args, Returns: returns}
	tableMu.Lock()
	defer tableMu.Unlock()
	if prev, ok := table[n.Hash]; ok {
		panic(fmt.Sprintf("native: opcode collision between %s and %s", prev.Name, name))
	}
	table[n.Hash] = n
	return n
}

func defineOut(name string, returns Kind, outs []Kind, args ...Kind) *Native {
	n := define(name, returns, args...)
	n.Outs = outs
	return n
}

// Lookup resolves an opcode received over the wire.
func Lookup(h Hash) (*Native, bool) {
	tableMu.RLock()
	defer tableMu.RUnlock()
	n, ok := table[h]
	return n, ok
}

// All returns every registered native sorted by name.
func All() []*Native {
	tableMu.RLock()
	out := make([]*Native, 0, len(table))
	for _, n := range table {
		out = append(out, n)
	}
	tableMu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Invoker performs synchronous calls into the simulation. Implementations
// never fail at the call site: transport problems surface as the void Value.
type Invoker interface {
	Invoke(n *Native, args ...Value) Value
}

// InvokerFunc adapts a function to Invoker.
type InvokerFunc func(n *Native, args ...Value) Value

func (f InvokerFunc) Invoke(n *Native, args ...Value) Value { return f(n, args...) }

// Call invokes n through inv, tolerating a nil invoker.
func Call(inv Invoker, n *Native, args ...Value) Value {
	if inv == nil {
		return Value{}
	}
	return inv.Invoke(n, args...)
}
