// Package registry indexes schema.Meta records by type name, format code,
// and descriptor, so the schema decoder and factory package can resolve a
// parsed stream.Node to the Meta that describes how to build its value
// (spec §3.3, §9 "Registry as global state").
package registry

import (
	"sync"

	"github.com/sousouindustries/amqptype/errs"
	"github.com/sousouindustries/amqptype/format"
	"github.com/sousouindustries/amqptype/internal/collision"
	"github.com/sousouindustries/amqptype/internal/hash"
	"github.com/sousouindustries/amqptype/internal/options"
	"github.com/sousouindustries/amqptype/schema"
)

// Registry indexes schema.Meta records for lookup by type name, primitive
// format code, and descriptor (symbolic or numeric).
//
// Lookups during normal operation do not need the lock in practice — a
// Registry is built once at load time and read thereafter, the same
// load-then-freeze lifecycle the format package's tables follow — but the
// mutex is kept so a caller that does reload a schema at runtime does not
// race a concurrent decode.
type Registry struct {
	mu sync.RWMutex

	byTypeName map[uint64]*schema.Meta
	byCode     map[format.Code]*schema.Meta
	bySymbolic map[uint64]*schema.Meta
	byNumeric  map[uint64]*schema.Meta

	// typeNameHashes and symbolicHashes detect a distinct type name or
	// symbolic descriptor hashing to an already-used key (spec §9
	// "Registry as global state": the hash-as-key design trades an
	// astronomically unlikely collision for O(1) lookups, so Register
	// reports rather than silently overwrites one).
	typeNameHashes *collision.Tracker
	symbolicHashes *collision.Tracker
}

// New creates an empty Registry, applying any Option (e.g. WithCapacity)
// in order.
func New(opts ...Option) *Registry {
	r := &Registry{
		byTypeName:     make(map[uint64]*schema.Meta),
		byCode:         make(map[format.Code]*schema.Meta),
		bySymbolic:     make(map[uint64]*schema.Meta),
		byNumeric:      make(map[uint64]*schema.Meta),
		typeNameHashes: collision.NewTracker(),
		symbolicHashes: collision.NewTracker(),
	}
	// Option.apply never fails (every Option here is built via
	// options.NoError), so the error return of Apply cannot fire.
	_ = options.Apply(r, opts...)
	return r
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide convenience Registry. It is lazily
// created on first use (spec §9 "Registry as global state" — global state
// is opt-in: a caller that wants isolation constructs its own Registry via
// New and never touches Default).
func Default() *Registry {
	defaultOnce.Do(func() { defaultReg = New() })
	return defaultReg
}

// Register installs meta under every index it can populate: its type
// name always, the format code of each of its encodings (a later
// registration with the same code replaces the earlier one), and its
// descriptor if it carries a symbolic or numeric form. Re-registering a type name replaces the previous entry.
func (r *Registry) Register(meta *schema.Meta) error {
	if meta == nil {
		return errs.NewValidationError(errs.KindInvalid, "meta", "cannot register a nil Meta")
	}
	if meta.TypeName == "" {
		return errs.NewValidationError(errs.KindInvalid, "meta.TypeName", "cannot register a Meta with an empty type name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	typeNameHash := hash.ID(meta.TypeName)
	if err := r.typeNameHashes.Track(meta.TypeName, typeNameHash); err != nil {
		return err
	}
	r.byTypeName[typeNameHash] = meta

	for _, enc := range meta.Encodings {
		r.byCode[enc.Code] = meta
	}

	if meta.Descriptor != nil {
		if meta.Descriptor.HasSymbolic {
			symbolicHash := hash.ID(meta.Descriptor.Symbolic)
			if err := r.symbolicHashes.Track(meta.Descriptor.Symbolic, symbolicHash); err != nil {
				return err
			}
			r.bySymbolic[symbolicHash] = meta
		}
		if meta.Descriptor.HasNumeric {
			r.byNumeric[meta.Descriptor.Numeric] = meta
		}
	}

	return nil
}

// ByTypeName resolves a registered type by its declared name.
func (r *Registry) ByTypeName(name string) (*schema.Meta, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.byTypeName[hash.ID(name)]
	return m, ok
}

// ByFormatCode resolves a primitive Meta by one of its wire format codes.
func (r *Registry) ByFormatCode(code format.Code) (*schema.Meta, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.byCode[code]
	return m, ok
}

// ByDescriptor resolves a composite or restricted Meta by descriptor,
// preferring the symbolic form when d carries both (matching
// constructor.EncodeDescriptor's symbolic-first encode order).
func (r *Registry) ByDescriptor(d *schema.Descriptor) (*schema.Meta, bool) {
	if d == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if d.HasSymbolic {
		if m, ok := r.bySymbolic[hash.ID(d.Symbolic)]; ok {
			return m, true
		}
	}
	if d.HasNumeric {
		if m, ok := r.byNumeric[d.Numeric]; ok {
			return m, true
		}
	}
	return nil, false
}
