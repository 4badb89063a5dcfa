// Package sim is an in-memory stand-in for the simulation host. It answers the
// native table and serves actor records laid out per memory.Layout, so proxies
// can be driven end to end without the real process.
package sim

import (
	"sync"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/zeusync/actorproxy/internal/core/memory"
	"github.com/zeusync/actorproxy/internal/core/native"
	"github.com/zeusync/actorproxy/internal/core/observability/log"
	"github.com/zeusync/actorproxy/internal/core/systems/physics"
	"github.com/zeusync/actorproxy/internal/core/weapons"
)

var (
	_ native.Invoker = (*Host)(nil)
	_ memory.Reader  = (*Host)(nil)
)

// Object types as reported by GET_ENTITY_TYPE.
const (
	TypePed     = 1
	TypeVehicle = 2
	TypeProp    = 3
)

// recordShift spaces records so every handle owns a 64 KiB window.
const recordShift = 16

// Object is the host-side state of one simulation object. Ped-only and
// vehicle-only fields stay at their zero values on other types.
type Object struct {
	Handle    int32
	Type      int
	Model     uint32
	Position  physics.Vec3
	Health    int
	MaxHealth int
	Dead      bool

	Male         bool
	Money        int
	Armour       int
	Accuracy     int
	Sweat        int32
	DropsWeapons bool
	CriticalHits bool
	CanRagdoll   bool
	Wetness      float64
	Voice        string
	ShootRate    int
	Firing       uint32

	ParachuteState   int
	ParachuteLanding int

	// State answers boolean queries by native name.
	State map[string]bool
	// Toggles remembers the last value of boolean setters by native name.
	Toggles    map[string]bool
	Flags      map[int]bool
	ResetFlags map[int]bool
	// Actions lists effect-only natives applied to the object, in order.
	Actions []string

	Vehicle         int32
	LastVehicle     int32
	EnteringVehicle int32
	Seat            int

	RelationshipGroup uint32
	Group             int32
	Clipset           string

	Killer       int32
	Jacker       int32
	JackTarget   int32
	MeleeTarget  int32
	CombatTarget int32
	HeadTracking int32
	Impact       *physics.Vec3

	Task     string
	Sequence int
	Messages []string

	Weapons  map[uint32]int
	Selected uint32

	Seats     map[int]int32
	SeatCount int
}

func newObject(handle int32, typ int, model uint32) *Object {
	return &Object{
		Handle:           handle,
		Type:             typ,
		Model:            model,
		Health:           200,
		MaxHealth:        200,
		CanRagdoll:       true,
		DropsWeapons:     true,
		CriticalHits:     true,
		Accuracy:         50,
		ParachuteState:   -1,
		ParachuteLanding: -1,
		Sequence:         -1,
		Seat:             -3,
		State:            make(map[string]bool),
		Toggles:          make(map[string]bool),
		Flags:            make(map[int]bool),
		ResetFlags:       make(map[int]bool),
		Weapons:          make(map[uint32]int),
		Selected:         uint32(weapons.Unarmed),
		Seats:            make(map[int]int32),
	}
}

func (o *Object) isPed() bool { return o != nil && o.Type == TypePed }

type group struct {
	leader     int32
	members    map[int32]bool
	separation float64
	formation  int
}

type resource struct {
	requested bool
	resident  bool
	polls     int
}

type relationKey struct{ from, to uint32 }

// nmMessage is the physics-reaction message being assembled between
// CREATE_NM_MESSAGE and GIVE_PED_NM_MESSAGE.
type nmMessage struct {
	start  bool
	name   string
	params map[string]any
}

type Option func(*Host)

func WithLogger(l log.Log) Option {
	return func(h *Host) {
		if l != nil {
			h.log = l
		}
	}
}

// WithLayout selects the record layout served through the Reader side.
func WithLayout(l *memory.Layout) Option {
	return func(h *Host) {
		if l != nil {
			h.layout = l
		}
	}
}

// WithLoadDelay sets how many readiness polls a requested resource needs
// before it reports loaded. A negative delay means resources never load.
func WithLoadDelay(polls int) Option {
	return func(h *Host) { h.loadDelay = polls }
}

// Host is the reference simulation. Calls run one at a time, as on the
// simulation's main thread; record reads take the same lock.
type Host struct {
	mu        sync.Mutex
	log       log.Log
	layout    *memory.Layout
	loadDelay int

	nextHandle atomic.Int32
	nextGroup  atomic.Int32

	objects   *xsync.MapOf[int32, *Object]
	groups    *xsync.MapOf[int32, *group]
	relGroups *xsync.MapOf[uint32, string]
	relations *xsync.MapOf[relationKey, int]
	resources *xsync.MapOf[string, *resource]

	pending *nmMessage
	calls   atomic.Uint64
}

func New(opts ...Option) *Host {
	h := &Host{
		log:       log.NewNop(),
		layout:    memory.DefaultLayout(),
		objects:   xsync.NewMapOf[int32, *Object](),
		groups:    xsync.NewMapOf[int32, *group](),
		relGroups: xsync.NewMapOf[uint32, string](),
		relations: xsync.NewMapOf[relationKey, int](),
		resources: xsync.NewMapOf[string, *resource](),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.With(log.String("component", "sim"))
	return h
}

// Calls is the number of natives invoked so far.
func (h *Host) Calls() uint64 { return h.calls.Load() }

// SetLoadDelay changes the load delay for resources polled from now on.
func (h *Host) SetLoadDelay(polls int) {
	h.mu.Lock()
	h.loadDelay = polls
	h.mu.Unlock()
}

func (h *Host) spawn(typ int, model uint32) *Object {
	o := newObject(h.nextHandle.Add(1), typ, model)
	h.objects.Store(o.Handle, o)
	return o
}

// SpawnPed creates a ped and returns its handle.
func (h *Host) SpawnPed(model uint32, male bool, pos physics.Vec3) int32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	o := h.spawn(TypePed, model)
	o.Male = male
	o.Position = pos
	return o.Handle
}

// SpawnVehicle creates a vehicle with the given number of passenger seats
// besides the driver's.
func (h *Host) SpawnVehicle(model uint32, passengerSeats int, pos physics.Vec3) int32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	o := h.spawn(TypeVehicle, model)
	o.Position = pos
	o.SeatCount = passengerSeats
	o.Health, o.MaxHealth = 1000, 1000
	return o.Handle
}

func (h *Host) SpawnProp(model uint32, pos physics.Vec3) int32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	o := h.spawn(TypeProp, model)
	o.Position = pos
	return o.Handle
}

// Despawn removes an object the way the simulation does when it streams
// something out. Handles are not reused.
func (h *Host) Despawn(handle int32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(handle)
}

func (h *Host) remove(handle int32) {
	o, ok := h.objects.LoadAndDelete(handle)
	if !ok {
		return
	}
	if o.Vehicle != 0 {
		h.unseat(o)
	}
	if o.Group != 0 {
		h.leaveGroup(o)
	}
}

// Mutate runs fn against the object under the call lock. It reports false
// when the handle does not exist.
func (h *Host) Mutate(handle int32, fn func(*Object)) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	o, ok := h.objects.Load(handle)
	if !ok {
		return false
	}
	fn(o)
	return true
}

// Handles lists live objects of the given type, or of every type for 0.
func (h *Host) Handles(typ int) []int32 {
	var out []int32
	h.objects.Range(func(k int32, o *Object) bool {
		if typ == 0 || o.Type == typ {
			out = append(out, k)
		}
		return true
	})
	return out
}

// SetResourceLoaded marks a streamed resource as already resident.
func (h *Host) SetResourceLoaded(kind, name string) {
	h.resources.Store(kind+":"+name, &resource{requested: true, resident: true})
}

func (h *Host) object(v native.Value) (*Object, bool) {
	return h.objects.Load(v.AsInt32())
}

func (h *Host) ped(v native.Value) (*Object, bool) {
	o, ok := h.object(v)
	if !ok || !o.isPed() {
		return nil, false
	}
	return o, true
}
