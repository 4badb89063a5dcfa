package entity

import "github.com/zeusync/actorproxy/internal/core/native"

// Formation is how group members arrange around the leader.
type Formation int

const (
	FormationDefault Formation = iota
	FormationCircleAroundLeader
	FormationAlternativeCircle
	FormationLineWithLeaderAtCenter
)

// PedGroup is a squad with one leader. It wraps the simulation's group index.
type PedGroup struct {
	rt     *Runtime
	handle int32
}

// NewPedGroup wraps an existing group index. It makes no calls.
func NewPedGroup(rt *Runtime, handle int32) *PedGroup {
	return &PedGroup{rt: rt, handle: handle}
}

// CreatePedGroup allocates a new group in the simulation.
func CreatePedGroup(rt *Runtime) *PedGroup {
	return NewPedGroup(rt, rt.call(native.CreateGroup, native.Int(0)).AsInt32())
}

func (g *PedGroup) Handle() int32 { return g.handle }

func (g *PedGroup) Equal(other *PedGroup) bool {
	return other != nil && g.handle == other.handle
}

func (g *PedGroup) self() native.Value { return native.Handle(g.handle) }

func (g *PedGroup) Exists() bool {
	return g.rt.call(native.DoesGroupExist, g.self()).AsBool()
}

// Size counts members, leader excluded.
func (g *PedGroup) Size() int {
	return g.rt.call(native.GetGroupSize, g.self()).AsInt()
}

// Leader is nil when the group has none.
func (g *PedGroup) Leader() *Ped {
	h := g.rt.call(native.GetPedAsGroupLeader, g.self()).AsInt32()
	if h == 0 {
		return nil
	}
	return NewPed(g.rt, Handle(h))
}

// Add puts p into the group, as its leader when leader is true.
func (g *PedGroup) Add(p *Ped, leader bool) {
	if leader {
		g.rt.call(native.SetPedAsGroupLeader, handleOf(p), g.self())
		return
	}
	g.rt.call(native.SetPedAsGroupMember, handleOf(p), g.self())
}

func (g *PedGroup) Remove(p *Ped) {
	g.rt.call(native.RemovePedFromGroup, handleOf(p))
}

func (g *PedGroup) Contains(p *Ped) bool {
	return g.rt.call(native.IsPedGroupMember, handleOf(p), g.self()).AsBool()
}

func (g *PedGroup) SetSeparationRange(r float64) {
	g.rt.call(native.SetGroupSeparationRange, g.self(), native.Float(r))
}

func (g *PedGroup) SetFormation(f Formation) {
	g.rt.call(native.SetGroupFormation, g.self(), native.Int(int(f)))
}

// Delete frees the group. Members are released, not deleted.
func (g *PedGroup) Delete() {
	g.rt.call(native.RemoveGroup, g.self())
}
