package entity

import "github.com/zeusync/actorproxy/internal/core/native"

// RelationshipTo is how this ped regards other, always one of the five dispositions.
func (p *Ped) RelationshipTo(other *Ped) Relationship {
	raw := p.call(native.GetRelationshipBetweenPeds, p.self(), handleOf(other)).AsInt()
	return normalizeRelationship(raw)
}

func (p *Ped) RelationshipGroup() RelationshipGroup {
	return NewRelationshipGroup(p.rt, p.call(native.GetPedRelationshipGroupHash, p.self()).AsUint32())
}

func (p *Ped) SetRelationshipGroup(g RelationshipGroup) {
	p.call(native.SetPedRelationshipGroupHash, p.self(), g.value())
}

func (p *Ped) IsInGroup() bool { return p.is(native.IsPedInGroup) }

// Group is nil when the ped belongs to none.
func (p *Ped) Group() *PedGroup {
	if !p.IsInGroup() {
		return nil
	}
	return NewPedGroup(p.rt, p.call(native.GetPedGroupIndex, p.self()).AsInt32())
}

func (p *Ped) LeaveGroup() { p.call(native.RemovePedFromGroup, p.self()) }
