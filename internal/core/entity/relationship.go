package entity

import (
	"fmt"

	"github.com/zeusync/actorproxy/internal/core/native"
)

// Relationship is a disposition between two peds or two relationship groups,
// ordered from most to least friendly.
type Relationship int

const (
	Respect Relationship = iota + 1
	Like
	Neutral
	Dislike
	Hate
)

// rawCompanion is answered for peds in the same group.
const rawCompanion = 0

// normalizeRelationship folds raw answers into the five dispositions.
// Companion is as friendly as it gets; anything else unknown is neutral.
func normalizeRelationship(raw int) Relationship {
	switch {
	case raw >= int(Respect) && raw <= int(Hate):
		return Relationship(raw)
	case raw == rawCompanion:
		return Respect
	default:
		return Neutral
	}
}

func (r Relationship) String() string {
	switch r {
	case Respect:
		return "respect"
	case Like:
		return "like"
	case Neutral:
		return "neutral"
	case Dislike:
		return "dislike"
	case Hate:
		return "hate"
	default:
		return fmt.Sprintf("relationship(%d)", int(r))
	}
}

// ParseRelationship accepts the names String produces.
func ParseRelationship(s string) (Relationship, bool) {
	for r := Respect; r <= Hate; r++ {
		if r.String() == s {
			return r, true
		}
	}
	return 0, false
}

// RelationshipGroup is a named faction, identified by its hash.
type RelationshipGroup struct {
	rt   *Runtime
	hash uint32
}

// NewRelationshipGroup wraps an existing group hash.
func NewRelationshipGroup(rt *Runtime, hash uint32) RelationshipGroup {
	return RelationshipGroup{rt: rt, hash: hash}
}

// AddRelationshipGroup registers a new group in the simulation. When the
// simulation refuses, the returned group has hash 0.
func AddRelationshipGroup(rt *Runtime, name string) RelationshipGroup {
	v := rt.call(native.AddRelationshipGroup, native.String(name))
	if !v.AsBool() {
		return RelationshipGroup{rt: rt}
	}
	return RelationshipGroup{rt: rt, hash: v.OutAt(0).AsUint32()}
}

func (g RelationshipGroup) Hash() uint32 { return g.hash }

func (g RelationshipGroup) Equal(other RelationshipGroup) bool { return g.hash == other.hash }

func (g RelationshipGroup) value() native.Value { return native.Uint(g.hash) }

// RelationshipWith reports how this group regards other.
func (g RelationshipGroup) RelationshipWith(other RelationshipGroup) Relationship {
	raw := g.rt.call(native.GetRelationshipBetweenGroups, g.value(), other.value()).AsInt()
	return normalizeRelationship(raw)
}

// SetRelationshipBetweenGroups sets how this group regards other, and the
// reverse as well when bidirectional.
func (g RelationshipGroup) SetRelationshipBetweenGroups(other RelationshipGroup, rel Relationship, bidirectional bool) {
	g.rt.call(native.SetRelationshipBetweenGroups, native.Int(int(rel)), g.value(), other.value())
	if bidirectional {
		g.rt.call(native.SetRelationshipBetweenGroups, native.Int(int(rel)), other.value(), g.value())
	}
}

func (g RelationshipGroup) ClearRelationshipBetweenGroups(other RelationshipGroup, rel Relationship, bidirectional bool) {
	g.rt.call(native.ClearRelationshipBetweenGrps, native.Int(int(rel)), g.value(), other.value())
	if bidirectional {
		g.rt.call(native.ClearRelationshipBetweenGrps, native.Int(int(rel)), other.value(), g.value())
	}
}

// Remove unregisters the group from the simulation.
func (g RelationshipGroup) Remove() {
	g.rt.call(native.RemoveRelationshipGroup, g.value())
}
