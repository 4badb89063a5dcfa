package entity

import "github.com/zeusync/actorproxy/internal/core/native"

// ResolveEntity wraps h in the proxy kind the simulation reports for it. It
// returns nil when h does not exist or its kind is unknown.
func ResolveEntity(rt *Runtime, h Handle) Entity {
	if !rt.call(native.DoesEntityExist, h.value()).AsBool() {
		return nil
	}
	switch EntityType(rt.call(native.GetEntityType, h.value()).AsInt()) {
	case EntityTypePed:
		return NewPed(rt, h)
	case EntityTypeVehicle:
		return NewVehicle(rt, h)
	case EntityTypeProp:
		return NewProp(rt, h)
	default:
		return nil
	}
}
