package entity

// Prop is a proxy for a world object that is neither a ped nor a vehicle.
type Prop struct {
	base
}

// NewProp wraps h. It makes no calls.
func NewProp(rt *Runtime, h Handle) *Prop {
	return &Prop{base: base{rt: rt, handle: h}}
}

func (p *Prop) Type() EntityType { return EntityTypeProp }
