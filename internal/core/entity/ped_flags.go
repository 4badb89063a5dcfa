package entity

import "github.com/zeusync/actorproxy/internal/core/native"

// Config flag indices with a named accessor.
const (
	FlagCanFlyThroughWindscreen = 32
	FlagCannotWrithe            = 281
)

// ConfigFlag reads a per-ped behaviour flag. Flags are never cached.
func (p *Ped) ConfigFlag(index int) bool {
	return p.call(native.GetPedConfigFlag, p.self(), native.Int(index), native.Bool(true)).AsBool()
}

func (p *Ped) SetConfigFlag(index int, v bool) {
	p.call(native.SetPedConfigFlag, p.self(), native.Int(index), native.Bool(v))
}

// ResetConfigFlag sets a reset flag, which the simulation clears again on its
// own after one frame. This is not the same as SetConfigFlag(index, false).
func (p *Ped) ResetConfigFlag(index int) {
	p.call(native.SetPedResetFlag, p.self(), native.Int(index), native.Bool(true))
}

func (p *Ped) CanFlyThroughWindscreen() bool {
	return p.ConfigFlag(FlagCanFlyThroughWindscreen)
}

func (p *Ped) SetCanFlyThroughWindscreen(v bool) {
	p.SetConfigFlag(FlagCanFlyThroughWindscreen, v)
}

// CanWrithe is stored inverted: the flag being set means the ped cannot writhe.
func (p *Ped) CanWrithe() bool {
	return !p.ConfigFlag(FlagCannotWrithe)
}

func (p *Ped) SetCanWrithe(v bool) {
	p.SetConfigFlag(FlagCannotWrithe, !v)
}
