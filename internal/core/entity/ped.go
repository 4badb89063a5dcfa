package entity

import (
	"github.com/zeusync/actorproxy/internal/core/euphoria"
	"github.com/zeusync/actorproxy/internal/core/native"
	"github.com/zeusync/actorproxy/internal/core/systems/physics"
	"github.com/zeusync/actorproxy/internal/core/tasks"
	"github.com/zeusync/actorproxy/internal/core/weapons"
)

// Ped is a proxy for one character. Unless a method says otherwise it is
// resolved through a remote call on every access.
type Ped struct {
	base

	tasks    *tasks.Tasks
	euphoria *euphoria.Euphoria
	weapons  *weapons.Collection
}

// NewPed wraps h. It makes no calls and does not check that h is a ped.
func NewPed(rt *Runtime, h Handle) *Ped {
	return &Ped{base: base{rt: rt, handle: h}}
}

func (p *Ped) Type() EntityType { return EntityTypePed }

// Task returns the ped's task module, creating it on first use.
func (p *Ped) Task() *tasks.Tasks {
	if p.tasks == nil {
		p.tasks = tasks.New(p, p.rt.scheduler(), p.rt.loadTimeout())
	}
	return p.tasks
}

// Euphoria returns the ped's physics-reaction module, creating it on first use.
func (p *Ped) Euphoria() *euphoria.Euphoria {
	if p.euphoria == nil {
		p.euphoria = euphoria.New(p)
	}
	return p.euphoria
}

// Weapons returns the ped's inventory, creating it on first use.
func (p *Ped) Weapons() *weapons.Collection {
	if p.weapons == nil {
		p.weapons = weapons.New(p)
	}
	return p.weapons
}

// clamp maps NaN to lo.
func clamp[T int | float64 | float32](v, lo, hi T) T {
	if v != v {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (p *Ped) Money() int { return p.call(native.GetPedMoney, p.self()).AsInt() }

func (p *Ped) SetMoney(v int) { p.call(native.SetPedMoney, p.self(), native.Int(v)) }

func (p *Ped) Gender() Gender {
	if p.is(native.IsPedMale) {
		return GenderMale
	}
	return GenderFemale
}

func (p *Ped) MaxHealth() int { return p.call(native.GetPedMaxHealth, p.self()).AsInt() }

func (p *Ped) SetMaxHealth(v int) { p.call(native.SetPedMaxHealth, p.self(), native.Int(v)) }

func (p *Ped) Armor() int { return p.call(native.GetPedArmour, p.self()).AsInt() }

func (p *Ped) SetArmor(v int) { p.call(native.SetPedArmour, p.self(), native.Int(v)) }

func (p *Ped) Accuracy() int { return p.call(native.GetPedAccuracy, p.self()).AsInt() }

// SetAccuracy clamps v to 0..100.
func (p *Ped) SetAccuracy(v int) {
	p.call(native.SetPedAccuracy, p.self(), native.Int(clamp(v, 0, 100)))
}

// TaskSequenceProgress is the step of the running sequence, or -1 when none runs.
func (p *Ped) TaskSequenceProgress() int {
	return p.call(native.GetSequenceProgress, p.self()).AsInt()
}

// SetSweat clamps v to 0..100. Reads go through Sweat.
func (p *Ped) SetSweat(v float32) {
	p.call(native.SetPedSweat, p.self(), native.Float32(clamp(v, 0, 100)))
}

// SetWetnessHeight clamps v to 0..1.99. A clamped height of zero dries the
// ped instead.
func (p *Ped) SetWetnessHeight(v float32) {
	h := clamp(v, 0, 1.99)
	if h == 0 {
		p.call(native.ClearPedWetness, p.self())
		return
	}
	p.call(native.SetPedWetnessHeight, p.self(), native.Float32(h))
}

func (p *Ped) SetVoice(name string) {
	p.call(native.SetAmbientVoiceName, p.self(), native.String(name))
}

// SetShootRate clamps v to 0..1000.
func (p *Ped) SetShootRate(v int) {
	p.call(native.SetPedShootRate, p.self(), native.Int(clamp(v, 0, 1000)))
}

func (p *Ped) SetStaysInVehicleWhenJacked(v bool) { p.set(native.SetPedStayInVehJacked, v) }

func (p *Ped) SetMaxDrivingSpeed(v float64) {
	p.call(native.SetDriveTaskMaxCruise, p.self(), native.Float(v))
}

func (p *Ped) SetDrivingSpeed(v float64) {
	p.call(native.SetDriveTaskCruiseSpeed, p.self(), native.Float(v))
}

func (p *Ped) SetDrivingStyle(s DrivingStyle) {
	p.call(native.SetDriveTaskDrivingStyle, p.self(), native.Int(int(s)))
}

func (p *Ped) SetFiringPattern(f FiringPattern) {
	p.call(native.SetPedFiringPattern, p.self(), native.Uint(uint32(f)))
}

func (p *Ped) ParachuteLandingType() ParachuteLandingType {
	return ParachuteLandingType(p.call(native.GetPedParachuteLanding, p.self()).AsInt())
}

func (p *Ped) ParachuteState() ParachuteState {
	return ParachuteState(p.call(native.GetPedParachuteState, p.self()).AsInt())
}

func (p *Ped) SetIsEnemy(v bool) { p.set(native.SetPedAsEnemy, v) }

func (p *Ped) SetIsPriorityTargetForEnemies(v bool) {
	p.call(native.SetEntityIsTargetPriority, p.self(), native.Bool(v), native.Float(0))
}

func (p *Ped) CanRagdoll() bool { return p.is(native.CanPedRagdoll) }

func (p *Ped) SetCanRagdoll(v bool) { p.set(native.SetPedCanRagdoll, v) }

func (p *Ped) SetCanPlayGestures(v bool) { p.set(native.SetPedCanPlayGestures, v) }

func (p *Ped) SetCanSwitchWeapons(v bool) { p.set(native.SetPedCanSwitchWeapon, v) }

func (p *Ped) SetCanWearHelmet(v bool) { p.set(native.SetPedHelmet, v) }

func (p *Ped) SetCanBeTargetted(v bool) { p.set(native.SetPedCanBeTargetted, v) }

func (p *Ped) SetCanBeShotInVehicle(v bool) { p.set(native.SetPedCanBeShotInVehicle, v) }

func (p *Ped) SetCanBeDraggedOutOfVehicle(v bool) { p.set(native.SetPedCanBeDraggedOut, v) }

func (p *Ped) SetCanBeKnockedOffBike(v bool) { p.set(native.SetPedCanBeKnockedOff, v) }

// SetBlockPermanentEvents makes the ped only do as it is told, ignoring
// threats it would otherwise react to.
func (p *Ped) SetBlockPermanentEvents(v bool) { p.set(native.SetBlockingOfNonTempEvts, v) }

func (p *Ped) SetAlwaysKeepTask(v bool) { p.set(native.SetPedKeepTask, v) }

func (p *Ped) SetAlwaysDiesOnLowHealth(v bool) { p.set(native.SetPedDiesWhenInjured, v) }

func (p *Ped) SetDrownsInWater(v bool) { p.set(native.SetPedDiesInWater, v) }

func (p *Ped) SetDrownsInSinkingVehicle(v bool) { p.set(native.SetPedDiesInSinkingVeh, v) }

func (p *Ped) SetDiesInstantlyInWater(v bool) { p.set(native.SetPedDiesInstantlyWater, v) }

func (p *Ped) SetNeverLeavesGroup(v bool) { p.set(native.SetPedNeverLeavesGroup, v) }

func (p *Ped) SetDropsWeaponsOnDeath(v bool) { p.set(native.SetPedDropsWeaponsDead, v) }

func (p *Ped) SetCanSufferCriticalHits(v bool) { p.set(native.SetPedSuffersCritHits, v) }

// Kill drops health below zero.
func (p *Ped) Kill() { p.SetHealth(-1) }

func (p *Ped) ApplyDamage(amount int) {
	p.call(native.ApplyDamageToPed, p.self(), native.Int(amount), native.Bool(true))
}

func (p *Ped) ResetVisibleDamage() { p.call(native.ResetPedVisibleDamage, p.self()) }

func (p *Ped) ClearBloodDamage() { p.call(native.ClearPedBloodDamage, p.self()) }

func (p *Ped) RandomizeOutfit() { p.set(native.SetPedRandomComponentVar, false) }

func (p *Ped) SetDefaultClothes() { p.call(native.SetPedDefaultComponentVar, p.self()) }

// GiveHelmet puts a helmet on. The simulation takes the opposite flag
// ("cannot be removed"), so canBeRemoved is inverted on the wire.
func (p *Ped) GiveHelmet(canBeRemoved bool, t HelmetType, textureIndex int) {
	p.call(native.GivePedHelmet, p.self(), native.Bool(!canBeRemoved), native.Uint(uint32(t)), native.Int(textureIndex))
}

func (p *Ped) RemoveHelmet(instantly bool) { p.set(native.RemovePedHelmet, instantly) }

func (p *Ped) OpenParachute() { p.call(native.ForcePedToOpenParachute, p.self()) }

func (p *Ped) BoneIndex(b Bone) int {
	return p.call(native.GetPedBoneIndex, p.self(), native.Int(int(b))).AsInt()
}

// BoneCoord is the world position of bone b, displaced by offset in the bone's frame.
func (p *Ped) BoneCoord(b Bone, offset physics.Vec3) physics.Vec3 {
	x, y, z := p.call(native.GetPedBoneCoords, p.self(), native.Int(int(b)),
		native.Float(offset.X), native.Float(offset.Y), native.Float(offset.Z)).AsVector3()
	return physics.V3(x, y, z)
}

// LastWeaponImpactPosition is the zero vector when the ped has not hit anything.
func (p *Ped) LastWeaponImpactPosition() physics.Vec3 {
	v := p.call(native.GetPedLastWeaponImpact, p.self())
	if !v.AsBool() {
		return physics.Zero
	}
	x, y, z := v.OutAt(0).AsVector3()
	return physics.V3(x, y, z)
}

// Clone spawns a copy of the ped facing heading degrees.
func (p *Ped) Clone(heading float64) *Ped {
	h := p.call(native.ClonePed, p.self(), native.Float(heading), native.Bool(false), native.Bool(false)).AsInt32()
	return NewPed(p.rt, Handle(h))
}

// Jacker is the ped stealing this ped's vehicle. The proxy may not exist.
func (p *Ped) Jacker() *Ped {
	return NewPed(p.rt, Handle(p.call(native.GetPedsJacker, p.self()).AsInt32()))
}

// JackTarget is the ped this ped is jacking. The proxy may not exist.
func (p *Ped) JackTarget() *Ped {
	return NewPed(p.rt, Handle(p.call(native.GetJackTarget, p.self()).AsInt32()))
}

// MeleeTarget is the ped this ped is fighting hand to hand. The proxy may not exist.
func (p *Ped) MeleeTarget() *Ped {
	return NewPed(p.rt, Handle(p.call(native.GetMeleeTargetForPed, p.self()).AsInt32()))
}

// Killer resolves whatever killed the ped, or nil.
func (p *Ped) Killer() Entity {
	return ResolveEntity(p.rt, Handle(p.call(native.GetPedKiller, p.self()).AsInt32()))
}
