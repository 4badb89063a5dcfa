package entity

import "github.com/zeusync/actorproxy/internal/core/native"

func (p *Ped) WasKilledByStealth() bool { return p.is(native.WasPedKilledByStealth) }

func (p *Ped) WasKilledByTakedown() bool { return p.is(native.WasPedKilledByTakedown) }

func (p *Ped) IsJumpingOutOfVehicle() bool { return p.is(native.IsPedJumpingOutOfVehicle) }

func (p *Ped) IsHuman() bool { return p.is(native.IsPedHuman) }

func (p *Ped) IsPlayer() bool { return p.is(native.IsPedAPlayer) }

func (p *Ped) IsCuffed() bool { return p.is(native.IsPedCuffed) }

func (p *Ped) IsWearingHelmet() bool { return p.is(native.IsPedWearingHelmet) }

func (p *Ped) IsRagdoll() bool { return p.is(native.IsPedRagdoll) }

func (p *Ped) IsProne() bool { return p.is(native.IsPedProne) }

func (p *Ped) IsDucking() bool { return p.is(native.IsPedDucking) }

func (p *Ped) SetDucking(v bool) { p.set(native.SetPedDucking, v) }

func (p *Ped) IsGettingUp() bool { return p.is(native.IsPedGettingUp) }

func (p *Ped) IsClimbing() bool { return p.is(native.IsPedClimbing) }

func (p *Ped) IsJumping() bool { return p.is(native.IsPedJumping) }

func (p *Ped) IsFalling() bool { return p.is(native.IsPedFalling) }

func (p *Ped) IsStopped() bool { return p.is(native.IsPedStopped) }

func (p *Ped) IsWalking() bool { return p.is(native.IsPedWalking) }

func (p *Ped) IsRunning() bool { return p.is(native.IsPedRunning) }

func (p *Ped) IsSprinting() bool { return p.is(native.IsPedSprinting) }

func (p *Ped) IsDiving() bool { return p.is(native.IsPedDiving) }

func (p *Ped) IsInParachuteFreeFall() bool { return p.is(native.IsPedInParachuteFreeFall) }

func (p *Ped) IsSwimming() bool { return p.is(native.IsPedSwimming) }

func (p *Ped) IsSwimmingUnderWater() bool { return p.is(native.IsPedSwimmingUnderWater) }

func (p *Ped) IsVaulting() bool { return p.is(native.IsPedVaulting) }

func (p *Ped) IsOnBike() bool { return p.is(native.IsPedOnAnyBike) }

func (p *Ped) IsOnFoot() bool { return p.is(native.IsPedOnFoot) }

func (p *Ped) IsInSub() bool { return p.is(native.IsPedInAnySub) }

func (p *Ped) IsInTaxi() bool { return p.is(native.IsPedInAnyTaxi) }

func (p *Ped) IsInTrain() bool { return p.is(native.IsPedInAnyTrain) }

func (p *Ped) IsInHeli() bool { return p.is(native.IsPedInAnyHeli) }

func (p *Ped) IsInPlane() bool { return p.is(native.IsPedInAnyPlane) }

func (p *Ped) IsInFlyingVehicle() bool { return p.is(native.IsPedInFlyingVehicle) }

func (p *Ped) IsInBoat() bool { return p.is(native.IsPedInAnyBoat) }

func (p *Ped) IsInPoliceVehicle() bool { return p.is(native.IsPedInAnyPoliceVehicle) }

func (p *Ped) IsJacking() bool { return p.is(native.IsPedJacking) }

func (p *Ped) IsBeingJacked() bool { return p.is(native.IsPedBeingJacked) }

func (p *Ped) IsGettingIntoVehicle() bool { return p.is(native.IsPedGettingIntoAVehicle) }

func (p *Ped) IsTryingToEnterLockedVehicle() bool { return p.is(native.IsPedTryingToEnterLockedVeh) }

func (p *Ped) IsInjured() bool { return p.is(native.IsPedInjured) }

func (p *Ped) IsFleeing() bool { return p.is(native.IsPedFleeing) }

// IsInCombat reports combat against anyone.
func (p *Ped) IsInCombat() bool {
	return p.call(native.IsPedInCombat, p.self(), native.Handle(0)).AsBool()
}

func (p *Ped) IsInCombatAgainst(target *Ped) bool {
	return p.call(native.IsPedInCombat, p.self(), handleOf(target)).AsBool()
}

func (p *Ped) IsInMeleeCombat() bool { return p.is(native.IsPedInMeleeCombat) }

func (p *Ped) IsShooting() bool { return p.is(native.IsPedShooting) }

func (p *Ped) IsReloading() bool { return p.is(native.IsPedReloading) }

func (p *Ped) IsDoingDriveBy() bool { return p.is(native.IsPedDoingDriveBy) }

func (p *Ped) IsGoingIntoCover() bool { return p.is(native.IsPedGoingIntoCover) }

func (p *Ped) IsBeingStunned() bool { return p.is(native.IsPedBeingStunned) }

func (p *Ped) IsBeingStealthKilled() bool { return p.is(native.IsPedBeingStealthKilled) }

func (p *Ped) IsPerformingStealthKill() bool { return p.is(native.IsPedPerformingStealthKill) }

func (p *Ped) IsAimingFromCover() bool { return p.is(native.IsPedAimingFromCover) }

// IsInCover reports cover use; expectUseWeapon narrows it to cover the ped
// intends to fire from.
func (p *Ped) IsInCover(expectUseWeapon bool) bool {
	return p.call(native.IsPedInCover, p.self(), native.Bool(expectUseWeapon)).AsBool()
}

func (p *Ped) IsInCoverFacingLeft() bool { return p.is(native.IsPedInCoverFacingLeft) }

// IsInVehicle reports whether the ped is in any vehicle, including while
// entering or leaving it.
func (p *Ped) IsInVehicle() bool {
	return p.call(native.IsPedInAnyVehicle, p.self(), native.Bool(false)).AsBool()
}

func (p *Ped) IsInSpecificVehicle(v *Vehicle) bool {
	return p.call(native.IsPedInVehicle, p.self(), handleOf(v), native.Bool(false)).AsBool()
}

func (p *Ped) IsSittingInVehicle() bool { return p.is(native.IsPedSittingInAnyVehicle) }

func (p *Ped) IsSittingInSpecificVehicle(v *Vehicle) bool {
	return p.call(native.IsPedSittingInVehicle, p.self(), handleOf(v)).AsBool()
}

func (p *Ped) IsHeadtracking(e Entity) bool {
	return p.call(native.IsPedHeadtrackingEntity, p.self(), handleOf(e)).AsBool()
}

// IsIdle holds when the ped is doing nothing notable: not hurt, airborne,
// burning, crouched, fighting or getting into a vehicle, and either on foot
// or sitting in a vehicle.
func (p *Ped) IsIdle() bool {
	return !p.IsInjured() &&
		!p.IsRagdoll() &&
		!p.IsInAir() &&
		!p.IsOnFire() &&
		!p.IsDucking() &&
		!p.IsGettingIntoVehicle() &&
		!p.IsInCombat() &&
		!p.IsInMeleeCombat() &&
		(!p.IsInVehicle() || p.IsSittingInVehicle())
}

// LastVehicle is nil when the vehicle no longer exists.
func (p *Ped) LastVehicle() *Vehicle {
	h := Handle(p.call(native.GetVehiclePedIsIn, p.self(), native.Bool(true)).AsInt32())
	if !p.rt.call(native.DoesEntityExist, h.value()).AsBool() {
		return nil
	}
	return NewVehicle(p.rt, h)
}

// CurrentVehicle is nil when the ped is not in a vehicle.
func (p *Ped) CurrentVehicle() *Vehicle {
	if !p.IsInVehicle() {
		return nil
	}
	return NewVehicle(p.rt, Handle(p.call(native.GetVehiclePedIsIn, p.self(), native.Bool(false)).AsInt32()))
}

// VehicleTryingToEnter is nil when the ped is not entering anything.
func (p *Ped) VehicleTryingToEnter() *Vehicle {
	h := Handle(p.call(native.GetVehiclePedIsTryingEnter, p.self()).AsInt32())
	if h == 0 || !p.rt.call(native.DoesEntityExist, h.value()).AsBool() {
		return nil
	}
	return NewVehicle(p.rt, h)
}

// SetIntoVehicle teleports the ped into seat.
func (p *Ped) SetIntoVehicle(v *Vehicle, seat VehicleSeat) {
	p.call(native.SetPedIntoVehicle, p.self(), handleOf(v), native.Int(int(seat)))
}
