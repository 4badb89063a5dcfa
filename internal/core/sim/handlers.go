package sim

import (
	"sort"

	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/actorproxy/internal/core/native"
	"github.com/zeusync/actorproxy/internal/core/systems/physics"
	"github.com/zeusync/actorproxy/internal/core/weapons"
)

// Seat numbers as the simulation uses them.
const (
	seatAny    = -2
	seatDriver = -1
	seatNone   = -3
)

// noRelationship is what the simulation answers for peds whose groups have
// no relationship set.
const noRelationship = 255

var handlers map[*native.Native]handler

func init() {
	handlers = map[*native.Native]handler{
		native.DoesEntityExist: func(h *Host, args []native.Value) native.Value {
			_, ok := h.object(args[0])
			return native.Bool(ok)
		},
		native.GetEntityType: func(h *Host, args []native.Value) native.Value {
			o, ok := h.object(args[0])
			if !ok {
				return native.Int(0)
			}
			return native.Int(o.Type)
		},
		native.GetEntityModel: onObject(func(_ *Host, o *Object, _ []native.Value) native.Value {
			return native.Uint(o.Model)
		}),
		native.GetEntityHealth: onObject(func(_ *Host, o *Object, _ []native.Value) native.Value {
			return native.Int(o.Health)
		}),
		native.SetEntityHealth: onObject(func(_ *Host, o *Object, args []native.Value) native.Value {
			o.setHealth(args[1].AsInt())
			return native.Void()
		}),
		native.GetEntityMaxHealth: onObject(func(_ *Host, o *Object, _ []native.Value) native.Value {
			return native.Int(o.MaxHealth)
		}),
		native.SetEntityMaxHealth: onObject(func(_ *Host, o *Object, args []native.Value) native.Value {
			o.MaxHealth = args[1].AsInt()
			return native.Void()
		}),
		native.GetEntityCoords: onObject(func(_ *Host, o *Object, _ []native.Value) native.Value {
			return native.Vector3(o.Position.X, o.Position.Y, o.Position.Z)
		}),
		native.IsEntityDead: func(h *Host, args []native.Value) native.Value {
			o, ok := h.object(args[0])
			return native.Bool(ok && o.Dead)
		},
		native.DeleteEntity: func(h *Host, args []native.Value) native.Value {
			h.remove(args[0].AsInt32())
			return native.Void()
		},
		native.SetEntityIsTargetPriority: onObject(func(_ *Host, o *Object, args []native.Value) native.Value {
			o.Toggles[native.SetEntityIsTargetPriority.Name] = args[1].AsBool()
			return native.Void()
		}),

		native.GetPedMoney:     pedInt(func(o *Object) int { return o.Money }),
		native.SetPedMoney:     pedSetInt(func(o *Object, v int) { o.Money = v }),
		native.GetPedMaxHealth: pedInt(func(o *Object) int { return o.MaxHealth }),
		native.SetPedMaxHealth: pedSetInt(func(o *Object, v int) { o.MaxHealth = v }),
		native.GetPedArmour:    pedInt(func(o *Object) int { return o.Armour }),
		native.SetPedArmour:    pedSetInt(func(o *Object, v int) { o.Armour = v }),
		native.GetPedAccuracy:  pedInt(func(o *Object) int { return o.Accuracy }),
		native.SetPedAccuracy:  pedSetInt(func(o *Object, v int) { o.Accuracy = v }),
		native.SetPedShootRate: pedSetInt(func(o *Object, v int) { o.ShootRate = v }),
		native.SetPedFiringPattern: pedSetInt(func(o *Object, v int) {
			o.Firing = uint32(int32(v))
		}),
		native.GetSequenceProgress:    pedInt(func(o *Object) int { return o.Sequence }),
		native.GetPedParachuteLanding: pedInt(func(o *Object) int { return o.ParachuteLanding }),
		native.GetPedParachuteState:   pedInt(func(o *Object) int { return o.ParachuteState }),
		native.IsPedMale: func(h *Host, args []native.Value) native.Value {
			o, ok := h.ped(args[0])
			return native.Bool(ok && o.Male)
		},
		native.SetPedSweat: onPed(func(_ *Host, o *Object, args []native.Value) native.Value {
			o.Sweat = int32(args[1].AsFloat())
			return native.Void()
		}),
		native.SetPedWetnessHeight: onPed(func(_ *Host, o *Object, args []native.Value) native.Value {
			o.Wetness = args[1].AsFloat()
			return native.Void()
		}),
		native.ClearPedWetness: onPed(func(_ *Host, o *Object, _ []native.Value) native.Value {
			o.Wetness = 0
			return native.Void()
		}),
		native.SetAmbientVoiceName: onPed(func(_ *Host, o *Object, args []native.Value) native.Value {
			o.Voice = args[1].AsString()
			return native.Void()
		}),
		native.SetPedDropsWeaponsDead: pedSetBool(func(o *Object, v bool) { o.DropsWeapons = v }),
		native.SetPedSuffersCritHits:  pedSetBool(func(o *Object, v bool) { o.CriticalHits = v }),
		native.SetPedCanRagdoll:       pedSetBool(func(o *Object, v bool) { o.CanRagdoll = v }),
		native.CanPedRagdoll: func(h *Host, args []native.Value) native.Value {
			o, ok := h.ped(args[0])
			return native.Bool(ok && o.CanRagdoll)
		},
		native.SetPedDucking: pedState(native.IsPedDucking.Name),

		native.GetPedConfigFlag: func(h *Host, args []native.Value) native.Value {
			o, ok := h.ped(args[0])
			return native.Bool(ok && o.Flags[args[1].AsInt()])
		},
		native.SetPedConfigFlag: onPed(func(_ *Host, o *Object, args []native.Value) native.Value {
			o.Flags[args[1].AsInt()] = args[2].AsBool()
			return native.Void()
		}),
		native.SetPedResetFlag: onPed(func(_ *Host, o *Object, args []native.Value) native.Value {
			o.ResetFlags[args[1].AsInt()] = args[2].AsBool()
			return native.Void()
		}),

		native.IsPedInjured: func(h *Host, args []native.Value) native.Value {
			o, ok := h.ped(args[0])
			return native.Bool(ok && (o.Dead || o.Health < 100 || o.State[native.IsPedInjured.Name]))
		},
		native.IsPedOnFoot: func(h *Host, args []native.Value) native.Value {
			o, ok := h.ped(args[0])
			return native.Bool(ok && o.Vehicle == 0)
		},
		native.IsPedInCover: func(h *Host, args []native.Value) native.Value {
			o, ok := h.ped(args[0])
			return native.Bool(ok && o.State[native.IsPedInCover.Name])
		},
		native.IsPedInAnyVehicle: func(h *Host, args []native.Value) native.Value {
			o, ok := h.ped(args[0])
			return native.Bool(ok && o.Vehicle != 0)
		},
		native.IsPedSittingInAnyVehicle: func(h *Host, args []native.Value) native.Value {
			o, ok := h.ped(args[0])
			return native.Bool(ok && o.Vehicle != 0 && !o.State[native.IsPedGettingIntoAVehicle.Name])
		},
		native.IsPedInVehicle: func(h *Host, args []native.Value) native.Value {
			o, ok := h.ped(args[0])
			return native.Bool(ok && o.Vehicle != 0 && o.Vehicle == args[1].AsInt32())
		},
		native.IsPedSittingInVehicle: func(h *Host, args []native.Value) native.Value {
			o, ok := h.ped(args[0])
			return native.Bool(ok && o.Vehicle != 0 && o.Vehicle == args[1].AsInt32() &&
				!o.State[native.IsPedGettingIntoAVehicle.Name])
		},
		native.IsPedInCombat: func(h *Host, args []native.Value) native.Value {
			o, ok := h.ped(args[0])
			if !ok || o.CombatTarget == 0 {
				return native.Bool(false)
			}
			target := args[1].AsInt32()
			return native.Bool(target == 0 || target == o.CombatTarget)
		},
		native.IsPedHeadtrackingEntity: func(h *Host, args []native.Value) native.Value {
			o, ok := h.ped(args[0])
			return native.Bool(ok && o.HeadTracking != 0 && o.HeadTracking == args[1].AsInt32())
		},
		native.IsPedInGroup: func(h *Host, args []native.Value) native.Value {
			o, ok := h.ped(args[0])
			return native.Bool(ok && o.Group != 0)
		},
		native.IsPedGroupMember: func(h *Host, args []native.Value) native.Value {
			o, ok := h.ped(args[0])
			return native.Bool(ok && o.Group != 0 && o.Group == args[1].AsInt32())
		},

		native.IsVehicleSeatFree: func(h *Host, args []native.Value) native.Value {
			v, ok := h.object(args[0])
			if !ok || v.Type != TypeVehicle {
				return native.Bool(false)
			}
			seat := args[1].AsInt()
			return native.Bool(v.hasSeat(seat) && v.Seats[seat] == 0)
		},
		native.GetPedInVehicleSeat: func(h *Host, args []native.Value) native.Value {
			v, ok := h.object(args[0])
			if !ok || v.Type != TypeVehicle {
				return native.Handle(0)
			}
			return native.Handle(v.Seats[args[1].AsInt()])
		},
		native.GetVehicleNumberOfPassengers: func(h *Host, args []native.Value) native.Value {
			v, ok := h.object(args[0])
			if !ok || v.Type != TypeVehicle {
				return native.Int(0)
			}
			n := 0
			for seat, p := range v.Seats {
				if seat != seatDriver && p != 0 {
					n++
				}
			}
			return native.Int(n)
		},

		native.GetVehiclePedIsIn: onPed(func(_ *Host, o *Object, args []native.Value) native.Value {
			if args[1].AsBool() {
				return native.Handle(o.LastVehicle)
			}
			return native.Handle(o.Vehicle)
		}),
		native.GetVehiclePedIsTryingEnter: pedHandle(func(o *Object) int32 { return o.EnteringVehicle }),
		native.SetPedIntoVehicle: onPed(func(h *Host, o *Object, args []native.Value) native.Value {
			h.seat(o, args[1].AsInt32(), args[2].AsInt())
			return native.Void()
		}),
		native.GetPedsJacker:        pedHandle(func(o *Object) int32 { return o.Jacker }),
		native.GetJackTarget:        pedHandle(func(o *Object) int32 { return o.JackTarget }),
		native.GetMeleeTargetForPed: pedHandle(func(o *Object) int32 { return o.MeleeTarget }),
		native.GetPedKiller:         pedHandle(func(o *Object) int32 { return o.Killer }),
		native.ApplyDamageToPed: onPed(func(_ *Host, o *Object, args []native.Value) native.Value {
			amount := args[1].AsInt()
			if args[2].AsBool() && o.Armour > 0 {
				absorbed := min(o.Armour, amount)
				o.Armour -= absorbed
				amount -= absorbed
			}
			o.setHealth(o.Health - amount)
			return native.Void()
		}),
		native.GetPedBoneIndex: onPed(func(_ *Host, _ *Object, args []native.Value) native.Value {
			return native.Int(args[1].AsInt())
		}),
		native.GetPedBoneCoords: onPed(func(_ *Host, o *Object, args []native.Value) native.Value {
			p := o.Position.Add(physics.V3(args[2].AsFloat(), args[3].AsFloat(), args[4].AsFloat()))
			return native.Vector3(p.X, p.Y, p.Z)
		}),
		native.GetPedLastWeaponImpact: onPed(func(_ *Host, o *Object, _ []native.Value) native.Value {
			if o.Impact == nil {
				return native.Bool(false).WithOut(native.Vector3(0, 0, 0))
			}
			return native.Bool(true).WithOut(native.Vector3(o.Impact.X, o.Impact.Y, o.Impact.Z))
		}),
		native.GivePedHelmet: onPed(func(_ *Host, o *Object, _ []native.Value) native.Value {
			o.State[native.IsPedWearingHelmet.Name] = true
			return native.Void()
		}),
		native.RemovePedHelmet: onPed(func(_ *Host, o *Object, _ []native.Value) native.Value {
			o.State[native.IsPedWearingHelmet.Name] = false
			return native.Void()
		}),
		native.ForcePedToOpenParachute: onPed(func(_ *Host, o *Object, _ []native.Value) native.Value {
			if o.ParachuteState == 0 {
				o.ParachuteState = 1
			}
			return native.Void()
		}),
		native.ClonePed: onPed(func(h *Host, o *Object, _ []native.Value) native.Value {
			c := h.spawn(TypePed, o.Model)
			c.Male = o.Male
			c.Position = o.Position
			c.Health, c.MaxHealth = o.Health, o.MaxHealth
			return native.Handle(c.Handle)
		}),

		native.RequestAnimSet:    request("set"),
		native.HasAnimSetLoaded:  loaded("set"),
		native.RequestAnimDict:   request("dict"),
		native.HasAnimDictLoaded: loaded("dict"),
		native.SetPedMovementClipset: onPed(func(_ *Host, o *Object, args []native.Value) native.Value {
			o.Clipset = args[1].AsString()
			return native.Void()
		}),

		native.GetRelationshipBetweenPeds: func(h *Host, args []native.Value) native.Value {
			a, ok := h.ped(args[0])
			b, okb := h.ped(args[1])
			if !ok || !okb {
				return native.Int(noRelationship)
			}
			if rel, ok := h.relations.Load(relationKey{a.RelationshipGroup, b.RelationshipGroup}); ok {
				return native.Int(rel)
			}
			if a.RelationshipGroup != 0 && a.RelationshipGroup == b.RelationshipGroup {
				return native.Int(0)
			}
			return native.Int(noRelationship)
		},
		native.GetPedRelationshipGroupHash: onPed(func(_ *Host, o *Object, _ []native.Value) native.Value {
			return native.Uint(o.RelationshipGroup)
		}),
		native.SetPedRelationshipGroupHash: onPed(func(_ *Host, o *Object, args []native.Value) native.Value {
			o.RelationshipGroup = args[1].AsUint32()
			return native.Void()
		}),
		native.AddRelationshipGroup: func(h *Host, args []native.Value) native.Value {
			name := args[0].AsString()
			if name == "" {
				return native.Bool(false).WithOut(native.Uint(0))
			}
			hash := uint32(xxhash.Sum64String(name))
			h.relGroups.Store(hash, name)
			return native.Bool(true).WithOut(native.Uint(hash))
		},
		native.RemoveRelationshipGroup: func(h *Host, args []native.Value) native.Value {
			hash := args[0].AsUint32()
			h.relGroups.Delete(hash)
			h.relations.Range(func(k relationKey, _ int) bool {
				if k.from == hash || k.to == hash {
					h.relations.Delete(k)
				}
				return true
			})
			return native.Void()
		},
		native.GetRelationshipBetweenGroups: func(h *Host, args []native.Value) native.Value {
			rel, ok := h.relations.Load(relationKey{args[0].AsUint32(), args[1].AsUint32()})
			if !ok {
				return native.Int(noRelationship)
			}
			return native.Int(rel)
		},
		native.SetRelationshipBetweenGroups: func(h *Host, args []native.Value) native.Value {
			h.relations.Store(relationKey{args[1].AsUint32(), args[2].AsUint32()}, args[0].AsInt())
			return native.Void()
		},
		native.ClearRelationshipBetweenGrps: func(h *Host, args []native.Value) native.Value {
			key := relationKey{args[1].AsUint32(), args[2].AsUint32()}
			if rel, ok := h.relations.Load(key); ok && rel == args[0].AsInt() {
				h.relations.Delete(key)
			}
			return native.Void()
		},

		native.GetPedGroupIndex: pedHandle(func(o *Object) int32 { return o.Group }),
		native.RemovePedFromGroup: onPed(func(h *Host, o *Object, _ []native.Value) native.Value {
			h.leaveGroup(o)
			return native.Void()
		}),
		native.CreateGroup: func(h *Host, _ []native.Value) native.Value {
			id := h.nextGroup.Add(1)
			h.groups.Store(id, &group{members: make(map[int32]bool)})
			return native.Handle(id)
		},
		native.DoesGroupExist: func(h *Host, args []native.Value) native.Value {
			_, ok := h.groups.Load(args[0].AsInt32())
			return native.Bool(ok)
		},
		native.GetGroupSize: func(h *Host, args []native.Value) native.Value {
			g, ok := h.groups.Load(args[0].AsInt32())
			if !ok {
				return native.Int(0)
			}
			return native.Int(len(g.members))
		},
		native.GetPedAsGroupLeader: func(h *Host, args []native.Value) native.Value {
			g, ok := h.groups.Load(args[0].AsInt32())
			if !ok {
				return native.Handle(0)
			}
			return native.Handle(g.leader)
		},
		native.SetPedAsGroupLeader: onPed(func(h *Host, o *Object, args []native.Value) native.Value {
			if g, ok := h.join(o, args[1].AsInt32()); ok {
				g.leader = o.Handle
			}
			return native.Void()
		}),
		native.SetPedAsGroupMember: onPed(func(h *Host, o *Object, args []native.Value) native.Value {
			h.join(o, args[1].AsInt32())
			return native.Void()
		}),
		native.SetGroupSeparationRange: func(h *Host, args []native.Value) native.Value {
			if g, ok := h.groups.Load(args[0].AsInt32()); ok {
				g.separation = args[1].AsFloat()
			}
			return native.Void()
		},
		native.SetGroupFormation: func(h *Host, args []native.Value) native.Value {
			if g, ok := h.groups.Load(args[0].AsInt32()); ok {
				g.formation = args[1].AsInt()
			}
			return native.Void()
		},
		native.RemoveGroup: func(h *Host, args []native.Value) native.Value {
			id := args[0].AsInt32()
			g, ok := h.groups.LoadAndDelete(id)
			if !ok {
				return native.Void()
			}
			for m := range g.members {
				if o, ok := h.objects.Load(m); ok && o.Group == id {
					o.Group = 0
				}
			}
			return native.Void()
		},

		native.ClearPedTasks:            onPed(clearTasks),
		native.ClearPedTasksImmediately: onPed(clearTasks),
		native.ClearPedSecondaryTask:    onPed(func(_ *Host, _ *Object, _ []native.Value) native.Value { return native.Void() }),
		native.TaskStandStill:           task(native.TaskStandStill, nil),
		native.TaskWanderStandard:       task(native.TaskWanderStandard, nil),
		native.TaskGoStraightToCoord:    task(native.TaskGoStraightToCoord, nil),
		native.TaskHandsUp:              task(native.TaskHandsUp, nil),
		native.TaskCower:                task(native.TaskCower, nil),
		native.TaskPlayAnim:             task(native.TaskPlayAnim, nil),
		native.TaskCombatPed: task(native.TaskCombatPed, func(o *Object, args []native.Value) {
			o.CombatTarget = args[1].AsInt32()
		}),
		native.TaskSmartFleePed: task(native.TaskSmartFleePed, func(o *Object, _ []native.Value) {
			o.State[native.IsPedFleeing.Name] = true
		}),
		native.TaskEnterVehicle: task(native.TaskEnterVehicle, func(o *Object, args []native.Value) {
			o.EnteringVehicle = args[1].AsInt32()
		}),
		native.TaskLeaveVehicle: onPed(func(h *Host, o *Object, args []native.Value) native.Value {
			o.Task = native.TaskLeaveVehicle.Name
			if o.Vehicle == args[1].AsInt32() {
				h.unseat(o)
			}
			return native.Void()
		}),
		native.TaskPerformSequence: task(native.TaskPerformSequence, func(o *Object, _ []native.Value) {
			o.Sequence = 0
		}),

		native.SetPedToRagdoll: onPed(func(_ *Host, o *Object, _ []native.Value) native.Value {
			if o.CanRagdoll {
				o.State[native.IsPedRagdoll.Name] = true
			}
			return native.Void()
		}),
		native.CreateNMMessage: func(h *Host, args []native.Value) native.Value {
			h.pending = &nmMessage{start: args[0].AsBool(), name: args[1].AsString(), params: make(map[string]any)}
			return native.Void()
		},
		native.SetNMMessageBool:  nmParam,
		native.SetNMMessageInt:   nmParam,
		native.SetNMMessageFloat: nmParam,
		native.SetNMMessageStr:   nmParam,
		native.GivePedNMMessage: onPed(func(h *Host, o *Object, _ []native.Value) native.Value {
			if h.pending == nil {
				return native.Void()
			}
			msg := h.pending.name
			if !h.pending.start {
				msg = "stop:" + msg
			}
			o.Messages = append(o.Messages, msg)
			h.pending = nil
			return native.Void()
		}),

		native.GiveWeaponToPed: onPed(func(_ *Host, o *Object, args []native.Value) native.Value {
			hash := args[1].AsUint32()
			o.Weapons[hash] += max(args[2].AsInt(), 0)
			if args[3].AsBool() {
				o.Selected = hash
			}
			return native.Void()
		}),
		native.RemoveWeaponFromPed: onPed(func(_ *Host, o *Object, args []native.Value) native.Value {
			o.dropWeapon(args[1].AsUint32())
			return native.Void()
		}),
		native.RemoveAllPedWeapons: onPed(func(_ *Host, o *Object, _ []native.Value) native.Value {
			clear(o.Weapons)
			o.Selected = uint32(weapons.Unarmed)
			return native.Void()
		}),
		native.HasPedGotWeapon: func(h *Host, args []native.Value) native.Value {
			o, ok := h.ped(args[0])
			return native.Bool(ok && o.hasWeapon(args[1].AsUint32()))
		},
		native.GetSelectedPedWeapon: pedInt(func(o *Object) int { return int(int32(o.Selected)) }),
		native.SetCurrentPedWeapon: onPed(func(_ *Host, o *Object, args []native.Value) native.Value {
			if hash := args[1].AsUint32(); o.hasWeapon(hash) {
				o.Selected = hash
			}
			return native.Void()
		}),
		native.GetAmmoInPedWeapon: onPed(func(_ *Host, o *Object, args []native.Value) native.Value {
			return native.Int(o.Weapons[args[1].AsUint32()])
		}),
		native.SetPedAmmo: onPed(func(_ *Host, o *Object, args []native.Value) native.Value {
			if hash := args[1].AsUint32(); o.hasWeapon(hash) {
				o.Weapons[hash] = args[2].AsInt()
			}
			return native.Void()
		}),
		native.GetBestPedWeapon: pedInt(func(o *Object) int { return int(int32(o.bestWeapon())) }),
		native.SetPedDropsWeapon: onPed(func(_ *Host, o *Object, _ []native.Value) native.Value {
			o.dropWeapon(o.Selected)
			return native.Void()
		}),
		native.GetWeaponClipSize: func(h *Host, args []native.Value) native.Value {
			if args[1].AsUint32() == uint32(weapons.Unarmed) {
				return native.Int(0)
			}
			return native.Int(30)
		},
		native.IsPedArmed: func(h *Host, args []native.Value) native.Value {
			o, ok := h.ped(args[0])
			return native.Bool(ok && o.Selected != uint32(weapons.Unarmed) && o.hasWeapon(o.Selected))
		},
		native.SetPedInfiniteAmmo: onPed(func(_ *Host, o *Object, args []native.Value) native.Value {
			o.Toggles[native.SetPedInfiniteAmmo.Name] = args[1].AsBool()
			return native.Void()
		}),
	}
}

func (o *Object) setHealth(v int) {
	o.Health = v
	o.Dead = v <= 0
}

func (o *Object) hasSeat(seat int) bool {
	return seat == seatDriver || (seat >= 0 && seat < o.SeatCount)
}

func (o *Object) hasWeapon(hash uint32) bool {
	_, ok := o.Weapons[hash]
	return ok
}

func (o *Object) dropWeapon(hash uint32) {
	delete(o.Weapons, hash)
	if o.Selected == hash {
		o.Selected = uint32(weapons.Unarmed)
	}
}

// bestWeapon prefers the most loaded weapon, breaking ties by hash.
func (o *Object) bestWeapon() uint32 {
	hashes := make([]uint32, 0, len(o.Weapons))
	for hash := range o.Weapons {
		hashes = append(hashes, hash)
	}
	sort.Slice(hashes, func(i, j int) bool { return hashes[i] < hashes[j] })
	best, ammo := uint32(weapons.Unarmed), -1
	for _, hash := range hashes {
		if o.Weapons[hash] > ammo {
			best, ammo = hash, o.Weapons[hash]
		}
	}
	return best
}

func (h *Host) seat(o *Object, vehicle int32, seat int) {
	v, ok := h.objects.Load(vehicle)
	if !ok || v.Type != TypeVehicle {
		return
	}
	if seat == seatAny {
		seat = seatNone
		for s := seatDriver; s < v.SeatCount; s++ {
			if v.Seats[s] == 0 {
				seat = s
				break
			}
		}
	}
	if !v.hasSeat(seat) || v.Seats[seat] != 0 {
		return
	}
	if o.Vehicle != 0 {
		h.unseat(o)
	}
	v.Seats[seat] = o.Handle
	o.Vehicle, o.LastVehicle, o.Seat = vehicle, vehicle, seat
	o.EnteringVehicle = 0
}

func (h *Host) unseat(o *Object) {
	if v, ok := h.objects.Load(o.Vehicle); ok && v.Seats[o.Seat] == o.Handle {
		delete(v.Seats, o.Seat)
	}
	o.Vehicle, o.Seat = 0, seatNone
}

func (h *Host) join(o *Object, id int32) (*group, bool) {
	g, ok := h.groups.Load(id)
	if !ok {
		return nil, false
	}
	if o.Group != 0 && o.Group != id {
		h.leaveGroup(o)
	}
	g.members[o.Handle] = true
	o.Group = id
	return g, true
}

func (h *Host) leaveGroup(o *Object) {
	if g, ok := h.groups.Load(o.Group); ok {
		delete(g.members, o.Handle)
		if g.leader == o.Handle {
			g.leader = 0
		}
	}
	o.Group = 0
}

func clearTasks(_ *Host, o *Object, _ []native.Value) native.Value {
	o.Task = ""
	o.CombatTarget = 0
	o.EnteringVehicle = 0
	o.Sequence = -1
	o.State[native.IsPedFleeing.Name] = false
	return native.Void()
}

// task records n as the ped's current task and applies any side effect.
func task(n *native.Native, effect func(o *Object, args []native.Value)) handler {
	return onPed(func(_ *Host, o *Object, args []native.Value) native.Value {
		o.Task = n.Name
		if effect != nil {
			effect(o, args)
		}
		return native.Void()
	})
}

func nmParam(h *Host, args []native.Value) native.Value {
	if h.pending != nil {
		h.pending.params[args[0].AsString()] = args[1]
	}
	return native.Void()
}

func request(kind string) handler {
	return func(h *Host, args []native.Value) native.Value {
		r, _ := h.resources.LoadOrCompute(kind+":"+args[0].AsString(), func() *resource { return &resource{} })
		r.requested = true
		return native.Void()
	}
}

func loaded(kind string) handler {
	return func(h *Host, args []native.Value) native.Value {
		r, ok := h.resources.Load(kind + ":" + args[0].AsString())
		if !ok || !r.requested {
			return native.Bool(false)
		}
		if r.resident {
			return native.Bool(true)
		}
		if h.loadDelay < 0 {
			return native.Bool(false)
		}
		r.polls++
		return native.Bool(r.polls > h.loadDelay)
	}
}
