// Package weapons manages a ped's inventory through remote calls.
package weapons

import (
	"fmt"

	"github.com/zeusync/actorproxy/internal/core/native"
)

type Owner interface {
	ID() int32
	Invoker() native.Invoker
}

// Hash identifies a weapon model.
type Hash uint32

const (
	Unarmed       Hash = 0xA2719263
	Knife         Hash = 0x99B507EA
	Pistol        Hash = 0x1B06D571
	CombatPistol  Hash = 0x5EF9FEC4
	MicroSMG      Hash = 0x13532244
	SMG           Hash = 0x2BE6766B
	AssaultRifle  Hash = 0xBFEFFF6D
	CarbineRifle  Hash = 0x83BF0278
	PumpShotgun   Hash = 0x1D073A89
	SniperRifle   Hash = 0x05FC3C11
	GrenadeLaunch Hash = 0xA284510B
	RPG           Hash = 0xB1CA77B1
	Grenade       Hash = 0x93E220BD
)

var names = map[Hash]string{
	Unarmed:       "unarmed",
	Knife:         "knife",
	Pistol:        "pistol",
	CombatPistol:  "combat_pistol",
	MicroSMG:      "micro_smg",
	SMG:           "smg",
	AssaultRifle:  "assault_rifle",
	CarbineRifle:  "carbine_rifle",
	PumpShotgun:   "pump_shotgun",
	SniperRifle:   "sniper_rifle",
	GrenadeLaunch: "grenade_launcher",
	RPG:           "rpg",
	Grenade:       "grenade",
}

func (h Hash) String() string {
	if n, ok := names[h]; ok {
		return n
	}
	return fmt.Sprintf("0x%08X", uint32(h))
}

// ParseHash accepts a weapon name or a numeric hash.
func ParseHash(s string) (Hash, bool) {
	for h, n := range names {
		if n == s {
			return h, true
		}
	}
	var v uint32
	if _, err := fmt.Sscan(s, &v); err == nil {
		return Hash(v), true
	}
	return 0, false
}

// armedAny covers melee, explosives and guns.
const armedAny = 7

// Collection is the inventory of one owner.
type Collection struct {
	owner Owner
}

// New stores the owner. It makes no calls.
func New(owner Owner) *Collection {
	return &Collection{owner: owner}
}

func (c *Collection) call(n *native.Native, args ...native.Value) native.Value {
	return native.Call(c.owner.Invoker(), n, args...)
}

func (c *Collection) self() native.Value { return native.Handle(c.owner.ID()) }

// Give adds the weapon with the given ammo.
func (c *Collection) Give(w Hash, ammo int, equipNow, ammoLoaded bool) {
	if ammo < 0 {
		ammo = 0
	}
	c.call(native.GiveWeaponToPed, c.self(), native.Uint(uint32(w)), native.Int(ammo),
		native.Bool(equipNow), native.Bool(ammoLoaded))
}

func (c *Collection) Remove(w Hash) {
	c.call(native.RemoveWeaponFromPed, c.self(), native.Uint(uint32(w)))
}

func (c *Collection) RemoveAll() {
	c.call(native.RemoveAllPedWeapons, c.self(), native.Bool(true))
}

func (c *Collection) Has(w Hash) bool {
	return c.call(native.HasPedGotWeapon, c.self(), native.Uint(uint32(w)), native.Bool(false)).AsBool()
}

// Current is the weapon in hand, Unarmed when the simulation reports nothing.
func (c *Collection) Current() Hash {
	v := c.call(native.GetSelectedPedWeapon, c.self())
	if v.IsVoid() {
		return Unarmed
	}
	return Hash(v.AsUint32())
}

// Select equips w if the owner carries it.
func (c *Collection) Select(w Hash) bool {
	if !c.Has(w) {
		return false
	}
	c.call(native.SetCurrentPedWeapon, c.self(), native.Uint(uint32(w)), native.Bool(true))
	return true
}

func (c *Collection) Ammo(w Hash) int {
	return c.call(native.GetAmmoInPedWeapon, c.self(), native.Uint(uint32(w))).AsInt()
}

// SetAmmo clamps negative counts to zero.
func (c *Collection) SetAmmo(w Hash, ammo int) {
	if ammo < 0 {
		ammo = 0
	}
	c.call(native.SetPedAmmo, c.self(), native.Uint(uint32(w)), native.Int(ammo))
}

func (c *Collection) ClipSize(w Hash) int {
	return c.call(native.GetWeaponClipSize, c.self(), native.Uint(uint32(w)), native.Bool(true)).AsInt()
}

func (c *Collection) BestWeapon() Hash {
	return Hash(c.call(native.GetBestPedWeapon, c.self(), native.Bool(false)).AsUint32())
}

func (c *Collection) IsArmed() bool {
	return c.call(native.IsPedArmed, c.self(), native.Int(armedAny)).AsBool()
}

func (c *Collection) DropCurrent() {
	c.call(native.SetPedDropsWeapon, c.self())
}

func (c *Collection) SetInfiniteAmmo(on bool, w Hash) {
	c.call(native.SetPedInfiniteAmmo, c.self(), native.Bool(on), native.Uint(uint32(w)))
}

func (c *Collection) SetInfiniteAmmoClip(on bool) {
	c.call(native.SetPedInfiniteAmmoAll, c.self(), native.Bool(on))
}
