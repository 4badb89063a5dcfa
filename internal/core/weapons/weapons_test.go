package weapons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/actorproxy/internal/core/native"
	"github.com/zeusync/actorproxy/internal/core/native/nativetest"
)

type owner struct {
	id  int32
	inv native.Invoker
}

func (o owner) ID() int32               { return o.id }
func (o owner) Invoker() native.Invoker { return o.inv }

func TestHashesSurviveTheWire(t *testing.T) {
	rec := nativetest.NewRecorder(t)
	c := New(owner{3, rec})

	c.Give(AssaultRifle, 120, true, false)
	call, ok := rec.Last(native.GiveWeaponToPed)
	require.True(t, ok)
	assert.Equal(t, uint32(AssaultRifle), call.Args[1].AsUint32())
	assert.Equal(t, 120, call.Args[2].AsInt())

	rec.Returns(native.GetSelectedPedWeapon, native.Uint(uint32(AssaultRifle)))
	assert.Equal(t, AssaultRifle, c.Current())
}

func TestCurrentDefaultsToUnarmed(t *testing.T) {
	c := New(owner{3, nativetest.NewRecorder(t)})
	assert.Equal(t, Unarmed, c.Current())
}

func TestSelectRequiresWeapon(t *testing.T) {
	rec := nativetest.NewRecorder(t)
	c := New(owner{3, rec})

	assert.False(t, c.Select(Pistol))
	assert.Zero(t, rec.Count(native.SetCurrentPedWeapon))

	rec.Returns(native.HasPedGotWeapon, native.Bool(true))
	assert.True(t, c.Select(Pistol))
	assert.Equal(t, 1, rec.Count(native.SetCurrentPedWeapon))
}

func TestAmmoClamping(t *testing.T) {
	rec := nativetest.NewRecorder(t)
	c := New(owner{3, rec})

	c.SetAmmo(Pistol, -5)
	call, _ := rec.Last(native.SetPedAmmo)
	assert.Equal(t, 0, call.Args[2].AsInt())

	c.Give(Pistol, -1, false, false)
	call, _ = rec.Last(native.GiveWeaponToPed)
	assert.Equal(t, 0, call.Args[2].AsInt())
}

func TestInventoryQueries(t *testing.T) {
	rec := nativetest.NewRecorder(t)
	rec.Returns(native.GetAmmoInPedWeapon, native.Int(30))
	rec.Returns(native.GetWeaponClipSize, native.Int(12))
	rec.Returns(native.GetBestPedWeapon, native.Uint(uint32(SMG)))
	rec.Returns(native.IsPedArmed, native.Bool(true))
	c := New(owner{3, rec})

	assert.Equal(t, 30, c.Ammo(Pistol))
	assert.Equal(t, 12, c.ClipSize(Pistol))
	assert.Equal(t, SMG, c.BestWeapon())
	assert.True(t, c.IsArmed())

	c.Remove(SMG)
	c.RemoveAll()
	c.DropCurrent()
	c.SetInfiniteAmmo(true, SMG)
	c.SetInfiniteAmmoClip(true)
	assert.Len(t, rec.Calls(), 9)
}

func TestHashNames(t *testing.T) {
	assert.Equal(t, "pistol", Pistol.String())
	assert.Equal(t, "0x00000001", Hash(1).String())

	h, ok := ParseHash("rpg")
	require.True(t, ok)
	assert.Equal(t, RPG, h)

	h, ok = ParseHash("453432689")
	require.True(t, ok)
	assert.Equal(t, Pistol, h)

	_, ok = ParseHash("laser")
	assert.False(t, ok)
}
