package euphoria

import (
	"testing"
	"time"

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

func names(calls []nativetest.Call) []string {
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.Native.Name
	}
	return out
}

func TestHelperIsMemoizedPerName(t *testing.T) {
	rec := nativetest.NewRecorder(t)
	e := New(owner{4, rec})

	assert.Same(t, e.BodyBalance(), e.Helper("bodyBalance"))
	assert.NotSame(t, e.BodyBalance(), e.ArmsWindmill())
	assert.Equal(t, "shot", e.ShotReaction().Name())
	assert.Empty(t, rec.Calls())
}

func TestStartSendsParametersInOrder(t *testing.T) {
	rec := nativetest.NewRecorder(t)
	e := New(owner{4, rec})

	e.ArmsWindmill().
		SetBool("useLeft", true).
		SetFloat("amplitude", 0.5).
		SetInt("mirrorMode", 1).
		SetString("leftPartID", "hand").
		SetFloat("amplitude", 0.9)
	e.ArmsWindmill().Start(3 * time.Second)

	assert.Equal(t, []string{
		"SET_PED_TO_RAGDOLL",
		"CREATE_NM_MESSAGE",
		"SET_NM_MESSAGE_BOOL",
		"SET_NM_MESSAGE_FLOAT",
		"SET_NM_MESSAGE_INT",
		"SET_NM_MESSAGE_STRING",
		"GIVE_PED_NM_MESSAGE",
	}, names(rec.Calls()))

	c, ok := rec.Last(native.SetPedToRagdoll)
	require.True(t, ok)
	assert.Equal(t, int32(4), c.Args[0].AsInt32())
	assert.Equal(t, 3000, c.Args[2].AsInt())

	c, _ = rec.Last(native.SetNMMessageFloat)
	assert.Equal(t, 0.9, c.Args[1].AsFloat())

	c, _ = rec.Last(native.CreateNMMessage)
	assert.True(t, c.Args[0].AsBool())
	assert.Equal(t, "armsWindmill", c.Args[1].AsString())
}

func TestStopMessages(t *testing.T) {
	rec := nativetest.NewRecorder(t)
	e := New(owner{4, rec})

	e.BodyBalance().SetBool("x", true)
	e.BodyBalance().Stop()
	c, _ := rec.Last(native.CreateNMMessage)
	assert.False(t, c.Args[0].AsBool())
	assert.Zero(t, rec.Count(native.SetNMMessageBool))

	e.StopAll()
	c, _ = rec.Last(native.CreateNMMessage)
	assert.Equal(t, "stopAllBehaviours", c.Args[1].AsString())
	assert.Equal(t, 2, rec.Count(native.GivePedNMMessage))
}

func TestResetDropsParameters(t *testing.T) {
	rec := nativetest.NewRecorder(t)
	h := New(owner{4, rec}).ShotReaction()
	h.SetInt("a", 1)
	h.Reset()
	h.Start(-1)

	assert.Zero(t, rec.Count(native.SetNMMessageInt))
	c, _ := rec.Last(native.SetPedToRagdoll)
	assert.Equal(t, -1, c.Args[2].AsInt())
}
