package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/actorproxy/internal/core/memory"
	"github.com/zeusync/actorproxy/internal/core/native"
)

type recordingHost struct {
	calls []string
	money int
}

func (h *recordingHost) Invoke(n *native.Native, args ...native.Value) native.Value {
	h.calls = append(h.calls, n.Name)
	if n == native.GetPedMoney {
		return native.Int(h.money)
	}
	return native.Void()
}

func (h *recordingHost) BaseAddress(handle int32) memory.Address {
	return memory.Address(uint64(handle) << 16)
}

func (h *recordingHost) ReadByte(memory.Address) uint8 { return 0x7f }

func (h *recordingHost) ReadInt32(addr memory.Address) int32 { return int32(addr & 0xffff) }

func TestCodecRoundTrip(t *testing.T) {
	codec := JSONCodec{}
	req := Request{
		ID:   "1",
		Op:   OpCall,
		Hash: native.SetPedMoney.Hash,
		Args: []native.Value{native.Handle(7), native.Int(120)},
	}
	data, err := codec.EncodeRequest(req)
	require.NoError(t, err)
	got, err := codec.DecodeRequest(data)
	require.NoError(t, err)
	assert.Equal(t, req, got)

	resp := Response{ID: "1", Value: native.Vector3(1, 2, 3).WithOut(native.Bool(true))}
	data, err = codec.EncodeResponse(resp)
	require.NoError(t, err)
	back, err := codec.DecodeResponse(data)
	require.NoError(t, err)
	assert.Equal(t, resp, back)

	_, err = codec.DecodeRequest([]byte("{"))
	assert.ErrorIs(t, err, ErrInvalidFrame)
	_, err = codec.DecodeResponse([]byte("nope"))
	assert.ErrorIs(t, err, ErrInvalidFrame)
}

func TestRequestValidate(t *testing.T) {
	assert.ErrorIs(t, Request{Op: OpCall}.Validate(), ErrInvalidFrame)
	assert.ErrorIs(t, Request{ID: "x", Op: "write"}.Validate(), ErrUnknownOp)
	assert.NoError(t, Request{ID: "x", Op: OpRead32}.Validate())
}

func TestDispatchCall(t *testing.T) {
	host := &recordingHost{money: 42}
	resp := Dispatch(host, Request{ID: "a", Op: OpCall, Hash: native.GetPedMoney.Hash, Args: []native.Value{native.Handle(3)}})
	assert.Empty(t, resp.Err)
	assert.Equal(t, "a", resp.ID)
	assert.Equal(t, 42, resp.Value.AsInt())
	assert.Equal(t, []string{"GET_PED_MONEY"}, host.calls)
}

func TestDispatchRejectsWithoutReachingHost(t *testing.T) {
	host := &recordingHost{}

	resp := Dispatch(host, Request{ID: "a", Op: OpCall, Hash: native.Hash(0xDEADBEEF)})
	assert.Contains(t, resp.Err, native.ErrUnknownNative.Error())
	assert.True(t, resp.Value.IsVoid())

	resp = Dispatch(host, Request{ID: "b", Op: OpCall, Hash: native.GetPedMoney.Hash, Args: []native.Value{native.String("x")}})
	assert.NotEmpty(t, resp.Err)
	assert.True(t, resp.Value.IsVoid())

	resp = Dispatch(host, Request{Op: OpCall})
	assert.NotEmpty(t, resp.Err)

	assert.Empty(t, host.calls)
}

func TestDispatchMemory(t *testing.T) {
	host := &recordingHost{}

	resp := Dispatch(host, Request{ID: "a", Op: OpBase, Handle: 2})
	assert.Equal(t, uint64(2<<16), resp.Addr)

	resp = Dispatch(host, Request{ID: "b", Op: OpRead8, Addr: 1})
	assert.Equal(t, int32(0x7f), resp.Int)

	resp = Dispatch(host, Request{ID: "c", Op: OpRead32, Addr: 0x20010})
	assert.Equal(t, int32(0x10), resp.Int)
}
