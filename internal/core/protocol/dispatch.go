package protocol

import (
	"github.com/zeusync/actorproxy/internal/core/memory"
	"github.com/zeusync/actorproxy/internal/core/native"
)

// Host is what a bridge server exposes: the call interface and the record reader.
type Host interface {
	native.Invoker
	memory.Reader
}

// Dispatch answers one request against host. Opcodes missing from the native
// table, and calls whose arguments do not fit the declared signature, answer
// void with Err set. The host is never reached for them.
func Dispatch(host Host, req Request) Response {
	resp := Response{ID: req.ID}
	if err := req.Validate(); err != nil {
		resp.Err = err.Error()
		return resp
	}

	switch req.Op {
	case OpCall:
		n, ok := native.Lookup(req.Hash)
		if !ok {
			resp.Err = native.ErrUnknownNative.Error() + ": " + req.Hash.String()
			return resp
		}
		if err := n.Check(req.Args); err != nil {
			resp.Err = err.Error()
			return resp
		}
		resp.Value = host.Invoke(n, req.Args...)
	case OpBase:
		resp.Addr = uint64(host.BaseAddress(req.Handle))
	case OpRead8:
		resp.Int = int32(host.ReadByte(memory.Address(req.Addr)))
	case OpRead32:
		resp.Int = host.ReadInt32(memory.Address(req.Addr))
	}
	return resp
}
