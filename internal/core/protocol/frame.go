// Package protocol defines the frames exchanged between a controlling process
// and a simulation host over the bridge, and how a host answers them.
package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/zeusync/actorproxy/internal/core/native"
)

// Op selects what a request asks of the host.
type Op string

const (
	// OpCall invokes the native identified by Hash with Args.
	OpCall Op = "call"
	// OpBase resolves the record base address of Handle.
	OpBase Op = "base"
	// OpRead8 reads one byte at Addr.
	OpRead8 Op = "read8"
	// OpRead32 reads a little-endian int32 at Addr.
	OpRead32 Op = "read32"
)

func (o Op) valid() bool {
	switch o {
	case OpCall, OpBase, OpRead8, OpRead32:
		return true
	default:
		return false
	}
}

// Request is one frame sent by the controlling process.
type Request struct {
	ID     string         `json:"id"`
	Op     Op             `json:"op"`
	Hash   native.Hash    `json:"hash,omitempty"`
	Args   []native.Value `json:"args,omitempty"`
	Handle int32          `json:"handle,omitempty"`
	Addr   uint64         `json:"addr,omitempty"`
}

// Validate checks the fields the operation needs.
func (r Request) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidFrame)
	}
	if !r.Op.valid() {
		return fmt.Errorf("%w: %q", ErrUnknownOp, r.Op)
	}
	return nil
}

// Response answers the Request with the same ID. Value carries call results,
// Addr carries base addresses and Int carries memory reads.
type Response struct {
	ID    string       `json:"id"`
	Value native.Value `json:"value"`
	Addr  uint64       `json:"addr,omitempty"`
	Int   int32        `json:"int,omitempty"`
	Err   string       `json:"err,omitempty"`
}

// Codec turns frames into websocket payloads and back.
type Codec interface {
	EncodeRequest(Request) ([]byte, error)
	DecodeRequest([]byte) (Request, error)
	EncodeResponse(Response) ([]byte, error)
	DecodeResponse([]byte) (Response, error)
}

// JSONCodec is the text-frame codec both sides speak by default.
type JSONCodec struct{}

func (JSONCodec) EncodeRequest(r Request) ([]byte, error) { return json.Marshal(r) }

func (JSONCodec) DecodeRequest(data []byte) (Request, error) {
	var r Request
	if err := json.Unmarshal(data, &r); err != nil {
		return Request{}, fmt.Errorf("%w: %v", ErrInvalidFrame, err)
	}
	return r, nil
}

func (JSONCodec) EncodeResponse(r Response) ([]byte, error) { return json.Marshal(r) }

func (JSONCodec) DecodeResponse(data []byte) (Response, error) {
	var r Response
	if err := json.Unmarshal(data, &r); err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrInvalidFrame, err)
	}
	return r, nil
}
