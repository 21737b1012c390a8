// Package agent implements the fixed-capacity agent pools (prey and
// predator) of spec §3: a 32-byte binary-compatible record per slot,
// double-buffered so the update kernel can read the current buffer
// while writing the next one without aliasing (spec §3 "Ownership").
package agent

import "encoding/binary"

// Kind tags a record's species (spec §3 "type: u32").
type Kind uint32

const (
	KindPrey      Kind = 0
	KindPredator  Kind = 1
)

// State tags whether a slot is free or holds a live agent.
type State uint32

const (
	StateFree   State = 0
	StateActive State = 1
)

// RecordSize is the fixed binary size of a Record in bytes (spec §6).
const RecordSize = 32

// Record is one agent slot, laid out exactly as spec §3 describes it:
//
//	pos: (f32 x, f32 y)
//	vel: (f32 vx, f32 vy)
//	energy: f32
//	type: u32
//	state: u32
//	age: f32   // overloaded: persistent heading in radians
//
// The field order here matches the wire order; Go's natural alignment
// of eight 4-byte fields already packs this to 32 bytes with no
// padding, but Marshal/Unmarshal below make the little-endian contract
// explicit and independent of host struct layout.
type Record struct {
	X, Y     float32
	VX, VY   float32
	Energy   float32
	Type     Kind
	State    State
	Age      float32
}

// Active reports whether this slot holds a live agent.
func (r *Record) Active() bool { return r.State == StateActive }

// MarshalBinary encodes the record as the 32-byte little-endian layout
// of spec §6.
func (r Record) MarshalBinary() []byte {
	buf := make([]byte, RecordSize)
	binary.LittleEndian.PutUint32(buf[0:4], floatBits(r.X))
	binary.LittleEndian.PutUint32(buf[4:8], floatBits(r.Y))
	binary.LittleEndian.PutUint32(buf[8:12], floatBits(r.VX))
	binary.LittleEndian.PutUint32(buf[12:16], floatBits(r.VY))
	binary.LittleEndian.PutUint32(buf[16:20], floatBits(r.Energy))
	binary.LittleEndian.PutUint32(buf[20:24], uint32(r.Type))
	binary.LittleEndian.PutUint32(buf[24:28], uint32(r.State))
	binary.LittleEndian.PutUint32(buf[28:32], floatBits(r.Age))
	return buf
}

// UnmarshalBinary decodes a 32-byte little-endian record.
func (r *Record) UnmarshalBinary(buf []byte) {
	r.X = bitsFloat(binary.LittleEndian.Uint32(buf[0:4]))
	r.Y = bitsFloat(binary.LittleEndian.Uint32(buf[4:8]))
	r.VX = bitsFloat(binary.LittleEndian.Uint32(buf[8:12]))
	r.VY = bitsFloat(binary.LittleEndian.Uint32(buf[12:16]))
	r.Energy = bitsFloat(binary.LittleEndian.Uint32(buf[16:20]))
	r.Type = Kind(binary.LittleEndian.Uint32(buf[20:24]))
	r.State = State(binary.LittleEndian.Uint32(buf[24:28]))
	r.Age = bitsFloat(binary.LittleEndian.Uint32(buf[28:32]))
}
