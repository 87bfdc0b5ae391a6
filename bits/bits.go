// Package bits decodes and evaluates the Buoyancy Interchange Transmission
// System packets of 2021 day 16.
package bits

import (
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"strings"

	aoc "github.com/kecors/aoc21"
)

// ErrTruncated is returned when a transmission ends inside a packet.
var ErrTruncated = errors.New("transmission truncated")

// Packet type IDs.
const (
	TypeSum     = 0
	TypeProduct = 1
	TypeMin     = 2
	TypeMax     = 3
	TypeLiteral = 4
	TypeGreater = 5
	TypeLess    = 6
	TypeEqual   = 7
)

// Packet is one decoded packet. Literal is set for TypeLiteral packets and
// Sub for every other type.
type Packet struct {
	Version int
	TypeID  int
	Literal uint64
	Sub     []*Packet
}

type reader struct {
	buf []byte
	pos int // in bits
}

func (r *reader) read(n int) (uint64, error) {
	if r.pos+n > len(r.buf)*8 {
		return 0, fmt.Errorf("%w: want %d bits at bit %d of %d", ErrTruncated, n, r.pos, len(r.buf)*8)
	}
	var v uint64
	for i := 0; i < n; i++ {
		b := r.buf[r.pos/8] >> (7 - r.pos%8) & 1
		v = v<<1 | uint64(b)
		r.pos++
	}
	return v, nil
}

// Decode parses the outermost packet of a hexadecimal transmission. Padding
// after the packet is ignored.
func Decode(transmission string) (*Packet, error) {
	buf, err := hex.DecodeString(strings.TrimSpace(transmission))
	if err != nil {
		return nil, fmt.Errorf("decoding hex: %w", err)
	}
	r := &reader{buf: buf}
	return r.packet()
}

func (r *reader) packet() (*Packet, error) {
	version, err := r.read(3)
	if err != nil {
		return nil, err
	}
	typeID, err := r.read(3)
	if err != nil {
		return nil, err
	}
	p := &Packet{Version: int(version), TypeID: int(typeID)}
	if p.TypeID == TypeLiteral {
		p.Literal, err = r.literal()
		return p, err
	}

	lengthType, err := r.read(1)
	if err != nil {
		return nil, err
	}
	if lengthType == 0 {
		n, err := r.read(15)
		if err != nil {
			return nil, err
		}
		end := r.pos + int(n)
		for r.pos < end {
			sub, err := r.packet()
			if err != nil {
				return nil, err
			}
			p.Sub = append(p.Sub, sub)
		}
		if r.pos != end {
			return nil, fmt.Errorf("sub-packets overrun their length by %d bits", r.pos-end)
		}
		return p, nil
	}
	n, err := r.read(11)
	if err != nil {
		return nil, err
	}
	for i := uint64(0); i < n; i++ {
		sub, err := r.packet()
		if err != nil {
			return nil, err
		}
		p.Sub = append(p.Sub, sub)
	}
	return p, nil
}

func (r *reader) literal() (uint64, error) {
	var v uint64
	for groups := 1; ; groups++ {
		g, err := r.read(5)
		if err != nil {
			return 0, err
		}
		if groups > 16 {
			return 0, errors.New("literal does not fit in 64 bits")
		}
		v = v<<4 | g&0xf
		if g&0x10 == 0 {
			return v, nil
		}
	}
}

// VersionSum adds up the versions of p and every packet nested in it.
func (p *Packet) VersionSum() int {
	sum := p.Version
	for _, s := range p.Sub {
		sum += s.VersionSum()
	}
	return sum
}

// Eval computes the value of the expression p encodes.
func (p *Packet) Eval() (uint64, error) {
	if p.TypeID == TypeLiteral {
		return p.Literal, nil
	}
	vals := make([]uint64, len(p.Sub))
	for i, s := range p.Sub {
		v, err := s.Eval()
		if err != nil {
			return 0, err
		}
		vals[i] = v
	}
	switch p.TypeID {
	case TypeSum:
		return aoc.Sum(vals...), nil
	case TypeProduct:
		prod := uint64(1)
		for _, v := range vals {
			prod *= v
		}
		return prod, nil
	case TypeMin, TypeMax:
		if len(vals) == 0 {
			return 0, fmt.Errorf("type %d packet has no sub-packets", p.TypeID)
		}
		if p.TypeID == TypeMin {
			return slices.Min(vals), nil
		}
		return slices.Max(vals), nil
	case TypeGreater, TypeLess, TypeEqual:
		if len(vals) != 2 {
			return 0, fmt.Errorf("type %d packet has %d sub-packets, want 2", p.TypeID, len(vals))
		}
		var ok bool
		switch p.TypeID {
		case TypeGreater:
			ok = vals[0] > vals[1]
		case TypeLess:
			ok = vals[0] < vals[1]
		default:
			ok = vals[0] == vals[1]
		}
		if ok {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("unknown packet type %d", p.TypeID)
}
