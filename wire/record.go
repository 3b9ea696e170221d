package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"
)

// Well-known type/class codes this resolver understands or emits.
const (
	TypeA   uint16 = 1
	TypeOPT uint16 = 41

	ClassIN       uint16 = 1
	ClassOptUDPSz uint16 = 512
)

// recordHeaderSize is the fixed portion of a resource record following its
// name: type, class, ttl, rdlength.
const recordHeaderSize = 2 + 2 + 4 + 2

// ResourceRecord is a DNS resource record as decoded from or destined for
// the wire. RData always holds the raw rdlength bytes; for an A/IN record
// that's the four address octets, otherwise an opaque payload.
type ResourceRecord struct {
	Name      DomainName
	Type      uint16
	Class     uint16
	TTL       uint32
	RData     []byte
	CreatedAt time.Time
}

// IsA reports whether the record is an IPv4 address record (rtype=1,
// rclass=1), the one RDATA form this codec renders textually.
func (r ResourceRecord) IsA() bool {
	return r.Type == TypeA && r.Class == ClassIN
}

// DataString renders RData in human-readable form: a dotted quad for
// A/IN records, otherwise the raw bytes interpreted as text. This is a
// display form only — it is never part of the wire contract.
func (r ResourceRecord) DataString() string {
	if r.IsA() && len(r.RData) == 4 {
		return fmt.Sprintf("%d.%d.%d.%d", r.RData[0], r.RData[1], r.RData[2], r.RData[3])
	}
	return string(r.RData)
}

// Fresh reports whether the record is still valid at time now, i.e.
// now is strictly before CreatedAt + TTL seconds.
func (r ResourceRecord) Fresh(now time.Time) bool {
	return now.Before(r.CreatedAt.Add(time.Duration(r.TTL) * time.Second))
}

// buildStandardAdditionalRecord returns the canonical OPT-like pseudo
// record placed in the additional section of every response we build.
func buildStandardAdditionalRecord() ResourceRecord {
	return ResourceRecord{
		Name:  DomainName{},
		Type:  TypeOPT,
		Class: ClassOptUDPSz,
		TTL:   0,
		RData: []byte{},
	}
}

func decodeRecord(data []byte, offset int, now time.Time) (ResourceRecord, int, error) {
	name, offset, err := decodeName(data, offset)
	if err != nil {
		return ResourceRecord{}, 0, err
	}

	if offset+recordHeaderSize > len(data) {
		return ResourceRecord{}, 0, ErrMessageTooShort
	}

	rtype := binary.BigEndian.Uint16(data[offset : offset+2])
	rclass := binary.BigEndian.Uint16(data[offset+2 : offset+4])
	ttl := binary.BigEndian.Uint32(data[offset+4 : offset+8])
	rdlength := binary.BigEndian.Uint16(data[offset+8 : offset+10])
	offset += recordHeaderSize

	if offset+int(rdlength) > len(data) {
		return ResourceRecord{}, 0, ErrMessageTooShort
	}

	rdata := make([]byte, rdlength)
	copy(rdata, data[offset:offset+int(rdlength)])
	offset += int(rdlength)

	return ResourceRecord{
		Name:      name,
		Type:      rtype,
		Class:     rclass,
		TTL:       ttl,
		RData:     rdata,
		CreatedAt: now,
	}, offset, nil
}

func (r ResourceRecord) encode(buf *bytes.Buffer, table map[string]int) error {
	if err := encodeName(buf, r.Name, table); err != nil {
		return err
	}
	if err := binary.Write(buf, binary.BigEndian, r.Type); err != nil {
		return err
	}
	if err := binary.Write(buf, binary.BigEndian, r.Class); err != nil {
		return err
	}
	if err := binary.Write(buf, binary.BigEndian, r.TTL); err != nil {
		return err
	}
	if err := binary.Write(buf, binary.BigEndian, uint16(len(r.RData))); err != nil {
		return err
	}
	_, err := buf.Write(r.RData)
	return err
}
