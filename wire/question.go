package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Question is a single DNS question: what name, of what type and class,
// a client is asking about. Questions are used as cache keys, so equality
// is structural over all three fields.
type Question struct {
	Name  DomainName
	Type  uint16
	Class uint16
}

// Equal reports whether q and other ask the same question.
func (q Question) Equal(other Question) bool {
	return q.Type == other.Type && q.Class == other.Class && q.Name.Equal(other.Name)
}

// Key returns a string uniquely identifying the question, suitable for use
// as a map key (DomainName is a slice and can't be a map key directly).
func (q Question) Key() string {
	return fmt.Sprintf("%s::%d::%d", q.Name, q.Type, q.Class)
}

func decodeQuestion(data []byte, offset int) (Question, int, error) {
	name, offset, err := decodeName(data, offset)
	if err != nil {
		return Question{}, 0, err
	}

	if offset+4 > len(data) {
		return Question{}, 0, ErrMessageTooShort
	}

	qtype := binary.BigEndian.Uint16(data[offset : offset+2])
	qclass := binary.BigEndian.Uint16(data[offset+2 : offset+4])

	return Question{Name: name, Type: qtype, Class: qclass}, offset + 4, nil
}

func (q Question) encode(buf *bytes.Buffer, table map[string]int) error {
	if err := encodeName(buf, q.Name, table); err != nil {
		return err
	}
	if err := binary.Write(buf, binary.BigEndian, q.Type); err != nil {
		return err
	}
	return binary.Write(buf, binary.BigEndian, q.Class)
}
