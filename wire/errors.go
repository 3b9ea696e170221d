package wire

import "errors"

var (
	// ErrMessageTooShort is returned when a datagram is shorter than the
	// fixed 12 byte header, or ends before a section it claims to hold.
	ErrMessageTooShort = errors.New("wire: message too short")

	// ErrNameOutOfBounds is returned when a label or pointer would read
	// past the end of the enclosing message.
	ErrNameOutOfBounds = errors.New("wire: name read out of bounds")

	// ErrNameLabelTooLong is returned when a label length byte exceeds 63.
	ErrNameLabelTooLong = errors.New("wire: label exceeds 63 bytes")

	// ErrNameTooManyPointers is returned when decoding a name follows more
	// compression pointers than the configured hop bound, rejecting
	// adversarial or cyclic pointer chains.
	ErrNameTooManyPointers = errors.New("wire: too many compression pointer hops")

	// ErrNoQuestion is returned when a message has no question section,
	// which the resolver needs to key a cache lookup.
	ErrNoQuestion = errors.New("wire: message has no question")
)
