package wire

import (
	"bytes"
	"time"
)

// Message is a complete DNS message: a header plus its four sections.
// Raw is the exact bytes a decoded message was parsed from, retained so
// name decompression can index back into it. Encode does not set it: for
// messages built in memory it stays nil until the caller stores Encode's
// result there (BuildResponse does so).
type Message struct {
	Raw []byte

	Header Header

	Questions  []Question
	Answers    []ResourceRecord
	Authority  []ResourceRecord
	Additional []ResourceRecord
}

// DecodeMessage parses a full DNS message out of data. now stamps the
// CreatedAt field of every decoded resource record.
func DecodeMessage(data []byte, now time.Time) (*Message, error) {
	header, err := decodeHeader(data)
	if err != nil {
		return nil, err
	}

	msg := &Message{Raw: data, Header: header}
	offset := headerSize

	msg.Questions = make([]Question, 0, header.QDCount)
	for i := uint16(0); i < header.QDCount; i++ {
		q, next, err := decodeQuestion(data, offset)
		if err != nil {
			return nil, err
		}
		msg.Questions = append(msg.Questions, q)
		offset = next
	}

	for _, n := range []struct {
		count uint16
		dst   *[]ResourceRecord
	}{
		{header.ANCount, &msg.Answers},
		{header.NSCount, &msg.Authority},
		{header.ARCount, &msg.Additional},
	} {
		records := make([]ResourceRecord, 0, n.count)
		for i := uint16(0); i < n.count; i++ {
			rr, next, err := decodeRecord(data, offset, now)
			if err != nil {
				return nil, err
			}
			records = append(records, rr)
			offset = next
		}
		*n.dst = records
	}

	return msg, nil
}

// Encode serializes the message, sharing a single name-compression table
// across every section so cross-section suffix reuse is exploited.
func (m *Message) Encode() []byte {
	buf := new(bytes.Buffer)
	buf.Write(m.Header.encode())

	table := make(map[string]int)
	for _, q := range m.Questions {
		q.encode(buf, table)
	}
	for _, rr := range m.Answers {
		rr.encode(buf, table)
	}
	for _, rr := range m.Authority {
		rr.encode(buf, table)
	}
	for _, rr := range m.Additional {
		rr.encode(buf, table)
	}

	return buf.Bytes()
}

// FirstQuestion returns the request's first question, or an error if the
// message carries none — the resolver loop only ever considers one.
func (m *Message) FirstQuestion() (Question, error) {
	if len(m.Questions) == 0 {
		return Question{}, ErrNoQuestion
	}
	return m.Questions[0], nil
}

// BuildResponse constructs a response to request carrying answers as the
// answer section: header per buildResponseHeader, question list copied
// from the request, empty authority section, and a single standard OPT
// additional record. The response's raw bytes are computed eagerly.
func BuildResponse(request *Message, answers []ResourceRecord) *Message {
	response := &Message{
		Header:     buildResponseHeader(request.Header),
		Questions:  request.Questions,
		Answers:    answers,
		Authority:  nil,
		Additional: []ResourceRecord{buildStandardAdditionalRecord()},
	}
	response.Raw = response.Encode()
	return response
}
