package trace

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"hash/crc32"
	"io"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvlath-sim/grerr"
)

// EventKind distinguishes an initialization-time rejection (Base) from
// a refinement-time deletion (Derivation).
type EventKind int

const (
	// EventBase marks a candidate pair rejected while seeding sim,
	// because the first semantic cluster checked did not license it.
	EventBase EventKind = iota
	// EventDerivation marks a candidate pair deleted during refinement,
	// because one of its licensing clusters no longer holds.
	EventDerivation
)

// Event is one trace record: the cluster responsible and the id-pair
// evidence against the pair it concerns.
type Event struct {
	Kind      EventKind
	ClusterID int
	Pairs     [][2]uint64
}

// Log is the ordered sequence of Events from one cluster-variant run.
// RunID identifies this in-memory Log instance for the caller's own
// bookkeeping (e.g. correlating it with a log line); it is never
// persisted, so WriteTo produces byte-identical output for two runs
// whose event sequences coincide, regardless of RunID.
type Log struct {
	RunID  uuid.UUID
	Events []Event
}

// New returns an empty Log stamped with a fresh RunID.
func New() *Log {
	return &Log{RunID: uuid.New()}
}

// Append records one event, copying pairs so later mutation by the
// caller cannot retroactively alter the log.
func (l *Log) Append(kind EventKind, clusterID int, pairs [][2]uint64) {
	cp := make([][2]uint64, len(pairs))
	copy(cp, pairs)
	l.Events = append(l.Events, Event{Kind: kind, ClusterID: clusterID, Pairs: cp})
}

// WriteTo serializes the Log as one length-prefixed, CRC32-checked gob
// record per Event, in insertion order. RunID is not part of the
// serialized form: two Logs with identical Events always serialize to
// identical bytes, regardless of RunID.
func (l *Log) WriteTo(w io.Writer) error {
	bw := bufio.NewWriter(w)

	for _, ev := range l.Events {
		var buf bytes.Buffer
		if err := gob.NewEncoder(&buf).Encode(ev); err != nil {
			return &grerr.TraceIOError{Op: "encode event", Err: err}
		}
		payload := buf.Bytes()

		var lenPrefix [4]byte
		binary.BigEndian.PutUint32(lenPrefix[:], uint32(len(payload)))
		if _, err := bw.Write(lenPrefix[:]); err != nil {
			return &grerr.TraceIOError{Op: "write record length", Err: err}
		}
		if _, err := bw.Write(payload); err != nil {
			return &grerr.TraceIOError{Op: "write record payload", Err: err}
		}

		var sumBytes [4]byte
		binary.BigEndian.PutUint32(sumBytes[:], crc32.ChecksumIEEE(payload))
		if _, err := bw.Write(sumBytes[:]); err != nil {
			return &grerr.TraceIOError{Op: "write record checksum", Err: err}
		}
	}

	if err := bw.Flush(); err != nil {
		return &grerr.TraceIOError{Op: "flush", Err: err}
	}
	return nil
}

// ReadFrom deserializes a Log written by WriteTo. A record whose
// trailing CRC32 does not match its payload is reported as a
// *grerr.TraceIOError rather than silently accepted. The returned
// Log's RunID is freshly generated: RunID is not part of the
// serialized form, so nothing to restore it from exists in r.
func ReadFrom(r io.Reader) (*Log, error) {
	br := bufio.NewReader(r)

	log := &Log{RunID: uuid.New()}

	for {
		var lenPrefix [4]byte
		_, err := io.ReadFull(br, lenPrefix[:])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &grerr.TraceIOError{Op: "read record length", Err: err}
		}

		payloadLen := binary.BigEndian.Uint32(lenPrefix[:])
		payload := make([]byte, payloadLen)
		if _, err := io.ReadFull(br, payload); err != nil {
			return nil, &grerr.TraceIOError{Op: "read record payload", Err: err}
		}

		var sumBytes [4]byte
		if _, err := io.ReadFull(br, sumBytes[:]); err != nil {
			return nil, &grerr.TraceIOError{Op: "read record checksum", Err: err}
		}
		if binary.BigEndian.Uint32(sumBytes[:]) != crc32.ChecksumIEEE(payload) {
			return nil, &grerr.TraceIOError{Op: "verify record checksum", Err: errChecksumMismatch}
		}

		var ev Event
		if err := gob.NewDecoder(bytes.NewReader(payload)).Decode(&ev); err != nil {
			return nil, &grerr.TraceIOError{Op: "decode event", Err: err}
		}
		log.Events = append(log.Events, ev)
	}

	return log, nil
}

var errChecksumMismatch = checksumMismatchError{}

type checksumMismatchError struct{}

func (checksumMismatchError) Error() string { return "trace record checksum mismatch" }
