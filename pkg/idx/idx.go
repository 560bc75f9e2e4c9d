// Package idx mints the identifiers of accounts, properties and tenant
// bindings. IDs are ULIDs: 26 Crockford base32 characters whose lexical
// order is their creation order, so "newest first" listings can sort on
// the ID column alone.
package idx

import (
	"crypto/rand"
	"errors"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// ID is the canonical string form of a ULID.
type ID string

// Zero is the empty placeholder ID.
const Zero ID = ""

// ErrInvalid reports a string that is not a ULID.
var ErrInvalid = errors.New("idx: invalid ulid")

// entropy is safe for concurrent use and increments within a millisecond.
var entropy = &ulid.LockedMonotonicReader{
	MonotonicReader: ulid.Monotonic(rand.Reader, 0),
}

// New mints an ID for the current instant.
func New() ID {
	return NewAt(time.Now())
}

// NewAt mints an ID stamped with t. IDs minted for the same millisecond
// still sort in call order.
func NewAt(t time.Time) ID {
	return ID(ulid.MustNew(ulid.Timestamp(t), entropy).String())
}

// Parse accepts s if it is a strict ULID, ignoring surrounding space.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if _, err := ulid.ParseStrict(s); err != nil {
		return Zero, ErrInvalid
	}
	return ID(s), nil
}

// Valid reports whether s could name a stored row.
func Valid(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}

func (id ID) IsZero() bool   { return id == Zero }
func (id ID) String() string { return string(id) }

// Time is the millisecond the ID was minted at, or the zero time for an
// ID that does not parse.
func (id ID) Time() time.Time {
	u, err := ulid.ParseStrict(string(id))
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(u.Time()).UTC()
}
