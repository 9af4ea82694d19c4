package repositories

import (
	"regexp"
	"strconv"

	"github.com/google/uuid"
)

var numericRefPattern = regexp.MustCompile(`^\d+$`)

// EntityRef identifies a record by either its numeric primary key or its
// public UUID. Exactly one of the two forms is set.
type EntityRef struct {
	ID   uint
	UUID uuid.UUID

	numeric bool
}

// NewIDRef builds a reference from a numeric primary key.
func NewIDRef(id uint) EntityRef {
	return EntityRef{ID: id, numeric: true}
}

// NewUUIDRef builds a reference from a public UUID.
func NewUUIDRef(id uuid.UUID) EntityRef {
	return EntityRef{UUID: id}
}

// ParseEntityRef interprets a path parameter as either a numeric ID or a
// UUID. All-digit input is always treated as numeric.
func ParseEntityRef(raw string) (EntityRef, error) {
	if numericRefPattern.MatchString(raw) {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return EntityRef{}, err
		}
		return NewIDRef(uint(id)), nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return EntityRef{}, err
	}
	return NewUUIDRef(id), nil
}

// IsNumeric reports whether the reference carries a numeric primary key.
func (r EntityRef) IsNumeric() bool {
	return r.numeric
}

// String returns the canonical textual form of the reference.
func (r EntityRef) String() string {
	if r.numeric {
		return strconv.FormatUint(uint64(r.ID), 10)
	}
	return r.UUID.String()
}
