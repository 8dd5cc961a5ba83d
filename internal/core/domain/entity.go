package domain

import "time"

// clock is the time source for entity timestamps. Tests may replace it.
var clock = func() time.Time { return time.Now().UTC() }

// Entity holds the identity and audit timestamps shared by every aggregate.
// Aggregates embed it; createdAt never changes after construction.
type Entity[ID comparable] struct {
	id        ID
	createdAt time.Time
	updatedAt time.Time
}

func newEntity[ID comparable](id ID) Entity[ID] {
	now := clock()
	return Entity[ID]{id: id, createdAt: now, updatedAt: now}
}

func restoreEntity[ID comparable](id ID, createdAt, updatedAt time.Time) Entity[ID] {
	return Entity[ID]{id: id, createdAt: createdAt, updatedAt: updatedAt}
}

// ID returns the entity identity.
func (e *Entity[ID]) ID() ID { return e.id }

// CreatedAt returns when the entity was created.
func (e *Entity[ID]) CreatedAt() time.Time { return e.createdAt }

// UpdatedAt returns when the entity was last changed.
func (e *Entity[ID]) UpdatedAt() time.Time { return e.updatedAt }

func (e *Entity[ID]) touch() {
	e.updatedAt = clock()
}

// Identified is anything exposing an identity.
type Identified[ID comparable] interface {
	ID() ID
}

// SameIdentity reports whether a and b are the same entity. Attribute values
// are not compared. A nil aggregate pointer is never the same as anything.
func SameIdentity[ID comparable, E interface {
	comparable
	Identified[ID]
}](a, b E) bool {
	var none E
	if a == none || b == none {
		return false
	}
	return a.ID() == b.ID()
}
