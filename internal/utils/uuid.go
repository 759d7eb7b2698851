package utils

import "github.com/google/uuid"

// IDGenerator hands out vault entry identifiers. Ids are opaque to every
// caller; only uniqueness is relied on.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator generates version 7 UUIDs. They sort by creation time, which
// keeps the primary key index append-mostly.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

var _ IDGenerator = (*UUIDGenerator)(nil)

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

// Generate returns a new v7 id, falling back to a random v4 id if the
// clock-based generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := g.newV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
