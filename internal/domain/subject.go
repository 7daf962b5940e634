package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SubjectKind distinguishes one-to-one services from group classes
type SubjectKind string

const (
	SubjectService SubjectKind = "service"
	SubjectClass   SubjectKind = "class"
)

// LocationType is the delivery mode of a subject as shown to requesters
type LocationType string

const (
	LocationAtHome   LocationType = "A Domicilio"
	LocationInPerson LocationType = "Presencial"
	LocationVirtual  LocationType = "Virtual"
	LocationAtTheGym LocationType = "En el Gimnasio"
)

// RequiresAddress returns true if the requester must supply a physical address
func (l LocationType) RequiresAddress() bool {
	return strings.EqualFold(strings.TrimSpace(string(l)), string(LocationAtHome))
}

// Subject is a bookable service or class offered by a provider
type Subject struct {
	ID           uuid.UUID
	ProviderID   uuid.UUID
	Kind         SubjectKind
	Title        string
	LocationType LocationType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
