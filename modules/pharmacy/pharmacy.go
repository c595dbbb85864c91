package pharmacy

import (
	"time"

	"github.com/google/uuid"
)

// Status tells whether a pharmacy is currently on duty.
type Status string

const (
	StatusOnDuty Status = "en garde"
	StatusClosed Status = "fermé"
)

// Toggle returns the opposite status.
func (s Status) Toggle() Status {
	if s == StatusOnDuty {
		return StatusClosed
	}
	return StatusOnDuty
}

type Pharmacy struct {
	ID             uuid.UUID `json:"id"`
	OwnerID        uuid.UUID `json:"owner_id"`
	Name           string    `json:"name"`
	PharmacistName string    `json:"pharmacist_name"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	Phone          string    `json:"phone"`
	Status         Status    `json:"status"`
	Verified       bool      `json:"verified"`
	CreatedAt      time.Time `json:"created_at"`
}

// Info holds the fields a pharmacist may edit.
type Info struct {
	Name           string `json:"name"`
	PharmacistName string `json:"pharmacist_name"`
	Address        string `json:"address"`
	City           string `json:"city"`
	Phone          string `json:"phone"`
}

func (p *Pharmacy) apply(info Info) {
	p.Name = info.Name
	p.PharmacistName = info.PharmacistName
	p.Address = info.Address
	p.City = info.City
	p.Phone = info.Phone
}

// Filter narrows the admin listing.
type Filter string

const (
	FilterAll        Filter = "all"
	FilterVerified   Filter = "verified"
	FilterUnverified Filter = "unverified"
)

// ParseFilter maps an empty value to FilterAll. ok is false for unknown values.
func ParseFilter(s string) (Filter, bool) {
	switch f := Filter(s); f {
	case "", FilterAll:
		return FilterAll, true
	case FilterVerified, FilterUnverified:
		return f, true
	default:
		return FilterAll, false
	}
}

func (f Filter) match(p Pharmacy) bool {
	switch f {
	case FilterVerified:
		return p.Verified
	case FilterUnverified:
		return !p.Verified
	default:
		return true
	}
}

type Stats struct {
	Total      int `json:"total"`
	Verified   int `json:"verified"`
	Unverified int `json:"unverified"`
	OnDuty     int `json:"on_duty"`
}

// Query selects on-duty pharmacies. Empty fields match everything.
type Query struct {
	City string
	Term string
}
