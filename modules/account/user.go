package account

import (
	"time"

	"github.com/google/uuid"
)

// Role grants access to a part of the API.
type Role string

const (
	RoleAdmin      Role = "admin"
	RolePharmacist Role = "pharmacist"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RolePharmacist
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
