package types

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the bearer token payload. Subject carries the user id.
type Claims struct {
	Role       string `json:"role"`
	AdminID    *uint  `json:"admin_id,omitempty"`
	BusinessID *uint  `json:"business_id,omitempty"`
	jwt.RegisteredClaims
}

// UserID parses the numeric subject.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	return uint(id), err
}

func (c *Claims) IsAdmin() bool {
	return c.Role == "admin"
}

func (c *Claims) IsWorker() bool {
	return c.Role == "worker"
}

// TenantAdminID is the admin whose data the caller may see: the caller itself
// for admins, the owning admin for workers.
func (c *Claims) TenantAdminID() uint {
	if c.IsAdmin() {
		id, _ := c.UserID()
		return id
	}
	if c.AdminID != nil {
		return *c.AdminID
	}
	return 0
}
