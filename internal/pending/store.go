// Package pending keeps business registrations that are waiting for OTP confirmation.
package pending

import (
	"context"
	"errors"
	"time"

	"github.com/whenwework/platform-go/internal/domain/business"
)

var ErrNotFound = errors.New("pending registration not found or expired")

// Registration is stored under the lowercased business email. Once the
// business exists, a second entry keyed by SetupKey carries only BusinessID
// and lets the owner create the first admin.
type Registration struct {
	OTP        string                       `json:"otp,omitempty"`
	Payload    business.CreateBusinessInput `json:"payload"`
	BusinessID uint                         `json:"business_id,omitempty"`
	ExpiresAt  time.Time                    `json:"expires_at"`
}

// SetupKey is the store key of an admin setup token.
func SetupKey(token string) string {
	return "setup:" + token
}

// Store holds registrations for a bounded time. Pop removes the entry so each
// OTP can be redeemed at most once.
type Store interface {
	Put(ctx context.Context, email string, reg Registration) error
	Pop(ctx context.Context, email string) (Registration, error)
}
