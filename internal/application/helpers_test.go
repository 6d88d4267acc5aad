package application

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/whenwework/platform-go/internal/domain/user"
	"github.com/whenwework/platform-go/internal/mailer"
	"github.com/whenwework/platform-go/pkg/types"
)

func ptrString(s string) *string { return &s }
func ptrUint(v uint) *uint       { return &v }
func ptrInt(v int) *int          { return &v }

func adminClaims(id uint, businessID *uint) *types.Claims {
	return &types.Claims{
		Role:             string(user.RoleAdmin),
		BusinessID:       businessID,
		RegisteredClaims: jwt.RegisteredClaims{Subject: strconv.FormatUint(uint64(id), 10)},
	}
}

func workerClaims(id, adminID uint) *types.Claims {
	return &types.Claims{
		Role:             string(user.RoleWorker),
		AdminID:          &adminID,
		RegisteredClaims: jwt.RegisteredClaims{Subject: strconv.FormatUint(uint64(id), 10)},
	}
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
	err  error
}

func (f *fakeMailer) Send(_ context.Context, msg mailer.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return f.err
}

func (f *fakeMailer) last() mailer.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sent[len(f.sent)-1]
}

var fixedNow = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
