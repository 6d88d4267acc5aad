package application

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/whenwework/platform-go/internal/domain/business"
	"github.com/whenwework/platform-go/internal/mailer"
	"github.com/whenwework/platform-go/internal/metrics"
	"github.com/whenwework/platform-go/internal/pending"
	"github.com/whenwework/platform-go/internal/repository"
	"github.com/whenwework/platform-go/pkg/types"
	"github.com/whenwework/platform-go/pkg/utils"
	"go.uber.org/zap"
)

type BusinessService struct {
	Repos   *repository.Repos
	mailer  mailer.Mailer
	pending pending.Store
	ttl     time.Duration
	logger  *zap.Logger
	now     func() time.Time
}

func NewBusinessService(repos *repository.Repos, deps Deps) *BusinessService {
	deps = deps.withDefaults()
	return &BusinessService{
		Repos:   repos,
		mailer:  deps.Mailer,
		pending: deps.Pending,
		ttl:     deps.PendingTTL,
		logger:  deps.Logger,
		now:     time.Now,
	}
}

func (s *BusinessService) ensureEmailFree(ctx context.Context, email string) error {
	_, err := s.Repos.Business.GetByEmail(ctx, email)
	if err == nil {
		return ErrBusinessExists
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	return err
}

// RequestRegistration parks the payload and mails a one-time code to the
// business email.
func (s *BusinessService) RequestRegistration(ctx context.Context, input business.CreateBusinessInput) error {
	email := input.NormalizedEmail()
	if err := s.ensureEmailFree(ctx, email); err != nil {
		metrics.Registrations.WithLabelValues("request", metrics.OutcomeConflict).Inc()
		return err
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}

	input.Email = email
	reg := pending.Registration{
		OTP:       otp,
		Payload:   input,
		ExpiresAt: s.now().Add(s.ttl),
	}
	if err := s.pending.Put(ctx, email, reg); err != nil {
		return fmt.Errorf("store pending registration: %w", err)
	}

	if err := s.mailer.Send(ctx, mailer.OTPMessage(email, input.BusinessName, otp, s.ttl)); err != nil {
		_, _ = s.pending.Pop(ctx, email)
		metrics.Registrations.WithLabelValues("request", metrics.OutcomeError).Inc()
		return fmt.Errorf("send otp: %w", err)
	}

	metrics.Registrations.WithLabelValues("request", metrics.OutcomeOK).Inc()
	s.logger.Info("registration otp sent", zap.String("email", email))
	return nil
}

// VerifyAndRegister redeems the code. The pending entry is consumed whether or
// not the code matches. On success a setup token for the first admin is parked
// in the pending store.
func (s *BusinessService) VerifyAndRegister(ctx context.Context, input business.VerifyRegistrationInput) (business.RegistrationResult, error) {
	var res business.RegistrationResult
	email := business.CreateBusinessInput{Email: input.Email}.NormalizedEmail()

	reg, err := s.pending.Pop(ctx, email)
	if err != nil {
		if errors.Is(err, pending.ErrNotFound) {
			metrics.Registrations.WithLabelValues("verify", metrics.OutcomeConflict).Inc()
			return res, ErrInvalidOTP
		}
		return res, err
	}

	if subtle.ConstantTimeCompare([]byte(reg.OTP), []byte(input.OTP)) != 1 {
		metrics.Registrations.WithLabelValues("verify", metrics.OutcomeConflict).Inc()
		return res, ErrIncorrectOTP
	}

	if err := s.ensureEmailFree(ctx, email); err != nil {
		return res, err
	}

	b := reg.Payload.ToModel()
	token := uuid.NewString()
	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Business.Create(ctx, b); err != nil {
			return err
		}
		return s.pending.Put(ctx, pending.SetupKey(token), pending.Registration{BusinessID: b.ID})
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return res, ErrBusinessExists
		}
		return res, err
	}

	metrics.Registrations.WithLabelValues("verify", metrics.OutcomeOK).Inc()
	s.logger.Info("business registered", zap.Uint("business_id", b.ID), zap.String("email", email))
	return business.RegistrationResult{Business: *b, SetupToken: token}, nil
}

func (s *BusinessService) GetBusiness(ctx context.Context, id uint) (business.Business, error) {
	b, err := s.Repos.Business.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return b, ErrBusinessNotFound
	}
	return b, err
}

func (s *BusinessService) ListBusinesses(ctx context.Context, page, limit int) ([]business.Business, error) {
	return s.Repos.Business.List(ctx, page, limit)
}

// ownedBy reports whether the caller is an admin of business id.
func ownedBy(caller *types.Claims, id uint) bool {
	return caller.IsAdmin() && caller.BusinessID != nil && *caller.BusinessID == id
}

func (s *BusinessService) UpdateBusiness(ctx context.Context, caller *types.Claims, id uint, input business.UpdateBusinessInput) (business.Business, business.Business, error) {
	b, err := s.GetBusiness(ctx, id)
	if err != nil {
		return b, b, err
	}
	if !ownedBy(caller, id) {
		return b, b, ErrForbidden
	}

	old := b
	input.Apply(&b)
	if err := s.Repos.Business.Save(ctx, &b); err != nil {
		return old, b, err
	}
	return old, b, nil
}

func (s *BusinessService) DeleteBusiness(ctx context.Context, caller *types.Claims, id uint) error {
	if _, err := s.GetBusiness(ctx, id); err != nil {
		return err
	}
	if !ownedBy(caller, id) {
		return ErrForbidden
	}
	err := s.Repos.Business.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrBusinessNotFound
	}
	return err
}
