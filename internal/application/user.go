package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/whenwework/platform-go/internal/api/middleware"
	"github.com/whenwework/platform-go/internal/domain/user"
	"github.com/whenwework/platform-go/internal/mailer"
	"github.com/whenwework/platform-go/internal/pending"
	"github.com/whenwework/platform-go/internal/repository"
	"github.com/whenwework/platform-go/internal/storage"
	"github.com/whenwework/platform-go/pkg/types"
	"github.com/whenwework/platform-go/pkg/utils"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenType = "bearer"

type UserService struct {
	Repos    *repository.Repos
	mailer   mailer.Mailer
	pending  pending.Store
	store    storage.ObjectStore
	tokenTTL time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

func NewUserService(repos *repository.Repos, deps Deps) *UserService {
	deps = deps.withDefaults()
	return &UserService{
		Repos:    repos,
		mailer:   deps.Mailer,
		pending:  deps.Pending,
		store:    deps.Storage,
		tokenTTL: deps.TokenTTL,
		logger:   deps.Logger,
		now:      time.Now,
	}
}

func hashPassword(pw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrPasswordHashFailure
	}
	return string(hashed), nil
}

// canManage reports whether caller may change target: itself or its own workers.
func canManage(caller *types.Claims, target user.User) bool {
	callerID, err := caller.UserID()
	if err != nil {
		return false
	}
	if target.ID == callerID {
		return true
	}
	return caller.IsAdmin() && target.UserRole == user.RoleWorker &&
		target.AdminID != nil && *target.AdminID == callerID
}

// canView extends canManage with read access to admins of the same business.
func canView(caller *types.Claims, target user.User) bool {
	if canManage(caller, target) {
		return true
	}
	return caller.IsAdmin() && target.UserRole == user.RoleAdmin &&
		caller.BusinessID != nil && target.BusinessID != nil && *caller.BusinessID == *target.BusinessID
}

func (s *UserService) ensureEmailFree(ctx context.Context, email string) error {
	_, err := s.Repos.User.GetByEmail(ctx, email)
	if err == nil {
		return ErrEmailTaken
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	return err
}

// CreateUser registers an admin or a worker. Workers need an admin caller and
// belong to that admin and its business. Admins created by an admin join the
// caller's business; anonymous admins join a business only by redeeming its
// setup token. A missing password is generated and mailed to the user.
func (s *UserService) CreateUser(ctx context.Context, caller *types.Claims, input user.CreateUserInput) (user.CreateUserResult, error) {
	var res user.CreateUserResult

	u := input.ToModel()
	switch input.UserRole {
	case user.RoleWorker:
		if caller == nil || !caller.IsAdmin() {
			return res, ErrAdminRequired
		}
		adminID, _ := caller.UserID()
		u.AdminID = &adminID
		u.BusinessID = caller.BusinessID
	case user.RoleAdmin:
		if caller != nil && !caller.IsAdmin() {
			return res, ErrForbidden
		}
		if caller != nil {
			u.BusinessID = caller.BusinessID
		}
	default:
		return res, fmt.Errorf("unknown user role %q", input.UserRole)
	}

	if err := s.ensureEmailFree(ctx, u.Email); err != nil {
		return res, err
	}

	var setup *pending.Registration
	if caller == nil && input.SetupToken != "" {
		reg, err := s.pending.Pop(ctx, pending.SetupKey(input.SetupToken))
		if err != nil {
			if errors.Is(err, pending.ErrNotFound) {
				return res, ErrInvalidSetupToken
			}
			return res, err
		}
		u.BusinessID = &reg.BusinessID
		setup = &reg
	}

	generated := false
	password := ""
	if input.Password != nil && *input.Password != "" {
		password = *input.Password
	} else {
		pw, err := utils.GeneratePassword()
		if err != nil {
			return res, fmt.Errorf("generate password: %w", err)
		}
		password, generated = pw, true
	}

	hashed, err := hashPassword(password)
	if err != nil {
		return res, err
	}
	u.Password = hashed

	if err := s.Repos.User.Create(ctx, u); err != nil {
		if setup != nil {
			_ = s.pending.Put(ctx, pending.SetupKey(input.SetupToken), *setup)
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return res, ErrEmailTaken
		}
		return res, err
	}

	if generated {
		if err := s.mailer.Send(ctx, mailer.PasswordMessage(u.Email, u.FullName(), password)); err != nil {
			s.logger.Error("failed to mail generated password", zap.Uint("user_id", u.ID), zap.Error(err))
		}
	}

	token, err := middleware.GenerateToken(*u, s.tokenTTL)
	if err != nil {
		return res, err
	}

	return user.CreateUserResult{User: *u, AccessToken: token, TokenType: tokenType}, nil
}

func (s *UserService) Login(ctx context.Context, input user.LoginInput) (user.LoginResult, error) {
	var res user.LoginResult

	email := strings.ToLower(strings.TrimSpace(input.Email))
	usr, err := s.Repos.User.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return res, ErrInvalidCredentials
		}
		return res, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(input.Password)); err != nil {
		return res, ErrInvalidCredentials
	}
	if !usr.IsActive {
		return res, ErrAccountDisabled
	}

	token, err := middleware.GenerateToken(usr, s.tokenTTL)
	if err != nil {
		return res, err
	}

	now := s.now()
	if err := s.Repos.User.TouchLastLogin(ctx, usr.ID, now); err != nil {
		s.logger.Warn("failed to stamp last login", zap.Uint("user_id", usr.ID), zap.Error(err))
	}

	res = user.LoginResult{
		ID:          usr.ID,
		Name:        usr.FullName(),
		Email:       usr.Email,
		UserRole:    usr.UserRole,
		AdminID:     usr.AdminID,
		LastLoginAt: &now,
		AccessToken: token,
		TokenType:   tokenType,
	}
	if usr.BusinessID != nil {
		if b, err := s.Repos.Business.GetByID(ctx, *usr.BusinessID); err == nil {
			res.BusinessName = &b.BusinessName
		}
	}
	return res, nil
}

// ForgotPassword replaces the password with a generated one and mails it.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	usr, err := s.Repos.User.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	password, err := utils.GeneratePassword()
	if err != nil {
		return fmt.Errorf("generate password: %w", err)
	}
	hashed, err := hashPassword(password)
	if err != nil {
		return err
	}
	if err := s.Repos.User.UpdatePassword(ctx, usr.ID, hashed); err != nil {
		return err
	}
	return s.mailer.Send(ctx, mailer.PasswordMessage(usr.Email, usr.FullName(), password))
}

func (s *UserService) getUser(ctx context.Context, id uint) (user.User, error) {
	u, err := s.Repos.User.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return u, ErrUserNotFound
	}
	return u, err
}

func (s *UserService) FindUserByID(ctx context.Context, caller *types.Claims, id uint) (user.User, error) {
	u, err := s.getUser(ctx, id)
	if err != nil {
		return u, err
	}
	if !canView(caller, u) {
		return user.User{}, ErrForbidden
	}
	return u, nil
}

// ManagedUser loads a user the caller may modify.
func (s *UserService) ManagedUser(ctx context.Context, caller *types.Claims, id uint) (user.User, error) {
	u, err := s.getUser(ctx, id)
	if err != nil {
		return u, err
	}
	if !canManage(caller, u) {
		return user.User{}, ErrForbidden
	}
	return u, nil
}

// ListWorkers returns the workers owned by adminID.
func (s *UserService) ListWorkers(ctx context.Context, adminID uint, page, limit int) ([]user.User, error) {
	role := user.RoleWorker
	return s.Repos.User.List(ctx, repository.UserFilter{Role: &role, AdminID: &adminID, Page: page, Limit: limit})
}

// ListAdmins returns the admins of the caller's business, or just the caller
// when it has no business.
func (s *UserService) ListAdmins(ctx context.Context, caller *types.Claims, page, limit int) ([]user.User, error) {
	if caller.BusinessID == nil {
		id, _ := caller.UserID()
		u, err := s.getUser(ctx, id)
		if err != nil {
			return nil, err
		}
		return []user.User{u}, nil
	}
	role := user.RoleAdmin
	return s.Repos.User.List(ctx, repository.UserFilter{Role: &role, BusinessID: caller.BusinessID, Page: page, Limit: limit})
}

// UpdateUser is the admin-side update. It returns the record before and after.
func (s *UserService) UpdateUser(ctx context.Context, caller *types.Claims, id uint, input user.UpdateUserInput) (user.User, user.User, error) {
	u, err := s.getUser(ctx, id)
	if err != nil {
		return u, u, err
	}
	if !canManage(caller, u) {
		return u, u, ErrForbidden
	}
	old := u

	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if email != u.Email {
			if err := s.ensureEmailFree(ctx, email); err != nil {
				return old, u, err
			}
		}
	}
	input.Apply(&u)

	if input.Password != nil {
		hashed, err := hashPassword(*input.Password)
		if err != nil {
			return old, u, err
		}
		u.Password = hashed
	}

	if err := s.Repos.User.Save(ctx, &u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return old, u, ErrEmailTaken
		}
		return old, u, err
	}
	return old, u, nil
}

// UpdateSelf lets a user edit their own profile fields.
func (s *UserService) UpdateSelf(ctx context.Context, id uint, input user.UpdateWorkerInput) (user.User, user.User, error) {
	u, err := s.getUser(ctx, id)
	if err != nil {
		return u, u, err
	}
	old := u
	input.Apply(&u)

	if input.Password != nil {
		hashed, err := hashPassword(*input.Password)
		if err != nil {
			return old, u, err
		}
		u.Password = hashed
	}

	if err := s.Repos.User.Save(ctx, &u); err != nil {
		return old, u, err
	}
	return old, u, nil
}

func (s *UserService) RemoveUser(ctx context.Context, caller *types.Claims, id uint) (user.User, error) {
	u, err := s.getUser(ctx, id)
	if err != nil {
		return u, err
	}
	if !canManage(caller, u) {
		return u, ErrForbidden
	}
	if u.UserRole == user.RoleWorker {
		n, err := s.Repos.JobApplication.CountByWorker(ctx, id)
		if err != nil {
			return u, err
		}
		if n > 0 {
			return u, ErrUserHasApplications
		}
	}
	if err := s.Repos.User.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return u, ErrUserNotFound
		case errors.Is(err, repository.ErrInUse):
			return u, ErrUserHasApplications
		}
		return u, err
	}
	return u, nil
}

// UploadPhoto stores a new profile photo and records its URL on the user.
func (s *UserService) UploadPhoto(ctx context.Context, id uint, filename, contentType string, r io.Reader, size int64) (string, error) {
	if _, err := s.getUser(ctx, id); err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("users/%d/%s%s", id, uuid.NewString(), strings.ToLower(path.Ext(filename)))
	url, err := s.store.Upload(ctx, objectName, contentType, r, size)
	if err != nil {
		if errors.Is(err, storage.ErrDisabled) {
			return "", ErrStorageDisabled
		}
		return "", fmt.Errorf("upload photo: %w", err)
	}

	if err := s.Repos.User.UpdatePhoto(ctx, id, url); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	return url, nil
}
