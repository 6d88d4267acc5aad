package application

import (
	"errors"

	"github.com/whenwework/platform-go/internal/domain/jobapplication"
)

var (
	ErrForbidden           = errors.New("not allowed to access this resource")
	ErrPasswordHashFailure = errors.New("failed to hash password")

	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAccountDisabled     = errors.New("account is disabled")
	ErrAdminRequired       = errors.New("only an admin can create workers")
	ErrStorageDisabled     = errors.New("photo storage is not configured")
	ErrInvalidSetupToken   = errors.New("invalid or expired setup token")
	ErrUserHasApplications = errors.New("user still has job applications")

	ErrBusinessNotFound = errors.New("business not found")
	ErrBusinessExists   = errors.New("business with this email already exists")
	ErrInvalidOTP       = errors.New("Invalid or expired OTP")
	ErrIncorrectOTP     = errors.New("Incorrect OTP")

	ErrJobNotFound        = errors.New("job not found")
	ErrJobNotOpen         = errors.New("job is not accepting applications")
	ErrJobHasApplications = errors.New("job still has applications")

	ErrApplicationNotFound = errors.New("job application not found")
	ErrApplicationExists   = errors.New("already applied to this job")
	ErrInvalidTransition   = jobapplication.ErrInvalidTransition
	ErrWithdrawNotAllowed  = errors.New("only applications that are still applied can be withdrawn")
	ErrInvalidStatus       = errors.New("invalid status value")
	ErrNoStatusChange      = errors.New("exactly one of approved_status, work_status or payment_status is required")
)
