package application

import (
	"time"

	"github.com/whenwework/platform-go/internal/events"
	"github.com/whenwework/platform-go/internal/mailer"
	"github.com/whenwework/platform-go/internal/pending"
	"github.com/whenwework/platform-go/internal/repository"
	"github.com/whenwework/platform-go/internal/storage"
	"go.uber.org/zap"
)

// Deps are the collaborators shared by services besides the repositories.
type Deps struct {
	Mailer     mailer.Mailer
	Pending    pending.Store
	Storage    storage.ObjectStore
	Events     events.Publisher
	Logger     *zap.Logger
	TokenTTL   time.Duration
	PendingTTL time.Duration
}

func (d Deps) withDefaults() Deps {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Mailer == nil {
		d.Mailer = mailer.NewLogMailer(d.Logger)
	}
	if d.Storage == nil {
		d.Storage = storage.DisabledStore{}
	}
	if d.Events == nil {
		d.Events = events.Nop{}
	}
	if d.TokenTTL == 0 {
		d.TokenTTL = 30 * time.Minute
	}
	if d.PendingTTL == 0 {
		d.PendingTTL = 10 * time.Minute
	}
	if d.Pending == nil {
		d.Pending = pending.NewMemoryStore(d.PendingTTL)
	}
	return d
}

type Services struct {
	Audit          *AuditService
	Business       *BusinessService
	User           *UserService
	Job            *JobService
	JobApplication *JobApplicationService
}

func New(repos *repository.Repos, deps Deps) *Services {
	deps = deps.withDefaults()
	return &Services{
		Audit:          NewAuditService(repos),
		Business:       NewBusinessService(repos, deps),
		User:           NewUserService(repos, deps),
		Job:            NewJobService(repos),
		JobApplication: NewJobApplicationService(repos, deps),
	}
}
