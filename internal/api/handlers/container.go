package handlers

import (
	"github.com/whenwework/platform-go/internal/application"
	"github.com/whenwework/platform-go/internal/events"
	"github.com/whenwework/platform-go/internal/repository"
	"go.uber.org/zap"
)

type Options struct {
	AppName      string
	AppVersion   string
	SecureCookie bool
	Logger       *zap.Logger
}

type Handlers struct {
	Audit          *AuditHandler
	Business       *BusinessHandler
	User           *UserHandler
	Job            *JobHandler
	JobApplication *JobApplicationHandler
	Events         *EventsHandler
	System         *SystemHandler
}

func New(svc *application.Services, repos *repository.Repos, hub *events.Hub, opts Options) *Handlers {
	return &Handlers{
		Audit:          NewAuditHandler(svc.Audit, svc.User),
		Business:       NewBusinessHandler(svc.Business, repos.Audit),
		User:           NewUserHandler(svc.User, repos.Audit, opts.SecureCookie),
		Job:            NewJobHandler(svc.Job, repos.Audit),
		JobApplication: NewJobApplicationHandler(svc.JobApplication, repos.Audit),
		Events:         NewEventsHandler(hub, opts.Logger),
		System:         NewSystemHandler(opts.AppName, opts.AppVersion, repos),
	}
}
