package repository

import (
	"context"

	"gorm.io/gorm"
)

type Repos struct {
	Business       BusinessRepo
	User           UserRepo
	Job            JobRepo
	JobApplication JobApplicationRepo
	Audit          AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Business:       NewBusinessRepo(db),
		User:           NewUserRepo(db),
		Job:            NewJobRepo(db),
		JobApplication: NewJobApplicationRepo(db),
		Audit:          NewAuditRepo(db),
		db:             db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Business:       r.Business.WithTx(tx),
		User:           r.User.WithTx(tx),
		Job:            r.Job.WithTx(tx),
		JobApplication: r.JobApplication.WithTx(tx),
		Audit:          r.Audit.WithTx(tx),
		db:             tx,
	}
}

// ExecTx runs fn against repositories bound to one transaction.
// Without a database (unit tests with mocks) fn runs on r directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}

// Ping checks the underlying connection.
func (r *Repos) Ping(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
