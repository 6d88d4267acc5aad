package repository

//go:generate mockgen -source=business.go -destination=mock/business.go -package=mock

import (
	"context"

	"github.com/whenwework/platform-go/internal/domain/business"
	"gorm.io/gorm"
)

type BusinessRepo interface {
	Create(ctx context.Context, b *business.Business) error
	GetByID(ctx context.Context, id uint) (business.Business, error)
	GetByEmail(ctx context.Context, email string) (business.Business, error)
	List(ctx context.Context, page, limit int) ([]business.Business, error)
	Save(ctx context.Context, b *business.Business) error
	Delete(ctx context.Context, id uint) error
	WithTx(tx *gorm.DB) BusinessRepo
}

type DBBusinessRepo struct {
	db *gorm.DB
}

func NewBusinessRepo(db *gorm.DB) *DBBusinessRepo {
	return &DBBusinessRepo{
		db: db,
	}
}

func (r *DBBusinessRepo) Create(ctx context.Context, b *business.Business) error {
	return translateError(r.db.WithContext(ctx).Create(b).Error)
}

func (r *DBBusinessRepo) GetByID(ctx context.Context, id uint) (business.Business, error) {
	var b business.Business
	err := r.db.WithContext(ctx).First(&b, id).Error
	return b, translateError(err)
}

func (r *DBBusinessRepo) GetByEmail(ctx context.Context, email string) (business.Business, error) {
	var b business.Business
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&b).Error
	return b, translateError(err)
}

func (r *DBBusinessRepo) List(ctx context.Context, page, limit int) ([]business.Business, error) {
	var out []business.Business
	offset, limit := paginate(page, limit)
	err := r.db.WithContext(ctx).Order("id").Offset(offset).Limit(limit).Find(&out).Error
	return out, err
}

func (r *DBBusinessRepo) Save(ctx context.Context, b *business.Business) error {
	return translateError(r.db.WithContext(ctx).Save(b).Error)
}

func (r *DBBusinessRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&business.Business{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DBBusinessRepo) WithTx(tx *gorm.DB) BusinessRepo {
	if tx == nil {
		return r
	}
	return &DBBusinessRepo{
		db: tx,
	}
}

// paginate defaults to the first page of 10, capping limit at 100.
func paginate(page, limit int) (offset, size int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return (page - 1) * limit, limit
}
