package repository

//go:generate mockgen -source=user.go -destination=mock/user.go -package=mock

import (
	"context"
	"time"

	"github.com/whenwework/platform-go/internal/domain/user"
	"gorm.io/gorm"
)

// UserFilter narrows List; nil fields are ignored.
type UserFilter struct {
	Role       *user.Role
	AdminID    *uint
	BusinessID *uint
	Page       int
	Limit      int
}

type UserRepo interface {
	Create(ctx context.Context, u *user.User) error
	GetByID(ctx context.Context, id uint) (user.User, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
	List(ctx context.Context, filter UserFilter) ([]user.User, error)
	Save(ctx context.Context, u *user.User) error
	UpdatePassword(ctx context.Context, id uint, hash string) error
	UpdatePhoto(ctx context.Context, id uint, url string) error
	TouchLastLogin(ctx context.Context, id uint, at time.Time) error
	Delete(ctx context.Context, id uint) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) Create(ctx context.Context, u *user.User) error {
	return translateError(r.db.WithContext(ctx).Create(u).Error)
}

func (r *DBUserRepo) GetByID(ctx context.Context, id uint) (user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).First(&u, id).Error
	return u, translateError(err)
}

func (r *DBUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	return u, translateError(err)
}

func (r *DBUserRepo) List(ctx context.Context, filter UserFilter) ([]user.User, error) {
	var users []user.User
	query := r.db.WithContext(ctx).Model(&user.User{})

	if filter.Role != nil {
		query = query.Where("user_role = ?", *filter.Role)
	}
	if filter.AdminID != nil {
		query = query.Where("admin_id = ?", *filter.AdminID)
	}
	if filter.BusinessID != nil {
		query = query.Where("business_id = ?", *filter.BusinessID)
	}

	offset, limit := paginate(filter.Page, filter.Limit)
	err := query.Order("id").Offset(offset).Limit(limit).Find(&users).Error
	return users, err
}

func (r *DBUserRepo) Save(ctx context.Context, u *user.User) error {
	return translateError(r.db.WithContext(ctx).Save(u).Error)
}

func (r *DBUserRepo) UpdatePassword(ctx context.Context, id uint, hash string) error {
	return r.updateColumn(ctx, id, "password", hash)
}

func (r *DBUserRepo) UpdatePhoto(ctx context.Context, id uint, url string) error {
	return r.updateColumn(ctx, id, "photo", url)
}

func (r *DBUserRepo) TouchLastLogin(ctx context.Context, id uint, at time.Time) error {
	return r.updateColumn(ctx, id, "last_login_at", at)
}

func (r *DBUserRepo) updateColumn(ctx context.Context, id uint, column string, value any) error {
	res := r.db.WithContext(ctx).Model(&user.User{}).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DBUserRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&user.User{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}
