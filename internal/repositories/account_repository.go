package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"voyago/internal/models/db_models"
)

// AccountRepository is the document-store contract the account service
// depends on. Lookups return (nil, nil) when no record matches; an error
// means the store itself failed.
type AccountRepository interface {
	Insert(ctx context.Context, account *db_models.Account) error
	FindByUsername(ctx context.Context, username string) (*db_models.Account, error)
	FindByCredentials(ctx context.Context, username, password string) (*db_models.Account, error)
	Exists(ctx context.Context, username string) (bool, error)
}

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository returns the Postgres-backed implementation.
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Create(account).Error
}

func (a *accountRepository) FindByUsername(ctx context.Context, username string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "username = ?", username).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindByCredentials(ctx context.Context, username, password string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).
		Where("username = ? AND password = ?", username, password).
		First(&account).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) Exists(ctx context.Context, username string) (bool, error) {
	account, err := a.FindByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return account != nil, nil
}
