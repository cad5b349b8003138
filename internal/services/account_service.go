package services

import (
	"context"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/repositories"
	"voyago/pkg/logger"
	"voyago/pkg/utils"
)

type AccountServiceInterface interface {
	Signup(ctx context.Context, req request_models.SignUpRequest) error
	Login(ctx context.Context, req request_models.LoginRequest) (*db_models.Account, error)
	Profile(ctx context.Context, username string) (*db_models.Account, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

// Signup creates a new account. Passwords are stored verbatim; credential
// hashing is deliberately out of scope here because login echoes the stored
// record back to the caller.
func (a *AccountService) Signup(ctx context.Context, req request_models.SignUpRequest) error {
	if req.Username == "" || req.Password == "" {
		return utils.ErrMissingCredentials
	}

	exists, err := a.accountRepo.Exists(ctx, req.Username)
	if err != nil {
		return utils.ErrStoreError
	}
	if exists {
		return utils.ErrUserExists
	}

	account := &db_models.Account{
		Username:    req.Username,
		Password:    req.Password,
		Age:         req.Age,
		Gender:      req.Gender,
		Nationality: req.Nationality,
		Preferences: req.Preferences,
	}

	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return utils.ErrStoreError
	}

	logger.Infof("User added: %s", req.Username)
	return nil
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (*db_models.Account, error) {
	account, err := a.accountRepo.FindByCredentials(ctx, req.Username, req.Password)
	if err != nil {
		return nil, utils.ErrStoreError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	logger.Infof("User logged in: %s", req.Username)
	return account, nil
}

func (a *AccountService) Profile(ctx context.Context, username string) (*db_models.Account, error) {
	account, err := a.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, utils.ErrStoreError
	}
	if account == nil {
		return nil, utils.ErrUserNotFound
	}
	return account, nil
}
