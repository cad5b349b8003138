package services

import (
	"context"
	"errors"
	"testing"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

// countingRepo wraps the memory repository and counts store accesses.
type countingRepo struct {
	repositories.AccountRepository
	calls int
}

func (c *countingRepo) Exists(ctx context.Context, username string) (bool, error) {
	c.calls++
	return c.AccountRepository.Exists(ctx, username)
}

func (c *countingRepo) Insert(ctx context.Context, account *db_models.Account) error {
	c.calls++
	return c.AccountRepository.Insert(ctx, account)
}

func signupAlice(t *testing.T, svc AccountServiceInterface) {
	t.Helper()
	err := svc.Signup(context.Background(), request_models.SignUpRequest{
		Username:    "alice",
		Password:    "secret",
		Age:         30,
		Nationality: "IN",
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
}

func TestSignupMissingCredentials(t *testing.T) {
	repo := &countingRepo{AccountRepository: repositories.NewMemoryAccountRepository()}
	svc := NewAccountService(repo)

	for _, req := range []request_models.SignUpRequest{
		{Username: "", Password: "secret"},
		{Username: "alice", Password: ""},
	} {
		if err := svc.Signup(context.Background(), req); !errors.Is(err, utils.ErrMissingCredentials) {
			t.Errorf("Signup(%+v) err = %v, want ErrMissingCredentials", req, err)
		}
	}
	if repo.calls != 0 {
		t.Errorf("store accessed %d times before validation, want 0", repo.calls)
	}
}

func TestSignupDuplicateUsername(t *testing.T) {
	svc := NewAccountService(repositories.NewMemoryAccountRepository())
	signupAlice(t, svc)

	err := svc.Signup(context.Background(), request_models.SignUpRequest{Username: "alice", Password: "other"})
	if !errors.Is(err, utils.ErrUserExists) {
		t.Errorf("duplicate signup err = %v, want ErrUserExists", err)
	}
}

func TestLogin(t *testing.T) {
	svc := NewAccountService(repositories.NewMemoryAccountRepository())
	signupAlice(t, svc)

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), request_models.LoginRequest{Username: "alice", Password: "wrong"})
		if !errors.Is(err, utils.ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(context.Background(), request_models.LoginRequest{Username: "bob", Password: "secret"})
		if !errors.Is(err, utils.ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("valid credentials", func(t *testing.T) {
		account, err := svc.Login(context.Background(), request_models.LoginRequest{Username: "alice", Password: "secret"})
		if err != nil {
			t.Fatalf("login failed: %v", err)
		}
		// The stored record is echoed as-is, password included.
		if account.Username != "alice" || account.Password != "secret" || account.Age != 30 {
			t.Errorf("unexpected account: %+v", account)
		}
	})
}

func TestProfile(t *testing.T) {
	svc := NewAccountService(repositories.NewMemoryAccountRepository())
	signupAlice(t, svc)

	if _, err := svc.Profile(context.Background(), "nobody"); !errors.Is(err, utils.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}

	account, err := svc.Profile(context.Background(), "alice")
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if account.Nationality != "IN" {
		t.Errorf("unexpected account: %+v", account)
	}
}
