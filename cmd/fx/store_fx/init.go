package store_fx

import (
	"context"
	"strings"

	"go.uber.org/fx"

	"voyago/internal/config"
	"voyago/internal/infra"
	"voyago/internal/repositories"
	"voyago/pkg/logger"
)

var Module = fx.Provide(provideAccountRepository)

// provideAccountRepository selects the account store backend. The service
// layer only ever sees the AccountRepository interface, so the three
// backends are interchangeable.
func provideAccountRepository(lc fx.Lifecycle, cfg *config.Config) (repositories.AccountRepository, error) {
	switch strings.ToLower(cfg.StoreBackend) {
	case "firestore":
		client, err := infra.InitFirestore(cfg)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				infra.CloseFirestore(client)
				return nil
			},
		})
		logger.Infof("Account store backend: firestore (project %s)", cfg.FirestoreProjectID)
		return repositories.NewFirestoreAccountRepository(client), nil

	case "postgres":
		db, err := infra.InitPostgresql(cfg)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				infra.ClosePostgresql(db)
				return nil
			},
		})
		logger.Infof("Account store backend: postgres")
		return repositories.NewAccountRepository(db), nil

	default:
		logger.Infof("Account store backend: memory")
		return repositories.NewMemoryAccountRepository(), nil
	}
}
