package ai_fx

import (
	"context"

	"go.uber.org/fx"

	"voyago/internal/config"
	"voyago/internal/infra"
	"voyago/pkg/logger"
)

var Module = fx.Provide(provideTextGenerator, provideImageSearcher)

func provideTextGenerator(lc fx.Lifecycle, cfg *config.Config) (infra.TextGenerator, error) {
	generator, err := infra.NewTextGenerator(cfg)
	if err != nil {
		return nil, err
	}

	if closer, ok := generator.(interface{ Close() error }); ok {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})
	}

	logger.Infof("Text generation provider: %s", cfg.AIProvider)
	return generator, nil
}

func provideImageSearcher(cfg *config.Config) infra.ImageSearcher {
	return infra.NewUnsplashClient(cfg)
}
