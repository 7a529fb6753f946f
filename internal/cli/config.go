package cli

import (
	"context"

	"github.com/lunaterra/chartwheel/pkg/cache"
	"github.com/lunaterra/chartwheel/pkg/config"
)

// withConfig returns a new context with the loaded configuration attached.
func withConfig(ctx context.Context, cfg config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext retrieves the configuration from ctx, falling back to
// the built-in defaults.
func configFromContext(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(configKey).(config.Config); ok {
		return cfg
	}
	return config.Default()
}

// openCache constructs the cache backend selected by the configuration.
// noCache forces the null backend regardless of configuration.
func openCache(ctx context.Context, cfg config.Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}

	switch cfg.Cache.Backend {
	case "none":
		return cache.NewNullCache(), nil
	case "redis":
		return cache.NewRedisCache(ctx, cfg.Cache.RedisAddr)
	default:
		dir, err := cfg.Cache.CacheDir()
		if err != nil {
			return nil, err
		}
		return cache.NewFileCache(dir)
	}
}
