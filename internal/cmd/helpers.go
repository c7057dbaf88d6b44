package cmd

import (
	"context"
	"fmt"

	"github.com/emiller/platformprobe/internal/cache"
	"github.com/emiller/platformprobe/internal/config"
	"github.com/emiller/platformprobe/internal/filelock"
	"github.com/emiller/platformprobe/internal/libc"
	"github.com/emiller/platformprobe/internal/logger"
)

// probeLibc detects the host C library, going through the probe cache when
// configuration allows it. Cache trouble is never fatal: it is logged and
// detection falls back to a direct probe.
func probeLibc(ctx context.Context, cfg *config.Config, log *logger.ConsoleLogger) (libc.Info, error) {
	if !cfg.Cache.Enabled {
		log.LogDebug("probe cache disabled, probing directly")
		return libc.Detect(ctx)
	}

	target, ok := libc.CacheTarget()
	if !ok {
		log.LogDebug("no cacheable probe target on this host")
		return libc.Detect(ctx)
	}

	key, err := cache.Key(target)
	if err != nil {
		log.LogWarn("cannot key probe cache: %v", err)
		return libc.Detect(ctx)
	}

	store, err := cache.Open(cfg.Cache.Path)
	if err != nil {
		log.LogWarn("cannot open probe cache: %v", err)
		return libc.Detect(ctx)
	}
	defer store.Close()

	if entry, err := store.Get(ctx, key, cfg.Cache.TTL); err == nil && entry != nil {
		log.LogDebug("probe cache hit %s (recorded %s)", entry.ID, entry.CreatedAt.Format("2006-01-02 15:04:05"))
		return entry.Info(), nil
	} else if err != nil {
		log.LogWarn("probe cache lookup failed: %v", err)
	}

	// Serialize probe-and-record across concurrent invocations so only one
	// process forks the loader for a given cache generation.
	var info libc.Info
	lockPath := cfg.Cache.Path + ".lock"
	lockErr := filelock.WithLock(lockPath, func() error {
		// Another process may have recorded while we waited for the lock.
		if entry, err := store.Get(ctx, key, cfg.Cache.TTL); err == nil && entry != nil {
			log.LogDebug("probe cache filled while waiting on %s", lockPath)
			info = entry.Info()
			return nil
		}

		detected, err := libc.Detect(ctx)
		if err != nil {
			return err
		}
		info = detected

		entry, err := store.Put(ctx, key, detected)
		if err != nil {
			log.LogWarn("cannot record probe result: %v", err)
			return nil
		}
		log.LogDebug("recorded probe %s for %s", entry.ID, target)
		return nil
	})
	if lockErr != nil {
		return libc.Info{}, fmt.Errorf("probe C library: %w", lockErr)
	}
	return info, nil
}

// loadConfig loads configuration from an explicit path, or from the
// default search paths when the flag was left empty.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadConfig(path)
	}
	return config.Load()
}
