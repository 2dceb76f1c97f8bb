package slim

import (
	"errors"
	"fmt"
	"time"

	"slim/internal/config"
	"slim/internal/service"
	"slim/internal/store"
)

// withService opens the store, loads (or defaults) the config, and hands a
// ready QueryService plus the raw store to run.
func withService(run func(*store.Store, *service.QueryService, *config.Config) error) error {
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		def := config.DefaultConfig()
		cfg = &def
	} else if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	svc, err := service.NewQueryService(st, cfg)
	if err != nil {
		return err
	}
	return run(st, svc, cfg)
}

// withStore opens just the store for write-path commands.
func withStore(run func(*store.Store) error) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()
	return run(st)
}

func openStore() (*store.Store, error) {
	if dbPath != "" {
		return store.OpenPath(dbPath)
	}
	return store.Open()
}

// parseDateOrNow parses a YYYY-MM-DD flag, or returns now when empty.
// Flags are interpreted in the local zone; the engine re-buckets every
// timestamp in the configured reference zone.
func parseDateOrNow(date string) (time.Time, error) {
	if date == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return t, nil
}
