package root

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chinmayanaik123/lifeOS/internal/config"
	"github.com/chinmayanaik123/lifeOS/internal/engine"
	"github.com/chinmayanaik123/lifeOS/internal/logging"
	"github.com/chinmayanaik123/lifeOS/internal/storage"
)

func openService(ctx context.Context) (*engine.Service, *config.Config, func(), error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, nil, err
	}

	if err := logging.Init(logging.Config{
		Level:      cfg.Log.Level,
		Filename:   cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	}); err != nil {
		return nil, nil, nil, err
	}

	dbPath := flagDB
	if dbPath == "" {
		dbPath = cfg.DBPath
	}
	path, err := storage.ResolveDBPath(dbPath)
	if err != nil {
		return nil, nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return engine.NewService(db), cfg, cleanup, nil
}

// resolveLocation picks the location for this invocation: the --location
// flag, then the persisted setting, then the configured default.
func resolveLocation(ctx context.Context, svc *engine.Service, cfg *config.Config) (string, error) {
	if flagLocation != "" {
		return flagLocation, nil
	}
	loc, err := svc.CurrentLocation(ctx)
	if err != nil {
		return "", err
	}
	if loc == "" {
		loc = cfg.DefaultLocation
	}
	return loc, nil
}

// parseDateArg interprets a --date value; empty means today.
func parseDateArg(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return engine.DateOf(time.Now()), nil
	}
	d, err := time.ParseInLocation(storage.DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return d, nil
}

// resolveTaskID matches a full task id or a unique prefix.
func resolveTaskID(ctx context.Context, svc *engine.Service, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("task id is required")
	}

	tasks, err := svc.TaskRepo().ListAll(ctx)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, t := range tasks {
		if t.ID == input {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no task matches id %q", input)
	default:
		return "", fmt.Errorf("id %q is ambiguous (%d matches)", input, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
