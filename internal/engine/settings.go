package engine

import (
	"context"
	"strings"

	"github.com/chinmayanaik123/lifeOS/internal/storage"
)

// CurrentLocation returns the persisted location tag, or "" when unset.
// The tag is only a default for callers; every resolution call takes the
// location explicitly.
func (s *Service) CurrentLocation(ctx context.Context) (string, error) {
	return s.settings.Get(ctx, storage.SettingLocation)
}

func (s *Service) SetCurrentLocation(ctx context.Context, location string) error {
	return s.settings.Set(ctx, storage.SettingLocation, strings.TrimSpace(location))
}
