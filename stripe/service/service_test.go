package service

import (
	"context"
	"errors"

	"github.com/doitintl/hello/nova-checkout/logger"
	settingsDomain "github.com/doitintl/hello/nova-checkout/settings/domain"
	settingsService "github.com/doitintl/hello/nova-checkout/settings/service"
)

type staticSettings struct {
	stored *settingsDomain.Settings
	env    map[string]string
	err    error
}

func (s staticSettings) Snapshot(ctx context.Context) (*settingsService.Snapshot, error) {
	if s.err != nil {
		return nil, s.err
	}

	return settingsService.NewSnapshot(s.stored, func(key string) (string, bool) {
		v, ok := s.env[key]
		return v, ok
	}), nil
}

var (
	errUnavailable = errors.New("unavailable")

	loggerProvider logger.Provider = logger.FromContext
)
