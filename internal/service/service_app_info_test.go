package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-bangs/internal/config"
	"github.com/MKhiriev/go-bangs/internal/logger"
	"github.com/MKhiriev/go-bangs/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	cfg := config.App{Version: "1.0.0"}

	svc, err := NewAppInfoService(cfg, nil, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	cfg := config.App{Version: ""}

	svc, err := NewAppInfoService(cfg, nil, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

// ─────────────────────────────────────────────
// GetAppVersion
// ─────────────────────────────────────────────

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "3.1.4"}, nil, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

// ─────────────────────────────────────────────
// Health
// ─────────────────────────────────────────────

func TestHealth_PingOK(t *testing.T) {
	ctrl := gomock.NewController(t)
	pinger := mock.NewMockPinger(ctrl)
	ctx := context.Background()
	pinger.EXPECT().PingContext(ctx).Return(nil)

	svc, err := NewAppInfoService(config.App{Version: "1"}, pinger, logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, svc.Health(ctx))
}

func TestHealth_PingFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	pinger := mock.NewMockPinger(ctrl)
	ctx := context.Background()
	pinger.EXPECT().PingContext(ctx).Return(errors.New("connection refused"))

	svc, err := NewAppInfoService(config.App{Version: "1"}, pinger, logger.Nop())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Health(ctx), ErrDatabaseUnavailable)
}

func TestHealth_NoDatabase(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1"}, nil, logger.Nop())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Health(context.Background()), ErrDatabaseUnavailable)
}
