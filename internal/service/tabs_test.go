package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-bangs/internal/logger"
	"github.com/MKhiriev/go-bangs/internal/store"
	"github.com/MKhiriev/go-bangs/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLaunchGroup(t *testing.T) {
	d := newTestDeps(t)
	svc := NewTabService(d.tabs, logger.Nop())

	group := models.TabGroup{ID: 3, Trigger: "!work", Items: []models.TabItem{
		{URL: "https://mail.example.com", Position: 0},
		{URL: "https://chat.example.com", Position: 1},
	}}
	d.tabs.EXPECT().FindTabGroup(gomock.Any(), int64(1), "!work").Return(group, nil)

	got, err := svc.LaunchGroup(context.Background(), testUser(), "Work")

	require.NoError(t, err)
	assert.Equal(t, group, got)
}

func TestLaunchGroup_Errors(t *testing.T) {
	dbErr := errors.New("db down")

	tests := []struct {
		name    string
		user    *models.User
		trigger string
		setup   func(d *testDeps)
		wantErr error
	}{
		{name: "anonymous", user: nil, trigger: "!work", wantErr: ErrTabGroupNotFound},
		{name: "empty trigger", user: testUser(), trigger: "!", wantErr: ErrTabGroupNotFound},
		{name: "not found", user: testUser(), trigger: "!work", setup: func(d *testDeps) {
			d.tabs.EXPECT().FindTabGroup(gomock.Any(), int64(1), "!work").Return(models.TabGroup{}, store.ErrTabGroupNotFound)
		}, wantErr: ErrTabGroupNotFound},
		{name: "store failure", user: testUser(), trigger: "work", setup: func(d *testDeps) {
			d.tabs.EXPECT().FindTabGroup(gomock.Any(), int64(1), "!work").Return(models.TabGroup{}, dbErr)
		}, wantErr: dbErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t)
			if tt.setup != nil {
				tt.setup(d)
			}
			svc := NewTabService(d.tabs, logger.Nop())

			_, err := svc.LaunchGroup(context.Background(), tt.user, tt.trigger)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
