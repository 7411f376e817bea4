package services

import (
	"context"
	"testing"

	"github.com/avarenkov/stockpos/internal/common"
	"github.com/avarenkov/stockpos/internal/models"
	"github.com/stretchr/testify/require"
)

type fakeSettingsRepo struct {
	current *models.Settings
	saved   *models.Settings
	err     error
}

func (f *fakeSettingsRepo) GetOrCreate(ctx context.Context) (*models.Settings, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.current == nil {
		f.current = models.DefaultSettings()
	}
	copied := *f.current
	return &copied, nil
}

func (f *fakeSettingsRepo) Save(ctx context.Context, s *models.Settings) error {
	if f.err != nil {
		return f.err
	}
	f.saved = s
	f.current = s
	return nil
}

func TestGetSettings_DefaultsOnFirstRead(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{})

	s, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	require.Equal(t, common.DefaultPin, s.Pin)
	require.False(t, s.LockEnabled)
}

func TestUpdatePin_Valid(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)

	require.NoError(t, svc.UpdatePin(context.Background(), "9876"))
	require.NotNil(t, repo.saved)
	require.Equal(t, "9876", repo.saved.Pin)
}

func TestUpdatePin_RejectsBadFormat(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)

	for _, pin := range []string{"", "123", "12345", "abcd", "12 4"} {
		err := svc.UpdatePin(context.Background(), pin)
		require.ErrorIs(t, err, common.ErrValidation, "pin %q", pin)
	}
	require.Nil(t, repo.saved)
}

func TestUpdatePin_PreservesLockFlag(t *testing.T) {
	repo := &fakeSettingsRepo{current: &models.Settings{Pin: "1234", LockEnabled: true}}
	svc := NewSettingsService(repo)

	require.NoError(t, svc.UpdatePin(context.Background(), "0000"))
	require.True(t, repo.saved.LockEnabled)
}

func TestToggleLock_Flips(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)

	require.NoError(t, svc.ToggleLock(context.Background()))
	require.True(t, repo.saved.LockEnabled)

	require.NoError(t, svc.ToggleLock(context.Background()))
	require.False(t, repo.saved.LockEnabled)
}
