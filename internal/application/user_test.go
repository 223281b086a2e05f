package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"line-vision/internal/domain/entity"
	"line-vision/internal/infrastructure/storage"
)

func TestUserService_BeginClassifyAndCancel(t *testing.T) {
	repo := storage.NewMemoryUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.BeginClassify(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateAwaitingFrame, user.State)

	user, err = svc.Cancel(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, user.State)
}

func TestUserService_SetState(t *testing.T) {
	repo := storage.NewMemoryUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.SetState(ctx, 2, 20, entity.StateProcessing)
	require.NoError(t, err)
	require.Equal(t, entity.StateProcessing, user.State)
}

func TestUserService_SetFormat(t *testing.T) {
	repo := storage.NewMemoryUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.SetFormat(ctx, 3, 30, entity.FormatHex)
	require.NoError(t, err)
	require.Equal(t, entity.FormatHex, user.Format)

	format, ok := user.FormatFor("capture.bin")
	require.True(t, ok)
	require.Equal(t, entity.FormatHex, format)

	user, err = svc.SetFormat(ctx, 3, 30, "")
	require.NoError(t, err)
	format, ok = user.FormatFor("capture.bin")
	require.True(t, ok)
	require.Equal(t, entity.FormatCompact, format)
}
