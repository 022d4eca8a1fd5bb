package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSessionJanitor_SweepsUntilStopped(t *testing.T) {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	swept := make(chan struct{}, 10)

	sessionUC.EXPECT().CleanupExpired(mock.Anything).
		RunAndReturn(func(context.Context) (int64, error) {
			select {
			case swept <- struct{}{}:
			default:
			}

			return 1, nil
		})

	janitor := newSessionJanitor(sessionUC, 5*time.Millisecond, newDiscardLogger())

	served := make(chan error, 1)
	go func() { served <- janitor.Serve(context.Background()) }()

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("janitor did not sweep")
	}

	require.NoError(t, janitor.stop(context.Background()))
	assert.NoError(t, <-served)
}

func TestSessionJanitor_KeepsRunningAfterFailure(t *testing.T) {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	calls := make(chan struct{}, 10)

	sessionUC.EXPECT().CleanupExpired(mock.Anything).
		RunAndReturn(func(context.Context) (int64, error) {
			select {
			case calls <- struct{}{}:
			default:
			}

			return 0, errors.New("db down")
		})

	janitor := newSessionJanitor(sessionUC, 5*time.Millisecond, newDiscardLogger())
	ctx, cancel := context.WithCancel(context.Background())

	served := make(chan error, 1)
	go func() { served <- janitor.Serve(ctx) }()

	for range 2 {
		select {
		case <-calls:
		case <-time.After(time.Second):
			t.Fatal("janitor stopped after a failed sweep")
		}
	}

	cancel()
	assert.NoError(t, <-served)
}
