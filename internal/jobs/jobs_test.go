package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"courierdispatch/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAssignHandler struct {
	mock.Mock
}

func (m *MockAssignHandler) Handle(ctx context.Context, command commands.AssignCourierCommand) error {
	return m.Called(ctx, command).Error(0)
}

type MockMoveHandler struct {
	mock.Mock
}

func (m *MockMoveHandler) Handle(ctx context.Context, command commands.MoveCouriersCommand) error {
	return m.Called(ctx, command).Error(0)
}

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestCourierAssignmentJob_Run(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{"should stay quiet on success", nil, ""},
		{"should log empty queue at debug", commands.ErrNoOrderFound, "level=DEBUG"},
		{"should log empty fleet at debug", commands.ErrNoFreeCouriersFound, "level=DEBUG"},
		{"should log failures at error", errors.New("db down"), "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			var buf bytes.Buffer
			handler := new(MockAssignHandler)
			handler.On("Handle", ctx, mock.AnythingOfType("commands.AssignCourierCommand")).Return(tt.err).Once()

			NewCourierAssignmentJob(handler, newLogger(&buf)).Run(ctx)

			handler.AssertExpectations(t)
			if tt.wantLevel == "" {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), tt.wantLevel)
			assert.Contains(t, buf.String(), "component=courier_assignment_job")
		})
	}
}

func TestCourierAssignmentJob_PassesConstructedCommand(t *testing.T) {
	handler := new(MockAssignHandler)
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(c commands.AssignCourierCommand) bool {
		return c.Validate() == nil
	})).Return(nil).Once()

	NewCourierAssignmentJob(handler, slog.Default()).Run(t.Context())

	handler.AssertExpectations(t)
}

func TestCourierMovementJob_Run(t *testing.T) {
	t.Run("should log handler error", func(t *testing.T) {
		var buf bytes.Buffer
		handler := new(MockMoveHandler)
		handler.On("Handle", mock.Anything, mock.AnythingOfType("commands.MoveCouriersCommand")).Return(errors.New("boom")).Once()

		NewCourierMovementJob(handler, newLogger(&buf)).Run(t.Context())

		assert.Contains(t, buf.String(), "courier movement failed")
		assert.Contains(t, buf.String(), "boom")
	})

	t.Run("should stay quiet on success", func(t *testing.T) {
		var buf bytes.Buffer
		handler := new(MockMoveHandler)
		handler.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()

		NewCourierMovementJob(handler, newLogger(&buf)).Run(t.Context())

		assert.Empty(t, buf.String())
	})
}

type countingJob struct {
	runs atomic.Int32
}

func (j *countingJob) Name() string { return "counting" }

func (j *countingJob) Run(context.Context) { j.runs.Add(1) }

func TestJobManager_StartAll(t *testing.T) {
	t.Run("should reject invalid spec", func(t *testing.T) {
		job := &countingJob{}
		manager := NewJobManager(slog.Default(),
			Schedule{Spec: "* * * * * *", Job: job},
			Schedule{Spec: "not a spec", Job: job},
		)

		err := manager.StartAll()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "counting")
		assert.Empty(t, manager.cron.Entries())
	})

	t.Run("should run jobs every second until stopped", func(t *testing.T) {
		job := &countingJob{}
		manager := NewJobManager(slog.Default(), Schedule{Spec: "* * * * * *", Job: job})

		require.NoError(t, manager.StartAll())
		require.NoError(t, manager.StartAll())
		assert.Eventually(t, func() bool { return job.runs.Load() > 0 }, 3*time.Second, 50*time.Millisecond)

		manager.StopAll()
		manager.StopAll()
		assert.Empty(t, manager.cron.Entries())
	})
}
