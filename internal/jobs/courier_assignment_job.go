package jobs

import (
	"context"
	"errors"
	"log/slog"

	"courierdispatch/internal/core/application/usecases/commands"
)

type assignCourierHandler interface {
	Handle(ctx context.Context, command commands.AssignCourierCommand) error
}

// CourierAssignmentJob runs one assignment per tick.
type CourierAssignmentJob struct {
	handler assignCourierHandler
	logger  *slog.Logger
}

// NewCourierAssignmentJob creates the job around the assign courier handler.
func NewCourierAssignmentJob(handler assignCourierHandler, logger *slog.Logger) *CourierAssignmentJob {
	return &CourierAssignmentJob{
		handler: handler,
		logger:  logger.With("component", "courier_assignment_job"),
	}
}

// Name identifies the job in logs.
func (j *CourierAssignmentJob) Name() string {
	return "courier_assignment"
}

// Run treats an empty queue and an empty fleet as a quiet tick.
func (j *CourierAssignmentJob) Run(ctx context.Context) {
	err := j.handler.Handle(ctx, commands.NewAssignCourierCommand())
	switch {
	case err == nil:
	case errors.Is(err, commands.ErrNoOrderFound), errors.Is(err, commands.ErrNoFreeCouriersFound):
		j.logger.DebugContext(ctx, "nothing to assign", "reason", err)
	default:
		j.logger.ErrorContext(ctx, "courier assignment failed", "error", err)
	}
}
