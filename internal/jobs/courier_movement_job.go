package jobs

import (
	"context"
	"log/slog"

	"courierdispatch/internal/core/application/usecases/commands"
)

type moveCouriersHandler interface {
	Handle(ctx context.Context, command commands.MoveCouriersCommand) error
}

// CourierMovementJob advances couriers by one tick per run.
type CourierMovementJob struct {
	handler moveCouriersHandler
	logger  *slog.Logger
}

// NewCourierMovementJob creates the job around the move couriers handler.
func NewCourierMovementJob(handler moveCouriersHandler, logger *slog.Logger) *CourierMovementJob {
	return &CourierMovementJob{
		handler: handler,
		logger:  logger.With("component", "courier_movement_job"),
	}
}

// Name identifies the job in logs.
func (j *CourierMovementJob) Name() string {
	return "courier_movement"
}

// Run executes one tick and logs failures. Errors never stop the scheduler.
func (j *CourierMovementJob) Run(ctx context.Context) {
	if err := j.handler.Handle(ctx, commands.NewMoveCouriersCommand()); err != nil {
		j.logger.ErrorContext(ctx, "courier movement failed", "error", err)
	}
}
