package jobs

import (
	"context"
	"log/slog"

	"solverdesk/internal/core/application/usecases/queries"
	"solverdesk/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// BoardReader is satisfied by queries.GetBoardSummaryQueryHandler.
type BoardReader interface {
	Handle(ctx context.Context, query queries.GetBoardSummaryQuery) (queries.BoardSummary, error)
}

// BoardReportJob periodically logs the desk overview: orders per status,
// queue length and solver loads. It only reads; nothing is assigned or expired.
type BoardReportJob struct {
	reader   BoardReader
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewBoardReportJob creates the job. schedule is a standard five-field cron
// expression or a descriptor such as "@every 1m".
func NewBoardReportJob(reader BoardReader, schedule string, logger *slog.Logger) *BoardReportJob {
	return &BoardReportJob{
		reader:   reader,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "board_report_job"),
	}
}

// Name identifies the job in manager errors.
func (j *BoardReportJob) Name() string {
	return "board report"
}

// Start schedules the report. An invalid schedule is returned as is.
func (j *BoardReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Report(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Board report job started", "schedule", j.schedule)
	return nil
}

// Report logs the board once. A non-empty queue is logged as a warning since
// paid orders are waiting for a solver.
func (j *BoardReportJob) Report(ctx context.Context) {
	summary, err := j.reader.Handle(ctx, queries.NewGetBoardSummaryQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Board report failed", "error", err)
		return
	}

	attrs := []any{
		"total_orders", summary.TotalOrders,
		"queue_length", summary.QueueLength,
		"free_slots", summary.FreeSlots,
		"total_slots", summary.TotalSlots,
	}
	for _, status := range order.Statuses() {
		if n, ok := summary.StatusCounts[status]; ok {
			attrs = append(attrs, "status_"+status.String(), n)
		}
	}

	level := slog.LevelInfo
	if summary.QueueLength > 0 {
		level = slog.LevelWarn
	}
	j.logger.Log(ctx, level, "Board", attrs...)

	for _, s := range summary.Solvers {
		j.logger.DebugContext(ctx, "Solver load",
			"solver_id", s.ID.Int(),
			"name", s.Name,
			"load", s.Load,
			"capacity", s.Capacity,
		)
	}
}

// Stop stops the schedule and waits for a running report to finish.
func (j *BoardReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Board report job stopped")
}
