package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"solverdesk/internal/core/application/usecases/queries"
	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/core/domain/model/order"
	"solverdesk/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBoardReader struct {
	mock.Mock
}

func (m *MockBoardReader) Handle(ctx context.Context, query queries.GetBoardSummaryQuery) (queries.BoardSummary, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.BoardSummary), args.Error(1)
}

func summary(queueLength int) queries.BoardSummary {
	return queries.BoardSummary{
		TotalOrders: 3,
		StatusCounts: map[order.Status]int{
			order.PendingPayment: 1,
			order.Paid:           queueLength,
			order.Assigned:       2 - queueLength,
		},
		QueueLength: queueLength,
		TotalSlots:  2,
		FreeSlots:   0,
		Solvers: []queries.SolverView{
			{ID: kernel.SolverID(1), Name: "Solver A", Capacity: 1, Load: 1},
		},
	}
}

func TestBoardReportJob_ReportLogsBoard(t *testing.T) {
	var buf bytes.Buffer
	reader := new(MockBoardReader)
	reader.On("Handle", mock.Anything, mock.AnythingOfType("queries.GetBoardSummaryQuery")).
		Return(summary(0), nil).Once()

	job := NewBoardReportJob(reader, "@every 1m", logging.NewLoggerWithWriter(slog.LevelDebug, "text", &buf))
	job.Report(context.Background())

	out := buf.String()
	assert.Contains(t, out, "level=INFO msg=Board")
	assert.Contains(t, out, "queue_length=0")
	assert.Contains(t, out, "status_PendingPayment=1")
	assert.Contains(t, out, `name="Solver A"`)
	reader.AssertExpectations(t)
}

func TestBoardReportJob_StatusesInLifecycleOrder(t *testing.T) {
	reader := new(MockBoardReader)
	reader.On("Handle", mock.Anything, mock.Anything).Return(summary(1), nil)

	var first string
	for i := range 20 {
		var buf bytes.Buffer
		job := NewBoardReportJob(reader, "@every 1m", logging.NewLoggerWithWriter(slog.LevelInfo, "text", &buf))
		job.Report(context.Background())

		line := buf.String()
		line = line[strings.Index(line, "msg="):]
		if i == 0 {
			first = line
			pending := strings.Index(line, "status_PendingPayment=1")
			paid := strings.Index(line, "status_Paid=1")
			assigned := strings.Index(line, "status_Assigned=1")
			require.True(t, pending >= 0 && paid > pending && assigned > paid, line)
			continue
		}
		assert.Equal(t, first, line)
	}
}

func TestBoardReportJob_WaitingOrdersAreWarnings(t *testing.T) {
	var buf bytes.Buffer
	reader := new(MockBoardReader)
	reader.On("Handle", mock.Anything, mock.Anything).Return(summary(1), nil).Once()

	job := NewBoardReportJob(reader, "@every 1m", logging.NewLoggerWithWriter(slog.LevelInfo, "text", &buf))
	job.Report(context.Background())

	assert.Contains(t, buf.String(), "level=WARN msg=Board")
	assert.Contains(t, buf.String(), "queue_length=1")
	assert.NotContains(t, buf.String(), "Solver load")
}

func TestBoardReportJob_ReadFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	reader := new(MockBoardReader)
	reader.On("Handle", mock.Anything, mock.Anything).
		Return(queries.BoardSummary{}, errors.New("store unavailable")).Once()

	job := NewBoardReportJob(reader, "@every 1m", logging.NewLoggerWithWriter(slog.LevelInfo, "text", &buf))
	job.Report(context.Background())

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "store unavailable")
}

func TestBoardReportJob_InvalidSchedule(t *testing.T) {
	job := NewBoardReportJob(new(MockBoardReader), "every minute", slog.New(slog.DiscardHandler))

	assert.Error(t, job.Start())
}

func TestBoardReportJob_RunsOnSchedule(t *testing.T) {
	reader := new(MockBoardReader)
	reported := make(chan struct{}, 1)
	reader.On("Handle", mock.Anything, mock.Anything).Return(summary(0), nil).Run(func(mock.Arguments) {
		select {
		case reported <- struct{}{}:
		default:
		}
	})

	job := NewBoardReportJob(reader, "@every 1s", slog.New(slog.DiscardHandler))
	require.NoError(t, job.Start())
	defer job.Stop()

	select {
	case <-reported:
	case <-time.After(5 * time.Second):
		t.Fatal("board report did not run")
	}
}
