package cmd

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"solverdesk/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoot(t *testing.T) CompositionRoot {
	t.Helper()
	cfg := DefaultConfig()
	roster, err := DefaultRoster(cfg.SolverCapacity)
	require.NoError(t, err)

	root, err := NewCompositionRoot(cfg, slog.New(slog.DiscardHandler), roster)
	require.NoError(t, err)
	return root
}

func TestCompositionRoot_RouterServesTheDesk(t *testing.T) {
	root := newTestRoot(t)
	e := root.CreateHTTPRouter()

	body := `{"student_name":"Ann","subject":"Physics","description":"Optics",` +
		`"phone":"555-010-9999","deadline":"2099-06-01T18:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/solvers", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Solver A"`)
	assert.Contains(t, rec.Body.String(), `"capacity":5`)
}

func TestCompositionRoot_HandlersShareOneDesk(t *testing.T) {
	root := newTestRoot(t)

	summary, err := root.CreateGetBoardSummaryQueryHandler().Handle(t.Context(), queries.NewGetBoardSummaryQuery())
	require.NoError(t, err)
	assert.Equal(t, 10, summary.TotalSlots)
	assert.Equal(t, 10, summary.FreeSlots)
	assert.Zero(t, summary.TotalOrders)
}

func TestCompositionRoot_JobManager(t *testing.T) {
	root := newTestRoot(t)
	jm := root.CreateJobManager()

	require.NoError(t, jm.StartAll())
	jm.StopAll()
}

func TestCompositionRoot_InvalidSchedule(t *testing.T) {
	root := newTestRoot(t)
	root.cfg.ReportSchedule = "whenever"

	assert.Error(t, root.CreateJobManager().StartAll())
}
