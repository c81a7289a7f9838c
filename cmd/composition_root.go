package cmd

import (
	"log/slog"
	"time"

	httpin "solverdesk/internal/adapters/in/http"
	"solverdesk/internal/adapters/out/memory"
	"solverdesk/internal/core/application/usecases/commands"
	"solverdesk/internal/core/application/usecases/queries"
	"solverdesk/internal/core/domain/model/solver"
	"solverdesk/internal/jobs"
	"solverdesk/internal/pkg/logging"

	"github.com/labstack/echo/v4"
)

// CompositionRoot owns the single in-memory desk and builds everything that
// works on it.
type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	store      *memory.Store
	uowFactory *memory.UnitOfWorkFactory
	clock      func() time.Time
}

func NewCompositionRoot(cfg Config, logger *slog.Logger, roster []*solver.Solver) (CompositionRoot, error) {
	store, err := memory.NewStore(roster)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		store:      store,
		uowFactory: memory.NewUnitOfWorkFactory(store),
		clock:      time.Now,
	}, nil
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.orderUoWFactory(), c.clock, c.logger)
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() commands.PayOrderCommandHandler {
	return commands.NewPayOrderCommandHandler(c.deskUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateStartOrderCommandHandler() commands.StartOrderCommandHandler {
	return commands.NewStartOrderCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.deskUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.deskUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateCompleteOldestCommandHandler() commands.CompleteOldestCommandHandler {
	return commands.NewCompleteOldestCommandHandler(c.deskUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateListSolversQueryHandler() queries.ListSolversQueryHandler {
	return queries.NewListSolversQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateListQueueQueryHandler() queries.ListQueueQueryHandler {
	return queries.NewListQueueQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetBoardSummaryQueryHandler() queries.GetBoardSummaryQueryHandler {
	return queries.NewGetBoardSummaryQueryHandler(c.uowFactory)
}

// CreateHTTPRouter wires every handler into the echo router.
func (c *CompositionRoot) CreateHTTPRouter() *echo.Echo {
	server := httpin.NewServer(httpin.Handlers{
		SubmitOrder:     c.CreateSubmitOrderCommandHandler(),
		PayOrder:        c.CreatePayOrderCommandHandler(),
		StartOrder:      c.CreateStartOrderCommandHandler(),
		CompleteOrder:   c.CreateCompleteOrderCommandHandler(),
		CancelOrder:     c.CreateCancelOrderCommandHandler(),
		CompleteOldest:  c.CreateCompleteOldestCommandHandler(),
		ListOrders:      c.CreateListOrdersQueryHandler(),
		GetOrder:        c.CreateGetOrderQueryHandler(),
		ListSolvers:     c.CreateListSolversQueryHandler(),
		ListQueue:       c.CreateListQueueQueryHandler(),
		GetBoardSummary: c.CreateGetBoardSummaryQueryHandler(),
	}, c.logger)

	return httpin.NewRouter(server, logging.EchoLevel(logging.ParseLevel(c.cfg.LogLevel)))
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	report := jobs.NewBoardReportJob(c.CreateGetBoardSummaryQueryHandler(), c.cfg.ReportSchedule, c.logger)
	return jobs.NewJobManager(c.logger, report)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deskUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
