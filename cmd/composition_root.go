package cmd

import (
	"log/slog"

	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"

	"github.com/labstack/echo/v4"
)

type CompositionRoot struct {
	config     Config
	uowFactory ports.UnitOfWorkFactory
	clock      ports.Clock
	guard      services.AccessGuard
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		uowFactory: uowFactory,
		clock:      ports.SystemClock{},
		guard:      services.NewAccessGuard(),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderEventCommandHandler() commands.CreateOrderEventCommandHandler {
	return commands.NewCreateOrderEventCommandHandler(c.uowFactory, c.guard, c.clock, c.logger)
}

func (c *CompositionRoot) CreateListOrderEventsQueryHandler() queries.ListOrderEventsQueryHandler {
	return queries.NewListOrderEventsQueryHandler(c.uowFactory, c.guard, c.clock, c.logger)
}

func (c *CompositionRoot) CreateGetStaleOrdersQueryHandler() queries.GetStaleOrdersQueryHandler {
	return queries.NewGetStaleOrdersQueryHandler(c.uowFactory, c.clock)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	createOrderEventHandler := c.CreateCreateOrderEventCommandHandler()
	server := httpin.NewServer(
		&createOrderEventHandler,
		c.CreateListOrderEventsQueryHandler(),
	)
	return httpin.NewRouter(server, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewStaleOrdersJob(
			c.CreateGetStaleOrdersQueryHandler(),
			c.config.StaleOrderSchedule,
			c.config.StaleOrderAfter,
			c.config.StaleOrderLimit,
			c.logger,
		),
	)
}
