package assembly

import (
	nethttp "net/http"

	"agent-hub-service/conf"
	"agent-hub-service/controller"
	"agent-hub-service/db"
	"agent-hub-service/llm"
	"agent-hub-service/middleware"
	"agent-hub-service/repository"
	"agent-hub-service/request"
	"agent-hub-service/routes"
	"agent-hub-service/service"

	"github.com/redis/go-redis/v9"
	"github.com/txix-open/isp-kit/log"
)

const (
	mb = int64(1 << 20)
)

type Locator struct {
	logger log.Logger
}

func NewLocator(logger log.Logger) Locator {
	return Locator{
		logger: logger,
	}
}

func (l Locator) Handler(config conf.Remote, dbCli *db.Client, redisCli redis.UniversalClient) nethttp.Handler {
	tenantService := service.NewTenant(config.Tenants)

	throttlingRepo := repository.NewThrottling()
	throttlingService := service.NewThrottling(throttlingRepo, config.RateLimit)

	toolRepo := repository.NewTool(dbCli)
	agentRepo := repository.NewAgent(dbCli)
	executionRepo := repository.NewExecution(dbCli)

	toolService := service.NewTool(toolRepo)
	agentService := service.NewAgent(agentRepo, toolRepo)
	executionService := service.NewExecution(executionRepo, agentRepo, toolRepo, llm.NewSimulator())

	router := routes.Handler(l.logger, routes.Controllers{
		Tool:      controller.NewTool(toolService),
		Agent:     controller.NewAgent(agentService),
		Execution: controller.NewExecution(executionService),
	})
	business := middleware.HandlerFunc(func(ctx *request.Context) error {
		router.ServeHTTP(ctx.ResponseWriter(), ctx.Request())
		return nil
	})

	middlewares := []middleware.Middleware{
		middleware.RequestId(),
		middleware.Logger(l.logger, config.Logging.RequestLogEnable),
		middleware.ErrorHandler(l.logger),
		middleware.Authenticate(tenantService),
		middleware.Throttling(throttlingService),
	}
	if len(config.DailyLimits) > 0 && redisCli != nil {
		dailyLimitRepo := repository.NewDailyLimit(redisCli)
		dailyLimitService := service.NewDailyLimit(dailyLimitRepo, config.DailyLimits)
		middlewares = append(middlewares, middleware.DailyLimit(dailyLimitService))
	}

	handler := middleware.Chain(business, middlewares...)

	return middleware.Entrypoint(
		config.Http.MaxRequestBodySizeInMb*mb,
		handler,
		l.logger,
	)
}
