package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/noyo-commerce/storefront-service/config"
	"github.com/noyo-commerce/storefront-service/internal/bootstrap"
	"github.com/noyo-commerce/storefront-service/internal/controller"
	"github.com/noyo-commerce/storefront-service/internal/domain"
	circuitbreaker "github.com/noyo-commerce/storefront-service/internal/infrastructure/circuit-breaker"
	imagestorage "github.com/noyo-commerce/storefront-service/internal/infrastructure/image-storage"
	"github.com/noyo-commerce/storefront-service/internal/infrastructure/tracing"
	"github.com/noyo-commerce/storefront-service/internal/middleware"
	"github.com/noyo-commerce/storefront-service/internal/repository"
	"github.com/noyo-commerce/storefront-service/internal/service"
	"github.com/noyo-commerce/storefront-service/pkg/response"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	Mongo  *mongo.Database
	Redis  *redis.Client
	Kafka  *kafka.Conn
	Config *config.Config
	Server *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize tracing")
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}()

	tracer := traceProvider.Tracer("storefront-service")

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	g := e.Group("/api/v1")
	g.Use(middleware.Logger)

	isLoggedIn := echomiddleware.JWTWithConfig(echomiddleware.JWTConfig{
		SigningKey: []byte(app.Config.JWTSecret),
		ErrorHandlerWithContext: func(err error, c echo.Context) error {
			errorResponse := response.ErrorResponse{
				Success: false,
				Message: "Invalid or expired JWT",
			}
			return c.JSON(http.StatusUnauthorized, errorResponse)
		},
	})
	isAdmin := middleware.RequireRole(domain.RoleAdmin)

	productRepo := repository.CreateNewProductRepository(app.Mongo)
	userRepo := repository.CreateNewUserRepository(app.Mongo)
	orderRepo := repository.CreateNewOrderRepository(app.Mongo)

	imageStore := imagestorage.CreateClient(app.Config.ImageStorageConfig, circuitbreaker.CreateCircuitBreaker("image-storage"))

	productSvc := service.CreateProductService(productRepo, imageStore, app.Redis, app.Kafka, *app.Config)
	userSvc := service.CreateUserService(userRepo, productRepo)
	orderSvc := service.CreateOrderService(orderRepo, userRepo, app.Kafka, *app.Config)

	controller.CreateProductController(g, productSvc, isLoggedIn, isAdmin)
	controller.CreateUserController(g, userSvc, isLoggedIn)
	controller.CreateOrderController(g, orderSvc, isLoggedIn, isAdmin)

	if err := bootstrap.EnsureAdminUser(context.Background(), userRepo, app.Config.AdminConfig); err != nil {
		logger.Error().Err(err).Msg("Failed to bootstrap admin account")
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		panic(err)
	}

	_, err = s.NewJob(
		gocron.DurationJob(
			10*time.Minute,
		),
		gocron.NewTask(func() {
			if err := userSvc.PruneDanglingReferences(context.Background()); err != nil {
				log.Error().Err(err).Msg("Failed to prune dangling product references")
			}
		}),
	)
	if err != nil {
		panic(err)
	}

	s.Start()

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))

	app.Server = e
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
