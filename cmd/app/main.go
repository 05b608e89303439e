package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"backoffice/cmd"
	httpadapter "backoffice/internal/adapters/in/http"
	"backoffice/internal/adapters/out/postgres/orderrepo"
	"backoffice/internal/adapters/out/postgres/productrepo"
	"backoffice/internal/adapters/out/postgres/userrepo"
	"backoffice/internal/jobs"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	root := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&root, configs)
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		StaleSweepSchedule: goDotEnvVariable("STALE_SWEEP_SCHEDULE"),
		StaleOrderAge:      goDotEnvVariable("STALE_ORDER_AGE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&userrepo.UserDTO{},
		&productrepo.ProductDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startJobs(root *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	staleAge, err := time.ParseDuration(configs.StaleOrderAge)
	if err != nil {
		log.Fatalf("Invalid STALE_ORDER_AGE: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		root.CreateListStalePendingOrdersQueryHandler(),
		configs.StaleSweepSchedule,
		staleAge,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	return jobManager
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(
		httpadapter.OrderUseCases{
			Create:        root.CreateCreateOrderCommandHandler(),
			Update:        root.CreateUpdateOrderCommandHandler(),
			ChangeStatus:  root.CreateChangeOrderStatusCommandHandler(),
			Cancel:        root.CreateCancelOrderCommandHandler(),
			Delete:        root.CreateDeleteOrderCommandHandler(),
			Get:           root.CreateGetOrderQueryHandler(),
			GetByNumber:   root.CreateGetOrderByNumberQueryHandler(),
			List:          root.CreateListOrdersQueryHandler(),
			ListRecent:    root.CreateListRecentOrdersQueryHandler(),
			TotalSpend:    root.CreateGetUserTotalSpendQueryHandler(),
			CountByStatus: root.CreateCountOrdersByStatusQueryHandler(),
		},
		httpadapter.UserUseCases{
			Create:      root.CreateCreateUserCommandHandler(),
			Update:      root.CreateUpdateUserCommandHandler(),
			SetActive:   root.CreateSetUserActiveCommandHandler(),
			Delete:      root.CreateDeleteUserCommandHandler(),
			Get:         root.CreateGetUserQueryHandler(),
			GetByEmail:  root.CreateGetUserByEmailQueryHandler(),
			List:        root.CreateListUsersQueryHandler(),
			CountActive: root.CreateCountActiveUsersQueryHandler(),
		},
		httpadapter.ProductUseCases{
			Create:          root.CreateCreateProductCommandHandler(),
			Update:          root.CreateUpdateProductCommandHandler(),
			ChangeStock:     root.CreateChangeProductStockCommandHandler(),
			SetActive:       root.CreateSetProductActiveCommandHandler(),
			Delete:          root.CreateDeleteProductCommandHandler(),
			Get:             root.CreateGetProductQueryHandler(),
			List:            root.CreateListProductsQueryHandler(),
			CountByCategory: root.CreateCountProductsByCategoryQueryHandler(),
		},
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
