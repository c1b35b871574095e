package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/tempo-networks/budget-server/api"
	"github.com/tempo-networks/budget-server/internal/config"
	"github.com/tempo-networks/budget-server/internal/logging"
	"github.com/tempo-networks/budget-server/internal/operator"
	"github.com/tempo-networks/budget-server/internal/service"
	"github.com/tempo-networks/budget-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("budget-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.WorkerCount)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator, envConfig.JWTSecret, logger)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:    logger,
			Port:      envConfig.Port,
			Service:   svc,
			Storage:   dbStorage,
			JWTSecret: envConfig.JWTSecret,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
