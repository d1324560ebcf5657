package main

import (
	"context"

	"github.com/mileusna/crontab"
	"shopstack.io/product-catalog/app/domain/reconciliation"
	"shopstack.io/product-catalog/app/interfaces/http"
	"shopstack.io/product-catalog/app/utils/httpclients/inventoryclient"
	"shopstack.io/product-catalog/config/environment_variables"
)

type Application struct {
	HttpServer            *http.HttpServer
	ReconciliationService *reconciliation.ReconciliationCrontabService
}

func (application *Application) Start() {
	if err := application.HttpServer.Run(); err != nil {
		panic(err)
	}
}

func init() {
	environment_variables.EnvironmentVariables.LoadFromEnv()
	inventoryclient.Init()
}

func main() {
	application, err := CreateApplication()
	if err != nil {
		panic(err)
	}

	cron := crontab.New()
	crontabContext := context.Background()
	application.ReconciliationService.Start(crontabContext, cron)

	application.Start()
}
