package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
	"hh-vacancy-bot/config"
	apiv1 "hh-vacancy-bot/controllers/v1"
	"hh-vacancy-bot/db"
	"hh-vacancy-bot/fiberlog"
	"hh-vacancy-bot/initializers"
	parserhandler "hh-vacancy-bot/lib/parser"
	"hh-vacancy-bot/lib/parser/scheduler"
	"hh-vacancy-bot/middleware"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitParserServices()

	app := fiber.New()
	app.Use(fiberRecover.New())
	app.Use(middleware.WithBodyLimit(config.Conf.App.BodyLimit))
	app.Use(middleware.ErrNotify(config.Conf.NotifyBot.AddrErr, "parser"))

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))
	app.Use(fiberlog.New(*initializers.LoggerConfig))

	apiv1.InitParseApiRouters(app)
	apiv1.InitHealthApiRouters(app, db.PingDB)

	//api
	apiV1 := fiber.New()
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET",
	}))
	apiv1.InitVacancyApiRouters(apiV1)

	refresh := scheduler.New(parserhandler.Instance, config.Conf.Parser.Refresh, config.Conf.NotifyBot.AddrErr)
	if _, err := refresh.Start(ctx, config.Conf.Parser.RefreshSpec); err != nil {
		log.WithError(err).Fatal("ошибка запуска обновления по расписанию")
	}

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-c
		log.Info("Gracefully shutting down...")
		cancel()
		refresh.Stop()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
