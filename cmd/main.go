package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/profiler"

	"github.com/doitintl/hello/nova-checkout/cmd/api"
	"github.com/doitintl/hello/nova-checkout/common"
	"github.com/doitintl/hello/nova-checkout/framework/connection"
	"github.com/doitintl/hello/nova-checkout/logger"
	pricingService "github.com/doitintl/hello/nova-checkout/pricing/service"
	settingsDal "github.com/doitintl/hello/nova-checkout/settings/dal"
)

const (
	defaultAddr = "0.0.0.0:8080"

	shutdownTimeout = 10 * time.Second

	priceCatalogFileEnv = "PRICE_CATALOG_FILE"
)

func main() {
	if err := run(); err != nil {
		log.Println("error: ", err)
		os.Exit(1)
	}
}

func run() error {
	// Profiler initialization, best done as early as possible.
	if common.Production {
		if err := profiler.Start(profiler.Config{
			Service:        common.GAEService,
			ServiceVersion: common.GAEVersion,
			ProjectID:      common.ProjectID,
		}); err != nil {
			log.Printf("main: could not start profiler: %v", err)
		}
	}

	// Initialize basic context
	ctx := context.Background()

	// Initialize app engine logging clients
	logging, err := logger.NewLogging(ctx)
	if err != nil {
		log.Printf("main: could not initialize logging. error %s", err)
		return err
	}

	defer logging.Close()

	// Initialize db connections clients, not needed when settings come from a local file
	var conn *connection.Connection

	if path := settingsDal.SettingsFilePath(); path != "" {
		log.Printf("main: reading settings from %s", path)
	} else {
		conn, err = connection.NewConnection(ctx, logging)
		if err != nil {
			log.Printf("main: could not initialize db connections. error %s", err)
			return err
		}

		defer conn.Close()
	}

	catalog, err := loadCatalog()
	if err != nil {
		log.Printf("main: could not load price catalog. error %s", err)
		return err
	}

	// =================
	// Start API Service
	log.Print("started: initializing api support")

	// Make a channel to listen for an interrupt or terminate signal from the OS.
	// Use a buffered channel because the signal package requires it.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Inject needed functionality into the api.
	a := api.NewAPI(shutdown, logging, settingsDal.NewSettingsDAL(conn), catalog)

	addr, err := getAddr()
	if err != nil {
		log.Println(err)
		return err
	}

	server := http.Server{
		Addr:    addr,
		Handler: a.Build(),
	}

	// Make a channel to listen for errors coming from the listener. Use a
	// buffered channel so the goroutine can exit if we don't collect this error.
	serverErrors := make(chan error, 1)

	// Start the service listening for requests.
	go func() {
		log.Printf("listening on %s", addr)
		serverErrors <- server.ListenAndServe()
	}()

	// =================
	// Shutdown

	// Blocking main and waiting for shutdown.
	select {
	case err := <-serverErrors:
		return fmt.Errorf("%s : starting server", err)

	case sig := <-shutdown:
		log.Printf("%v : start shutdown", sig)

		ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()

		// Asking listener to shutdown and load shed.
		err := server.Shutdown(ctx)
		if err != nil {
			log.Printf("main : graceful shutdown did not complete")

			err = server.Close()
		}

		// Log the status of this shutdown.
		switch {
		case sig == syscall.SIGSTOP:
			return errors.New("integrity issue caused shutdown")
		case err != nil:
			return fmt.Errorf("could not stop server gracefully: %s", err)
		}
	}

	return nil
}

func loadCatalog() (*pricingService.Catalog, error) {
	if path := common.GetEnv(priceCatalogFileEnv, ""); path != "" {
		return pricingService.LoadCatalogFile(path)
	}

	return pricingService.NewCatalog(), nil
}

func getAddr() (string, error) {
	port := os.Getenv("PORT")
	if port == "" {
		return defaultAddr, nil
	}

	return fmt.Sprintf(":%s", port), nil
}
