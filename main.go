package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"time"

	"chargen-connector/internal/config"
	Iservices "chargen-connector/internal/domain/interfaces/services"
	"chargen-connector/internal/infra/handlers"
	"chargen-connector/internal/infra/logger"
	"chargen-connector/internal/infra/repository"
	"chargen-connector/internal/infra/routes"
	"chargen-connector/internal/infra/services"
	"chargen-connector/internal/middleware"

	"github.com/gorilla/mux"
)

func main() {
	config.LoadEnv()

	ctx := context.Background()
	log := logger.NewLogger(ctx, true)

	prefsBackend := config.GetEnvDefault("PREFS_BACKEND", "mongo")
	preferencesRepo, err := repository.NewPreferencesRepository(prefsBackend)
	if err != nil {
		log.Fatal(fmt.Sprintf("Could not build preferences repository: %v", err))
	}

	shitMode := config.GetEnvBool("SHIT_MODE", false)

	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware(log))

	var preferencesSvc Iservices.IPreferencesService = services.NewPreferencesService(preferencesRepo, ctx, log)
	var generatorSvc Iservices.IGeneratorService = services.NewGeneratorService(rand.New(rand.NewSource(time.Now().UnixNano())))
	var chargenSvc Iservices.IChargenService = services.NewChargenService(log, preferencesSvc, generatorSvc, shitMode, rand.New(rand.NewSource(time.Now().UnixNano()+1)))

	httpHandlers := handlers.NewHttpHandlers(
		log,
		chargenSvc,
		config.GetEnvBool("PRETTY_PRINT", false),
		config.GetEnvBool("IGNORE_UNKNOWN_JSON", true),
	)

	routes := routes.NewRoutes(router, httpHandlers)
	routes.Init()

	port := config.GetEnv("PORT")
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: router,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	go func() {
		log.Info(fmt.Sprintf("Server is running on port %s", port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(fmt.Sprintf("Error running HTTP server: %s", err))
			os.Exit(1)
		}
	}()

	<-stop
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(fmt.Sprintf("Server forced to shutdown: %v", err))
	} else {
		log.Info("Server stopped gracefully.")
	}
}
