package service

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/caretech-interop/ccrs-fhir-bridge/internal/service/ccrs/adapters/fhir"
	ccrshttp "github.com/caretech-interop/ccrs-fhir-bridge/internal/service/ccrs/adapters/http"
	"github.com/caretech-interop/ccrs-fhir-bridge/internal/service/ccrs/app"
	"github.com/caretech-interop/ccrs-fhir-bridge/internal/service/ccrs/app/commands"
	"github.com/caretech-interop/ccrs-fhir-bridge/internal/service/ccrs/app/queries"
	"github.com/caretech-interop/ccrs-fhir-bridge/internal/service/config"
	"github.com/caretech-interop/ccrs-fhir-bridge/internal/service/logger"
	"github.com/caretech-interop/ccrs-fhir-bridge/internal/service/runtime"
	"go.uber.org/zap"
)

type Service struct {
	httpServer *http.Server
	log        *zap.Logger
}

func NewSubmissionService() (*Service, error) {
	appConfig, err := config.NewConfigFromEnv()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(appConfig.LogLevel)
	if err != nil {
		return nil, err
	}

	// init composer
	composer := fhir.NewComposer()

	// init commands
	convertHandler := commands.NewConvertRecordHandler(composer, log)
	cmdBus := app.NewCommandBus(convertHandler)

	// init queries
	getFieldDictionaryHandler := queries.NewGetFieldDictionaryQueryHandler()
	queryBus := app.NewQueryBus(getFieldDictionaryHandler)

	// init http handler
	ccrsHTTPServer := ccrshttp.NewServer(cmdBus, queryBus, log)

	httpServer, err := runtime.NewHTTPServer(appConfig, ccrsHTTPServer, log)
	if err != nil {
		return nil, err
	}

	return &Service{
		httpServer: httpServer,
		log:        log,
	}, nil
}

func (s *Service) Start(ctx context.Context) error {
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Fatal("listen", zap.Error(err))
		}
	}()

	s.log.Info("listening", zap.String("addr", s.httpServer.Addr))

	// wait for SIGINT/SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	s.log.Info("shutting down")

	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(timeoutCtx); err != nil {
		return err
	}

	s.log.Info("server stopped")

	return nil
}
