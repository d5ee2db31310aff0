package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	config "github.com/meditrack-app/go-backend/internal/cfg"
	v1Http "github.com/meditrack-app/go-backend/internal/delivery/v1/http"
	"github.com/meditrack-app/go-backend/internal/infrastructure/overpass"
	"github.com/meditrack-app/go-backend/internal/repository/catalog"
	"github.com/meditrack-app/go-backend/internal/usecase"
	"github.com/meditrack-app/go-backend/pkg/closer"
	"github.com/meditrack-app/go-backend/pkg/logger"
	"github.com/meditrack-app/go-backend/pkg/sample"
)

// Run собирает зависимости и держит HTTP-сервер до сигнала остановки.
func Run(cfg *config.Config, log logger.Logger) error {
	store := initCatalog(log, cfg)

	poiClient := overpass.NewClient(cfg.Overpass, log)

	productUC := usecase.NewProductUC(store, log)
	pharmacyUC := usecase.NewPharmacyUC(store, poiClient, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(productUC, pharmacyUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	cl := closer.NewCloser(2 * time.Second)
	cl.Add(httpSrv.Stop)

	errCh := make(chan error, 1)
	go func() {
		log.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		log.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		log.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := cl.Close(shutdownCtx); err != nil {
		log.Errorf(err, "shutdown error")
	} else {
		log.Infof("HTTP server stopped")
	}

	log.Infof("Application shutdown complete")

	return appErr
}

// initCatalog загружает seed-файл каталога. Неудачная загрузка не фатальна:
// процесс стартует с пустым каталогом и деградировавшими ответами.
func initCatalog(log logger.Logger, cfg *config.Config) *catalog.Store {
	products, err := catalog.LoadSeed(cfg.Catalog.SeedPath)
	if err != nil {
		log.Warnf("catalog seed load failed, serving empty catalog: %v", err)
		products = nil
	} else {
		log.Infof("catalog loaded: %d products from %s", len(products), cfg.Catalog.SeedPath)
	}

	return catalog.NewStore(products, sample.NewDefaultSource())
}
