package wire

import (
	"net/http"

	"studio-reservations/internal/adaptor"
	"studio-reservations/internal/data/repository"
	"studio-reservations/internal/usecase"
	"studio-reservations/pkg/middleware"
	"studio-reservations/pkg/storage"
	"studio-reservations/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes.
func Wiring(repo *repository.Repository, files storage.FileStorage, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, files, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, repo, logger)
	wireReservation(r, handler.Reservation, repo, logger)
	wireAdmin(r, handler.Admin, repo, logger)
	wireSlot(r, handler.Slot, repo, logger)

	// Uploaded payment screenshots are served from local disk under the
	// same public prefix the storage layer builds URLs with.
	fileServer := http.StripPrefix("/files/", http.FileServer(http.Dir(config.Storage.BasePath)))
	r.Get("/files/*", fileServer.ServeHTTP)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
