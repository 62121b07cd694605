package router

import (
	"database/sql"
	"net/http"

	_ "pet-store/docs"
	mem "pet-store/internal/adapters/storage/memory"
	pg "pet-store/internal/adapters/storage/postgres"
	"pet-store/internal/domain/petstore"
	"pet-store/internal/middleware"
	"pet-store/internal/platform/logger"
	"pet-store/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa el repo SQL (Postgres o SQLite, mismo SQL). Si no, in-memory.
	DB *sql.DB

	// Opcionales; nil => logger descartado / registry propio.
	Logger  logger.Logger
	Metrics *metrics.HTTPMetrics
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.EchoRequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(m.Middleware)
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var storeRepo petstore.Repository
	if opts.DB != nil {
		storeRepo = pg.NewPetStoreRepo(opts.DB)
		m.WatchDB(opts.DB, "pet_store")
	} else {
		storeRepo = mem.NewPetStoreRepo()
	}

	storeSvc := petstore.NewService(storeRepo, log)
	petstore.RegisterRoutes(r, storeSvc, log)

	return r
}
