package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "asset-tracking/internal/adapters/storage/memory"
	pg "asset-tracking/internal/adapters/storage/postgres"
	sqlitedb "asset-tracking/internal/adapters/storage/sqlite"
	"asset-tracking/internal/domain/assets"
	"asset-tracking/internal/domain/entries"
	"asset-tracking/internal/export"
	"asset-tracking/internal/middleware"
	"asset-tracking/internal/platform/logger"

	_ "asset-tracking/docs" // registra la spec swagger generada

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Log logger.Logger // puede ser nil; se crea uno por defecto

	// Selección de almacenamiento, en orden: DB explícita (o DB_DSN por
	// env) > archivo SQLite > memoria.
	DB         *sql.DB
	SQLitePath string
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	log := opts.Log
	if log == nil {
		log = logger.New(logger.Options{App: "asset-tracking"})
	}
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var repo entries.Repository

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Error("postgres open failed", map[string]any{"error": err.Error()})
			}
		}
	}

	switch {
	case db != nil:
		repo = pg.NewEntriesRepo(db)
	case opts.SQLitePath != "":
		opened, err := sqlitedb.Open(opts.SQLitePath)
		if err != nil {
			log.Error("sqlite open failed, falling back to memory", map[string]any{
				"path":  opts.SQLitePath,
				"error": err.Error(),
			})
			repo = mem.NewEntriesRepo()
		} else {
			repo = sqlitedb.NewEntriesRepo(opened)
		}
	default:
		repo = mem.NewEntriesRepo()
	}

	svc := entries.NewService(repo)

	// Rutas por módulo
	entries.RegisterRoutes(r, svc)
	assets.RegisterRoutes(r, svc)
	export.RegisterRoutes(r, svc)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}
