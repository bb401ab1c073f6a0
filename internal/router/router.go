package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"

	pdfadapter "jet-stamp/internal/adapters/pdf"
	qradapter "jet-stamp/internal/adapters/qr"
	mem "jet-stamp/internal/adapters/storage/memory"
	pg "jet-stamp/internal/adapters/storage/postgres"
	"jet-stamp/internal/domain/certificates"
	"jet-stamp/internal/middleware"
	"jet-stamp/internal/platform/logger"
	"jet-stamp/web"

	_ "jet-stamp/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // puede ser nil

	// Opcional: si viene, usa Postgres. Si no, intenta DB_DSN y cae a in-memory.
	DB *sql.DB

	// Opcional: origin fijo para URLs públicas (detrás de proxy).
	// Si está vacío se intenta BASE_URL y finalmente el host del request.
	BaseURL string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler())

	// Storage: DB explícita > DB_DSN > in-memory
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err != nil {
				log.Warn("postgres unavailable, falling back to in-memory store", map[string]any{"error": err.Error()})
			} else {
				db = opened
			}
		}
	}

	var repo certificates.Repository
	if db != nil {
		if err := pg.Migrate(context.Background(), db); err != nil {
			log.Error("migrate certificates table", map[string]any{"error": err.Error()})
		}
		repo = pg.NewCertificatesRepo(db)
		log.Info("using postgres store", nil)
	} else {
		repo = mem.NewCertificateRepo()
		log.Info("using in-memory store", nil)
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = os.Getenv("BASE_URL")
	}

	svc := certificates.NewService(repo, qradapter.NewPNGEncoder())
	certificates.RegisterRoutes(r, svc, pdfadapter.NewRenderer(), baseURL)

	// Páginas embebidas (form del vet, vista y verificación)
	web.RegisterPages(r)

	return r
}
