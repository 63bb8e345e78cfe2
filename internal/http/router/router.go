package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rogerio-castellano/stock-keeper/internal/http/handlers"
	mw "github.com/rogerio-castellano/stock-keeper/internal/http/middleware"
	"github.com/rogerio-castellano/stock-keeper/internal/logging"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/stock-keeper/docs"
)

// Options controls the middleware stack around the API routes.
type Options struct {
	CORSOrigin  string
	TrustProxy  bool            // honour X-Forwarded-For / X-Real-IP
	RateLimiter *mw.RateLimiter // nil disables rate limiting
	Logger      logrus.FieldLogger
}

func NewRouter(s *handlers.Server, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	if opts.TrustProxy {
		r.Use(chimw.RealIP)
	}
	if opts.Logger != nil {
		r.Use(logging.RequestLogger(opts.Logger))
	}
	r.Use(chimw.Recoverer)
	if opts.CORSOrigin != "" {
		r.Use(mw.CORS(opts.CORSOrigin))
	}

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		if opts.RateLimiter != nil {
			r.Use(opts.RateLimiter.Handler)
		}

		r.Get("/products", s.GetProductsHandler)
		r.Post("/products/import", s.ImportProductsHandler)
		r.Get("/products/export", s.ExportProductsHandler)
		r.Delete("/products/all", s.DeleteAllProductsHandler)
		r.Get("/products/{id}/history", s.GetHistoryHandler)

		r.Post("/product/new", s.CreateProductHandler)
		r.Put("/product/{id}", s.UpdateProductHandler)
	})
	return r
}
