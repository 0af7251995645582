package router

import (
	"net/http"

	"dropscout/internal/api/v1/handler"
	"dropscout/internal/api/v1/middleware"
	"dropscout/internal/log"
	"dropscout/internal/service"
)

func New(svc *service.Classifier) http.Handler {
	appName := "dropscout"
	apiVersion := "v1"
	basePath := "/" + appName + "/api/" + apiVersion

	mux := http.NewServeMux()

	register := func(path string, h http.HandlerFunc) {
		mux.HandleFunc(basePath+path, h)
	}

	register("/health", handler.HealthCheckHandler)
	register("/classify", handler.ClassifyHandler(svc))

	return middleware.RecoverPanic(
		log.Logger,
		func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		},
		middleware.SecureHeaders(
			middleware.Logging(
				middleware.MetricsMiddleware(
					middleware.Compression(
						middleware.CORS(
							middleware.BasicAuth()(
								middleware.RateLimit(mux),
							),
						),
					),
				),
			),
		),
	)
}

func NewMetricsRouter() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler.MetricsHandler())
	return mux
}
