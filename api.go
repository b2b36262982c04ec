package handler

import (
	"net/http"
	"os"
	"sync"

	"storefront/internal/api"
	"storefront/internal/config"
	"storefront/internal/logger"

	"github.com/gin-gonic/gin"
)

var (
	initOnce sync.Once
	router   *gin.Engine
	initErr  error
)

// Handler is the serverless entry point. The router is built on the first request
// and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}
		// serverless instances always run in release mode
		cfg.Env = "production"

		server, err := api.NewFromConfig(cfg, logger.NewWithWriter(cfg.LogLevel, os.Stderr))
		if err != nil {
			initErr = err
			return
		}
		router = server.GetRouter()
	})

	if initErr != nil {
		http.Error(w, "Service initialization failed", http.StatusInternalServerError)
		return
	}
	router.ServeHTTP(w, r)
}
