package server

import (
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripguide/config"
	"tripguide/handlers"
	"tripguide/metrics"
	"tripguide/web"
)

// NewRouter wires the API, the metrics endpoint and the embedded web client.
func NewRouter(cfg *config.Config, h *handlers.Handler, logger *zap.Logger) *gin.Engine {
	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	_ = r.SetTrustedProxies(nil)

	r.Use(RequestID())
	r.Use(LoggerMiddleware(logger))
	r.Use(Recovery(logger))
	r.Use(CORS(cfg.FrontendOrigins))

	api := r.Group("/api")
	{
		api.GET("/health", h.HealthHandler)
		api.POST("/itinerary", h.ItineraryHandler)
		api.POST("/itinerary/pdf", h.PDFHandler)
	}

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	r.GET("/", func(c *gin.Context) {
		serveAsset(c, "index.html")
	})
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			name := strings.TrimPrefix(path.Clean(c.Request.URL.Path), "/")
			if name == "" {
				name = "index.html"
			}
			if _, err := fs.Stat(web.Assets, name); err == nil && name != "." {
				serveAsset(c, name)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return r
}

func serveAsset(c *gin.Context, name string) {
	data, err := fs.ReadFile(web.Assets, name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, data)
}

// HTTPServer leaves WriteTimeout unset; model calls can take minutes.
func HTTPServer(port string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       time.Minute,
	}
}
