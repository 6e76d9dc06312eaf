package httpserver

import (
	"context"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	artworkHTTP "art-historian/internal/artwork/delivery/http"
	chatHTTP "art-historian/internal/chat/delivery/http"
	feedbackHTTP "art-historian/internal/feedback/delivery/http"
	"art-historian/internal/middleware"
	"art-historian/internal/model"
)

func (srv HTTPServer) mapHandlers() {
	mw := middleware.New(srv.l, srv.rateLimit)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(mw)
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(mw.Recovery(), mw.RequestID(), mw.Logging())

	ctx := context.Background()
	if model.ParseEnvironment(srv.environment).IsProduction() {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes mounts every domain under /api behind the rate limiter.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	ctx := context.Background()

	api := srv.gin.Group("/api", mw.RateLimit())

	chatHTTP.RegisterRoutes(api, chatHTTP.New(srv.l, srv.chatUC))
	artworkHTTP.RegisterRoutes(api, artworkHTTP.New(srv.l, srv.artworkUC))
	feedbackHTTP.RegisterRoutes(api, feedbackHTTP.New(srv.l, srv.feedbackUC))

	srv.l.Infof(ctx, "Domain routes registered under /api (rate limit enabled: %v)", srv.rateLimit.RateLimitEnabled)
}

