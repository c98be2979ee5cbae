package http

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"menlo.ai/state-user-api/app/interfaces/http/middleware"
	"menlo.ai/state-user-api/app/interfaces/http/routes/api"
	v1 "menlo.ai/state-user-api/app/interfaces/http/routes/v1"
	"menlo.ai/state-user-api/app/utils/logger"
	"menlo.ai/state-user-api/config/environment_variables"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "menlo.ai/state-user-api/docs"
)

const defaultPort = 8080

type HttpServer struct {
	engine   *gin.Engine
	v1Route  *v1.V1Route
	apiRoute *api.ApiRoute
}

func (s *HttpServer) bindSwagger() {
	g := s.engine.Group("/")

	g.GET("/api/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (s *HttpServer) bindMetrics() {
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func NewHttpServer(v1Route *v1.V1Route, apiRoute *api.ApiRoute) *HttpServer {
	if os.Getenv("local_dev") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	server := HttpServer{
		engine:   gin.New(),
		v1Route:  v1Route,
		apiRoute: apiRoute,
	}
	server.engine.Use(gin.Recovery())
	server.engine.Use(middleware.CORS())
	server.engine.Use(middleware.LoggerMiddleware(logger.GetLogger()))
	server.engine.GET("/healthcheck", func(c *gin.Context) {
		c.JSON(http.StatusOK, "ok")
	})
	server.bindMetrics()
	server.bindSwagger()

	root := server.engine.Group("/")
	server.v1Route.RegisterRouter(root)
	server.apiRoute.RegisterRouter(root)
	return &server
}

// Handler exposes the engine for in-process use.
func (httpServer *HttpServer) Handler() http.Handler {
	return httpServer.engine
}

func (httpServer *HttpServer) Run() error {
	port := environment_variables.EnvironmentVariables.HTTP_PORT
	if port == 0 {
		port = defaultPort
	}
	logger.GetLogger().Infof("listening on :%d", port)
	if err := httpServer.engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		return err
	}
	return nil
}
