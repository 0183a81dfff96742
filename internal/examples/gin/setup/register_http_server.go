package setup

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/victormf2/serviceprovider"
	"github.com/victormf2/serviceprovider/internal/examples/gin/handlers"
	"github.com/victormf2/serviceprovider/internal/examples/gin/infra"
)

func RegisterHttpServer(c *serviceprovider.Container) {
	serviceprovider.AddSelf[*infra.Metrics](c)
	serviceprovider.Provide[*infra.Metrics](c, infra.NewMetrics)

	// Middlewares registration order matters, they run in the order of the slice
	serviceprovider.AddFactory(c, func(c *serviceprovider.Container) ([]gin.HandlerFunc, error) {
		logger, err := serviceprovider.Get[*logrus.Entry](c)
		if err != nil {
			return nil, err
		}
		metrics, err := serviceprovider.Get[*infra.Metrics](c)
		if err != nil {
			return nil, err
		}

		return []gin.HandlerFunc{
			gin.Recovery(),
			requestLogMiddleware(logger),
			metrics.Middleware(),
		}, nil
	})

	serviceprovider.AddSelf[*gin.Engine](c)
	serviceprovider.Provide[*gin.Engine](c, NewRouter)

	serviceprovider.AddSelf[*http.Server](c)
	serviceprovider.Provide[*http.Server](c, NewServer)
}

func NewServer(config infra.Config, router *gin.Engine) *http.Server {
	return &http.Server{
		Addr:    config.Addr,
		Handler: router,
	}
}

// Handlers are built once, when the router is resolved at startup. Requests
// never touch the container, which is not safe for concurrent use.
func NewRouter(
	middlewares []gin.HandlerFunc,
	metrics *infra.Metrics,
	getUserByID *handlers.GetUserByIDHandler,
	createUser *handlers.CreateUserHandler,
	updateUser *handlers.UpdateUserHandler,
	deleteUser *handlers.DeleteUserHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(middlewares...)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	router.GET("/users/:id", func(c *gin.Context) {
		input := &handlers.GetUserByIDInput{}
		err := c.ShouldBindUri(input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
			return
		}

		output, err := getUserByID.Handle(input)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, output)
	})

	router.POST("/users", func(c *gin.Context) {
		input := &handlers.CreateUserInput{}
		err := c.ShouldBindJSON(input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
			return
		}

		output, err := createUser.Handle(input)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, output)
	})

	router.PUT("/users", func(c *gin.Context) {
		input := &handlers.UpdateUserInput{}
		err := c.ShouldBindJSON(input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
			return
		}

		output, err := updateUser.Handle(input)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, output)
	})

	router.DELETE("/users/:id", func(c *gin.Context) {
		input := &handlers.DeleteUserInput{}
		err := c.ShouldBindUri(input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
			return
		}

		output, err := deleteUser.Handle(input)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, output)
	})

	return router
}

func writeError(c *gin.Context, err error) {
	if errors.Is(err, handlers.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
}

func requestLogMiddleware(logger *logrus.Entry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)

		// Process request
		c.Next()

		logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start),
			"client_ip":  c.ClientIP(),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
		}).Info("request handled")
	}
}
