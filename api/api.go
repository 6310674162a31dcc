package api

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"simcompare/internal/db/models/postgres/public/model"
	"simcompare/internal/domain"
	"simcompare/internal/logger"
	"simcompare/internal/repository"
	"simcompare/internal/service"
	"simcompare/internal/util"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db                        *sql.DB
	Logger                    *zap.SugaredLogger
	JwtDecodeToken            string
	AuthDisabled              bool
	ComparisonService         service.ComparisonService
	SimulationRepository      repository.SimulationRepository
	SavedComparisonRepository repository.SavedComparisonRepository
	RequestLogRepository      repository.RequestLogRepository
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.ContextWithFallback = true

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AddAllowHeaders("Authorization")
	router.Use(cors.New(corsConfig))

	router.Use(m.requestContextMiddleware)
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to simcompare"})
	})

	authed := router.Group("/")
	authed.Use(m.authMiddleware)

	authed.GET("/simulations", m.listSimulations)
	authed.GET("/simulations/:id/summary", m.simulationSummary)
	authed.POST("/simulations/validate", m.validateSimulation)
	authed.POST("/compare", m.compare)
	authed.POST("/compare/csv", m.compareCsv)

	authed.POST("/comparisons", m.addComparison)
	authed.GET("/comparisons", m.listComparisons)
	authed.GET("/comparisons/:id", m.getComparison)
	authed.DELETE("/comparisons/:id", m.deleteComparison)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

// errorStatusCode maps the error taxonomy onto http codes. data
// integrity problems in a simulation are the client's to see, not a
// server fault
func errorStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrSimulationNotFound),
		errors.Is(err, domain.ErrComparisonNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmptySeries),
		errors.Is(err, domain.ErrDegenerateSimulation),
		errors.Is(err, domain.ErrDivisionByZero),
		errors.Is(err, domain.ErrUnrecognizedIndicator):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, errorStatusCode(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	lg := logger.FromContext(c.Request.Context())
	if code >= 500 {
		lg.Errorw("request failed", "route", c.FullPath(), "status", code, "error", err.Error())
	} else {
		lg.Infow("request rejected", "route", c.FullPath(), "status", code, "error", err.Error())
	}
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// requestContextMiddleware puts the logger and a fresh performance
// profile into the request ctx so services can use them
func (m ApiHandler) requestContextMiddleware(c *gin.Context) {
	lg := m.Logger
	if lg == nil {
		lg = zap.S()
	}
	lg = lg.With("method", c.Request.Method, "path", c.Request.URL.Path)

	profile := domain.NewPerformanceProfile()
	ctx := logger.WithLogger(c.Request.Context(), lg)
	ctx = domain.WithPerformanceProfile(ctx, profile)
	c.Request = c.Request.WithContext(ctx)

	c.Next()

	profile.End()
	lg.Debugw("request finished", "status", c.Writer.Status(), "totalMs", profile.TotalMs, "events", profile.Events)
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	if m.RequestLogRepository == nil {
		ctx.Next()
		return
	}
	lg := logger.FromContext(ctx.Request.Context())

	body, err := ctx.GetRawData()
	if err != nil {
		lg.Warnf("failed to get raw data: %v", err)
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()
	req, err := m.RequestLogRepository.Add(m.Db, model.RequestLog{
		IPAddress:   util.StringPointer(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: util.StringPointer(string(body)),
		StartTs:     start,
	})
	if err != nil {
		lg.Warn(err)
	}

	ctx.Next()

	if req != nil {
		req.DurationMs = util.Int64Pointer(time.Since(start).Milliseconds())
		req.StatusCode = util.Int32Pointer(int32(ctx.Writer.Status()))
		if userID := ctx.GetString(userIDKey); userID != "" {
			req.UserID = util.StringPointer(userID)
		}
		profile := domain.GetPerformanceProfile(ctx.Request.Context())
		profile.End()
		if processingTimes, err := profile.ToJsonBytes(); err == nil {
			req.ProcessingTimes = util.StringPointer(string(processingTimes))
		}

		err = m.RequestLogRepository.Update(m.Db, *req)
		if err != nil {
			lg.Warn(err)
		}
	}
}
