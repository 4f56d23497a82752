package health

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lojinha/loja-microservices/internal/platform/logger"
	"github.com/lojinha/loja-microservices/internal/platform/metrics"
	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Legacy health bodies, kept textual for orchestrator compatibility.
const (
	bodyHealthy   = "OK - Banco Conectado"
	bodyUnhealthy = "ERRO - Banco Indisponível"
)

const defaultCheckTimeout = 2 * time.Second

// Pinger is the minimal liveness probe a store adapter must offer. It has to
// be cheap enough to run on every orchestrator poll.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Status is the outcome of a single health check. Derived, never persisted.
type Status struct {
	Healthy bool
	Reason  string
}

// Monitor answers liveness queries by pinging the service's store under a
// bounded time budget.
type Monitor struct {
	service     string
	pinger      Pinger
	timeout     time.Duration
	healthyBody string
}

func NewMonitor(service string, pinger Pinger) *Monitor {
	return &Monitor{
		service:     service,
		pinger:      pinger,
		timeout:     defaultCheckTimeout,
		healthyBody: bodyHealthy,
	}
}

// WithHealthyBody overrides the 200 body. The catalog's legacy contract pins
// a plain "OK" while the other services answer with the banco-conectado text.
func (m *Monitor) WithHealthyBody(body string) *Monitor {
	m.healthyBody = body
	return m
}

// Check runs a single store ping. It always resolves to a Status within the
// monitor's time budget; it never panics the caller.
func (m *Monitor) Check(ctx context.Context) Status {
	if m.pinger == nil {
		return Status{Healthy: false, Reason: "store not connected"}
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	if err := m.pinger.Ping(ctx); err != nil {
		return Status{Healthy: false, Reason: err.Error()}
	}
	return Status{Healthy: true}
}

// Handler serves GET /health with the legacy plain-text contract.
func (m *Monitor) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		status := m.Check(c.Request.Context())
		if !status.Healthy {
			logger.Error("health check failed", nil,
				zap.String("service", m.service),
				zap.String("reason", status.Reason),
			)
			c.String(http.StatusInternalServerError, bodyUnhealthy)
			return
		}
		c.String(http.StatusOK, m.healthyBody)
	}
}

// StartPeriodicProbe refreshes the store_healthy gauge on a fixed schedule so
// dashboards see store state between orchestrator polls. Returns the scheduler
// so callers can stop it on shutdown.
func (m *Monitor) StartPeriodicProbe() *cron.Cron {
	probe := func() {
		status := m.Check(context.Background())
		gauge := metrics.StoreHealthy.WithLabelValues(m.service)
		if status.Healthy {
			gauge.Set(1)
			return
		}
		gauge.Set(0)
		logger.Warn("background store probe failed",
			zap.String("service", m.service),
			zap.String("reason", status.Reason),
		)
	}
	// Prime the gauge so scrapes before the first tick already carry a sample.
	probe()

	scheduler := cron.New()
	_, err := scheduler.AddFunc("@every 30s", probe)
	if err != nil {
		logger.Error("failed to schedule background store probe", err, zap.String("service", m.service))
		return scheduler
	}
	scheduler.Start()
	return scheduler
}

// SQLPinger adapts *sql.DB to the Pinger interface.
type SQLPinger struct {
	DB *sql.DB
}

func (p SQLPinger) Ping(ctx context.Context) error {
	return p.DB.PingContext(ctx)
}

// MongoPinger adapts *mongo.Client to the Pinger interface.
type MongoPinger struct {
	Client *mongo.Client
}

func (p MongoPinger) Ping(ctx context.Context) error {
	return p.Client.Ping(ctx, readpref.Primary())
}
