package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// OrdersCreated counts orders successfully persisted by the order workflow.
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pedidos_created_total",
		Help: "Total number of orders successfully created.",
	})

	// OrderFailures counts failed order creations by failure reason.
	OrderFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pedidos_failed_total",
		Help: "Total number of failed order creations, by reason.",
	}, []string{"reason"})

	// StoreHealthy reports the result of the last background store probe
	// (1 healthy, 0 unhealthy). The /health endpoint always probes live;
	// this gauge only feeds dashboards and alerting.
	StoreHealthy = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "store_healthy",
		Help: "Whether the last background store probe succeeded.",
	}, []string{"service"})
)

// Handler exposes the default Prometheus registry for gin routers.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
