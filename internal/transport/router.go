package transport

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lanthe421/request-mesh/internal/domain/event"
	porteventbus "github.com/lanthe421/request-mesh/internal/port/eventbus"
	operatorsvc "github.com/lanthe421/request-mesh/internal/service/operator"
	requestsvc "github.com/lanthe421/request-mesh/internal/service/request"
	sourcesvc "github.com/lanthe421/request-mesh/internal/service/source"
	statssvc "github.com/lanthe421/request-mesh/internal/service/stats"

	operatorhandler "github.com/lanthe421/request-mesh/internal/transport/operator"
	requesthandler "github.com/lanthe421/request-mesh/internal/transport/request"
	sourcehandler "github.com/lanthe421/request-mesh/internal/transport/source"
	statshandler "github.com/lanthe421/request-mesh/internal/transport/stats"
	wshandler "github.com/lanthe421/request-mesh/internal/transport/ws"
)

func NewRouter(
	ctx context.Context,
	operatorSvc *operatorsvc.Service,
	sourceSvc *sourcesvc.Service,
	requestSvc *requestsvc.Service,
	statsSvc *statssvc.Service,
	eventBus porteventbus.EventBus,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestLogger())
	r.Use(CORSMiddleware())

	api := r.Group("/api")

	operatorhandler.Register(api.Group("/operators"), operatorSvc)
	sourcehandler.Register(api.Group("/sources"), sourceSvc)
	requesthandler.Register(api.Group("/requests"), requestSvc)
	statshandler.Register(api.Group("/stats"), statsSvc)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	hub := wshandler.NewHub()
	hub.Register(api.Group("/ws"))

	// Bridge: one subscription per domain channel. All events within a channel
	// are forwarded to WS clients; event.Type in the payload lets the client
	// filter.
	for _, ch := range []event.Channel{
		event.ChannelRequest,
		event.ChannelOperator,
	} {
		c := ch
		if _, err := eventBus.Subscribe(ctx, c, func(_ context.Context, e event.Event) {
			hub.Broadcast(e)
		}); err != nil {
			slog.Error("failed to subscribe channel to WS hub", "channel", c, "error", err)
		}
	}

	return r
}
