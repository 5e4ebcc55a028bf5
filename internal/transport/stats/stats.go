package stats

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainstats "github.com/lanthe421/request-mesh/internal/domain/stats"
	statssvc "github.com/lanthe421/request-mesh/internal/service/stats"
)

func Register(rg *gin.RouterGroup, svc *statssvc.Service) {
	rg.GET("/operators-load", operatorsLoad(svc))
	rg.GET("/requests-distribution", requestsDistribution(svc))
}

func operatorsLoad(svc *statssvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		loads, err := svc.LoadStats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if loads == nil {
			loads = []domainstats.OperatorLoad{}
		}
		c.JSON(http.StatusOK, loads)
	}
}

func requestsDistribution(svc *statssvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		dist, err := svc.DistributionStats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, dist)
	}
}
