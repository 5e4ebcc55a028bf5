package source

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainoperator "github.com/lanthe421/request-mesh/internal/domain/operator"
	domainsource "github.com/lanthe421/request-mesh/internal/domain/source"
	sourcesvc "github.com/lanthe421/request-mesh/internal/service/source"
)

func Register(rg *gin.RouterGroup, svc *sourcesvc.Service) {
	rg.POST("/", createSource(svc))
	rg.GET("/", listSources(svc))
	rg.POST("/:id/operators", configureWeights(svc))
}

type createReq struct {
	Name       string `json:"name" binding:"required"`
	Identifier string `json:"identifier" binding:"required"`
}

func createSource(svc *sourcesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		s, err := svc.Create(c.Request.Context(), req.Name, req.Identifier)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, s)
	}
}

func listSources(svc *sourcesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sources, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if sources == nil {
			sources = []domainsource.Source{}
		}
		c.JSON(http.StatusOK, sources)
	}
}

type weightEntry struct {
	OperatorID uuid.UUID `json:"operator_id" binding:"required"`
	Weight     int       `json:"weight" binding:"required,min=1,max=100"`
}

type weightsReq struct {
	Weights []weightEntry `json:"weights" binding:"required,dive"`
}

func configureWeights(svc *sourcesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sourceID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req weightsReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		configs := make([]sourcesvc.WeightConfig, 0, len(req.Weights))
		for _, w := range req.Weights {
			configs = append(configs, sourcesvc.WeightConfig{OperatorID: w.OperatorID, Weight: w.Weight})
		}

		weights, err := svc.ConfigureWeights(c.Request.Context(), sourceID, configs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if weights == nil {
			weights = []domainoperator.Weight{}
		}
		c.JSON(http.StatusOK, weights)
	}
}
