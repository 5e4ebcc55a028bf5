package operator

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainoperator "github.com/lanthe421/request-mesh/internal/domain/operator"
	operatorsvc "github.com/lanthe421/request-mesh/internal/service/operator"
)

func Register(rg *gin.RouterGroup, svc *operatorsvc.Service) {
	rg.POST("/", createOperator(svc))
	rg.GET("/", listOperators(svc))
	rg.GET("/:id", getOperator(svc))
	rg.PUT("/:id", updateOperator(svc))
	rg.PUT("/:id/toggle", toggleOperator(svc))
}

type createReq struct {
	Name    string `json:"name" binding:"required"`
	MaxLoad *int   `json:"max_load_limit" binding:"required"`
}

func createOperator(svc *operatorsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		o, err := svc.Create(c.Request.Context(), req.Name, *req.MaxLoad)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, o)
	}
}

func listOperators(svc *operatorsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		operators, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if operators == nil {
			operators = []domainoperator.Operator{}
		}
		c.JSON(http.StatusOK, operators)
	}
}

func getOperator(svc *operatorsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		o, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

type updateReq struct {
	MaxLoad *int `json:"max_load_limit" binding:"required"`
}

func updateOperator(svc *operatorsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req updateReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		o, err := svc.UpdateMaxLoad(c.Request.Context(), id, *req.MaxLoad)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

func toggleOperator(svc *operatorsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		o, err := svc.ToggleActive(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, o)
	}
}
