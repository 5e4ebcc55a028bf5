package request

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainrequest "github.com/lanthe421/request-mesh/internal/domain/request"
	requestsvc "github.com/lanthe421/request-mesh/internal/service/request"
)

func Register(rg *gin.RouterGroup, svc *requestsvc.Service) {
	rg.POST("/", createRequest(svc))
	rg.GET("/", listRequests(svc))
	rg.GET("/:id", getRequest(svc))
	rg.PUT("/:id/complete", completeRequest(svc))
}

type createReq struct {
	UserIdentifier string    `json:"user_identifier" binding:"required"`
	SourceID       uuid.UUID `json:"source_id" binding:"required"`
	Message        string    `json:"message" binding:"required"`
}

func createRequest(svc *requestsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		r, err := svc.Create(c.Request.Context(), req.UserIdentifier, req.SourceID, req.Message)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, r)
	}
}

func listRequests(svc *requestsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filters domainrequest.ListFilters

		if v := c.Query("source_id"); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid source_id"})
				return
			}
			filters.SourceID = &id
		}
		if v := c.Query("operator_id"); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid operator_id"})
				return
			}
			filters.OperatorID = &id
		}
		if v := c.Query("status"); v != "" {
			s := domainrequest.Status(v)
			filters.Status = &s
		}

		requests, err := svc.List(c.Request.Context(), filters)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if requests == nil {
			requests = []domainrequest.Request{}
		}
		c.JSON(http.StatusOK, requests)
	}
}

func getRequest(svc *requestsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		r, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, r)
	}
}

func completeRequest(svc *requestsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		r, err := svc.Complete(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, r)
	}
}
