package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lauramoon/biztime/internal/appcontext"
	"github.com/lauramoon/biztime/internal/http/middleware"
)

type APIService struct {
	engine  *gin.Engine
	context *appcontext.Context
}

func NewHTTPService(ctx *appcontext.Context) *APIService {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORSMiddleware())

	service := &APIService{
		engine:  engine,
		context: ctx,
	}
	service.setupRoutes()
	return service
}

func (h *APIService) Engine() *gin.Engine {
	return h.engine
}

func (h *APIService) setupRoutes() {
	h.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h.setupCompanyRoutes()
	h.setupInvoiceRoutes()
	h.setupIndustryRoutes()
}

func (h *APIService) setupCompanyRoutes() {
	companies := h.engine.Group("/companies")

	companies.GET("", GetCompanies(h.context))
	companies.GET("/:code", GetCompany(h.context))
	companies.POST("", CreateCompany(h.context))
	companies.PUT("/:code", UpdateCompany(h.context))
	companies.DELETE("/:code", DeleteCompany(h.context))
}

func (h *APIService) setupInvoiceRoutes() {
	invoices := h.engine.Group("/invoices")

	invoices.GET("", GetInvoices(h.context))
	invoices.GET("/:id", GetInvoice(h.context))
	invoices.POST("", CreateInvoice(h.context))
	invoices.PUT("/:id", UpdateInvoice(h.context))
	invoices.DELETE("/:id", DeleteInvoice(h.context))
}

func (h *APIService) setupIndustryRoutes() {
	industries := h.engine.Group("/industries")

	industries.GET("", GetIndustries(h.context))
	industries.POST("", CreateIndustry(h.context))
	industries.PUT("/:id", AssociateCompany(h.context))
}
