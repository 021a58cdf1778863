package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lauramoon/biztime/internal/appcontext"
	"github.com/lauramoon/biztime/internal/entity"
	"github.com/lauramoon/biztime/internal/utils"
	"gorm.io/gorm"
)

func GetCompanies(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var companies []entity.Company
		if err := ctx.DB.Select("code", "name").Find(&companies).Error; err != nil {
			internalError(ctx, c, "Failed to fetch companies", err)
			return
		}

		response := make([]map[string]interface{}, 0, len(companies))
		for _, company := range companies {
			response = append(response, map[string]interface{}{
				"code": company.Code,
				"name": company.Name,
			})
		}

		c.JSON(http.StatusOK, gin.H{"companies": response})
	}
}

func GetCompany(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")

		var company entity.Company
		if err := ctx.DB.First(&company, "code = ?", code).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				notFound(c, "There is no company with code '"+code+"'")
				return
			}
			internalError(ctx, c, "Failed to fetch company", err)
			return
		}

		invoiceIDs := make([]uint, 0)
		if err := ctx.DB.Model(&entity.Invoice{}).Where("comp_code = ?", code).Order("id").Pluck("id", &invoiceIDs).Error; err != nil {
			internalError(ctx, c, "Failed to fetch invoices for company", err)
			return
		}

		industryNames := make([]string, 0)
		if err := ctx.DB.Model(&entity.Industry{}).
			Joins("JOIN industries_companies ON industries_companies.industry_id = industries.id").
			Where("industries_companies.company_code = ?", code).
			Order("industries.id").
			Pluck("industries.name", &industryNames).Error; err != nil {
			internalError(ctx, c, "Failed to fetch industries for company", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"company": gin.H{
			"code":        company.Code,
			"name":        company.Name,
			"description": company.Description,
			"invoices":    invoiceIDs,
			"industries":  industryNames,
		}})
	}
}

func CreateCompany(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		type createCompanyRequest struct {
			Name        string `json:"name" binding:"required"`
			Description string `json:"description"`
		}

		var request createCompanyRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			badRequest(c, "name is required")
			return
		}

		// The company code is derived, never client-supplied
		code := utils.Slugify(request.Name)
		if code == "" {
			badRequest(c, "name must contain at least one alphanumeric character")
			return
		}

		company := entity.Company{
			Code:        code,
			Name:        request.Name,
			Description: request.Description,
		}
		if err := ctx.DB.Create(&company).Error; err != nil {
			internalError(ctx, c, "Failed to create company", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"company": gin.H{
			"code":        company.Code,
			"name":        company.Name,
			"description": company.Description,
		}})
	}
}

func UpdateCompany(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")

		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			badRequest(c, "invalid JSON body")
			return
		}

		// The code is the identity key and cannot be changed here
		if _, ok := body["code"]; ok {
			badRequest(c, "Not allowed")
			return
		}

		name, _ := body["name"].(string)
		if name == "" {
			badRequest(c, "name is required")
			return
		}
		description, _ := body["description"].(string)

		result := ctx.DB.Model(&entity.Company{}).Where("code = ?", code).Updates(map[string]interface{}{
			"name":        name,
			"description": description,
		})
		if result.Error != nil {
			internalError(ctx, c, "Failed to update company", result.Error)
			return
		}
		if result.RowsAffected == 0 {
			notFound(c, "There is no company with code '"+code+"'")
			return
		}

		c.JSON(http.StatusOK, gin.H{"company": gin.H{
			"code":        code,
			"name":        name,
			"description": description,
		}})
	}
}

func DeleteCompany(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")

		result := ctx.DB.Delete(&entity.Company{}, "code = ?", code)
		if result.Error != nil {
			internalError(ctx, c, "Failed to delete company", result.Error)
			return
		}
		if result.RowsAffected == 0 {
			notFound(c, "There is no company with code '"+code+"'")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": code + " deleted"})
	}
}
