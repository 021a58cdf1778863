package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lauramoon/biztime/internal/appcontext"
	"github.com/lauramoon/biztime/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	errIndustryNotFound = errors.New("industry does not exist")
	errCompanyNotFound  = errors.New("company does not exist")
)

func industryCompanyCodes(db *gorm.DB, industryID uint) ([]string, error) {
	codes := make([]string, 0)
	err := db.Model(&entity.IndustryCompany{}).
		Where("industry_id = ?", industryID).
		Pluck("company_code", &codes).Error
	return codes, err
}

func GetIndustries(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var industries []entity.Industry
		if err := ctx.DB.Find(&industries).Error; err != nil {
			internalError(ctx, c, "Failed to fetch industries", err)
			return
		}

		response := make([]map[string]interface{}, 0, len(industries))
		for _, industry := range industries {
			codes, err := industryCompanyCodes(ctx.DB, industry.ID)
			if err != nil {
				internalError(ctx, c, "Failed to fetch companies for industry", err)
				return
			}
			response = append(response, map[string]interface{}{
				"id":        industry.ID,
				"name":      industry.Name,
				"companies": codes,
			})
		}

		c.JSON(http.StatusOK, gin.H{"industries": response})
	}
}

func CreateIndustry(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		type createIndustryRequest struct {
			Name string `json:"name" binding:"required"`
		}

		var request createIndustryRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			badRequest(c, "name is required")
			return
		}

		industry := entity.Industry{Name: request.Name}
		if err := ctx.DB.Create(&industry).Error; err != nil {
			internalError(ctx, c, "Failed to create industry", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"industry": gin.H{
			"id":   industry.ID,
			"name": industry.Name,
		}})
	}
}

// AssociateCompany links a company to an industry. Both sides must already
// exist; linking the same pair twice is a no-op.
func AssociateCompany(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			badRequest(c, "industry id must be an integer")
			return
		}

		type associateCompanyRequest struct {
			Code string `json:"code" binding:"required"`
		}

		var request associateCompanyRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			badRequest(c, "code is required")
			return
		}

		var industry entity.Industry
		var codes []string
		err = ctx.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.First(&industry, "id = ?", id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errIndustryNotFound
				}
				return err
			}

			var company entity.Company
			if err := tx.First(&company, "code = ?", request.Code).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errCompanyNotFound
				}
				return err
			}

			association := entity.IndustryCompany{
				IndustryID:  industry.ID,
				CompanyCode: company.Code,
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&association).Error; err != nil {
				return err
			}

			var pluckErr error
			codes, pluckErr = industryCompanyCodes(tx, industry.ID)
			return pluckErr
		})
		if err != nil {
			switch {
			case errors.Is(err, errIndustryNotFound):
				notFound(c, "Industry id does not exist")
			case errors.Is(err, errCompanyNotFound):
				notFound(c, "Company code does not exist")
			default:
				internalError(ctx, c, "Failed to associate company with industry", err)
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"industry": gin.H{
			"id":        industry.ID,
			"name":      industry.Name,
			"companies": codes,
		}})
	}
}
