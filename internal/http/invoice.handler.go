package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lauramoon/biztime/internal/appcontext"
	"github.com/lauramoon/biztime/internal/entity"
	"gorm.io/gorm"
)

func invoiceJSON(invoice entity.Invoice) gin.H {
	return gin.H{
		"id":        invoice.ID,
		"comp_code": invoice.CompCode,
		"amt":       invoice.Amt,
		"paid":      invoice.Paid,
		"add_date":  invoice.AddDate,
		"paid_date": invoice.PaidDate,
	}
}

func GetInvoices(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var invoices []entity.Invoice
		if err := ctx.DB.Select("id", "comp_code").Find(&invoices).Error; err != nil {
			internalError(ctx, c, "Failed to fetch invoices", err)
			return
		}

		response := make([]map[string]interface{}, 0, len(invoices))
		for _, invoice := range invoices {
			response = append(response, map[string]interface{}{
				"id":        invoice.ID,
				"comp_code": invoice.CompCode,
			})
		}

		c.JSON(http.StatusOK, gin.H{"invoices": response})
	}
}

func GetInvoice(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			badRequest(c, "invoice id must be an integer")
			return
		}

		var invoice entity.Invoice
		if err := ctx.DB.First(&invoice, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				notFound(c, "There is no invoice with id '"+c.Param("id")+"'")
				return
			}
			internalError(ctx, c, "Failed to fetch invoice", err)
			return
		}

		var company entity.Company
		if err := ctx.DB.First(&company, "code = ?", invoice.CompCode).Error; err != nil {
			internalError(ctx, c, "Failed to fetch company for invoice", err)
			return
		}

		// The owning company is nested in place of the raw comp_code
		c.JSON(http.StatusOK, gin.H{"invoice": gin.H{
			"id":        invoice.ID,
			"amt":       invoice.Amt,
			"paid":      invoice.Paid,
			"add_date":  invoice.AddDate,
			"paid_date": invoice.PaidDate,
			"company": gin.H{
				"code":        company.Code,
				"name":        company.Name,
				"description": company.Description,
			},
		}})
	}
}

func CreateInvoice(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		type createInvoiceRequest struct {
			CompCode string   `json:"comp_code" binding:"required"`
			Amt      *float64 `json:"amt" binding:"required"`
		}

		var request createInvoiceRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			badRequest(c, "comp_code and amt are required")
			return
		}

		var company entity.Company
		if err := ctx.DB.First(&company, "code = ?", request.CompCode).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				notFound(c, "There is no company with code '"+request.CompCode+"'")
				return
			}
			internalError(ctx, c, "Failed to fetch company", err)
			return
		}

		invoice := entity.Invoice{
			CompCode: request.CompCode,
			Amt:      *request.Amt,
			AddDate:  time.Now(),
		}
		if err := ctx.DB.Create(&invoice).Error; err != nil {
			internalError(ctx, c, "Failed to create invoice", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"invoice": invoiceJSON(invoice)})
	}
}

func UpdateInvoice(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			badRequest(c, "invoice id must be an integer")
			return
		}

		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			badRequest(c, "invalid JSON body")
			return
		}

		// The id is the identity key and cannot be changed here
		if _, ok := body["id"]; ok {
			badRequest(c, "Not allowed")
			return
		}

		amt, ok := body["amt"].(float64)
		if !ok {
			badRequest(c, "amt is required")
			return
		}

		var paid *bool
		if paidValue, present := body["paid"]; present {
			paidFlag, ok := paidValue.(bool)
			if !ok {
				badRequest(c, "paid must be a boolean")
				return
			}
			paid = &paidFlag
		}

		var invoice entity.Invoice
		err = ctx.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.First(&invoice, "id = ?", id).Error; err != nil {
				return err
			}

			invoice.Amt = amt
			if paid != nil {
				switch {
				case *paid && !invoice.Paid:
					today := time.Now()
					invoice.Paid = true
					invoice.PaidDate = &today
				case !*paid:
					invoice.Paid = false
					invoice.PaidDate = nil
				}
				// already paid and still paid: paid_date stays as it was
			}

			return tx.Save(&invoice).Error
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				notFound(c, "There is no invoice with id '"+c.Param("id")+"'")
				return
			}
			internalError(ctx, c, "Failed to update invoice", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"invoice": invoiceJSON(invoice)})
	}
}

func DeleteInvoice(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			badRequest(c, "invoice id must be an integer")
			return
		}

		result := ctx.DB.Delete(&entity.Invoice{}, "id = ?", id)
		if result.Error != nil {
			internalError(ctx, c, "Failed to delete invoice", result.Error)
			return
		}
		if result.RowsAffected == 0 {
			notFound(c, "There is no invoice with id '"+c.Param("id")+"'")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "invoice " + c.Param("id") + " deleted"})
	}
}
