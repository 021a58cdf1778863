package http

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lauramoon/biztime/internal/appcontext"
	"github.com/lauramoon/biztime/internal/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestService(t *testing.T) (*appcontext.Context, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open test database")
	require.NoError(t, db.AutoMigrate(&entity.Company{}, &entity.Invoice{}, &entity.Industry{}, &entity.IndustryCompany{}), "migrate test database")

	ctx := &appcontext.Context{
		DB:     db,
		Logger: zap.NewNop(),
	}
	return ctx, NewHTTPService(ctx).Engine()
}

func seedCompany(t *testing.T, db *gorm.DB, code, name, description string) entity.Company {
	t.Helper()
	company := entity.Company{Code: code, Name: name, Description: description}
	require.NoError(t, db.Create(&company).Error, "seed company")
	return company
}

func seedInvoice(t *testing.T, db *gorm.DB, compCode string, amt float64) entity.Invoice {
	t.Helper()
	invoice := entity.Invoice{CompCode: compCode, Amt: amt, AddDate: time.Now()}
	require.NoError(t, db.Create(&invoice).Error, "seed invoice")
	return invoice
}

func seedPaidInvoice(t *testing.T, db *gorm.DB, compCode string, amt float64, paidDate time.Time) entity.Invoice {
	t.Helper()
	invoice := entity.Invoice{CompCode: compCode, Amt: amt, Paid: true, AddDate: paidDate, PaidDate: &paidDate}
	require.NoError(t, db.Create(&invoice).Error, "seed paid invoice")
	return invoice
}

func seedIndustry(t *testing.T, db *gorm.DB, name string) entity.Industry {
	t.Helper()
	industry := entity.Industry{Name: name}
	require.NoError(t, db.Create(&industry).Error, "seed industry")
	return industry
}

func doRequest(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "decode response body: %s", w.Body.String())
	return body
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
