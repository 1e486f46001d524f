package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstbill/internal/domain"
	"gstbill/internal/handler"
	"gstbill/internal/middleware"
	"gstbill/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// invoiceTestRouter wires the invoice routes with the actor injected the way
// the auth middleware would.
func invoiceTestRouter(svc *mocks.MockInvoiceService, actor uuid.UUID) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextKeyUserID, actor)
		c.Next()
	})
	h := handler.NewInvoiceHandler(svc)
	r.POST("/invoices", h.Create)
	r.GET("/invoices", h.List)
	r.GET("/invoices/summary", h.Summary)
	r.GET("/invoices/:id", h.GetByID)
	return r
}

func createBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(gin.H{
		"customer_id":     uuid.New().String(),
		"invoice_type":    "B2B",
		"place_of_supply": "Maharashtra",
		"items": []gin.H{
			{"description": "Widget", "quantity": "2", "rate": "1000", "gst_rate": "18"},
		},
	})
	require.NoError(t, err)
	return body
}

func TestInvoiceCreate_Created(t *testing.T) {
	svc := new(mocks.MockInvoiceService)
	actor := uuid.New()
	r := invoiceTestRouter(svc, actor)

	created := &domain.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: "INV-000001",
		TotalAmount:   decimal.RequireFromString("2360.00"),
	}
	svc.On("Create", mock.Anything, mock.AnythingOfType("service.CreateInvoiceInput"), actor).Return(created, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/invoices", bytes.NewReader(createBody(t)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			InvoiceNumber string `json:"invoice_number"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "INV-000001", resp.Data.InvoiceNumber)

	svc.AssertExpectations(t)
}

func TestInvoiceCreate_ValidationError(t *testing.T) {
	svc := new(mocks.MockInvoiceService)
	r := invoiceTestRouter(svc, uuid.New())

	svc.On("Create", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.NewValidationError("items[0].quantity", "must be greater than zero"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/invoices", bytes.NewReader(createBody(t)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, w.Body.String(), "items[0].quantity")
}

func TestInvoiceCreate_MalformedJSON(t *testing.T) {
	svc := new(mocks.MockInvoiceService)
	r := invoiceTestRouter(svc, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/invoices", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceList_BadDateFilter(t *testing.T) {
	svc := new(mocks.MockInvoiceService)
	r := invoiceTestRouter(svc, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/invoices?start_date=12-04-2025", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "start_date")
	svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestInvoiceList_PassesFilters(t *testing.T) {
	svc := new(mocks.MockInvoiceService)
	r := invoiceTestRouter(svc, uuid.New())

	customerID := uuid.New()
	svc.On("List", mock.Anything, mock.MatchedBy(func(f domain.InvoiceFilters) bool {
		return f.CustomerID != nil && *f.CustomerID == customerID &&
			f.InvoiceType == domain.InvoiceTypeB2B &&
			f.StartDate != nil && f.EndDate != nil
	})).Return([]domain.Invoice{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/invoices?start_date=2025-04-01&end_date=2025-04-30&customer_id="+customerID.String()+"&invoice_type=B2B", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestInvoiceList_EndDateCoversWholeDay(t *testing.T) {
	svc := new(mocks.MockInvoiceService)
	r := invoiceTestRouter(svc, uuid.New())

	var got domain.InvoiceFilters
	svc.On("List", mock.Anything, mock.AnythingOfType("domain.InvoiceFilters")).
		Run(func(args mock.Arguments) { got = args.Get(1).(domain.InvoiceFilters) }).
		Return([]domain.Invoice{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/invoices?end_date=2025-04-30", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got.EndDate)

	// The filter bound is exclusive midnight of the next day, so an invoice
	// stamped late on April 30 still satisfies invoice_date < EndDate.
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), got.EndDate.UTC())
	lateOnEndDate := time.Date(2025, 4, 30, 18, 45, 0, 0, time.UTC)
	assert.True(t, lateOnEndDate.Before(*got.EndDate))
}

func TestInvoiceGetByID_NotFound(t *testing.T) {
	svc := new(mocks.MockInvoiceService)
	r := invoiceTestRouter(svc, uuid.New())

	id := uuid.New()
	svc.On("GetByID", mock.Anything, id).Return(nil, domain.ErrInvoiceNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/invoices/"+id.String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "INVOICE_NOT_FOUND")
}

func TestInvoiceGetByID_BadUUID(t *testing.T) {
	svc := new(mocks.MockInvoiceService)
	r := invoiceTestRouter(svc, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/invoices/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
