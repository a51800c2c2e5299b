package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/PasalPOS/pasal_pos_app/internal/apperrors"
	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	portssvc "github.com/PasalPOS/pasal_pos_app/internal/core/ports/services"
	"github.com/PasalPOS/pasal_pos_app/internal/dto"
	"github.com/PasalPOS/pasal_pos_app/internal/handlers"
	"github.com/PasalPOS/pasal_pos_app/internal/middleware"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) RecordSale(ctx context.Context, req dto.CreateSalesRequest, creatorUserID string) (*domain.SalesTransaction, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesTransaction), args.Error(1)
}
func (m *MockLedgerService) GetSalesTransactionByID(ctx context.Context, transactionID string) (*domain.SalesTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesTransaction), args.Error(1)
}
func (m *MockLedgerService) ListSalesTransactions(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListSalesResponse), args.Error(1)
}
func (m *MockLedgerService) RecordPurchase(ctx context.Context, req dto.CreatePurchaseRequest, creatorUserID string) (*domain.PurchaseTransaction, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseTransaction), args.Error(1)
}
func (m *MockLedgerService) GetPurchaseTransactionByID(ctx context.Context, transactionID string) (*domain.PurchaseTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseTransaction), args.Error(1)
}
func (m *MockLedgerService) ListPurchaseTransactions(ctx context.Context, params dto.ListPurchasesParams) (*dto.ListPurchasesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListPurchasesResponse), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite ---
type SalesHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *MockLedgerService
	jwtSecret         string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *SalesHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "pasal-pos-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *SalesHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterCustomValidators()
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockLedgerService = new(MockLedgerService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterSalesRoutes(v1, suite.mockLedgerService)
}

// --- Test Cases ---

func (suite *SalesHandlerTestSuite) TestRecordSale_Success() {
	userID := uuid.NewString()
	itemID := uuid.NewString()
	reqBody := dto.CreateSalesRequest{
		Transaction: dto.CreateSalesTransactionRequest{
			InvoiceNumber: "INV-2082-001",
			VatEnabled:    true,
		},
		Items: []dto.CreateSalesItemRequest{
			{ItemID: itemID, Quantity: 3, UnitPrice: decimal.NewFromInt(150)},
		},
	}

	expected := &domain.SalesTransaction{
		TransactionID: uuid.NewString(),
		InvoiceNumber: "INV-2082-001",
		CustomerName:  "Walk-in Customer",
		SaleDate:      time.Now(),
		Subtotal:      decimal.NewFromInt(450),
		VatEnabled:    true,
		VatAmount:     decimal.RequireFromString("58.5"),
		TotalAmount:   decimal.RequireFromString("508.5"),
		PaymentMethod: "cash",
		PaymentStatus: domain.PaymentPaid,
	}

	suite.mockLedgerService.On("RecordSale",
		mock.Anything,
		mock.MatchedBy(func(r dto.CreateSalesRequest) bool {
			return r.Transaction.InvoiceNumber == "INV-2082-001" && len(r.Items) == 1
		}),
		userID, // expect the user ID from the token
	).Return(expected, nil).Once()

	body, err := json.Marshal(reqBody)
	suite.Require().NoError(err)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/sales", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code, "Expected status Created")

	var responseBody dto.SalesTransactionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.Equal(expected.TransactionID, responseBody.TransactionID)
	suite.Equal("INV-2082-001", responseBody.InvoiceNumber)
	suite.True(decimal.RequireFromString("508.5").Equal(responseBody.TotalAmount))

	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *SalesHandlerTestSuite) TestRecordSale_DuplicateInvoice() {
	userID := uuid.NewString()
	reqBody := dto.CreateSalesRequest{
		Transaction: dto.CreateSalesTransactionRequest{InvoiceNumber: "INV-2082-002"},
		Items: []dto.CreateSalesItemRequest{
			{ItemID: uuid.NewString(), Quantity: 1, UnitPrice: decimal.NewFromInt(100)},
		},
	}

	suite.mockLedgerService.On("RecordSale", mock.Anything, mock.Anything, userID).
		Return(nil, fmt.Errorf("invoice number taken: %w", apperrors.ErrDuplicate)).Once()

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/sales", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *SalesHandlerTestSuite) TestRecordSale_MissingItemsRejectedByBinding() {
	userID := uuid.NewString()
	reqBody := dto.CreateSalesRequest{
		Transaction: dto.CreateSalesTransactionRequest{InvoiceNumber: "INV-2082-003"},
		Items:       []dto.CreateSalesItemRequest{},
	}

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/sales", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "RecordSale")
}

func (suite *SalesHandlerTestSuite) TestRecordSale_NoToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/sales", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "RecordSale")
}

func (suite *SalesHandlerTestSuite) TestGetSale_NotFound() {
	userID := uuid.NewString()
	transactionID := uuid.NewString()

	suite.mockLedgerService.On("GetSalesTransactionByID", mock.Anything, transactionID).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/sales/"+transactionID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *SalesHandlerTestSuite) TestListSales_PassesQueryParams() {
	userID := uuid.NewString()
	expected := &dto.ListSalesResponse{
		Transactions: []dto.SalesTransactionResponse{
			{TransactionID: uuid.NewString(), InvoiceNumber: "INV-2082-010", TotalAmount: decimal.NewFromInt(1130)},
		},
	}

	suite.mockLedgerService.On("ListSalesTransactions",
		mock.Anything,
		mock.MatchedBy(func(p dto.ListSalesParams) bool {
			return p.Limit == 10 && p.NextToken == nil
		}),
	).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/sales?limit=10", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.ListSalesResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.Len(responseBody.Transactions, 1)
	suite.Equal("INV-2082-010", responseBody.Transactions[0].InvoiceNumber)
	suite.Nil(responseBody.NextToken)

	suite.mockLedgerService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestSalesHandler(t *testing.T) {
	suite.Run(t, new(SalesHandlerTestSuite))
}
