package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/PasalPOS/pasal_pos_app/internal/apperrors"
	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	portsrepo "github.com/PasalPOS/pasal_pos_app/internal/core/ports/repositories"
	portssvc "github.com/PasalPOS/pasal_pos_app/internal/core/ports/services"
	"github.com/PasalPOS/pasal_pos_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock VatLedgerRepository ---
type MockVatLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.VatLedgerRepositoryFacade = (*MockVatLedgerRepository)(nil)

func (m *MockVatLedgerRepository) ListVatEntries(ctx context.Context, fromDate *time.Time, toDate *time.Time) ([]domain.VatLedgerEntry, error) {
	args := m.Called(ctx, fromDate, toDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VatLedgerEntry), args.Error(1)
}

func (m *MockVatLedgerRepository) GetVatSummary(ctx context.Context, fromDate *time.Time, toDate *time.Time) (*domain.VatSummary, error) {
	args := m.Called(ctx, fromDate, toDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VatSummary), args.Error(1)
}

// --- Test Suite Setup ---
type VatLedgerServiceTestSuite struct {
	suite.Suite
	mockVatRepo *MockVatLedgerRepository
	service     portssvc.VatLedgerSvc
}

func (suite *VatLedgerServiceTestSuite) SetupTest() {
	suite.mockVatRepo = new(MockVatLedgerRepository)
	suite.service = services.NewVatLedgerService(suite.mockVatRepo)
}

func (suite *VatLedgerServiceTestSuite) TestListVatEntries_Success() {
	ctx := context.Background()
	entries := []domain.VatLedgerEntry{
		{EntryID: uuid.NewString(), EntryType: domain.VatSalesOutput},
		{EntryID: uuid.NewString(), EntryType: domain.VatPurchaseInput},
	}

	suite.mockVatRepo.On("ListVatEntries", ctx, (*time.Time)(nil), (*time.Time)(nil)).Return(entries, nil).Once()

	result, err := suite.service.ListVatEntries(ctx, nil, nil)

	suite.Require().NoError(err)
	suite.Len(result, 2)
	suite.mockVatRepo.AssertExpectations(suite.T())
}

func (suite *VatLedgerServiceTestSuite) TestListVatEntries_InvalidDateRange() {
	ctx := context.Background()
	from := time.Date(2025, 4, 14, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -1)

	result, err := suite.service.ListVatEntries(ctx, &from, &to)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockVatRepo.AssertNotCalled(suite.T(), "ListVatEntries")
}

func (suite *VatLedgerServiceTestSuite) TestGetVatSummary_Success() {
	ctx := context.Background()
	summary := &domain.VatSummary{
		VatCollected: decimal.NewFromInt(1300),
		VatPaid:      decimal.NewFromInt(650),
		VatPayable:   decimal.NewFromInt(650),
	}

	suite.mockVatRepo.On("GetVatSummary", ctx, (*time.Time)(nil), (*time.Time)(nil)).Return(summary, nil).Once()

	result, err := suite.service.GetVatSummary(ctx, nil, nil)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(650).Equal(result.VatPayable))
	suite.mockVatRepo.AssertExpectations(suite.T())
}

func (suite *VatLedgerServiceTestSuite) TestGetVatSummary_InvalidDateRange() {
	ctx := context.Background()
	from := time.Date(2025, 4, 14, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -1)

	result, err := suite.service.GetVatSummary(ctx, &from, &to)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockVatRepo.AssertNotCalled(suite.T(), "GetVatSummary")
}

func TestVatLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VatLedgerServiceTestSuite))
}
