package services_test

import (
	"context"
	"testing"

	"github.com/PasalPOS/pasal_pos_app/internal/apperrors"
	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	portssvc "github.com/PasalPOS/pasal_pos_app/internal/core/ports/services"
	"github.com/PasalPOS/pasal_pos_app/internal/core/services"
	"github.com/PasalPOS/pasal_pos_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// The item repository mock lives in ledger_service_test.go and is shared
// across this package's suites.

type ItemServiceTestSuite struct {
	suite.Suite
	mockItemRepo *MockItemRepository
	service      portssvc.ItemSvcFacade
	userID       string
}

func (suite *ItemServiceTestSuite) SetupTest() {
	suite.mockItemRepo = new(MockItemRepository)
	suite.service = services.NewItemService(suite.mockItemRepo)
	suite.userID = uuid.NewString()
}

func (suite *ItemServiceTestSuite) TestCreateItem_Success() {
	ctx := context.Background()
	req := dto.CreateItemRequest{
		Name:            "Surya Cigarettes",
		Category:        "Tobacco",
		CostPrice:       decimal.NewFromInt(400),
		SellingPrice:    decimal.NewFromInt(450),
		OpeningQuantity: 30,
		MinStockLevel:   5,
		Unit:            "pkt",
	}

	suite.mockItemRepo.On("SaveItem", ctx, mock.AnythingOfType("domain.Item")).Return(nil).Once()

	item, err := suite.service.CreateItem(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(item.ItemID)
	suite.Equal(int64(30), item.StockQuantity, "opening quantity becomes the starting stock")
	suite.Equal(int64(30), item.OpeningQuantity)
	suite.Equal(suite.userID, item.CreatedBy)
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestCreateItem_NegativeWholesalePrice() {
	ctx := context.Background()
	negative := decimal.NewFromInt(-5)
	req := dto.CreateItemRequest{
		Name:           "Surya Cigarettes",
		CostPrice:      decimal.NewFromInt(400),
		SellingPrice:   decimal.NewFromInt(450),
		WholesalePrice: &negative,
	}

	item, err := suite.service.CreateItem(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(item)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "SaveItem")
}

func (suite *ItemServiceTestSuite) TestUpdateItem_MergesFields() {
	ctx := context.Background()
	itemID := uuid.NewString()
	existing := &domain.Item{
		ItemID:        itemID,
		Name:          "Surya Cigarettes",
		SellingPrice:  decimal.NewFromInt(450),
		CostPrice:     decimal.NewFromInt(400),
		StockQuantity: 30,
	}
	newPrice := decimal.NewFromInt(475)
	req := dto.UpdateItemRequest{SellingPrice: &newPrice}

	suite.mockItemRepo.On("FindItemByID", ctx, itemID).Return(existing, nil).Once()
	suite.mockItemRepo.On("UpdateItem", ctx, mock.AnythingOfType("domain.Item")).Return(nil).Once()

	updated, err := suite.service.UpdateItem(ctx, itemID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(475).Equal(updated.SellingPrice))
	suite.Equal("Surya Cigarettes", updated.Name, "untouched fields survive")
	suite.Equal(int64(30), updated.StockQuantity, "stock never moves through an update")
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestUpdateItem_RejectsNonPositivePrice() {
	ctx := context.Background()
	itemID := uuid.NewString()
	existing := &domain.Item{ItemID: itemID, Name: "Surya Cigarettes"}
	zero := decimal.Zero
	req := dto.UpdateItemRequest{SellingPrice: &zero}

	suite.mockItemRepo.On("FindItemByID", ctx, itemID).Return(existing, nil).Once()

	_, err := suite.service.UpdateItem(ctx, itemID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "UpdateItem")
}

func (suite *ItemServiceTestSuite) TestAdjustStock_ZeroDeltaRejected() {
	ctx := context.Background()

	item, err := suite.service.AdjustStock(ctx, uuid.NewString(), dto.AdjustStockRequest{Delta: 0, Reason: "typo"}, suite.userID)

	suite.Require().Error(err)
	suite.Nil(item)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "AdjustStock")
}

func (suite *ItemServiceTestSuite) TestAdjustStock_Success() {
	ctx := context.Background()
	itemID := uuid.NewString()
	adjusted := &domain.Item{ItemID: itemID, StockQuantity: 25}

	suite.mockItemRepo.On("AdjustStock", ctx, itemID, int64(-5), suite.userID, mock.AnythingOfType("time.Time")).Return(adjusted, nil).Once()

	item, err := suite.service.AdjustStock(ctx, itemID, dto.AdjustStockRequest{Delta: -5, Reason: "breakage"}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(int64(25), item.StockQuantity)
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestDeleteItem_Success() {
	ctx := context.Background()
	itemID := uuid.NewString()

	suite.mockItemRepo.On("DeleteItem", ctx, itemID).Return(nil).Once()

	err := suite.service.DeleteItem(ctx, itemID, suite.userID)

	suite.Require().NoError(err)
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestDeleteItem_ReferencedByTransactions() {
	ctx := context.Background()
	itemID := uuid.NewString()

	suite.mockItemRepo.On("DeleteItem", ctx, itemID).Return(apperrors.ErrConflict).Once()

	err := suite.service.DeleteItem(ctx, itemID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func TestItemServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ItemServiceTestSuite))
}
