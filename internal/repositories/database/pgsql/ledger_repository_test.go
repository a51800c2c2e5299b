package pgsql_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/PasalPOS/pasal_pos_app/internal/apperrors"
	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	portsrepo "github.com/PasalPOS/pasal_pos_app/internal/core/ports/repositories"
	"github.com/PasalPOS/pasal_pos_app/internal/repositories/database/pgsql"
	"github.com/PasalPOS/pasal_pos_app/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
)

// These tests exercise the ledger engine against a real PostgreSQL instance.
// Set PGSQL_TEST_URL to a disposable database to run them; they are skipped
// otherwise so the ordinary unit run stays database-free.
type LedgerRepositoryIntegrationSuite struct {
	suite.Suite
	ctx    context.Context
	pool   *pgxpool.Pool
	repos  portsrepo.RepositoryProvider
	userID string
}

func (suite *LedgerRepositoryIntegrationSuite) SetupSuite() {
	databaseURL := os.Getenv("PGSQL_TEST_URL")
	if databaseURL == "" {
		suite.T().Skip("PGSQL_TEST_URL not set; skipping database-backed tests")
	}

	suite.ctx = context.Background()
	suite.userID = uuid.NewString()

	migrationDB, err := sql.Open("pgx", databaseURL)
	suite.Require().NoError(err)
	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	suite.Require().NoError(err)
	m, err := migrate.NewWithDatabaseInstance("file://../../../../migrations", "postgres", driver)
	suite.Require().NoError(err)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		suite.FailNow("Failed to run migrations", err.Error())
	}
	suite.Require().NoError(migrationDB.Close())

	pool, err := database.NewPgxPool(suite.ctx, databaseURL)
	suite.Require().NoError(err)
	suite.pool = pool
	suite.repos = pgsql.NewRepositoryProvider(pool)
}

func (suite *LedgerRepositoryIntegrationSuite) TearDownSuite() {
	database.ClosePgxPool(suite.pool)
}

// newTestItem seeds a catalog item with the given stock and returns it.
func (suite *LedgerRepositoryIntegrationSuite) newTestItem(stock int64) domain.Item {
	now := time.Now().UTC()
	item := domain.Item{
		ItemID:          uuid.NewString(),
		Name:            "Test Item " + uuid.NewString()[:8],
		Category:        "Grocery",
		CostPrice:       decimal.NewFromInt(100),
		SellingPrice:    decimal.NewFromInt(150),
		StockQuantity:   stock,
		OpeningQuantity: stock,
		MinStockLevel:   1,
		Unit:            "pcs",
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     suite.userID,
			LastUpdatedAt: now,
			LastUpdatedBy: suite.userID,
		},
	}
	suite.Require().NoError(suite.repos.ItemRepo.SaveItem(suite.ctx, item))
	return item
}

// newSalesTransaction builds an invoice header for one line of quantity qty.
func (suite *LedgerRepositoryIntegrationSuite) newSalesTransaction(invoiceNumber string, saleDate time.Time, total decimal.Decimal) domain.SalesTransaction {
	now := time.Now().UTC()
	return domain.SalesTransaction{
		TransactionID: uuid.NewString(),
		InvoiceNumber: invoiceNumber,
		CustomerName:  "Walk-in Customer",
		SaleDate:      saleDate,
		Subtotal:      total,
		VatEnabled:    false,
		TotalAmount:   total,
		PaymentMethod: "cash",
		PaymentStatus: domain.PaymentPaid,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     suite.userID,
			LastUpdatedAt: now,
			LastUpdatedBy: suite.userID,
		},
	}
}

func (suite *LedgerRepositoryIntegrationSuite) newSalesLine(txn domain.SalesTransaction, item domain.Item, qty int64) domain.SalesTransactionItem {
	total := item.SellingPrice.Mul(decimal.NewFromInt(qty))
	return domain.SalesTransactionItem{
		LineID:        uuid.NewString(),
		TransactionID: txn.TransactionID,
		ItemID:        item.ItemID,
		ItemName:      item.Name,
		Quantity:      qty,
		UnitPrice:     item.SellingPrice,
		TotalPrice:    total,
	}
}

func (suite *LedgerRepositoryIntegrationSuite) TestConcurrentSales_OversellConverges() {
	item := suite.newTestItem(10)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			txn := suite.newSalesTransaction(fmt.Sprintf("INV-CONC-%s-%d", item.ItemID[:8], i), time.Now().UTC(), decimal.NewFromInt(900))
			lines := []domain.SalesTransactionItem{suite.newSalesLine(txn, item, 6)}
			deltas := map[string]int64{item.ItemID: -6}
			errs[i] = suite.repos.LedgerRepo.SaveSalesTransaction(suite.ctx, txn, lines, deltas, nil, false)
		}(i)
	}
	wg.Wait()

	suite.NoError(errs[0])
	suite.NoError(errs[1])

	got, err := suite.repos.ItemRepo.FindItemByID(suite.ctx, item.ItemID)
	suite.Require().NoError(err)
	suite.Equal(int64(-2), got.StockQuantity, "both oversells commit and the deltas accumulate")
}

func (suite *LedgerRepositoryIntegrationSuite) TestSaveSalesTransaction_RollsBackOnLineFailure() {
	item := suite.newTestItem(10)

	txn := suite.newSalesTransaction("INV-ROLLBACK-"+item.ItemID[:8], time.Now().UTC(), decimal.NewFromInt(450))
	badLine := suite.newSalesLine(txn, item, 2)
	badLine.ItemID = uuid.NewString() // violates the item foreign key
	lines := []domain.SalesTransactionItem{
		suite.newSalesLine(txn, item, 3),
		badLine,
	}
	deltas := map[string]int64{item.ItemID: -3}

	err := suite.repos.LedgerRepo.SaveSalesTransaction(suite.ctx, txn, lines, deltas, nil, false)
	suite.Require().Error(err)

	got, err := suite.repos.ItemRepo.FindItemByID(suite.ctx, item.ItemID)
	suite.Require().NoError(err)
	suite.Equal(int64(10), got.StockQuantity, "stock delta rolled back with the failed transaction")

	_, err = suite.repos.LedgerRepo.FindSalesTransactionByID(suite.ctx, txn.TransactionID)
	suite.ErrorIs(err, apperrors.ErrNotFound, "no orphan header survives the rollback")
}

func (suite *LedgerRepositoryIntegrationSuite) TestSaveSalesTransaction_DuplicateInvoiceNumber() {
	item := suite.newTestItem(20)
	invoiceNumber := "INV-DUP-" + item.ItemID[:8]

	first := suite.newSalesTransaction(invoiceNumber, time.Now().UTC(), decimal.NewFromInt(150))
	err := suite.repos.LedgerRepo.SaveSalesTransaction(suite.ctx, first,
		[]domain.SalesTransactionItem{suite.newSalesLine(first, item, 1)},
		map[string]int64{item.ItemID: -1}, nil, false)
	suite.Require().NoError(err)

	second := suite.newSalesTransaction(invoiceNumber, time.Now().UTC(), decimal.NewFromInt(150))
	err = suite.repos.LedgerRepo.SaveSalesTransaction(suite.ctx, second,
		[]domain.SalesTransactionItem{suite.newSalesLine(second, item, 1)},
		map[string]int64{item.ItemID: -1}, nil, false)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	got, err := suite.repos.ItemRepo.FindItemByID(suite.ctx, item.ItemID)
	suite.Require().NoError(err)
	suite.Equal(int64(19), got.StockQuantity, "the rejected duplicate leaves no stock drift")
}

func (suite *LedgerRepositoryIntegrationSuite) TestSavePurchaseTransaction_RepeatedBillNumberAccepted() {
	item := suite.newTestItem(0)
	billNumber := "BILL-REPEAT-" + item.ItemID[:8]

	for i := 0; i < 2; i++ {
		now := time.Now().UTC()
		txn := domain.PurchaseTransaction{
			TransactionID: uuid.NewString(),
			BillNumber:    billNumber,
			VendorName:    "Chaudhary Distributors",
			PurchaseDate:  now,
			Subtotal:      decimal.NewFromInt(1000),
			VatEnabled:    false,
			TotalAmount:   decimal.NewFromInt(1000),
			PaymentStatus: domain.PaymentPending,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     suite.userID,
				LastUpdatedAt: now,
				LastUpdatedBy: suite.userID,
			},
		}
		lines := []domain.PurchaseTransactionItem{{
			LineID:        uuid.NewString(),
			TransactionID: txn.TransactionID,
			ItemID:        item.ItemID,
			ItemName:      item.Name,
			Quantity:      10,
			UnitPrice:     decimal.NewFromInt(100),
			TotalPrice:    decimal.NewFromInt(1000),
		}}

		err := suite.repos.LedgerRepo.SavePurchaseTransaction(suite.ctx, txn, lines, map[string]int64{item.ItemID: 10}, nil)
		suite.Require().NoError(err, "vendor bill numbers are not unique; repeat %d must be accepted", i)
	}

	got, err := suite.repos.ItemRepo.FindItemByID(suite.ctx, item.ItemID)
	suite.Require().NoError(err)
	suite.Equal(int64(20), got.StockQuantity)
}

func (suite *LedgerRepositoryIntegrationSuite) TestGetSalesTotalBetween_FiltersOnSaleDate() {
	item := suite.newTestItem(50)

	// Document dates far in the past so concurrent suite data cannot land in
	// the window. Both rows get created_at = now.
	windowStart := time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)
	windowEnd := windowStart.Add(24 * time.Hour)

	inWindow := suite.newSalesTransaction("INV-WIN-"+item.ItemID[:8], windowStart.Add(10*time.Hour), decimal.NewFromInt(300))
	err := suite.repos.LedgerRepo.SaveSalesTransaction(suite.ctx, inWindow,
		[]domain.SalesTransactionItem{suite.newSalesLine(inWindow, item, 2)},
		map[string]int64{item.ItemID: -2}, nil, false)
	suite.Require().NoError(err)

	outOfWindow := suite.newSalesTransaction("INV-OUT-"+item.ItemID[:8], windowStart.Add(-10*time.Hour), decimal.NewFromInt(150))
	err = suite.repos.LedgerRepo.SaveSalesTransaction(suite.ctx, outOfWindow,
		[]domain.SalesTransactionItem{suite.newSalesLine(outOfWindow, item, 1)},
		map[string]int64{item.ItemID: -1}, nil, false)
	suite.Require().NoError(err)

	total, err := suite.repos.ReportingRepo.GetSalesTotalBetween(suite.ctx, windowStart, windowEnd)
	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(300).Equal(total),
		"the total follows the document date, not the insertion time; got %s", total.String())
}

func TestLedgerRepositoryIntegration(t *testing.T) {
	suite.Run(t, new(LedgerRepositoryIntegrationSuite))
}
