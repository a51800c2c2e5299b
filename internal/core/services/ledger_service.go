package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PasalPOS/pasal_pos_app/internal/apperrors"
	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	portsrepo "github.com/PasalPOS/pasal_pos_app/internal/core/ports/repositories"
	portssvc "github.com/PasalPOS/pasal_pos_app/internal/core/ports/services"
	"github.com/PasalPOS/pasal_pos_app/internal/dto"
	"github.com/PasalPOS/pasal_pos_app/internal/middleware"
	"github.com/PasalPOS/pasal_pos_app/internal/utils/taxation"
)

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrVendorNotFound   = errors.New("vendor not found")
)

// walkInCustomerName is recorded on invoices without a registered customer.
const walkInCustomerName = "Walk-in Customer"

// ledgerService is the transactional ledger engine. Recording an invoice or
// bill persists the document, moves stock and appends the VAT ledger entry
// as one unit of work.
type ledgerService struct {
	ledgerRepo         portsrepo.LedgerRepositoryFacade
	itemRepo           portsrepo.ItemRepositoryFacade
	customerRepo       portsrepo.CustomerRepositoryFacade
	vendorRepo         portsrepo.VendorRepositoryFacade
	allowNegativeStock bool
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, itemRepo portsrepo.ItemRepositoryFacade, customerRepo portsrepo.CustomerRepositoryFacade, vendorRepo portsrepo.VendorRepositoryFacade, allowNegativeStock bool) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo:         ledgerRepo,
		itemRepo:           itemRepo,
		customerRepo:       customerRepo,
		vendorRepo:         vendorRepo,
		allowNegativeStock: allowNegativeStock,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// verifyTotal rejects submitted monetary values that drift beyond the
// rounding tolerance from the server-side recomputation. A submitted zero is
// taken as "not provided" and replaced silently.
func verifyTotal(field string, submitted, computed decimal.Decimal) (decimal.Decimal, error) {
	if submitted.IsZero() {
		return computed, nil
	}
	if !taxation.WithinTolerance(submitted, computed) {
		return decimal.Zero, fmt.Errorf("%w: %s submitted as %s, computed %s",
			apperrors.ErrValidation, field, submitted.String(), computed.String())
	}
	return computed, nil
}

// fetchItems loads all referenced items, failing when any is missing.
func (s *ledgerService) fetchItems(ctx context.Context, itemIDs []string) (map[string]domain.Item, error) {
	itemsMap, err := s.itemRepo.FindItemsByIDs(ctx, uniqueStrings(itemIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch items: %w", err)
	}
	for _, id := range itemIDs {
		if _, found := itemsMap[id]; !found {
			return nil, fmt.Errorf("%w: ID %s", ErrItemNotFound, id)
		}
	}
	return itemsMap, nil
}

// RecordSale validates an invoice submission, recomputes every monetary
// total, and persists the invoice, stock decrements and output VAT entry
// atomically.
func (s *ledgerService) RecordSale(ctx context.Context, req dto.CreateSalesRequest, creatorUserID string) (*domain.SalesTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: at least one line item is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	saleDate := req.Transaction.SaleDate
	if saleDate.IsZero() {
		saleDate = now
	}

	itemIDs := make([]string, len(req.Items))
	for i, line := range req.Items {
		itemIDs[i] = line.ItemID
	}
	itemsMap, err := s.fetchItems(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	// Party snapshot. The invoice carries the customer's name and the VAT
	// entry its tax number as they are at this moment.
	customerName := req.Transaction.CustomerName
	partyVatNumber := ""
	if req.Transaction.CustomerID != nil {
		customer, err := s.customerRepo.FindCustomerByID(ctx, *req.Transaction.CustomerID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: ID %s", ErrCustomerNotFound, *req.Transaction.CustomerID)
			}
			return nil, fmt.Errorf("failed to fetch customer: %w", err)
		}
		customerName = customer.Name
		partyVatNumber = customer.VatNumber
	}
	if customerName == "" {
		customerName = walkInCustomerName
	}

	transactionID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	// Recompute every line and aggregate stock deltas. A repeated item on
	// two lines accumulates into one delta.
	domainItems := make([]domain.SalesTransactionItem, len(req.Items))
	stockDeltas := make(map[string]int64)
	subtotal := decimal.Zero
	for i, line := range req.Items {
		item := itemsMap[line.ItemID]

		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive for item %s", apperrors.ErrValidation, line.ItemID)
		}

		gross := line.UnitPrice.Mul(decimal.NewFromInt(line.Quantity))
		discountPercent, discountAmount := taxation.ResolveDiscount(gross, line.DiscountPercent, line.DiscountAmount)
		if discountAmount.GreaterThan(gross) {
			return nil, fmt.Errorf("%w: discount %s exceeds line amount %s for item %s", apperrors.ErrValidation, discountAmount.String(), gross.String(), line.ItemID)
		}
		lineTotal := taxation.SalesLineTotal(line.Quantity, line.UnitPrice, discountAmount)

		if _, err := verifyTotal("line total", line.TotalPrice, lineTotal); err != nil {
			return nil, err
		}

		domainItems[i] = domain.SalesTransactionItem{
			LineID:          uuid.NewString(),
			TransactionID:   transactionID,
			ItemID:          line.ItemID,
			ItemName:        item.Name,
			Quantity:        line.Quantity,
			UnitPrice:       taxation.RoundMoney(line.UnitPrice),
			DiscountPercent: discountPercent,
			DiscountAmount:  discountAmount,
			TotalPrice:      lineTotal,
		}
		stockDeltas[line.ItemID] -= line.Quantity
		subtotal = subtotal.Add(lineTotal)
	}
	subtotal = taxation.RoundMoney(subtotal)

	if _, err := verifyTotal("subtotal", req.Transaction.Subtotal, subtotal); err != nil {
		return nil, err
	}

	discountPercent, discountAmount := taxation.ResolveDiscount(subtotal, req.Transaction.DiscountPercent, req.Transaction.DiscountAmount)
	taxable := taxation.RoundMoney(subtotal.Sub(discountAmount))
	if taxable.IsNegative() {
		return nil, fmt.Errorf("%w: discount %s exceeds subtotal %s", apperrors.ErrValidation, discountAmount.String(), subtotal.String())
	}

	vatAmount := decimal.Zero
	if req.Transaction.VatEnabled {
		vatAmount = taxation.VatOn(taxable)
	}
	if _, err := verifyTotal("VAT amount", req.Transaction.VatAmount, vatAmount); err != nil {
		return nil, err
	}

	totalAmount := taxation.RoundMoney(taxable.Add(vatAmount))
	if _, err := verifyTotal("total amount", req.Transaction.TotalAmount, totalAmount); err != nil {
		return nil, err
	}

	paymentStatus := domain.PaymentStatus(req.Transaction.PaymentStatus)
	if paymentStatus == "" {
		paymentStatus = domain.PaymentPaid
	}
	paymentMethod := req.Transaction.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cash"
	}

	txn := domain.SalesTransaction{
		TransactionID:   transactionID,
		InvoiceNumber:   req.Transaction.InvoiceNumber,
		CustomerID:      req.Transaction.CustomerID,
		CustomerName:    customerName,
		SaleDate:        saleDate,
		Subtotal:        subtotal,
		DiscountPercent: discountPercent,
		DiscountAmount:  discountAmount,
		VatEnabled:      req.Transaction.VatEnabled,
		VatAmount:       vatAmount,
		TotalAmount:     totalAmount,
		PaymentMethod:   paymentMethod,
		PaymentStatus:   paymentStatus,
		AuditFields:     audit,
	}

	var vatEntry *domain.VatLedgerEntry
	if txn.VatEnabled && vatAmount.IsPositive() {
		vatEntry = &domain.VatLedgerEntry{
			EntryID:            uuid.NewString(),
			EntryDate:          saleDate,
			EntryType:          domain.VatSalesOutput,
			ReferenceNumber:    txn.InvoiceNumber,
			PartyName:          customerName,
			PartyVatNumber:     partyVatNumber,
			TaxableAmount:      taxable,
			VatAmount:          vatAmount,
			VatRate:            taxation.VatRate,
			Status:             domain.VatVerified,
			SalesTransactionID: &transactionID,
			CreatedAt:          now,
			CreatedBy:          creatorUserID,
		}
	}

	enforceStock := !s.allowNegativeStock
	if err := s.ledgerRepo.SaveSalesTransaction(ctx, txn, domainItems, stockDeltas, vatEntry, enforceStock); err != nil {
		logger.Error("Failed to record sale",
			slog.String("error", err.Error()),
			slog.String("invoice_number", txn.InvoiceNumber))
		return nil, err
	}

	logger.Info("Sale recorded",
		slog.String("transaction_id", transactionID),
		slog.String("invoice_number", txn.InvoiceNumber),
		slog.String("total_amount", totalAmount.String()),
		slog.Bool("vat_entry", vatEntry != nil))

	txn.Items = domainItems
	return &txn, nil
}

// RecordPurchase validates a bill submission, recomputes every monetary
// total, and persists the bill, stock increments and input VAT entry
// atomically.
func (s *ledgerService) RecordPurchase(ctx context.Context, req dto.CreatePurchaseRequest, creatorUserID string) (*domain.PurchaseTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: at least one line item is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	purchaseDate := req.Transaction.PurchaseDate
	if purchaseDate.IsZero() {
		purchaseDate = now
	}

	itemIDs := make([]string, len(req.Items))
	for i, line := range req.Items {
		itemIDs[i] = line.ItemID
	}
	itemsMap, err := s.fetchItems(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	vendorName := req.Transaction.VendorName
	partyVatNumber := ""
	if req.Transaction.VendorID != nil {
		vendor, err := s.vendorRepo.FindVendorByID(ctx, *req.Transaction.VendorID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: ID %s", ErrVendorNotFound, *req.Transaction.VendorID)
			}
			return nil, fmt.Errorf("failed to fetch vendor: %w", err)
		}
		vendorName = vendor.Name
		partyVatNumber = vendor.VatNumber
	}
	if vendorName == "" {
		return nil, fmt.Errorf("%w: vendor name or vendor ID is required", apperrors.ErrValidation)
	}

	transactionID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	domainItems := make([]domain.PurchaseTransactionItem, len(req.Items))
	stockDeltas := make(map[string]int64)
	subtotal := decimal.Zero
	lineExciseTotal := decimal.Zero
	for i, line := range req.Items {
		item := itemsMap[line.ItemID]

		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive for item %s", apperrors.ErrValidation, line.ItemID)
		}
		if line.ExciseAmount.IsNegative() {
			return nil, fmt.Errorf("%w: excise amount must not be negative", apperrors.ErrValidation)
		}

		gross := line.UnitPrice.Mul(decimal.NewFromInt(line.Quantity))
		discountPercent, discountAmount := taxation.ResolveDiscount(gross, line.DiscountPercent, line.DiscountAmount)
		if discountAmount.GreaterThan(gross) {
			return nil, fmt.Errorf("%w: discount %s exceeds line amount %s for item %s", apperrors.ErrValidation, discountAmount.String(), gross.String(), line.ItemID)
		}
		exciseAmount := taxation.RoundMoney(line.ExciseAmount)
		lineTotal := taxation.PurchaseLineTotal(line.Quantity, line.UnitPrice, discountAmount, exciseAmount)

		if _, err := verifyTotal("line total", line.TotalPrice, lineTotal); err != nil {
			return nil, err
		}

		domainItems[i] = domain.PurchaseTransactionItem{
			LineID:          uuid.NewString(),
			TransactionID:   transactionID,
			ItemID:          line.ItemID,
			ItemName:        item.Name,
			Quantity:        line.Quantity,
			UnitPrice:       taxation.RoundMoney(line.UnitPrice),
			DiscountPercent: discountPercent,
			DiscountAmount:  discountAmount,
			ExciseAmount:    exciseAmount,
			TotalPrice:      lineTotal,
		}
		stockDeltas[line.ItemID] += line.Quantity
		// Subtotal is goods value before excise; excise is carried separately
		// on the header.
		subtotal = subtotal.Add(lineTotal.Sub(exciseAmount))
		lineExciseTotal = lineExciseTotal.Add(exciseAmount)
	}
	subtotal = taxation.RoundMoney(subtotal)

	if _, err := verifyTotal("subtotal", req.Transaction.Subtotal, subtotal); err != nil {
		return nil, err
	}

	exciseAmount := taxation.RoundMoney(lineExciseTotal)
	if req.Transaction.ExciseAmount.IsPositive() {
		exciseAmount, err = verifyTotal("excise amount", req.Transaction.ExciseAmount, exciseAmount)
		if err != nil {
			return nil, err
		}
	}

	discountPercent, discountAmount := taxation.ResolveDiscount(subtotal, req.Transaction.DiscountPercent, req.Transaction.DiscountAmount)
	netGoods := taxation.RoundMoney(subtotal.Sub(discountAmount))
	if netGoods.IsNegative() {
		return nil, fmt.Errorf("%w: discount %s exceeds subtotal %s", apperrors.ErrValidation, discountAmount.String(), subtotal.String())
	}

	// Excise duty is part of the VAT taxable base on purchases.
	taxable := taxation.RoundMoney(netGoods.Add(exciseAmount))

	vatAmount := decimal.Zero
	if req.Transaction.VatEnabled {
		vatAmount = taxation.VatOn(taxable)
	}
	if _, err := verifyTotal("VAT amount", req.Transaction.VatAmount, vatAmount); err != nil {
		return nil, err
	}

	totalAmount := taxation.RoundMoney(netGoods.Add(exciseAmount).Add(vatAmount))
	if _, err := verifyTotal("total amount", req.Transaction.TotalAmount, totalAmount); err != nil {
		return nil, err
	}

	paymentStatus := domain.PaymentStatus(req.Transaction.PaymentStatus)
	if paymentStatus == "" {
		paymentStatus = domain.PaymentPending
	}

	txn := domain.PurchaseTransaction{
		TransactionID:             transactionID,
		BillNumber:                req.Transaction.BillNumber,
		VendorID:                  req.Transaction.VendorID,
		VendorName:                vendorName,
		PurchaseDate:              purchaseDate,
		Subtotal:                  subtotal,
		DiscountPercent:           discountPercent,
		DiscountAmount:            discountAmount,
		ExciseAmount:              exciseAmount,
		VatEnabled:                req.Transaction.VatEnabled,
		VatAmount:                 vatAmount,
		TotalAmount:               totalAmount,
		PaymentTerms:              req.Transaction.PaymentTerms,
		PaymentStatus:             paymentStatus,
		IncludeExciseInAccounting: req.Transaction.IncludeExciseInAccounting,
		AuditFields:               audit,
	}

	var vatEntry *domain.VatLedgerEntry
	if txn.VatEnabled && vatAmount.IsPositive() {
		vatEntry = &domain.VatLedgerEntry{
			EntryID:               uuid.NewString(),
			EntryDate:             purchaseDate,
			EntryType:             domain.VatPurchaseInput,
			ReferenceNumber:       txn.BillNumber,
			PartyName:             vendorName,
			PartyVatNumber:        partyVatNumber,
			TaxableAmount:         taxable,
			VatAmount:             vatAmount,
			VatRate:               taxation.VatRate,
			Status:                domain.VatVerified,
			PurchaseTransactionID: &transactionID,
			CreatedAt:             now,
			CreatedBy:             creatorUserID,
		}
	}

	if err := s.ledgerRepo.SavePurchaseTransaction(ctx, txn, domainItems, stockDeltas, vatEntry); err != nil {
		logger.Error("Failed to record purchase",
			slog.String("error", err.Error()),
			slog.String("bill_number", txn.BillNumber))
		return nil, err
	}

	logger.Info("Purchase recorded",
		slog.String("transaction_id", transactionID),
		slog.String("bill_number", txn.BillNumber),
		slog.String("total_amount", totalAmount.String()),
		slog.Bool("vat_entry", vatEntry != nil))

	txn.Items = domainItems
	return &txn, nil
}

// GetSalesTransactionByID retrieves an invoice with its line items.
func (s *ledgerService) GetSalesTransactionByID(ctx context.Context, transactionID string) (*domain.SalesTransaction, error) {
	txn, err := s.ledgerRepo.FindSalesTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	items, err := s.ledgerRepo.FindSalesItemsByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	txn.Items = items
	return txn, nil
}

// ListSalesTransactions retrieves a paginated list of invoice headers.
func (s *ledgerService) ListSalesTransactions(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error) {
	txns, nextToken, err := s.ledgerRepo.ListSalesTransactions(ctx, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.SalesTransactionResponse, len(txns))
	for i := range txns {
		responses[i] = dto.ToSalesTransactionResponse(&txns[i])
	}
	return &dto.ListSalesResponse{Transactions: responses, NextToken: nextToken}, nil
}

// GetPurchaseTransactionByID retrieves a bill with its line items.
func (s *ledgerService) GetPurchaseTransactionByID(ctx context.Context, transactionID string) (*domain.PurchaseTransaction, error) {
	txn, err := s.ledgerRepo.FindPurchaseTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	items, err := s.ledgerRepo.FindPurchaseItemsByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	txn.Items = items
	return txn, nil
}

// ListPurchaseTransactions retrieves a paginated list of bill headers.
func (s *ledgerService) ListPurchaseTransactions(ctx context.Context, params dto.ListPurchasesParams) (*dto.ListPurchasesResponse, error) {
	txns, nextToken, err := s.ledgerRepo.ListPurchaseTransactions(ctx, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PurchaseTransactionResponse, len(txns))
	for i := range txns {
		responses[i] = dto.ToPurchaseTransactionResponse(&txns[i])
	}
	return &dto.ListPurchasesResponse{Transactions: responses, NextToken: nextToken}, nil
}

// uniqueStrings removes duplicates while preserving first-seen order.
func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
