package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/PasalPOS/pasal_pos_app/internal/apperrors"
	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	portsrepo "github.com/PasalPOS/pasal_pos_app/internal/core/ports/repositories"
	"github.com/PasalPOS/pasal_pos_app/internal/models"
	"github.com/PasalPOS/pasal_pos_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxVendorRepository struct {
	BaseRepository
}

// newPgxVendorRepository creates a new repository for vendor data.
func newPgxVendorRepository(pool *pgxpool.Pool) portsrepo.VendorRepositoryFacade {
	return &PgxVendorRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VendorRepositoryFacade = (*PgxVendorRepository)(nil)

const vendorColumns = `vendor_id, name, vat_number, address, phone, email, payment_terms, created_at, created_by, last_updated_at, last_updated_by`

func scanVendorRow(row pgx.Row) (*models.Vendor, error) {
	var m models.Vendor
	err := row.Scan(
		&m.VendorID,
		&m.Name,
		&m.VatNumber,
		&m.Address,
		&m.Phone,
		&m.Email,
		&m.PaymentTerms,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveVendor inserts a new vendor.
func (r *PgxVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	m := mapping.ToModelVendor(vendor)

	query := `
		INSERT INTO vendors (` + vendorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.VendorID, m.Name, m.VatNumber, m.Address, m.Phone, m.Email, m.PaymentTerms,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: vendor with ID %s already exists", apperrors.ErrDuplicate, m.VendorID)
		}
		return fmt.Errorf("failed to save vendor %s: %w", m.VendorID, err)
	}
	return nil
}

// FindVendorByID retrieves a vendor by its ID.
func (r *PgxVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE vendor_id = $1;`

	m, err := scanVendorRow(r.Pool.QueryRow(ctx, query, vendorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vendor by ID %s: %w", vendorID, err)
	}

	d := mapping.ToDomainVendor(*m)
	return &d, nil
}

// ListVendors retrieves a paginated list of vendors ordered by name.
func (r *PgxVendorRepository) ListVendors(ctx context.Context, limit int, offset int) ([]domain.Vendor, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + vendorColumns + ` FROM vendors ORDER BY name LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendors: %w", err)
	}
	defer rows.Close()

	vendors := []domain.Vendor{}
	for rows.Next() {
		m, err := scanVendorRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor row: %w", err)
		}
		vendors = append(vendors, mapping.ToDomainVendor(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating vendor rows: %w", rows.Err())
	}

	return vendors, nil
}

// UpdateVendor updates an existing vendor's details.
func (r *PgxVendorRepository) UpdateVendor(ctx context.Context, vendor domain.Vendor) error {
	m := mapping.ToModelVendor(vendor)

	query := `
		UPDATE vendors
		SET name = $2, vat_number = $3, address = $4, phone = $5, email = $6,
			payment_terms = $7, last_updated_at = $8, last_updated_by = $9
		WHERE vendor_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.VendorID, m.Name, m.VatNumber, m.Address, m.Phone, m.Email, m.PaymentTerms,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update vendor %s: %w", m.VendorID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteVendor removes a vendor. The foreign key from purchase transactions
// blocks deleting a vendor with recorded bills.
func (r *PgxVendorRepository) DeleteVendor(ctx context.Context, vendorID string) error {
	query := `DELETE FROM vendors WHERE vendor_id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, vendorID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: vendor %s is referenced by recorded bills", apperrors.ErrConflict, vendorID)
		}
		return fmt.Errorf("failed to delete vendor %s: %w", vendorID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
