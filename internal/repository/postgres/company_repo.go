package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

type companyRepo struct {
	db *sqlx.DB
}

// NewCompanyRepo creates a new PostgreSQL-backed CompanyRepository.
func NewCompanyRepo(db *sqlx.DB) port.CompanyRepository {
	return &companyRepo{db: db}
}

// Get returns the singleton company settings row. A missing row means the
// system was never configured, which is fatal for invoice creation.
func (r *companyRepo) Get(ctx context.Context) (*domain.CompanySettings, error) {
	var settings domain.CompanySettings
	err := r.db.GetContext(ctx, &settings,
		`SELECT * FROM company_settings ORDER BY id LIMIT 1`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCompanyNotConfigured
		}
		return nil, fmt.Errorf("companyRepo.Get: %w", err)
	}
	return &settings, nil
}

func (r *companyRepo) Update(ctx context.Context, settings *domain.CompanySettings) error {
	settings.ID = 1
	settings.UpdatedAt = time.Now().UTC()

	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO company_settings (id, name, gstin, pan, address, state,
			bank_name, bank_account, bank_ifsc, updated_at)
		 VALUES (:id, :name, :gstin, :pan, :address, :state,
			:bank_name, :bank_account, :bank_ifsc, :updated_at)
		 ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, gstin = EXCLUDED.gstin, pan = EXCLUDED.pan,
			address = EXCLUDED.address, state = EXCLUDED.state,
			bank_name = EXCLUDED.bank_name, bank_account = EXCLUDED.bank_account,
			bank_ifsc = EXCLUDED.bank_ifsc, updated_at = EXCLUDED.updated_at`,
		settings)
	if err != nil {
		return fmt.Errorf("companyRepo.Update: %w", err)
	}
	return nil
}
