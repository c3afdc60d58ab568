package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffsync/attendance-backend-go/internal/domain/company"
	"github.com/staffsync/attendance-backend-go/internal/pkg/database"
)

type companyRepository struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepository{db: db}
}

// GetZone implements company.CompanyRepository.
func (r *companyRepository) GetZone(ctx context.Context, companyID string) (company.GeoFenceZone, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT latitude, longitude, radius_meters
		FROM companies
		WHERE id = $1
	`

	var zone company.GeoFenceZone
	err := q.QueryRow(ctx, query, companyID).Scan(&zone.Latitude, &zone.Longitude, &zone.RadiusMeters)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.GeoFenceZone{}, company.ErrCompanyNotFound
		}
		return company.GeoFenceZone{}, fmt.Errorf("failed to get company zone: %w", database.ClassifyError(err))
	}

	return zone, nil
}

// GetBranchZone implements company.CompanyRepository. A missing branch is not
// an error: callers fall back to the company zone.
func (r *companyRepository) GetBranchZone(ctx context.Context, companyID string, branchID string) (*company.GeoFenceZone, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT latitude, longitude, radius_meters
		FROM branches
		WHERE id = $1 AND company_id = $2
	`

	var zone company.GeoFenceZone
	err := q.QueryRow(ctx, query, branchID, companyID).Scan(&zone.Latitude, &zone.Longitude, &zone.RadiusMeters)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get branch zone: %w", database.ClassifyError(err))
	}

	return &zone, nil
}
