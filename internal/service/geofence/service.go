package geofence

import (
	"context"
	"fmt"

	"github.com/staffsync/attendance-backend-go/internal/domain/company"
	"github.com/staffsync/attendance-backend-go/internal/pkg/geo"
)

type CheckResult struct {
	WithinRadius bool `json:"within_radius"`
}

// GeofenceService answers whether a user may check in from where they are.
// The check is advisory: clients call it before submitting a check-in, the
// attendance state machine does not re-enforce it.
type GeofenceService interface {
	Check(ctx context.Context, companyID string, branchID string, userLat float64, userLon float64) (CheckResult, error)
}

type GeofenceServiceImpl struct {
	company.CompanyRepository
}

func NewGeofenceService(companyRepo company.CompanyRepository) GeofenceService {
	return &GeofenceServiceImpl{CompanyRepository: companyRepo}
}

// Check implements GeofenceService. When branchID names a branch of the
// company that branch's zone applies; an unknown or empty branch falls back
// to the company-level zone, which every company is guaranteed to have.
func (s *GeofenceServiceImpl) Check(ctx context.Context, companyID string, branchID string, userLat float64, userLon float64) (CheckResult, error) {
	zone, err := s.CompanyRepository.GetZone(ctx, companyID)
	if err != nil {
		return CheckResult{}, err
	}

	if branchID != "" {
		branchZone, err := s.CompanyRepository.GetBranchZone(ctx, companyID, branchID)
		if err != nil {
			return CheckResult{}, fmt.Errorf("failed to resolve branch zone: %w", err)
		}
		if branchZone != nil {
			zone = *branchZone
		}
	}

	within := geo.WithinRadius(userLat, userLon, zone.Latitude, zone.Longitude, zone.RadiusMeters)
	return CheckResult{WithinRadius: within}, nil
}
