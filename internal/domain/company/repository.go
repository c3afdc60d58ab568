package company

import "context"

// CompanyRepository resolves geofence zones. Company and branch records are
// managed elsewhere; this side only ever reads them.
type CompanyRepository interface {
	// GetZone returns the company-level zone, or ErrCompanyNotFound.
	GetZone(ctx context.Context, companyID string) (GeoFenceZone, error)

	// GetBranchZone returns the zone of the named branch, or nil when the
	// branch does not exist under the company. Callers fall back to the
	// company zone in that case.
	GetBranchZone(ctx context.Context, companyID string, branchID string) (*GeoFenceZone, error)
}
