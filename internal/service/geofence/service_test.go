package geofence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffsync/attendance-backend-go/internal/domain/company"
)

type fakeCompanyRepo struct {
	zones    map[string]company.GeoFenceZone            // by company id
	branches map[string]map[string]company.GeoFenceZone // company id -> branch id -> zone
}

func (f *fakeCompanyRepo) GetZone(_ context.Context, companyID string) (company.GeoFenceZone, error) {
	zone, ok := f.zones[companyID]
	if !ok {
		return company.GeoFenceZone{}, company.ErrCompanyNotFound
	}
	return zone, nil
}

func (f *fakeCompanyRepo) GetBranchZone(_ context.Context, companyID string, branchID string) (*company.GeoFenceZone, error) {
	zone, ok := f.branches[companyID][branchID]
	if !ok {
		return nil, nil
	}
	return &zone, nil
}

func newTestService() GeofenceService {
	return NewGeofenceService(&fakeCompanyRepo{
		zones: map[string]company.GeoFenceZone{
			// company HQ in San Francisco, 1km radius
			"companyA": {Latitude: 37.7749, Longitude: -122.4194, RadiusMeters: 1000},
		},
		branches: map[string]map[string]company.GeoFenceZone{
			"companyA": {
				// branch on the equator, 500m radius
				"branch1": {Latitude: 0, Longitude: 0, RadiusMeters: 500},
			},
		},
	})
}

func TestCheck_InsideCompanyZone(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	got, err := svc.Check(context.Background(), "companyA", "", 37.7749, -122.4194)

	require.NoError(t, err)
	assert.True(t, got.WithinRadius)
}

func TestCheck_OutsideCompanyZone(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	// New York is well outside a 1km fence around San Francisco
	got, err := svc.Check(context.Background(), "companyA", "", 40.7128, -74.0060)

	require.NoError(t, err)
	assert.False(t, got.WithinRadius)
}

func TestCheck_BranchZoneOverrides(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	// at the branch's center, far from the company HQ
	got, err := svc.Check(context.Background(), "companyA", "branch1", 0, 0)

	require.NoError(t, err)
	assert.True(t, got.WithinRadius)
}

func TestCheck_UnknownBranchFallsBackToCompany(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	got, err := svc.Check(context.Background(), "companyA", "no-such-branch", 37.7749, -122.4194)

	require.NoError(t, err)
	assert.True(t, got.WithinRadius)
}

func TestCheck_UnknownCompany(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	_, err := svc.Check(context.Background(), "ghost", "", 0, 0)
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)
}
