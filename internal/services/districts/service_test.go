package districts_test

import (
	"context"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyovotewatch/district-alerts-api/internal/directory"
	"github.com/wyovotewatch/district-alerts-api/internal/models"
	"github.com/wyovotewatch/district-alerts-api/internal/services/districts"
)

func newService() *districts.Service {
	return districts.NewService(log.New(log.Writer(), "test: ", 0), directory.Default())
}

func TestResolve_DirectZipExact(t *testing.T) {
	svc := newService()

	res, err := svc.Resolve(context.Background(), models.LookupRequest{Zip: "82001"})
	require.NoError(t, err)

	assert.Equal(t, []models.District{
		{Chamber: models.ChamberHouse, Code: "07", MatchType: models.MatchExact},
		{Chamber: models.ChamberSenate, Code: "04", MatchType: models.MatchExact},
	}, res.Exact)
	assert.Empty(t, res.Possible)
	assert.Empty(t, res.Explain)
}

func TestResolve_ZipShapeRejected(t *testing.T) {
	svc := newService()

	for _, zip := range []string{"12345", "8200", "820011", "99999"} {
		_, err := svc.Resolve(context.Background(), models.LookupRequest{Zip: zip})
		assert.ErrorIs(t, err, districts.ErrInvalidRegion, "zip %q", zip)
	}
}

func TestResolve_ZipUnknown(t *testing.T) {
	svc := newService()

	res, err := svc.Resolve(context.Background(), models.LookupRequest{Zip: "82999"})
	require.NoError(t, err)

	assert.Empty(t, res.Exact)
	assert.Empty(t, res.Possible)
	assert.Contains(t, res.Explain, "ZIP code not found")
}

func TestResolve_AddressWithZipBeatsCity(t *testing.T) {
	svc := newService()

	res, err := svc.Resolve(context.Background(),
		models.LookupRequest{Address: "123 Main St, Cheyenne, WY 82001"})
	require.NoError(t, err)

	require.NotEmpty(t, res.Exact)
	assert.Equal(t, "07", res.Exact[0].Code)
	assert.Empty(t, res.Possible)
}

func TestResolve_AddressCityOnlyIsPossible(t *testing.T) {
	svc := newService()

	res, err := svc.Resolve(context.Background(),
		models.LookupRequest{Address: "500 Center St, Casper, WY"})
	require.NoError(t, err)

	assert.Empty(t, res.Exact)
	require.NotEmpty(t, res.Possible)
	for _, d := range res.Possible {
		assert.Equal(t, models.MatchPossible, d.MatchType)
	}
	assert.Contains(t, res.Explain, "casper")
}

func TestResolve_AddressUnknownZipFallsBackToCity(t *testing.T) {
	svc := newService()

	// 82999 passes the shape check but is not in the directory, so the city
	// still produces possible matches.
	res, err := svc.Resolve(context.Background(),
		models.LookupRequest{Address: "1 Pine St, Sheridan, WY 82999"})
	require.NoError(t, err)

	assert.Empty(t, res.Exact)
	assert.NotEmpty(t, res.Possible)
}

func TestResolve_AddressNothingRecognized(t *testing.T) {
	svc := newService()

	res, err := svc.Resolve(context.Background(),
		models.LookupRequest{Address: "42 Mystery Road, Wyobraska WY"})
	require.NoError(t, err)

	assert.Empty(t, res.Exact)
	assert.Empty(t, res.Possible)
	assert.Contains(t, res.Explain, "Could not determine districts")
}

func TestResolve_AddressPreconditions(t *testing.T) {
	svc := newService()

	tests := []struct {
		name    string
		address string
	}{
		{"too short", "Cheyenne"},
		{"no wyoming marker", "123 Main St, Denver, Colorado"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Resolve(context.Background(), models.LookupRequest{Address: tt.address})
			assert.ErrorIs(t, err, districts.ErrInvalidRegion)
		})
	}
}

func TestResolve_EmptyRequest(t *testing.T) {
	svc := newService()

	_, err := svc.Resolve(context.Background(), models.LookupRequest{})
	assert.ErrorIs(t, err, districts.ErrInvalidRequest)
}

func TestResolve_ExactAndPossibleNeverBoth(t *testing.T) {
	svc := newService()

	inputs := []models.LookupRequest{
		{Zip: "82001"},
		{Zip: "82999"},
		{Address: "123 Main St, Cheyenne, WY 82001"},
		{Address: "500 Center St, Casper, WY"},
		{Address: "42 Mystery Road, Wyobraska WY"},
	}
	for _, req := range inputs {
		res, err := svc.Resolve(context.Background(), req)
		require.NoError(t, err)
		assert.False(t, len(res.Exact) > 0 && len(res.Possible) > 0,
			"exact and possible both populated for %+v", req)
	}
}
