package directory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyovotewatch/district-alerts-api/internal/directory"
)

func TestLookupByZip(t *testing.T) {
	dir := directory.Default()

	set, ok := dir.LookupByZip("82001")
	require.True(t, ok)
	assert.Equal(t, []string{"07"}, set.House)
	assert.Equal(t, []string{"04"}, set.Senate)

	_, ok = dir.LookupByZip("82999")
	assert.False(t, ok)
}

func TestLookupByCity(t *testing.T) {
	dir := directory.Default()

	set, ok := dir.LookupByCity("cheyenne")
	require.True(t, ok)
	assert.NotEmpty(t, set.House)
	assert.NotEmpty(t, set.Senate)

	_, ok = dir.LookupByCity("denver")
	assert.False(t, ok)
}

func TestCityNamesOrdering(t *testing.T) {
	dir := directory.Default()
	names := dir.CityNames()

	require.NotEmpty(t, names)
	// Larger cities scan first so "rock springs" wins over "springs"-like noise.
	assert.Equal(t, "cheyenne", names[0])
	assert.Equal(t, "casper", names[1])

	for _, name := range names {
		_, ok := dir.LookupByCity(name)
		assert.True(t, ok, "city %q listed but not resolvable", name)
	}
}
