package directory

import "github.com/wyovotewatch/district-alerts-api/internal/models"

// Directory is the read-only ZIP/city to district-set mapping for one
// legislative session. It is built once at startup and never mutated, so
// tests can substitute fixture mappings.
type Directory struct {
	zips      map[string]models.DistrictSet
	cities    map[string]models.DistrictSet
	cityOrder []string
}

func New(
	zips map[string]models.DistrictSet,
	cities map[string]models.DistrictSet,
	cityOrder []string,
) *Directory {
	return &Directory{zips: zips, cities: cities, cityOrder: cityOrder}
}

// LookupByZip returns the district set for a ZIP code. A missing key is a
// valid miss, not an error.
func (d *Directory) LookupByZip(zip string) (models.DistrictSet, bool) {
	set, ok := d.zips[zip]
	return set, ok
}

// LookupByCity returns the district set for a lower-cased city name.
func (d *Directory) LookupByCity(city string) (models.DistrictSet, bool) {
	set, ok := d.cities[city]
	return set, ok
}

// CityNames returns the recognized city names in scan order.
func (d *Directory) CityNames() []string {
	return d.cityOrder
}
