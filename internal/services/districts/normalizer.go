package districts

import (
	"regexp"
	"strings"

	"github.com/wyovotewatch/district-alerts-api/internal/models"
)

var zipPattern = regexp.MustCompile(`\b\d{5}\b`)

// NormalizeAddress extracts a candidate ZIP and a recognized city token from
// free-text address input. The ZIP is the first standalone 5-digit run, with
// no validity check beyond shape. Cities are scanned in the given order and
// the first match wins. Pure and total: any string input yields a result.
func NormalizeAddress(address string, cities []string) models.NormalizedAddress {
	normalized := strings.ToLower(strings.TrimSpace(address))

	out := models.NormalizedAddress{Zip: zipPattern.FindString(normalized)}
	for _, city := range cities {
		if strings.Contains(normalized, city) {
			out.City = city
			break
		}
	}
	return out
}
