package districts

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/wyovotewatch/district-alerts-api/internal/models"
)

var (
	ErrInvalidRequest = errors.New("address or zip required")
	ErrInvalidRegion  = errors.New("input outside the Wyoming service area")
)

// All Wyoming ZIP codes start with 82.
var wyomingZipShape = regexp.MustCompile(`^82\d{3}$`)

const minAddressLen = 10

const (
	explainZipNotFound = "ZIP code not found in Wyoming legislative districts. " +
		"Please verify the ZIP code is correct."
	explainNothingFound = "Could not determine districts from this address. " +
		"Please include a Wyoming city name or ZIP code."
)

type directoryLookup interface {
	LookupByZip(zip string) (models.DistrictSet, bool)
	LookupByCity(city string) (models.DistrictSet, bool)
	CityNames() []string
}

// Service resolves lookup input into exact and possible district matches.
type Service struct {
	logger *log.Logger
	dir    directoryLookup
}

func NewService(logger *log.Logger, dir directoryLookup) *Service {
	return &Service{logger: logger, dir: dir}
}

// Resolve applies the precedence order: a directly supplied ZIP beats an
// address-extracted ZIP, which beats a city match. Exact and possible are
// never both non-empty for the same resolution.
func (s *Service) Resolve(_ context.Context, req models.LookupRequest) (models.ResolveResult, error) {
	res := models.ResolveResult{
		Exact:    []models.District{},
		Possible: []models.District{},
	}

	switch {
	case req.Zip != "":
		if !wyomingZipShape.MatchString(req.Zip) {
			return res, ErrInvalidRegion
		}
		if set, ok := s.dir.LookupByZip(req.Zip); ok {
			res.Exact = districtsOf(set, models.MatchExact)
			return res, nil
		}
		res.Explain = explainZipNotFound
		return res, nil

	case req.Address != "":
		if len(req.Address) <= minAddressLen ||
			!strings.Contains(strings.ToLower(req.Address), "wy") {
			return res, ErrInvalidRegion
		}

		parsed := NormalizeAddress(req.Address, s.dir.CityNames())
		s.logger.Printf("parsed address: city=%q zip=%q", parsed.City, parsed.Zip)

		if parsed.Zip != "" {
			if set, ok := s.dir.LookupByZip(parsed.Zip); ok {
				res.Exact = districtsOf(set, models.MatchExact)
				return res, nil
			}
		}
		if parsed.City != "" {
			if set, ok := s.dir.LookupByCity(parsed.City); ok {
				res.Possible = districtsOf(set, models.MatchPossible)
				res.Explain = fmt.Sprintf(
					"Based on the city %q. Include your full address with ZIP code for an exact match.",
					parsed.City)
				return res, nil
			}
		}
		res.Explain = explainNothingFound
		return res, nil

	default:
		return res, ErrInvalidRequest
	}
}

func districtsOf(set models.DistrictSet, matchType string) []models.District {
	out := make([]models.District, 0, len(set.House)+len(set.Senate))
	for _, code := range set.House {
		out = append(out, models.District{Chamber: models.ChamberHouse, Code: code, MatchType: matchType})
	}
	for _, code := range set.Senate {
		out = append(out, models.District{Chamber: models.ChamberSenate, Code: code, MatchType: matchType})
	}
	return out
}
