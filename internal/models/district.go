package models

const (
	ChamberHouse  = "house"
	ChamberSenate = "senate"

	MatchExact    = "exact"
	MatchPossible = "possible"
)

// District is a single legislative district candidate returned by a lookup.
type District struct {
	Chamber   string `json:"chamber"`
	Code      string `json:"district"`
	MatchType string `json:"type"`
}

// DistrictSet is the house/senate code pair a locality maps to.
type DistrictSet struct {
	House  []string
	Senate []string
}

// LookupRequest carries the lookup form input. Exactly one of the two
// fields is expected to be meaningful.
type LookupRequest struct {
	Address string `json:"address"`
	Zip     string `json:"zip"`
}

// NormalizedAddress is the output of address parsing. Either field may be
// empty when nothing was recognized.
type NormalizedAddress struct {
	City string
	Zip  string
}

// ResolveResult holds exact and possible matches. The two slices are never
// both non-empty for a single resolution.
type ResolveResult struct {
	Exact    []District `json:"exact"`
	Possible []District `json:"possible"`
	Explain  string     `json:"explain,omitempty"`
}
