package directory

import "github.com/wyovotewatch/district-alerts-api/internal/models"

// Default returns the Wyoming directory for the active session. The tables
// are a coarse city/ZIP stand-in for real geocoding; swap the Directory for
// a polygon-intersection service without touching the resolver.
func Default() *Directory {
	return New(wyomingZips, wyomingCities, wyomingCityOrder)
}

var wyomingZips = map[string]models.DistrictSet{
	"82001": {House: []string{"07"}, Senate: []string{"04"}}, // Cheyenne
	"82002": {House: []string{"08"}, Senate: []string{"04"}}, // Cheyenne
	"82003": {House: []string{"09"}, Senate: []string{"05"}}, // Cheyenne
	"82004": {House: []string{"06"}, Senate: []string{"03"}}, // Cheyenne
	"82005": {House: []string{"05"}, Senate: []string{"03"}}, // Cheyenne
	"82006": {House: []string{"04"}, Senate: []string{"02"}}, // Cheyenne
	"82007": {House: []string{"10"}, Senate: []string{"05"}}, // Cheyenne
	"82009": {House: []string{"11"}, Senate: []string{"06"}}, // Cheyenne
	"82010": {House: []string{"12"}, Senate: []string{"06"}}, // Cheyenne
	"82070": {House: []string{"13"}, Senate: []string{"07"}}, // Burns
	"82071": {House: []string{"14"}, Senate: []string{"07"}}, // Carpenter
	"82072": {House: []string{"01"}, Senate: []string{"01"}}, // Albin
	"82073": {House: []string{"02"}, Senate: []string{"01"}}, // Granite Canyon
	"82081": {House: []string{"15"}, Senate: []string{"08"}}, // Laramie
	"82082": {House: []string{"16"}, Senate: []string{"09"}}, // Laramie
	"82083": {House: []string{"17"}, Senate: []string{"09"}}, // Laramie
	"82190": {House: []string{"18"}, Senate: []string{"10"}}, // Medicine Bow
	"82414": {House: []string{"19"}, Senate: []string{"11"}}, // Cody
	"82602": {House: []string{"20"}, Senate: []string{"12"}}, // Casper
	"82604": {House: []string{"21"}, Senate: []string{"13"}}, // Casper
	"82605": {House: []string{"22"}, Senate: []string{"13"}}, // Casper
	"82609": {House: []string{"23"}, Senate: []string{"14"}}, // Casper
	"82716": {House: []string{"24"}, Senate: []string{"15"}}, // Gillette
	"82717": {House: []string{"25"}, Senate: []string{"15"}}, // Gillette
	"82718": {House: []string{"26"}, Senate: []string{"16"}}, // Gillette
}

var wyomingCities = map[string]models.DistrictSet{
	"cheyenne":     {House: []string{"04", "05", "06", "07", "08", "09", "10"}, Senate: []string{"02", "03", "04", "05"}},
	"casper":       {House: []string{"28", "29", "30", "31"}, Senate: []string{"26", "27", "28"}},
	"laramie":      {House: []string{"13", "14"}, Senate: []string{"09"}},
	"gillette":     {House: []string{"53", "54", "55"}, Senate: []string{"24"}},
	"rock springs": {House: []string{"18", "19"}, Senate: []string{"12"}},
	"sheridan":     {House: []string{"25", "26"}, Senate: []string{"20"}},
	"green river":  {House: []string{"20"}, Senate: []string{"12"}},
	"evanston":     {House: []string{"16"}, Senate: []string{"11"}},
	"riverton":     {House: []string{"33"}, Senate: []string{"17"}},
	"jackson":      {House: []string{"15"}, Senate: []string{"17"}},
	"cody":         {House: []string{"21"}, Senate: []string{"19"}},
	"powell":       {House: []string{"22"}, Senate: []string{"19"}},
	"worland":      {House: []string{"23"}, Senate: []string{"15"}},
	"torrington":   {House: []string{"01"}, Senate: []string{"01"}},
	"douglas":      {House: []string{"35"}, Senate: []string{"29"}},
	"wheatland":    {House: []string{"02"}, Senate: []string{"01"}},
	"newcastle":    {House: []string{"60"}, Senate: []string{"01"}},
	"buffalo":      {House: []string{"56"}, Senate: []string{"24"}},
	"rawlins":      {House: []string{"17"}, Senate: []string{"11"}},
}

// Scan order matters: "rock springs" and "green river" contain spaces and
// must be probed as whole tokens before shorter names could shadow them.
var wyomingCityOrder = []string{
	"cheyenne",
	"casper",
	"laramie",
	"gillette",
	"rock springs",
	"sheridan",
	"green river",
	"evanston",
	"riverton",
	"jackson",
	"cody",
	"powell",
	"worland",
	"torrington",
	"douglas",
	"wheatland",
	"newcastle",
	"buffalo",
	"rawlins",
}
