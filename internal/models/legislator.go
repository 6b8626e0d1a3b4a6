package models

import "time"

type Legislator struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Party        string `json:"party"`
	DistrictCode string `json:"district_code"`
	Chamber      string `json:"chamber"`
	Phone        string `json:"phone"`
	ProfileURL   string `json:"profile_url"`
	Active       bool   `json:"active"`
}

// Vote is one recorded floor vote.
type Vote struct {
	ID         int64
	BillID     string
	Chamber    string
	ActionText string
	Result     string
	Yeas       int
	Nays       int
	RecordedAt time.Time
}

// MemberVote records how the legislator of one district voted.
// LegislatorDistrict is a canonical code such as "H07".
type MemberVote struct {
	VoteID             int64
	LegislatorDistrict string
	LegislatorName     string
	Decision           string
}
