package domain

import "time"

type ContributionType string

const (
	ContributionTypeTithe    ContributionType = "TITHE"
	ContributionTypeOffering ContributionType = "OFFERING"
	ContributionTypeDonation ContributionType = "DONATION"
	ContributionTypeOther    ContributionType = "OTHER"
)

type Contribution struct {
	ID         string           `json:"id"`
	MemberID   string           `json:"member_id"`
	UserID     string           `json:"user_id"`
	ValueCents int64            `json:"value"` // minor currency units
	Type       ContributionType `json:"type"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

type NewContribution struct {
	MemberID   string `json:"member_id"`
	ValueCents int64  `json:"value"`
	Type       string `json:"type"`
}

// ContributionPatch only reaches value and type; everything else is fixed
// once the contribution exists.
type ContributionPatch struct {
	ValueCents *int64  `json:"value"`
	Type       *string `json:"type"`
}

// MonthlyTotal is one bar of the dashboard chart.
type MonthlyTotal struct {
	Month      string           `json:"month"` // YYYY-MM
	Type       ContributionType `json:"type"`
	TotalCents int64            `json:"total_cents"`
	Total      string           `json:"total"`
	Count      int32            `json:"count"`
}

type ContributionSnapshot struct {
	UserID     string           `json:"user_id"`
	Month      string           `json:"month"`
	Type       ContributionType `json:"type"`
	TotalCents int64            `json:"total_cents"`
	Count      int32            `json:"count"`
	TakenAt    time.Time        `json:"taken_at"`
}
