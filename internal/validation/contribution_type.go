package validation

import "churchplus-backend/internal/domain"

var contributionLabels = map[string]domain.ContributionType{
	"Tithe":    domain.ContributionTypeTithe,
	"Offering": domain.ContributionTypeOffering,
	"Donation": domain.ContributionTypeDonation,
	"Other":    domain.ContributionTypeOther,

	string(domain.ContributionTypeTithe):    domain.ContributionTypeTithe,
	string(domain.ContributionTypeOffering): domain.ContributionTypeOffering,
	string(domain.ContributionTypeDonation): domain.ContributionTypeDonation,
	string(domain.ContributionTypeOther):    domain.ContributionTypeOther,
}

// NormalizeContributionType maps a display label to the stored enum. Stored
// enum values map to themselves; anything else becomes OTHER.
func NormalizeContributionType(label string) domain.ContributionType {
	if t, ok := contributionLabels[label]; ok {
		return t
	}
	return domain.ContributionTypeOther
}
