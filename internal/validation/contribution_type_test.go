package validation

import (
	"testing"

	"churchplus-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeContributionType(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.ContributionType
	}{
		{"Tithe", domain.ContributionTypeTithe},
		{"Offering", domain.ContributionTypeOffering},
		{"Donation", domain.ContributionTypeDonation},
		{"Other", domain.ContributionTypeOther},
		{"TITHE", domain.ContributionTypeTithe},
		{"DONATION", domain.ContributionTypeDonation},
		{"tithe", domain.ContributionTypeOther},
		{"Dízimo", domain.ContributionTypeOther},
		{"garbage", domain.ContributionTypeOther},
		{"", domain.ContributionTypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeContributionType(tt.input))
		})
	}
}

func TestNormalizeContributionTypeIdempotent(t *testing.T) {
	inputs := []string{"Tithe", "Offering", "Donation", "Other", "OFFERING", "Oferta", "x", " Tithe"}
	for _, in := range inputs {
		once := NormalizeContributionType(in)
		assert.Equal(t, once, NormalizeContributionType(string(once)), in)
	}
}
