package validation

import (
	"errors"
	"testing"
	"time"

	"churchplus-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertReason(t *testing.T, err error, field string, reason Reason) {
	t.Helper()
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr), "expected ValidationError, got %v", err)
	assert.Equal(t, field, vErr.Field)
	assert.Equal(t, reason, vErr.Reason)
}

func TestValidateCPF(t *testing.T) {
	tests := []struct {
		cpf   string
		valid bool
	}{
		{"529.982.247-25", true},
		{"111.444.777-35", true},
		{"111.111.111-11", true},
		{"529.982.247-26", false},
		{"529.982.247-15", false},
		{"000.000.000-00", false},
		{"52998224725", false},
		{"529-982-247.25", false},
		{"529.982.247-2", false},
		{"529.98a.247-25", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.cpf, func(t *testing.T) {
			err := ValidateCPF(tt.cpf)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assertReason(t, err, "cpf", InvalidCPF)
		})
	}
}

func TestValidateName(t *testing.T) {
	t.Run("Accepts accented names", func(t *testing.T) {
		assert.NoError(t, ValidateName("name", "José da Silva"))
		assert.NoError(t, ValidateName("name", "Ana-Maria O'Neil"))
		assert.NoError(t, ValidateName("name", "  João Conceição Jr.  "))
	})

	t.Run("Rejects digits", func(t *testing.T) {
		assertReason(t, ValidateName("name", "John3"), "name", InvalidName)
	})

	t.Run("Rejects blank", func(t *testing.T) {
		assertReason(t, ValidateName("father_name", "   "), "father_name", InvalidName)
	})

	t.Run("Rejects symbols", func(t *testing.T) {
		assertReason(t, ValidateName("mother_name", "Maria@Silva"), "mother_name", InvalidName)
	})
}

func TestParseDate(t *testing.T) {
	t.Run("Date only", func(t *testing.T) {
		d, err := ParseDate("1990-05-17")
		require.NoError(t, err)
		assert.Equal(t, time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("Timestamp with offset is normalized to UTC", func(t *testing.T) {
		d, err := ParseDate("1990-05-17T21:00:00-03:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(1990, 5, 18, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("Surrounding blanks", func(t *testing.T) {
		d, err := ParseDate(" 1985-03-10 ")
		require.NoError(t, err)
		assert.Equal(t, time.Date(1985, 3, 10, 0, 0, 0, 0, time.UTC), d)
		assert.NoError(t, ValidateDate("birth_date", "\t2024-01-15T10:00:00Z "))
	})

	t.Run("Fractional seconds", func(t *testing.T) {
		_, err := ParseDate("2024-01-15T10:00:00.000Z")
		assert.NoError(t, err)
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, v := range []string{"", "15/01/2024", "2024-02-30", "yesterday"} {
			assertReason(t, ValidateDate("birth_date", v), "birth_date", InvalidDate)
		}
	})
}

func TestValidateEmail(t *testing.T) {
	for _, v := range []string{"joao@igreja.org", "a.b+c@mail.com.br"} {
		assert.NoError(t, ValidateEmail(v), v)
	}
	for _, v := range []string{"joao", "joao@igreja", "joao@@igreja.org", "joao@igreja.o", "jo ao@igreja.org", "a@b@c.com"} {
		assertReason(t, ValidateEmail(v), "email", InvalidEmail)
	}
}

func TestValidateProfession(t *testing.T) {
	assert.NoError(t, ValidateProfession("Engineer"))
	assert.NoError(t, ValidateProfession("Software Engineer"))
	assertReason(t, ValidateProfession("Dr"), "profession", InvalidProfession)
	assertReason(t, ValidateProfession("Engineer 2"), "profession", InvalidProfession)
	assertReason(t, ValidateProfession("   "), "profession", InvalidProfession)
}

func TestValidateEducation(t *testing.T) {
	for _, e := range domain.Educations {
		assert.NoError(t, ValidateEducation(string(e)))
	}
	assertReason(t, ValidateEducation("doutorado"), "education", InvalidEducation)
	assertReason(t, ValidateEducation(""), "education", InvalidEducation)
}

func TestValidateAddressList(t *testing.T) {
	assert.NoError(t, ValidateAddressList([]domain.Address{{Street: "Rua A"}}))
	assertReason(t, ValidateAddressList(nil), "address_list", EmptyAddressList)
	assertReason(t, ValidateAddressList([]domain.Address{}), "address_list", EmptyAddressList)
}

func TestValidatePhoneList(t *testing.T) {
	t.Run("Valid numbers", func(t *testing.T) {
		phones := []domain.Phone{
			{PhoneNumber: "(11) 98765-4321"},
			{PhoneNumber: "(11)3456-7890"},
			{PhoneNumber: "98765-4321"},
		}
		assert.NoError(t, ValidatePhoneList(phones))
	})

	t.Run("Empty list", func(t *testing.T) {
		assertReason(t, ValidatePhoneList(nil), "phone_list", InvalidPhoneNumber)
	})

	t.Run("One bad entry fails the list", func(t *testing.T) {
		phones := []domain.Phone{{PhoneNumber: "(11) 98765-4321"}, {PhoneNumber: "987654321"}}
		assertReason(t, ValidatePhoneList(phones), "phone_list", InvalidPhoneNumber)
	})

	t.Run("Trailing garbage", func(t *testing.T) {
		phones := []domain.Phone{{PhoneNumber: "98765-4321 ramal 2"}}
		assertReason(t, ValidatePhoneList(phones), "phone_list", InvalidPhoneNumber)
	})
}

func TestValidateContribution(t *testing.T) {
	assert.NoError(t, ValidateContribution(1000, domain.ContributionTypeTithe))
	assertReason(t, ValidateContribution(0, domain.ContributionTypeTithe), "value", InvalidContributionValue)
	assertReason(t, ValidateContribution(-5, domain.ContributionTypeOffering), "value", InvalidContributionValue)
	assertReason(t, ValidateContribution(100, domain.ContributionType("Tithe")), "type", InvalidContributionType)
}

func TestValidateDateRange(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateDateRange(from, to))
	assert.NoError(t, ValidateDateRange(from, from))
	assertReason(t, ValidateDateRange(to, from), "toDate", InvalidDateRange)
}

func TestIsWellFormedID(t *testing.T) {
	assert.True(t, IsWellFormedID("3f2504e0-4f89-11d3-9a0c-0305e82c3301"))
	assert.True(t, IsWellFormedID("3F2504E0-4F89-11D3-9A0C-0305E82C3301"))
	assert.False(t, IsWellFormedID("not-a-uuid"))
	assert.False(t, IsWellFormedID("3f2504e04f8911d39a0c0305e82c3301"))
	assert.False(t, IsWellFormedID("3f2504e0-4f89-11d3-9a0c-0305e82c330g"))
	assert.False(t, IsWellFormedID(""))
}
