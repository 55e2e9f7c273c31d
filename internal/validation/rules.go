package validation

import (
	"regexp"
	"strings"
	"time"

	"churchplus-backend/internal/domain"
)

const dateLayout = "2006-01-02"

var (
	cpfPattern        = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	namePattern       = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ\s'.,-]+$`)
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)*\.[A-Za-z]{2,}$`)
	professionPattern = regexp.MustCompile(`^[a-zA-Z\s]{3,}$`)
	phonePattern      = regexp.MustCompile(`^(\(\d{2}\)\s?)?\d{4,5}-\d{4}$`)
	idPattern         = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
)

// ValidateCPF checks the ###.###.###-## shape and both check digits.
func ValidateCPF(cpf string) error {
	if !cpfPattern.MatchString(cpf) || cpf == "000.000.000-00" {
		return newError("cpf", InvalidCPF)
	}

	digits := make([]int, 0, 11)
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}

	if checkDigit(digits[:9], 10) != digits[9] || checkDigit(digits[:10], 11) != digits[10] {
		return newError("cpf", InvalidCPF)
	}
	return nil
}

// checkDigit weights digits from firstWeight down to 2 and reduces mod 11.
func checkDigit(digits []int, firstWeight int) int {
	sum := 0
	for i, d := range digits {
		sum += d * (firstWeight - i)
	}
	rem := sum % 11
	if rem < 2 {
		return 0
	}
	return 11 - rem
}

func ValidateName(field, name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || !namePattern.MatchString(trimmed) {
		return newError(field, InvalidName)
	}
	return nil
}

// ParseDate accepts a calendar date or an RFC 3339 timestamp (fractional
// seconds allowed), ignoring surrounding blanks, and returns the instant in UTC.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func ValidateDate(field, value string) error {
	if _, err := ParseDate(value); err != nil {
		return newError(field, InvalidDate)
	}
	return nil
}

func ValidateEmail(email string) error {
	if strings.Count(email, "@") != 1 || !emailPattern.MatchString(email) {
		return newError("email", InvalidEmail)
	}
	return nil
}

func ValidateProfession(profession string) error {
	if strings.TrimSpace(profession) == "" || !professionPattern.MatchString(profession) {
		return newError("profession", InvalidProfession)
	}
	return nil
}

func ValidateEducation(education string) error {
	for _, e := range domain.Educations {
		if string(e) == education {
			return nil
		}
	}
	return newError("education", InvalidEducation)
}

func ValidateAddressList(addresses []domain.Address) error {
	if len(addresses) == 0 {
		return newError("address_list", EmptyAddressList)
	}
	return nil
}

func ValidatePhoneList(phones []domain.Phone) error {
	if len(phones) == 0 {
		return newError("phone_list", InvalidPhoneNumber)
	}
	for _, p := range phones {
		if !phonePattern.MatchString(strings.TrimSpace(p.PhoneNumber)) {
			return newError("phone_list", InvalidPhoneNumber)
		}
	}
	return nil
}

// ValidateContribution expects an already normalized type.
func ValidateContribution(valueCents int64, t domain.ContributionType) error {
	if err := ValidateContributionType(t); err != nil {
		return err
	}
	return ValidateContributionValue(valueCents)
}

func ValidateContributionType(t domain.ContributionType) error {
	switch t {
	case domain.ContributionTypeTithe, domain.ContributionTypeOffering,
		domain.ContributionTypeDonation, domain.ContributionTypeOther:
		return nil
	}
	return newError("type", InvalidContributionType)
}

func ValidateContributionValue(valueCents int64) error {
	if valueCents <= 0 {
		return newError("value", InvalidContributionValue)
	}
	return nil
}

func ValidateDateRange(from, to time.Time) error {
	if from.After(to) {
		return newError("toDate", InvalidDateRange)
	}
	return nil
}

// IsWellFormedID reports whether id has the 8-4-4-4-12 hex layout.
func IsWellFormedID(id string) bool {
	return idPattern.MatchString(id)
}
