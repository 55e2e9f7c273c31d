package validation

import "churchplus-backend/internal/domain"

// ValidateNewMember runs every member rule and returns the first failure.
func ValidateNewMember(m *domain.NewMember) error {
	if err := ValidateName("name", m.Name); err != nil {
		return err
	}
	if err := ValidateName("father_name", m.FatherName); err != nil {
		return err
	}
	if err := ValidateName("mother_name", m.MotherName); err != nil {
		return err
	}
	if err := ValidateCPF(m.CPF); err != nil {
		return err
	}
	if err := ValidateDate("birth_date", m.BirthDate); err != nil {
		return err
	}
	if m.BaptismDate != "" {
		if err := ValidateDate("baptism_date", m.BaptismDate); err != nil {
			return err
		}
	}
	if err := ValidateEmail(m.Email); err != nil {
		return err
	}
	if err := ValidateProfession(m.Profession); err != nil {
		return err
	}
	if err := ValidateEducation(m.Education); err != nil {
		return err
	}
	if err := ValidateAddressList(m.Addresses); err != nil {
		return err
	}
	return ValidatePhoneList(m.Phones)
}

// ValidateMemberPatch only checks fields the patch actually sets.
func ValidateMemberPatch(p *domain.MemberPatch) error {
	names := []struct {
		field string
		value *string
	}{
		{"name", p.Name},
		{"father_name", p.FatherName},
		{"mother_name", p.MotherName},
	}
	for _, n := range names {
		if present(n.value) {
			if err := ValidateName(n.field, *n.value); err != nil {
				return err
			}
		}
	}
	if present(p.BirthDate) {
		if err := ValidateDate("birth_date", *p.BirthDate); err != nil {
			return err
		}
	}
	if present(p.BaptismDate) {
		if err := ValidateDate("baptism_date", *p.BaptismDate); err != nil {
			return err
		}
	}
	if present(p.Email) {
		if err := ValidateEmail(*p.Email); err != nil {
			return err
		}
	}
	if present(p.Profession) {
		if err := ValidateProfession(*p.Profession); err != nil {
			return err
		}
	}
	if present(p.Education) {
		if err := ValidateEducation(*p.Education); err != nil {
			return err
		}
	}
	if p.Addresses != nil {
		if err := ValidateAddressList(p.Addresses); err != nil {
			return err
		}
	}
	if p.Phones != nil {
		if err := ValidatePhoneList(p.Phones); err != nil {
			return err
		}
	}
	return nil
}

func present(s *string) bool {
	return s != nil && *s != ""
}
