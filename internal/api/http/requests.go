package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"churchplus-backend/internal/domain"
)

var (
	errInvalidBody      = errors.New("invalid request body")
	errMissingParameter = errors.New("missing parameter")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report json names so error fields match what the client sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeJSON reads the body into dst and runs its struct tags.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errInvalidBody
	}
	return validate.Struct(dst)
}

type addressRequest struct {
	ZipCode      string `json:"zip_code" validate:"required"`
	Number       int32  `json:"number" validate:"gte=0"`
	Street       string `json:"street" validate:"required"`
	Neighborhood string `json:"neighborhood" validate:"required"`
	Complement   string `json:"complement"`
	UF           string `json:"uf" validate:"required,len=2"`
	City         string `json:"city" validate:"required"`
}

type phoneRequest struct {
	PhoneNumber string `json:"phone_number"`
}

// Field rules live in the validation package; tags here only check shape.
type createMemberRequest struct {
	Name        string           `json:"name"`
	CPF         string           `json:"cpf"`
	BirthDate   string           `json:"birth_date"`
	BaptismDate string           `json:"baptism_date"`
	Email       string           `json:"email"`
	FatherName  string           `json:"father_name"`
	MotherName  string           `json:"mother_name"`
	Education   string           `json:"education"`
	Profession  string           `json:"profession"`
	Addresses   []addressRequest `json:"address_list" validate:"dive"`
	Phones      []phoneRequest   `json:"phone_list"`
}

func (req *createMemberRequest) toDomain() *domain.NewMember {
	return &domain.NewMember{
		Name:        req.Name,
		CPF:         req.CPF,
		BirthDate:   req.BirthDate,
		BaptismDate: req.BaptismDate,
		Email:       req.Email,
		FatherName:  req.FatherName,
		MotherName:  req.MotherName,
		Education:   req.Education,
		Profession:  req.Profession,
		Addresses:   mapAddresses(req.Addresses),
		Phones:      mapPhones(req.Phones),
	}
}

type updateAddressRequest struct {
	ZipCode      string `json:"zip_code"`
	Number       int32  `json:"number" validate:"gte=0"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	Complement   string `json:"complement"`
	UF           string `json:"uf" validate:"omitempty,len=2"`
	City         string `json:"city"`
}

type updateMemberRequest struct {
	Name        *string                `json:"name"`
	BirthDate   *string                `json:"birth_date"`
	BaptismDate *string                `json:"baptism_date"`
	Email       *string                `json:"email"`
	FatherName  *string                `json:"father_name"`
	MotherName  *string                `json:"mother_name"`
	Education   *string                `json:"education"`
	Profession  *string                `json:"profession"`
	Addresses   []updateAddressRequest `json:"address_list" validate:"omitempty,dive"`
	Phones      []phoneRequest         `json:"phone_list"`
}

func (req *updateMemberRequest) toDomain() *domain.MemberPatch {
	patch := &domain.MemberPatch{
		Name:        req.Name,
		BirthDate:   req.BirthDate,
		BaptismDate: req.BaptismDate,
		Email:       req.Email,
		FatherName:  req.FatherName,
		MotherName:  req.MotherName,
		Education:   req.Education,
		Profession:  req.Profession,
	}
	// nil stays nil so the patch keeps "absent" apart from "empty".
	if req.Addresses != nil {
		patch.Addresses = make([]domain.Address, len(req.Addresses))
		for i, a := range req.Addresses {
			patch.Addresses[i] = domain.Address{
				ZipCode:      a.ZipCode,
				Number:       a.Number,
				Street:       a.Street,
				Neighborhood: a.Neighborhood,
				Complement:   a.Complement,
				UF:           a.UF,
				City:         a.City,
			}
		}
	}
	if req.Phones != nil {
		patch.Phones = mapPhones(req.Phones)
	}
	return patch
}

type createContributionRequest struct {
	MemberID string `json:"member_id" validate:"required"`
	Value    *int64 `json:"value" validate:"required"`
	Type     string `json:"type"`
}

func (req *createContributionRequest) toDomain() *domain.NewContribution {
	return &domain.NewContribution{
		MemberID:   req.MemberID,
		ValueCents: *req.Value,
		Type:       req.Type,
	}
}

type updateContributionRequest struct {
	Value *int64  `json:"value"`
	Type  *string `json:"type"`
}

func (req *updateContributionRequest) toDomain() *domain.ContributionPatch {
	return &domain.ContributionPatch{ValueCents: req.Value, Type: req.Type}
}

func mapAddresses(in []addressRequest) []domain.Address {
	if in == nil {
		return nil
	}
	out := make([]domain.Address, len(in))
	for i, a := range in {
		out[i] = domain.Address{
			ZipCode:      a.ZipCode,
			Number:       a.Number,
			Street:       a.Street,
			Neighborhood: a.Neighborhood,
			Complement:   a.Complement,
			UF:           a.UF,
			City:         a.City,
		}
	}
	return out
}

func mapPhones(in []phoneRequest) []domain.Phone {
	if in == nil {
		return nil
	}
	out := make([]domain.Phone, len(in))
	for i, p := range in {
		out[i] = domain.Phone{PhoneNumber: p.PhoneNumber}
	}
	return out
}
