package domain

import "time"

type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "ACTIVE"
	MemberStatusInactive MemberStatus = "INACTIVE"
)

type Education string

const (
	EducationFundamentalIncompleto Education = "fundamentalIncompleto"
	EducationFundamentalCompleto   Education = "fundamentalCompleto"
	EducationMedioIncompleto       Education = "medioIncompleto"
	EducationMedioCompleto         Education = "medioCompleto"
	EducationSuperiorIncompleto    Education = "superiorIncompleto"
	EducationSuperiorCompleto      Education = "superiorCompleto"
	EducationOutro                 Education = "outro"
)

// Educations lists the accepted education levels in form order.
var Educations = []Education{
	EducationFundamentalIncompleto,
	EducationFundamentalCompleto,
	EducationMedioIncompleto,
	EducationMedioCompleto,
	EducationSuperiorIncompleto,
	EducationSuperiorCompleto,
	EducationOutro,
}

type Member struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	CPF           string         `json:"cpf"`
	BirthDate     time.Time      `json:"birth_date"`
	BaptismDate   *time.Time     `json:"baptism_date"`
	Email         string         `json:"email"`
	FatherName    string         `json:"father_name"`
	MotherName    string         `json:"mother_name"`
	Education     Education      `json:"education"`
	Profession    string         `json:"profession"`
	Status        MemberStatus   `json:"status"`
	UserID        string         `json:"user_id"`
	Addresses     []Address      `json:"address_list"`
	Phones        []Phone        `json:"phone_list"`
	Contributions []Contribution `json:"financial_contributions"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type Address struct {
	ID           string `json:"id,omitempty"`
	MemberID     string `json:"member_id,omitempty"`
	ZipCode      string `json:"zip_code"`
	Number       int32  `json:"number"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	Complement   string `json:"complement,omitempty"`
	UF           string `json:"uf"`
	City         string `json:"city"`
}

type Phone struct {
	ID          string `json:"id,omitempty"`
	MemberID    string `json:"member_id,omitempty"`
	PhoneNumber string `json:"phone_number"`
}

// NewMember is the registration payload. Dates stay as submitted so the
// validation rules can judge the submitted text.
type NewMember struct {
	Name        string    `json:"name"`
	CPF         string    `json:"cpf"`
	BirthDate   string    `json:"birth_date"`
	BaptismDate string    `json:"baptism_date"`
	Email       string    `json:"email"`
	FatherName  string    `json:"father_name"`
	MotherName  string    `json:"mother_name"`
	Education   string    `json:"education"`
	Profession  string    `json:"profession"`
	Addresses   []Address `json:"address_list"`
	Phones      []Phone   `json:"phone_list"`
}

// MemberPatch carries a partial update. A nil pointer or an empty string
// leaves the stored value untouched; a nil slice leaves the nested rows
// untouched while an empty, non-nil slice is rejected by validation.
type MemberPatch struct {
	Name        *string   `json:"name"`
	BirthDate   *string   `json:"birth_date"`
	BaptismDate *string   `json:"baptism_date"`
	Email       *string   `json:"email"`
	FatherName  *string   `json:"father_name"`
	MotherName  *string   `json:"mother_name"`
	Education   *string   `json:"education"`
	Profession  *string   `json:"profession"`
	Addresses   []Address `json:"address_list"`
	Phones      []Phone   `json:"phone_list"`
}
