package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"churchplus-backend/internal/domain"
	"churchplus-backend/internal/logger"
	"churchplus-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const memberColumns = `id, name, cpf, birth_date, baptism_date, email, father_name, mother_name,
		       education, profession, status, user_id, created_at, updated_at`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type memberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(s rowScanner) (*domain.Member, error) {
	m := &domain.Member{}
	err := s.Scan(
		&m.ID, &m.Name, &m.CPF, &m.BirthDate, &m.BaptismDate, &m.Email, &m.FatherName, &m.MotherName,
		&m.Education, &m.Profession, &m.Status, &m.UserID, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *memberRepository) GetByCPF(ctx context.Context, cpf string) (*domain.Member, error) {
	logger.EnterMethod("memberRepository.GetByCPF")

	query := `SELECT ` + memberColumns + ` FROM members WHERE cpf = $1`
	m, err := scanMember(r.db.QueryRowContext(ctx, query, cpf))
	if errors.Is(err, sql.ErrNoRows) {
		logger.ExitMethod("memberRepository.GetByCPF", "found", false)
		return nil, domain.ErrMemberNotFound
	}
	if err != nil {
		logger.ExitMethodWithError("memberRepository.GetByCPF", err)
		return nil, err
	}

	logger.ExitMethod("memberRepository.GetByCPF", "found", true, "memberID", m.ID)
	return m, nil
}

func (r *memberRepository) Create(ctx context.Context, m *domain.Member) error {
	logger.EnterMethod("memberRepository.Create", "userID", m.UserID, "addresses", len(m.Addresses), "phones", len(m.Phones))

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.ExitMethodWithError("memberRepository.Create", err)
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	m.ID = uuid.NewString()
	m.CreatedAt = now
	m.UpdatedAt = now
	if m.Status == "" {
		m.Status = domain.MemberStatusActive
	}

	query := `
		INSERT INTO members (
			id, name, cpf, birth_date, baptism_date, email, father_name, mother_name,
			education, profession, status, user_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	logger.DatabaseCall("INSERT", "members", "memberID", m.ID)
	_, err = tx.ExecContext(ctx, query,
		m.ID, m.Name, m.CPF, m.BirthDate, m.BaptismDate, m.Email, m.FatherName, m.MotherName,
		m.Education, m.Profession, m.Status, m.UserID, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		err = translateMemberError(err)
		logger.DatabaseResult("INSERT", 0, err, "table", "members")
		logger.ExitMethodWithError("memberRepository.Create", err)
		return err
	}

	for i := range m.Addresses {
		a := &m.Addresses[i]
		a.ID = uuid.NewString()
		a.MemberID = m.ID
		_, err = tx.ExecContext(ctx, `
			INSERT INTO addresses (id, member_id, position, zip_code, number, street, neighborhood, complement, uf, city)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			a.ID, a.MemberID, i, a.ZipCode, a.Number, a.Street, a.Neighborhood, a.Complement, a.UF, a.City,
		)
		if err != nil {
			logger.ExitMethodWithError("memberRepository.Create", err, "table", "addresses")
			return err
		}
	}

	for i := range m.Phones {
		p := &m.Phones[i]
		p.ID = uuid.NewString()
		p.MemberID = m.ID
		_, err = tx.ExecContext(ctx, `
			INSERT INTO phones (id, member_id, position, phone_number)
			VALUES ($1, $2, $3, $4)`,
			p.ID, p.MemberID, i, p.PhoneNumber,
		)
		if err != nil {
			logger.ExitMethodWithError("memberRepository.Create", err, "table", "phones")
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		logger.ExitMethodWithError("memberRepository.Create", err)
		return err
	}
	m.Contributions = []domain.Contribution{}

	logger.ExitMethod("memberRepository.Create", "memberID", m.ID)
	return nil
}

func (r *memberRepository) GetByID(ctx context.Context, id, ownerID string) (*domain.Member, error) {
	logger.EnterMethod("memberRepository.GetByID", "memberID", id, "userID", ownerID)

	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1 AND user_id = $2 AND status = 'ACTIVE'`
	m, err := scanMember(r.db.QueryRowContext(ctx, query, id, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		logger.ExitMethodWithError("memberRepository.GetByID", domain.ErrMemberNotFound, "memberID", id)
		return nil, domain.ErrMemberNotFound
	}
	if err != nil {
		logger.ExitMethodWithError("memberRepository.GetByID", err, "memberID", id)
		return nil, err
	}

	members := []domain.Member{*m}
	if err := r.loadChildren(ctx, members); err != nil {
		logger.ExitMethodWithError("memberRepository.GetByID", err, "memberID", id)
		return nil, err
	}

	logger.ExitMethod("memberRepository.GetByID", "memberID", id)
	return &members[0], nil
}

func (r *memberRepository) ListByStatusAndOwner(ctx context.Context, status domain.MemberStatus, ownerID string) ([]domain.Member, error) {
	logger.EnterMethod("memberRepository.ListByStatusAndOwner", "status", status, "userID", ownerID)

	query := `SELECT ` + memberColumns + ` FROM members WHERE status = $1 AND user_id = $2 ORDER BY name`
	members, err := r.queryMembers(ctx, query, status, ownerID)
	if err != nil {
		logger.ExitMethodWithError("memberRepository.ListByStatusAndOwner", err, "userID", ownerID)
		return nil, err
	}

	logger.ExitMethod("memberRepository.ListByStatusAndOwner", "userID", ownerID, "count", len(members))
	return members, nil
}

func (r *memberRepository) SearchByName(ctx context.Context, fragment, ownerID string) ([]domain.Member, error) {
	logger.EnterMethod("memberRepository.SearchByName", "fragment", fragment, "userID", ownerID)

	query := `SELECT ` + memberColumns + ` FROM members
		WHERE user_id = $1 AND status = 'ACTIVE' AND name ILIKE '%' || $2 || '%'
		ORDER BY name`
	members, err := r.queryMembers(ctx, query, ownerID, likeEscaper.Replace(fragment))
	if err != nil {
		logger.ExitMethodWithError("memberRepository.SearchByName", err, "userID", ownerID)
		return nil, err
	}

	logger.ExitMethod("memberRepository.SearchByName", "userID", ownerID, "count", len(members))
	return members, nil
}

func (r *memberRepository) Update(ctx context.Context, m *domain.Member) error {
	logger.EnterMethod("memberRepository.Update", "memberID", m.ID, "userID", m.UserID)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.ExitMethodWithError("memberRepository.Update", err, "memberID", m.ID)
		return err
	}
	defer tx.Rollback()

	m.UpdatedAt = time.Now().UTC()
	query := `
		UPDATE members SET
			name = $1,
			birth_date = $2,
			baptism_date = $3,
			email = $4,
			father_name = $5,
			mother_name = $6,
			education = $7,
			profession = $8,
			updated_at = $9
		WHERE id = $10 AND user_id = $11 AND status = 'ACTIVE'
	`
	result, err := tx.ExecContext(ctx, query,
		m.Name, m.BirthDate, m.BaptismDate, m.Email, m.FatherName, m.MotherName,
		m.Education, m.Profession, m.UpdatedAt, m.ID, m.UserID,
	)
	if err != nil {
		logger.ExitMethodWithError("memberRepository.Update", err, "memberID", m.ID)
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		logger.ExitMethodWithError("memberRepository.Update", err, "memberID", m.ID)
		return err
	}
	if rows == 0 {
		logger.ExitMethodWithError("memberRepository.Update", domain.ErrMemberNotFound, "memberID", m.ID)
		return domain.ErrMemberNotFound
	}

	for _, a := range m.Addresses {
		_, err = tx.ExecContext(ctx, `
			UPDATE addresses SET zip_code = $1, number = $2, street = $3, neighborhood = $4,
				complement = $5, uf = $6, city = $7
			WHERE id = $8 AND member_id = $9`,
			a.ZipCode, a.Number, a.Street, a.Neighborhood, a.Complement, a.UF, a.City, a.ID, m.ID,
		)
		if err != nil {
			logger.ExitMethodWithError("memberRepository.Update", err, "addressID", a.ID)
			return err
		}
	}

	for _, p := range m.Phones {
		_, err = tx.ExecContext(ctx, `UPDATE phones SET phone_number = $1 WHERE id = $2 AND member_id = $3`,
			p.PhoneNumber, p.ID, m.ID)
		if err != nil {
			logger.ExitMethodWithError("memberRepository.Update", err, "phoneID", p.ID)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		logger.ExitMethodWithError("memberRepository.Update", err, "memberID", m.ID)
		return err
	}

	logger.ExitMethod("memberRepository.Update", "memberID", m.ID)
	return nil
}

func (r *memberRepository) UpdateStatus(ctx context.Context, id, ownerID string, status domain.MemberStatus) error {
	logger.EnterMethod("memberRepository.UpdateStatus", "memberID", id, "status", status)

	query := `UPDATE members SET status = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`
	result, err := r.db.ExecContext(ctx, query, status, time.Now().UTC(), id, ownerID)
	if err != nil {
		logger.ExitMethodWithError("memberRepository.UpdateStatus", err, "memberID", id)
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		logger.ExitMethodWithError("memberRepository.UpdateStatus", err, "memberID", id)
		return err
	}
	if rows == 0 {
		logger.ExitMethodWithError("memberRepository.UpdateStatus", domain.ErrMemberNotFound, "memberID", id)
		return domain.ErrMemberNotFound
	}

	logger.ExitMethod("memberRepository.UpdateStatus", "memberID", id)
	return nil
}

func (r *memberRepository) queryMembers(ctx context.Context, query string, args ...any) ([]domain.Member, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []domain.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadChildren(ctx, members); err != nil {
		return nil, err
	}
	return members, nil
}

// loadChildren fills addresses, phones and contributions with one query per
// table for the whole batch.
func (r *memberRepository) loadChildren(ctx context.Context, members []domain.Member) error {
	if len(members) == 0 {
		return nil
	}

	ids := make([]string, len(members))
	index := make(map[string]int, len(members))
	for i := range members {
		ids[i] = members[i].ID
		index[members[i].ID] = i
		members[i].Addresses = []domain.Address{}
		members[i].Phones = []domain.Phone{}
		members[i].Contributions = []domain.Contribution{}
	}

	logger.DatabaseCall("SELECT", "addresses", "members", len(ids))
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, member_id, zip_code, number, street, neighborhood, COALESCE(complement, ''), uf, city
		FROM addresses WHERE member_id = ANY($1) ORDER BY member_id, position`, pq.Array(ids))
	if err != nil {
		return err
	}
	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(&a.ID, &a.MemberID, &a.ZipCode, &a.Number, &a.Street, &a.Neighborhood, &a.Complement, &a.UF, &a.City); err != nil {
			rows.Close()
			return err
		}
		i := index[a.MemberID]
		members[i].Addresses = append(members[i].Addresses, a)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	logger.DatabaseCall("SELECT", "phones", "members", len(ids))
	rows, err = r.db.QueryContext(ctx, `
		SELECT id, member_id, phone_number
		FROM phones WHERE member_id = ANY($1) ORDER BY member_id, position`, pq.Array(ids))
	if err != nil {
		return err
	}
	for rows.Next() {
		var p domain.Phone
		if err := rows.Scan(&p.ID, &p.MemberID, &p.PhoneNumber); err != nil {
			rows.Close()
			return err
		}
		i := index[p.MemberID]
		members[i].Phones = append(members[i].Phones, p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	logger.DatabaseCall("SELECT", "financial_contributions", "members", len(ids))
	rows, err = r.db.QueryContext(ctx, `
		SELECT `+contributionColumns+`
		FROM financial_contributions WHERE member_id = ANY($1) ORDER BY created_at`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		c, err := scanContribution(rows)
		if err != nil {
			return err
		}
		i := index[c.MemberID]
		members[i].Contributions = append(members[i].Contributions, *c)
	}
	return rows.Err()
}

func translateMemberError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return domain.ErrMemberAlreadyExists
	}
	return err
}
