package postgres

import (
	"database/sql"

	"churchplus-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.MemberRepository
	repository.ContributionRepository
	repository.SnapshotRepository
	repository.StatusRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		MemberRepository:       NewMemberRepository(db),
		ContributionRepository: NewContributionRepository(db),
		SnapshotRepository:     NewSnapshotRepository(db),
		StatusRepository:       NewStatusRepository(db),
	}
}
