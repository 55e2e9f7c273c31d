package postgres

import (
	"context"
	"testing"
	"time"

	"churchplus-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSnapshotRepository(db)
	taken := time.Date(2024, 2, 1, 0, 30, 0, 0, time.UTC)
	s := &domain.ContributionSnapshot{
		UserID: testOwnerID, Month: "2024-01", Type: domain.ContributionTypeTithe,
		TotalCents: 10000, Count: 3, TakenAt: taken,
	}

	mock.ExpectExec("ON CONFLICT \\(user_id, month, type\\) DO UPDATE").
		WithArgs(testOwnerID, "2024-01", "TITHE", int64(10000), int32(3), taken).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Upsert(context.Background(), s))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepository_ListByYear(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSnapshotRepository(db)
	taken := time.Date(2024, 2, 1, 0, 30, 0, 0, time.UTC)

	mock.ExpectQuery("FROM contribution_snapshots").
		WithArgs(testOwnerID, "2024-%").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "month", "type", "total_cents", "count", "taken_at"}).
			AddRow(testOwnerID, "2024-01", "TITHE", 10000, 3, taken))

	list, err := repo.ListByYear(context.Background(), testOwnerID, 2024)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "2024-01", list[0].Month)
	assert.Equal(t, int64(10000), list[0].TotalCents)
	assert.NoError(t, mock.ExpectationsWereMet())
}
