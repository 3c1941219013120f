package repository_test

import (
	"center-docs-server/config"
	"center-docs-server/internal/apperr"
	"center-docs-server/internal/model"
	"center-docs-server/internal/repository"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDatabase(t *testing.T) (*config.Database, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &config.Database{DB: sqlx.NewDb(db, "sqlmock")}, mock
}

var versionRows = []string{
	"uuid", "document_uuid", "version", "file_name", "size_bytes", "mime_type", "storage_path",
	"change_reason", "approval_status", "approved_by", "approved_at", "rejection_reason", "created_at",
}

func TestVersionCreate_AssignsNextNumber(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := repository.NewVersionRepository(db)
	ctx := context.Background()

	version := &model.DocumentVersion{
		UUID:         "ver4",
		DocumentUUID: "doc1",
		ChangeReason: "Actualización del anexo",
	}

	mock.ExpectQuery(`INSERT INTO document_versions .+ SELECT \$1, \$2, COALESCE\(MAX\(version\), 0\) \+ 1`).
		WithArgs("ver4", "doc1", nil, nil, nil, nil, "Actualización del anexo").
		WillReturnRows(sqlmock.NewRows(versionRows).
			AddRow("ver4", "doc1", 4, nil, nil, nil, nil,
				"Actualización del anexo", "pending", nil, nil, nil, time.Now()))

	created, err := repo.Create(ctx, db, version)

	require.NoError(t, err)
	assert.Equal(t, 4, created.Version)
	assert.Equal(t, model.StatusPending, created.ApprovalStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkApproved_OnlyPendingRows(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := repository.NewVersionRepository(db)
	ctx := context.Background()
	at := time.Now()

	tests := []struct {
		name         string
		rowsAffected int64
		expected     bool
	}{
		{"La versión estaba pendiente", 1, true},
		{"La versión ya estaba decidida", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock.ExpectExec(`UPDATE document_versions\s+SET approval_status = 'approved'.+WHERE uuid = \$1 AND approval_status = 'pending'`).
				WithArgs("ver1", "María López", at).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			ok, err := repo.MarkApproved(ctx, db, "ver1", "María López", at)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRejected_StoresReason(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := repository.NewVersionRepository(db)
	ctx := context.Background()
	at := time.Now()

	mock.ExpectExec(`UPDATE document_versions\s+SET approval_status = 'rejected'.+WHERE uuid = \$1 AND approval_status = 'pending'`).
		WithArgs("ver1", "María López", at, "falta la firma del responsable").
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.MarkRejected(ctx, db, "ver1", "María López", "falta la firma del responsable", at)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetApprovedByNumber_NoRowsIsNotAnError(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := repository.NewVersionRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT .+ FROM document_versions\s+WHERE document_uuid = \$1 AND version = \$2 AND approval_status = 'approved'`).
		WithArgs("doc1", 3).
		WillReturnRows(sqlmock.NewRows(versionRows))

	version, err := repo.GetApprovedByNumber(ctx, db, "doc1", 3)

	require.NoError(t, err)
	assert.Nil(t, version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByUUID_NotFound(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := repository.NewVersionRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT .+ FROM document_versions WHERE uuid = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(versionRows))

	_, err := repo.GetByUUID(ctx, db, "missing")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestAdvanceCurrentVersion_OnlyForward(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := repository.NewDocumentRepository(db)
	ctx := context.Background()

	// el WHERE exige current_version < $2: aprobar una versión vieja
	// simplemente no afecta filas
	mock.ExpectExec(`UPDATE documents\s+SET current_version = \$2.+WHERE uuid = \$1 AND current_version < \$2`).
		WithArgs("doc1", 5).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.AdvanceCurrentVersion(ctx, db, "doc1", 5)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRecord_AppendsEntry(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := repository.NewAuditRepository(db)
	ctx := context.Background()

	mock.ExpectExec(`INSERT INTO audit_entries \(actor_name, action, entity, entity_uuid, detail\)`).
		WithArgs("María López", "version_approved", "document_version", "ver1", "versión 4 del documento doc1 aprobada").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Record(ctx, db, &model.AuditEntry{
		ActorName:  "María López",
		Action:     "version_approved",
		Entity:     "document_version",
		EntityUUID: "ver1",
		Detail:     "versión 4 del documento doc1 aprobada",
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetReminderFlag_UnknownFlag(t *testing.T) {
	db, _ := newMockDatabase(t)
	repo := repository.NewDocumentRepository(db)
	ctx := context.Background()

	err := repo.SetReminderFlag(ctx, db, "doc1", "45")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestSetReminderFlag_KnownFlags(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := repository.NewDocumentRepository(db)
	ctx := context.Background()

	mock.MatchExpectationsInOrder(false)

	flags := map[string]string{
		"30":      "reminder_sent_30",
		"15":      "reminder_sent_15",
		"7":       "reminder_sent_7",
		"expired": "reminder_sent_expired",
	}

	for flag, column := range flags {
		mock.ExpectExec(`UPDATE documents SET ` + column + ` = true.+WHERE uuid = \$1`).
			WithArgs("doc1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.SetReminderFlag(ctx, db, "doc1", flag))
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}
