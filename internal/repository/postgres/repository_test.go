package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/repository"
	"github.com/jwalitptl/hospital-api/pkg/metrics"
)

var userColumns = []string{"id", "name", "email", "role", "password_hash", "created_at"}

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, BaseRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return mock, NewBaseRepository(sqlx.NewDb(db, "postgres"), nil)
}

func TestUserRepository_Create(t *testing.T) {
	mock, base := setupMockDB(t)
	repo := NewUserRepository(base)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("ann@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(`INSERT INTO users`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	user := &model.User{ID: "usr-1", Name: "Ann", Email: "ann@example.com", Role: model.RoleDoctor, PasswordHash: "hash"}
	require.NoError(t, repo.Create(context.Background(), user))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	mock, base := setupMockDB(t)
	repo := NewUserRepository(base)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("ann@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &model.User{ID: "usr-2", Email: "ann@example.com"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Get(t *testing.T) {
	mock, base := setupMockDB(t)
	repo := NewUserRepository(base)
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs("usr-1").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("usr-1", "Ann", "ann@example.com", "admin", "hash", created))
	mock.ExpectCommit()

	user, err := repo.Get(context.Background(), "usr-1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", user.Name)
	assert.Equal(t, model.RoleAdmin, user.Role)
	assert.Equal(t, created, user.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Get_NotFound(t *testing.T) {
	mock, base := setupMockDB(t)
	repo := NewUserRepository(base)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs("usr-missing").
		WillReturnRows(sqlmock.NewRows(userColumns))
	mock.ExpectRollback()

	user, err := repo.Get(context.Background(), "usr-missing")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_AppliesMutation(t *testing.T) {
	mock, base := setupMockDB(t)
	repo := NewUserRepository(base)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs("usr-1").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("usr-1", "Ann", "ann@example.com", "doctor", "hash", time.Now()))
	mock.ExpectExec(`UPDATE users SET (.+) WHERE id = \$5`).
		WithArgs("Annabel", "ann@example.com", "doctor", "hash", "usr-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	user, err := repo.Update(context.Background(), "usr-1", func(u *model.User) {
		u.Name = "Annabel"
	})
	require.NoError(t, err)
	assert.Equal(t, "Annabel", user.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTable_Delete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "existing row", affected: 1, want: true},
		{name: "missing row", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, base := setupMockDB(t)
			repo := NewOutPatientRepository(base)

			mock.ExpectBegin()
			mock.ExpectExec(`DELETE FROM out_patients WHERE id = \$1`).
				WithArgs("op-1").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))
			mock.ExpectCommit()

			deleted, err := repo.Delete(context.Background(), "op-1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, deleted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTable_List_AppendsPagination(t *testing.T) {
	mock, base := setupMockDB(t)
	repo := NewFeedbackRepository(base)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM feedback ORDER BY created_at ASC OFFSET \$1 LIMIT \$2`).
		WithArgs(20, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectCommit()

	items, err := repo.List(context.Background(), model.Page{Offset: 20, Limit: 10})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInPatientRepository_ListByWard(t *testing.T) {
	mock, base := setupMockDB(t)
	repo := NewInPatientRepository(base)

	mock.ExpectBegin()
	mock.ExpectQuery(`WHERE ward_type = \$1 AND status = \$2 ORDER BY admission_date ASC OFFSET \$3 LIMIT \$4`).
		WithArgs("icu", "admitted", 0, 100).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectCommit()

	_, err := repo.ListByWard(context.Background(), model.WardType("icu"), model.DefaultPage())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutPatientRepository_Create_UniqueViolation(t *testing.T) {
	mock, base := setupMockDB(t)
	repo := NewOutPatientRepository(base)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO out_patients`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "out_patients_pkey"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &model.OutPatient{ID: "op-1"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVisitRepository_Create_ForeignKeyViolation(t *testing.T) {
	mock, base := setupMockDB(t)
	repo := NewVisitRepository(base)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO out_patient_visits`).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "out_patient_visits_patient_id_fkey"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &model.OutPatientVisit{ID: "opv-1", PatientID: "op-missing"})
	assert.ErrorIs(t, err, repository.ErrInvalidReference)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutPatientMedicationRepository_Create_DerivesPatient(t *testing.T) {
	mock, base := setupMockDB(t)
	repo := NewOutPatientMedicationRepository(base)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT patient_id FROM out_patient_visits WHERE id = \$1`).
		WithArgs("opv-1").
		WillReturnRows(sqlmock.NewRows([]string{"patient_id"}).AddRow("op-1"))
	mock.ExpectExec(`INSERT INTO out_patient_medications`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	med := &model.OutPatientMedication{ID: "opm-1", VisitID: "opv-1", Name: "Amoxicillin"}
	require.NoError(t, repo.Create(context.Background(), med))
	assert.Equal(t, "op-1", med.PatientID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutPatientMedicationRepository_Create_MissingVisit(t *testing.T) {
	mock, base := setupMockDB(t)
	repo := NewOutPatientMedicationRepository(base)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT patient_id FROM out_patient_visits`).
		WithArgs("opv-missing").
		WillReturnRows(sqlmock.NewRows([]string{"patient_id"}))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &model.OutPatientMedication{ID: "opm-1", VisitID: "opv-missing"})
	assert.ErrorIs(t, err, repository.ErrInvalidReference)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInPatientMedicationRepository_ListActiveByPatient(t *testing.T) {
	mock, base := setupMockDB(t)
	repo := NewInPatientMedicationRepository(base)

	mock.ExpectBegin()
	mock.ExpectQuery(`JOIN in_patient_rounds rd ON rd.id = m.round_id`).
		WithArgs("ip-1", "active").
		WillReturnRows(sqlmock.NewRows([]string{"id", "round_id", "name", "status"}).
			AddRow("ipm-1", "ipr-1", "Heparin", "active"))
	mock.ExpectCommit()

	meds, err := repo.ListActiveByPatient(context.Background(), "ip-1")
	require.NoError(t, err)
	require.Len(t, meds, 1)
	assert.Equal(t, "Heparin", meds[0].Name)
	assert.Equal(t, model.MedicationActive, meds[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepository_ListForDay(t *testing.T) {
	mock, base := setupMockDB(t)
	repo := NewAppointmentRepository(base)

	day := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)
	start := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`WHERE date >= \$1 AND date < \$2 ORDER BY date ASC`).
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows([]string{"id", "patient_id", "date"}).
			AddRow("op-apt-1", "op-1", start.Add(9*time.Hour)))
	mock.ExpectCommit()

	appts, err := repo.ListForDay(context.Background(), day)
	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Equal(t, "op-apt-1", appts[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RecordsMetrics(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := metrics.NewMetrics("test", prometheus.NewRegistry())
	repo := NewUserRepository(NewBaseRepository(sqlx.NewDb(db, "postgres"), m))

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM users WHERE id`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err = repo.Get(context.Background(), "usr-1")
	require.Error(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DatabaseOperations.WithLabelValues("users.get", "error")))
	assert.NoError(t, mock.ExpectationsWereMet())
}
