package reports

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/billing"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shift"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	assert.NoError(t, err)
	return db, mock
}

// expectBuildSummary memasang urutan query buildSummary untuk site kosong
// kecuali shift dan salary yang diisi caller lewat rows.
func expectSummaryQueries(mock sqlmock.Sqlmock, siteID string, shiftRows, salaryRows *sqlmock.Rows) {
	mock.ExpectQuery(`SELECT \* FROM "shifts" WHERE site_id = \$1 AND date BETWEEN \$2 AND \$3`).
		WithArgs(siteID, "2026-08-01", "2026-08-31").
		WillReturnRows(shiftRows)

	mock.ExpectQuery(`SELECT \* FROM "attendances" WHERE site_id = \$1 AND date BETWEEN \$2 AND \$3`).
		WithArgs(siteID, "2026-08-01", "2026-08-31").
		WillReturnRows(sqlmock.NewRows([]string{"id", "site_id", "guard_id", "date", "status"}).
			AddRow(uuid.New(), siteID, nil, time.Now(), "PRESENT").
			AddRow(uuid.New(), siteID, nil, time.Now(), "PRESENT").
			AddRow(uuid.New(), siteID, nil, time.Now(), "ABSENT"))

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM "spends" WHERE site_id = \$1 AND date BETWEEN \$2 AND \$3`).
		WithArgs(siteID, "2026-08-01", "2026-08-31").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(1250.75))

	mock.ExpectQuery(`SELECT \* FROM "salary_disbursements" WHERE site_id = \$1 ORDER BY month DESC`).
		WithArgs(siteID, 1).
		WillReturnRows(salaryRows)

	mock.ExpectQuery(`SELECT \* FROM "bills" WHERE site_id = \$1 AND status = \$2 ORDER BY due_date ASC LIMIT \$3`).
		WithArgs(siteID, billing.StatusOutstanding, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "site_id", "amount", "due_date", "status"}))
}

func TestService_Summary_Fold(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewService(db, nil)
	siteID := uuid.New()

	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	shiftRows := sqlmock.NewRows([]string{"id", "site_id", "date", "shift_type", "guard_count"}).
		AddRow(uuid.New(), siteID, day, "DAY", 4).
		AddRow(uuid.New(), siteID, day, "MORNING", 2).
		AddRow(uuid.New(), siteID, day, "NIGHT", 3)
	salaryRows := sqlmock.NewRows([]string{"id", "site_id", "month", "status"}).
		AddRow(uuid.New(), siteID, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), "PAID")

	expectSummaryQueries(mock, siteID.String(), shiftRows, salaryRows)

	out, err := svc.Summary(context.Background(), siteID.String(), "2026-08-01", "2026-08-31")
	assert.NoError(t, err)

	// MORNING dinormalisasi ke DAY, lalu dicerminkan kembali ke key MORNING
	assert.Equal(t, map[string]int{
		shift.TypeDay: 6, "MORNING": 6,
		shift.TypeEvening: 0, shift.TypeNight: 3,
	}, out.ShiftWiseCount["2026-08-30"])

	assert.Equal(t, map[string]int{"PRESENT": 2, "ABSENT": 1, "LEAVE": 0}, out.TillDateAttendance)
	assert.InDelta(t, 1250.75, out.TillDateSpend, 0.001)
	if assert.NotNil(t, out.SalaryDisbursement) {
		assert.Equal(t, "PAID", out.SalaryDisbursement.Status)
	}
	assert.NotNil(t, out.OutstandingBills)
	assert.Empty(t, out.OutstandingBills)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Summary_NoSalaryRecorded(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewService(db, nil)
	siteID := uuid.New()

	expectSummaryQueries(mock, siteID.String(),
		sqlmock.NewRows([]string{"id", "site_id", "date", "shift_type", "guard_count"}),
		sqlmock.NewRows([]string{"id", "site_id", "month", "status"}))

	out, err := svc.Summary(context.Background(), siteID.String(), "2026-08-01", "2026-08-31")
	assert.NoError(t, err)
	assert.Nil(t, out.SalaryDisbursement)
	assert.Empty(t, out.ShiftWiseCount)
}

func TestService_Summary_CacheHit(t *testing.T) {
	db, dbMock := newMockDB(t)
	rdb, rMock := redismock.NewClientMock()
	svc := NewService(db, rdb)
	siteID := uuid.New().String()

	cached := SiteSummary{
		TillDateSpend:      42,
		TillDateAttendance: map[string]int{"PRESENT": 1},
		OutstandingBills:   []billing.Bill{},
	}
	payload, err := json.Marshal(&cached)
	assert.NoError(t, err)

	rMock.ExpectGet(summaryKey(siteID, "", "")).SetVal(string(payload))

	out, err := svc.Summary(context.Background(), siteID, "", "")
	assert.NoError(t, err)
	assert.InDelta(t, 42, out.TillDateSpend, 0.001)

	// Cache hit tidak menyentuh database sama sekali
	assert.NoError(t, dbMock.ExpectationsWereMet())
	assert.NoError(t, rMock.ExpectationsWereMet())
}

func TestService_Summary_CacheMissPopulates(t *testing.T) {
	db, dbMock := newMockDB(t)
	rdb, rMock := redismock.NewClientMock()
	svc := NewService(db, rdb)
	siteID := uuid.New()

	rMock.ExpectGet(summaryKey(siteID.String(), "2026-08-01", "2026-08-31")).RedisNil()
	rMock.Regexp().ExpectSet(summaryKey(siteID.String(), "2026-08-01", "2026-08-31"), `.*`, summaryCacheTTL).
		SetVal("OK")

	expectSummaryQueries(dbMock, siteID.String(),
		sqlmock.NewRows([]string{"id", "site_id", "date", "shift_type", "guard_count"}),
		sqlmock.NewRows([]string{"id", "site_id", "month", "status"}))

	out, err := svc.Summary(context.Background(), siteID.String(), "2026-08-01", "2026-08-31")
	assert.NoError(t, err)
	assert.Nil(t, out.SalaryDisbursement)
	assert.NoError(t, dbMock.ExpectationsWereMet())
	assert.NoError(t, rMock.ExpectationsWereMet())
}
