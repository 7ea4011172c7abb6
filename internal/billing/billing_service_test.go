package billing

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/messaging/kafka"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/resource"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
)

type fakeOutbox struct {
	created []kafka.OutboxEvent
	err     error
}

func (f *fakeOutbox) WithTx(tx *gorm.DB) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, event)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error             { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id, reason string) error   { return nil }

func newMockService(t *testing.T) (Service, sqlmock.Sqlmock, *fakeOutbox) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	assert.NoError(t, err)

	outbox := &fakeOutbox{}
	return NewService(db, outbox), mock, outbox
}

func TestCodeFor(t *testing.T) {
	id := uuid.MustParse("a1b2c3d4-0000-0000-0000-000000000000")
	assert.Equal(t, "BILL-A1B2C3D4", CodeFor(id))

	code := CodeFor(uuid.New())
	assert.True(t, strings.HasPrefix(code, "BILL-"))
	assert.Len(t, code, len("BILL-")+8)
	assert.Equal(t, strings.ToUpper(code), code)
}

func TestBill_BeforeCreate(t *testing.T) {
	b := &Bill{SiteID: uuid.New(), Amount: 100, DueDate: time.Now()}
	assert.NoError(t, b.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.Equal(t, CodeFor(b.ID), b.Code)
	assert.Equal(t, StatusOutstanding, b.Status)

	// Code eksplisit tidak ditimpa
	explicit := &Bill{ID: uuid.New(), Code: "BILL-CUSTOM01", Status: StatusPaid}
	assert.NoError(t, explicit.BeforeCreate(nil))
	assert.Equal(t, "BILL-CUSTOM01", explicit.Code)
	assert.Equal(t, StatusPaid, explicit.Status)
}

func TestService_Create_DuplicateCodeConflict(t *testing.T) {
	svc, mock, _ := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "bills"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), BillRequest{
		Code:    "BILL-DUPE0001",
		SiteID:  uuid.New().String(),
		Amount:  100,
		DueDate: "2026-09-30",
	})

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)
	assert.Equal(t, 409, appErr.HTTPStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_WritesOutboxInSameTx(t *testing.T) {
	svc, mock, outbox := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "bills"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	bill, err := svc.Create(context.Background(), BillRequest{
		SiteID:  uuid.New().String(),
		Amount:  2500,
		DueDate: "2026-10-15",
	})
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(bill.Code, "BILL-"))

	assert.Len(t, outbox.created, 1)
	event := outbox.created[0]
	assert.Equal(t, "bill.issued", event.EventType)
	assert.Equal(t, bill.ID.String(), event.AggregateID)
	assert.Equal(t, kafka.OutboxStatusPending, event.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_SOA_OutstandingSum(t *testing.T) {
	svc, mock, _ := newMockService(t)
	siteID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "code", "site_id", "amount", "due_date", "status"}).
		AddRow(uuid.New(), "BILL-AAAA0001", siteID, 100.0, time.Now(), StatusOutstanding).
		AddRow(uuid.New(), "BILL-AAAA0002", siteID, 50.0, time.Now(), StatusPaid).
		AddRow(uuid.New(), "BILL-AAAA0003", siteID, 75.5, time.Now(), StatusOutstanding)

	mock.ExpectQuery(`SELECT \* FROM "bills" WHERE site_id = \$1 ORDER BY due_date ASC`).
		WillReturnRows(rows)

	out, err := svc.SOA(context.Background(), resource.ListQuery{
		Equals: map[string]string{"site_id": siteID.String()},
	})
	assert.NoError(t, err)
	assert.Len(t, out.Items, 3)
	assert.InDelta(t, 175.5, out.Outstanding, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}
