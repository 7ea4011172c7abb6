package complaint

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/events"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/messaging/kafka"
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
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error           { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id, reason string) error { return nil }

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

func TestService_Create(t *testing.T) {
	svc, mock, outbox := newMockService(t)
	clientID := uuid.New()
	siteID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "complaints"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	row, err := svc.Create(context.Background(), clientID.String(), ComplaintRequest{
		SiteID:        siteID.String(),
		ComplaintText: "Guard missing from post",
	})
	assert.NoError(t, err)
	assert.Equal(t, clientID, row.ClientID)
	assert.Equal(t, StatusOpen, row.Status)

	assert.Len(t, outbox.created, 1)
	event := outbox.created[0]
	assert.Equal(t, events.ComplaintLifecycleTopic, event.Topic)
	assert.Equal(t, "complaint.created", event.EventType)

	var payload events.ComplaintCreatedEvent
	assert.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, row.ID.String(), payload.ComplaintID)
	assert.Equal(t, clientID.String(), payload.ClientID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_OutboxFailureRollsBack(t *testing.T) {
	svc, mock, outbox := newMockService(t)
	outbox.err = assert.AnError

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "complaints"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), uuid.New().String(), ComplaintRequest{
		SiteID:        uuid.New().String(),
		ComplaintText: "x",
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_BadClientID(t *testing.T) {
	svc, _, _ := newMockService(t)

	_, err := svc.Create(context.Background(), "not-a-uuid", ComplaintRequest{
		SiteID:        uuid.New().String(),
		ComplaintText: "x",
	})
	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
}

func TestService_Resolve(t *testing.T) {
	svc, mock, _ := newMockService(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "complaints" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "site_id", "client_id", "complaint_text", "status", "created_at", "updated_at"}).
			AddRow(id, uuid.New(), uuid.New(), "noise", StatusOpen, time.Now(), time.Now()))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "complaints" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	row, err := svc.Resolve(context.Background(), id.String())
	assert.NoError(t, err)
	assert.Equal(t, StatusResolved, row.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Resolve_NotFound(t *testing.T) {
	svc, mock, _ := newMockService(t)

	mock.ExpectQuery(`SELECT \* FROM "complaints" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Resolve(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
