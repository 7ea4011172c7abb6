package complaint

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/events"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/messaging/kafka"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/resource"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/contextutil"
)

const listLimit = 200

//go:generate mockgen -source=complaint_service.go -destination=mock/complaint_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, clientID string, req ComplaintRequest) (*Complaint, error)
	List(ctx context.Context) ([]Complaint, error)
	Resolve(ctx context.Context, id string) (*Complaint, error)
}

type service struct {
	db     *gorm.DB
	outbox kafka.OutboxRepository
}

func NewService(db *gorm.DB, outbox kafka.OutboxRepository) Service {
	return &service{db: db, outbox: outbox}
}

// Create menulis komplain dan event lifecycle-nya dalam satu transaksi.
func (s *service) Create(ctx context.Context, clientID string, req ComplaintRequest) (*Complaint, error) {
	row, err := req.toEntity(clientID)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(row).Error; err != nil {
			return resource.MapStorageError(err)
		}

		payload, err := json.Marshal(events.ComplaintCreatedEvent{
			EventType:   "complaint.created",
			ComplaintID: row.ID.String(),
			SiteID:      row.SiteID.String(),
			ClientID:    row.ClientID.String(),
			OccurredAt:  time.Now().UTC(),
		})
		if err != nil {
			return apperror.Wrap(err, apperror.CodeInternalError, "An unexpected error occurred", 500)
		}

		return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     contextutil.GetRequestID(ctx),
			AggregateType: "complaint",
			AggregateID:   row.ID.String(),
			EventType:     "complaint.created",
			Topic:         events.ComplaintLifecycleTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		})
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (s *service) List(ctx context.Context) ([]Complaint, error) {
	var rows []Complaint
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(listLimit).
		Find(&rows).Error
	if err != nil {
		return nil, resource.MapStorageError(err)
	}
	return rows, nil
}

func (s *service) Resolve(ctx context.Context, id string) (*Complaint, error) {
	complaintID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.InvalidField("Complaint Id")
	}

	var row Complaint
	if err := s.db.WithContext(ctx).First(&row, "id = ?", complaintID).Error; err != nil {
		return nil, resource.MapStorageError(err)
	}

	row.Status = StatusResolved
	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return nil, resource.MapStorageError(err)
	}
	return &row, nil
}
