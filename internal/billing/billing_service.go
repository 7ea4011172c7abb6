package billing

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

//go:generate mockgen -source=billing_service.go -destination=mock/billing_service_mock.go -package=mock
type Service interface {
	SOA(ctx context.Context, q resource.ListQuery) (*SOAResponse, error)
	List(ctx context.Context, q resource.ListQuery) ([]Bill, error)
	Create(ctx context.Context, req BillRequest) (*Bill, error)
	Update(ctx context.Context, id string, req UpdateBillRequest) (*Bill, error)
	Delete(ctx context.Context, id string) error
	BulkCreate(ctx context.Context, items []BillRequest) (int, error)
}

type service struct {
	db     *gorm.DB
	store  *resource.Store[Bill]
	outbox kafka.OutboxRepository
}

func Descriptor() resource.Descriptor {
	return resource.Descriptor{
		DateColumn: "due_date",
		Filters:    map[string]string{"siteId": "site_id"},
	}
}

func NewService(db *gorm.DB, outbox kafka.OutboxRepository) Service {
	return &service{
		db:     db,
		store:  resource.NewStore[Bill](db, Descriptor()),
		outbox: outbox,
	}
}

// SOA mengembalikan bill terurut due_date ASC plus jumlah nominal yang
// statusnya masih OUTSTANDING.
func (s *service) SOA(ctx context.Context, q resource.ListQuery) (*SOAResponse, error) {
	tx := s.db.WithContext(ctx).Model(&Bill{})
	for column, value := range q.Equals {
		tx = tx.Where(column+" = ?", value)
	}
	if q.From != "" || q.To != "" {
		from := q.From
		if from == "" {
			from = "1970-01-01"
		}
		to := q.To
		if to == "" {
			to = "2999-12-31"
		}
		tx = tx.Where("due_date BETWEEN ? AND ?", from, to)
	}

	var rows []Bill
	if err := tx.Order("due_date ASC").Find(&rows).Error; err != nil {
		return nil, resource.MapStorageError(err)
	}

	outstanding := 0.0
	for _, b := range rows {
		if b.Status == StatusOutstanding {
			outstanding += b.Amount
		}
	}
	return &SOAResponse{Items: rows, Outstanding: outstanding}, nil
}

func (s *service) List(ctx context.Context, q resource.ListQuery) ([]Bill, error) {
	return s.store.List(ctx, q)
}

// Create menulis bill dan event outbox-nya dalam satu transaksi.
func (s *service) Create(ctx context.Context, req BillRequest) (*Bill, error) {
	row, err := req.toEntity()
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(row).Error; err != nil {
			return resource.MapStorageError(err)
		}
		return s.enqueueIssued(ctx, tx, row)
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateBillRequest) (*Bill, error) {
	billID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.InvalidField("Bill Id")
	}

	row, err := s.store.Get(ctx, billID)
	if err != nil {
		return nil, err
	}
	if err := req.apply(row); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	billID, err := uuid.Parse(id)
	if err != nil {
		return apperror.InvalidField("Bill Id")
	}
	return s.store.Delete(ctx, billID)
}

// BulkCreate atomic; setiap bill yang masuk juga menghasilkan satu baris
// outbox pada transaksi yang sama.
func (s *service) BulkCreate(ctx context.Context, items []BillRequest) (int, error) {
	if len(items) == 0 {
		return 0, apperror.New(apperror.CodeInvalidInput, "no_items", 400)
	}

	rows := make([]*Bill, 0, len(items))
	for _, item := range items {
		row, err := item.toEntity()
		if err != nil {
			return 0, err
		}
		rows = append(rows, row)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			if err := tx.Create(row).Error; err != nil {
				return resource.MapStorageError(err)
			}
			if err := s.enqueueIssued(ctx, tx, row); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *service) enqueueIssued(ctx context.Context, tx *gorm.DB, row *Bill) error {
	payload, err := json.Marshal(events.BillIssuedEvent{
		EventType:  "bill.issued",
		BillID:     row.ID.String(),
		Code:       row.Code,
		SiteID:     row.SiteID.String(),
		Amount:     row.Amount,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "An unexpected error occurred", 500)
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "bill",
		AggregateID:   row.ID.String(),
		EventType:     "bill.issued",
		Topic:         events.BillingLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}
