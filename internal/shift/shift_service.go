package shift

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/resource"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
)

//go:generate mockgen -source=shift_service.go -destination=mock/shift_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, q resource.ListQuery) ([]Shift, error)
	LatestDayBreakdown(ctx context.Context, siteID string) ([]ShiftTypeCount, error)
	LatestDayTotal(ctx context.Context, siteID string) (int, error)
	Create(ctx context.Context, req ShiftRequest) (*Shift, error)
	BulkCreate(ctx context.Context, items []ShiftRequest) (int, error)
}

type service struct {
	store *resource.Store[Shift]
}

func Descriptor() resource.Descriptor {
	return resource.Descriptor{
		DateColumn:   "date",
		Filters:      map[string]string{"siteId": "site_id"},
		DefaultLimit: 1000,
	}
}

func NewService(db *gorm.DB) Service {
	return &service{store: resource.NewStore[Shift](db, Descriptor())}
}

func (s *service) List(ctx context.Context, q resource.ListQuery) ([]Shift, error) {
	return s.store.List(ctx, q)
}

// latestDayRows mengambil shift hari terakhir yang tercatat untuk sebuah site.
func (s *service) latestDayRows(ctx context.Context, siteID string) ([]Shift, error) {
	if _, err := uuid.Parse(siteID); err != nil {
		return nil, apperror.New(apperror.CodeInvalidInput, "siteId_required", 400)
	}

	rows, err := s.store.List(ctx, resource.ListQuery{
		Equals: map[string]string{"site_id": siteID},
		Limit:  resource.MaxLimit,
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	// rows sudah urut date DESC; ambil yang setanggal dengan baris pertama
	latest := rows[0].Date
	sameDay := rows[:0:0]
	for _, r := range rows {
		if r.Date.Equal(latest) {
			sameDay = append(sameDay, r)
		}
	}
	return sameDay, nil
}

func (s *service) LatestDayBreakdown(ctx context.Context, siteID string) ([]ShiftTypeCount, error) {
	sameDay, err := s.latestDayRows(ctx, siteID)
	if err != nil {
		return nil, err
	}

	agg := make(map[string]int)
	for _, r := range sameDay {
		agg[r.ShiftType] += r.GuardCount
	}

	out := make([]ShiftTypeCount, 0, len(agg))
	for shiftType, guards := range agg {
		out = append(out, ShiftTypeCount{Shift: shiftType, Guards: guards})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Shift < out[j].Shift })
	return out, nil
}

func (s *service) LatestDayTotal(ctx context.Context, siteID string) (int, error) {
	sameDay, err := s.latestDayRows(ctx, siteID)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, r := range sameDay {
		total += r.GuardCount
	}
	return total, nil
}

func (s *service) Create(ctx context.Context, req ShiftRequest) (*Shift, error) {
	row, err := req.toEntity()
	if err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *service) BulkCreate(ctx context.Context, items []ShiftRequest) (int, error) {
	rows := make([]Shift, 0, len(items))
	for _, item := range items {
		row, err := item.toEntity()
		if err != nil {
			return 0, err
		}
		rows = append(rows, *row)
	}
	return s.store.BulkCreate(ctx, rows)
}
