package site

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/resource"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
)

// Tabel anak yang ikut terhapus saat site dihapus. Guard TIDAK ikut:
// referensinya weak, dibiarkan dangling dan jatuh ke fallback enrichment.
var childTables = []string{
	"shifts",
	"attendances",
	"spends",
	"night_rounds",
	"training_reports",
	"salary_disbursements",
	"complaints",
	"ratings",
	"bills",
}

// Kolom yang di-update saat bulk upsert menabrak id yang sudah ada.
var upsertColumns = []string{
	"name", "location", "strength", "rate_per_guard",
	"agreement_start", "agreement_end",
	"area_officer_name", "area_officer_phone", "cro_name", "cro_phone",
}

//go:generate mockgen -source=site_service.go -destination=mock/site_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, q resource.ListQuery) ([]Site, error)
	GetByID(ctx context.Context, id string) (*Site, error)
	Create(ctx context.Context, req SiteRequest) (*Site, error)
	Update(ctx context.Context, id string, req UpdateSiteRequest) (*Site, error)
	Delete(ctx context.Context, id string) error
	BulkUpsert(ctx context.Context, items []SiteRequest) (int, error)
}

type service struct {
	db    *gorm.DB
	store *resource.Store[Site]
}

func Descriptor() resource.Descriptor {
	return resource.Descriptor{
		DateColumn: "created_at",
		Filters:    map[string]string{"client_id": "client_id"},
	}
}

func NewService(db *gorm.DB) Service {
	return &service{db: db, store: resource.NewStore[Site](db, Descriptor())}
}

func (s *service) List(ctx context.Context, q resource.ListQuery) ([]Site, error) {
	return s.store.List(ctx, q)
}

func (s *service) GetByID(ctx context.Context, id string) (*Site, error) {
	siteID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.InvalidField("Site Id")
	}
	return s.store.Get(ctx, siteID)
}

func (s *service) Create(ctx context.Context, req SiteRequest) (*Site, error) {
	row, err := req.toEntity()
	if err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateSiteRequest) (*Site, error) {
	row, err := s.GetByID(ctx, id)
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

// Delete menghapus site beserta seluruh record anaknya dalam satu transaksi.
func (s *service) Delete(ctx context.Context, id string) error {
	siteID, err := uuid.Parse(id)
	if err != nil {
		return apperror.InvalidField("Site Id")
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range childTables {
			if err := tx.Table(table).Where("site_id = ?", siteID).Delete(nil).Error; err != nil {
				return resource.MapStorageError(err)
			}
		}

		res := tx.Delete(&Site{}, "id = ?", siteID)
		if res.Error != nil {
			return resource.MapStorageError(res.Error)
		}
		if res.RowsAffected == 0 {
			return apperror.ErrNotFound
		}
		return nil
	})
}

// BulkUpsert meniru bulkCreate+updateOnDuplicate versi lama, tapi atomic.
func (s *service) BulkUpsert(ctx context.Context, items []SiteRequest) (int, error) {
	if len(items) == 0 {
		return 0, apperror.New(apperror.CodeInvalidInput, "no_items", 400)
	}

	rows := make([]Site, 0, len(items))
	for _, item := range items {
		row, err := item.toEntity()
		if err != nil {
			return 0, err
		}
		rows = append(rows, *row)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(upsertColumns),
		}).Create(&rows).Error
	})
	if err != nil {
		return 0, resource.MapStorageError(err)
	}
	return len(rows), nil
}
