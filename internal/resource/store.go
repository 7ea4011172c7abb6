package resource

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
)

// Store adalah komponen query generik yang dipakai semua modul resource:
// list terfilter + get + create + update + delete + bulk insert.
// Dulu pola ini di-copy-paste per modul; sekarang satu implementasi.
type Store[T any] struct {
	db *gorm.DB
	d  Descriptor
}

func NewStore[T any](db *gorm.DB, d Descriptor) *Store[T] {
	return &Store[T]{db: db, d: d}
}

func (s *Store[T]) DB() *gorm.DB {
	return s.db
}

// List menjalankan konjungsi filter equality + range tanggal, sort default
// DESC pada kolom tanggal natural entity.
func (s *Store[T]) List(ctx context.Context, q ListQuery) ([]T, error) {
	tx := s.db.WithContext(ctx).Model(new(T))

	for column, value := range q.Equals {
		tx = tx.Where(column+" = ?", value)
	}

	if s.d.DateColumn != "" && (q.From != "" || q.To != "") {
		from := q.From
		if from == "" {
			from = "1970-01-01"
		}
		to := q.To
		if to == "" {
			to = "2999-12-31"
		}
		tx = tx.Where(s.d.DateColumn+" BETWEEN ? AND ?", from, to)
	}

	if s.d.DateColumn != "" {
		tx = tx.Order(s.d.DateColumn + " DESC")
	}

	var rows []T
	err := tx.Limit(q.Limit).Offset(q.Offset).Find(&rows).Error
	if err != nil {
		return nil, MapStorageError(err)
	}
	return rows, nil
}

// Latest mengambil satu row terbaru (order DESC kolom tanggal) yang cocok
// dengan semua equality condition. Tidak ada row = (nil, nil), bukan error;
// endpoint /latest memang membalas null.
func (s *Store[T]) Latest(ctx context.Context, equals map[string]any) (*T, error) {
	tx := s.db.WithContext(ctx).Model(new(T))
	for column, value := range equals {
		tx = tx.Where(column+" = ?", value)
	}
	if s.d.DateColumn != "" {
		tx = tx.Order(s.d.DateColumn + " DESC")
	}

	var row T
	err := tx.First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, MapStorageError(err)
	}
	return &row, nil
}

func (s *Store[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	var row T
	err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		return nil, MapStorageError(err)
	}
	return &row, nil
}

func (s *Store[T]) Create(ctx context.Context, row *T) error {
	return MapStorageError(s.db.WithContext(ctx).Create(row).Error)
}

func (s *Store[T]) Save(ctx context.Context, row *T) error {
	return MapStorageError(s.db.WithContext(ctx).Save(row).Error)
}

func (s *Store[T]) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return MapStorageError(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.ErrNotFound
	}
	return nil
}

// BulkCreate memasukkan semua row dalam satu transaksi: atomic, tidak ada
// partial insert seperti perilaku lama.
func (s *Store[T]) BulkCreate(ctx context.Context, rows []T) (int, error) {
	if len(rows) == 0 {
		return 0, apperror.New(apperror.CodeInvalidInput, "no_items", 400)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
	if err != nil {
		return 0, MapStorageError(err)
	}
	return len(rows), nil
}

// MapStorageError menerjemahkan error driver ke taksonomi apperror.
// Pesan mentah driver tidak pernah bocor ke client.
func MapStorageError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return apperror.Wrap(err, apperror.CodeConflict, "Resource already exists", 409)
		case "23503":
			return apperror.Wrap(err, apperror.CodeInvalidInput, "Referenced resource does not exist", 400)
		}
	}

	return apperror.Wrap(err, apperror.CodeInternalError, "An unexpected error occurred", 500)
}
