package resource

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NameResolver menyelesaikan foreign-key id → nama tampilan dengan satu
// batch query per jenis referensi. Murni untuk display, bukan join dengan
// makna referential integrity.
type NameResolver struct {
	db *gorm.DB
}

func NewNameResolver(db *gorm.DB) *NameResolver {
	return &NameResolver{db: db}
}

type nameRow struct {
	ID   uuid.UUID
	Name string
}

// Names mengambil kolom display untuk sekumpulan id distinct.
// Id yang tidak ketemu tidak muncul di map; caller pakai NameOf untuk fallback.
func (r *NameResolver) Names(ctx context.Context, table, nameColumn string, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	result := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	distinct := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}
	if len(distinct) == 0 {
		return result, nil
	}

	var rows []nameRow
	err := r.db.WithContext(ctx).
		Table(table).
		Select("id, "+nameColumn+" AS name").
		Where("id IN ?", distinct).
		Scan(&rows).Error
	if err != nil {
		return nil, MapStorageError(err)
	}

	for _, row := range rows {
		result[row.ID] = row.Name
	}
	return result, nil
}

// NameOf mengembalikan nama dari map hasil Names, dengan fallback stabil
// "Unknown <entity>" untuk referensi yang tidak terselesaikan.
func NameOf(names map[uuid.UUID]string, id uuid.UUID, entity string) string {
	if id == uuid.Nil {
		return ""
	}
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return "Unknown " + entity
}
