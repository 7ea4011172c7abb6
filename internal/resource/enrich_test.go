package resource

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockResolver(t *testing.T) (*NameResolver, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	assert.NoError(t, err)
	return NewNameResolver(db), mock
}

func TestNameResolver_BatchesAndDedupes(t *testing.T) {
	resolver, mock := newMockResolver(t)
	a, b := uuid.New(), uuid.New()

	// Duplikat dan uuid.Nil tidak menambah parameter query
	mock.ExpectQuery(`SELECT id, name AS name FROM "guards" WHERE id IN \(\$1,\$2\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(a, "Guard A").
			AddRow(b, "Guard B"))

	names, err := resolver.Names(context.Background(), "guards", "name", []uuid.UUID{a, b, a, uuid.Nil})
	assert.NoError(t, err)
	assert.Equal(t, "Guard A", names[a])
	assert.Equal(t, "Guard B", names[b])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNameResolver_EmptyInputSkipsQuery(t *testing.T) {
	resolver, mock := newMockResolver(t)

	names, err := resolver.Names(context.Background(), "guards", "name", nil)
	assert.NoError(t, err)
	assert.Empty(t, names)

	names, err = resolver.Names(context.Background(), "guards", "name", []uuid.UUID{uuid.Nil})
	assert.NoError(t, err)
	assert.Empty(t, names)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNameOf(t *testing.T) {
	id := uuid.New()
	names := map[uuid.UUID]string{id: "Plant HQ"}

	assert.Equal(t, "Plant HQ", NameOf(names, id, "Site"))
	assert.Equal(t, "Unknown Site", NameOf(names, uuid.New(), "Site"))
	assert.Equal(t, "", NameOf(names, uuid.Nil, "Site"))
	assert.Equal(t, "Unknown Guard", NameOf(map[uuid.UUID]string{id: ""}, id, "Guard"))
}
