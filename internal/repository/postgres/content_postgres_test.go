package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/repository"
)

func newMockStore(t *testing.T) (*ContentPostgres, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewContentPostgres(db), mock, func() { db.Close() }
}

func recordRows(id string, data string, ts time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "data", "created_at", "updated_at"}).
		AddRow(id, []byte(data), ts, ts)
}

func TestContentPostgres_Create(t *testing.T) {
	store, mock, done := newMockStore(t)
	defer done()

	now := time.Now().UTC()
	mock.ExpectQuery("INSERT INTO records").
		WithArgs("skills", []byte(`{"icon":"bx bxl-go","name":"Go"}`)).
		WillReturnRows(recordRows("gen-id", `{"name":"Go","icon":"bx bxl-go"}`, now))

	rec, err := store.Create(context.Background(), "skills", map[string]any{
		"name": "Go",
		"icon": "bx bxl-go",
	})

	assert.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "gen-id", rec.ID)
	assert.Equal(t, "Go", rec.Fields["name"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentPostgres_Get(t *testing.T) {
	store, mock, done := newMockStore(t)
	defer done()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM records").
			WithArgs("blogs", "blog-1").
			WillReturnRows(recordRows("blog-1", `{"title":"Post"}`, time.Now()))

		rec, err := store.Get(context.Background(), "blogs", "blog-1")

		assert.NoError(t, err)
		assert.Equal(t, "Post", rec.Fields["title"])
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM records").
			WithArgs("blogs", "missing").
			WillReturnError(sql.ErrNoRows)

		rec, err := store.Get(context.Background(), "blogs", "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, rec)
	})
}

func TestContentPostgres_List(t *testing.T) {
	store, mock, done := newMockStore(t)
	defer done()

	t.Run("default order", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "data", "created_at", "updated_at"}).
			AddRow("a", []byte(`{"position":"Dev"}`), time.Now(), time.Now()).
			AddRow("b", []byte(`{"position":"Intern"}`), time.Now(), time.Now())

		mock.ExpectQuery(`SELECT (.+) FROM records WHERE collection = \$1 ORDER BY created_at DESC`).
			WithArgs("experiences").
			WillReturnRows(rows)

		recs, err := store.List(context.Background(), "experiences", repository.ListQuery{})

		assert.NoError(t, err)
		assert.Len(t, recs, 2)
	})

	t.Run("equality filter", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) AND data @> \$2::jsonb ORDER BY created_at DESC`).
			WithArgs("blogs", []byte(`{"published":true}`)).
			WillReturnRows(recordRows("blog-1", `{"published":true}`, time.Now()))

		recs, err := store.List(context.Background(), "blogs", repository.ListQuery{
			Filter: map[string]any{"published": true},
		})

		assert.NoError(t, err)
		assert.Len(t, recs, 1)
	})

	t.Run("order by data field ascending", func(t *testing.T) {
		mock.ExpectQuery(`ORDER BY data->'name' ASC`).
			WithArgs("skills").
			WillReturnRows(recordRows("s1", `{"name":"Go"}`, time.Now()))

		recs, err := store.List(context.Background(), "skills", repository.ListQuery{
			OrderField: "name",
			Ascending:  true,
		})

		assert.NoError(t, err)
		assert.Len(t, recs, 1)
	})
}

func TestContentPostgres_Update(t *testing.T) {
	store, mock, done := newMockStore(t)
	defer done()

	mock.ExpectQuery("UPDATE records").
		WithArgs("contactSubmissions", "msg-1", []byte(`{"status":"read"}`)).
		WillReturnRows(recordRows("msg-1", `{"status":"read"}`, time.Now()))

	rec, err := store.Update(context.Background(), "contactSubmissions", "msg-1", map[string]any{
		"status": "read",
	})

	assert.NoError(t, err)
	assert.Equal(t, "read", rec.Fields["status"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentPostgres_Delete(t *testing.T) {
	store, mock, done := newMockStore(t)
	defer done()

	mock.ExpectExec("DELETE FROM records").
		WithArgs("projects", "proj-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Delete(context.Background(), "projects", "proj-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderExpr(t *testing.T) {
	tests := []struct {
		name string
		q    repository.ListQuery
		want string
	}{
		{"default", repository.ListQuery{}, "created_at DESC, id DESC"},
		{"createdAt alias", repository.ListQuery{OrderField: "createdAt"}, "created_at DESC, id DESC"},
		{"timestamp alias", repository.ListQuery{OrderField: "timestamp"}, "created_at DESC, id DESC"},
		// Jsonb comparison, not text extraction: {"order": 10} must sort
		// after {"order": 2}.
		{"numeric data field", repository.ListQuery{OrderField: "order", Ascending: true}, "data->'order' ASC, id ASC"},
		{"string data field", repository.ListQuery{OrderField: "name", Ascending: true}, "data->'name' ASC, id ASC"},
		{"rejects injection", repository.ListQuery{OrderField: "x'; DROP TABLE records; --"}, "created_at DESC, id DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderExpr(tt.q))
		})
	}
}
