package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// sqlRecorder captures every statement the query pipeline builds. Combined
// with a dry-run session it lets tests assert generated SQL without a
// database connection.
type sqlRecorder struct {
	statements []string
	vars       [][]interface{}
}

func (r *sqlRecorder) record(tx *gorm.DB) {
	r.statements = append(r.statements, tx.Statement.SQL.String())
	r.vars = append(r.vars, append([]interface{}{}, tx.Statement.Vars...))
	// DryRun never resets the built SQL, so clear it here or the next
	// finisher on the same statement would re-execute this one verbatim.
	tx.Statement.SQL.Reset()
	tx.Statement.Vars = nil
}

func (r *sqlRecorder) last() string {
	return r.statements[len(r.statements)-1]
}

func (r *sqlRecorder) lastVars() []interface{} {
	return r.vars[len(r.vars)-1]
}

func newDryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "user:pass@tcp(127.0.0.1:3306)/scribe?charset=utf8mb4&parseTime=True",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	recorder := &sqlRecorder{}
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:record_sql", recorder.record))
	return db, recorder
}

func strPtr(s string) *string { return &s }
func uintPtr(u uint) *uint    { return &u }
func boolPtr(b bool) *bool    { return &b }

func TestPostRepositoryListSQL(t *testing.T) {
	tests := []struct {
		name         string
		filter       PostFilter
		wantContains []string
		wantAbsent   []string
		wantVars     []interface{}
	}{
		{
			name:       "no filters adds no predicates",
			filter:     PostFilter{},
			wantAbsent: []string{"WHERE"},
		},
		{
			name:       "empty strings add no predicates",
			filter:     PostFilter{Title: strPtr(""), Body: strPtr("")},
			wantAbsent: []string{"WHERE"},
		},
		{
			name:         "title substring filter",
			filter:       PostFilter{Title: strPtr("go")},
			wantContains: []string{"title LIKE ?"},
			wantVars:     []interface{}{"%go%"},
		},
		{
			name:         "body substring filter",
			filter:       PostFilter{Body: strPtr("generics")},
			wantContains: []string{"body LIKE ?"},
			wantVars:     []interface{}{"%generics%"},
		},
		{
			name:         "author filter is an equality predicate",
			filter:       PostFilter{UserID: uintPtr(42)},
			wantContains: []string{"user_id = ?"},
			wantVars:     []interface{}{uint(42)},
		},
		{
			name:         "with comments requires a matching comment row",
			filter:       PostFilter{WithComments: boolPtr(true)},
			wantContains: []string{"EXISTS (SELECT 1 FROM comments WHERE comments.post_id = posts.id)"},
			wantAbsent:   []string{"NOT EXISTS"},
		},
		{
			name:         "without comments excludes posts with any comment",
			filter:       PostFilter{WithComments: boolPtr(false)},
			wantContains: []string{"NOT EXISTS (SELECT 1 FROM comments WHERE comments.post_id = posts.id)"},
		},
		{
			name:   "filters combine with AND",
			filter: PostFilter{Title: strPtr("go"), UserID: uintPtr(42)},
			wantContains: []string{
				"title LIKE ?",
				"user_id = ?",
				" AND ",
			},
			wantVars: []interface{}{"%go%", uint(42)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, recorder := newDryRunDB(t)
			repo := NewPostRepository(db)

			_, _, err := repo.List(context.Background(), tt.filter, Page{})
			require.NoError(t, err)

			// The count query runs first, then the page query.
			require.Len(t, recorder.statements, 2)
			sql := recorder.last()

			for _, want := range tt.wantContains {
				assert.Contains(t, sql, want)
				// The count query applies the same predicates as the page.
				assert.Contains(t, recorder.statements[0], want)
			}
			for _, absent := range tt.wantAbsent {
				assert.NotContains(t, sql, absent)
			}
			for _, v := range tt.wantVars {
				assert.Contains(t, recorder.lastVars(), v)
			}

			assert.Contains(t, sql, "ORDER BY created_at DESC, id DESC")
		})
	}
}

func TestPostRepositoryListByUserSQL(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewPostRepository(db)

	_, _, err := repo.ListByUser(context.Background(), 7, Page{})
	require.NoError(t, err)

	sql := recorder.last()
	assert.Contains(t, sql, "user_id = ?")
	assert.Contains(t, recorder.lastVars(), uint(7))
	assert.Contains(t, sql, "ORDER BY id")
}

func TestUserFilterSQL(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewUserRepository(db)

	_, _, err := repo.List(context.Background(), UserFilter{Name: strPtr("ada"), Email: strPtr("@example.com")}, Page{})
	require.NoError(t, err)

	sql := recorder.last()
	assert.Contains(t, sql, "name LIKE ?")
	assert.Contains(t, sql, "email LIKE ?")
	assert.Contains(t, recorder.lastVars(), "%ada%")
	assert.Contains(t, recorder.lastVars(), "%@example.com%")
}
