package resource

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scribe/internal/model"
	"scribe/internal/repository"
)

func marshalKeys(t *testing.T, v interface{}) map[string]json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &keys))
	return keys
}

func TestUserResourceNeverExposesSecrets(t *testing.T) {
	user := &model.User{
		ID:           1,
		Name:         "A",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$secret",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	raw, err := json.Marshal(NewUser(user))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
	assert.NotContains(t, string(raw), "password")
}

func TestUserResourceOmitsNullFields(t *testing.T) {
	// An identity projection carries only id, name and email.
	projected := &model.User{ID: 1, Name: "A", Email: "a@x.com"}

	keys := marshalKeys(t, NewUser(projected))
	assert.Contains(t, keys, "id")
	assert.Contains(t, keys, "name")
	assert.Contains(t, keys, "email")
	assert.NotContains(t, keys, "created_at")
	assert.NotContains(t, keys, "updated_at")
	assert.NotContains(t, keys, "email_verified_at")
}

func TestPostResourceRelationLoading(t *testing.T) {
	now := time.Now()
	post := &model.Post{
		ID:        1,
		UserID:    2,
		Title:     "T",
		Body:      "B",
		CreatedAt: now,
		UpdatedAt: now,
		User:      &model.User{ID: 2, Name: "A", Email: "a@x.com"},
	}

	t.Run("unloaded relations are absent, not null", func(t *testing.T) {
		keys := marshalKeys(t, NewPost(post, false, false))
		assert.NotContains(t, keys, "user")
		assert.NotContains(t, keys, "comments")
	})

	t.Run("loaded user is embedded", func(t *testing.T) {
		keys := marshalKeys(t, NewPost(post, true, false))
		assert.Contains(t, keys, "user")
	})

	t.Run("loaded but empty comments serialize as empty array", func(t *testing.T) {
		keys := marshalKeys(t, NewPost(post, false, true))
		require.Contains(t, keys, "comments")
		assert.Equal(t, "[]", string(keys["comments"]))
	})
}

func TestCommentResourceRelationLoading(t *testing.T) {
	comment := &model.Comment{ID: 1, UserID: 2, PostID: 3, Body: "C"}

	keys := marshalKeys(t, NewComment(comment, false, false))
	assert.NotContains(t, keys, "user")
	assert.NotContains(t, keys, "post")
	assert.Contains(t, keys, "user_id")
	assert.Contains(t, keys, "post_id")
}

func TestTimestampFormat(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	post := &model.Post{ID: 1, CreatedAt: created, UpdatedAt: created}

	res := NewPost(post, false, false)
	assert.Equal(t, "2024-05-01T12:30:00Z", res.CreatedAt)
}

func TestNewPaginated(t *testing.T) {
	page := repository.Page{Number: 2, Size: 5}

	t.Run("middle page has prev and next links", func(t *testing.T) {
		items := []int{1, 2, 3, 4, 5}
		p := NewPaginated(items, page, 12, "/api/posts")

		assert.Equal(t, 2, p.Meta.CurrentPage)
		assert.Equal(t, 3, p.Meta.LastPage)
		assert.Equal(t, int64(12), p.Meta.Total)
		require.NotNil(t, p.Meta.From)
		require.NotNil(t, p.Meta.To)
		assert.Equal(t, 6, *p.Meta.From)
		assert.Equal(t, 10, *p.Meta.To)

		assert.Equal(t, "/api/posts?page=1", p.Links.First)
		assert.Equal(t, "/api/posts?page=3", p.Links.Last)
		require.NotNil(t, p.Links.Prev)
		require.NotNil(t, p.Links.Next)
		assert.Equal(t, "/api/posts?page=1", *p.Links.Prev)
		assert.Equal(t, "/api/posts?page=3", *p.Links.Next)
	})

	t.Run("empty result set has null from and to", func(t *testing.T) {
		p := NewPaginated([]int{}, repository.Page{}, 0, "/api/posts")

		assert.Nil(t, p.Meta.From)
		assert.Nil(t, p.Meta.To)
		assert.Equal(t, 1, p.Meta.LastPage)
		assert.Nil(t, p.Links.Prev)
		assert.Nil(t, p.Links.Next)
	})

	t.Run("nil data serializes as empty array", func(t *testing.T) {
		p := NewPaginated[int](nil, repository.Page{}, 0, "/api/posts")
		raw, err := json.Marshal(p)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"data":[]`)
	})
}
