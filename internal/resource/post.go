package resource

import "scribe/internal/model"

// Post is the public projection of a post. Comments use a slice pointer so
// "loaded but empty" still serializes as [] while "not loaded" disappears
// from the output.
type Post struct {
	ID        uint       `json:"id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	CreatedAt string     `json:"created_at"`
	UpdatedAt string     `json:"updated_at"`
	UserID    uint       `json:"user_id"`
	User      *User      `json:"user,omitempty"`
	Comments  *[]Comment `json:"comments,omitempty"`
}

// NewPost builds the post resource, embedding only the relations the caller
// actually loaded.
func NewPost(p *model.Post, withUser, withComments bool) *Post {
	res := &Post{
		ID:        p.ID,
		Title:     p.Title,
		Body:      p.Body,
		CreatedAt: formatTime(p.CreatedAt),
		UpdatedAt: formatTime(p.UpdatedAt),
		UserID:    p.UserID,
	}
	if withUser {
		res.User = NewUser(p.User)
	}
	if withComments {
		comments := make([]Comment, 0, len(p.Comments))
		for i := range p.Comments {
			comments = append(comments, *NewComment(&p.Comments[i], false, false))
		}
		res.Comments = &comments
	}
	return res
}

// NewPostCollection builds resources for a page of posts.
func NewPostCollection(posts []model.Post, withUser bool) []*Post {
	out := make([]*Post, 0, len(posts))
	for i := range posts {
		out = append(out, NewPost(&posts[i], withUser, false))
	}
	return out
}
