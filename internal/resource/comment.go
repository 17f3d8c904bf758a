package resource

import "scribe/internal/model"

// Comment is the public projection of a comment.
type Comment struct {
	ID        uint   `json:"id"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	UserID    uint   `json:"user_id"`
	PostID    uint   `json:"post_id"`
	User      *User  `json:"user,omitempty"`
	Post      *Post  `json:"post,omitempty"`
}

// NewComment builds the comment resource, embedding only the relations the
// caller actually loaded.
func NewComment(c *model.Comment, withUser, withPost bool) *Comment {
	res := &Comment{
		ID:        c.ID,
		Body:      c.Body,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
		UserID:    c.UserID,
		PostID:    c.PostID,
	}
	if withUser {
		res.User = NewUser(c.User)
	}
	if withPost && c.Post != nil {
		res.Post = NewPost(c.Post, false, false)
	}
	return res
}

// NewCommentCollection builds resources for a page of comments.
func NewCommentCollection(comments []model.Comment, withUser bool) []*Comment {
	out := make([]*Comment, 0, len(comments))
	for i := range comments {
		out = append(out, NewComment(&comments[i], withUser, false))
	}
	return out
}
