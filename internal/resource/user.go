package resource

import "scribe/internal/model"

// User is the public projection of a user. Null fields are omitted, so a
// nested identity projection only emits id, name and email. The password
// hash is never part of this shape.
type User struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name,omitempty"`
	Email           string  `json:"email,omitempty"`
	EmailVerifiedAt *string `json:"email_verified_at,omitempty"`
	CreatedAt       *string `json:"created_at,omitempty"`
	UpdatedAt       *string `json:"updated_at,omitempty"`
}

// NewUser builds the user resource.
func NewUser(u *model.User) *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		EmailVerifiedAt: formatTimePtr(u.EmailVerifiedAt),
		CreatedAt:       formatTimePtr(&u.CreatedAt),
		UpdatedAt:       formatTimePtr(&u.UpdatedAt),
	}
}

// NewUserCollection builds resources for a page of users.
func NewUserCollection(users []model.User) []*User {
	out := make([]*User, 0, len(users))
	for i := range users {
		out = append(out, NewUser(&users[i]))
	}
	return out
}
