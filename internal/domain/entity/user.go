package entity

import "time"

type User struct {
	ID        string    `json:"id" firestore:"id"`
	Email     string    `json:"email" firestore:"email"`
	Username  string    `json:"username" firestore:"username"`
	PhotoURL  string    `json:"photoURL,omitempty" firestore:"photoURL,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// UserProfile is the snapshot of a user embedded into conversations.
type UserProfile struct {
	UID      string `json:"uid" firestore:"uid"`
	Username string `json:"username" firestore:"username"`
	Email    string `json:"email" firestore:"email"`
	PhotoURL string `json:"photoURL,omitempty" firestore:"photoURL,omitempty"`
}

func (u *User) Profile() UserProfile {
	return UserProfile{
		UID:      u.ID,
		Username: u.Username,
		Email:    u.Email,
		PhotoURL: u.PhotoURL,
	}
}
