package entity

import "time"

type Goal struct {
	ID          string    `json:"id" firestore:"id"`
	UserID      string    `json:"user_id" firestore:"userId"`
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	TargetDate  time.Time `json:"target_date,omitempty" firestore:"targetDate,omitempty"`
	Completed   bool      `json:"completed" firestore:"completed"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}
