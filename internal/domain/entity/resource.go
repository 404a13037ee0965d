package entity

import "time"

type Resource struct {
	ID          string    `json:"id" firestore:"id"`
	Title       string    `json:"title" firestore:"title"`
	URL         string    `json:"url" firestore:"url"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	Tags        []string  `json:"tags,omitempty" firestore:"tags,omitempty"`
	CreatedBy   string    `json:"created_by" firestore:"createdBy"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}
