package entity

import "time"

type Message struct {
	ID             string    `json:"id" firestore:"id"`
	ConversationID string    `json:"conversationId" firestore:"conversationId"`
	UserID         string    `json:"userId" firestore:"userId"`
	Text           string    `json:"text" firestore:"text"`
	ReplyTo        string    `json:"replyTo,omitempty" firestore:"replyTo,omitempty"`
	ResourceLinks  []string  `json:"resourceLinks,omitempty" firestore:"resourceLinks,omitempty"`
	CreatedAt      time.Time `json:"createdAt" firestore:"createdAt"`
}
