package entity

import "time"

// UnreadMarker is the per-user, per-conversation read watermark. Unread
// counts are computed as the number of other users' messages newer than
// LastReadAt; a missing marker means every message is unread.
type UnreadMarker struct {
	UserID         string    `json:"userId" firestore:"userId"`
	ConversationID string    `json:"conversationId" firestore:"conversationId"`
	LastReadAt     time.Time `json:"lastReadAt" firestore:"lastReadAt"`
}

// UnreadMarkerID derives the marker document ID so each (user, conversation)
// pair maps to exactly one document.
func UnreadMarkerID(userID, conversationID string) string {
	return userID + "_" + conversationID
}
