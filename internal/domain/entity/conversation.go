package entity

import "time"

// PublicConversationID is the fixed document ID of the single community
// conversation. It is created lazily on first access.
const PublicConversationID = "public"

// PublicParticipant is the sentinel uid stored in the public conversation's
// participant list.
const PublicParticipant = "public"

type LastMessage struct {
	Text      string    `json:"text" firestore:"text"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
	SenderUID string    `json:"senderUid" firestore:"senderUid"`
}

type Conversation struct {
	ID                  string        `json:"id" firestore:"id"`
	IsPublic            bool          `json:"isPublic" firestore:"isPublic"`
	Participants        []string      `json:"participantUids" firestore:"participants"`
	ParticipantsDetails []UserProfile `json:"participantsDetails" firestore:"participantsDetails"`
	LastMessage         *LastMessage  `json:"lastMessage" firestore:"lastMessage"`
	CreatedAt           time.Time     `json:"created_at" firestore:"createdAt"`
	UpdatedAt           time.Time     `json:"updated_at" firestore:"updatedAt"`
}

// DirectConversationID derives the document ID for a direct conversation
// from the sorted pair of participant uids, so both parties resolve to the
// same document regardless of call order.
func DirectConversationID(uid1, uid2 string) string {
	if uid2 < uid1 {
		uid1, uid2 = uid2, uid1
	}
	return uid1 + "_" + uid2
}

func (c *Conversation) HasParticipant(uid string) bool {
	if c.IsPublic {
		return true
	}
	for _, p := range c.Participants {
		if p == uid {
			return true
		}
	}
	return false
}
