package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectConversationID(t *testing.T) {
	assert.Equal(t, "u1_u2", DirectConversationID("u1", "u2"))
	assert.Equal(t, "u1_u2", DirectConversationID("u2", "u1"))
	assert.Equal(t, DirectConversationID("alice", "bob"), DirectConversationID("bob", "alice"))
}

func TestHasParticipant(t *testing.T) {
	conv := &Conversation{
		Participants: []string{"u1", "u2"},
	}

	assert.True(t, conv.HasParticipant("u1"))
	assert.True(t, conv.HasParticipant("u2"))
	assert.False(t, conv.HasParticipant("u3"))
}

func TestHasParticipantPublic(t *testing.T) {
	conv := &Conversation{
		ID:           PublicConversationID,
		IsPublic:     true,
		Participants: []string{PublicParticipant},
	}

	// The public conversation is open to everyone.
	assert.True(t, conv.HasParticipant("u1"))
	assert.True(t, conv.HasParticipant("anyone"))
}

func TestUnreadMarkerID(t *testing.T) {
	assert.Equal(t, "u1_conv1", UnreadMarkerID("u1", "conv1"))
}
