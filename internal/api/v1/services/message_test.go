package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusgig/campusgig/internal/apperr"
)

func TestSendMessage(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	alex := e.createUser(t, "Alex", "alex@example.com")
	blake := e.createUser(t, "Blake", "blake@example.com")

	msg, err := e.Messages.Send(ctx, alex.ID, blake.ID, "hey, is the couch job still open?")
	require.NoError(t, err)
	require.Equal(t, alex.ID, msg.SenderID)
	require.Equal(t, blake.ID, msg.ReceiverID)
	require.Equal(t, "hey, is the couch job still open?", msg.Message)
	require.False(t, msg.IsRead)
	require.NotNil(t, msg.Sender)
	require.Equal(t, "Alex", msg.Sender.Name)

	// Unknown receiver
	_, err = e.Messages.Send(ctx, alex.ID, 9999, "anyone there?")
	require.True(t, apperr.IsKind(err, apperr.KindNotFound), "got: %v", err)

	// Messaging yourself
	_, err = e.Messages.Send(ctx, alex.ID, alex.ID, "note to self")
	require.True(t, apperr.IsKind(err, apperr.KindInvalidOperation), "got: %v", err)
}

func TestConversationMarksRead(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	alex := e.createUser(t, "Alex", "alex@example.com")
	blake := e.createUser(t, "Blake", "blake@example.com")

	_, err := e.Messages.Send(ctx, alex.ID, blake.ID, "first")
	require.NoError(t, err)
	_, err = e.Messages.Send(ctx, blake.ID, alex.ID, "second")
	require.NoError(t, err)
	_, err = e.Messages.Send(ctx, alex.ID, blake.ID, "third")
	require.NoError(t, err)

	unread, err := e.Messages.UnreadCount(ctx, blake.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), unread)

	// Reading the conversation returns both directions oldest first and
	// marks the other side's messages read
	messages, err := e.Messages.Conversation(ctx, blake.ID, alex.ID)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	require.Equal(t, "first", messages[0].Message)
	require.Equal(t, "second", messages[1].Message)
	require.Equal(t, "third", messages[2].Message)

	unread, err = e.Messages.UnreadCount(ctx, blake.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), unread)

	// Alex's own unread message from Blake is untouched
	unread, err = e.Messages.UnreadCount(ctx, alex.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), unread)
}

func TestConversationSummaries(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	alex := e.createUser(t, "Alex", "alex@example.com")
	blake := e.createUser(t, "Blake", "blake@example.com")
	casey := e.createUser(t, "Casey", "casey@example.com")

	_, err := e.Messages.Send(ctx, blake.ID, alex.ID, "from blake")
	require.NoError(t, err)
	_, err = e.Messages.Send(ctx, casey.ID, alex.ID, "from casey")
	require.NoError(t, err)
	_, err = e.Messages.Send(ctx, casey.ID, alex.ID, "from casey again")
	require.NoError(t, err)

	conversations, err := e.Messages.Conversations(ctx, alex.ID)
	require.NoError(t, err)
	require.Len(t, conversations, 2)

	// Most recent conversation first
	require.Equal(t, casey.ID, conversations[0].User.ID)
	require.Equal(t, "from casey again", conversations[0].LastMessage.Message)
	require.Equal(t, 2, conversations[0].UnreadCount)

	require.Equal(t, blake.ID, conversations[1].User.ID)
	require.Equal(t, "from blake", conversations[1].LastMessage.Message)
	require.Equal(t, 1, conversations[1].UnreadCount)
}
