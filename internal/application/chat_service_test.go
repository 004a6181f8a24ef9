package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelay(t *testing.T) {
	c := &stubCompleter{reply: "Hi! How can I help?"}
	reply, err := NewChatService(c, quietLogger()).Relay(context.Background(), "Hello")
	require.NoError(t, err)
	assert.Equal(t, "Hi! How can I help?", reply)
	assert.Equal(t, "Hello", c.got)
}

func TestRelay_EmptyReply(t *testing.T) {
	reply, err := NewChatService(&stubCompleter{}, quietLogger()).Relay(context.Background(), "Hello")
	require.NoError(t, err)
	assert.Empty(t, reply)
}

func TestRelay_NoMessage(t *testing.T) {
	c := &stubCompleter{}
	_, err := NewChatService(c, quietLogger()).Relay(context.Background(), "")
	assert.Equal(t, KindBadRequest, KindOf(err))
	assert.Equal(t, MsgNoMessage, MessageOf(err))
	assert.Empty(t, c.got)
}

func TestRelay_NoKey(t *testing.T) {
	_, err := NewChatService(nil, quietLogger()).Relay(context.Background(), "Hello")
	assert.Equal(t, KindUnconfigured, KindOf(err))
	assert.Equal(t, MsgCompletionNoKey, MessageOf(err))
}

func TestRelay_UpstreamFailure(t *testing.T) {
	_, err := NewChatService(&stubCompleter{err: errBoom}, quietLogger()).Relay(context.Background(), "Hello")
	assert.Equal(t, KindUpstream, KindOf(err))
	assert.Equal(t, MsgServerError, MessageOf(err))
	assert.ErrorIs(t, err, errBoom)
}

func TestRelay_WhitespaceMessage(t *testing.T) {
	c := &stubCompleter{reply: "unused"}
	_, err := NewChatService(c, quietLogger()).Relay(context.Background(), " \n\t ")
	assert.Equal(t, KindBadRequest, KindOf(err))
	assert.Equal(t, MsgNoMessage, MessageOf(err))
	assert.Empty(t, c.got)
}
