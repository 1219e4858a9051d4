package transport

import "context"

// User identifies a chat platform account.
type User struct {
	ID    string // Opaque platform id, used as the ledger author key
	Name  string // Display name
	Admin bool   // Platform-granted admin capability
}

// Channel is the directory view of the channel a message arrived on.
type Channel interface {
	// ID returns the platform channel id.
	ID() string

	// Name returns the human channel name matched against the allow-list.
	Name() string

	// Kind returns the channel type; only "text" channels are served.
	Kind() string

	// Members returns the channel's current member list for subject-user
	// resolution.
	Members() []User
}

// Message is one inbound chat message.
type Message struct {
	Author  User
	Channel Channel
	Text    string
}

// Reply is one outbound unit: page text plus an optional file attachment
// path produced by the renderer.
type Reply struct {
	Text string
	File string
}

// Gateway is the chat platform connection consumed by the bot loop.
type Gateway interface {
	// Connect establishes the connection and starts delivering messages.
	Connect(ctx context.Context) error

	// Close shuts the connection down.
	Close() error

	// Self returns the bot's own account, valid after Connect.
	Self() User

	// Messages returns the inbound message stream.
	Messages() <-chan Message

	// Errors returns connection errors.
	Errors() <-chan error

	// Send delivers a reply to a channel.
	Send(channelID string, reply Reply) error
}

// MemberChannel is a plain Channel implementation used by the gateway and
// by tests.
type MemberChannel struct {
	ChannelID   string
	ChannelName string
	ChannelKind string
	MemberList  []User
}

func (c *MemberChannel) ID() string      { return c.ChannelID }
func (c *MemberChannel) Name() string    { return c.ChannelName }
func (c *MemberChannel) Kind() string    { return c.ChannelKind }
func (c *MemberChannel) Members() []User { return c.MemberList }
