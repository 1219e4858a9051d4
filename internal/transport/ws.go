package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// ErrAlreadyClosed is returned when operating on a closed gateway.
var ErrAlreadyClosed = errors.New("gateway already closed")

// ErrNotConnected is returned when sending before Connect succeeds.
var ErrNotConnected = errors.New("gateway not connected")

// GatewayConfig holds WebSocket gateway settings.
type GatewayConfig struct {
	URL          string        // Gateway websocket URL
	Token        string        // Bearer token for the Authorization header
	BufferSize   int           // Inbound message channel capacity
	PingInterval time.Duration // Client ping cadence
	ReadTimeout  time.Duration // Connection considered dead after this silence
}

// wire event shared by all gateway frames.
type gatewayEvent struct {
	Type    string      `json:"type"`
	Channel wireChannel `json:"channel"`
	Author  User        `json:"author"`
	Content string      `json:"content"`
	Members []User      `json:"members"`
	Self    User        `json:"self"`
}

type wireChannel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// outbound send frame.
type sendFrame struct {
	Type       string `json:"type"`
	ID         string `json:"id"`
	ChannelID  string `json:"channel_id"`
	Content    string `json:"content"`
	Attachment string `json:"attachment,omitempty"`
}

// WSGateway is a Gateway over a JSON WebSocket protocol.
type WSGateway struct {
	cfg     GatewayConfig
	logger  *slog.Logger
	session string

	conn *websocket.Conn

	messages chan Message
	errs     chan error
	done     chan struct{}

	// Write serialization
	writeMu sync.Mutex

	// State
	mu        sync.RWMutex
	connected bool
	closed    bool
	self      User
	channels  map[string]*MemberChannel
	lastSeen  time.Time
}

// NewWSGateway creates a gateway client for the given config.
func NewWSGateway(cfg GatewayConfig, logger *slog.Logger) *WSGateway {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.BufferSize < 1 {
		cfg.BufferSize = 256
	}
	if cfg.PingInterval == 0 {
		cfg.PingInterval = 15 * time.Second
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 30 * time.Second
	}
	return &WSGateway{
		cfg:      cfg,
		logger:   logger,
		session:  uuid.NewString(),
		messages: make(chan Message, cfg.BufferSize),
		errs:     make(chan error, 1),
		done:     make(chan struct{}),
		channels: make(map[string]*MemberChannel),
	}
}

// Connect dials the gateway and starts the read and heartbeat loops.
func (g *WSGateway) Connect(ctx context.Context) error {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return ErrAlreadyClosed
	}
	g.mu.Unlock()

	header := http.Header{}
	header.Set("Accept", "application/json")
	header.Set("X-Session-ID", g.session)
	if g.cfg.Token != "" {
		header.Set("Authorization", "Bearer "+g.cfg.Token)
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}

	conn, _, err := dialer.DialContext(ctx, g.cfg.URL, header)
	if err != nil {
		return fmt.Errorf("dial gateway: %w", err)
	}

	g.mu.Lock()
	g.conn = conn
	g.connected = true
	g.lastSeen = time.Now()
	g.mu.Unlock()

	conn.SetPongHandler(func(string) error {
		g.mu.Lock()
		g.lastSeen = time.Now()
		g.mu.Unlock()
		return nil
	})

	go g.readLoop()
	go g.heartbeatLoop()

	g.logger.Debug("gateway connected", "url", g.cfg.URL, "session", g.session)
	return nil
}

// Close shuts the gateway down.
func (g *WSGateway) Close() error {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return nil
	}
	g.closed = true
	g.connected = false
	conn := g.conn
	g.mu.Unlock()

	close(g.done)
	if conn != nil {
		return conn.Close()
	}
	return nil
}

// Self returns the bot's own account as announced by the gateway.
func (g *WSGateway) Self() User {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.self
}

// Messages returns the inbound message stream.
func (g *WSGateway) Messages() <-chan Message {
	return g.messages
}

// Errors returns connection errors.
func (g *WSGateway) Errors() <-chan error {
	return g.errs
}

// Send delivers a reply to a channel. Attachments travel as file names;
// the gateway host shares the renderer's output directory.
func (g *WSGateway) Send(channelID string, reply Reply) error {
	g.mu.RLock()
	connected := g.connected
	conn := g.conn
	g.mu.RUnlock()
	if !connected || conn == nil {
		return ErrNotConnected
	}

	frame := sendFrame{
		Type:       "send",
		ID:         uuid.NewString(),
		ChannelID:  channelID,
		Content:    reply.Text,
		Attachment: reply.File,
	}
	data, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("marshal send frame: %w", err)
	}

	g.writeMu.Lock()
	defer g.writeMu.Unlock()
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("write send frame: %w", err)
	}
	return nil
}

// readLoop decodes gateway events until the connection dies.
func (g *WSGateway) readLoop() {
	for {
		g.mu.RLock()
		conn := g.conn
		g.mu.RUnlock()
		if conn == nil {
			return
		}

		_, data, err := conn.ReadMessage()
		if err != nil {
			g.mu.Lock()
			g.connected = false
			closed := g.closed
			g.mu.Unlock()
			if !closed {
				g.reportError(fmt.Errorf("gateway read: %w", err))
			}
			return
		}

		g.mu.Lock()
		g.lastSeen = time.Now()
		g.mu.Unlock()

		g.handleEvent(data)
	}
}

func (g *WSGateway) handleEvent(data []byte) {
	var ev gatewayEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		g.logger.Warn("bad gateway frame", "error", err)
		return
	}

	switch ev.Type {
	case "ready":
		g.mu.Lock()
		g.self = ev.Self
		g.mu.Unlock()
		g.logger.Info("gateway ready", "self", ev.Self.Name)

	case "channel":
		// Membership snapshot for one channel.
		g.mu.Lock()
		g.channels[ev.Channel.ID] = &MemberChannel{
			ChannelID:   ev.Channel.ID,
			ChannelName: ev.Channel.Name,
			ChannelKind: ev.Channel.Kind,
			MemberList:  ev.Members,
		}
		g.mu.Unlock()

	case "message":
		g.mu.RLock()
		ch, ok := g.channels[ev.Channel.ID]
		g.mu.RUnlock()
		if !ok {
			ch = &MemberChannel{
				ChannelID:   ev.Channel.ID,
				ChannelName: ev.Channel.Name,
				ChannelKind: ev.Channel.Kind,
			}
		}
		select {
		case g.messages <- Message{Author: ev.Author, Channel: ch, Text: ev.Content}:
		default:
			g.logger.Warn("inbound buffer full, dropping message", "channel", ev.Channel.Name)
		}

	default:
		g.logger.Debug("skipping gateway event", "type", ev.Type)
	}
}

// heartbeatLoop pings the gateway and kills stale connections.
func (g *WSGateway) heartbeatLoop() {
	ticker := time.NewTicker(g.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-g.done:
			return
		case <-ticker.C:
			g.mu.RLock()
			conn := g.conn
			connected := g.connected
			silent := time.Since(g.lastSeen)
			g.mu.RUnlock()

			if !connected || conn == nil {
				return
			}
			if silent > g.cfg.ReadTimeout {
				g.reportError(fmt.Errorf("gateway silent for %s", silent.Round(time.Second)))
				conn.Close()
				return
			}

			g.writeMu.Lock()
			err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(time.Second))
			g.writeMu.Unlock()
			if err != nil {
				g.logger.Warn("gateway ping failed", "error", err)
			}
		}
	}
}

func (g *WSGateway) reportError(err error) {
	select {
	case g.errs <- err:
	default:
	}
}
