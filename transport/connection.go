package transport

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"traffic-lab/domain"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// MessageHandler is called for every text or binary frame read from the socket.
type MessageHandler func(ctx context.Context, conn *Connection, msg []byte)

type OnCloseHandler func(conn *Connection, err error)

type ConnectionConfig struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	SendBuffer   int
}

// Connection is one authenticated websocket, safe for concurrent Send.
// Writes go through a single goroutine so frames keep their order.
type Connection struct {
	handle domain.ConnectionHandle
	userID string
	conn   *websocket.Conn
	config ConnectionConfig
	send   chan []byte

	onMessage MessageHandler
	onClose   OnCloseHandler

	done      chan struct{}
	wg        *sync.WaitGroup
	ctx       context.Context
	closeOnce sync.Once
	cancel    context.CancelFunc

	log *slog.Logger
}

func NewConnection(parentCtx context.Context, wg *sync.WaitGroup, conn *websocket.Conn, userID string,
	config ConnectionConfig, log *slog.Logger) *Connection {
	handle := uuid.New()
	connCtx, cancel := context.WithCancel(parentCtx)
	if config.SendBuffer <= 0 {
		config.SendBuffer = 256
	}
	return &Connection{
		handle: handle,
		userID: userID,
		conn:   conn,
		log:    log.With("connID", handle.String(), "userID", userID),
		config: config,
		send:   make(chan []byte, config.SendBuffer),
		done:   make(chan struct{}),
		ctx:    connCtx,
		cancel: cancel,
		wg:     wg,
	}
}

func (c *Connection) Run() {
	c.wg.Add(1)
	go c.readPump()
	go c.writePump()
	c.log.Info("Connection established")
}

func (c *Connection) readPump() {
	var readErr error
	defer func() {
		c.Close(readErr)
	}()

	for {
		typ, message, err := c.read()
		if err != nil {
			readErr = err
			return
		}
		if typ != websocket.MessageText && typ != websocket.MessageBinary {
			continue
		}
		if c.onMessage != nil {
			c.onMessage(c.ctx, c, message)
		}
	}
}

func (c *Connection) read() (websocket.MessageType, []byte, error) {
	readCtx := c.ctx
	if c.config.ReadTimeout > 0 {
		var cancel context.CancelFunc
		readCtx, cancel = context.WithTimeout(c.ctx, c.config.ReadTimeout)
		defer cancel()
	}
	typ, r, err := c.conn.Reader(readCtx)
	if err != nil {
		return 0, nil, err
	}
	message, err := io.ReadAll(r)
	return typ, message, err
}

func (c *Connection) writePump() {
	var writeErr error
	defer func() {
		c.Close(writeErr)
	}()

	for {
		select {
		case message := <-c.send:
			if err := c.write(message); err != nil {
				writeErr = err
				return
			}
		case <-c.ctx.Done():
			return
		}
	}
}

func (c *Connection) write(message []byte) error {
	writeCtx := c.ctx
	if c.config.WriteTimeout > 0 {
		var cancel context.CancelFunc
		writeCtx, cancel = context.WithTimeout(c.ctx, c.config.WriteTimeout)
		defer cancel()
	}
	return c.conn.Write(writeCtx, websocket.MessageText, message)
}

// Send queues a frame without blocking. A full buffer or a closed connection drops it.
func (c *Connection) Send(message []byte) bool {
	select {
	case <-c.ctx.Done():
		return false
	default:
	}
	select {
	case c.send <- message:
		return true
	case <-c.ctx.Done():
		return false
	default:
		c.log.Warn("Send buffer full, dropping frame")
		return false
	}
}

// Close shuts the connection once, whoever calls it first.
func (c *Connection) Close(err error) {
	c.closeOnce.Do(func() {
		status := websocket.CloseStatus(err)
		c.log.Info("Transport connection closing", "reason", err, "status", status.String())

		c.cancel()
		_ = c.conn.Close(websocket.StatusNormalClosure, "")
		if c.onClose != nil {
			c.onClose(c, err)
		}
		c.wg.Done()
		close(c.done)
	})
}

// Done is closed once the connection is fully terminated.
func (c *Connection) Done() <-chan struct{} {
	return c.done
}

func (c *Connection) Handle() domain.ConnectionHandle {
	return c.handle
}

func (c *Connection) UserID() string {
	return c.userID
}

func (c *Connection) SetOnMessageHandler(handler MessageHandler) {
	c.onMessage = handler
}

func (c *Connection) SetOnCloseHandler(handler OnCloseHandler) {
	c.onClose = handler
}
