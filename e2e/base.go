package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"traffic-lab/auth"
	"traffic-lab/domain/event"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

type BaseSuite struct {
	suite.Suite
	Config Config
	tokens *auth.TokenManager
	client *http.Client
}

// SetupSuite loads the environment configuration, a missing server address skips the suite.
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.ServerAddr == "" {
		s.T().Skip("E2E_SERVER_ADDR not set")
	}
	s.Require().NotEmpty(s.Config.JWTSecret, "E2E_JWT_SECRET is required")
	s.tokens = auth.NewTokenManager(s.Config.JWTSecret, time.Hour)
	s.client = &http.Client{Timeout: 10 * time.Second}
}

// Actor is a user with a fresh identity and a token signed for it.
type Actor struct {
	ID    string
	Token string
}

func (s *BaseSuite) NewActor(name string) Actor {
	id := uuid.NewString()
	token, err := s.tokens.GenerateToken(id, name+"-"+id[:8]+"@e2e.test", name)
	s.Require().NoError(err)
	return Actor{ID: id, Token: token}
}

func (s *BaseSuite) header(name string) string {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	return header
}

// Call performs one API request and decodes the response body into out when given.
func (s *BaseSuite) Call(actor Actor, method, path string, body, out any) int {
	var reader io.Reader
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	r, err := http.NewRequest(method, s.Config.ServerAddr+path, reader)
	s.Require().NoError(err)
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Authorization", "Bearer "+actor.Token)

	start := time.Now()
	resp, err := s.client.Do(r)
	s.Require().NoError(err, "request to "+path+" failed")
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	logBuilder := strings.Builder{}
	fmt.Fprintf(&logBuilder, "HTTP %s %s [%d] in %v", method, path, resp.StatusCode, time.Since(start))
	if s.Config.DebugJSON {
		fmt.Fprintf(&logBuilder, "\nREQUEST:\n%s\nRESPONSE:\n%s", raw, respBody)
	}
	s.T().Log(logBuilder.String())

	if out != nil && len(respBody) > 0 {
		s.Require().NoError(json.Unmarshal(respBody, out))
	}
	return resp.StatusCode
}

// Socket is a realtime connection owned by one actor.
type Socket struct {
	s    *BaseSuite
	conn *websocket.Conn
}

func (s *BaseSuite) Dial(name string, actor Actor) *Socket {
	s.T().Log(s.header(name))
	wsURL := strings.Replace(s.Config.ServerAddr, "http", "ws", 1) + "/ws?token=" + url.QueryEscape(actor.Token)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	s.Require().NoError(err, "failed to dial "+wsURL)
	return &Socket{s: s, conn: conn}
}

func (c *Socket) Send(name event.InboundName, payload any) {
	raw, err := json.Marshal(payload)
	c.s.Require().NoError(err)
	frame, err := json.Marshal(event.Frame{Event: string(name), Payload: raw})
	c.s.Require().NoError(err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c.s.Require().NoError(c.conn.Write(ctx, websocket.MessageText, frame))
}

// Expect reads frames until one named name arrives, other events are skipped.
func (c *Socket) Expect(name event.OutboundName, timeout time.Duration, out any) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	for {
		_, raw, err := c.conn.Read(ctx)
		c.s.Require().NoError(err, "waiting for "+string(name))

		var frame event.Frame
		c.s.Require().NoError(json.Unmarshal(raw, &frame))
		if c.s.Config.DebugJSON {
			c.s.T().Logf("WS <- %s", raw)
		}
		if frame.Event != string(name) {
			continue
		}
		if out != nil {
			c.s.Require().NoError(json.Unmarshal(frame.Payload, out))
		}
		return
	}
}

func (c *Socket) Close() {
	_ = c.conn.Close(websocket.StatusNormalClosure, "bye")
}
