// Package event defines the realtime frames exchanged with connected clients.
// Inbound frames decode into a closed set of variants, outbound frames are built
// by the constructors in outbound.go.
package event

import (
	"bytes"
	"encoding/json"
	"fmt"

	"traffic-lab/errors"
)

type InboundName string

const (
	JoinRoomName         InboundName = "join_room"
	ViewStartName        InboundName = "view_start"
	ViewEndName          InboundName = "view_end"
	ReupPostName         InboundName = "reup_post"
	SmartReupRequestName InboundName = "smart_reup_request"
	SendMessageName      InboundName = "send_message"
	GetMessagesName      InboundName = "get_messages"
	DisconnectName       InboundName = "disconnect"
)

// Inbound is implemented only by the variants of this package.
type Inbound interface {
	Name() InboundName
	inbound()
}

type JoinRoom struct {
	UserID string `json:"userId" validate:"required"`
}

type ViewStart struct {
	UserID string `json:"userId" validate:"required"`
	PostID string `json:"postId" validate:"required"`
	Link   string `json:"link" validate:"required"`
}

type ViewEnd struct {
	ViewID string `json:"viewId" validate:"required"`
	PostID string `json:"postId" validate:"required"`
}

type ReupPost struct {
	PostID string `json:"postId" validate:"required"`
	UserID string `json:"userId" validate:"required"`
}

type SmartReupRequest struct {
	UserID string `json:"userId" validate:"required"`
}

type SendMessage struct {
	UserID  string `json:"userId" validate:"required"`
	Content string `json:"content"`
}

type GetMessages struct {
	Limit int `json:"limit"`
}

// Disconnect is raised by the transport when a connection goes away, it never comes off the wire.
type Disconnect struct{}

func (JoinRoom) Name() InboundName         { return JoinRoomName }
func (ViewStart) Name() InboundName        { return ViewStartName }
func (ViewEnd) Name() InboundName          { return ViewEndName }
func (ReupPost) Name() InboundName         { return ReupPostName }
func (SmartReupRequest) Name() InboundName { return SmartReupRequestName }
func (SendMessage) Name() InboundName      { return SendMessageName }
func (GetMessages) Name() InboundName      { return GetMessagesName }
func (Disconnect) Name() InboundName       { return DisconnectName }

func (JoinRoom) inbound()         {}
func (ViewStart) inbound()        {}
func (ViewEnd) inbound()          {}
func (ReupPost) inbound()         {}
func (SmartReupRequest) inbound() {}
func (SendMessage) inbound()      {}
func (GetMessages) inbound()      {}
func (Disconnect) inbound()       {}

// Frame is the envelope of every websocket message, in both directions.
type Frame struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Decode turns a raw frame into its typed variant.
func Decode(raw []byte) (Inbound, error) {
	var frame Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return nil, fmt.Errorf("%w: malformed frame: %v", errors.ErrInvalidInput, err)
	}
	switch InboundName(frame.Event) {
	case JoinRoomName:
		// join_room historically carried the bare identity string
		var userID string
		if isJSONString(frame.Payload) {
			if err := json.Unmarshal(frame.Payload, &userID); err != nil {
				return nil, payloadErr(frame.Event, err)
			}
			return JoinRoom{UserID: userID}, nil
		}
		return decodePayload[JoinRoom](frame)
	case ViewStartName:
		return decodePayload[ViewStart](frame)
	case ViewEndName:
		return decodePayload[ViewEnd](frame)
	case ReupPostName:
		return decodePayload[ReupPost](frame)
	case SmartReupRequestName:
		return decodePayload[SmartReupRequest](frame)
	case SendMessageName:
		return decodePayload[SendMessage](frame)
	case GetMessagesName:
		return decodePayload[GetMessages](frame)
	default:
		return nil, fmt.Errorf("%w %q", errors.ErrUnknownEvent, frame.Event)
	}
}

func decodePayload[T Inbound](frame Frame) (Inbound, error) {
	var v T
	if len(frame.Payload) == 0 || bytes.Equal(frame.Payload, []byte("null")) {
		return v, nil
	}
	if err := json.Unmarshal(frame.Payload, &v); err != nil {
		return nil, payloadErr(frame.Event, err)
	}
	return v, nil
}

func payloadErr(name string, err error) error {
	return fmt.Errorf("%w: bad payload for %s: %v", errors.ErrInvalidInput, name, err)
}

func isJSONString(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '"'
}
