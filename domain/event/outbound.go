package event

import (
	"time"

	"traffic-lab/domain"
)

type OutboundName string

const (
	NewPostName          OutboundName = "new_post"
	PostViewUpdateName   OutboundName = "post_view_update"
	ViewStartedName      OutboundName = "view_started"
	PointsAwardedName    OutboundName = "points_awarded"
	PointsDeductedName   OutboundName = "points_deducted"
	NewMessageName       OutboundName = "new_message"
	MessagesLoadedName   OutboundName = "messages_loaded"
	WaveAssignmentName   OutboundName = "wave_assignment"
	ExtensionUpdateName  OutboundName = "extension_update"
	ReupSuccessName      OutboundName = "reup_success"
	ReupErrorName        OutboundName = "reup_error"
	SmartReupSuccessName OutboundName = "smart_reup_success"
	SmartReupErrorName   OutboundName = "smart_reup_error"
	MessageErrorName     OutboundName = "message_error"
	ViewErrorName        OutboundName = "view_error"
	ErrorName            OutboundName = "error"
)

// Outbound is an event ready to be serialized to a connection.
type Outbound struct {
	Name    OutboundName `json:"event"`
	Payload any          `json:"payload"`
}

type ViewAction string

const (
	ViewIncrement ViewAction = "increment"
	ViewUpdate    ViewAction = "update"
)

type PostViewUpdate struct {
	PostID string     `json:"postId"`
	Action ViewAction `json:"action"`
}

type ViewStarted struct {
	ViewID string `json:"viewId"`
}

type PointsAwarded struct {
	UserID      string  `json:"userId"`
	Points      int     `json:"points"`
	TotalPoints int     `json:"totalPoints"`
	Duration    float64 `json:"duration"`
	PostID      string  `json:"postId"`
}

type PointsDeducted struct {
	UserID      string `json:"userId"`
	Points      int    `json:"points"`
	TotalPoints int    `json:"totalPoints"`
	PostID      string `json:"postId"`
}

type WaveAssignment struct {
	Wave int `json:"wave"`
}

type ExtensionUpdate struct {
	Version     string    `json:"version"`
	Description string    `json:"description"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

type ReupSuccess struct {
	PostID         string `json:"postId"`
	Message        string `json:"message"`
	RemainingReups int    `json:"remainingReups"`
}

type ReupError struct {
	Message             string `json:"message"`
	CooldownRemainingMs *int64 `json:"cooldownRemainingMs,omitempty"`
	RemainingReups      *int   `json:"remainingReups,omitempty"`
}

type SmartReupSuccess struct {
	PostID      string          `json:"postId"`
	PostTitle   string          `json:"postTitle"`
	CurrentView int             `json:"currentView"`
	MaxView     int             `json:"maxView"`
	Mode        domain.ReupMode `json:"mode"`
	Recipient   string          `json:"recipient,omitempty"`
	Message     string          `json:"message"`
}

type ErrorMessage struct {
	Message string `json:"message"`
}

func NewPost(p domain.DistributedPost) Outbound {
	return Outbound{Name: NewPostName, Payload: p}
}

func NewPostViewUpdate(postID string, action ViewAction) Outbound {
	return Outbound{Name: PostViewUpdateName, Payload: PostViewUpdate{PostID: postID, Action: action}}
}

func NewViewStarted(viewID string) Outbound {
	return Outbound{Name: ViewStartedName, Payload: ViewStarted{ViewID: viewID}}
}

func NewPointsAwarded(t domain.Transfer, postID string) Outbound {
	return Outbound{Name: PointsAwardedName, Payload: PointsAwarded{
		UserID:      t.ViewerID,
		Points:      t.Points,
		TotalPoints: t.ViewerTotal,
		Duration:    t.Duration,
		PostID:      postID,
	}}
}

func NewPointsDeducted(t domain.Transfer, postID string) Outbound {
	return Outbound{Name: PointsDeductedName, Payload: PointsDeducted{
		UserID:      t.AuthorID,
		Points:      t.Points,
		TotalPoints: t.AuthorTotal,
		PostID:      postID,
	}}
}

func NewMessage(m domain.Message) Outbound {
	return Outbound{Name: NewMessageName, Payload: m}
}

func NewMessagesLoaded(messages []domain.Message) Outbound {
	if messages == nil {
		messages = []domain.Message{}
	}
	return Outbound{Name: MessagesLoadedName, Payload: messages}
}

func NewWaveAssignment(wave int) Outbound {
	return Outbound{Name: WaveAssignmentName, Payload: WaveAssignment{Wave: wave}}
}

func NewExtensionUpdate(r domain.ExtensionRelease) Outbound {
	return Outbound{Name: ExtensionUpdateName, Payload: ExtensionUpdate{
		Version:     r.Version,
		Description: r.Description,
		UploadedAt:  r.UploadedAt,
	}}
}

func NewReupSuccess(s ReupSuccess) Outbound {
	return Outbound{Name: ReupSuccessName, Payload: s}
}

func NewReupError(e ReupError) Outbound {
	return Outbound{Name: ReupErrorName, Payload: e}
}

func NewSmartReupSuccess(s SmartReupSuccess) Outbound {
	return Outbound{Name: SmartReupSuccessName, Payload: s}
}

// NewError builds the private error event matching the failed inbound event.
func NewError(name OutboundName, message string) Outbound {
	return Outbound{Name: name, Payload: ErrorMessage{Message: message}}
}
