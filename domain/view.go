package domain

import (
	"time"
)

// ViewingSession is a single tracked view of a post link.
// It goes STARTED -> ENDED once; EndTime being set makes it terminal.
type ViewingSession struct {
	ID              string     `json:"id"`
	ViewerID        string     `json:"viewerId"`
	PostID          string     `json:"postId"`
	Link            string     `json:"link"`
	StartTime       time.Time  `json:"startTime"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	DurationSeconds *float64   `json:"duration,omitempty"`
	PointsAwarded   int        `json:"pointsAwarded"`
}

func (v ViewingSession) Ended() bool {
	return v.EndTime != nil
}

// Close sets the end of the session and returns the elapsed seconds.
func (v *ViewingSession) Close(now time.Time, points int) float64 {
	d := now.Sub(v.StartTime).Seconds()
	v.EndTime = &now
	v.DurationSeconds = &d
	v.PointsAwarded = points
	return d
}

// ClickEvent is a layer-2 click, nested inside a ViewingSession.
type ClickEvent struct {
	ID              string     `json:"id"`
	ViewerID        string     `json:"viewerId"`
	PostID          string     `json:"postId"`
	ParentURL       string     `json:"parentUrl"`
	ChildURL        string     `json:"childUrl"`
	Keyword         string     `json:"keyword"`
	ViewID          string     `json:"viewId"`
	StartTime       time.Time  `json:"startTime"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	DurationSeconds *float64   `json:"duration,omitempty"`
	PointsAwarded   int        `json:"pointsAwarded"`
}

func (c ClickEvent) Ended() bool {
	return c.EndTime != nil
}

func (c *ClickEvent) Close(now time.Time, points int) float64 {
	d := now.Sub(c.StartTime).Seconds()
	c.EndTime = &now
	c.DurationSeconds = &d
	c.PointsAwarded = points
	return d
}

// LinkStat counts views per link of a post.
type LinkStat struct {
	Link  string `json:"link"`
	Count int    `json:"count"`
}

// Transfer is the outcome of a zero-sum point move between a viewer and an author.
type Transfer struct {
	ViewerID     string
	AuthorID     string
	Points       int
	ViewerTotal  int
	AuthorTotal  int
	Duration     float64
	AlreadyEnded bool
}
