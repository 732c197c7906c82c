// Package domain contains core concepts of the traffic exchange.
// This file defines Post entities and the reup eligibility rule.
// No runtime, network, or storage logic should be added here.
package domain

import (
	"time"
)

const DefaultMaxView = 50

type Post struct {
	ID                string     `json:"id"`
	AuthorID          string     `json:"authorId"`
	Title             string     `json:"title"`
	Content           string     `json:"content"`
	CurrentView       int        `json:"currentView"`
	MaxView           int        `json:"maxView"`
	AutoReupEnabled   *bool      `json:"autoReupEnabled,omitempty"`
	LastReupAt        *time.Time `json:"lastReupAt,omitempty"`
	ReupCount         int        `json:"reupCount"`
	LastDistributedAt time.Time  `json:"lastDistributedAt"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// Eligible reports whether a post may be picked by smart reup.
// An absent AutoReupEnabled counts as enabled, only an explicit false excludes.
func Eligible(p Post) bool {
	if p.AutoReupEnabled != nil && !*p.AutoReupEnabled {
		return false
	}
	return p.CurrentView < p.MaxView
}

func (p Post) OwnedBy(userID string) bool {
	return p.AuthorID == userID
}

// MarkReup records a re-promotion. Smart reup also bumps CreatedAt so the
// post resurfaces as new in recency-sorted feeds.
func (p *Post) MarkReup(now time.Time, bumpCreatedAt bool) {
	p.LastReupAt = &now
	p.ReupCount++
	p.UpdatedAt = now
	if bumpCreatedAt {
		p.CreatedAt = now
	}
}

// PostAuthor is the denormalized author block sent along with a distributed post.
type PostAuthor struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName,omitempty"`
	Email       string `json:"email,omitempty"`
	Points      int    `json:"points"`
}

// DistributedPost is the payload of a new_post event.
type DistributedPost struct {
	Post
	Author PostAuthor `json:"author"`
}

func NewDistributedPost(p Post, author User) DistributedPost {
	return DistributedPost{
		Post: p,
		Author: PostAuthor{
			ID:          author.ID,
			DisplayName: author.DisplayName,
			Email:       author.Email,
			Points:      author.Points,
		},
	}
}
