package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"traffic-lab/contract"
	"traffic-lab/domain"
	"traffic-lab/errors"

	"github.com/go-playground/validator/v10"
)

// contentPattern is "https://domain### keyword!!!", spaces around ### are optional.
var contentPattern = regexp.MustCompile(`https?://[^\s#]+\s*###\s*[^!]+!!!`)

const (
	DefaultViewPageSize = 20
	MaxViewPageSize     = 100
)

type CreatePostRequest struct {
	AuthorID string `json:"-" validate:"required"`
	Title    string `json:"title" validate:"required,max=200"`
	Content  string `json:"content" validate:"required"`
	MaxView  int    `json:"maxView" validate:"gte=0"`
}

type PostViews struct {
	Views     []domain.ViewingSession `json:"views"`
	Total     int                     `json:"total"`
	LinkStats []domain.LinkStat       `json:"linkStats"`
}

type IPostService interface {
	CreatePost(ctx context.Context, request CreatePostRequest) (domain.Post, error)
	ListUserPosts(ctx context.Context, userID string) ([]domain.Post, error)
	ListViews(ctx context.Context, postID string, skip, limit int) (PostViews, error)
}

type PostService struct {
	log         *slog.Logger
	users       contract.IUserRepository
	posts       contract.IPostRepository
	views       contract.IViewRepository
	distributor contract.IDistributor
	emitter     contract.Emitter
	validate    *validator.Validate
}

func NewPostService(log *slog.Logger, users contract.IUserRepository, posts contract.IPostRepository,
	views contract.IViewRepository, distributor contract.IDistributor, emitter contract.Emitter) *PostService {
	return &PostService{
		log:         log.With("component", "posts"),
		users:       users,
		posts:       posts,
		views:       views,
		distributor: distributor,
		emitter:     emitter,
		validate:    validator.New(),
	}
}

// CreatePost stores the post and starts its first distribution.
func (s *PostService) CreatePost(ctx context.Context, request CreatePostRequest) (domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return domain.Post{}, err
	}
	if err := s.validate.Struct(request); err != nil {
		return domain.Post{}, fmt.Errorf("%w: %v", errors.ErrInvalidInput, err)
	}
	if !contentPattern.MatchString(request.Content) {
		return domain.Post{}, errors.ErrInvalidContent
	}
	author, err := s.users.GetUser(request.AuthorID)
	if err != nil {
		return domain.Post{}, err
	}

	post, err := s.posts.CreatePost(domain.Post{
		AuthorID: request.AuthorID,
		Title:    request.Title,
		Content:  request.Content,
		MaxView:  request.MaxView,
	})
	if err != nil {
		return domain.Post{}, err
	}
	s.distributor.Distribute(domain.NewDistributedPost(post, author), s.emitter)
	s.log.Info("Post created", "postID", post.ID, "authorID", post.AuthorID)
	return post, nil
}

func (s *PostService) ListUserPosts(ctx context.Context, userID string) ([]domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	posts, err := s.posts.ListByAuthor(userID)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return posts, nil
}

// ListViews pages over the sessions of a post and aggregates them per link.
func (s *PostService) ListViews(ctx context.Context, postID string, skip, limit int) (PostViews, error) {
	if err := ctx.Err(); err != nil {
		return PostViews{}, err
	}
	if _, err := s.posts.GetPost(postID); err != nil {
		return PostViews{}, err
	}
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > MaxViewPageSize {
		limit = DefaultViewPageSize
	}
	views, total, err := s.views.ListByPost(postID, skip, limit)
	if err != nil {
		return PostViews{}, err
	}
	stats, err := s.views.LinkStats(postID)
	if err != nil {
		return PostViews{}, err
	}
	if views == nil {
		views = []domain.ViewingSession{}
	}
	if stats == nil {
		stats = []domain.LinkStat{}
	}
	return PostViews{Views: views, Total: total, LinkStats: stats}, nil
}
