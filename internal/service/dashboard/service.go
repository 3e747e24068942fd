// Package dashboard summarises catalog state for administrators.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/tooldir-backend/internal/auth"
	"github.com/heartmarshall/tooldir-backend/internal/domain"
)

type submissionCounter interface {
	CountByStatus(ctx context.Context, status domain.SubmissionStatus) (int, error)
}

type liveCounter interface {
	CountLive(ctx context.Context) (int, error)
}

type postCounter interface {
	CountPublished(ctx context.Context) (int, error)
}

// Service computes dashboard statistics.
type Service struct {
	log         *slog.Logger
	submissions submissionCounter
	tools       liveCounter
	categories  liveCounter
	posts       postCounter
}

// NewService creates a dashboard service.
func NewService(log *slog.Logger, submissions submissionCounter, tools, categories liveCounter, posts postCounter) *Service {
	return &Service{
		log:         log.With("service", "dashboard"),
		submissions: submissions,
		tools:       tools,
		categories:  categories,
		posts:       posts,
	}
}

// Stats runs the counting queries concurrently. Admin only.
func (s *Service) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	var stats domain.DashboardStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.submissions.CountByStatus(gctx, domain.SubmissionStatusPending)
		if err != nil {
			return fmt.Errorf("count pending submissions: %w", err)
		}
		stats.PendingSubmissions = n
		return nil
	})
	g.Go(func() error {
		n, err := s.tools.CountLive(gctx)
		if err != nil {
			return fmt.Errorf("count tools: %w", err)
		}
		stats.LiveTools = n
		return nil
	})
	g.Go(func() error {
		n, err := s.categories.CountLive(gctx)
		if err != nil {
			return fmt.Errorf("count categories: %w", err)
		}
		stats.LiveCategories = n
		return nil
	})
	g.Go(func() error {
		n, err := s.posts.CountPublished(gctx)
		if err != nil {
			return fmt.Errorf("count posts: %w", err)
		}
		stats.PublishedPosts = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
