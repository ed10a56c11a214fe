// Package event forwards article store changes to the message bus.
package event

import (
	"context"
	"log"

	"newsflow/internal/article"
)

type Publisher interface {
	PublishArticleChanged(ctx context.Context, c article.Change) error
}

// Service is an article.Listener. Changes are queued without blocking the
// store; when the queue is full the change is dropped and logged.
type Service struct {
	queue     chan article.Change
	publisher Publisher
	logger    *log.Logger
}

func NewService(publisher Publisher, buffer int, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	if buffer < 1 {
		buffer = 1
	}

	return &Service{
		queue:     make(chan article.Change, buffer),
		publisher: publisher,
		logger:    logger,
	}
}

func (s *Service) ArticleChanged(c article.Change) {
	select {
	case s.queue <- c:
	default:
		s.logger.Printf("events: queue full, dropped %s for article %s", c.Kind, c.Article.ID)
	}
}

// Run publishes queued changes until ctx is done.
func (s *Service) Run(ctx context.Context) {
	s.logger.Println("events: forwarding article changes...")

	for {
		select {
		case <-ctx.Done():
			s.logger.Println("events: stopped")
			return
		case c := <-s.queue:
			if err := s.publisher.PublishArticleChanged(ctx, c); err != nil {
				s.logger.Printf("events: failed publishing %s for article %s: %v", c.Kind, c.Article.ID, err)
				continue
			}
			s.logger.Printf("events: published %s for article %s", RoutingKey(c.Kind), c.Article.ID)
		}
	}
}
