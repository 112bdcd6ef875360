package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mbenedek/focal/internal/domain"
	"github.com/mbenedek/focal/internal/repository"
)

type tagServiceImpl struct {
	tags repository.TagRepo
}

func NewTagService(tags repository.TagRepo) TagService {
	return &tagServiceImpl{tags: tags}
}

func (s *tagServiceImpl) Create(ctx context.Context, tag *domain.Tag) error {
	tag.Name = strings.TrimSpace(tag.Name)
	if tag.Name == "" {
		return fmt.Errorf("tag name must not be empty")
	}

	existing, err := s.tags.List(ctx)
	if err != nil {
		return err
	}
	for _, e := range existing {
		if strings.EqualFold(e.Name, tag.Name) {
			return fmt.Errorf("tag %q already exists", tag.Name)
		}
	}

	if tag.CreatedAt.IsZero() {
		tag.CreatedAt = time.Now().UTC()
	}
	return s.tags.Create(ctx, tag)
}

func (s *tagServiceImpl) List(ctx context.Context) ([]domain.Tag, error) {
	return s.tags.List(ctx)
}

func (s *tagServiceImpl) Delete(ctx context.Context, id string) error {
	return s.tags.Delete(ctx, id)
}
