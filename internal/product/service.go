package product

import (
	"context"
	"fmt"
	"strings"

	"redmedicos-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, in UpsertInput) (*Product, error)
	Update(ctx context.Context, id string, in UpsertInput) (*Product, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context) ([]Product, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetByID(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func validate(in UpsertInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if in.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidProduct)
	}
	if !ValidCategory(in.Category) {
		return ErrInvalidCategory
	}
	return nil
}

func (s *service) Create(ctx context.Context, in UpsertInput) (*Product, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	p := Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		Category:    in.Category,
		Details:     in.Details,
		Ingredients: in.Ingredients,
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to create product",
			zap.String("name", in.Name),
			zap.Error(err),
		)
		return nil, err
	}

	logger.FromCtx(ctx).Info("product created",
		zap.String("product_id", created.ID),
		zap.String("category", created.Category),
	)

	return &created, nil
}

func (s *service) Update(ctx context.Context, id string, in UpsertInput) (*Product, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	p := Product{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		Category:    in.Category,
		Details:     in.Details,
		Ingredients: in.Ingredients,
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	return &p, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("product deleted", zap.String("product_id", id))
	return nil
}
