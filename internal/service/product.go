package service

import (
	"context"
	"fmt"

	"github.com/BunniBooXx/Custom-Nails-Backend/internal/events"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/logging"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/models"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/repo"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/search"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/util"
)

type ProductService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
	Index    *search.Index
}

type ProductInput struct {
	Name              string
	Description       string
	Price             float64
	QuantityAvailable *int
	ImageURL          string
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "product.create")

	if in.Name == "" || in.Description == "" || in.Price <= 0 || in.QuantityAvailable == nil || in.ImageURL == "" {
		return nil, fmt.Errorf("%w: missing required field(s)", ErrValidation)
	}
	if *in.QuantityAvailable < 0 {
		return nil, fmt.Errorf("%w: quantity_available must not be negative", ErrValidation)
	}

	product := models.Product{
		Name:              in.Name,
		Description:       in.Description,
		Price:             in.Price,
		QuantityAvailable: *in.QuantityAvailable,
		ImageURL:          in.ImageURL,
	}
	if err := s.Repo.CreateProduct(ctx, &product); err != nil {
		return nil, err
	}

	s.reindex(ctx, &product)
	if err := s.Producer.Publish(ctx, events.TopicProductEvents, fmt.Sprint(product.ID), map[string]any{
		"type":       "product_created",
		"product_id": product.ID,
		"name":       product.Name,
	}); err != nil {
		l.Warn("event_publish_failed", "error", err)
	}

	return &product, nil
}

func (s *ProductService) Update(ctx context.Context, id uint, in ProductInput) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "product.update")

	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if repo.NotFound(err) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
		}
		return nil, err
	}

	if in.Name != "" {
		product.Name = in.Name
	}
	if in.Description != "" {
		product.Description = in.Description
	}
	if in.Price > 0 {
		product.Price = in.Price
	}
	if in.QuantityAvailable != nil {
		product.QuantityAvailable = *in.QuantityAvailable
	}
	if in.ImageURL != "" {
		product.ImageURL = in.ImageURL
	}

	if err := s.Repo.SaveProduct(ctx, product); err != nil {
		return nil, err
	}

	s.reindex(ctx, product)
	if err := s.Producer.Publish(ctx, events.TopicProductEvents, fmt.Sprint(product.ID), map[string]any{
		"type":       "product_updated",
		"product_id": product.ID,
		"name":       product.Name,
	}); err != nil {
		l.Warn("event_publish_failed", "error", err)
	}

	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	l := logging.FromContext(ctx).With("svc", "product.delete")

	if _, err := s.Repo.GetProduct(ctx, id); err != nil {
		if repo.NotFound(err) {
			return fmt.Errorf("%w: product %d", ErrNotFound, id)
		}
		return err
	}
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		return err
	}

	if err := s.Index.DeleteProduct(ctx, id); err != nil {
		l.Warn("search_deindex_failed", "error", err)
	}
	if err := s.Producer.Publish(ctx, events.TopicProductEvents, fmt.Sprint(id), map[string]any{
		"type":       "product_deleted",
		"product_id": id,
	}); err != nil {
		l.Warn("event_publish_failed", "error", err)
	}

	return nil
}

func (s *ProductService) Get(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if repo.NotFound(err) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
		}
		return nil, err
	}
	return product, nil
}

type ProductPage struct {
	Items      []models.Product `json:"data"`
	Page       int              `json:"page"`
	Size       int              `json:"size"`
	Total      int64            `json:"total"`
	TotalPages int64            `json:"total_pages"`
}

func (s *ProductService) List(ctx context.Context, page, size int) (*ProductPage, error) {
	offset, limit := util.Calculate(page, size)
	items, total, err := s.Repo.ListProducts(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	return &ProductPage{
		Items:      items,
		Page:       page,
		Size:       limit,
		Total:      total,
		TotalPages: (total + int64(limit) - 1) / int64(limit),
	}, nil
}

func (s *ProductService) Search(ctx context.Context, query string, page, size int) (int64, []models.Product, error) {
	if query == "" {
		return 0, nil, fmt.Errorf("%w: query is required", ErrValidation)
	}
	from, limit := util.Calculate(page, size)

	total, products, err := s.Index.Search(ctx, query, from, limit)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	return total, products, nil
}

func (s *ProductService) reindex(ctx context.Context, p *models.Product) {
	if err := s.Index.IndexProduct(ctx, p); err != nil {
		logging.FromContext(ctx).Warn("search_index_failed", "product_id", p.ID, "error", err)
	}
}
