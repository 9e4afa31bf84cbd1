package service

import (
	"context"
	"fmt"

	"github.com/BunniBooXx/Custom-Nails-Backend/internal/models"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/repo"
)

type NailSizeService struct {
	Repo *repo.GormRepo
}

func (s *NailSizeService) List(ctx context.Context) ([]models.NailSizeOption, error) {
	return s.Repo.ListNailSizeOptions(ctx)
}

func (s *NailSizeService) Create(ctx context.Context, name, description string) (*models.NailSizeOption, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	option := models.NailSizeOption{Name: name, Description: description}
	if err := s.Repo.CreateNailSizeOption(ctx, &option); err != nil {
		return nil, err
	}
	return &option, nil
}
