package repo

import (
	"context"

	"github.com/BunniBooXx/Custom-Nails-Backend/internal/models"
)

func (r *GormRepo) CreateProduct(ctx context.Context, p *models.Product) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) ListProducts(ctx context.Context, offset, limit int) ([]models.Product, int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).
		Order("id ASC").Offset(offset).Limit(limit).
		Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *GormRepo) SaveProduct(ctx context.Context, p *models.Product) error {
	return r.DB.WithContext(ctx).Save(p).Error
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&models.Product{}, id).Error
}

func (r *GormRepo) ListNailSizeOptions(ctx context.Context) ([]models.NailSizeOption, error) {
	var options []models.NailSizeOption
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

func (r *GormRepo) CreateNailSizeOption(ctx context.Context, opt *models.NailSizeOption) error {
	return r.DB.WithContext(ctx).Create(opt).Error
}

func (r *GormRepo) GetNailSizeOption(ctx context.Context, id uint) (*models.NailSizeOption, error) {
	var opt models.NailSizeOption
	if err := r.DB.WithContext(ctx).First(&opt, id).Error; err != nil {
		return nil, err
	}
	return &opt, nil
}
