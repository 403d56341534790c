package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gurushop/commerce-ledger/internal/domain"
	"github.com/gurushop/commerce-ledger/internal/ports"
)

const productPageSize = 12

type productRepository struct {
	db *gorm.DB
}

func (r *productRepository) GetCard(ctx context.Context, productID uuid.UUID) (domain.Product, error) {
	var rec productModel
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND valid = true", productID).
		Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Product{}, domain.ErrNotFound
		}
		return domain.Product{}, normalizeErr(ctx, err)
	}

	var img productImgModel
	imgPath := ""
	err = r.db.WithContext(ctx).
		Where("img_product_id = ?", productID).
		Take(&img).Error
	if err == nil {
		imgPath = img.ProductImgPath
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Product{}, normalizeErr(ctx, err)
	}

	return domain.Product{
		ProductID: rec.ProductID,
		Name:      rec.ProductName,
		Model:     rec.Model,
		ListPrice: rec.ListPrice,
		ImagePath: imgPath,
	}, nil
}

func (r *productRepository) List(ctx context.Context, query ports.ProductQuery) (ports.ProductPage, error) {
	base := r.db.WithContext(ctx).Model(&productModel{}).Where("valid = true")
	if query.Search != "" {
		base = base.Where("product_name ILIKE ?", "%"+query.Search+"%")
	}

	var count int64
	if err := base.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return ports.ProductPage{}, normalizeErr(ctx, err)
	}

	var rows []productModel
	offset := (query.Page - 1) * productPageSize
	err := base.Session(&gorm.Session{}).
		Order("product_id ASC").
		Limit(productPageSize).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return ports.ProductPage{}, normalizeErr(ctx, err)
	}

	items := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.Product{
			ProductID: row.ProductID,
			Name:      row.ProductName,
			Model:     row.Model,
			ListPrice: row.ListPrice,
		})
	}

	totalPages := int((count + productPageSize - 1) / productPageSize)
	return ports.ProductPage{Items: items, Page: query.Page, TotalPages: totalPages}, nil
}
