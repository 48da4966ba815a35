package services

import (
	"context"
	"encoding/json"
	"fmt"

	"restaurant-client/api"
	"restaurant-client/constants"
	"restaurant-client/models"
)

// ProductService is the catalog lookup the cart uses to snapshot product
// fields at add-time.
type ProductService struct {
	client *api.Client
}

func NewProductService(client *api.Client) *ProductService {
	return &ProductService{client: client}
}

func (s *ProductService) List(ctx context.Context, page, limit int) ([]models.Product, *models.PaginationMeta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	path := fmt.Sprintf("%s?page=%d&limit=%d", constants.EndpointProducts, page, limit)

	var resp models.PaginatedResponse
	if err := s.client.Get(ctx, path, &resp); err != nil {
		return nil, nil, err
	}

	var products []models.Product
	if err := json.Unmarshal(resp.Data, &products); err != nil {
		return nil, nil, fmt.Errorf("decode products: %w", err)
	}
	return products, &resp.Meta, nil
}

func (s *ProductService) ByID(ctx context.Context, id string) (*models.Product, error) {
	var resp models.Response
	if err := s.client.Get(ctx, fmt.Sprintf(constants.EndpointProductByID, id), &resp); err != nil {
		return nil, err
	}

	var product models.Product
	if err := json.Unmarshal(resp.Data, &product); err != nil {
		return nil, fmt.Errorf("decode product: %w", err)
	}
	return &product, nil
}

func (s *ProductService) ByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	var resp models.Response
	if err := s.client.Get(ctx, fmt.Sprintf(constants.EndpointProductsByCategory, categoryID), &resp); err != nil {
		return nil, err
	}

	var products []models.Product
	if err := json.Unmarshal(resp.Data, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func (s *ProductService) Categories(ctx context.Context) ([]models.Category, error) {
	var resp models.Response
	if err := s.client.Get(ctx, constants.EndpointCategories, &resp); err != nil {
		return nil, err
	}

	var categories []models.Category
	if err := json.Unmarshal(resp.Data, &categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return categories, nil
}
