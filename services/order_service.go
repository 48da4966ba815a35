package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"restaurant-client/api"
	"restaurant-client/constants"
	"restaurant-client/models"
)

var ErrEmptyCart = errors.New("cart is empty")

// OrderService turns the local cart into an order on the restaurant API.
type OrderService struct {
	client *api.Client
	cart   *CartService
}

func NewOrderService(client *api.Client, cart *CartService) *OrderService {
	return &OrderService{
		client: client,
		cart:   cart,
	}
}

// Checkout submits the current cart as a new order and clears the cart on
// success. The client-generated reference lets the server deduplicate a
// resubmitted request.
func (s *OrderService) Checkout(ctx context.Context, deliveryType, notes string) (*models.Order, error) {
	if !constants.IsValidDeliveryType(deliveryType) {
		return nil, fmt.Errorf("invalid delivery type %q", deliveryType)
	}

	snapshot := s.cart.Snapshot()
	if len(snapshot.Items) == 0 {
		return nil, ErrEmptyCart
	}

	req := models.CreateOrderRequest{
		Reference:    uuid.NewString(),
		Items:        make([]models.OrderItem, 0, len(snapshot.Items)),
		Total:        snapshot.Total,
		DeliveryType: deliveryType,
		Notes:        notes,
	}
	for _, item := range snapshot.Items {
		req.Items = append(req.Items, models.OrderItem{
			ProductID:      item.ProductID,
			Name:           item.Name,
			Price:          item.Price,
			Quantity:       item.Quantity,
			Customizations: item.Customizations,
			Notes:          item.Notes,
		})
	}

	var resp models.Response
	if err := s.client.Post(ctx, constants.EndpointOrders, req, &resp); err != nil {
		return nil, err
	}

	var order models.Order
	if err := json.Unmarshal(resp.Data, &order); err != nil {
		return nil, fmt.Errorf("decode order: %w", err)
	}

	if err := s.cart.Clear(); err != nil {
		return &order, err
	}
	return &order, nil
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	var resp models.Response
	if err := s.client.Get(ctx, constants.EndpointOrders, &resp); err != nil {
		return nil, err
	}

	var orders []models.Order
	if err := json.Unmarshal(resp.Data, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) ByID(ctx context.Context, id string) (*models.Order, error) {
	var resp models.Response
	if err := s.client.Get(ctx, fmt.Sprintf(constants.EndpointOrderByID, id), &resp); err != nil {
		return nil, err
	}

	var order models.Order
	if err := json.Unmarshal(resp.Data, &order); err != nil {
		return nil, fmt.Errorf("decode order: %w", err)
	}
	return &order, nil
}

// RestaurantStatus reports whether the restaurant currently accepts
// orders.
func (s *OrderService) RestaurantStatus(ctx context.Context) (*models.RestaurantStatus, error) {
	var resp models.Response
	if err := s.client.Get(ctx, constants.EndpointRestaurantStatus, &resp); err != nil {
		return nil, err
	}

	var status models.RestaurantStatus
	if err := json.Unmarshal(resp.Data, &status); err != nil {
		return nil, fmt.Errorf("decode restaurant status: %w", err)
	}
	return &status, nil
}
