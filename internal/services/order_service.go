package services

import (
	"encoding/json"
	"fmt"

	"kalahaat/internal/models"
	"kalahaat/internal/repositories"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// EventPublisher pushes order lifecycle events to the message broker.
// A nil publisher disables publication without affecting order state.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	publisher EventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

// GetAllOrders retrieves all orders, newest first.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// PlaceOrder atomically converts the cart into a pending order: the item
// snapshot and total are frozen before creation and the cart is cleared
// only after the order is stored, so a repository failure leaves the cart
// untouched and creates nothing.
//
// With no actor or an empty cart it returns (nil, nil): a deliberate
// silent no-op. Callers that need to distinguish "no-op" from "succeeded"
// must check the preconditions themselves.
func (s *OrderService) PlaceOrder(actor *models.User, cart *models.Cart, shipping *models.ShippingDetails, paymentMethod string) (*models.Order, error) {
	if actor == nil || cart == nil || cart.Empty() {
		return nil, nil
	}

	order := &models.Order{
		ID:              uuid.New().String(),
		CustomerID:      actor.ID,
		Items:           cart.Items(),
		Total:           cart.Total(),
		Status:          models.OrderPending,
		ShippingDetails: shipping,
		PaymentMethod:   paymentMethod,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}
	cart.Clear()

	s.publishEvent("order.created", map[string]interface{}{
		"orderID":    order.ID,
		"customerID": order.CustomerID,
		"status":     order.Status,
		"total":      order.Total,
	})

	return order, nil
}

// UpdateOrderStatus moves an order along the fulfillment state machine.
// Only admins and team members may call it; anything outside the legal
// transitions (including moves out of a terminal state) is rejected and
// the status stays unchanged.
func (s *OrderService) UpdateOrderStatus(actor *models.User, id string, status models.OrderStatus) error {
	if !models.ActorCan(actor, models.PermUpdateOrderStatus) {
		return ErrPermissionDenied
	}
	if !status.Valid() {
		return ErrInvalidStatus
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if !order.Status.CanTransitionTo(status) {
		return ErrInvalidTransition
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}

	s.publishEvent("order.status_updated", map[string]interface{}{
		"orderID": id,
		"from":    order.Status,
		"to":      status,
	})

	return nil
}

// TotalRevenue sums the totals of all orders except cancelled ones.
func (s *OrderService) TotalRevenue() (float64, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return 0, err
	}
	var revenue float64
	for _, o := range orders {
		if o.Status != models.OrderCancelled {
			revenue += o.Total
		}
	}
	return revenue, nil
}

func (s *OrderService) publishEvent(routingKey string, payload map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		logrus.WithError(err).Error("failed to marshal order event")
		return
	}
	if err := s.publisher.Publish("order", routingKey, body); err != nil {
		logrus.WithError(err).WithField("routing_key", routingKey).Warn("failed to publish order event")
	}
}
