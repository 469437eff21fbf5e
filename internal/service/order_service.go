package service

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"go-teknostore-api/internal/model"
	"go-teknostore-api/internal/repository"
	"go-teknostore-api/internal/ws"
	"go-teknostore-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutItem is one cart line sent by the storefront. Prices are never
// taken from the client; they are read from the catalog at checkout time.
type CheckoutItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

type CheckoutInput struct {
	CustomerName    string         `json:"customer_name" validate:"required"`
	CustomerPhone   string         `json:"customer_phone" validate:"required"`
	CustomerEmail   string         `json:"customer_email"`
	ShippingAddress string         `json:"shipping_address"`
	PaymentMethod   string         `json:"payment_method" validate:"required,oneof=whatsapp bank_transfer"`
	Note            string         `json:"note"`
	Items           []CheckoutItem `json:"items"`
}

// CheckoutResult carries the created order plus, for WhatsApp orders, the
// deep link the storefront opens to finalize the purchase over chat.
type CheckoutResult struct {
	Order        *model.Order `json:"order"`
	WhatsAppLink string       `json:"whatsapp_link,omitempty"`
}

type OrderService interface {
	Checkout(input CheckoutInput) (*CheckoutResult, error)
	GetOrders() ([]model.Order, error)
	GetOrder(id uuid.UUID) (*model.Order, error)
	GetOrderByNumber(orderNumber string) (*model.Order, error)
	UpdateStatus(id uuid.UUID, status string, userID string) (*model.Order, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	wsHub       *ws.Hub
}

func NewOrderService(oRepo repository.OrderRepository, pRepo repository.ProductRepository, hub *ws.Hub) OrderService {
	return &orderService{
		orderRepo:   oRepo,
		productRepo: pRepo,
		wsHub:       hub,
	}
}

func (s *orderService) Checkout(input CheckoutInput) (*CheckoutResult, error) {
	if errs := validator.ValidateStruct(&input); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	if len(input.Items) == 0 {
		return nil, errors.New("cart is empty")
	}

	order := &model.Order{
		OrderNumber:     generateReference("SP"),
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		CustomerEmail:   input.CustomerEmail,
		ShippingAddress: input.ShippingAddress,
		Status:          model.OrderPending,
		PaymentMethod:   input.PaymentMethod,
		Note:            input.Note,
	}

	total := decimal.Zero
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, errors.New("item quantity must be greater than zero")
		}
		product, err := s.productRepo.FindByID(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s not found", item.ProductID)
		}
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		order.Items = append(order.Items, model.OrderItem{
			ProductID: product.ID,
			Title:     product.Title,
			UnitPrice: product.Price,
			Quantity:  item.Quantity,
			LineTotal: lineTotal,
		})
		total = total.Add(lineTotal)
	}
	order.Total = total

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	s.wsHub.Notify("order_created", map[string]interface{}{
		"id":           order.ID,
		"order_number": order.OrderNumber,
		"customer":     order.CustomerName,
		"total":        order.Total,
	})

	result := &CheckoutResult{Order: order}
	if input.PaymentMethod == model.PaymentWhatsApp {
		result.WhatsAppLink = buildWhatsAppLink(order)
	}
	return result, nil
}

// buildWhatsAppLink produces a wa.me deep link with the order summary
// pre-filled. The store number comes from STORE_WHATSAPP_NUMBER.
func buildWhatsAppLink(order *model.Order) string {
	number := os.Getenv("STORE_WHATSAPP_NUMBER")
	if number == "" {
		number = "905555555555"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hello, I would like to order (%s):\n", order.OrderNumber)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "- %dx %s (%s)\n", item.Quantity, item.Title, item.LineTotal.StringFixed(2))
	}
	fmt.Fprintf(&b, "Total: %s", order.Total.StringFixed(2))

	return "https://wa.me/" + number + "?text=" + url.QueryEscape(b.String())
}

func (s *orderService) GetOrders() ([]model.Order, error) {
	return s.orderRepo.FindAll()
}

func (s *orderService) GetOrder(id uuid.UUID) (*model.Order, error) {
	return s.orderRepo.FindByID(id)
}

func (s *orderService) GetOrderByNumber(orderNumber string) (*model.Order, error) {
	return s.orderRepo.FindByOrderNumber(orderNumber)
}

// UpdateStatus mirrors the repair workflow's permissive contract: the status
// string is stored verbatim, delivered stamps delivered_at.
func (s *orderService) UpdateStatus(id uuid.UUID, status string, userID string) (*model.Order, error) {
	if status == "" {
		return nil, errors.New("status is required")
	}
	if _, err := s.orderRepo.FindByID(id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"status":     status,
		"updated_by": userID,
	}
	if model.OrderStatus(status) == model.OrderDelivered {
		fields["delivered_at"] = time.Now()
	}
	return s.orderRepo.Updates(id, fields)
}
