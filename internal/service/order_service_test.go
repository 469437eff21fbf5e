package service

import (
	"regexp"
	"testing"

	"go-teknostore-api/internal/model"
	"go-teknostore-api/internal/repository"
	"go-teknostore-api/internal/ws"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderService(t *testing.T) (OrderService, *gorm.DB) {
	db := newTestDB(t)
	hub := ws.NewHub()
	go hub.Run()
	return NewOrderService(repository.NewOrderRepo(db), repository.NewProductRepo(db), hub), db
}

func mustProduct(t *testing.T, db *gorm.DB, title string, price string) *model.Product {
	t.Helper()
	category := mustCategory(t, db, "Category "+uuid.NewString()[:8], 0, nil)
	product := &model.Product{
		Title:      title,
		Slug:       "prod-" + uuid.NewString()[:8],
		Price:      decimal.RequireFromString(price),
		CategoryID: category.ID,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func TestCheckoutComputesTotalsFromCatalog(t *testing.T) {
	svc, db := newOrderService(t)

	mouse := mustProduct(t, db, "Wireless Mouse", "350.00")
	ssd := mustProduct(t, db, "1TB SSD", "1200.50")

	result, err := svc.Checkout(CheckoutInput{
		CustomerName:  "Ayşe Yılmaz",
		CustomerPhone: "05554443322",
		PaymentMethod: model.PaymentWhatsApp,
		Items: []CheckoutItem{
			{ProductID: mouse.ID, Quantity: 2},
			{ProductID: ssd.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	order := result.Order
	assert.Regexp(t, regexp.MustCompile(`^SP[A-Z0-9]+$`), order.OrderNumber)
	assert.Equal(t, model.OrderPending, order.Status)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("1900.50")))

	require.Len(t, order.Items, 2)
	assert.Equal(t, "Wireless Mouse", order.Items[0].Title)
	assert.True(t, order.Items[0].LineTotal.Equal(decimal.RequireFromString("700.00")))

	// WhatsApp orders carry the deep link with the order number in it
	assert.Contains(t, result.WhatsAppLink, "https://wa.me/")
	assert.Contains(t, result.WhatsAppLink, order.OrderNumber)
}

func TestCheckoutBankTransferHasNoLink(t *testing.T) {
	svc, db := newOrderService(t)

	product := mustProduct(t, db, "Keyboard", "800.00")

	result, err := svc.Checkout(CheckoutInput{
		CustomerName:  "Mehmet Kaya",
		CustomerPhone: "05551234567",
		PaymentMethod: model.PaymentBankTransfer,
		Items:         []CheckoutItem{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Empty(t, result.WhatsAppLink)
}

func TestCheckoutRejectsBadCarts(t *testing.T) {
	svc, db := newOrderService(t)

	product := mustProduct(t, db, "Webcam", "500.00")

	_, err := svc.Checkout(CheckoutInput{
		CustomerName:  "Test",
		CustomerPhone: "0555",
		PaymentMethod: model.PaymentWhatsApp,
	})
	assert.EqualError(t, err, "cart is empty")

	_, err = svc.Checkout(CheckoutInput{
		CustomerName:  "Test",
		CustomerPhone: "0555",
		PaymentMethod: model.PaymentWhatsApp,
		Items:         []CheckoutItem{{ProductID: product.ID, Quantity: 0}},
	})
	assert.Error(t, err)

	_, err = svc.Checkout(CheckoutInput{
		CustomerName:  "Test",
		CustomerPhone: "0555",
		PaymentMethod: model.PaymentWhatsApp,
		Items:         []CheckoutItem{{ProductID: uuid.New(), Quantity: 1}},
	})
	assert.Error(t, err)

	_, err = svc.Checkout(CheckoutInput{
		CustomerName:  "Test",
		CustomerPhone: "0555",
		PaymentMethod: "credit_card",
		Items:         []CheckoutItem{{ProductID: product.ID, Quantity: 1}},
	})
	assert.Error(t, err)
}

func TestOrderTrackingAndStatus(t *testing.T) {
	svc, db := newOrderService(t)

	product := mustProduct(t, db, "Monitor", "4500.00")
	result, err := svc.Checkout(CheckoutInput{
		CustomerName:  "Fatma Çelik",
		CustomerPhone: "05559998877",
		PaymentMethod: model.PaymentBankTransfer,
		Items:         []CheckoutItem{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	found, err := svc.GetOrderByNumber(result.Order.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, result.Order.ID, found.ID)
	assert.Len(t, found.Items, 1)

	_, err = svc.GetOrderByNumber("SPDOESNOTEXIST")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	delivered, err := svc.UpdateStatus(found.ID, string(model.OrderDelivered), "admin")
	require.NoError(t, err)
	assert.Equal(t, model.OrderDelivered, delivered.Status)
	assert.NotNil(t, delivered.DeliveredAt)
}
