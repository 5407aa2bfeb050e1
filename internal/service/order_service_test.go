package service

import (
	"testing"

	"github.com/rigforge/internal/constants"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestOrderCreateAndItems(t *testing.T) {
	svc := newTestServices(t, false)
	user := svc.seedUser(t, "order@example.com")
	product := svc.seedProduct(t, constants.CategoryCPU, 699.99, 3)

	_, err := svc.orders.Create(CreateOrderInput{UserID: user.ID, TotalAmount: decimal.Zero, ShippingAddress: "a", BillingAddress: "b"})
	require.ErrorIs(t, err, ErrInvalidOrderAmount)
	_, err = svc.orders.Create(CreateOrderInput{UserID: 9999, TotalAmount: decimal.NewFromInt(10), ShippingAddress: "a", BillingAddress: "b"})
	require.ErrorIs(t, err, ErrUserNotFound)

	order, err := svc.orders.Create(CreateOrderInput{
		UserID:          user.ID,
		TotalAmount:     decimal.RequireFromString("1399.98"),
		ShippingAddress: "1 Main St",
		BillingAddress:  "1 Main St",
	})
	require.NoError(t, err)
	require.Equal(t, constants.OrderStatusPending, order.Status)

	_, err = svc.orders.CreateItem(9999, CreateOrderItemInput{ProductID: product.ID, Quantity: 1, PriceAtTime: decimal.NewFromInt(1)})
	require.ErrorIs(t, err, ErrOrderNotFound)
	_, err = svc.orders.CreateItem(order.ID, CreateOrderItemInput{ProductID: 9999, Quantity: 1, PriceAtTime: decimal.NewFromInt(1)})
	require.ErrorIs(t, err, ErrProductNotFound)
	_, err = svc.orders.CreateItem(order.ID, CreateOrderItemInput{ProductID: product.ID, Quantity: 0, PriceAtTime: decimal.NewFromInt(1)})
	require.ErrorIs(t, err, ErrInvalidQuantity)

	item, err := svc.orders.CreateItem(order.ID, CreateOrderItemInput{ProductID: product.ID, Quantity: 2, PriceAtTime: decimal.RequireFromString("699.99")})
	require.NoError(t, err)
	require.Equal(t, "699.99", item.PriceAtTime.String())

	detail, err := svc.orders.GetByID(order.ID)
	require.NoError(t, err)
	require.Len(t, detail.Items, 1)

	stock, err := svc.products.ListLowStock()
	require.NoError(t, err)
	require.Len(t, stock, 1)
	require.Equal(t, 3, stock[0].StockQuantity)
}

func TestOrderStatusOverwriteByDefault(t *testing.T) {
	svc := newTestServices(t, false)
	user := svc.seedUser(t, "order@example.com")
	order := svc.seedOrderWith(t, user.ID, 0, constants.OrderStatusDelivered, 10)

	_, err := svc.orders.UpdateStatus(order.ID, "refunded")
	require.ErrorIs(t, err, ErrOrderStatusInvalid)

	updated, err := svc.orders.UpdateStatus(order.ID, " Pending ")
	require.NoError(t, err)
	require.Equal(t, constants.OrderStatusPending, updated.Status)
	require.Len(t, updated.StatusHistory, 1)
	require.Equal(t, constants.OrderStatusDelivered, updated.StatusHistory[0].FromStatus)

	same, err := svc.orders.UpdateStatus(order.ID, constants.OrderStatusPending)
	require.NoError(t, err)
	require.Len(t, same.StatusHistory, 1)

	missing, err := svc.orders.UpdateStatus(9999, constants.OrderStatusShipped)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestOrderStatusStrictTransitions(t *testing.T) {
	svc := newTestServices(t, true)
	user := svc.seedUser(t, "order@example.com")
	order := svc.seedOrderWith(t, user.ID, 0, constants.OrderStatusPending, 10)

	_, err := svc.orders.UpdateStatus(order.ID, constants.OrderStatusShipped)
	require.ErrorIs(t, err, ErrOrderStatusInvalid)

	for _, next := range []string{constants.OrderStatusProcessing, constants.OrderStatusShipped, constants.OrderStatusDelivered} {
		_, err = svc.orders.UpdateStatus(order.ID, next)
		require.NoError(t, err, "transition to %s", next)
	}
	_, err = svc.orders.UpdateStatus(order.ID, constants.OrderStatusCancelled)
	require.ErrorIs(t, err, ErrOrderStatusInvalid)

	detail, err := svc.orders.GetByID(order.ID)
	require.NoError(t, err)
	require.Len(t, detail.StatusHistory, 3)
}

func TestCanTransitionOrderStatus(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{constants.OrderStatusPending, constants.OrderStatusProcessing, true},
		{constants.OrderStatusPending, constants.OrderStatusCancelled, true},
		{constants.OrderStatusPending, constants.OrderStatusDelivered, false},
		{constants.OrderStatusProcessing, constants.OrderStatusShipped, true},
		{constants.OrderStatusShipped, constants.OrderStatusCancelled, false},
		{constants.OrderStatusDelivered, constants.OrderStatusDelivered, true},
		{constants.OrderStatusCancelled, constants.OrderStatusPending, false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, canTransitionOrderStatus(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestOrderListsNewestFirst(t *testing.T) {
	svc := newTestServices(t, false)
	alice := svc.seedUser(t, "alice@example.com")
	bob := svc.seedUser(t, "bob@example.com")
	first := svc.seedOrderWith(t, alice.ID, 0, constants.OrderStatusPending, 10)
	second := svc.seedOrderWith(t, alice.ID, 0, constants.OrderStatusPending, 20)
	svc.seedOrderWith(t, bob.ID, 0, constants.OrderStatusPending, 30)

	orders, err := svc.orders.ListByUser(alice.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.Equal(t, second.ID, orders[0].ID)
	require.Equal(t, first.ID, orders[1].ID)

	all, err := svc.orders.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
}
