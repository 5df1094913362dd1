package commands_test

import (
	"context"
	"testing"
	"time"

	"deliveryfee/internal/core/application/usecases/commands"
	"deliveryfee/internal/core/domain/model/catalog"
	"deliveryfee/internal/core/domain/model/fee"
	"deliveryfee/internal/core/domain/model/kernel"
	"deliveryfee/internal/core/domain/model/order"
	"deliveryfee/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllAwaitingFees(ctx context.Context, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockFeeCalculator struct{ mock.Mock }

func (m *MockFeeCalculator) CalculateFees(o *order.Order) (fee.DeliveryFees, error) {
	args := m.Called(o)
	return args.Get(0).(fee.DeliveryFees), args.Error(1)
}

type MockFeeMetrics struct{ mock.Mock }

func (m *MockFeeMetrics) ObserveComputation(mode order.DeliveryMode, outcome string, elapsed time.Duration) {
	m.Called(mode, outcome, elapsed)
}

func (m *MockFeeMetrics) ObserveRefresh(result string) {
	m.Called(result)
}

func newTestAddress(t *testing.T) *kernel.Address {
	t.Helper()

	addr, err := kernel.NewAddress(
		kernel.NewValueMap("Rue Joss"),
		kernel.NewValueMap("Akwa"),
		kernel.NewValueMap("Douala"),
		kernel.NewValueMap("Littoral"),
		kernel.NewValueMap("Cameroun"),
		nil,
	)
	require.NoError(t, err)
	return &addr
}

func newTestLines(t *testing.T) []order.OrderedLine {
	t.Helper()

	category, err := catalog.NewCategory("Electronics", false)
	require.NoError(t, err)
	variant, err := catalog.NewProductVariant("SKU-TV", catalog.Large, []catalog.Category{category})
	require.NoError(t, err)
	line, err := order.NewOrderedLine(variant, 1, 250000)
	require.NoError(t, err)
	return []order.OrderedLine{line}
}

func newTestOrder(t *testing.T, withAddress bool) *order.Order {
	t.Helper()

	var addr *kernel.Address
	if withAddress {
		addr = newTestAddress(t)
	}
	o, err := order.NewOrder(kernel.NewUUID(), addr, order.HomeDelivery, newTestLines(t))
	require.NoError(t, err)
	return o
}
