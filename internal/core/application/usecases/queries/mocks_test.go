package queries_test

import (
	"context"
	"testing"
	"time"

	"deliveryfee/internal/core/domain/model/catalog"
	"deliveryfee/internal/core/domain/model/fee"
	"deliveryfee/internal/core/domain/model/kernel"
	"deliveryfee/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
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

func newTestOrder(t *testing.T, withAddress bool) *order.Order {
	t.Helper()

	var addr *kernel.Address
	if withAddress {
		a, err := kernel.NewAddress(
			kernel.NewValueMap("Rue Joss"),
			kernel.NewValueMap("Akwa"),
			kernel.NewValueMap("Douala"),
			kernel.NewValueMap("Littoral"),
			kernel.NewValueMap("Cameroun"),
			nil,
		)
		require.NoError(t, err)
		addr = &a
	}

	category, err := catalog.NewCategory("Food", true)
	require.NoError(t, err)
	variant, err := catalog.NewProductVariant("SKU-1", catalog.Medium, []catalog.Category{category})
	require.NoError(t, err)
	line, err := order.NewOrderedLine(variant, 2, 5000)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), addr, order.HomeDelivery, []order.OrderedLine{line})
	require.NoError(t, err)
	return o
}
