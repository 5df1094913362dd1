package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "deliveryfee/internal/adapters/in/http"
	"deliveryfee/internal/core/application/usecases/commands"
	"deliveryfee/internal/core/application/usecases/queries"
	"deliveryfee/internal/core/domain/model/catalog"
	"deliveryfee/internal/core/domain/model/kernel"
	"deliveryfee/internal/core/domain/model/order"
	"deliveryfee/internal/core/domain/services"
	"deliveryfee/internal/core/ports"
	"deliveryfee/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockQuoteHandler struct{ mock.Mock }

func (m *MockQuoteHandler) Handle(
	ctx context.Context,
	query queries.QuoteDeliveryFeesQuery,
) (queries.DeliveryFeesResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.DeliveryFeesResponse), args.Error(1)
}

type MockOrderFeesHandler struct{ mock.Mock }

func (m *MockOrderFeesHandler) Handle(
	ctx context.Context,
	query queries.GetOrderDeliveryFeesQuery,
) (queries.DeliveryFeesResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.DeliveryFeesResponse), args.Error(1)
}

type MockAwaitingOrdersHandler struct{ mock.Mock }

func (m *MockAwaitingOrdersHandler) Handle(
	ctx context.Context,
	query queries.ListOrdersAwaitingFeesQuery,
) ([]queries.ListOrdersAwaitingFeesQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.ListOrdersAwaitingFeesQueryResponse), args.Error(1)
}

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type testServer struct {
	echo      *echo.Echo
	create    *MockCreateOrderHandler
	quote     *MockQuoteHandler
	orderFees *MockOrderFeesHandler
	awaiting  *MockAwaitingOrdersHandler
}

func newTestServer(t *testing.T) testServer {
	t.Helper()

	doc, err := httpin.LoadOpenAPI()
	require.NoError(t, err)
	validator, err := httpin.RequestValidator(doc)
	require.NoError(t, err)

	ts := testServer{
		echo:      echo.New(),
		create:    new(MockCreateOrderHandler),
		quote:     new(MockQuoteHandler),
		orderFees: new(MockOrderFeesHandler),
		awaiting:  new(MockAwaitingOrdersHandler),
	}
	server := httpin.NewServer(ts.create, ts.quote, ts.orderFees, ts.awaiting, slog.Default())
	httpin.RegisterHandlers(ts.echo, server, validator)
	return ts
}

func (ts testServer) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpin.Error {
	t.Helper()

	var body httpin.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

const quoteBody = `{
	"deliveryMode": "HOME_DELIVERY",
	"address": {
		"quarter": {"name": "Akwa"},
		"city": {"code": "DLA", "name": "Douala"},
		"postalCode": 4032
	},
	"lines": [
		{"sku": "SKU-RICE", "shippingClass": "SMALL", "quantity": 2, "totalPrice": 3000,
		 "categories": [{"name": "Food", "isFmcg": true}]},
		{"sku": "SKU-TV", "shippingClass": "LARGE", "quantity": 1, "totalPrice": 250000}
	]
}`

func TestServer_QuoteDeliveryFees(t *testing.T) {
	t.Run("prices the cart", func(t *testing.T) {
		ts := newTestServer(t)
		ts.quote.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.QuoteDeliveryFeesQuery) bool {
			cart := q.Order()
			addr, ok := cart.Address()
			return ok &&
				addr.City().Name == "Douala" &&
				addr.Quarter().Name == "Akwa" &&
				cart.DeliveryMode() == order.HomeDelivery &&
				cart.UnitCount() == 3 &&
				cart.Lines()[0].Variant().IsFmcg() &&
				cart.Lines()[1].Variant().ShippingClass() == catalog.Large
		})).Return(queries.DeliveryFeesResponse{Amount: 2500}, nil).Once()

		rec := ts.do(t, http.MethodPost, "/api/v1/delivery-fees/quote", quoteBody)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"amount": 2500, "negotiable": false}`, rec.Body.String())
		ts.quote.AssertExpectations(t)
	})

	t.Run("negotiable fee", func(t *testing.T) {
		ts := newTestServer(t)
		ts.quote.On("Handle", mock.Anything, mock.Anything).
			Return(queries.DeliveryFeesResponse{Negotiable: true}, nil).Once()

		rec := ts.do(t, http.MethodPost, "/api/v1/delivery-fees/quote", quoteBody)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"amount": 0, "negotiable": true}`, rec.Body.String())
	})

	t.Run("missing address", func(t *testing.T) {
		ts := newTestServer(t)
		ts.quote.On("Handle", mock.Anything, mock.Anything).
			Return(queries.DeliveryFeesResponse{}, services.ErrMissingDestination).Once()

		rec := ts.do(t, http.MethodPost, "/api/v1/delivery-fees/quote",
			`{"deliveryMode": "EXPRESS", "lines": [{"sku": "A", "shippingClass": "SMALL", "quantity": 1, "totalPrice": 10}]}`)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, httpin.Error{Code: 422, Message: "cannot compute: address missing"}, decodeError(t, rec))
	})

	t.Run("unsupported pricing case", func(t *testing.T) {
		ts := newTestServer(t)
		failure := fmt.Errorf("%w: %w", services.ErrFeeComputationFailed, services.ErrUnsupportedPricingCase)
		ts.quote.On("Handle", mock.Anything, mock.Anything).Return(queries.DeliveryFeesResponse{}, failure).Once()

		rec := ts.do(t, http.MethodPost, "/api/v1/delivery-fees/quote", quoteBody)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, "unsupported")
	})

	t.Run("engine failure hides details", func(t *testing.T) {
		ts := newTestServer(t)
		failure := fmt.Errorf("%w: %w", services.ErrFeeComputationFailed, services.ErrUnitFeeCountMismatch)
		ts.quote.On("Handle", mock.Anything, mock.Anything).Return(queries.DeliveryFeesResponse{}, failure).Once()

		rec := ts.do(t, http.MethodPost, "/api/v1/delivery-fees/quote", quoteBody)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal Server Error", decodeError(t, rec).Message)
	})

	t.Run("unknown shipping class is rejected before the handler", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodPost, "/api/v1/delivery-fees/quote",
			`{"deliveryMode": "HOME_DELIVERY", "lines": [{"sku": "A", "shippingClass": "HUGE", "quantity": 1, "totalPrice": 10}]}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		ts.quote.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("address without city", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodPost, "/api/v1/delivery-fees/quote",
			`{"deliveryMode": "HOME_DELIVERY", "address": {"city": {"name": "  "}}, "lines": []}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, "city")
		ts.quote.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("malformed json", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodPost, "/api/v1/delivery-fees/quote", `{"deliveryMode":`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_GetOrderDeliveryFees(t *testing.T) {
	t.Run("prices the stored order", func(t *testing.T) {
		ts := newTestServer(t)
		id := kernel.NewUUID()
		ts.orderFees.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrderDeliveryFeesQuery) bool {
			return q.OrderID().IsEqual(id)
		})).Return(queries.DeliveryFeesResponse{Amount: 1500}, nil).Once()

		rec := ts.do(t, http.MethodGet, "/api/v1/orders/"+id.String()+"/delivery-fees", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"amount": 1500, "negotiable": false}`, rec.Body.String())
		ts.orderFees.AssertExpectations(t)
	})

	t.Run("unknown order", func(t *testing.T) {
		ts := newTestServer(t)
		id := kernel.NewUUID()
		ts.orderFees.On("Handle", mock.Anything, mock.Anything).
			Return(queries.DeliveryFeesResponse{}, errs.NewObjectNotFoundError("order", id.String())).Once()

		rec := ts.do(t, http.MethodGet, "/api/v1/orders/"+id.String()+"/delivery-fees", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, 404, decodeError(t, rec).Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodGet, "/api/v1/orders/not-a-uuid/delivery-fees", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		ts.orderFees.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("nil id", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodGet, "/api/v1/orders/00000000-0000-0000-0000-000000000000/delivery-fees", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		ts.orderFees.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestServer_CreateOrder(t *testing.T) {
	const orderBody = `{
		"id": "6f1c3c52-8a53-4d8e-9d0f-0f6a2b8f5c11",
		"deliveryMode": "IN_AGENCY",
		"lines": [{"sku": "SKU-SOFA", "shippingClass": "SUPER_LARGE", "quantity": 1, "totalPrice": 900000}]
	}`

	t.Run("stores the order with the requested id", func(t *testing.T) {
		ts := newTestServer(t)
		ts.create.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
			return cmd.OrderID().String() == "6f1c3c52-8a53-4d8e-9d0f-0f6a2b8f5c11" &&
				cmd.Address() == nil &&
				cmd.DeliveryMode() == order.InAgency &&
				len(cmd.Lines()) == 1
		})).Return(nil).Once()

		rec := ts.do(t, http.MethodPost, "/api/v1/orders", orderBody)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id": "6f1c3c52-8a53-4d8e-9d0f-0f6a2b8f5c11"}`, rec.Body.String())
		ts.create.AssertExpectations(t)
	})

	t.Run("generates an id when none is given", func(t *testing.T) {
		ts := newTestServer(t)
		ts.create.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()

		rec := ts.do(t, http.MethodPost, "/api/v1/orders",
			`{"deliveryMode": "HOME_DELIVERY", "lines": [{"sku": "A", "shippingClass": "SMALL", "quantity": 1, "totalPrice": 10}]}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var created httpin.CreatedOrder
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.NotEqual(t, [16]byte{}, [16]byte(created.ID))
	})

	t.Run("duplicate id", func(t *testing.T) {
		ts := newTestServer(t)
		ts.create.On("Handle", mock.Anything, mock.Anything).Return(ports.ErrOrderAlreadyExists).Once()

		rec := ts.do(t, http.MethodPost, "/api/v1/orders", orderBody)

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, 409, decodeError(t, rec).Code)
	})

	t.Run("no lines", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodPost, "/api/v1/orders", `{"deliveryMode": "HOME_DELIVERY", "lines": []}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		ts.create.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("storage failure", func(t *testing.T) {
		ts := newTestServer(t)
		ts.create.On("Handle", mock.Anything, mock.Anything).Return(assert.AnError).Once()

		rec := ts.do(t, http.MethodPost, "/api/v1/orders", orderBody)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestServer_ListOrdersAwaitingFees(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		ts := newTestServer(t)
		id := kernel.NewUUID()
		createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		ts.awaiting.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOrdersAwaitingFeesQuery) bool {
			return q.Limit() == 50
		})).Return([]queries.ListOrdersAwaitingFeesQueryResponse{
			{ID: id, City: "Douala", DeliveryMode: order.Express, CreatedAt: createdAt},
		}, nil).Once()

		rec := ts.do(t, http.MethodGet, "/api/v1/orders/awaiting-fees", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, fmt.Sprintf(
			`[{"id": %q, "city": "Douala", "deliveryMode": "EXPRESS", "createdAt": "2024-03-01T10:00:00Z"}]`,
			id.String(),
		), rec.Body.String())
		ts.awaiting.AssertExpectations(t)
	})

	t.Run("explicit limit", func(t *testing.T) {
		ts := newTestServer(t)
		ts.awaiting.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOrdersAwaitingFeesQuery) bool {
			return q.Limit() == 5
		})).Return([]queries.ListOrdersAwaitingFeesQueryResponse{}, nil).Once()

		rec := ts.do(t, http.MethodGet, "/api/v1/orders/awaiting-fees?limit=5", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("limit out of range", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodGet, "/api/v1/orders/awaiting-fees?limit=0", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		ts.awaiting.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}
