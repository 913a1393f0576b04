package http_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"logistics/api"
	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/history"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validShipmentBody = `{
	"userId": 7,
	"weight": 2.5,
	"dimensions": "30x20x10",
	"productType": "books",
	"destinationAddress": {
		"regionCode": "US",
		"locality": "Austin",
		"administrativeArea": "TX",
		"postalCode": "78701",
		"addressLines": ["100 Congress Ave"]
	}
}`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRouter(t *testing.T, h httpadapter.Handlers, cfg httpadapter.RouterConfig) *echo.Echo {
	t.Helper()
	cfg.Logger = discardLogger()
	e, err := httpadapter.NewRouter(httpadapter.NewServer(h, cfg.Logger), cfg)
	require.NoError(t, err)
	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpadapter.Error {
	t.Helper()
	var body httpadapter.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	e := newRouter(t, httpadapter.Handlers{}, httpadapter.RouterConfig{})

	rec := serve(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCreateShipment(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h := &MockCreateShipmentHandler{}
		h.On("Handle", mock.Anything, mock.AnythingOfType("commands.CreateShipmentCommand")).
			Return(restoreShipment(t, 42, shipment.Waiting), nil)
		e := newRouter(t, httpadapter.Handlers{CreateShipment: h}, httpadapter.RouterConfig{})

		rec := serve(e, http.MethodPost, "/api/shipments", validShipmentBody)

		require.Equal(t, http.StatusCreated, rec.Code)
		var view queries.ShipmentView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		assert.Equal(t, int64(42), view.ID)
		assert.Equal(t, "COORD_1234ABCD", view.TrackingID)
		assert.Equal(t, "WAITING", view.CurrentStatus)
		assert.Equal(t, "Austin", view.DestinationAddress.Locality)
		assert.Nil(t, view.NormalizedAddress)

		cmd := h.Calls[0].Arguments.Get(1).(commands.CreateShipmentCommand)
		assert.Equal(t, int64(7), cmd.UserID())
		assert.InDelta(t, 2.5, cmd.Weight(), 0.0001)
		assert.Equal(t, "US", cmd.Destination().RegionCode())
	})

	t.Run("missing field is rejected before the handler", func(t *testing.T) {
		h := &MockCreateShipmentHandler{}
		e := newRouter(t, httpadapter.Handlers{CreateShipment: h}, httpadapter.RouterConfig{})

		rec := serve(e, http.MethodPost, "/api/shipments", strings.Replace(validShipmentBody, `"weight": 2.5,`, "", 1))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "weight is required", decodeError(t, rec).Message)
		h.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("malformed body", func(t *testing.T) {
		e := newRouter(t, httpadapter.Handlers{CreateShipment: &MockCreateShipmentHandler{}}, httpadapter.RouterConfig{})

		rec := serve(e, http.MethodPost, "/api/shipments", `{"userId":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)
	})

	t.Run("address rejected by validator", func(t *testing.T) {
		h := &MockCreateShipmentHandler{}
		h.On("Handle", mock.Anything, mock.Anything).Return(nil, errs.NewValueIsInvalidError("destinationAddress"))
		e := newRouter(t, httpadapter.Handlers{CreateShipment: h}, httpadapter.RouterConfig{})

		rec := serve(e, http.MethodPost, "/api/shipments", validShipmentBody)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, "destinationAddress")
	})

	t.Run("storage failure is not leaked", func(t *testing.T) {
		h := &MockCreateShipmentHandler{}
		h.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("dial tcp: connection refused"))
		e := newRouter(t, httpadapter.Handlers{CreateShipment: h}, httpadapter.RouterConfig{})

		rec := serve(e, http.MethodPost, "/api/shipments", validShipmentBody)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "Internal server error. Please try again later.", body.Message)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}

func TestGetShipment(t *testing.T) {
	view := queries.ShipmentViewFromDomain(restoreShipment(t, 5, shipment.InTransit))

	t.Run("found", func(t *testing.T) {
		h := &MockFindShipmentsHandler{}
		h.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.FindShipmentsQuery) bool {
			return q.ID() != nil && *q.ID() == 5 && q.UserID() != nil && *q.UserID() == 7
		})).Return([]queries.ShipmentView{view}, nil)
		e := newRouter(t, httpadapter.Handlers{FindShipments: h}, httpadapter.RouterConfig{})

		rec := serve(e, http.MethodGet, "/api/shipments/5?user_id=7", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"currentStatus":"IN_TRANSIT"`)
		h.AssertExpectations(t)
	})

	t.Run("not owned by user", func(t *testing.T) {
		h := &MockFindShipmentsHandler{}
		h.On("Handle", mock.Anything, mock.Anything).Return([]queries.ShipmentView{}, nil)
		e := newRouter(t, httpadapter.Handlers{FindShipments: h}, httpadapter.RouterConfig{})

		rec := serve(e, http.MethodGet, "/api/shipments/5?user_id=8", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	for _, target := range []string{"/api/shipments/5", "/api/shipments/5?user_id=abc", "/api/shipments/x?user_id=7"} {
		t.Run("bad request "+target, func(t *testing.T) {
			h := &MockFindShipmentsHandler{}
			e := newRouter(t, httpadapter.Handlers{FindShipments: h}, httpadapter.RouterConfig{})

			rec := serve(e, http.MethodGet, target, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			h.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}
}

func TestListShipments(t *testing.T) {
	h := &MockFindShipmentsHandler{}
	h.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.FindShipmentsQuery) bool {
		return q.ID() == nil && q.UserID() == nil
	})).Return([]queries.ShipmentView{}, nil)
	e := newRouter(t, httpadapter.Handlers{FindShipments: h}, httpadapter.RouterConfig{})

	rec := serve(e, http.MethodGet, "/api/shipments", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetShipmentDetails(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h := &MockGetShipmentDetailsHandler{}
		h.On("Handle", mock.Anything, mock.Anything).Return(queries.ShipmentDetails{
			ShipmentView: queries.ShipmentViewFromDomain(restoreShipment(t, 5, shipment.Waiting)),
			History:      []queries.HistoryEntryView{{ID: 1, ShipmentID: 5, Status: "WAITING"}},
			Metrics:      []queries.DeliveryMetricView{},
		}, nil)
		e := newRouter(t, httpadapter.Handlers{GetShipmentDetails: h}, httpadapter.RouterConfig{})

		rec := serve(e, http.MethodGet, "/api/shipments/5/details", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "COORD_1234ABCD", body["trackingId"])
		assert.Len(t, body["history"], 1)
		assert.Empty(t, body["metrics"])
	})

	t.Run("unknown shipment", func(t *testing.T) {
		h := &MockGetShipmentDetailsHandler{}
		h.On("Handle", mock.Anything, mock.Anything).
			Return(queries.ShipmentDetails{}, errs.NewObjectNotFoundError("shipment", int64(99)))
		e := newRouter(t, httpadapter.Handlers{GetShipmentDetails: h}, httpadapter.RouterConfig{})

		rec := serve(e, http.MethodGet, "/api/shipments/99/details", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, http.StatusNotFound, decodeError(t, rec).Code)
	})
}

func TestUpdateShipmentStatus(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		h := &MockUpdateShipmentStatusHandler{}
		h.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateShipmentStatusCommand) bool {
			return cmd.ShipmentID() == 5 && cmd.Status() == shipment.InTransit
		})).Return(restoreShipment(t, 5, shipment.InTransit), nil)
		e := newRouter(t, httpadapter.Handlers{UpdateShipmentStatus: h}, httpadapter.RouterConfig{})

		rec := serve(e, http.MethodPut, "/api/shipments/5", `{"status":"IN_TRANSIT"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		h.AssertExpectations(t)
	})

	t.Run("missing status", func(t *testing.T) {
		h := &MockUpdateShipmentStatusHandler{}
		e := newRouter(t, httpadapter.Handlers{UpdateShipmentStatus: h}, httpadapter.RouterConfig{})

		rec := serve(e, http.MethodPut, "/api/shipments/5", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "status is required", decodeError(t, rec).Message)
	})

	t.Run("unknown shipment", func(t *testing.T) {
		h := &MockUpdateShipmentStatusHandler{}
		h.On("Handle", mock.Anything, mock.Anything).Return(nil, errs.NewObjectNotFoundError("shipment", int64(5)))
		e := newRouter(t, httpadapter.Handlers{UpdateShipmentStatus: h}, httpadapter.RouterConfig{})

		rec := serve(e, http.MethodPut, "/api/shipments/5", `{"status":"IN_TRANSIT"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMarkShipmentDelivered(t *testing.T) {
	t.Run("delivered", func(t *testing.T) {
		h := &MockMarkShipmentDeliveredHandler{}
		h.On("Handle", mock.Anything, mock.Anything).Return(restoreShipment(t, 5, shipment.Delivered), nil)
		e := newRouter(t, httpadapter.Handlers{MarkShipmentDelivered: h}, httpadapter.RouterConfig{})

		rec := serve(e, http.MethodPut, "/api/shipments/5/mark_delivered", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"currentStatus":"DELIVERED"`)
	})

	t.Run("wrong state", func(t *testing.T) {
		h := &MockMarkShipmentDeliveredHandler{}
		h.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errs.NewStateIsInvalidError("status", shipment.Delivered))
		e := newRouter(t, httpadapter.Handlers{MarkShipmentDelivered: h}, httpadapter.RouterConfig{})

		rec := serve(e, http.MethodPut, "/api/shipments/5/mark_delivered", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteShipment(t *testing.T) {
	h := &MockDeleteShipmentHandler{}
	h.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.DeleteShipmentCommand) bool {
		return cmd.ShipmentID() == 5
	})).Return(nil)
	e := newRouter(t, httpadapter.Handlers{DeleteShipment: h}, httpadapter.RouterConfig{})

	rec := serve(e, http.MethodDelete, "/api/shipments/5", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	h.AssertExpectations(t)
}

func TestCreateRouteAssignment(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h := &MockCreateRouteAssignmentHandler{}
		h.On("Handle", mock.Anything, mock.Anything).Return(route.RestoreAssignment(3, 5, 9, time.Now()), nil)
		e := newRouter(t, httpadapter.Handlers{CreateRouteAssignment: h}, httpadapter.RouterConfig{})

		rec := serve(e, http.MethodPost, "/api/shipments/assignment-route", `{"shipmentId":5,"routeId":9}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var body httpadapter.RouteAssignmentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, int64(3), body.ID)
		assert.Equal(t, int64(9), body.RouteID)
	})

	t.Run("missing route id", func(t *testing.T) {
		h := &MockCreateRouteAssignmentHandler{}
		e := newRouter(t, httpadapter.Handlers{CreateRouteAssignment: h}, httpadapter.RouterConfig{})

		rec := serve(e, http.MethodPost, "/api/shipments/assignment-route", `{"shipmentId":5}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "routeId is required", decodeError(t, rec).Message)
	})
}

func TestStaticShipmentRoutes(t *testing.T) {
	indicators := &MockGetShipmentIndicatorsHandler{}
	indicators.On("Handle", mock.Anything, mock.Anything).Return(queries.ShipmentIndicators{
		TotalShipments: 3,
		StatusCounts:   map[string]int64{"WAITING": 2, "DELIVERED": 1},
		TotalWeight:    30,
	}, nil)
	daily := &MockGetDailyShipmentCountsHandler{}
	daily.On("Handle", mock.Anything, mock.Anything).Return([]queries.DailyShipmentCount{}, nil)
	e := newRouter(t, httpadapter.Handlers{
		GetShipmentIndicators:  indicators,
		GetDailyShipmentCounts: daily,
	}, httpadapter.RouterConfig{})

	rec := serve(e, http.MethodGet, "/api/shipments/indicators", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"totalShipments":3,"statusCounts":{"WAITING":2,"DELIVERED":1},"totalWeight":30}`,
		rec.Body.String(),
	)

	rec = serve(e, http.MethodGet, "/api/shipments/daily-count", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAppendStatusHistory(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h := &MockAppendStatusHistoryHandler{}
		h.On("Handle", mock.Anything, mock.Anything).
			Return(history.RestoreEntry(11, 5, "CUSTOMS_HOLD", time.Now()), nil)
		e := newRouter(t, httpadapter.Handlers{AppendStatusHistory: h}, httpadapter.RouterConfig{})

		rec := serve(e, http.MethodPost, "/api/history", `{"shipmentId":5,"status":"CUSTOMS_HOLD"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"CUSTOMS_HOLD"`)
	})

	t.Run("unknown shipment", func(t *testing.T) {
		h := &MockAppendStatusHistoryHandler{}
		h.On("Handle", mock.Anything, mock.Anything).Return(nil, errs.NewObjectNotFoundError("shipment", int64(404)))
		e := newRouter(t, httpadapter.Handlers{AppendStatusHistory: h}, httpadapter.RouterConfig{})

		rec := serve(e, http.MethodPost, "/api/history", `{"shipmentId":404,"status":"WAITING"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("status too long", func(t *testing.T) {
		h := &MockAppendStatusHistoryHandler{}
		e := newRouter(t, httpadapter.Handlers{AppendStatusHistory: h}, httpadapter.RouterConfig{})

		body := `{"shipmentId":5,"status":"` + strings.Repeat("X", 51) + `"}`
		rec := serve(e, http.MethodPost, "/api/history", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		h.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestRecordDeliveryMetric(t *testing.T) {
	t.Run("zero minutes is accepted", func(t *testing.T) {
		h := &MockRecordDeliveryMetricHandler{}
		h.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RecordDeliveryMetricCommand) bool {
			return cmd.DeliveryTimeMinutes() == 0
		})).Return(history.RestoreDeliveryMetric(1, 5, 0, time.Now()), nil)
		e := newRouter(t, httpadapter.Handlers{RecordDeliveryMetric: h}, httpadapter.RouterConfig{})

		rec := serve(e, http.MethodPost, "/api/history/metrics", `{"shipmentId":5,"deliveryTimeMinutes":0}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		h.AssertExpectations(t)
	})

	t.Run("missing minutes", func(t *testing.T) {
		h := &MockRecordDeliveryMetricHandler{}
		e := newRouter(t, httpadapter.Handlers{RecordDeliveryMetric: h}, httpadapter.RouterConfig{})

		rec := serve(e, http.MethodPost, "/api/history/metrics", `{"shipmentId":5}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "deliveryTimeMinutes is required", decodeError(t, rec).Message)
	})
}

func TestListStatusHistory(t *testing.T) {
	h := &MockListStatusHistoryHandler{}
	h.On("Handle", mock.Anything, mock.Anything).Return([]queries.HistoryEntryView{
		{ID: 2, ShipmentID: 5, Status: "IN_TRANSIT"},
	}, nil)
	e := newRouter(t, httpadapter.Handlers{ListStatusHistory: h}, httpadapter.RouterConfig{})

	rec := serve(e, http.MethodGet, "/api/history", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"shipmentId":5`)
}

func TestFindUserByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h := &MockFindUserByEmailHandler{}
		h.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.FindUserByEmailQuery) bool {
			return q.Email() == "ada@example.com"
		})).Return(queries.UserView{ID: 7, Name: "Ada", Email: "ada@example.com", Role: "customer"}, nil)
		e := newRouter(t, httpadapter.Handlers{FindUserByEmail: h}, httpadapter.RouterConfig{})

		rec := serve(e, http.MethodGet, "/api/users?email=Ada@Example.com", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":7,"name":"Ada","email":"ada@example.com","role":"customer"}`, rec.Body.String())
	})

	t.Run("blank email", func(t *testing.T) {
		h := &MockFindUserByEmailHandler{}
		e := newRouter(t, httpadapter.Handlers{FindUserByEmail: h}, httpadapter.RouterConfig{})

		rec := serve(e, http.MethodGet, "/api/users", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		h.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("unknown email", func(t *testing.T) {
		h := &MockFindUserByEmailHandler{}
		h.On("Handle", mock.Anything, mock.Anything).
			Return(queries.UserView{}, errs.NewObjectNotFoundError("user", "nobody@example.com"))
		e := newRouter(t, httpadapter.Handlers{FindUserByEmail: h}, httpadapter.RouterConfig{})

		rec := serve(e, http.MethodGet, "/api/users?email=nobody@example.com", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUnknownRoute(t *testing.T) {
	e := newRouter(t, httpadapter.Handlers{}, httpadapter.RouterConfig{})

	rec := serve(e, http.MethodGet, "/api/nothing-here", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, decodeError(t, rec).Code)
}

func TestMetricsEndpoint(t *testing.T) {
	m := metrics.New(metrics.DefaultConfig())
	e := newRouter(t, httpadapter.Handlers{}, httpadapter.RouterConfig{Metrics: m})

	serve(e, http.MethodGet, "/health", "")
	rec := serve(e, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `logistics_http_requests_total{method="GET",path="/health",status="200"} 1`)
}

func TestDocs(t *testing.T) {
	doc, err := api.Load(t.Context())
	require.NoError(t, err)
	e := newRouter(t, httpadapter.Handlers{}, httpadapter.RouterConfig{Docs: doc})

	rec := serve(e, http.MethodGet, "/api/docs/index.html", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(e, http.MethodGet, "/api/docs/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/shipments/{id}/mark_delivered"`)
}
