package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestOrderCounters(t *testing.T) {
	placedBefore := testutil.ToFloat64(OrdersPlaced)
	failedBefore := testutil.ToFloat64(OrdersFailed)

	OrdersPlaced.Inc()
	OrdersFailed.Inc()
	OrdersFailed.Inc()

	if got := testutil.ToFloat64(OrdersPlaced) - placedBefore; got != 1 {
		t.Errorf("Expected OrdersPlaced delta 1, got %f", got)
	}
	if got := testutil.ToFloat64(OrdersFailed) - failedBefore; got != 2 {
		t.Errorf("Expected OrdersFailed delta 2, got %f", got)
	}
}

func TestValidationFailuresByKind(t *testing.T) {
	ValidationFailures.Reset()

	ValidationFailures.WithLabelValues("InvalidSymbol").Inc()
	ValidationFailures.WithLabelValues("InvalidSymbol").Inc()
	ValidationFailures.WithLabelValues("InvalidPrice").Inc()

	if got := testutil.ToFloat64(ValidationFailures.WithLabelValues("InvalidSymbol")); got != 2 {
		t.Errorf("Expected InvalidSymbol count 2, got %f", got)
	}
	if got := testutil.ToFloat64(ValidationFailures.WithLabelValues("InvalidPrice")); got != 1 {
		t.Errorf("Expected InvalidPrice count 1, got %f", got)
	}
}

func TestRESTCounters(t *testing.T) {
	RESTRequests.Reset()
	RESTErrors.Reset()

	RESTRequests.WithLabelValues("/fapi/v1/order", "POST").Inc()
	RESTErrors.WithLabelValues("/fapi/v1/order").Inc()

	if got := testutil.ToFloat64(RESTRequests.WithLabelValues("/fapi/v1/order", "POST")); got != 1 {
		t.Errorf("Expected REST request count 1, got %f", got)
	}
	if got := testutil.ToFloat64(RESTErrors.WithLabelValues("/fapi/v1/order")); got != 1 {
		t.Errorf("Expected REST error count 1, got %f", got)
	}
}
