// Package jejak is a small Go client for the Customer.io Behavioral Tracking
// API (https://track.customer.io/api/v1/):
//
//   - Identify / Delete customer records (PUT / DELETE customers/{id})
//   - Track named behavioral events (POST customers/{id}/events)
//   - Implicit *Current variants resolving the active customer through a
//     pluggable CustomerProvider
//   - Prometheus metrics and lightweight structured debug logging
//
// Design goals:
//   - Small surface area – functional options configure everything
//   - One HTTP call per operation: no batching, queuing or retries; retry
//     policy belongs to the caller, transport policy to the *http.Client
//   - Safe concurrent use of a single *Client instance
//   - Extensibility via pluggable Logger, CustomerProvider and metrics
//
// Typical usage:
//
//	client := jejak.New("SITE_ID", "API_KEY",
//	    jejak.WithCustomerProvider(provider),
//	    jejak.WithMetrics(),
//	)
//	err := client.Track(ctx, "cust_1", "signed_up", jejak.TrackOptions{
//	    Data: map[string]interface{}{"plan": "pro"},
//	})
//
// An operation invoked with an empty customer ID is a deliberate no-op: no
// request is sent and no error is returned, so callers can report activity
// for possibly-anonymous users without guarding every call site. A non-200
// response surfaces as *APIError carrying the status code; transport faults
// propagate unmodified from the underlying *http.Client.
package jejak
