package jejak

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
)

type mutableProvider struct {
	id      string
	details map[string]interface{}
}

func (p *mutableProvider) CustomerID() string                      { return p.id }
func (p *mutableProvider) CustomerDetails() map[string]interface{} { return p.details }

func TestImplicitOperationsWithoutProvider(t *testing.T) {
	callCount := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		callCount++
		w.WriteHeader(http.StatusOK)
	})

	ctx := context.Background()
	operations := map[string]func() error{
		"IdentifyCurrent": func() error { return client.IdentifyCurrent(ctx) },
		"DeleteCurrent":   func() error { return client.DeleteCurrent(ctx) },
		"TrackCurrent":    func() error { return client.TrackCurrent(ctx, "signed_up", TrackOptions{}) },
	}

	for name, op := range operations {
		if err := op(); !errors.Is(err, ErrNoCustomerProvider) {
			t.Errorf("%s: expected ErrNoCustomerProvider, got %v", name, err)
		}
	}

	if callCount != 0 {
		t.Errorf("Expected no requests, got %d", callCount)
	}
}

type capturedRequest struct {
	method string
	path   string
	body   string
}

func TestIdentifyCurrentMatchesExplicitIdentify(t *testing.T) {
	var captured []capturedRequest
	handler := func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		captured = append(captured, capturedRequest{method: r.Method, path: r.URL.Path, body: string(body)})
		w.WriteHeader(http.StatusOK)
	}

	provider := &StaticCustomerProvider{
		ID:      "cust_1",
		Details: map[string]interface{}{"plan": "pro"},
	}
	client, _ := newTestClient(t, handler, WithCustomerProvider(provider))

	ctx := context.Background()
	if err := client.IdentifyCurrent(ctx); err != nil {
		t.Fatalf("IdentifyCurrent() returned error: %v", err)
	}
	if err := client.Identify(ctx, "cust_1", map[string]interface{}{"plan": "pro"}); err != nil {
		t.Fatalf("Identify() returned error: %v", err)
	}

	if len(captured) != 2 {
		t.Fatalf("Expected 2 requests, got %d", len(captured))
	}
	if captured[0] != captured[1] {
		t.Errorf("Implicit and explicit identify differ: %+v vs %+v", captured[0], captured[1])
	}
}

func TestDeleteCurrent(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}, WithCustomerProvider(&StaticCustomerProvider{ID: "cust_1"}))

	if err := client.DeleteCurrent(context.Background()); err != nil {
		t.Fatalf("DeleteCurrent() returned error: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/v1/customers/cust_1" {
		t.Errorf("Expected DELETE /api/v1/customers/cust_1, got %s %s", gotMethod, gotPath)
	}
}

func TestTrackCurrent(t *testing.T) {
	var gotPath, gotBody string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotPath = r.URL.Path
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}, WithCustomerProvider(&StaticCustomerProvider{ID: "cust_1"}))

	err := client.TrackCurrent(context.Background(), "signed_up", TrackOptions{
		Data: map[string]interface{}{"plan": "pro"},
	})
	if err != nil {
		t.Fatalf("TrackCurrent() returned error: %v", err)
	}
	if gotPath != "/api/v1/customers/cust_1/events" {
		t.Errorf("Expected path /api/v1/customers/cust_1/events, got %s", gotPath)
	}
	if gotBody != `{"name":"signed_up","data":{"plan":"pro"}}` {
		t.Errorf("Unexpected body %s", gotBody)
	}
}

func TestProviderConsultedOnEveryCall(t *testing.T) {
	var paths []string
	provider := &mutableProvider{id: "cust_1"}
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}, WithCustomerProvider(provider))

	ctx := context.Background()
	if err := client.DeleteCurrent(ctx); err != nil {
		t.Fatalf("DeleteCurrent() returned error: %v", err)
	}
	provider.id = "cust_2"
	if err := client.DeleteCurrent(ctx); err != nil {
		t.Fatalf("DeleteCurrent() returned error: %v", err)
	}

	want := []string{"/api/v1/customers/cust_1", "/api/v1/customers/cust_2"}
	if len(paths) != 2 || paths[0] != want[0] || paths[1] != want[1] {
		t.Errorf("Expected paths %v, got %v", want, paths)
	}
}

func TestImplicitNoOpForAnonymousCustomer(t *testing.T) {
	callCount := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		callCount++
		w.WriteHeader(http.StatusOK)
	}, WithCustomerProvider(&mutableProvider{id: ""}))

	ctx := context.Background()
	if err := client.IdentifyCurrent(ctx); err != nil {
		t.Errorf("IdentifyCurrent() with anonymous customer returned error: %v", err)
	}
	if err := client.TrackCurrent(ctx, "signed_up", TrackOptions{}); err != nil {
		t.Errorf("TrackCurrent() with anonymous customer returned error: %v", err)
	}
	if callCount != 0 {
		t.Errorf("Expected no requests, got %d", callCount)
	}
}
