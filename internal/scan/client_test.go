package scan

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"dropscout/internal/log"
)

func init() {
	log.Logger, _ = zap.NewDevelopment()
}

func TestScanSendsFormEncodedRequest(t *testing.T) {
	var gotMethod, gotContentType, gotLg, gotURL string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm: %v", err)
		}
		gotLg = r.PostFormValue("lg")
		gotURL = r.PostFormValue("url")
		fmt.Fprint(w, `{"mark": 3}`)
	}))
	defer server.Close()

	client := New(server.URL, "fr", 5*time.Second, 0)
	report, err := client.Scan(context.Background(), "https://shop.example.com/product/1")
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %s, want POST", gotMethod)
	}
	if gotContentType != "application/x-www-form-urlencoded" {
		t.Errorf("content type = %s, want form encoding", gotContentType)
	}
	if gotLg != "fr" {
		t.Errorf("lg = %q, want fr", gotLg)
	}
	if gotURL != "https://shop.example.com/product/1" {
		t.Errorf("url = %q, want page URL", gotURL)
	}
	if report.Mark != 3 {
		t.Errorf("Mark = %v, want 3", report.Mark)
	}
}

func TestScanAppliesDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	client := New(server.URL, "fr", 5*time.Second, 0)
	report, err := client.Scan(context.Background(), "https://shop.example.com/")
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}

	if report.Mark != 0 {
		t.Errorf("Mark = %v, want 0", report.Mark)
	}
	if len(report.Website.Technos) != 0 || len(report.SimilarArticles) != 0 {
		t.Errorf("lists not defaulted to empty: %+v", report)
	}
	if report.LastSearchDate != nil {
		t.Errorf("LastSearchDate = %v, want nil", report.LastSearchDate)
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name           string
		serverResponse func(w http.ResponseWriter, r *http.Request)
	}{
		{
			name: "Non-200 status",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "Malformed JSON",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"mark": `)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(tt.serverResponse))
			defer server.Close()

			client := New(server.URL, "fr", 5*time.Second, 0)
			if _, err := client.Scan(context.Background(), "https://shop.example.com/"); err == nil {
				t.Error("Scan() expected error but got none")
			}
		})
	}
}

func TestScanTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := New(server.URL, "fr", time.Second, 0)
	if _, err := client.Scan(context.Background(), "https://shop.example.com/"); err == nil {
		t.Error("Scan() expected transport error but got none")
	}
}

func TestScanRespectsCancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"mark": 5}`)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := New(server.URL, "fr", time.Second, 0)
	if _, err := client.Scan(ctx, "https://shop.example.com/"); err == nil {
		t.Error("Scan() with cancelled context expected error but got none")
	}
}

func TestScanCache(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"mark": 2}`)
	}))
	defer server.Close()

	client := New(server.URL, "fr", 5*time.Second, time.Minute)
	for i := 0; i < 3; i++ {
		if _, err := client.Scan(context.Background(), "https://shop.example.com/"); err != nil {
			t.Fatalf("Scan() error: %v", err)
		}
	}

	if calls != 1 {
		t.Errorf("scoring service called %d times with cache enabled, want 1", calls)
	}
}

func TestScanNoCacheByDefault(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"mark": 2}`)
	}))
	defer server.Close()

	client := New(server.URL, "fr", 5*time.Second, 0)
	for i := 0; i < 2; i++ {
		if _, err := client.Scan(context.Background(), "https://shop.example.com/"); err != nil {
			t.Fatalf("Scan() error: %v", err)
		}
	}

	if calls != 2 {
		t.Errorf("scoring service called %d times with cache disabled, want 2", calls)
	}
}
