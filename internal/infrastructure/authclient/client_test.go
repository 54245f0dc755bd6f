package authclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/greenloop/waste-mgmt/internal/core/domain"
)

func TestClient_Resolve(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sub":"alice","role":"user","exp":1700000000,"user_id":"u-1"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	identity, err := client.Resolve(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if gotPath != "/user/me" {
		t.Fatalf("expected /user/me, got %q", gotPath)
	}
	if gotAuth != "Bearer tok-1" {
		t.Fatalf("token not relayed: %q", gotAuth)
	}
	if identity.Subject != "alice" || identity.Role != "user" || identity.UserID != "u-1" || identity.Exp != 1700000000 {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestClient_Resolve_RejectedToken(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusNotFound} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		}))
		client := New(srv.URL, time.Second)

		_, err := client.Resolve(context.Background(), "bad")
		srv.Close()
		if !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for status %d, got %v", status, err)
		}
	}
}

func TestClient_Resolve_AuthorityError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	if _, err := client.Resolve(context.Background(), "tok-1"); !errors.Is(err, domain.ErrAuthUnavailable) {
		t.Fatalf("expected ErrAuthUnavailable for 500, got %v", err)
	}
}

func TestClient_Resolve_AuthorityUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // nothing listens on this address anymore

	client := New(srv.URL, time.Second)
	if _, err := client.Resolve(context.Background(), "tok-1"); !errors.Is(err, domain.ErrAuthUnavailable) {
		t.Fatalf("expected ErrAuthUnavailable when unreachable, got %v", err)
	}
}

func TestClient_Resolve_MalformedVerdict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	if _, err := client.Resolve(context.Background(), "tok-1"); !errors.Is(err, domain.ErrAuthUnavailable) {
		t.Fatalf("expected ErrAuthUnavailable for bad payload, got %v", err)
	}
}

func TestClient_Resolve_IncompleteVerdict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"role":"user"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	if _, err := client.Resolve(context.Background(), "tok-1"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for incomplete verdict, got %v", err)
	}
}
