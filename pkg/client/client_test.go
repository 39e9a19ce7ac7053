package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smartshop/shopdeck/pkg/domain"
)

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login/" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if body["email"] != "owner@example.com" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid credentials"}) //nolint:errcheck
			return
		}
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"access": "tok-1",
			"user": map[string]any{
				"id":       "u-1",
				"email":    "owner@example.com",
				"username": "owner",
				"role":     "shop_owner",
				"shop":     map[string]string{"id": "s-1", "name": "Corner Books"},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	u, err := c.Login(context.Background(), "owner@example.com", "pw")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if u.Token != "tok-1" {
		t.Errorf("Token = %q, want %q", u.Token, "tok-1")
	}
	if u.Role != domain.RoleShopOwner {
		t.Errorf("Role = %q, want shop_owner", u.Role)
	}
	if u.Shop == nil || u.Shop.Name != "Corner Books" {
		t.Errorf("Shop = %+v, want Corner Books", u.Shop)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid credentials"}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.Login(context.Background(), "x@example.com", "wrong")
	if err == nil {
		t.Fatal("expected error for bad credentials")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *APIError", err)
	}
	if apiErr.StatusCode != 401 || apiErr.Detail != "Invalid credentials" {
		t.Errorf("APIError = %+v, want 401 / Invalid credentials", apiErr)
	}
	if !IsStatus(err, 401) {
		t.Error("IsStatus(err, 401) = false, want true")
	}
}

func TestLoginMissingAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"user": map[string]string{"id": "u-1", "email": "x@example.com"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.Login(context.Background(), "x@example.com", "pw")
	if !errors.Is(err, ErrNoAccessToken) {
		t.Errorf("Login() error = %v, want ErrNoAccessToken", err)
	}
}

func TestRegisterShopOwnerPayload(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"access": "tok-2",
			"user":   map[string]string{"id": "u-2", "username": "owner", "role": "shop_owner"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.Register(context.Background(), RegisterRequest{
		Username:        "owner",
		Email:           "owner@example.com",
		Password:        "pw",
		Password2:       "pw",
		UserType:        domain.RoleShopOwner,
		ShopName:        "Corner Books",
		BusinessLicense: "LIC-1",
		AdminCode:       "should-not-be-sent",
	})
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if got["shop_name"] != "Corner Books" {
		t.Errorf("shop_name = %v, want Corner Books", got["shop_name"])
	}
	if got["business_license"] != "LIC-1" {
		t.Errorf("business_license = %v, want LIC-1", got["business_license"])
	}
	if _, ok := got["admin_code"]; ok {
		t.Error("admin_code sent for a shop owner registration")
	}
}

func TestRegisterAdminPayload(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"access": "tok-3",
			"user":   map[string]string{"id": "u-3", "username": "root"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	u, err := c.Register(context.Background(), RegisterRequest{
		Username:  "root",
		Email:     "root@example.com",
		Password:  "pw",
		Password2: "pw",
		UserType:  domain.RoleAdmin,
		AdminCode: "sesame",
		ShopName:  "should-not-be-sent",
	})
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if got["admin_code"] != "sesame" {
		t.Errorf("admin_code = %v, want sesame", got["admin_code"])
	}
	if _, ok := got["shop_name"]; ok {
		t.Error("shop_name sent for an admin registration")
	}
	// The response carried no role; the requested type fills in.
	if u.Role != domain.RoleAdmin {
		t.Errorf("Role = %q, want the requested admin type", u.Role)
	}
}

func TestCurrentUserSendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-4" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "not authenticated"}) //nolint:errcheck
			return
		}
		json.NewEncoder(w).Encode(map[string]string{ //nolint:errcheck
			"id": "u-4", "username": "cust", "role": "customer",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok-4")
	u, err := c.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("CurrentUser() error: %v", err)
	}
	if u.Username != "cust" {
		t.Errorf("Username = %q, want cust", u.Username)
	}
	if u.Token != "tok-4" {
		t.Errorf("Token = %q, want the client's bearer token", u.Token)
	}
}

func TestParseAPIErrorShapes(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantDetail string
		wantField  string
	}{
		{"detail", `{"detail": "No such booking"}`, "No such booking", ""},
		{"error key", `{"error": "boom"}`, "boom", ""},
		{"non_field_errors", `{"non_field_errors": ["Unable to log in"]}`, "Unable to log in", ""},
		{"field list", `{"email": ["already taken"]}`, "email: already taken", "email"},
		{"plain text", `upstream exploded`, "upstream exploded", ""},
		{"empty", ``, "Bad Request", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			apiErr := parseAPIError(http.StatusBadRequest, []byte(tc.body))
			if apiErr.Detail != tc.wantDetail {
				t.Errorf("Detail = %q, want %q", apiErr.Detail, tc.wantDetail)
			}
			if tc.wantField != "" {
				if len(apiErr.Fields[tc.wantField]) == 0 {
					t.Errorf("Fields[%q] empty, want the field error kept", tc.wantField)
				}
			}
		})
	}
}
