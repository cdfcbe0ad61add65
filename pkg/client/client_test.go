package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresBaseURL(t *testing.T) {
	_, err := New(Options{})
	require.Error(t, err)
}

func TestClientEquipmentRoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/equipment":
			var input map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
			assert.Equal(t, "LAB-001", input["equipment_id"])
			assert.Equal(t, "Oscilloscope", input["name"])
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{
				"equipment_id": input["equipment_id"],
				"name":         input["name"],
				"qr_url":       "https://qr.test/LAB-001",
			})
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/equipment" && r.URL.Query().Get("equipment_id") == "":
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode([]map[string]any{{"equipment_id": "LAB-001", "name": "Oscilloscope"}})
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/equipment":
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"equipment_id": r.URL.Query().Get("equipment_id"),
				"name":         "Oscilloscope",
			})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/v1/equipment":
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"message": "Equipment deleted successfully"})
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL)
		}
	}))
	defer server.Close()

	c, err := New(Options{BaseURL: server.URL})
	require.NoError(t, err)
	ctx := context.Background()

	created, err := c.CreateEquipment(ctx, CreateEquipmentInput{EquipmentID: "LAB-001", Name: "Oscilloscope"})
	require.NoError(t, err)
	assert.Equal(t, "https://qr.test/LAB-001", created.QRURL)

	list, err := c.ListEquipment(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	one, err := c.GetEquipment(ctx, "LAB-001")
	require.NoError(t, err)
	assert.Equal(t, "LAB-001", one.EquipmentID)

	require.NoError(t, c.DeleteEquipment(ctx, "LAB-001"))
}

func TestClientUpdateSendsOnlyPresentFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "LAB-002", r.URL.Query().Get("equipment_id"))

		var patch map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
		assert.Equal(t, map[string]any{"status": "under maintenance"}, patch)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"equipment_id": "LAB-002",
			"name":         "Centrifuge",
			"status":       "under maintenance",
		})
	}))
	defer server.Close()

	c, err := New(Options{BaseURL: server.URL})
	require.NoError(t, err)

	status := "under maintenance"
	updated, err := c.UpdateEquipment(context.Background(), "LAB-002", UpdateEquipmentInput{Status: &status})
	require.NoError(t, err)
	require.NotNil(t, updated.Status)
	assert.Equal(t, "under maintenance", *updated.Status)
}

func TestClientDecodesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "equipment not found"})
	}))
	defer server.Close()

	c, err := New(Options{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = c.GetEquipment(context.Background(), "LAB-404")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "equipment not found", apiErr.Message)
}

func TestClientSendsBearerToken(t *testing.T) {
	var seen string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]ScanLog{})
	}))
	defer server.Close()

	c, err := New(Options{BaseURL: server.URL, Token: "signed-token"})
	require.NoError(t, err)

	_, err = c.ListScanLogs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer signed-token", seen)
}

func TestClientLoginStoresToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login":
			var input map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
			assert.Equal(t, "admin@lab.com", input["email"])
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"access_token": "minted", "token_type": "bearer"})
		case "/api/v1/auth/logout":
			if r.Header.Get("Authorization") != "Bearer minted" {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "missing bearer token"})
				return
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"message": "Logged out successfully"})
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL)
		}
	}))
	defer server.Close()

	c, err := New(Options{BaseURL: server.URL})
	require.NoError(t, err)
	ctx := context.Background()

	token, err := c.Login(ctx, "admin@lab.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "minted", token.AccessToken)

	require.NoError(t, c.Logout(ctx))
}
