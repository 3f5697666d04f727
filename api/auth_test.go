package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	db "github.com/beracah/beracah-BE/internal/db/sqlc"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setAdminPassword(t *testing.T, server *Server, password string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	server.config.AdminPasswordHash = string(hash)
}

func TestLoginAdmin(t *testing.T) {
	server, _, _ := newTestServer(t, nil, &mockDeliveryProvider{})
	setAdminPassword(t, server, "correct horse battery staple")

	recorder := postJSON(server, "/v1/auth/admin/login", map[string]any{
		"password": "correct horse battery staple",
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp loginAdminResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	require.True(t, resp.ExpiresAt.After(time.Now()))

	payload, err := server.tokenMaker.VerifyToken(resp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "admin", payload.Subject)
}

func TestLoginAdminWrongPassword(t *testing.T) {
	server, _, _ := newTestServer(t, nil, &mockDeliveryProvider{})
	setAdminPassword(t, server, "correct horse battery staple")

	recorder := postJSON(server, "/v1/auth/admin/login", map[string]any{
		"password": "guess",
	})

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestLoginAdminMissingPassword(t *testing.T) {
	server, _, _ := newTestServer(t, nil, &mockDeliveryProvider{})

	recorder := postJSON(server, "/v1/auth/admin/login", map[string]any{})

	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	store := &mockStore{
		listOrdersFunc: func(ctx context.Context, arg db.ListOrdersParams) ([]db.Order, error) {
			return []db.Order{{ID: "order-1", OrderNumber: "ORD-TEST123456"}}, nil
		},
	}
	server, _, _ := newTestServer(t, store, &mockDeliveryProvider{})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
	server.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)

	token, _, err := server.tokenMaker.CreateToken("admin", time.Minute)
	require.NoError(t, err)

	recorder = httptest.NewRecorder()
	request = httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	server.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	var orders []db.Order
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
}

func TestAdminRouteRejectsExpiredToken(t *testing.T) {
	server, _, _ := newTestServer(t, &mockStore{}, &mockDeliveryProvider{})

	token, _, err := server.tokenMaker.CreateToken("admin", -time.Minute)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	server.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
}
