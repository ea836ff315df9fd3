package upstream

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SendsBearerAndQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "list", r.URL.Query().Get("action"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("size"))
		_, _ = w.Write([]byte(`{"orders":[],"count":0}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	list, err := c.ListOrders(context.Background(), "tok", 2, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, list.Count)
}

func TestClient_MissingTokenIsPrecondition(t *testing.T) {
	c := New("http://unused.invalid", time.Second)
	_, err := c.FetchCarts(context.Background(), "")

	var ue *Error
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, KindPrecondition, ue.Kind)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
	assert.False(t, IsRetryable(err))
}

func TestClient_NonOKIsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such order", http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.GetOrder(context.Background(), "tok", "o1")

	var ue *Error
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, KindStatus, ue.Kind)
	assert.Equal(t, http.StatusNotFound, ue.Status)
	assert.Contains(t, ue.Body, "no such order")
	// backend 4xx passes through the gateway
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestClient_ServerErrorMapsToBadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.FetchCarts(context.Background(), "tok")
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(err))
}

func TestClient_MalformedBodyIsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"definitely":"not a cart list"`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.FetchCarts(context.Background(), "tok")

	var ue *Error
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, KindDecode, ue.Kind)
	assert.False(t, IsRetryable(err))
}

func TestClient_TimeoutIsRetryableNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := New(srv.URL, 30*time.Millisecond)
	_, err := c.FetchCarts(context.Background(), "tok")

	var ue *Error
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, KindNetwork, ue.Kind)
	assert.True(t, IsRetryable(err))
	assert.Equal(t, http.StatusGatewayTimeout, HTTPStatus(err))
}

func TestClient_UploadAssetPutsBytes(t *testing.T) {
	var gotMethod, gotBody, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	err := c.UploadAsset(context.Background(), srv.URL+"/bucket/img.png", "image/png", strings.NewReader("pixels"), 6)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "image/png", gotType)
	assert.Equal(t, "pixels", gotBody)
}

func TestClient_UploadAssetRejectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "expired url", http.StatusForbidden)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	err := c.UploadAsset(context.Background(), srv.URL+"/bucket/img.png", "image/png", strings.NewReader("x"), 1)

	var ue *Error
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, KindStatus, ue.Kind)
	assert.Equal(t, http.StatusForbidden, ue.Status)
}

func TestHTTPStatus_UnknownError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}
