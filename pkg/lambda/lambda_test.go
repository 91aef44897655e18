package lambda

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"cloud-dictionary-api/internal/config"
	"cloud-dictionary-api/internal/models"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() (*config.Config, error) {
	return &config.Config{
		Environment: "test",
		Port:        "8081",
		Store:       config.StoreConfig{Type: config.StoreMemory, TableName: "CloudTerms"},
		Search:      config.SearchConfig{MatchMode: models.MatchFolded},
		Log:         config.LogConfig{Level: "error", Format: "json"},
		API:         config.APIConfig{Timeout: time.Second},
	}, nil
}

func TestFromAPIGateway(t *testing.T) {
	event := events.APIGatewayProxyRequest{
		HTTPMethod:            http.MethodGet,
		Path:                  "/terms/EC2",
		PathParameters:        map[string]string{"term": "EC2"},
		QueryStringParameters: map[string]string{"query": "compute"},
		RequestContext:        events.APIGatewayProxyRequestContext{RequestID: "req-1"},
	}

	req := FromAPIGateway(event)
	assert.Equal(t, "req-1", req.RequestID)

	term, ok := req.PathParam("term")
	assert.True(t, ok)
	assert.Equal(t, "EC2", term)

	query, ok := req.QueryParam("query")
	assert.True(t, ok)
	assert.Equal(t, "compute", query)

	_, ok = FromAPIGateway(events.APIGatewayProxyRequest{}).QueryParam("query")
	assert.False(t, ok)
}

func TestJSONAndToAPIGateway(t *testing.T) {
	resp, err := JSON(http.StatusNotFound, map[string]string{"error": "Term not found"})
	require.NoError(t, err)

	out := resp.ToAPIGateway()
	assert.Equal(t, http.StatusNotFound, out.StatusCode)
	assert.Equal(t, "*", out.Headers["Access-Control-Allow-Origin"])
	assert.Equal(t, "application/json", out.Headers["Content-Type"])
	assert.JSONEq(t, `{"error":"Term not found"}`, out.Body)

	bare := (&Response{StatusCode: http.StatusOK}).ToAPIGateway()
	assert.Equal(t, "*", bare.Headers["Access-Control-Allow-Origin"])
}

func TestAdapt(t *testing.T) {
	ok := Adapt(func(ctx context.Context, req *Request) (*Response, error) {
		return JSON(http.StatusOK, []string{req.Path})
	})
	out, err := ok(context.Background(), events.APIGatewayProxyRequest{Path: "/terms"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, out.StatusCode)
	assert.JSONEq(t, `["/terms"]`, out.Body)

	failing := Adapt(func(ctx context.Context, req *Request) (*Response, error) {
		return nil, errors.New("boom")
	})
	out, err = failing(context.Background(), events.APIGatewayProxyRequest{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, out.StatusCode)
	assert.Equal(t, "*", out.Headers["Access-Control-Allow-Origin"])
}

func TestConnectionManager(t *testing.T) {
	loads := 0
	cm := NewConnectionManager(func() (*config.Config, error) {
		loads++
		return memoryConfig()
	})
	assert.False(t, cm.IsHealthy())

	ctx := context.Background()
	first, err := cm.GetContainer(ctx)
	require.NoError(t, err)
	second, err := cm.GetContainer(ctx)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, loads)
	assert.True(t, cm.IsHealthy())

	require.NoError(t, cm.Cleanup())
	assert.False(t, cm.IsHealthy())
	_, err = cm.GetContainer(ctx)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestConnectionManagerConfigError(t *testing.T) {
	cm := NewConnectionManager(func() (*config.Config, error) {
		return nil, errors.New("missing TERMS_TABLE")
	})
	_, err := cm.GetContainer(context.Background())
	assert.EqualError(t, err, "missing TERMS_TABLE")
}

func TestConnectionManagerRetriesAfterFailedColdStart(t *testing.T) {
	attempts := 0
	cm := NewConnectionManager(func() (*config.Config, error) {
		attempts++
		cfg, err := memoryConfig()
		if attempts == 1 {
			cfg.Store.Type = "cassandra"
		}
		return cfg, err
	})
	ctx := context.Background()

	_, err := cm.GetContainer(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported store type")
	assert.False(t, cm.IsHealthy())

	container, err := cm.GetContainer(ctx)
	require.NoError(t, err)
	assert.NotNil(t, container)
	assert.Equal(t, 2, attempts)

	require.NoError(t, cm.Cleanup())
	cfg, _ := memoryConfig()
	assert.ErrorIs(t, cm.Initialize(cfg), ErrClosed)
}
