package lambda

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"query_params"`
	Body        []byte            `json:"body"`
	PathParams  map[string]string `json:"path_params"`
	RequestID   string            `json:"request_id"`
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// HandlerFunc is a framework-agnostic handler interface
type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)

// ResponseHeaders are set on every response produced in this package
func ResponseHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                "application/json",
		"Access-Control-Allow-Origin": "*",
	}
}

// PathParam returns a path parameter and whether the gateway supplied it
func (r *Request) PathParam(name string) (string, bool) {
	if r == nil || r.PathParams == nil {
		return "", false
	}
	v, ok := r.PathParams[name]
	return v, ok
}

// QueryParam returns a query string parameter and whether it was present
func (r *Request) QueryParam(name string) (string, bool) {
	if r == nil || r.QueryParams == nil {
		return "", false
	}
	v, ok := r.QueryParams[name]
	return v, ok
}

// JSON builds a response with the standard headers and body serialized as JSON
func JSON(status int, body any) (*Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	return &Response{
		StatusCode: status,
		Headers:    ResponseHeaders(),
		Body:       data,
	}, nil
}

// FromAPIGateway converts an API Gateway proxy event to a generic request
func FromAPIGateway(event events.APIGatewayProxyRequest) *Request {
	return &Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        []byte(event.Body),
		PathParams:  event.PathParameters,
		RequestID:   event.RequestContext.RequestID,
	}
}

// ToAPIGateway converts a generic response to an API Gateway proxy response
func (r *Response) ToAPIGateway() events.APIGatewayProxyResponse {
	headers := ResponseHeaders()
	for k, v := range r.Headers {
		headers[k] = v
	}
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    headers,
		Body:       string(r.Body),
	}
}

// Adapt wraps a handler as an API Gateway proxy handler. A handler error
// becomes a bare 500 that still carries the standard headers.
func Adapt(h HandlerFunc) func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		resp, err := h(ctx, FromAPIGateway(event))
		if err != nil || resp == nil {
			return (&Response{
				StatusCode: http.StatusInternalServerError,
				Body:       []byte(`{"error":"Internal server error"}`),
			}).ToAPIGateway(), nil
		}
		return resp.ToAPIGateway(), nil
	}
}
