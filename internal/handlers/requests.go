package handlers

import (
	"github.com/gin-gonic/gin"

	"cloud-dictionary-api/pkg/lambda"
)

// LookupRequest carries the parsed TermLookup input. A nil Term means the
// gateway supplied no path parameter.
type LookupRequest struct {
	Term *string
}

// SearchRequest carries the parsed TermSearch input. A nil Query means the
// query string had no "query" key.
type SearchRequest struct {
	Query *string
}

// TermValue returns the requested key, or "" when absent
func (r LookupRequest) TermValue() string {
	if r.Term == nil {
		return ""
	}
	return *r.Term
}

// QueryValue returns the search text, or "" when absent
func (r SearchRequest) QueryValue() string {
	if r.Query == nil {
		return ""
	}
	return *r.Query
}

func lookupRequestFromGin(c *gin.Context) LookupRequest {
	var req LookupRequest
	for _, p := range c.Params {
		if p.Key == "term" {
			term := p.Value
			req.Term = &term
		}
	}
	return req
}

func searchRequestFromGin(c *gin.Context) SearchRequest {
	var req SearchRequest
	if query, ok := c.GetQuery("query"); ok {
		req.Query = &query
	}
	return req
}

func lookupRequestFromLambda(r *lambda.Request) LookupRequest {
	var req LookupRequest
	if term, ok := r.PathParam("term"); ok {
		req.Term = &term
	}
	return req
}

func searchRequestFromLambda(r *lambda.Request) SearchRequest {
	var req SearchRequest
	if query, ok := r.QueryParam("query"); ok {
		req.Query = &query
	}
	return req
}
