package mocks

import (
	"context"
	"net/http"
	"net/url"

	"github.com/stretchr/testify/mock"
)

type HTTPClient struct {
	mock.Mock
}

func (_m *HTTPClient) Get(ctx context.Context, rawURL string, query url.Values, headers map[string]string) (*http.Response, error) {
	ret := _m.Called(ctx, rawURL, query, headers)
	return ret.Get(0).(*http.Response), ret.Error(1)
}
