package request

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
)

type AuthData struct {
	TenantId   string
	TenantName string
}

type authDataKey struct{}

func AuthDataToContext(ctx context.Context, data AuthData) context.Context {
	return context.WithValue(ctx, authDataKey{}, data)
}

func AuthDataFromContext(ctx context.Context) (AuthData, error) {
	data, ok := ctx.Value(authDataKey{}).(AuthData)
	if !ok {
		return AuthData{}, ErrNotAuthenticated
	}
	return data, nil
}

type Context struct {
	request        *http.Request
	responseWriter http.ResponseWriter

	endpoint string

	authenticated bool
	authData      *AuthData
}

func NewContext(request *http.Request, response http.ResponseWriter, endpoint string) *Context {
	return &Context{
		request:        request,
		responseWriter: response,
		endpoint:       endpoint,
	}
}

func (c *Context) Request() *http.Request {
	return c.request
}

func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.responseWriter
}

func (c *Context) SetResponseWriter(writer http.ResponseWriter) {
	c.responseWriter = writer
}

func (c *Context) Endpoint() string {
	return c.endpoint
}

func (c *Context) Authenticate(authData AuthData) {
	c.authenticated = true
	c.authData = &authData
	c.SetContext(AuthDataToContext(c.Context(), authData))
}

func (c *Context) GetAuthData() (AuthData, error) {
	if !c.authenticated {
		return AuthData{}, ErrNotAuthenticated
	}
	return *c.authData, nil
}

func (c *Context) Context() context.Context {
	return c.request.Context()
}

func (c *Context) SetContext(ctx context.Context) {
	c.request = c.request.WithContext(ctx)
}
