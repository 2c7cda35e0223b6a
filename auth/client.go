// Package auth maps the user-authentication operations to their REST
// endpoints and hands each call to an injected Transport.
//
// The client performs no validation, transformation or error handling of its
// own: whatever the transport returns is returned to the caller unchanged.
package auth

import (
	"context"
	"net/http"

	cn "github.com/LerianStudio/lib-auth-go/constant"
	"github.com/LerianStudio/lib-auth-go/model"
	"github.com/LerianStudio/lib-auth-go/pkg"
)

// Transport performs the HTTP exchange for a relative API path.
type Transport interface {
	Get(ctx context.Context, path string) (*model.Response, error)
	Post(ctx context.Context, path string, body any) (*model.Response, error)
}

// Client exposes the auth API operations. It is immutable after New and safe
// for concurrent use.
type Client struct {
	transport Transport
	basePath  string
	paths     map[Operation]string
}

// Option configures a Client at construction.
type Option func(*Client)

// WithBasePath roots the user endpoints at p instead of "user".
func WithBasePath(p string) Option {
	return func(c *Client) {
		c.basePath = p
	}
}

// New creates a Client that delegates every call to transport.
func New(transport Transport, opts ...Option) (*Client, error) {
	if transport == nil {
		return nil, pkg.ValidateBusinessError(cn.ErrNilTransport, "AuthClient")
	}

	c := &Client{
		transport: transport,
		basePath:  cn.DefaultBasePath,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.paths = make(map[Operation]string, len(routes))
	for op, r := range routes {
		c.paths[op] = r.path(c.basePath)
	}

	return c, nil
}

// BasePath returns the segment user endpoints are rooted at.
func (c *Client) BasePath() string {
	return c.basePath
}

// Route returns the HTTP method and relative path of op.
func (c *Client) Route(op Operation) (method, path string, ok bool) {
	r, ok := routes[op]
	if !ok {
		return "", "", false
	}

	return r.method, c.paths[op], true
}

func (c *Client) call(ctx context.Context, op Operation, payload any) (*model.Response, error) {
	if routes[op].method == http.MethodGet {
		return c.transport.Get(ctx, c.paths[op])
	}

	return c.transport.Post(ctx, c.paths[op], payload)
}

// Login posts credentials to user/login.
func (c *Client) Login(ctx context.Context, credentials any) (*model.Response, error) {
	return c.call(ctx, OpLogin, credentials)
}

// Logout posts session information to user/logout.
func (c *Client) Logout(ctx context.Context, session any) (*model.Response, error) {
	return c.call(ctx, OpLogout, session)
}

// Show fetches the current user's profile.
func (c *Client) Show(ctx context.Context) (*model.Response, error) {
	return c.call(ctx, OpShow, nil)
}

// VerifyOTP submits an OTP together with document data.
func (c *Client) VerifyOTP(ctx context.Context, payload any) (*model.Response, error) {
	return c.call(ctx, OpVerifyOTP, payload)
}

// ChangePassword posts the old and new password.
func (c *Client) ChangePassword(ctx context.Context, payload any) (*model.Response, error) {
	return c.call(ctx, OpChangePassword, payload)
}

// ResendVerifyOTP asks for a new document verification OTP.
func (c *Client) ResendVerifyOTP(ctx context.Context, target any) (*model.Response, error) {
	return c.call(ctx, OpResendVerifyOTP, target)
}

func (c *Client) ScheduleSessionVerify(ctx context.Context, payload any) (*model.Response, error) {
	return c.call(ctx, OpScheduleSessionVerify, payload)
}

// ResendSessionOTP asks for a new session OTP.
func (c *Client) ResendSessionOTP(ctx context.Context, target any) (*model.Response, error) {
	return c.call(ctx, OpResendSessionOTP, target)
}

// VerifyID posts identity document data to verify/user. This endpoint is
// never rooted at the base path.
func (c *Client) VerifyID(ctx context.Context, document any) (*model.Response, error) {
	return c.call(ctx, OpVerifyID, document)
}
