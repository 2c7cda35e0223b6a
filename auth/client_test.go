package auth_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/LerianStudio/lib-auth-go/auth"
	cn "github.com/LerianStudio/lib-auth-go/constant"
	"github.com/LerianStudio/lib-auth-go/model"
	"github.com/LerianStudio/lib-auth-go/pkg"
	"github.com/LerianStudio/lib-auth-go/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type call func(c *auth.Client, ctx context.Context, payload any) (*model.Response, error)

var postCases = []struct {
	name string
	path string
	do   call
}{
	{"Login", "user/login", func(c *auth.Client, ctx context.Context, p any) (*model.Response, error) { return c.Login(ctx, p) }},
	{"Logout", "user/logout", func(c *auth.Client, ctx context.Context, p any) (*model.Response, error) { return c.Logout(ctx, p) }},
	{"VerifyOTP", "user/document/verify", func(c *auth.Client, ctx context.Context, p any) (*model.Response, error) { return c.VerifyOTP(ctx, p) }},
	{"ChangePassword", "user/change/password", func(c *auth.Client, ctx context.Context, p any) (*model.Response, error) {
		return c.ChangePassword(ctx, p)
	}},
	{"ResendVerifyOTP", "user/document/resend/otp", func(c *auth.Client, ctx context.Context, p any) (*model.Response, error) {
		return c.ResendVerifyOTP(ctx, p)
	}},
	{"ScheduleSessionVerify", "user/ScheduleSession/verify", func(c *auth.Client, ctx context.Context, p any) (*model.Response, error) {
		return c.ScheduleSessionVerify(ctx, p)
	}},
	{"ResendSessionOTP", "user/session/resend/otp", func(c *auth.Client, ctx context.Context, p any) (*model.Response, error) {
		return c.ResendSessionOTP(ctx, p)
	}},
	{"VerifyID", "verify/user", func(c *auth.Client, ctx context.Context, p any) (*model.Response, error) { return c.VerifyID(ctx, p) }},
}

func newClient(t *testing.T, opts ...auth.Option) (*auth.Client, *mocks.MockTransport) {
	t.Helper()

	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)

	client, err := auth.New(transport, opts...)
	require.NoError(t, err)

	return client, transport
}

func TestPostOperationsForwardPayload(t *testing.T) {
	for _, tc := range postCases {
		t.Run(tc.name, func(t *testing.T) {
			client, transport := newClient(t)
			ctx := context.Background()
			payload := map[string]any{"email": "a@b.com", "password": "x"}
			want := &model.Response{StatusCode: http.StatusOK, Body: []byte(`{"ok":true}`)}

			transport.EXPECT().Post(ctx, tc.path, payload).Return(want, nil).Times(1)

			got, err := tc.do(client, ctx, payload)
			require.NoError(t, err)
			assert.Same(t, want, got)
		})
	}
}

func TestPostOperationsPropagateErrors(t *testing.T) {
	for _, tc := range postCases {
		t.Run(tc.name, func(t *testing.T) {
			client, transport := newClient(t)
			ctx := context.Background()
			wantErr := errors.New("transport exploded")

			transport.EXPECT().Post(ctx, tc.path, nil).Return(nil, wantErr).Times(1)

			got, err := tc.do(client, ctx, nil)
			assert.Nil(t, got)
			assert.Same(t, wantErr, err)
		})
	}
}

func TestShowIssuesGetWithoutBody(t *testing.T) {
	client, transport := newClient(t)
	ctx := context.Background()
	want := &model.Response{StatusCode: http.StatusOK, Body: []byte(`{"name":"Ada"}`)}

	transport.EXPECT().Get(ctx, "user/profile").Return(want, nil).Times(1)

	got, err := client.Show(ctx)
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestShowPropagatesError(t *testing.T) {
	client, transport := newClient(t)
	ctx := context.Background()
	wantErr := errors.New("unauthorized")

	transport.EXPECT().Get(ctx, "user/profile").Return(nil, wantErr)

	_, err := client.Show(ctx)
	assert.Same(t, wantErr, err)
}

func TestLoginExample(t *testing.T) {
	client, transport := newClient(t)
	ctx := context.Background()

	transport.EXPECT().
		Post(gomock.Any(), "user/login", map[string]string{"email": "a@b.com", "password": "x"}).
		Return(&model.Response{StatusCode: http.StatusOK}, nil)

	_, err := client.Login(ctx, map[string]string{"email": "a@b.com", "password": "x"})
	assert.NoError(t, err)
}

func TestVerifyIDIgnoresBasePath(t *testing.T) {
	client, transport := newClient(t, auth.WithBasePath("account"))
	ctx := context.Background()
	doc := map[string]int{"docId": 42}

	transport.EXPECT().Post(ctx, "verify/user", doc).Return(&model.Response{}, nil)
	transport.EXPECT().Post(ctx, "account/login", nil).Return(&model.Response{}, nil)

	_, err := client.VerifyID(ctx, doc)
	require.NoError(t, err)

	_, err = client.Login(ctx, nil)
	require.NoError(t, err)
}

func TestWithBasePathTrimsSlashes(t *testing.T) {
	client, transport := newClient(t, auth.WithBasePath("/v2/user/"))
	ctx := context.Background()

	transport.EXPECT().Get(ctx, "v2/user/profile").Return(&model.Response{}, nil)

	_, err := client.Show(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "/v2/user/", client.BasePath())
}

func TestRouteTable(t *testing.T) {
	client, _ := newClient(t)

	expected := map[auth.Operation][2]string{
		auth.OpLogin:                 {http.MethodPost, "user/login"},
		auth.OpLogout:                {http.MethodPost, "user/logout"},
		auth.OpShow:                  {http.MethodGet, "user/profile"},
		auth.OpVerifyOTP:             {http.MethodPost, "user/document/verify"},
		auth.OpChangePassword:        {http.MethodPost, "user/change/password"},
		auth.OpResendVerifyOTP:       {http.MethodPost, "user/document/resend/otp"},
		auth.OpScheduleSessionVerify: {http.MethodPost, "user/ScheduleSession/verify"},
		auth.OpResendSessionOTP:      {http.MethodPost, "user/session/resend/otp"},
		auth.OpVerifyID:              {http.MethodPost, "verify/user"},
	}

	ops := auth.Operations()
	require.Len(t, ops, len(expected))
	assert.Equal(t, auth.OpLogin, ops[0])
	assert.Equal(t, auth.OpVerifyID, ops[len(ops)-1])

	for _, op := range ops {
		method, path, ok := client.Route(op)
		require.True(t, ok, op)
		assert.Equal(t, expected[op][0], method, op)
		assert.Equal(t, expected[op][1], path, op)
	}

	_, _, ok := client.Route("register")
	assert.False(t, ok)
}

func TestNewRejectsNilTransport(t *testing.T) {
	client, err := auth.New(nil)
	assert.Nil(t, client)

	var vErr pkg.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, cn.ErrNilTransport.Error(), vErr.Code)
}

func TestConcurrentCalls(t *testing.T) {
	client, transport := newClient(t)
	ctx := context.Background()

	transport.EXPECT().Get(ctx, "user/profile").Return(&model.Response{}, nil).Times(20)

	done := make(chan error, 20)
	for range 20 {
		go func() {
			_, err := client.Show(ctx)
			done <- err
		}()
	}

	for range 20 {
		assert.NoError(t, <-done)
	}
}
