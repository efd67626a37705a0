package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/elgris/jwtgate/core"
	"github.com/elgris/jwtgate/internal/testtoken"
	"github.com/elgris/jwtgate/validator"
)

var testSecret = []byte("myfancysecret")

const testMethod = "/users.Users/Me"

func newInterceptor(t *testing.T, opts ...Option) *Interceptor {
	t.Helper()
	v, err := validator.New(validator.MustNewSecret(testSecret))
	require.NoError(t, err)
	c, err := core.New(core.WithVerifier(v))
	require.NoError(t, err)
	i, err := New(c, opts...)
	require.NoError(t, err)
	return i
}

func incoming(authorization ...string) context.Context {
	md := metadata.MD{}
	for _, a := range authorization {
		md.Append(AuthorizationMetadataKey, a)
	}
	return metadata.NewIncomingContext(context.Background(), md)
}

func TestUnaryServerInterceptor(t *testing.T) {
	validToken := testtoken.Sign(t, testSecret, map[string]any{"sub": "johnd"})
	wrongToken := testtoken.Sign(t, []byte("other"), map[string]any{"sub": "johnd"})

	testCases := []struct {
		name        string
		ctx         context.Context
		wantSubject string
		wantCode    codes.Code
		wantMessage string
	}{
		{
			name:        "valid token",
			ctx:         incoming("Bearer " + validToken),
			wantSubject: "johnd",
			wantCode:    codes.OK,
		},
		{
			name:        "first header wins",
			ctx:         incoming("Bearer "+validToken, "Basic abc"),
			wantSubject: "johnd",
			wantCode:    codes.OK,
		},
		{
			name:        "no metadata",
			ctx:         context.Background(),
			wantCode:    codes.Unauthenticated,
			wantMessage: "Missing or invalid Authorization header",
		},
		{
			name:        "basic auth",
			ctx:         incoming("Basic abc"),
			wantCode:    codes.Unauthenticated,
			wantMessage: "Missing or invalid Authorization header",
		},
		{
			name:        "wrong secret",
			ctx:         incoming("Bearer " + wrongToken),
			wantCode:    codes.Unauthenticated,
			wantMessage: "Invalid token",
		},
		{
			name:     "malformed token is not unauthenticated",
			ctx:      incoming("Bearer not-a-jwt"),
			wantCode: codes.Unknown,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			interceptor := newInterceptor(t).UnaryServerInterceptor()

			var gotSubject string
			handler := func(ctx context.Context, req any) (any, error) {
				gotSubject = MustGetClaims(ctx).Subject()
				return "ok", nil
			}

			resp, err := interceptor(testCase.ctx, nil, &grpc.UnaryServerInfo{FullMethod: testMethod}, handler)

			assert.Equal(t, testCase.wantCode, status.Code(err))
			if testCase.wantCode == codes.OK {
				require.NoError(t, err)
				assert.Equal(t, "ok", resp)
				assert.Equal(t, testCase.wantSubject, gotSubject)
				return
			}
			assert.Nil(t, resp)
			if testCase.wantMessage != "" {
				assert.Equal(t, testCase.wantMessage, status.Convert(err).Message())
			}
		})
	}
}

func TestUnaryServerInterceptor_FaultIsReturnedUnchanged(t *testing.T) {
	interceptor := newInterceptor(t).UnaryServerInterceptor()

	_, err := interceptor(incoming("Bearer not-a-jwt"), nil, &grpc.UnaryServerInfo{FullMethod: testMethod},
		func(context.Context, any) (any, error) { return nil, nil })

	assert.ErrorIs(t, err, core.ErrTokenFault)
	var fault *core.TokenFault
	assert.True(t, errors.As(err, &fault))
}

func TestUnaryServerInterceptor_ExcludedMethods(t *testing.T) {
	interceptor := newInterceptor(t, WithExcludedMethods("/grpc.health.v1.Health/Check")).UnaryServerInterceptor()

	var hasClaims bool
	resp, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"},
		func(ctx context.Context, req any) (any, error) {
			hasClaims = HasClaims(ctx)
			return "healthy", nil
		})

	require.NoError(t, err)
	assert.Equal(t, "healthy", resp)
	assert.False(t, hasClaims)
}

func TestUnaryServerInterceptor_ErrorHandler(t *testing.T) {
	interceptor := newInterceptor(t, WithErrorHandler(func(err error) error {
		if errors.Is(err, core.ErrTokenFault) {
			return status.Error(codes.Internal, "internal error")
		}
		return DefaultErrorHandler(err)
	})).UnaryServerInterceptor()

	_, err := interceptor(incoming("Bearer not-a-jwt"), nil, &grpc.UnaryServerInfo{FullMethod: testMethod},
		func(context.Context, any) (any, error) { return nil, nil })

	assert.Equal(t, codes.Internal, status.Code(err))
}

type mockServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (m *mockServerStream) Context() context.Context {
	return m.ctx
}

func TestStreamServerInterceptor(t *testing.T) {
	validToken := testtoken.Sign(t, testSecret, map[string]any{"sub": "janed"})
	interceptor := newInterceptor(t).StreamServerInterceptor()
	info := &grpc.StreamServerInfo{FullMethod: "/users.Users/Watch", IsServerStream: true}

	t.Run("valid token", func(t *testing.T) {
		var claims validator.Claims
		err := interceptor(nil, &mockServerStream{ctx: incoming("Bearer " + validToken)}, info,
			func(srv any, ss grpc.ServerStream) error {
				var err error
				claims, err = GetClaims(ss.Context())
				return err
			})

		require.NoError(t, err)
		assert.Equal(t, "janed", claims.Subject())
	})

	t.Run("missing header", func(t *testing.T) {
		called := false
		err := interceptor(nil, &mockServerStream{ctx: context.Background()}, info,
			func(any, grpc.ServerStream) error {
				called = true
				return nil
			})

		assert.Equal(t, codes.Unauthenticated, status.Code(err))
		assert.False(t, called)
	})
}

func TestNew_Errors(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrCoreNil)

	c := newInterceptor(t).core
	_, err = New(c, WithErrorHandler(nil))
	assert.ErrorIs(t, err, ErrErrorHandlerNil)

	_, err = New(c, WithLogger(nil))
	assert.ErrorIs(t, err, ErrLoggerNil)
}
