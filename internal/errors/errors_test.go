package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/build-share-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "shared build not found",
			expected: "NOT_FOUND: shared build not found",
		},
		{
			name:     "data loss error",
			code:     errors.CodeDataLoss,
			message:  "item record truncated",
			expected: "DATA_LOSS: item record truncated",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWithMeta() {
	err := errors.New(errors.CodeDataLoss, "truncated").
		WithMeta("offset", 36).
		WithMeta("remaining", 3)

	s.Equal(36, err.Meta["offset"])
	s.Equal(3, err.Meta["remaining"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to store shared build")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to store shared build", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotFoundf("record not found").WithMeta("id", "bld_1")
	wrapped := errors.Wrapf(baseErr, "share %s not found", "bld_1")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("share bld_1 not found", wrapped.Message)
	s.Equal("bld_1", wrapped.Meta["id"])
}

func (s *ErrorsTestSuite) TestWrapWithCodeKeepsSentinel() {
	sentinel := stderrors.New("truncated record")
	wrapped := errors.WrapWithCodef(sentinel, errors.CodeDataLoss, "need %d bytes", 7)

	s.Equal(errors.CodeDataLoss, wrapped.Code)
	s.True(stderrors.Is(wrapped, sentinel))
	s.True(errors.Is(errors.Wrap(wrapped, "outer"), sentinel))
	s.Equal("DATA_LOSS: need 7 bytes: truncated record", wrapped.Error())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestConstructorFunctions() {
	testCases := []struct {
		name        string
		constructor func() *errors.Error
		code        errors.Code
	}{
		{"NotFoundf", func() *errors.Error { return errors.NotFoundf("test") }, errors.CodeNotFound},
		{"InvalidArgument", func() *errors.Error { return errors.InvalidArgument("test") }, errors.CodeInvalidArgument},
		{"InvalidArgumentf", func() *errors.Error { return errors.InvalidArgumentf("%s", "test") }, errors.CodeInvalidArgument},
		{"Unavailablef", func() *errors.Error { return errors.Unavailablef("%s", "test") }, errors.CodeUnavailable},
		{"New", func() *errors.Error { return errors.New(errors.CodeDataLoss, "test") }, errors.CodeDataLoss},
		{"Newf", func() *errors.Error { return errors.Newf(errors.CodeOutOfRange, "%s", "test") }, errors.CodeOutOfRange},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.constructor()
			s.Equal(tc.code, err.Code)
			s.Equal("test", err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.NotFoundf("a")
	err2 := errors.NotFoundf("b")
	err3 := errors.InvalidArgument("a")

	s.True(err1.Is(err2))
	s.False(err1.Is(err3))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	notFoundErr := errors.NotFoundf("test")
	wrappedErr := errors.Wrap(notFoundErr, "wrapped")

	s.True(errors.IsNotFound(notFoundErr))
	s.True(errors.IsNotFound(wrappedErr))
	s.False(errors.IsNotFound(errors.InvalidArgument("test")))
	s.True(errors.IsOutOfRange(errors.New(errors.CodeOutOfRange, "level")))
	s.True(errors.IsDataLoss(errors.New(errors.CodeDataLoss, "short")))
	s.True(errors.IsUnimplemented(errors.New(errors.CodeUnimplemented, "v2")))
	s.True(errors.IsInternal(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestGetters() {
	err := errors.NotFoundf("user friendly message").WithMeta("key", "value")
	wrapped := errors.Wrap(err, "wrapped message")
	stdErr := fmt.Errorf("standard error")

	s.Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Equal(errors.CodeInternal, errors.GetCode(stdErr))
	s.Equal(errors.CodeOK, errors.GetCode(nil))

	s.Equal("value", errors.GetMeta(wrapped)["key"])
	s.Nil(errors.GetMeta(stdErr))

	s.Equal("wrapped message", errors.GetMessage(wrapped))
	s.Equal("standard error", errors.GetMessage(stdErr))
	s.Equal("", errors.GetMessage(nil))
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	err := errors.New(errors.CodeDataLoss, "item record truncated").
		WithMeta("offset", 43).
		WithMeta("fields", []string{"slots", "sublimation"})

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.DataLoss, st.Code())
	s.Equal("item record truncated", st.Message())
	s.Len(st.Details(), 1)

	back := errors.FromGRPCError(grpcErr)
	s.Equal(errors.CodeDataLoss, errors.GetCode(back))
	s.Equal("item record truncated", errors.GetMessage(back))
	meta := errors.GetMeta(back)
	s.Equal(float64(43), meta["offset"])
	s.Equal([]any{"slots", "sublimation"}, meta["fields"])
	s.NotContains(meta, "_code")
}

func (s *ErrorsTestSuite) TestGRPCConversionPlainErrors() {
	s.Nil(errors.ToGRPCError(nil))
	s.Nil(errors.FromGRPCError(nil))

	st, ok := status.FromError(errors.ToGRPCError(fmt.Errorf("boom")))
	s.Require().True(ok)
	s.Equal(codes.Internal, st.Code())

	already := status.Error(codes.NotFound, "gone")
	s.Equal(already, errors.ToGRPCError(already))

	back := errors.FromGRPCError(status.Error(codes.InvalidArgument, "invalid input"))
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(back))
	s.Nil(errors.GetMeta(back))

	plain := fmt.Errorf("not a status")
	s.Equal(plain, errors.FromGRPCError(plain))
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeOutOfRange, codes.OutOfRange},
		{errors.CodeUnimplemented, codes.Unimplemented},
		{errors.CodeDataLoss, codes.DataLoss},
		{errors.CodeInternal, codes.Internal},
		{errors.Code("SOMETHING_ELSE"), codes.Unknown},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
