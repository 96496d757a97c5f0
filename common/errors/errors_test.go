package errors

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestExitCodeError(t *testing.T) {
	assert.Nil(t, NewError(nil, UsageExitCode))
	assert.Equal(t, ExitCode(0), (*ExitCodeError)(nil).GetExitCode())

	base := errors.New("no binding")
	err := NewError(errors.WithMessage(base, "resolving"), UnresolvableExitCode)
	assert.Equal(t, ExitCode(UnresolvableExitCode), err.GetExitCode())
	assert.Equal(t, "resolving: no binding", err.Error())
	assert.Equal(t, base, errors.Cause(err))
	assert.True(t, errors.Is(err, base))
}
