package getlinks_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/getlinks"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := getlinks.Errorf(getlinks.ENOTFOUND, "document %q not found", "page.html")

	assert.Equal(t, getlinks.ENOTFOUND, getlinks.ErrorCode(err))
	assert.Equal(t, "document \"page.html\" not found", getlinks.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, getlinks.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, getlinks.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("reading input: %w", getlinks.Errorf(getlinks.EINVALID, "too large"))

	assert.Equal(t, getlinks.EINVALID, getlinks.ErrorCode(err))
	assert.Equal(t, "too large", getlinks.ErrorMessage(err))
}

func TestErrorCode_ForeignError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("boom")

	assert.Equal(t, getlinks.EINTERNAL, getlinks.ErrorCode(err))
	assert.Equal(t, "Internal error.", getlinks.ErrorMessage(err))
}
