package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestTruncateInput(t *testing.T) {
	assert.Equal(t, "short", TruncateInput("short"))
	assert.Equal(t, "", TruncateInput(""))

	exact := strings.Repeat("a", MaxInputChars)
	assert.Equal(t, exact, TruncateInput(exact))

	long := strings.Repeat("b", MaxInputChars+500)
	got := TruncateInput(long)
	assert.Equal(t, MaxInputChars, len([]rune(got)))

	// truncation counts characters, not bytes
	wide := strings.Repeat("é", MaxInputChars+1)
	assert.Equal(t, MaxInputChars, len([]rune(TruncateInput(wide))))
}

func TestClampDescription(t *testing.T) {
	assert.Equal(t, "a summary", ClampDescription("  a summary \n"))
	assert.Equal(t, "", ClampDescription("   \t\n"))

	long := strings.Repeat("x", MaxDescriptionChars+10)
	assert.Equal(t, MaxDescriptionChars, len([]rune(ClampDescription(long))))
}

func TestIsServiceFailure(t *testing.T) {
	apiErr := &googleapi.Error{Code: 429, Message: "rate limited"}
	assert.True(t, isServiceFailure(apiErr))
	assert.True(t, isServiceFailure(fmt.Errorf("generate: %w", apiErr)))

	// a timed-out call is a service failure, not an unexpected one
	assert.True(t, isServiceFailure(context.DeadlineExceeded))
	assert.True(t, isServiceFailure(fmt.Errorf("generate: %w", context.DeadlineExceeded)))

	assert.False(t, isServiceFailure(errors.New("connection refused")))
	assert.False(t, isServiceFailure(context.Canceled))
}
