package printer

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

// capture redirects output into buffers with colors disabled for the test
func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	prevOut, prevErr, prevNoColor := stdout, stderr, color.NoColor
	SetOutput(&out, &errOut)
	color.NoColor = true
	t.Cleanup(func() {
		stdout, stderr, color.NoColor = prevOut, prevErr, prevNoColor
	})
	return &out, &errOut
}

func TestError(t *testing.T) {
	t.Run("returns error with title", func(t *testing.T) {
		_, errOut := capture(t)
		err := Error("Test Error", "This is a test error", []string{})
		require.Error(t, err)
		require.Equal(t, "Test Error", err.Error())
		require.Equal(t, "Test Error\n\nThis is a test error\n", errOut.String())
	})

	t.Run("prints a single suggestion inline", func(t *testing.T) {
		_, errOut := capture(t)
		err := Error("Test Error", "Explanation", []string{"Try this fix"})
		require.Error(t, err)
		require.Contains(t, errOut.String(), "\nTry this fix\n")
		require.NotContains(t, errOut.String(), "Either:")
	})

	t.Run("numbers multiple suggestions", func(t *testing.T) {
		_, errOut := capture(t)
		err := Error("Test Error", "Explanation", []string{
			"First option",
			"Second option",
		})
		require.Error(t, err)
		require.Contains(t, errOut.String(), "Either:\n  1. First option\n  2. Second option\n")
	})
}

func TestMessages(t *testing.T) {
	out, _ := capture(t)

	Success("done\n")
	Success("✓ already marked\n")
	Warning("careful\n")
	Step("next\n")
	Heading("Title")
	Info("%d beads\n", 18)
	Println("plain")

	require.Equal(t, "✓ done\n✓ already marked\n⚠️  careful\n→ next\nTitle\n18 beads\nplain\n", out.String())
}

func TestSetOutputIgnoresNil(t *testing.T) {
	out, errOut := capture(t)
	SetOutput(nil, nil)
	Info("kept")
	require.Equal(t, "kept", out.String())
	require.Empty(t, errOut.String())
}
