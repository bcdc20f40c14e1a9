package output

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestColorEnabled(t *testing.T) {
	tests := map[string]struct {
		plain   bool
		noColor string
	}{
		"plain requested": {plain: true},
		"NO_COLOR set":    {noColor: "1"},
		"buffer":          {},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			assert.False(t, ColorEnabled(&bytes.Buffer{}, tt.plain))
		})
	}
}

func TestIsTerminal_Buffer(t *testing.T) {
	t.Parallel()

	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestSuccess_Plain(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	Success(&buf, "Created branch %s", Highlight("release/1.0"))
	assert.Equal(t, "✓ Created branch release/1.0\n", buf.String())
	assert.Equal(t, "note", Dim("note"))
}
