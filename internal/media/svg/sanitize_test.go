package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize_StripsScriptAndEvents(t *testing.T) {
	input := []byte(`<svg onload="evil()"><script type="text/javascript">alert(1)</script><rect/></svg>`)

	clean, err := Sanitize(input)
	require.NoError(t, err)
	assert.NotContains(t, string(clean), "<script")
	assert.NotContains(t, string(clean), "onload")
	assert.Contains(t, string(clean), "<rect/>")
}

func TestSanitize_StripsScriptHrefs(t *testing.T) {
	input := []byte(`<svg><a xlink:href="javascript:evil()" onclick='evil()'><text>go</text></a></svg>`)

	clean, err := Sanitize(input)
	require.NoError(t, err)
	assert.NotContains(t, string(clean), "javascript:")
	assert.NotContains(t, string(clean), "onclick")
	assert.Contains(t, string(clean), "<text>go</text>")
}

func TestSanitize_RejectsNonSVG(t *testing.T) {
	_, err := Sanitize([]byte(`{"order":[]}`))
	assert.Error(t, err)
}
