package web

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAsset(t *testing.T, name string) string {
	t.Helper()
	data, err := fs.ReadFile(FS, name)
	require.NoError(t, err)
	return string(data)
}

func TestMotionShimRegistersAfterLoad(t *testing.T) {
	js := readAsset(t, "static/js/motion.js")

	assert.Contains(t, js, `window.addEventListener("load", boot`)
	assert.Contains(t, js, `document.readyState === "complete"`)
	assert.NotContains(t, js, "DOMContentLoaded", "registration must not run before images are laid out")
}

func TestMotionShimHidesOnlyWithConfig(t *testing.T) {
	js := readAsset(t, "static/js/motion.js")

	read := strings.Index(js, "var config = readConfig();")
	hide := strings.Index(js, `classList.add("motion")`)
	require.NotEqual(t, -1, read)
	require.NotEqual(t, -1, hide)
	assert.Less(t, read, hide, "the motion class is added after the config is read")
	assert.Contains(t, js, `var animated = config !== null && typeof gsap !== "undefined";`)
	assert.Contains(t, js, `if (animated) document.documentElement.classList.add("motion");`)
}

func TestStylesheetHidesRevealablesOnlyUnderMotion(t *testing.T) {
	css := readAsset(t, "static/css/funnel.css")

	assert.Contains(t, css, ".motion [data-reveal]")
	assert.NotContains(t, css, "\n[data-reveal] {", "without the motion class revealables stay visible")
}
