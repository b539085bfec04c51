package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "funnelctl dev")
}

func TestExport(t *testing.T) {
	fsys := afero.NewMemMapFs()
	orig := exportFs
	exportFs = fsys
	t.Cleanup(func() { exportFs = orig })

	out, err := execute(t, "export", "--out", "/site", "--year", "2031", "--checkout-url", "https://pay.example.com/x")
	require.NoError(t, err)
	assert.Contains(t, out, "index.html")
	assert.Contains(t, out, "to /site")

	html, err := afero.ReadFile(fsys, "/site/index.html")
	require.NoError(t, err)
	assert.Contains(t, string(html), "© 2031")
	assert.Contains(t, string(html), "https://pay.example.com/x")

	exists, err := afero.Exists(fsys, "/site/static/js/motion.js")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestExport_BadContentFile(t *testing.T) {
	orig := exportFs
	exportFs = afero.NewMemMapFs()
	t.Cleanup(func() {
		exportFs = orig
		// Flags keep their values between executions of the same command tree.
		_ = rootCmd.PersistentFlags().Set("content", "")
	})

	_, err := execute(t, "export", "--out", "/site", "--content", "/does/not/exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load content")
}

func TestMotion_Samples(t *testing.T) {
	out, err := execute(t, "motion", "seal", "--step", "1s", "--steps", "2", "--live", "0s")
	require.NoError(t, err)

	assert.Contains(t, out, ".seal-container")
	assert.Contains(t, out, ".seal-ring")
	assert.Contains(t, out, ".seal-sheen")
	// The ring turns linearly through 360 degrees in 20s.
	assert.Contains(t, out, "rotation=18.00")
}

func TestMotion_UnknownScope(t *testing.T) {
	_, err := execute(t, "motion", "nope", "--step", "1s", "--live", "0s")
	require.Error(t, err)
}

func TestMotion_Live(t *testing.T) {
	out, err := execute(t, "motion", "seal", "--step", "10ms", "--live", "200ms")
	require.NoError(t, err)
	assert.Contains(t, strings.ToUpper(out), "FRAMES")
	assert.Contains(t, out, ".seal-ring")
}

func TestEvents(t *testing.T) {
	out, err := execute(t, "events")
	require.NoError(t, err)
	assert.Contains(t, out, "landing.page.viewed")
	assert.Contains(t, out, "landing.faq.toggled")
	assert.Contains(t, out, "landing.checkout.clicked")
}

func TestAudit_RequiresURL(t *testing.T) {
	_, err := execute(t, "audit")
	require.Error(t, err)
}
