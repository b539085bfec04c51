package audit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"testing"
	"time"

	cdpruntime "github.com/chromedp/cdproto/runtime"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/funnel/internal/content"
	"github.com/nfrund/funnel/internal/motion"
	"github.com/nfrund/funnel/internal/rendering"
	"github.com/nfrund/funnel/web"
	"github.com/nfrund/funnel/web/src/templates/pages"
)

func TestCheckInitial(t *testing.T) {
	r := &Report{}
	checkInitial(r, []string{"r0", "r1"}, []string{"r2", "r3"}, map[string]float64{
		"r0": 1, "r1": 1, "r2": 0, "r3": 0,
	})
	assert.True(t, r.Passed())

	r = &Report{}
	checkInitial(r, []string{"r0"}, []string{"r1"}, map[string]float64{"r0": 1, "r1": 0.4})
	assert.False(t, r.Passed())
	assert.Equal(t, "visible before scrolling: r1", r.Findings[1].Detail)

	r = &Report{}
	checkInitial(r, nil, []string{"r0"}, map[string]float64{"r0": 0})
	assert.False(t, r.Findings[0].OK, "a page with nothing above the fold fails")
}

func TestCheckFinal(t *testing.T) {
	tracker, err := motion.NewTracker(800, motion.Trigger{Start: "top 85%", Once: true})
	require.NoError(t, err)
	targets := []motion.Target{{ID: "r0", Top: 100, Height: 50}, {ID: "r1", Top: 3000, Height: 50}}
	_, err = tracker.Attach(targets)
	require.NoError(t, err)

	r := &Report{}
	checkFinal(r, tracker, targets, map[string]float64{"r0": 1, "r1": 0})
	assert.False(t, r.Passed())

	tracker.Scroll(2400)
	r = &Report{}
	checkFinal(r, tracker, targets, map[string]float64{"r0": 1, "r1": 1})
	assert.True(t, r.Passed())
}

func TestCheckText(t *testing.T) {
	opts := DefaultOptions()
	opts.Year = 2026

	r := &Report{}
	checkText(r, "© 2026 - Nome da Sua Empresa ou Marca Profissional", "De: R$ 497,00 R$ 197 à vista", opts)
	assert.True(t, r.Passed())

	r = &Report{}
	checkText(r, "© 2025 - Outra Empresa", "R$ 197", opts)
	assert.False(t, r.Passed())
	require.Len(t, r.Findings, 4)
	assert.False(t, r.Findings[0].OK, "year")
	assert.False(t, r.Findings[1].OK, "company")
	assert.True(t, r.Findings[2].OK, "offer price")
	assert.False(t, r.Findings[3].OK, "original price")

	opts.Company = ""
	r = &Report{}
	checkText(r, "© 2026", "R$ 197 R$ 497,00", opts)
	assert.True(t, r.Passed())
	assert.Len(t, r.Findings, 3)
}

func TestDefaultOptionsFollowPageCopy(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, []string{"R$ 197", "R$ 497,00"}, opts.Prices)
	assert.Equal(t, "Nome da Sua Empresa ou Marca Profissional", opts.Company)
	assert.Equal(t, 6, opts.StaggerItems)
}

func TestCheckStagger(t *testing.T) {
	r := &Report{}
	checkStagger(r, []float64{1, 1, 1, 1, 1, 1}, 6)
	assert.True(t, r.Passed())

	r = &Report{}
	checkStagger(r, []float64{1, 1, 1, 1, 1, 0.3}, 6)
	assert.False(t, r.Passed())
	assert.Equal(t, "1 of 6 not fully visible", r.Findings[1].Detail)

	r = &Report{}
	checkStagger(r, []float64{1, 1}, 6)
	assert.False(t, r.Findings[0].OK, "missing cards fail")

	r = &Report{}
	checkStagger(r, nil, 0)
	assert.False(t, r.Passed(), "a page without staggered cards fails")
}

func TestCheckAnchorInView(t *testing.T) {
	cases := []struct {
		name    string
		clicked bool
		box     anchorBox
		ok      bool
	}{
		{"aligned to top", true, anchorBox{Found: true, Top: 0, Bottom: 900, Viewport: 800}, true},
		{"inside viewport", true, anchorBox{Found: true, Top: 120.5, Bottom: 1020, Viewport: 800}, true},
		{"still below", true, anchorBox{Found: true, Top: 2400, Bottom: 3300, Viewport: 800}, false},
		{"scrolled past", true, anchorBox{Found: true, Top: -950, Bottom: -50, Viewport: 800}, false},
		{"no anchor", true, anchorBox{}, false},
		{"no button", false, anchorBox{Found: true, Top: 0, Bottom: 900, Viewport: 800}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := &Report{}
			checkAnchorInView(r, tc.clicked, tc.box)
			assert.Equal(t, tc.ok, r.Passed())
		})
	}
}

func TestCheckMissingAnchor(t *testing.T) {
	r := &Report{}
	checkMissingAnchor(r, true, 0, 0, nil)
	assert.True(t, r.Passed())

	r = &Report{}
	checkMissingAnchor(r, true, 0, 640, nil)
	assert.False(t, r.Findings[0].OK)
	assert.Equal(t, "scrollY 0 -> 640", r.Findings[0].Detail)

	r = &Report{}
	checkMissingAnchor(r, true, 0, 0, []string{"TypeError: Cannot read properties of null"})
	assert.True(t, r.Findings[0].OK)
	assert.False(t, r.Findings[1].OK)
	assert.Contains(t, r.Findings[1].Detail, "TypeError")
}

func TestConsoleErrors(t *testing.T) {
	errs := &consoleErrors{}
	errs.listen(&cdpruntime.EventConsoleAPICalled{Type: cdpruntime.APITypeLog})
	errs.listen(&cdpruntime.EventExceptionThrown{ExceptionDetails: &cdpruntime.ExceptionDetails{Text: "Uncaught"}})
	assert.Equal(t, 1, errs.count())

	n := errs.count()
	errs.listen(&cdpruntime.EventConsoleAPICalled{Type: cdpruntime.APITypeError})
	assert.Equal(t, []string{"console.error"}, errs.since(n))
	assert.Empty(t, errs.since(errs.count()))
}

func TestMeasureIgnoresRevealOffset(t *testing.T) {
	// The hidden state moves elements down; geometry must come from layout.
	assert.Contains(t, measureJS, "DOMMatrixReadOnly(t).m42")
	assert.Contains(t, measureJS, "window.scrollY - dy")
}

func TestRunRejectsBadViewport(t *testing.T) {
	_, err := Run(context.Background(), "http://127.0.0.1", Options{})
	assert.Error(t, err)
}

func chromeAvailable() bool {
	if os.Getenv("CHROME_PATH") != "" {
		return true
	}
	for _, name := range []string{"google-chrome", "chromium", "chromium-browser", "headless-shell"} {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}

// TestRun needs a browser and network access for the animation runtime.
func TestRun(t *testing.T) {
	if testing.Short() || os.Getenv("FUNNEL_AUDIT_E2E") == "" {
		t.Skip("set FUNNEL_AUDIT_E2E=1 to run the browser audit")
	}
	if !chromeAvailable() {
		t.Skip("chrome not found")
	}

	cfg, err := motion.Default().JSON()
	require.NoError(t, err)

	e := echo.New()
	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))
	renderer := rendering.NewUniversalRenderer()
	e.GET("/", func(c echo.Context) error {
		return renderer.RenderPage(c, http.StatusOK, pages.Landing(content.Default(), pages.Options{
			Year:         2026,
			CheckoutHref: "#",
			MotionConfig: []byte(cfg),
		}))
	})
	srv := httptest.NewServer(e)
	defer srv.Close()

	opts := DefaultOptions()
	opts.Year = 2026
	opts.Timeout = 3 * time.Minute

	report, err := Run(context.Background(), srv.URL, opts)
	require.NoError(t, err)
	for _, f := range report.Findings {
		assert.True(t, f.OK, "%s: %s", f.Check, f.Detail)
	}
	assert.Positive(t, report.Targets)
}
