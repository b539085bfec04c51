// Package audit drives a headless browser over a rendered landing page and
// checks the reveal behaviour against the motion model.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/emulation"
	cdpruntime "github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"github.com/nfrund/funnel/internal/content"
	"github.com/nfrund/funnel/internal/motion"
	"github.com/nfrund/funnel/web/src/templates/components"
)

// Options configure an audit run.
type Options struct {
	ViewportWidth  int64
	ViewportHeight int64
	// Settle is how long to wait after a scroll for reveals to finish.
	Settle time.Duration
	// Timeout bounds the whole run.
	Timeout time.Duration
	// ChromePath overrides the browser binary; CHROME_PATH is used when empty.
	ChromePath string
	// Year is the copyright year the footer must show; zero means the current year.
	Year int
	// Prices are texts the pricing section must contain.
	Prices []string
	// Company is the name the footer must show; empty skips the check.
	Company string
	// StaggerItems is how many staggered feature cards the page has; zero
	// only requires that every one present ends visible.
	StaggerItems int
}

// DefaultOptions returns a desktop viewport and the expectations of the
// built-in page copy.
func DefaultOptions() Options {
	page := content.Default()
	return Options{
		ViewportWidth:  1280,
		ViewportHeight: 800,
		Settle:         1200 * time.Millisecond,
		Timeout:        2 * time.Minute,
		Prices:         []string{page.Pricing.Offer.Short(), page.Pricing.Original.Full()},
		Company:        page.Footer.Company,
		StaggerItems:   len(page.Features.Items),
	}
}

// Finding is the outcome of one check.
type Finding struct {
	Check  string
	OK     bool
	Detail string
}

// Report collects the findings of a run.
type Report struct {
	URL      string
	Targets  int
	Steps    int
	Findings []Finding
}

// Passed reports whether every check succeeded.
func (r *Report) Passed() bool {
	for _, f := range r.Findings {
		if !f.OK {
			return false
		}
	}
	return true
}

func (r *Report) add(check string, ok bool, detail string) {
	r.Findings = append(r.Findings, Finding{Check: check, OK: ok, Detail: detail})
}

type geometry struct {
	ID     string  `json:"id"`
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// anchorBox is the viewport position of the checkout anchor.
type anchorBox struct {
	Found    bool    `json:"found"`
	Top      float64 `json:"top"`
	Bottom   float64 `json:"bottom"`
	Viewport float64 `json:"viewport"`
}

const (
	// The layout position excludes the y offset the hidden state applies.
	measureJS = `Array.from(document.querySelectorAll(%q)).map((el, i) => {
  const r = el.getBoundingClientRect();
  const t = getComputedStyle(el).transform;
  const dy = t && t !== "none" ? new DOMMatrixReadOnly(t).m42 : 0;
  el.dataset.auditId = "r" + i;
  return {id: "r" + i, top: r.top + window.scrollY - dy, height: r.height};
})`
	opacityJS = `Object.fromEntries(Array.from(document.querySelectorAll("[data-audit-id]")).map(
  el => [el.dataset.auditId, parseFloat(getComputedStyle(el).opacity)]))`
	staggerJS = `Array.from(document.querySelectorAll("[data-stagger-item]")).map(
  el => parseFloat(getComputedStyle(el).opacity))`
	heightJS = `document.documentElement.scrollHeight`

	clickCTAJS = `(() => {
  window.scrollTo(0, 0);
  const b = document.querySelector("[data-scroll-target]");
  if (!b) return false;
  b.click();
  return true;
})()`
	anchorJS = `(() => {
  const el = document.getElementById(%q);
  if (!el) return {found: false};
  const r = el.getBoundingClientRect();
  return {found: true, top: r.top, bottom: r.bottom, viewport: window.innerHeight};
})()`
	dropAnchorJS = `(() => {
  const el = document.getElementById(%q);
  if (el) el.removeAttribute("id");
  window.scrollTo(0, 0);
  return window.scrollY;
})()`
	scrollYJS = `window.scrollY`
)

// consoleErrors collects uncaught exceptions and console.error calls.
type consoleErrors struct {
	mu   sync.Mutex
	msgs []string
}

func (c *consoleErrors) listen(ev any) {
	var msg string
	switch ev := ev.(type) {
	case *cdpruntime.EventExceptionThrown:
		msg = ev.ExceptionDetails.Text
		if ev.ExceptionDetails.Exception != nil && ev.ExceptionDetails.Exception.Description != "" {
			msg = ev.ExceptionDetails.Exception.Description
		}
	case *cdpruntime.EventConsoleAPICalled:
		if ev.Type != cdpruntime.APITypeError {
			return
		}
		msg = "console.error"
		if len(ev.Args) > 0 {
			if arg := ev.Args[0]; arg.Description != "" {
				msg = arg.Description
			} else if len(arg.Value) > 0 {
				msg = string(arg.Value)
			}
		}
	default:
		return
	}
	c.mu.Lock()
	c.msgs = append(c.msgs, msg)
	c.mu.Unlock()
}

// since returns the messages recorded after the first n.
func (c *consoleErrors) since(n int) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n >= len(c.msgs) {
		return nil
	}
	return append([]string(nil), c.msgs[n:]...)
}

func (c *consoleErrors) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.msgs)
}

// Run loads url at scroll offset zero, records where every revealable element
// sits, then scrolls to the bottom one viewport at a time. After each step the
// browser's opacities are compared with what a motion.Tracker fed the same
// offsets says should be visible.
func Run(ctx context.Context, url string, opts Options) (*Report, error) {
	if opts.ViewportHeight <= 0 || opts.ViewportWidth <= 0 {
		return nil, fmt.Errorf("invalid viewport %dx%d", opts.ViewportWidth, opts.ViewportHeight)
	}
	if opts.Year == 0 {
		opts.Year = time.Now().Year()
	}

	trigger := motion.Default().Reveal.Tween.Trigger
	tracker, err := motion.NewTracker(float64(opts.ViewportHeight), *trigger)
	if err != nil {
		return nil, err
	}
	defer tracker.Detach()

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.WindowSize(int(opts.ViewportWidth), int(opts.ViewportHeight)),
	)
	chromePath := opts.ChromePath
	if chromePath == "" {
		chromePath = os.Getenv("CHROME_PATH")
	}
	if chromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(chromePath))
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer allocCancel()
	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	report := &Report{URL: url}
	errs := &consoleErrors{}
	chromedp.ListenTarget(browserCtx, errs.listen)

	var geom []geometry
	var docHeight float64
	err = chromedp.Run(browserCtx,
		emulation.SetDeviceMetricsOverride(opts.ViewportWidth, opts.ViewportHeight, 1, false),
		chromedp.Navigate(url),
		chromedp.WaitReady("footer", chromedp.ByQuery),
		chromedp.Sleep(opts.Settle),
		chromedp.Evaluate(fmt.Sprintf(measureJS, motion.RevealSelector), &geom),
		chromedp.Evaluate(heightJS, &docHeight),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", url, err)
	}

	targets := make([]motion.Target, len(geom))
	for i, g := range geom {
		targets[i] = motion.Target{ID: g.ID, Top: g.Top, Height: g.Height}
	}
	report.Targets = len(targets)

	fired, err := tracker.Attach(targets)
	if err != nil {
		return nil, err
	}

	opacity, err := readOpacity(browserCtx)
	if err != nil {
		return nil, err
	}
	checkInitial(report, fired, tracker.Pending(), opacity)

	viewport := float64(opts.ViewportHeight)
	for offset := viewport; ; offset += viewport {
		last := offset >= docHeight-viewport
		if last {
			offset = math.Max(0, docHeight-viewport)
		}
		err := chromedp.Run(browserCtx,
			chromedp.Evaluate(fmt.Sprintf("window.scrollTo(0, %s)", strconv.FormatFloat(offset, 'f', 0, 64)), nil),
			chromedp.Sleep(opts.Settle),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scroll to %.0f: %w", offset, err)
		}
		tracker.Scroll(offset)
		report.Steps++
		if last {
			break
		}
	}

	opacity, err = readOpacity(browserCtx)
	if err != nil {
		return nil, err
	}
	checkFinal(report, tracker, targets, opacity)

	var stagger []float64
	if err := chromedp.Run(browserCtx, chromedp.Evaluate(staggerJS, &stagger)); err != nil {
		return nil, fmt.Errorf("failed to read stagger items: %w", err)
	}
	checkStagger(report, stagger, opts.StaggerItems)

	var footer, pricing string
	err = chromedp.Run(browserCtx,
		chromedp.Text("footer", &footer, chromedp.ByQuery),
		chromedp.Text("#checkout", &pricing, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read page text: %w", err)
	}
	checkText(report, footer, pricing, opts)

	if err := runScrollChecks(browserCtx, report, errs, opts.Settle); err != nil {
		return nil, err
	}

	slog.Info("Audit finished", "url", url, "targets", report.Targets, "steps", report.Steps, "passed", report.Passed())
	return report, nil
}

// runScrollChecks clicks the first call to action from the top of the page
// and expects the checkout anchor in view, then removes the anchor and expects
// the same click to neither scroll nor raise an error. It must run last since
// it changes the document.
func runScrollChecks(ctx context.Context, r *Report, errs *consoleErrors, settle time.Duration) error {
	var clicked bool
	var box anchorBox
	err := chromedp.Run(ctx,
		chromedp.Evaluate(clickCTAJS, &clicked),
		chromedp.Sleep(2*settle),
		chromedp.Evaluate(fmt.Sprintf(anchorJS, components.CheckoutAnchor), &box),
	)
	if err != nil {
		return fmt.Errorf("failed to click call to action: %w", err)
	}
	checkAnchorInView(r, clicked, box)

	var before, after float64
	seen := errs.count()
	err = chromedp.Run(ctx,
		chromedp.Evaluate(fmt.Sprintf(dropAnchorJS, components.CheckoutAnchor), &before),
		chromedp.Evaluate(clickCTAJS, &clicked),
		chromedp.Sleep(settle),
		chromedp.Evaluate(scrollYJS, &after),
	)
	if err != nil {
		return fmt.Errorf("failed to click call to action without anchor: %w", err)
	}
	checkMissingAnchor(r, clicked, before, after, errs.since(seen))
	return nil
}

func readOpacity(ctx context.Context) (map[string]float64, error) {
	var opacity map[string]float64
	if err := chromedp.Run(ctx, chromedp.Evaluate(opacityJS, &opacity)); err != nil {
		return nil, fmt.Errorf("failed to read opacities: %w", err)
	}
	return opacity, nil
}

const (
	visible = 0.99
	hidden  = 0.01
)

// checkInitial verifies the state right after the page settles at offset zero:
// what the tracker fired on attach is fully shown, everything else is hidden.
func checkInitial(r *Report, fired, pending []string, opacity map[string]float64) {
	r.add("hero revealed on load", len(fired) > 0 && allAtLeast(fired, opacity, visible),
		fmt.Sprintf("%d targets above the fold", len(fired)))

	var shown []string
	for _, id := range pending {
		if opacity[id] > hidden {
			shown = append(shown, id)
		}
	}
	r.add("below the fold hidden", len(shown) == 0, detailIDs("visible before scrolling", shown))
}

// checkFinal verifies that after scrolling to the bottom every target has
// fired and is fully visible.
func checkFinal(r *Report, tracker *motion.Tracker, targets []motion.Target, opacity map[string]float64) {
	pending := tracker.Pending()
	r.add("every target reached", len(pending) == 0, detailIDs("never crossed the trigger line", pending))

	var dim []string
	for _, t := range targets {
		if opacity[t.ID] < visible {
			dim = append(dim, t.ID)
		}
	}
	r.add("every target visible", len(dim) == 0, detailIDs("not fully visible", dim))
}

// checkStagger verifies every staggered card ended fully visible and, when
// want is set, that the page has exactly that many.
func checkStagger(r *Report, opacities []float64, want int) {
	if want > 0 {
		r.add("stagger items present", len(opacities) == want,
			fmt.Sprintf("found %d, expected %d", len(opacities), want))
	}
	dim := 0
	for _, o := range opacities {
		if o < visible {
			dim++
		}
	}
	r.add("stagger items visible", len(opacities) > 0 && dim == 0,
		fmt.Sprintf("%d of %d not fully visible", dim, len(opacities)))
}

// checkAnchorInView verifies a call to action brought the anchor's top edge
// into the viewport.
func checkAnchorInView(r *Report, clicked bool, box anchorBox) {
	switch {
	case !clicked:
		r.add("call to action scrolls to checkout", false, "no call to action on the page")
	case !box.Found:
		r.add("call to action scrolls to checkout", false, "checkout anchor missing")
	default:
		ok := box.Top > -1 && box.Top < box.Viewport && box.Bottom > 0
		r.add("call to action scrolls to checkout", ok,
			fmt.Sprintf("anchor top at %.0f in a %.0f viewport", box.Top, box.Viewport))
	}
}

// checkMissingAnchor verifies a click without a target neither moved the page
// nor raised an error.
func checkMissingAnchor(r *Report, clicked bool, before, after float64, errs []string) {
	r.add("missing anchor does not scroll", clicked && before == after,
		fmt.Sprintf("scrollY %.0f -> %.0f", before, after))
	r.add("missing anchor raises no error", len(errs) == 0, detailIDs("errors", errs))
}

func checkText(r *Report, footer, pricing string, opts Options) {
	year := strconv.Itoa(opts.Year)
	r.add("footer year", strings.Contains(footer, year), "expected "+year)
	if opts.Company != "" {
		r.add("footer company", strings.Contains(footer, opts.Company), "expected "+opts.Company)
	}
	for _, price := range opts.Prices {
		r.add("price "+price, strings.Contains(pricing, price), "")
	}
}

func allAtLeast(ids []string, opacity map[string]float64, min float64) bool {
	for _, id := range ids {
		if opacity[id] < min {
			return false
		}
	}
	return true
}

func detailIDs(label string, ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	return label + ": " + strings.Join(ids, ", ")
}
