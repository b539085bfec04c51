package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	page := Default()
	require.NoError(t, page.Validate())

	assert.Len(t, page.FAQ.Items, 5)
	assert.Len(t, page.Carousel.Images, 5)
	assert.Len(t, page.Features.Items, 6)
	assert.Equal(t, 20, page.Ticker.Repeat)
}

func TestDefaultReturnsFreshValues(t *testing.T) {
	a := Default()
	a.FAQ.Items[0].Answer = "changed"

	assert.NotEqual(t, "changed", Default().FAQ.Items[0].Answer)
}

func TestPriceFormatting(t *testing.T) {
	page := Default()

	assert.Equal(t, "R$ 197", page.Pricing.Offer.Short())
	assert.Equal(t, "R$ 497,00", page.Pricing.Original.Full())
	assert.Equal(t, "R$ 197,50", Price{Cents: 19750}.Short())
	assert.Equal(t, "R$ 1.997,00", Price{Cents: 199700}.Full())
}

func TestRichSanitize(t *testing.T) {
	r := Rich(`Um <strong>método</strong> <span class="background-destaque">novo</span><script>alert(1)</script><a href="x">link</a>`)

	got := r.Sanitize().String()

	assert.Contains(t, got, "<strong>método</strong>")
	assert.Contains(t, got, `<span class="background-destaque">novo</span>`)
	assert.NotContains(t, got, "script")
	assert.NotContains(t, got, "<a")
	assert.Contains(t, got, "link")
}

func TestValidateRejectsMalformedRecords(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Page)
	}{
		{"empty faq answer", func(p *Page) { p.FAQ.Items[1].Answer = "" }},
		{"no faq entries", func(p *Page) { p.FAQ.Items = nil }},
		{"bad image url", func(p *Page) { p.Carousel.Images[0] = "not a url" }},
		{"unknown step icon", func(p *Page) { p.Steps.Items[0].Icon = "rocket" }},
		{"zero price", func(p *Page) { p.Pricing.Offer.Cents = 0 }},
		{"empty heading", func(p *Page) { p.Features.Heading.Text = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Default()
			tt.mutate(page)

			err := page.Validate()
			assert.True(t, errors.Is(err, ErrInvalid), "expected ErrInvalid, got %v", err)
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("overlays only the given fields", func(t *testing.T) {
		page, err := Parse([]byte(`
hero:
  brand: "ACADEMIA CYAN"
pricing:
  offer:
    cents: 14700
`))
		require.NoError(t, err)

		assert.Equal(t, "ACADEMIA CYAN", page.Hero.Brand)
		assert.Equal(t, "R$ 147", page.Pricing.Offer.Short())
		assert.Equal(t, Default().Hero.Headline, page.Hero.Headline)
	})

	t.Run("empty document keeps the defaults", func(t *testing.T) {
		page, err := Parse(nil)
		require.NoError(t, err)
		assert.Equal(t, Default().Footer.Company, page.Footer.Company)
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		_, err := Parse([]byte("hero:\n  logo: x\n"))
		assert.Error(t, err)
	})

	t.Run("invalid records are rejected", func(t *testing.T) {
		_, err := Parse([]byte("faq:\n  items: []\n"))
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("rich text is sanitized", func(t *testing.T) {
		page, err := Parse([]byte("benefits:\n  intro: 'Olá <img src=x onerror=alert(1)><strong>mundo</strong>'\n"))
		require.NoError(t, err)
		assert.Equal(t, "Olá <strong>mundo</strong>", page.Benefits.Intro.String())
	})

	t.Run("rich text that sanitizes to nothing is missing", func(t *testing.T) {
		_, err := Parse([]byte("benefits:\n  intro: '<script>alert(1)</script>'\n"))
		assert.ErrorIs(t, err, ErrInvalid)

		_, err = Parse([]byte("mentor:\n  paragraphs: ['<img src=x onerror=alert(1)>']\n"))
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestStoreLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	store := NewStore(Default())

	require.NoError(t, os.WriteFile(path, []byte("hero:\n  brand: NOVA MARCA\n"), 0o644))
	require.NoError(t, store.Load(path))
	assert.Equal(t, "NOVA MARCA", store.Page().Hero.Brand)

	require.NoError(t, os.WriteFile(path, []byte("faq:\n  items: []\n"), 0o644))
	assert.Error(t, store.Load(path))
	assert.Equal(t, "NOVA MARCA", store.Page().Hero.Brand, "previous page must survive a failed load")

	assert.Error(t, store.Load(filepath.Join(dir, "missing.yaml")))
}

func TestStoreWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hero:\n  brand: PRIMEIRA\n"), 0o644))

	store := NewStore(Default())
	require.NoError(t, store.Load(path))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, store.Watch(ctx, path))

	require.NoError(t, os.WriteFile(path, []byte("hero:\n  brand: SEGUNDA\n"), 0o644))

	assert.Eventually(t, func() bool {
		return store.Page().Hero.Brand == "SEGUNDA"
	}, 5*time.Second, 20*time.Millisecond)
}
