// Package export renders the landing page to a self-contained directory that
// any static host can serve.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/spf13/afero"

	"github.com/nfrund/funnel/internal/content"
	"github.com/nfrund/funnel/internal/motion"
	"github.com/nfrund/funnel/internal/rendering"
	"github.com/nfrund/funnel/internal/storage"
	"github.com/nfrund/funnel/web"
	"github.com/nfrund/funnel/web/src/templates/pages"
)

// Options control a static export.
type Options struct {
	// CheckoutURL is linked directly, there is no tracked redirect without a server.
	CheckoutURL string
	// Year is printed in the footer; zero means the current year.
	Year int
}

// Result summarizes what was written.
type Result struct {
	Files []string
	Bytes int64
}

// Site writes index.html and every embedded static asset into dir on fsys.
// FAQ entries toggle in the browser because no server answers fragment requests.
func Site(ctx context.Context, fsys afero.Fs, dir string, page *content.Page, opts Options) (*Result, error) {
	store := storage.NewDirStore(fsys, dir)
	res := &Result{}

	motionJSON, err := motion.Default().JSON()
	if err != nil {
		return nil, err
	}

	year := opts.Year
	if year == 0 {
		year = time.Now().Year()
	}

	html, err := rendering.NewUniversalRenderer().RenderComponent(ctx, pages.Landing(page, pages.Options{
		Year:         year,
		CheckoutHref: opts.CheckoutURL,
		StaticFAQ:    true,
		MotionConfig: []byte(motionJSON),
		AssetPrefix:  ".",
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	if err := res.save(ctx, store, "index.html", html); err != nil {
		return nil, err
	}

	err = fs.WalkDir(web.FS, "static", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(web.FS, path)
		if err != nil {
			return err
		}
		return res.save(ctx, store, path, data)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to copy static assets: %w", err)
	}

	slog.Info("Exported site", "dir", dir, "files", len(res.Files), "bytes", res.Bytes)
	return res, nil
}

func (r *Result) save(ctx context.Context, store storage.Store, path string, data []byte) error {
	n, err := store.Save(ctx, path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	r.Files = append(r.Files, path)
	r.Bytes += n
	return nil
}
