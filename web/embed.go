package web

import "embed"

// FS holds the static assets served under /static and copied by the exporter.
//
//go:embed static/*
var FS embed.FS
