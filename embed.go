package lunasite

import "embed"

// EmbeddedAssets contains static assets shipped with the engine:
// tracking.js (the browser-side tag injector) and settings.js (the
// tracking settings form logic).
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
