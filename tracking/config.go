// Package tracking keeps three designated regions of a rendered page in
// sync with an operator-supplied tag configuration.
//
// The configuration lives in two layers: a stored override persisted in
// the visitor's browser under StorageKey, and read-only environment
// defaults. Each region resolves independently: stored value if non-empty,
// else environment default, else nothing. The Apply routine in this
// package reconciles a parsed HTML document against the resolved
// configuration; the embedded tracking.js asset performs the same
// reconciliation against the live DOM in the browser.
package tracking

import (
	"encoding/json"
	"strings"
)

const (
	// StorageKey names the browser localStorage entry holding the stored
	// override as a JSON object.
	StorageKey = "lunasite-tracking-tags"

	// UpdatedEvent is the in-page event name dispatched by the settings
	// form after a save or clear, telling same-tab listeners to re-apply.
	UpdatedEvent = "lunasite-tracking-updated"
)

// Config holds one markup block per injection region plus an optional
// save timestamp. An empty field means "no override at this layer".
type Config struct {
	HeadTags      string `json:"headTags"`
	BodyStartTags string `json:"bodyStartTags"`
	BodyEndTags   string `json:"bodyEndTags"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
}

// Normalize returns the config with every region field trimmed.
// Fields are always trimmed before storage or comparison.
func (c Config) Normalize() Config {
	return Config{
		HeadTags:      strings.TrimSpace(c.HeadTags),
		BodyStartTags: strings.TrimSpace(c.BodyStartTags),
		BodyEndTags:   strings.TrimSpace(c.BodyEndTags),
		UpdatedAt:     c.UpdatedAt,
	}
}

// Empty reports whether all three regions are empty.
func (c Config) Empty() bool {
	return c.HeadTags == "" && c.BodyStartTags == "" && c.BodyEndTags == ""
}

// ParseStored decodes a persisted JSON value. Malformed input degrades to
// the empty config so a broken override never breaks the page.
func ParseStored(raw string) Config {
	if raw == "" {
		return Config{}
	}
	var c Config
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return Config{}
	}
	return c.Normalize()
}

// FromEnv builds the environment-default config from the three
// process-wide fallback values.
func FromEnv(head, bodyStart, bodyEnd string) Config {
	return Config{
		HeadTags:      head,
		BodyStartTags: bodyStart,
		BodyEndTags:   bodyEnd,
	}.Normalize()
}

// Effective resolves the configuration the page should carry: per region,
// the stored override wins when non-empty, otherwise the environment
// default applies.
func Effective(stored, env Config) Config {
	pick := func(override, fallback string) string {
		if override != "" {
			return override
		}
		return fallback
	}
	return Config{
		HeadTags:      pick(stored.HeadTags, env.HeadTags),
		BodyStartTags: pick(stored.BodyStartTags, env.BodyStartTags),
		BodyEndTags:   pick(stored.BodyEndTags, env.BodyEndTags),
	}
}
