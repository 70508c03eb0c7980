package tracking

import (
	"strings"
	"testing"
)

func TestParseStored(t *testing.T) {
	c := ParseStored(`{"headTags":"  <script>a()</script>  ","bodyEndTags":"<img src=\"/px.gif\"/>"}`)
	if c.HeadTags != "<script>a()</script>" {
		t.Errorf("HeadTags = %q, want trimmed script", c.HeadTags)
	}
	if c.BodyStartTags != "" {
		t.Errorf("BodyStartTags = %q, want empty", c.BodyStartTags)
	}
	if c.BodyEndTags != `<img src="/px.gif"/>` {
		t.Errorf("BodyEndTags = %q", c.BodyEndTags)
	}
}

func TestParseStoredMalformed(t *testing.T) {
	for _, raw := range []string{"", "not json", `{"headTags": 42}`, "[1,2]"} {
		if c := ParseStored(raw); !c.Empty() {
			t.Errorf("ParseStored(%q) = %+v, want empty config", raw, c)
		}
	}
}

func TestEffectivePerRegionResolution(t *testing.T) {
	stored := Config{HeadTags: "<script>stored()</script>"}
	env := Config{
		HeadTags:    "<script>env()</script>",
		BodyEndTags: "<script>envEnd()</script>",
	}

	got := Effective(stored, env)
	if got.HeadTags != stored.HeadTags {
		t.Errorf("HeadTags should come from the stored override, got %q", got.HeadTags)
	}
	if got.BodyEndTags != env.BodyEndTags {
		t.Errorf("BodyEndTags should fall back to env, got %q", got.BodyEndTags)
	}
	if got.BodyStartTags != "" {
		t.Errorf("BodyStartTags should stay empty, got %q", got.BodyStartTags)
	}
}

func TestEffectiveEmptyStoredUsesEnv(t *testing.T) {
	env := FromEnv(" <meta name=\"x\"/> ", "", "<script>end()</script>")
	got := Effective(Config{}, env)
	if got.HeadTags != `<meta name="x"/>` {
		t.Errorf("HeadTags = %q", got.HeadTags)
	}
	if got.BodyEndTags != "<script>end()</script>" {
		t.Errorf("BodyEndTags = %q", got.BodyEndTags)
	}
}

func TestGA4Preset(t *testing.T) {
	c := GA4Preset("  g-abc123  ")
	if !strings.Contains(c.HeadTags, "gtag/js?id=G-ABC123") {
		t.Errorf("HeadTags should reference the uppercased ID: %q", c.HeadTags)
	}
	if !strings.Contains(c.HeadTags, "gtag('config', 'G-ABC123')") {
		t.Errorf("HeadTags should configure the ID: %q", c.HeadTags)
	}
	if c.BodyStartTags != "" || c.BodyEndTags != "" {
		t.Error("GA4 preset should only fill the head region")
	}
	if !GA4Preset("   ").Empty() {
		t.Error("blank ID should yield the empty config")
	}
}

func TestGTMPreset(t *testing.T) {
	c := GTMPreset("gtm-xyz987")
	if !strings.Contains(c.HeadTags, "'GTM-XYZ987'") {
		t.Errorf("HeadTags should embed the uppercased container ID: %q", c.HeadTags)
	}
	if !strings.Contains(c.BodyStartTags, "ns.html?id=GTM-XYZ987") {
		t.Errorf("BodyStartTags should hold the noscript iframe: %q", c.BodyStartTags)
	}
	if !GTMPreset("").Empty() {
		t.Error("blank ID should yield the empty config")
	}
}
