package tracking

import (
	"fmt"
	"strings"
)

// GA4Preset returns a ready-made config for a Google Analytics 4
// measurement ID. An empty ID yields the empty config.
func GA4Preset(measurementID string) Config {
	id := strings.ToUpper(strings.TrimSpace(measurementID))
	if id == "" {
		return Config{}
	}
	head := fmt.Sprintf(`<script async src="https://www.googletagmanager.com/gtag/js?id=%[1]s"></script>
<script>
  window.dataLayer = window.dataLayer || [];
  function gtag(){dataLayer.push(arguments);}
  gtag('js', new Date());
  gtag('config', '%[1]s');
</script>`, id)
	return Config{HeadTags: head}
}

// GTMPreset returns a ready-made config for a Google Tag Manager
// container ID. An empty ID yields the empty config.
func GTMPreset(containerID string) Config {
	id := strings.ToUpper(strings.TrimSpace(containerID))
	if id == "" {
		return Config{}
	}
	head := fmt.Sprintf(`<script>
  (function(w,d,s,l,i){w[l]=w[l]||[];w[l].push({'gtm.start':
  new Date().getTime(),event:'gtm.js'});var f=d.getElementsByTagName(s)[0],
  j=d.createElement(s),dl=l!='dataLayer'?'&l='+l:'';j.async=true;j.src=
  'https://www.googletagmanager.com/gtm.js?id='+i+dl;f.parentNode.insertBefore(j,f);
  })(window,document,'script','dataLayer','%s');
</script>`, id)
	bodyStart := fmt.Sprintf(`<noscript><iframe src="https://www.googletagmanager.com/ns.html?id=%s"
height="0" width="0" style="display:none;visibility:hidden"></iframe></noscript>`, id)
	return Config{HeadTags: head, BodyStartTags: bodyStart}
}
