package views

import "github.com/hikaristudio/lunasite"

// Default returns the stock view set for the site.
func Default() lunasite.ViewFuncs {
	return lunasite.ViewFuncs{
		Home:        Home,
		BlogIndex:   BlogIndex,
		Post:        Post,
		Privacy:     Privacy,
		Settings:    Settings,
		NotFound:    NotFound,
		ServerError: ServerError,
	}
}
