package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hikaristudio/lunasite"
	"github.com/hikaristudio/lunasite/content"
	"github.com/hikaristudio/lunasite/views"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "serve":
		if err := runServe(); err != nil {
			log.Fatal(err)
		}
	case "validate":
		dir := lunasite.EnvOr("CONTENT_DIR", "content/blog")
		if len(os.Args) > 2 {
			dir = os.Args[2]
		}
		if err := runValidate(dir); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("lunasite %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func runServe() error {
	cfg := lunasite.SiteConfig{
		Name:        lunasite.EnvOr("SITE_NAME", "ルナ占いカレンダー"),
		URL:         lunasite.EnvOr("SITE_URL", "http://localhost:3000"),
		Description: lunasite.EnvOr("SITE_DESCRIPTION", "月の満ち欠けと暦で毎日の運勢がわかる占いカレンダーアプリ"),
		Author:      lunasite.EnvOr("SITE_AUTHOR", "Hikari Studio"),

		Addr:       lunasite.EnvOr("ADDR", ":3000"),
		ContentDir: lunasite.EnvOr("CONTENT_DIR", "content/blog"),

		TrackingAdminUser:     os.Getenv("TRACKING_ADMIN_USER"),
		TrackingAdminPassword: os.Getenv("TRACKING_ADMIN_PASSWORD"),
		TrackingHeadTags:      os.Getenv("TRACKING_HEAD_TAGS"),
		TrackingBodyStartTags: os.Getenv("TRACKING_BODY_START_TAGS"),
		TrackingBodyEndTags:   os.Getenv("TRACKING_BODY_END_TAGS"),
	}

	app := lunasite.New(cfg, views.Default())
	return app.Start()
}

// runValidate loads the whole content directory and reports the first
// frontmatter problem, for use in CI before a deploy.
func runValidate(dir string) error {
	repo := content.NewRepository(os.DirFS(dir), ".")
	posts, err := repo.LoadAll()
	if err != nil {
		return err
	}
	fmt.Printf("ok: %d posts\n", len(posts))
	return nil
}

func printUsage() {
	fmt.Println(`lunasite - marketing and blog site server for Luna Fortune Calendar

Usage:
  lunasite <command> [arguments]

Commands:
  serve             Start the HTTP server (default)
  validate [dir]    Validate the content directory and exit
  version           Print the lunasite version
  help              Show this help message

Environment:
  SITE_NAME, SITE_URL, SITE_DESCRIPTION, SITE_AUTHOR
  ADDR, CONTENT_DIR
  TRACKING_ADMIN_USER, TRACKING_ADMIN_PASSWORD
  TRACKING_HEAD_TAGS, TRACKING_BODY_START_TAGS, TRACKING_BODY_END_TAGS`)
}
