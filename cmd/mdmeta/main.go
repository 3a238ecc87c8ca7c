package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"

	mdmeta "github.com/goliatone/go-mdmeta"
	"github.com/goliatone/go-mdmeta/cmd/mdmeta/internal/bootstrap"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	command, args := os.Args[1], os.Args[2:]

	var err error
	switch command {
	case "inspect":
		err = runInspect(args)
	case "write-heading-ids":
		err = runWriteHeadingIDs(args)
	case "preview":
		err = runPreview(args)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", command)
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("%s: %v", command, err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `mdmeta extracts page metadata from markdown content.

Usage:
  mdmeta inspect           [flags]   Extract metadata for every content file
  mdmeta write-heading-ids [flags]   Assign explicit {#id} anchors in place
  mdmeta preview           [flags]   Inspect one file and render its body

Run a command with -h for its flags.
`)
}

// pageSummary is the JSON shape emitted per document by inspect/preview.
type pageSummary struct {
	Path         string         `json:"path"`
	ContentTitle string         `json:"content_title,omitempty"`
	Excerpt      string         `json:"excerpt,omitempty"`
	FrontMatter  map[string]any `json:"front_matter,omitempty"`
}

func runInspect(args []string) error {
	flags := flag.NewFlagSet("inspect", flag.ExitOnError)
	var (
		contentDir  = flags.String("content-dir", "content", "Path to the markdown content root")
		pattern     = flags.String("pattern", "*.md", "Glob pattern applied to file names during discovery")
		removeTitle = flags.Bool("remove-content-title", false, "Strip the detected page title from reported content")
		failFast    = flags.Bool("fail-fast", false, "Stop at the first file with invalid front matter")
		logLevel    = flags.String("log-level", "info", "Log level (trace|debug|info|warn|error|fatal)")
		logFormat   = flags.String("log-format", "console", "Log format (json|console|pretty)")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{LogLevel: *logLevel, LogFormat: *logFormat})
	if err != nil {
		return err
	}

	paths, err := discoverFiles(*contentDir, *pattern)
	if err != nil {
		return err
	}

	parseLogger := module.ParseLogger()
	encoder := json.NewEncoder(os.Stdout)
	failures := 0

	for _, path := range paths {
		source, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		parsed, err := mdmeta.ParseMarkdownString(string(source), &mdmeta.ParseMarkdownStringOptions{
			RemoveContentTitle: *removeTitle,
			Logger:             parseLogger,
		})
		if err != nil {
			failures++
			module.Logger.Error("skipping document with invalid front matter", "path", path, "error", err)
			if *failFast {
				return fmt.Errorf("parse %s: %w", path, err)
			}
			continue
		}

		if err := encoder.Encode(pageSummary{
			Path:         path,
			ContentTitle: parsed.ContentTitle,
			Excerpt:      parsed.Excerpt,
			FrontMatter:  parsed.FrontMatter,
		}); err != nil {
			return err
		}
	}

	module.Logger.Info("inspect finished", "files", len(paths), "failures", failures)
	return nil
}

func runWriteHeadingIDs(args []string) error {
	flags := flag.NewFlagSet("write-heading-ids", flag.ExitOnError)
	var (
		contentDir   = flags.String("content-dir", "content", "Path to the markdown content root")
		pattern      = flags.String("pattern", "*.md", "Glob pattern applied to file names during discovery")
		maintainCase = flags.Bool("maintain-case", false, "Keep heading letter case in generated ids")
		overwrite    = flags.Bool("overwrite", false, "Recompute ids for headings that already carry one")
		dryRun       = flags.Bool("dry-run", false, "Report files that would change without writing them")
		logLevel     = flags.String("log-level", "info", "Log level (trace|debug|info|warn|error|fatal)")
		logFormat    = flags.String("log-format", "console", "Log format (json|console|pretty)")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{LogLevel: *logLevel, LogFormat: *logFormat})
	if err != nil {
		return err
	}

	paths, err := discoverFiles(*contentDir, *pattern)
	if err != nil {
		return err
	}

	logger := module.HeadingsLogger()
	changed := 0

	for _, path := range paths {
		source, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		updated := mdmeta.WriteMarkdownHeadingIDs(string(source), &mdmeta.WriteHeadingIDOptions{
			MaintainCase: *maintainCase,
			Overwrite:    *overwrite,
		})
		if updated == string(source) {
			continue
		}

		changed++
		if *dryRun {
			logger.Info("would update heading ids", "path", path)
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}
		if err := os.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		logger.Info("updated heading ids", "path", path)
	}

	logger.Info("write-heading-ids finished", "files", len(paths), "changed", changed, "dry_run", *dryRun)
	return nil
}

func runPreview(args []string) error {
	flags := flag.NewFlagSet("preview", flag.ExitOnError)
	var (
		filePath    = flags.String("file", "", "Markdown file to preview")
		removeTitle = flags.Bool("remove-content-title", false, "Strip the detected page title from the previewed body")
		renderHTML  = flags.Bool("render-html", true, "Render the markdown body into HTML as part of the preview")
		hardWraps   = flags.Bool("hard-wraps", false, "Render newlines as <br> elements")
		extensions  = flags.String("extensions", "", "Comma separated goldmark extensions (gfm, footnote, ...)")
		logLevel    = flags.String("log-level", "info", "Log level (trace|debug|info|warn|error|fatal)")
		logFormat   = flags.String("log-format", "console", "Log format (json|console|pretty)")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *filePath == "" {
		return fmt.Errorf("-file is required")
	}

	module, err := moduleBuilder(bootstrap.Options{
		LogLevel:   *logLevel,
		LogFormat:  *logFormat,
		Extensions: bootstrap.SplitExtensions(*extensions),
		HardWraps:  *hardWraps,
	})
	if err != nil {
		return err
	}

	source, err := os.ReadFile(*filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", *filePath, err)
	}

	parsed, err := mdmeta.ParseMarkdownString(string(source), &mdmeta.ParseMarkdownStringOptions{
		RemoveContentTitle: *removeTitle,
		Logger:             module.ParseLogger(),
	})
	if err != nil {
		return fmt.Errorf("parse %s: %w", *filePath, err)
	}

	fmt.Fprintf(os.Stdout, "Path: %s\nTitle: %s\nExcerpt: %s\n\n", *filePath, parsed.ContentTitle, parsed.Excerpt)

	if len(parsed.FrontMatter) > 0 {
		if encoded, err := json.MarshalIndent(parsed.FrontMatter, "", "  "); err == nil {
			fmt.Fprintf(os.Stdout, "Frontmatter:\n%s\n\n", encoded)
		}
	}

	if !*renderHTML {
		fmt.Fprintf(os.Stdout, "Markdown Body:\n%s\n", parsed.Content)
		return nil
	}

	html, err := module.Renderer.Render([]byte(parsed.Content))
	if err != nil {
		return fmt.Errorf("render %s: %w", *filePath, err)
	}
	fmt.Fprintf(os.Stdout, "Rendered HTML:\n%s\n", html)
	return nil
}

// discoverFiles walks root collecting files whose base name matches pattern.
// A root that is itself a file is returned as-is so single documents can be
// processed without a directory.
func discoverFiles(root, pattern string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat content root %s: %w", root, err)
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		matched, matchErr := filepath.Match(pattern, entry.Name())
		if matchErr != nil {
			return fmt.Errorf("invalid pattern %q: %w", pattern, matchErr)
		}
		if matched {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}
