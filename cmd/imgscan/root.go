package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/nao1215/imgscan/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command. Running it with a URL scans that page.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "imgscan [flags] URL",
		Short: "List the images referenced by a web page",
		Long: `imgscan fetches a web page and lists the image URLs it references.

Candidates are collected from <img src>, srcset attributes and CSS
background / background-image url(...) values. Relative references are
resolved against the page URL, duplicates are dropped and anything without
a known image extension is rejected unless --check-http is given, in which
case extensionless URLs are classified by their Content-Type and every
accepted URL must answer 200.

Accepted URLs are printed as they are found. If fzf and chafa are installed
the results can then be browsed with a thumbnail preview.

Examples:
  # Print the images of a page
  imgscan https://example.com/gallery

  # Verify every URL and save the list
  imgscan -c -o images.txt https://example.com/gallery

  # Markdown report without the interactive picker
  imgscan -n -f markdown -o report.md https://example.com/gallery

  # Include og:image, icons and lazy-loaded images
  imgscan --meta https://example.com/`,
		Version:       getVersion(),
		Args:          targetArgs,
		RunE:          runScanCmd,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Print why each candidate was accepted or rejected")

	cmd.Flags().StringP("output", "o", "",
		"Write the final list to FILE (overwritten)")
	cmd.Flags().StringP("format", "f", config.FormatText,
		"Output file format: text, markdown or json")
	cmd.Flags().BoolP("check-http", "c", false,
		"Probe extensionless URLs for their Content-Type and require HTTP 200 for every image")
	cmd.Flags().IntP("timeout", "t", int(config.DefaultTimeout.Seconds()),
		"Timeout in seconds for every network call")
	cmd.Flags().BoolP("no-preview", "n", false,
		"Do not start the interactive preview")
	cmd.Flags().Bool("meta", false,
		"Also collect og:image, twitter:image, icons, data-src and similar references")
	cmd.Flags().String("proxy", "",
		"Send every request through this proxy (http, https, socks5 or socks5h URL)")
	cmd.Flags().String("config", "",
		"Configuration file path (default: .imgscan.yaml or $XDG_CONFIG_HOME/imgscan/config.yaml)")

	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())
	cmd.AddCommand(NewPreviewCmd())

	return cmd
}

// targetArgs accepts exactly one page URL.
func targetArgs(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return config.ErrNoTarget
	case len(args) > 1:
		return fmt.Errorf("%w: %s", config.ErrTooManyTargets, strings.Join(args[1:], " "))
	}
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "imgscan:", err)
		os.Exit(1)
	}
}
