package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nao1215/imgscan/internal/classify"
	"github.com/nao1215/imgscan/internal/config"
	"github.com/nao1215/imgscan/internal/extract"
	"github.com/nao1215/imgscan/internal/fetch"
	imglog "github.com/nao1215/imgscan/internal/log"
	"github.com/nao1215/imgscan/internal/model"
	"github.com/nao1215/imgscan/internal/pipeline"
	"github.com/nao1215/imgscan/internal/preview"
	"github.com/nao1215/imgscan/internal/report"
	"github.com/nao1215/imgscan/internal/resolve"
	"github.com/nao1215/imgscan/internal/scratch"
	"github.com/nao1215/imgscan/internal/validate"
	"github.com/spf13/cobra"
)

// runScanCmd executes a scan of the single URL argument.
func runScanCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg.Verbose)
	notifier := report.NewNotifier(cmd.ErrOrStderr())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runScan(ctx, cfg, cmd.OutOrStdout(), notifier, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from defaults, the config file and flags,
// in increasing order of precedence.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	if err := applyConfigFile(cfg, configPath); err != nil {
		return nil, err
	}

	if len(args) > 0 {
		cfg.Target = args[0]
	}
	cfg.Verbose = getVerboseFlag(cmd)

	if cfg.OutputFile, err = flags.GetString("output"); err != nil {
		return nil, err
	}
	if cfg.OutputFormat, err = flags.GetString("format"); err != nil {
		return nil, err
	}
	if cfg.CheckHTTP, err = flags.GetBool("check-http"); err != nil {
		return nil, err
	}
	if cfg.NoPreview, err = flags.GetBool("no-preview"); err != nil {
		return nil, err
	}

	if flags.Changed("timeout") {
		seconds, err := flags.GetInt("timeout")
		if err != nil {
			return nil, err
		}
		cfg.Timeout = time.Duration(seconds) * time.Second
	}
	if flags.Changed("meta") {
		if cfg.IncludeMeta, err = flags.GetBool("meta"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("proxy") {
		if cfg.ProxyURL, err = flags.GetString("proxy"); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// applyConfigFile loads the config file, if any, onto cfg and records the
// path it came from. An explicit path that does not exist is an error; a
// missing default file is not.
func applyConfigFile(cfg *config.Config, explicitPath string) error {
	path := config.FindConfigFile(explicitPath)
	if path == "" {
		if explicitPath != "" {
			return fmt.Errorf("%w: %s", config.ErrConfigNotFound, explicitPath)
		}
		return nil
	}

	f, err := config.LoadConfigFile(path)
	if err != nil {
		return fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	f.Apply(cfg)
	cfg.ConfigFilePath = path
	return nil
}

// setupLogger creates the diagnostics logger. Verbose runs log every
// candidate decision at debug level.
func setupLogger(w io.Writer, verbose bool) *slog.Logger {
	return imglog.NewSecureLogger(w, verbose)
}

// newClient builds the HTTP client shared by every network call of a run.
func newClient(cfg *config.Config, logger *slog.Logger) (*fetch.Client, error) {
	client, err := fetch.New(
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithHeaders(cfg.Headers),
		fetch.WithProxy(cfg.ProxyURL),
		fetch.WithMaxBodySize(cfg.MaxBodySize),
		fetch.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}
	return client, nil
}

// newPipeline assembles fetch, extract and select for cfg. Accepted images
// go to onAccept as soon as they are selected.
func newPipeline(cfg *config.Config, client *fetch.Client, onAccept func(model.Image), logger *slog.Logger) *pipeline.Pipeline {
	sources := []extract.Source{extract.NewExtractor()}
	if cfg.IncludeMeta {
		sources = append(sources, extract.NewMetaExtractor(logger))
	}

	selectOpts := []pipeline.SelectOption{
		pipeline.WithOnAccept(onAccept),
		pipeline.WithSelectLogger(logger),
	}
	if cfg.CheckHTTP {
		selectOpts = append(selectOpts, pipeline.WithValidator(validate.New(client)))
	}
	classifier := classify.New(client,
		classify.WithProbe(cfg.CheckHTTP),
		classify.WithLogger(logger),
	)

	p := pipeline.New(pipeline.WithLogger(logger))
	p.AddSteps(
		pipeline.NewFetchStep(client, logger),
		pipeline.NewExtractStep(logger, sources...),
		pipeline.NewSelectStep(classifier, selectOpts...),
	)
	return p
}

// runScan runs the whole scan: fetch, extraction, selection, output and
// the optional preview. The scratch directory is removed on every return.
func runScan(ctx context.Context, cfg *config.Config, out io.Writer, notifier *report.Notifier, logger *slog.Logger) error {
	target, added := resolve.EnsureScheme(cfg.Target)
	if added {
		notifier.Warnf("%q has no scheme, using %s", cfg.Target, target)
	}

	dir, err := scratch.New(cfg.ScratchBase)
	if err != nil {
		return err
	}
	defer func() {
		if err := dir.Remove(); err != nil {
			logger.Warn("failed to remove scratch directory", "path", dir.Path(), "error", err)
		}
	}()

	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}

	stream := report.NewStream(out)
	scan := model.NewScan(target)
	logger.Debug("starting scan", "url", target, "check_http", cfg.CheckHTTP, "meta", cfg.IncludeMeta)

	if err := newPipeline(cfg, client, stream.Accept, logger).Execute(ctx, scan); err != nil {
		return err
	}
	if err := stream.Err(); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	logger.Debug("results streamed", "count", stream.Count())

	if cfg.OutputFile != "" {
		if err := report.WriteFile(cfg.OutputFile, cfg.OutputFormat, getVersion(), scan); err != nil {
			return err
		}
		notifier.Successf("saved %d images to %s", scan.Results.Len(), cfg.OutputFile)
	}
	notifier.Infof("%s", scan.Stats)

	if cfg.NoPreview || scan.Results.Len() == 0 {
		return nil
	}
	return runPicker(ctx, cfg, dir, client, scan.Results, out, notifier, logger)
}

// runPicker lets the user browse urls in fzf with thumbnails and renders
// the confirmed selection. Missing fzf or renderer disables it with a
// warning. A selection that is not one of the results is not fetched.
func runPicker(ctx context.Context, cfg *config.Config, dir *scratch.Dir, client *fetch.Client,
	results *model.ResultSet, out io.Writer, notifier *report.Notifier, logger *slog.Logger) error {
	fzfPath, err := preview.LookPicker()
	if err != nil {
		notifier.Warnf("preview disabled: %v", err)
		return nil
	}
	renderer, err := preview.NewRenderer(cfg.Preview.Renderer)
	if err != nil {
		notifier.Warnf("preview disabled: %v", err)
		return nil
	}
	exe, err := os.Executable()
	if err != nil {
		notifier.Warnf("preview disabled: %v", err)
		return nil
	}

	picker := preview.NewPicker(fzfPath,
		preview.WithPrompt(fmt.Sprintf("%d images> ", results.Len())),
		preview.WithStderr(notifier.Writer()),
		preview.WithPreviewCommand(preview.Command(exe, preview.CommandOptions{
			Scratch:    dir.Path(),
			Timeout:    client.Timeout(),
			Renderer:   cfg.Preview.Renderer,
			Proxy:      cfg.ProxyURL,
			ConfigFile: cfg.ConfigFilePath,
		})),
	)

	selected, err := picker.Pick(ctx, results.URLs())
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	if selected == "" {
		logger.Debug("nothing selected")
		return nil
	}
	if !results.Contains(selected) {
		notifier.Warnf("ignoring selection %q: not among the results", selected)
		return nil
	}

	fmt.Fprintln(out, selected)
	previewer := preview.NewPreviewer(client, renderer,
		preview.WithCache(dir),
		preview.WithLogger(logger),
	)
	size := preview.Size{Width: cfg.Preview.Width, Height: cfg.Preview.Height}
	if err := previewer.Show(ctx, selected, size, out); err != nil {
		logger.Debug("preview of selection failed", "url", selected, "error", err)
	}
	return nil
}
