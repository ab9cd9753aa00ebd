package main

import (
	"time"

	"github.com/nao1215/imgscan/internal/config"
	"github.com/nao1215/imgscan/internal/preview"
	"github.com/nao1215/imgscan/internal/scratch"
	"github.com/spf13/cobra"
)

// NewPreviewCmd creates the hidden command fzf runs for the highlighted
// entry. It prints the thumbnail and description of one image URL.
func NewPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "preview URL",
		Short:  "Render one image for the picker preview pane",
		Hidden: true,
		Args:   cobra.ExactArgs(1),
		RunE:   runPreviewCmd,
	}

	cmd.Flags().String("scratch", "", "Scratch directory of the calling run")
	cmd.Flags().Int("timeout", int(config.DefaultTimeout.Seconds()), "Timeout in seconds for the image fetch")
	cmd.Flags().String("renderer", config.RendererChafa, "Renderer: chafa or blocks")
	cmd.Flags().String("proxy", "", "Proxy URL")
	cmd.Flags().String("config", "", "Configuration file path")
	cmd.Flags().String("size", "40x20", "Render size as WIDTHxHEIGHT cells")

	return cmd
}

func runPreviewCmd(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	sizeFlag, err := flags.GetString("size")
	if err != nil {
		return err
	}
	size, err := preview.ParseSize(sizeFlag)
	if err != nil {
		return err
	}

	cfg := config.NewConfig()
	configPath, err := flags.GetString("config")
	if err != nil {
		return err
	}
	if err := applyConfigFile(cfg, configPath); err != nil {
		return err
	}

	seconds, err := flags.GetInt("timeout")
	if err != nil {
		return err
	}
	if seconds <= 0 {
		return config.ErrInvalidTimeout
	}
	cfg.Timeout = time.Duration(seconds) * time.Second

	if cfg.Preview.Renderer, err = flags.GetString("renderer"); err != nil {
		return err
	}
	if flags.Changed("proxy") {
		if cfg.ProxyURL, err = flags.GetString("proxy"); err != nil {
			return err
		}
	}

	logger := setupLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))
	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}
	renderer, err := preview.NewRenderer(cfg.Preview.Renderer)
	if err != nil {
		return err
	}

	opts := []preview.PreviewerOption{preview.WithLogger(logger)}
	if path, _ := flags.GetString("scratch"); path != "" {
		dir, err := scratch.Open(path)
		if err != nil {
			logger.Debug("preview cache unavailable", "error", err)
		} else {
			opts = append(opts, preview.WithCache(dir))
		}
	}

	// Show reports its own failures in the pane.
	if err := preview.NewPreviewer(client, renderer, opts...).Show(cmd.Context(), args[0], size, cmd.OutOrStdout()); err != nil {
		logger.Debug("preview failed", "url", args[0], "error", err)
	}
	return nil
}
