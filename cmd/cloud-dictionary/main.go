package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cloud-dictionary-api/internal/config"
	"cloud-dictionary-api/internal/widget"
	"cloud-dictionary-api/pkg/client"
)

type options struct {
	apiURL  string
	timeout time.Duration
	debug   bool
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	rootCommand := &cobra.Command{
		Use:           "cloud-dictionary",
		Short:         "Look up and search cloud computing terms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			flags := cmd.Flags()
			if !flags.Changed("api-url") {
				opts.apiURL = cfg.API.BaseURL
			}
			if !flags.Changed("timeout") && cfg.API.Timeout > 0 {
				opts.timeout = cfg.API.Timeout
			}
			return nil
		},
	}

	flags := rootCommand.PersistentFlags()
	flags.StringVar(&opts.apiURL, "api-url", "http://localhost:8081", "Base URL of the dictionary API")
	flags.DurationVar(&opts.timeout, "timeout", 10*time.Second, "Request timeout")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	rootCommand.AddCommand(
		newSearchCommand(opts),
		newGetCommand(opts),
		newReplCommand(opts),
	)
	return rootCommand
}

func (o *options) client() *client.Client {
	return client.New(o.apiURL, o.timeout)
}

func (o *options) widget(cmd *cobra.Command) *widget.Widget {
	level := "error"
	if o.debug {
		level = "debug"
	}
	logger := config.NewLogger(config.LogConfig{Level: level, Format: "text"})
	logger.SetOutput(cmd.ErrOrStderr())
	return widget.New(o.client(), logrus.NewEntry(logger).WithField("component", "widget"))
}
