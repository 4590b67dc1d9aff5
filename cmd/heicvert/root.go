package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var logFormatFlag string

	ctx := newCommandContext(&configFlag, &logLevelFlag, &logFormatFlag)
	opts := &convertOptions{}

	rootCmd := &cobra.Command{
		Use:   "heicvert INPUT_DIR OUTPUT_DIR",
		Short: "Batch-convert HEIC images to PNG, JPG, or WebP",
		Long: `heicvert recursively finds .heic files under INPUT_DIR and converts them
into OUTPUT_DIR, mirroring the directory structure. Outputs that are already
newer than their source are skipped.`,
		Example: `  heicvert ~/Pictures/iphone ~/Pictures/converted
  heicvert photos out --format JPG --quality 90
  heicvert photos out --dry-run --verbose`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, ctx, opts, args[0], args[1])
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.format, "format", "f", "", "Output format: PNG, JPG, or WEBP (default from config, PNG)")
	flags.IntVarP(&opts.quality, "quality", "q", 0, "Quality for JPG/WebP, 1-100 (default from config, 85)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Print per-file outcome lines")
	flags.BoolVar(&opts.noParallel, "no-parallel", false, "Disable parallel processing")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Show what would be converted without converting")

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Override log format (console, json)")

	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
