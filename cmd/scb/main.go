package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	cli "github.com/urfave/cli/v3"

	"github.com/scbundle/scb/internal/collect"
	"github.com/scbundle/scb/internal/config"
	"github.com/scbundle/scb/internal/docs"
	"github.com/scbundle/scb/internal/doctor"
	"github.com/scbundle/scb/internal/merge"
	"github.com/scbundle/scb/internal/rules"
	"github.com/scbundle/scb/internal/scaffold"
	"github.com/scbundle/scb/internal/split"
	"github.com/scbundle/scb/internal/ux"
)

func main() {
	app := &cli.Command{
		Name:        "scb",
		Usage:       "Bundle a source tree into one text file and back",
		Description: "Run 'scb docs' for documentation on the bundle format, filter rules, and configuration.",
		Commands: []*cli.Command{
			initCmd(),
			mergeCmd(),
			splitCmd(),
			patchCmd(),
			doctorCmd(),
			docsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

func mergeCmd() *cli.Command {
	return &cli.Command{
		Name:      "merge",
		Usage:     "Bundle source files from a directory into one file",
		ArgsUsage: "<source-dir> <output-file>",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "ext", Usage: "File extension to include (repeatable, overrides config)"},
			&cli.StringSliceFlag{Name: "exclude", Usage: "Glob pattern to exclude (repeatable)"},
			&cli.StringFlag{Name: "config", Usage: "Path to scb.yaml"},
			&cli.BoolFlag{Name: "quiet", Usage: "Suppress the progress line"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			sourceDir := cmd.Args().Get(0)
			outputFile := cmd.Args().Get(1)
			if sourceDir == "" || outputFile == "" {
				return fmt.Errorf("source directory and output file arguments are required")
			}
			info, err := os.Stat(sourceDir)
			if err != nil {
				return fmt.Errorf("source directory: %w", err)
			}
			if !info.IsDir() {
				return fmt.Errorf("source %q is not a directory", sourceDir)
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			exts := cfg.Extensions
			if v := cmd.StringSlice("ext"); len(v) > 0 {
				exts = v
			}

			opts := merge.Options{
				SourceDir:  sourceDir,
				OutputFile: outputFile,
				Extensions: collect.NewExtensionSet(exts),
				Rules:      mergedRules(cfg, cmd),
				Log:        os.Stderr,
			}
			if !cmd.Bool("quiet") {
				opts.Progress = ux.Progress
			}

			res, err := merge.Run(opts)
			if !cmd.Bool("quiet") {
				ux.ProgressDone()
			}
			if err != nil {
				return err
			}
			ux.MergeSummary(outputFile, res.Files, res.Errors, res.EstimatedTokens)
			return nil
		},
	}
}

func splitCmd() *cli.Command {
	return &cli.Command{
		Name:      "split",
		Usage:     "Reconstruct files from a bundle into a directory",
		ArgsUsage: "<bundle-file> <output-dir>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "overwrite", Usage: "Replace existing files instead of renaming around them"},
			&cli.StringSliceFlag{Name: "exclude", Usage: "Glob pattern to exclude (repeatable)"},
			&cli.StringFlag{Name: "config", Usage: "Path to scb.yaml"},
			&cli.BoolFlag{Name: "quiet", Usage: "Suppress the progress line"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			bundleFile := cmd.Args().Get(0)
			outputDir := cmd.Args().Get(1)
			if bundleFile == "" || outputDir == "" {
				return fmt.Errorf("bundle file and output directory arguments are required")
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			overwrite := cfg.Overwrite
			if cmd.IsSet("overwrite") {
				overwrite = cmd.Bool("overwrite")
			}

			opts := split.Options{
				BundleFile: bundleFile,
				OutputDir:  outputDir,
				Overwrite:  overwrite,
				Rules:      mergedRules(cfg, cmd),
				Log:        os.Stderr,
			}
			if !cmd.Bool("quiet") {
				opts.Progress = ux.Progress
			}

			res, err := split.Run(opts)
			if !cmd.Bool("quiet") {
				ux.ProgressDone()
			}
			if err != nil {
				return err
			}
			ux.SplitSummary(outputDir, res.FilesWritten, res.Skipped)
			return nil
		},
	}
}

func patchCmd() *cli.Command {
	return &cli.Command{
		Name:      "patch",
		Usage:     "Apply a patch file to a directory via the external 'patch' tool",
		ArgsUsage: "<target-dir> <patch-file>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			targetDir := cmd.Args().Get(0)
			patchFile := cmd.Args().Get(1)
			if targetDir == "" || patchFile == "" {
				return fmt.Errorf("target directory and patch file arguments are required")
			}
			absPatch, err := filepath.Abs(patchFile)
			if err != nil {
				return err
			}
			c := exec.CommandContext(ctx, "patch", "-p0", "-d", targetDir, "-i", absPatch)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			if err := c.Run(); err != nil {
				return fmt.Errorf("patch: %w", err)
			}
			return nil
		},
	}
}

func doctorCmd() *cli.Command {
	return &cli.Command{
		Name:  "doctor",
		Usage: "Check the local environment",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "Path to scb.yaml"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path, err := configPath(cmd)
			if err != nil {
				return err
			}
			failed := 0
			for _, c := range doctor.Run(path) {
				ux.CheckLine(c.OK, c.Name, c.Detail)
				if !c.OK {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d check(s) failed", failed)
			}
			return nil
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write a starter scb.yaml in the working directory",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "force", Usage: "Replace an existing scb.yaml"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := scaffold.Run(config.DefaultFile, cmd.Bool("force")); err != nil {
				return err
			}
			fmt.Printf("%s✓%s Wrote %s\n", ux.Green, ux.Reset, config.DefaultFile)
			return nil
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-12s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'scb docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Println(t.Content)
			return nil
		},
	}
}

// configPath resolves which config file to use: the --config flag, or
// scb.yaml in the working directory if present, else none.
func configPath(cmd *cli.Command) (string, error) {
	if p := cmd.String("config"); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("config: %w", err)
		}
		return p, nil
	}
	if _, err := os.Stat(config.DefaultFile); err == nil {
		return config.DefaultFile, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}
	return "", nil
}

func loadConfig(cmd *cli.Command) (*config.Config, error) {
	path, err := configPath(cmd)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergedRules combines configured rules with ad-hoc --exclude patterns.
func mergedRules(cfg *config.Config, cmd *cli.Command) []rules.Rule {
	rs := cfg.FilterRules()
	for _, p := range cmd.StringSlice("exclude") {
		rs = append(rs, rules.Rule{Pattern: p, Active: true})
	}
	return rs
}
