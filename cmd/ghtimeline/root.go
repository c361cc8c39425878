package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Afrawles/ghtimeline/internal/config"
	"github.com/Afrawles/ghtimeline/internal/github"
	"github.com/Afrawles/ghtimeline/internal/render"
	"github.com/Afrawles/ghtimeline/internal/timeline"
)

var (
	jsonOut   bool
	wrapWidth uint
	maxLines  int
	excelPath string
	token     string
)

var rootCmd = &cobra.Command{
	Use:   "ghtimeline <owner/repo>",
	Short: "Show a chronological activity feed for a GitHub repository",
	Long: `ghtimeline merges a repository's issues and issue comments into one
timeline and prints it as a day-grouped terminal feed or a JSON document.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&jsonOut, "json", "j", false, "Emit the timeline as a JSON document")
	rootCmd.Flags().UintVarP(&wrapWidth, "wrap", "w", 80, "Wrap width for event bodies")
	rootCmd.Flags().IntVarP(&maxLines, "lines", "l", 0, "Max body lines per event (0 = all)")
	rootCmd.Flags().StringVar(&excelPath, "excel", "", "Also write the timeline to an .xlsx file")
	rootCmd.Flags().StringVar(&token, "token", "", "GitHub API token (defaults to GITHUB_TOKEN)")
}

func run(cmd *cobra.Command, args []string) error {
	repo := args[0]
	if err := github.ValidateRepo(repo); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if token != "" {
		cfg.Token = token
	}
	if cmd.Flags().Changed("wrap") {
		cfg.Wrap = wrapWidth
	}
	if cmd.Flags().Changed("lines") {
		cfg.Lines = maxLines
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	builder := timeline.NewBuilder(github.NewSource(cfg.Token, cfg.APIURL))

	bar := newSpinner(fmt.Sprintf("Fetching activity for %s", repo))
	events, err := builder.Build(cmd.Context(), repo)
	finishBar(bar)
	if err != nil {
		return err
	}

	if excelPath != "" {
		if err := render.NewExcel(excelPath).Render(events); err != nil {
			return fmt.Errorf("failed to write excel timeline: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Timeline saved to %s\n", excelPath)
	}

	if jsonOut {
		return render.NewJSON(os.Stdout).Render(events)
	}
	return render.NewText(os.Stdout, cfg.Wrap, cfg.Lines).Render(events)
}
