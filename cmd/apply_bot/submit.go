package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/job-apply-bot/internal/application"
	"github.com/jonathan/job-apply-bot/internal/config"
	"github.com/jonathan/job-apply-bot/internal/observability"
)

var submitCommand = &cobra.Command{
	Use:   "submit",
	Short: "Review prepared applications without submitting them",
	Long: `Lists every <out>/*/application.json in path order. Nothing is sent to any job
board; use the generated files to apply on each site by hand.

Every file is checked against the application schema before anything is
listed: candidate name, email, phone and resume_path, job company, title and
url, cover_letter, and created_at in YYYY-MM-DDTHH:MM:SSZ form must all be
present. One hand-edited file that breaks this fails the whole review.`,
	RunE: runSubmitCmd,
}

var (
	submitOut     string
	submitVerbose bool
)

func init() {
	submitCommand.Flags().StringVarP(&submitOut, "out", "o", config.DefaultOutputDir, "Directory containing application packages")
	submitCommand.Flags().BoolVarP(&submitVerbose, "verbose", "v", false, "Show package details and a cover letter preview")

	rootCmd.AddCommand(submitCommand)
}

func runSubmitCmd(cmd *cobra.Command, _ []string) error {
	out := fileConfig.Out
	if cmd.Flags().Changed("out") || out == "" {
		out = submitOut
	}

	_, err := application.Submit(application.SubmitOptions{
		OutputDir: out,
		Verbose:   submitVerbose,
	}, observability.NewPrinter(cmd.OutOrStdout()))
	return err
}
