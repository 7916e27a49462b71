package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-apply-bot/internal/application"
	"github.com/jonathan/job-apply-bot/internal/config"
	"github.com/jonathan/job-apply-bot/internal/observability"
	"github.com/jonathan/job-apply-bot/internal/types"
)

var prepareCommand = &cobra.Command{
	Use:   "prepare",
	Short: "Generate cover letters and application JSON for each job",
	Long: `Reads the resume and the jobs CSV once, renders the cover letter template for
every job row and writes <out>/<company>-<title>/cover_letter.md and
application.json. Packages with the same company and title overwrite each other.`,
	RunE: runPrepareCmd,
}

var (
	prepareResume    string
	prepareJobs      string
	prepareTemplate  string
	prepareOut       string
	prepareName      string
	prepareEmail     string
	preparePhone     string
	prepareLocation  string
	prepareLinkedIn  string
	preparePortfolio string
)

func init() {
	prepareCommand.Flags().StringVarP(&prepareResume, "resume", "r", "", "Path to resume (text, PDF or DOCX)")
	prepareCommand.Flags().StringVarP(&prepareJobs, "jobs", "j", "", "Path to jobs CSV (company,title,url,location)")
	prepareCommand.Flags().StringVarP(&prepareTemplate, "template", "t", "", "Path to cover letter template (defaults to the built-in template)")
	prepareCommand.Flags().StringVarP(&prepareOut, "out", "o", config.DefaultOutputDir, "Output directory")
	prepareCommand.Flags().StringVarP(&prepareName, "name", "n", "", "Candidate name")
	prepareCommand.Flags().StringVar(&prepareEmail, "email", "", "Candidate email")
	prepareCommand.Flags().StringVar(&preparePhone, "phone", "", "Candidate phone")
	prepareCommand.Flags().StringVar(&prepareLocation, "location", "", "Candidate location (optional)")
	prepareCommand.Flags().StringVar(&prepareLinkedIn, "linkedin", "", "LinkedIn URL (optional)")
	prepareCommand.Flags().StringVar(&preparePortfolio, "portfolio", "", "Portfolio URL (optional)")

	// Required flags are checked after merging config

	rootCmd.AddCommand(prepareCommand)
}

func runPrepareCmd(cmd *cobra.Command, _ []string) error {
	cfg := fileConfig

	// Only override if the flag was explicitly set
	overrides := []struct {
		flag  string
		value string
		field *string
	}{
		{"resume", prepareResume, &cfg.Resume},
		{"jobs", prepareJobs, &cfg.Jobs},
		{"template", prepareTemplate, &cfg.Template},
		{"out", prepareOut, &cfg.Out},
		{"name", prepareName, &cfg.Name},
		{"email", prepareEmail, &cfg.Email},
		{"phone", preparePhone, &cfg.Phone},
		{"location", prepareLocation, &cfg.Location},
		{"linkedin", prepareLinkedIn, &cfg.LinkedIn},
		{"portfolio", preparePortfolio, &cfg.Portfolio},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.flag) {
			*o.field = o.value
		}
	}
	cfg = cfg.MergeWithDefaults(config.Config{Out: config.DefaultOutputDir})

	var missing []string
	for _, req := range []struct{ flag, value string }{
		{"resume", cfg.Resume},
		{"jobs", cfg.Jobs},
		{"name", cfg.Name},
		{"email", cfg.Email},
		{"phone", cfg.Phone},
	} {
		if strings.TrimSpace(req.value) == "" {
			missing = append(missing, "--"+req.flag)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("required flag(s) %s not set (via flag or config)", strings.Join(missing, ", "))
	}

	opts := application.PrepareOptions{
		ResumePath:   cfg.Resume,
		JobsPath:     cfg.Jobs,
		TemplatePath: cfg.Template,
		OutputDir:    cfg.Out,
		Candidate: types.Candidate{
			Name:       cfg.Name,
			Email:      cfg.Email,
			Phone:      cfg.Phone,
			ResumePath: cfg.Resume,
			Location:   types.Optional(cfg.Location),
			LinkedIn:   types.Optional(cfg.LinkedIn),
			Portfolio:  types.Optional(cfg.Portfolio),
		},
	}

	_, err := application.RunPrepare(opts, observability.NewPrinter(cmd.OutOrStdout()))
	return err
}
