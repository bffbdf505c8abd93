package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"brigada/internal/archive"
	"brigada/internal/config"
	"brigada/internal/report"
	"brigada/internal/report/pdf"
	"brigada/internal/submit"
)

var (
	reportList   bool
	reportOutDir string
)

var reportCmd = &cobra.Command{
	Use:   "report [submission-id]",
	Short: "Regenerate the PDF report from an archived submission",
	Long: `Regenerates the needs report from the local submission archive without
re-entering the form. With no argument the most recent submission is used;
--list shows what the archive holds.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportList, "list", false,
		"list archived submissions instead of rendering")
	reportCmd.Flags().StringVarP(&reportOutDir, "output", "o", "",
		"directory for the generated PDF (default: report.output_dir)")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	store, err := archive.Open(cfg.Archive.Path)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer func() { _ = store.Close() }()

	if reportList {
		return listSubmissions(cmd, store)
	}

	var rec *archive.Record
	if len(args) == 1 {
		rec, err = store.Get(args[0])
	} else {
		rec, err = store.Latest()
	}
	if errors.Is(err, archive.ErrNotFound) {
		return fmt.Errorf("no archived submission found; complete the form first")
	}
	if err != nil {
		return err
	}

	f, err := submit.Parse(rec.Payload)
	if err != nil {
		return fmt.Errorf("reading archived submission %s: %w", rec.ID, err)
	}

	data, err := pdf.New().Render(report.Synthesize(f))
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	dir := reportOutDir
	if dir == "" {
		dir = cfg.Report.OutputDir
	}
	if dir == "" {
		dir = "."
	}

	path := filepath.Join(dir, report.Filename(f.Info.Name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	cmd.Printf("Report written to %s\n", path)
	return nil
}

func listSubmissions(cmd *cobra.Command, store *archive.Store) error {
	records, err := store.List(20)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		cmd.Println("No archived submissions.")
		return nil
	}

	for _, rec := range records {
		name := rec.Brigade
		if name == "" {
			name = "(sin nombre)"
		}
		cmd.Printf("%s  %s  %s\n", rec.ID, rec.CreatedAt.Format("2006-01-02 15:04"), name)
	}
	return nil
}
