// ccrs-convert converts a single parsed flat-file record, supplied as JSON,
// into the FHIR submission document without running the service.
package main

import (
	"fmt"
	"os"

	"github.com/caretech-interop/ccrs-fhir-bridge/internal/service/ccrs/adapters/fhir"
	"github.com/caretech-interop/ccrs-fhir-bridge/internal/service/ccrs/record"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var outputPath string

type recordFile struct {
	Admin struct {
		AssessmentType     string `json:"assessmentType"`
		PatientOperation   string `json:"patientOperation"`
		EncounterOperation string `json:"encounterOperation"`
		PatientID          string `json:"patientId"`
		EncounterID        string `json:"encounterId"`
	} `json:"admin"`
	Fields map[string]string `json:"fields"`
}

var rootCmd = &cobra.Command{
	Use:   "ccrs-convert <record.json>",
	Short: "Convert a parsed CCRS flat-file record to a FHIR submission bundle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read record: %w", err)
		}

		var in recordFile
		if err := json.Unmarshal(data, &in); err != nil {
			return fmt.Errorf("parse record: %w", err)
		}

		rec := &record.Record{
			Admin: record.Admin{
				AssessmentType:     in.Admin.AssessmentType,
				PatientOperation:   in.Admin.PatientOperation,
				EncounterOperation: in.Admin.EncounterOperation,
				PatientID:          in.Admin.PatientID,
				EncounterID:        in.Admin.EncounterID,
			},
			Fields: in.Fields,
		}

		doc, err := fhir.NewComposer().BuildSubmission(rec)
		if err != nil {
			return err
		}

		if outputPath == "" {
			_, err = cmd.OutOrStdout().Write(doc)
			return err
		}
		return os.WriteFile(outputPath, doc, 0o644)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the document to a file instead of stdout")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
