package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func createDocumentCmd() *cobra.Command {
	var docType, payloadJSON string

	cmd := &cobra.Command{
		Use:   "create-document",
		Short: "Build, sign, and append a new document to the chain",
		RunE: func(cmd *cobra.Command, args []string) error {
			if docType == "" {
				return fmt.Errorf("--type is required")
			}
			f, err := loadFacade()
			if err != nil {
				return err
			}
			defer f.Destroy()

			var payload any
			if payloadJSON != "" {
				if err := json.Unmarshal([]byte(payloadJSON), &payload); err != nil {
					return fmt.Errorf("--payload is not valid JSON: %w", err)
				}
			}

			doc, err := f.CreateDocument(docType, payload)
			if err != nil {
				return err
			}
			if err := saveState(f); err != nil {
				return err
			}

			out, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&docType, "type", "", "document type")
	cmd.Flags().StringVar(&payloadJSON, "payload", "", "JSON payload (optional)")
	return cmd
}
