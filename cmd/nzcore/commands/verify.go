package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nzcore"
)

func verifyCmd() *cobra.Command {
	var docPath string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a document's structural, cryptographic, and policy validity",
		RunE: func(cmd *cobra.Command, args []string) error {
			if docPath == "" {
				return fmt.Errorf("--document is required")
			}
			raw, err := os.ReadFile(docPath)
			if err != nil {
				return err
			}
			var doc nzcore.Document
			if err := json.Unmarshal(raw, &doc); err != nil {
				return fmt.Errorf("--document is not a valid document: %w", err)
			}

			f, err := loadFacade()
			if err != nil {
				return err
			}
			defer f.Destroy()

			res := f.VerifyDocument(doc)
			out, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			if !res.Final {
				return fmt.Errorf("document failed verification")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&docPath, "document", "", "path to a JSON document file")
	return cmd
}
