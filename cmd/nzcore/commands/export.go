package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func exportIdentityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export-identity",
		Short: "Print the mnemonic and chain id backing the current identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadFacade()
			if err != nil {
				return err
			}
			defer f.Destroy()

			mnemonic, chainID, err := f.ExportIdentity()
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(map[string]string{
				"mnemonic": mnemonic,
				"chain_id": chainID,
			}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
	return cmd
}

func exportStateCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export-state",
		Short: "Write the full chain state to a file or stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadFacade()
			if err != nil {
				return err
			}
			defer f.Destroy()

			blob, err := f.ExportState()
			if err != nil {
				return err
			}
			if outPath == "" || outPath == "-" {
				fmt.Println(string(blob))
				return nil
			}
			return os.WriteFile(outPath, blob, 0o600)
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "file to write state to (default stdout)")
	return cmd
}
