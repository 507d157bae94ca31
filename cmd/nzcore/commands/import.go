package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func importStateCmd() *cobra.Command {
	var inPath string

	cmd := &cobra.Command{
		Use:   "import-state",
		Short: "Replace the current chain state with one previously exported",
		RunE: func(cmd *cobra.Command, args []string) error {
			var blob []byte
			var err error
			if inPath == "" || inPath == "-" {
				blob, err = io.ReadAll(os.Stdin)
			} else {
				blob, err = os.ReadFile(inPath)
			}
			if err != nil {
				return err
			}

			f, err := loadFacade()
			if err != nil {
				return err
			}
			defer f.Destroy()

			if err := f.ImportState(blob); err != nil {
				return err
			}
			if err := saveState(f); err != nil {
				return err
			}
			fmt.Println("state imported")
			return nil
		},
	}
	cmd.Flags().StringVar(&inPath, "in", "", "file to read state from (default stdin)")
	return cmd
}
