package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func detectForkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect-fork",
		Short: "Scan the current chain for divergent parent-hash forks",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadFacade()
			if err != nil {
				return err
			}
			defer f.Destroy()

			forks, err := f.DetectFork()
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(forks, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			if len(forks) > 0 {
				return fmt.Errorf("%d fork(s) detected", len(forks))
			}
			return nil
		},
	}
	return cmd
}
