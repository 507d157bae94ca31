package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"nzcore"
	"nzcore/internal/statefile"
	"nzcore/internal/suite"
	"nzcore/internal/vault"
)

func initCmd() *cobra.Command {
	var existingMnemonic string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate (or import) an identity and seal its mnemonic to disk",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}

			mnemonic := existingMnemonic
			if mnemonic == "" {
				m, err := suite.GenerateMnemonic()
				if err != nil {
					return err
				}
				mnemonic = m
			}

			opts, err := facadeOptions()
			if err != nil {
				return err
			}
			f, err := nzcore.Create(mnemonic, opts...)
			if err != nil {
				return err
			}
			defer f.Destroy()

			sealed, err := vault.Seal(passphrase, mnemonic)
			if err != nil {
				return err
			}
			data, err := sealed.Marshal()
			if err != nil {
				return err
			}
			if err := statefile.Write(identityPath, data, 0o600); err != nil {
				return err
			}

			chainID, err := f.GetChainID()
			if err != nil {
				return err
			}
			pubHex, err := f.GetPublicKeyHex()
			if err != nil {
				return err
			}
			fmt.Printf("Identity created.\nChain id: %s\nPublic key: %s\n", chainID, pubHex)
			if existingMnemonic == "" {
				fmt.Printf("Mnemonic (write this down; only export-identity with the passphrase shows it again): %s\n", mnemonic)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&existingMnemonic, "mnemonic", "", "import an existing BIP-39 mnemonic instead of generating one")
	return cmd
}
