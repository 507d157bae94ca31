package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"nzcore"
	"nzcore/internal/config"
	"nzcore/internal/logging"
	"nzcore/internal/statefile"
	"nzcore/internal/validator"
	"nzcore/internal/vault"
)

var (
	home       string
	passphrase string

	chainIDFlag     string
	initialTimeFlag int64
	policyFlag      string
	logLevelFlag    string
	logFormatFlag   string

	identityPath string
	statePath    string
	cfg          config.Config
)

// Execute builds the root command and runs it.
func Execute() error {
	root := &cobra.Command{
		Use:   "nzcore",
		Short: "Personal autonomous Root of Trust CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".nzcore")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			identityPath = filepath.Join(home, "identity.json")
			statePath = filepath.Join(home, "state.json")

			v := config.New()
			v.Set("home", home)
			v.Set("chain_id", chainIDFlag)
			if initialTimeFlag != 0 {
				v.Set("initial_time", initialTimeFlag)
			}
			v.Set("policy", policyFlag)
			if logLevelFlag != "" {
				v.Set("log_level", logLevelFlag)
			}
			if logFormatFlag != "" {
				v.Set("log_format", logFormatFlag)
			}
			loaded, err := config.Load(v)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.nzcore)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the sealed mnemonic")
	root.PersistentFlags().StringVar(&chainIDFlag, "chain-id", "", "override the derived chain id (64 hex chars)")
	root.PersistentFlags().Int64Var(&initialTimeFlag, "initial-time", 0, "starting logical time (default 1)")
	root.PersistentFlags().StringVar(&policyFlag, "policy", "", "CEL expression evaluated as the document policy layer")
	root.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "debug|info|warn|error (default info)")
	root.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "json|text (default text)")

	root.AddCommand(
		initCmd(),
		createDocumentCmd(),
		verifyCmd(),
		exportIdentityCmd(),
		exportStateCmd(),
		importStateCmd(),
		detectForkCmd(),
	)
	return root.Execute()
}

// facadeOptions translates cfg (set up in PersistentPreRunE) into the
// Option slice passed to nzcore.Create, so every command derives its
// facade with the same chain id override, initial time, policy, and
// logger configuration.
func facadeOptions() ([]nzcore.Option, error) {
	opts := []nzcore.Option{
		nzcore.WithLogger(logging.Setup(cfg.LogLevel, cfg.LogFormat)),
	}
	if cfg.ChainID != "" {
		opts = append(opts, nzcore.WithChainID(cfg.ChainID))
	}
	if cfg.InitialTime > 0 {
		opts = append(opts, nzcore.WithInitialTime(cfg.InitialTime))
	}
	if cfg.PolicyExpr != "" {
		policy, err := validator.CompileCELPolicy(cfg.PolicyExpr)
		if err != nil {
			return nil, err
		}
		opts = append(opts, nzcore.WithPolicy(policy))
	}
	return opts, nil
}

// loadFacade reads the sealed mnemonic at identityPath, unseals it with
// passphrase, derives the facade, and replays any previously exported state.
func loadFacade() (*nzcore.Facade, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("passphrase required (-p)")
	}
	data, err := statefile.Read(identityPath)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("no identity found at %s; run 'nzcore init' first", identityPath)
	}
	sealed, err := vault.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	mnemonic, err := vault.Unseal(passphrase, sealed)
	if err != nil {
		return nil, err
	}

	opts, err := facadeOptions()
	if err != nil {
		return nil, err
	}
	f, err := nzcore.Create(mnemonic, opts...)
	if err != nil {
		return nil, err
	}

	stateBlob, err := statefile.Read(statePath)
	if err != nil {
		f.Destroy()
		return nil, err
	}
	if stateBlob != nil {
		if err := f.ImportState(stateBlob); err != nil {
			f.Destroy()
			return nil, err
		}
	}
	return f, nil
}

// saveState persists f's chain state to statePath.
func saveState(f *nzcore.Facade) error {
	blob, err := f.ExportState()
	if err != nil {
		return err
	}
	return statefile.Write(statePath, blob, 0o600)
}
