package commands

import (
	"github.com/spf13/cobra"

	"github.com/Modern-Society-Labs/lcore-sdk/internal/app"
)

var (
	cfgPath     string
	deviceFile  string
	attestorURL string
	passphrase  string

	cfg  app.Config
	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "lcore",
		Short: "Device identity and signed telemetry submission CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := app.LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			if deviceFile != "" {
				loaded.DeviceFile = deviceFile
			}
			if attestorURL != "" {
				loaded.AttestorURL = attestorURL
			}
			if passphrase != "" {
				loaded.Passphrase = passphrase
			}
			cfg = loaded

			wire, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (YAML)")
	root.PersistentFlags().StringVar(&deviceFile, "device-file", "", "identity record path (default ~/.lcore_device.json)")
	root.PersistentFlags().StringVar(&attestorURL, "attestor", "", "attestor base URL (e.g. http://127.0.0.1:8001)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase sealing the identity record")

	root.AddCommand(initCmd(), importCmd(), didCmd(), mnemonicCmd(), signCmd(), submitCmd(), runCmd())
	return root.Execute()
}
