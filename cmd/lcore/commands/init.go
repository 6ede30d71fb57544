package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	identitysvc "github.com/Modern-Society-Labs/lcore-sdk/internal/services/identity"
	"github.com/Modern-Society-Labs/lcore-sdk/internal/store"
)

func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a device identity and persist it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fs, ok := wire.Store.(*store.RecordFileStore); ok && fs.Exists() && !force {
				return fmt.Errorf("identity record already exists at %s (use --force to replace)", cfg.DeviceFile)
			}
			id, err := identitysvc.New()
			if err != nil {
				return err
			}
			if err := wire.Identities.Save(id); err != nil {
				return err
			}
			fmt.Printf("Identity created.\nDID: %s\nSaved to: %s\n", id.DID(), cfg.DeviceFile)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing identity record")
	return cmd
}
