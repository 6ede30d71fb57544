package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	identitysvc "github.com/Modern-Society-Labs/lcore-sdk/internal/services/identity"
)

func importCmd() *cobra.Command {
	var mnemonic bool

	cmd := &cobra.Command{
		Use:   "import <private-key-hex | mnemonic words...>",
		Short: "Import an identity from a hex key or mnemonic phrase",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				id  *identitysvc.Identity
				err error
			)
			if mnemonic {
				id, err = identitysvc.FromMnemonic(strings.Join(args, " "))
			} else {
				if len(args) != 1 {
					return fmt.Errorf("expected exactly one hex argument")
				}
				id, err = identitysvc.FromHex(args[0])
			}
			if err != nil {
				return err
			}
			if err := wire.Identities.Save(id); err != nil {
				return err
			}
			fmt.Printf("Identity imported.\nDID: %s\nSaved to: %s\n", id.DID(), cfg.DeviceFile)
			return nil
		},
	}
	cmd.Flags().BoolVar(&mnemonic, "mnemonic", false, "treat the arguments as a 24-word backup phrase")
	return cmd
}
