package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	identitysvc "github.com/Modern-Society-Labs/lcore-sdk/internal/services/identity"
)

func didCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "did [private-key-hex]",
		Short: "Print the did:key identifier (conformance output)",
		Long: `Print the did:key identifier for an identity.

With a hex private key argument the identifier is derived directly and
printed with no decoration, so the output can be compared byte for byte
against other implementations. With no argument the stored identity is
loaded instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				id  *identitysvc.Identity
				err error
			)
			if len(args) == 1 {
				id, err = identitysvc.FromHex(args[0])
			} else {
				id, err = wire.Identities.Load()
			}
			if err != nil {
				return err
			}
			fmt.Println(id.DID())
			return nil
		},
	}
}
