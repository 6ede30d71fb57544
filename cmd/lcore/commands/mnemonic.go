package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func mnemonicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mnemonic",
		Short: "Print the 24-word backup phrase for the stored key",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := wire.Identities.Load()
			if err != nil {
				return err
			}
			phrase, err := id.Mnemonic()
			if err != nil {
				return err
			}
			fmt.Println(phrase)
			return nil
		},
	}
}
