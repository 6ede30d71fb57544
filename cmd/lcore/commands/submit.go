package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func submitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit <payload-json>",
		Short: "Sign a JSON payload and post it to the attestor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := wire.Identities.Load()
			if err != nil {
				return err
			}
			env, err := id.SignRaw(json.RawMessage(args[0]))
			if err != nil {
				return err
			}
			res, err := wire.Attestor.Submit(cmd.Context(), env)
			if err != nil {
				return err
			}
			if !res.Success {
				return fmt.Errorf("submission rejected: %s", res.Error)
			}
			fmt.Printf("Accepted.\nTx hash: %s\nBlock:   %d\n", res.TxHash, res.BlockNumber)
			return nil
		},
	}
}
