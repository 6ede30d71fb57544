package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func signCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <payload-json>",
		Short: "Sign a JSON payload and print the submission envelope",
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
			out, err := json.MarshalIndent(env, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}
