package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/usvsched/internal/config"
	"github.com/example/usvsched/internal/creds"
	"github.com/example/usvsched/internal/crypto"
)

func newCredsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "creds",
		Short: "Manage the credential file",
	}
	cmd.AddCommand(newCredsEncryptCmd())
	return cmd
}

func newCredsEncryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt <plaintext.json> <out>",
		Short: "Encrypt a plaintext credential file with CRED_ENC_KEY",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			if len(cfg.CredEncKey) == 0 {
				return fmt.Errorf("CRED_ENC_KEY is required (run `usvsched keys`)")
			}

			// Validate before sealing so a broken file fails here, not at
			// the first cycle.
			if _, err := creds.Load(args[0], nil); err != nil {
				return err
			}
			plain, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			a, err := crypto.New(cfg.CredEncKey)
			if err != nil {
				return err
			}
			sealed, err := a.EncryptToString(string(plain))
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[1], []byte(sealed+"\n"), 0o600); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "wrote %s\n", args[1])
			return nil
		},
	}
}
