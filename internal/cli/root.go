// Package cli builds the command-line surface of ksecrets.
package cli

import (
	"github.com/spf13/cobra"

	"ksecrets/internal/config"
	"ksecrets/internal/k8s"
	"ksecrets/internal/pipeline"
	"ksecrets/internal/render"
)

// NewRootCmd builds the root command:
//
//	ksecrets [-a] [--jwt] <namespace> [query]
func NewRootCmd(env config.Env) *cobra.Command {
	var (
		showAll    bool
		inspectJWT bool
	)

	cmd := &cobra.Command{
		Use:   "ksecrets <namespace> [query]",
		Short: "List and decode the secrets in a Kubernetes namespace",
		Long: `ksecrets lists the secrets in a namespace and prints their decoded
key/value contents. By default only secrets of type "Opaque" are shown;
pass --show-all to include every type. An optional query argument keeps
only secrets whose name contains it (case-sensitive).`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// past argument parsing, errors are runtime failures and
			// reprinting the usage text would just bury them
			cmd.SilenceUsage = true

			query := ""
			if len(args) > 1 {
				query = args[1]
			}

			cfg, err := config.New(args[0], query, showAll)
			if err != nil {
				return err
			}

			client, err := k8s.NewClient(cmd.Context(), env.Kubeconfig)
			if err != nil {
				return err
			}

			renderer := render.NewRenderer(cmd.OutOrStdout(), render.DefaultStyle())
			renderer.InspectJWT = inspectJWT

			p := pipeline.New(client, renderer, cmd.OutOrStdout())
			_, err = p.Run(cfg)
			return err
		},
	}

	cmd.Flags().BoolVarP(&showAll, "show-all", "a", false, "include secrets of all types, not just Opaque")
	cmd.Flags().BoolVar(&inspectJWT, "jwt", false, "append a claims summary under values that parse as JWTs")

	return cmd
}
