package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bibbank/decisioning/pkg/auth"
	"github.com/bibbank/decisioning/pkg/tlsutil"
)

// newDevCommand groups helpers for running decisiond locally.
func newDevCommand(_ *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Local development helpers",
	}
	cmd.AddCommand(newDevTokenCommand(), newDevCertsCommand())
	return cmd
}

func newDevTokenCommand() *cobra.Command {
	var (
		secret   string
		issuer   string
		subject  string
		tenantID string
		roles    []string
		ttl      time.Duration
	)
	cmd := &cobra.Command{
		Use:     "token",
		Short:   "Mint an HS256 token accepted by a decisiond running with JWT_SECRET",
		Example: `  decisionctl dev token --secret dev-secret-change-in-prod --role operator`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := auth.NewJWTService(auth.JWTConfig{Secret: secret, Issuer: issuer, Expiration: ttl})
			if err != nil {
				return err
			}
			token, err := svc.GenerateToken(subject, tenantID, roles)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&secret, "secret", "dev-secret-change-in-prod", "HMAC secret")
	cmd.Flags().StringVar(&issuer, "issuer", "bib-decisioning", "Token issuer")
	cmd.Flags().StringVar(&subject, "subject", "decisionctl", "Token subject")
	cmd.Flags().StringVar(&tenantID, "tenant", "local", "Tenant claim")
	cmd.Flags().StringSliceVar(&roles, "role", []string{auth.RoleAPIClient}, "Role claim (repeatable)")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "Token lifetime")
	return cmd
}

func newDevCertsCommand() *cobra.Command {
	var (
		out    string
		opts   tlsutil.DevCertOptions
		client string
	)
	cmd := &cobra.Command{
		Use:   "certs",
		Short: "Write a development CA, server and client certificate for the gRPC listener",
		Long: `Writes ca.pem, server.pem, server-key.pem, client.pem and client-key.pem,
then prints the environment decisiond needs to serve them with mutual TLS.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.ClientName = client
			certs, err := tlsutil.WriteDevCerts(out, opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "TLS_CERT_FILE=%s\nTLS_KEY_FILE=%s\nTLS_CLIENT_CA_FILE=%s\n",
				certs.ServerCertFile, certs.ServerKeyFile, certs.CAFile)
			return err
		},
	}
	cmd.Flags().StringVar(&out, "out", "certs", "Output directory")
	cmd.Flags().StringSliceVar(&opts.Hosts, "host", []string{"localhost", "127.0.0.1"}, "Server certificate host (repeatable)")
	cmd.Flags().StringVar(&client, "client-name", "decisionctl", "Client certificate common name")
	cmd.Flags().DurationVar(&opts.Validity, "validity", 365*24*time.Hour, "Certificate lifetime")
	return cmd
}
