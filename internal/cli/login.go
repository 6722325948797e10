package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ibamconsole/internal/adapters/restapi"
)

func (a *App) loginCmd() *cobra.Command {
	var token string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a bearer token in the config file",
		Long:  "Stores the token obtained from the identity service. The token is checked for expiry but its signature is only verified by the backend.",
		RunE: func(_ *cobra.Command, _ []string) error {
			session := &restapi.Session{Token: token}
			if !session.Valid() {
				return fmt.Errorf("token is malformed or already expired")
			}
			a.cfg.Server.Token = token
			if err := Save(os.Getenv("IBAMCTL_CONFIG"), a.cfg); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "token saved")
			return nil
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "bearer token issued by the identity service")
	_ = cmd.MarkFlagRequired("token")
	return cmd
}

func (a *App) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored token from the config file",
		RunE: func(_ *cobra.Command, _ []string) error {
			a.cfg.Server.Token = ""
			if err := Save(os.Getenv("IBAMCTL_CONFIG"), a.cfg); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "token removed")
			return nil
		},
	}
}
