package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	tokenEmail string
	tokenTTL   time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage session tokens",
}

var tokenIssueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Issue a session token for a user",
	Long: `Issue a session token for a user. The token authenticates API requests
via the Authorization: Bearer header or the auth-token cookie.

Examples:
  pix3lwiki token issue --email dana@pix3ltools.com
  pix3lwiki token issue --email ops@pix3ltools.com --ttl 8760h`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tokenEmail == "" {
			return fmt.Errorf("--email is required")
		}
		ctx := context.Background()

		user, err := GetStore().GetUserByEmail(ctx, tokenEmail)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("no user with email %s", tokenEmail)
		}

		session, err := GetStore().CreateSession(ctx, user.ID, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Printf("Token for %s (expires %s):\n%s\n",
			user.Email, session.ExpiresAt.Format(time.RFC3339), session.Token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.AddCommand(tokenIssueCmd)
	tokenIssueCmd.Flags().StringVar(&tokenEmail, "email", "", "user email")
	tokenIssueCmd.Flags().DurationVar(&tokenTTL, "ttl", 30*24*time.Hour, "token lifetime")
}
