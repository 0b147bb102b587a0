package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/domain"
)

var (
	userName  string
	userEmail string
	userAdmin bool
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage wiki users",
}

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a user",
	Long: `Add a user to the wiki.

Examples:
  pix3lwiki user add --name "Dana" --email dana@pix3ltools.com
  pix3lwiki user add --name "Ops Bot" --email ops@pix3ltools.com --admin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if userName == "" || userEmail == "" {
			return fmt.Errorf("--name and --email are required")
		}
		ctx := context.Background()

		existing, err := GetStore().GetUserByEmail(ctx, userEmail)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("user %s already exists", userEmail)
		}

		user := &domain.User{
			ID:      domain.NewID(),
			Name:    userName,
			Email:   userEmail,
			IsAdmin: userAdmin,
		}
		if err := GetStore().CreateUser(ctx, user); err != nil {
			return err
		}
		fmt.Printf("Added user %s <%s> (id %s)\n", user.Name, user.Email, user.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userAddCmd)
	userAddCmd.Flags().StringVar(&userName, "name", "", "display name")
	userAddCmd.Flags().StringVar(&userEmail, "email", "", "email address")
	userAddCmd.Flags().BoolVar(&userAdmin, "admin", false, "grant admin rights")
}
