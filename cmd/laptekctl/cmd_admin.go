package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"laptek/internal/adapter/repository"
	"laptek/internal/domain/entity"
	"laptek/pkg/errors"
	"laptek/pkg/logger"
)

var revokeAdmin bool

var makeAdminCmd = &cobra.Command{
	Use:   "make-admin <email>",
	Short: "Grant or revoke admin access for a user",
	Long: `Set the "admin" custom claim on the Firebase user with the given email and
mirror the role into their profile document.

The user must sign out and back in (or refresh their ID token) before the
claim takes effect.`,
	Args: cobra.ExactArgs(1),
	RunE: runMakeAdmin,
}

func init() {
	makeAdminCmd.Flags().BoolVar(&revokeAdmin, "revoke", false, "Remove admin access instead of granting it")
}

func runMakeAdmin(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	e, err := setup(ctx)
	if err != nil {
		return err
	}
	defer e.Close()

	email := args[0]
	uid, err := e.clients.Auth.LookupUID(ctx, email)
	if err != nil {
		return fmt.Errorf("look up %s: %w", email, err)
	}

	if err := e.clients.Auth.SetAdminClaim(ctx, uid, !revokeAdmin); err != nil {
		return fmt.Errorf("set admin claim: %w", err)
	}

	role := entity.RoleAdmin
	if revokeAdmin {
		role = entity.RoleCustomer
	}
	userRepo := repository.NewFirestoreUserRepository(e.clients.Firestore)
	if err := userRepo.UpdateRole(ctx, uid, role); err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return fmt.Errorf("update profile role: %w", err)
		}
		logger.Warn("No profile document for %s yet; only the claim was set", uid)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) is now %s\n", email, uid, role)
	return nil
}
