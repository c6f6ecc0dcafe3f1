package console

import (
	"context"

	"github.com/spf13/cobra"

	userUsecases "github.com/codearena/arena-admin/internal/application/user/usecases"
	"github.com/codearena/arena-admin/sdk/platform"
)

var userHead = []string{"ID", "USERNAME", "EMAIL", "ROLE", "BANNED", "CREATED"}

func userRow(u platform.User) []string {
	return []string{u.ID, u.Username, u.Email, u.Role, yesNo(u.Banned), when(u.CreatedAt)}
}

func newUsersCommand(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage platform users",
	}

	cmd.AddCommand(
		newUsersListCommand(o),
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show one user",
			Args:  cobra.ExactArgs(1),
			RunE: o.run(func(ctx context.Context, app *App, args []string) error {
				u, err := userUsecases.NewGetUserUseCase(app.client, app.log).Execute(ctx, args[0])
				if err != nil {
					return err
				}
				return app.out.Print(itemView(*u, userHead, userRow))
			}),
		},
		&cobra.Command{
			Use:   "role <id> <user|moderator|admin>",
			Short: "Change a user's role",
			Args:  cobra.ExactArgs(2),
			RunE: o.run(func(ctx context.Context, app *App, args []string) error {
				uc := userUsecases.NewChangeUserRoleUseCase(app.client, app.sink, app.log)
				u, err := uc.Execute(ctx, userUsecases.ChangeUserRoleCommand{ID: args[0], Role: args[1]})
				if err != nil {
					return err
				}
				return app.out.Print(itemView(*u, userHead, userRow))
			}),
		},
		newUsersBanCommand(o, true),
		newUsersBanCommand(o, false),
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a user",
			Args:  cobra.ExactArgs(1),
			RunE: o.run(func(ctx context.Context, app *App, args []string) error {
				if err := userUsecases.NewDeleteUserUseCase(app.client, app.sink, app.log).Execute(ctx, args[0]); err != nil {
					return err
				}
				app.out.Message("User %s deleted", args[0])
				return nil
			}),
		},
	)

	return cmd
}

func newUsersListCommand(o *Options) *cobra.Command {
	var (
		lf   listFlags
		role string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = o.run(func(ctx context.Context, app *App, _ []string) error {
		res, err := userUsecases.NewListUsersUseCase(app.client, app.fetcher, app.log).Execute(ctx, userUsecases.ListUsersQuery{
			ListQuery: lf.query(),
			Role:      role,
			Banned:    optionalBool(cmd, "banned"),
		})
		if err != nil {
			return err
		}
		return app.out.Print(listView(res, userHead, userRow))
	})

	lf.register(cmd)
	cmd.Flags().StringVar(&role, "role", "", "Filter by role")
	cmd.Flags().Bool("banned", false, "Filter by ban state")

	return cmd
}

func newUsersBanCommand(o *Options, ban bool) *cobra.Command {
	var reason string

	use, short := "ban <id>", "Ban a user"
	if !ban {
		use, short = "unban <id>", "Lift a user's ban"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: o.run(func(ctx context.Context, app *App, args []string) error {
			uc := userUsecases.NewSetUserBanUseCase(app.client, app.sink, app.log)
			u, err := uc.Execute(ctx, userUsecases.SetUserBanCommand{ID: args[0], Banned: ban, Reason: reason})
			if err != nil {
				return err
			}
			return app.out.Print(itemView(*u, userHead, userRow))
		}),
	}
	if ban {
		cmd.Flags().StringVar(&reason, "reason", "", "Reason shown to the user")
	}
	return cmd
}
