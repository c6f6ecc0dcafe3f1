package console

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/codearena/arena-admin/internal/application/optimistic"
	plandto "github.com/codearena/arena-admin/internal/application/plan/dto"
	planUsecases "github.com/codearena/arena-admin/internal/application/plan/usecases"
	"github.com/codearena/arena-admin/sdk/platform"
)

var (
	planHead    = []string{"ID", "NAME", "PRICE", "DAYS", "ACTIVE", "FEATURES"}
	featureHead = []string{"ORDER", "ID", "KEY", "NAME", "VALUE"}
)

func planRow(p plandto.PlanDTO) []string {
	return []string{p.ID, p.DisplayName, p.PriceDisplay, itoa(p.DurationDays), yesNo(p.Active), itoa(len(p.Features))}
}

func featureRow(f platform.SubscriptionFeature) []string {
	return []string{itoa(f.DisplayOrder), f.ID, f.Key, plandto.DisplayName(f.Names), f.Value}
}

func (a *App) featureMutator() *planUsecases.FeatureMutator {
	return optimistic.NewMutator[[]platform.SubscriptionFeature](optimistic.NewMemoryStore[[]platform.SubscriptionFeature](), a.log)
}

type planFlags struct {
	names        map[string]string
	descriptions map[string]string
	price        string
	currency     string
	durationDays int
}

func (f *planFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringToStringVar(&f.names, "name", nil, "Localized name, e.g. --name en=Pro --name vi=\"Chuyên nghiệp\"")
	cmd.Flags().StringToStringVar(&f.descriptions, "description", nil, "Localized description, lang=text")
	cmd.Flags().StringVar(&f.price, "price", "", "Decimal price, e.g. 9.99")
	cmd.Flags().StringVar(&f.currency, "currency", "USD", "ISO 4217 currency code")
	cmd.Flags().IntVar(&f.durationDays, "duration-days", 30, "Billing period in days")
}

func (f *planFlags) command() planUsecases.PlanCommand {
	return planUsecases.PlanCommand{
		Names:        f.names,
		Descriptions: f.descriptions,
		Price:        f.price,
		Currency:     f.currency,
		DurationDays: f.durationDays,
	}
}

func newPlansCommand(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plans",
		Aliases: []string{"plan"},
		Short:   "Manage subscription plans",
	}

	var lf listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List plans",
		Args:  cobra.NoArgs,
	}
	list.RunE = o.run(func(ctx context.Context, app *App, _ []string) error {
		res, err := planUsecases.NewListPlansUseCase(app.client, app.fetcher, app.log).Execute(ctx, planUsecases.ListPlansQuery{
			ListQuery: lf.query(),
			Active:    optionalBool(list, "active"),
		})
		if err != nil {
			return err
		}
		return app.out.Print(listView(res, planHead, planRow))
	})
	lf.register(list)
	list.Flags().Bool("active", false, "Filter by active state")

	var create planFlags
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a plan",
		Args:  cobra.NoArgs,
		RunE: o.run(func(ctx context.Context, app *App, _ []string) error {
			p, err := planUsecases.NewCreatePlanUseCase(app.client, app.sink, app.log).Execute(ctx, create.command())
			if err != nil {
				return err
			}
			return app.out.Print(itemView(*p, planHead, planRow))
		}),
	}
	create.register(createCmd)

	var update planFlags
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a plan's fields",
		Args:  cobra.ExactArgs(1),
		RunE: o.run(func(ctx context.Context, app *App, args []string) error {
			uc := planUsecases.NewUpdatePlanUseCase(app.client, app.sink, app.log)
			p, err := uc.Execute(ctx, planUsecases.UpdatePlanCommand{ID: args[0], PlanCommand: update.command()})
			if err != nil {
				return err
			}
			return app.out.Print(itemView(*p, planHead, planRow))
		}),
	}
	update.register(updateCmd)

	cmd.AddCommand(
		list,
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show a plan and its features",
			Args:  cobra.ExactArgs(1),
			RunE: o.run(func(ctx context.Context, app *App, args []string) error {
				p, err := planUsecases.NewGetPlanUseCase(app.client, app.log).Execute(ctx, args[0])
				if err != nil {
					return err
				}
				if err := app.out.Print(itemView(*p, planHead, planRow)); err != nil {
					return err
				}
				if len(p.Features) == 0 {
					return nil
				}
				return app.out.Print(sliceView(p.Features, featureHead, featureRow))
			}),
		},
		createCmd,
		updateCmd,
		newPlanActiveCommand(o, true),
		newPlanActiveCommand(o, false),
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a plan",
			Args:  cobra.ExactArgs(1),
			RunE: o.run(func(ctx context.Context, app *App, args []string) error {
				if err := planUsecases.NewDeletePlanUseCase(app.client, app.featureMutator(), app.sink, app.log).Execute(ctx, args[0]); err != nil {
					return err
				}
				app.out.Message("Plan %s deleted", args[0])
				return nil
			}),
		},
		newFeaturesCommand(o),
	)

	return cmd
}

func newPlanActiveCommand(o *Options, active bool) *cobra.Command {
	use, short := "activate <id>", "Offer a plan to users"
	if !active {
		use, short = "deactivate <id>", "Stop offering a plan"
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: o.run(func(ctx context.Context, app *App, args []string) error {
			uc := planUsecases.NewSetPlanActiveUseCase(app.client, app.sink, app.log)
			p, err := uc.Execute(ctx, planUsecases.SetPlanActiveCommand{ID: args[0], Active: active})
			if err != nil {
				return err
			}
			return app.out.Print(itemView(*p, planHead, planRow))
		}),
	}
}

type featureFlags struct {
	key   string
	value string
	names map[string]string
}

func (f *featureFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.key, "key", "", "Feature key, e.g. ai_hints")
	cmd.Flags().StringVar(&f.value, "value", "", "Feature value, e.g. unlimited")
	cmd.Flags().StringToStringVar(&f.names, "name", nil, "Localized name, lang=text")
}

func (f *featureFlags) command() planUsecases.FeatureCommand {
	return planUsecases.FeatureCommand{Key: f.key, Value: f.value, Names: f.names}
}

func newFeaturesCommand(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "features",
		Aliases: []string{"feature"},
		Short:   "Manage a plan's features",
	}

	var add featureFlags
	addCmd := &cobra.Command{
		Use:   "add <plan-id>",
		Short: "Add a feature to a plan",
		Args:  cobra.ExactArgs(1),
		RunE: o.run(func(ctx context.Context, app *App, args []string) error {
			uc := planUsecases.NewCreateFeatureUseCase(app.client, app.featureMutator(), app.sink, app.log)
			f, err := uc.Execute(ctx, planUsecases.CreateFeatureCommand{PlanID: args[0], FeatureCommand: add.command()})
			if err != nil {
				return err
			}
			return app.out.Print(itemView(*f, featureHead, featureRow))
		}),
	}
	add.register(addCmd)

	var update featureFlags
	updateCmd := &cobra.Command{
		Use:   "update <plan-id> <feature-id>",
		Short: "Replace a feature's fields",
		Args:  cobra.ExactArgs(2),
		RunE: o.run(func(ctx context.Context, app *App, args []string) error {
			uc := planUsecases.NewUpdateFeatureUseCase(app.client, app.featureMutator(), app.sink, app.log)
			f, err := uc.Execute(ctx, planUsecases.UpdateFeatureCommand{PlanID: args[0], FeatureID: args[1], FeatureCommand: update.command()})
			if err != nil {
				return err
			}
			return app.out.Print(itemView(*f, featureHead, featureRow))
		}),
	}
	update.register(updateCmd)

	cmd.AddCommand(
		addCmd,
		updateCmd,
		&cobra.Command{
			Use:   "delete <plan-id> <feature-id>",
			Short: "Remove a feature",
			Args:  cobra.ExactArgs(2),
			RunE: o.run(func(ctx context.Context, app *App, args []string) error {
				uc := planUsecases.NewDeleteFeatureUseCase(app.client, app.featureMutator(), app.sink, app.log)
				if err := uc.Execute(ctx, planUsecases.DeleteFeatureCommand{PlanID: args[0], FeatureID: args[1]}); err != nil {
					return err
				}
				app.out.Message("Feature %s deleted", args[1])
				return nil
			}),
		},
		&cobra.Command{
			Use:   "reorder <plan-id> <feature-id>...",
			Short: "Set the feature display order",
			Args:  cobra.MinimumNArgs(2),
			RunE: o.run(func(ctx context.Context, app *App, args []string) error {
				uc := planUsecases.NewReorderFeaturesUseCase(app.client, app.featureMutator(), app.sink, app.log)
				features, err := uc.Execute(ctx, planUsecases.ReorderFeaturesCommand{PlanID: args[0], IDs: args[1:]})
				if err != nil {
					return err
				}
				return app.out.Print(sliceView(features, featureHead, featureRow))
			}),
		},
	)

	return cmd
}
