package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/custom-lobby/internal/orchestrators/champions"
)

func newChampionsCmd(opts *options, d deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "champions",
		Short: "Draw a champion pool that meets the role targets",
		Long: `Draw a pool of champions whose role tags meet the targets exactly.
Every valid pool up to --max-choices is enumerated and one is picked at random.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChampions(cmd, opts, d)
		},
	}
	addChampionFlags(cmd, opts)
	return cmd
}

func runChampions(cmd *cobra.Command, opts *options, d deps) error {
	cfg := opts.cfg

	roles, err := cfg.Champions.RoleTargets()
	if err != nil {
		return err
	}

	svc, closeSvc, err := newChampionsService(cfg, d)
	if err != nil {
		return err
	}
	defer closeSvc()

	out, err := svc.DrawPool(cmd.Context(), &champions.DrawPoolInput{
		Version:    cfg.DataDragon.Version,
		Roles:      roles,
		Slots:      cfg.Champions.Slots,
		MaxChoices: cfg.Champions.MaxChoices,
	})
	if err != nil {
		return err
	}

	newView(cmd.OutOrStdout()).pool(out, roles)
	return nil
}
