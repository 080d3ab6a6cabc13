package main

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/railnet/core"
	"github.com/katalvlaran/railnet/ewd"
	"github.com/katalvlaran/railnet/network"
	"github.com/katalvlaran/railnet/planner"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "railnet",
		Short:        "Plan routes and renovations on a railway network",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if input.verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.SetContext(ctx)
	input.bindPersistent(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "info",
			Short: "Summarize the network",
			Args:  cobra.NoArgs,
			RunE:  newInfoCommand(input),
		},
		&cobra.Command{
			Use:   "renovation",
			Short: "Cheapest set of lines to renovate that keeps every city connected",
			Args:  cobra.NoArgs,
			RunE:  newRenovationCommand(input),
		},
	)

	shortest := &cobra.Command{
		Use:   "shortest FROM TO",
		Short: "Shortest route by length, optionally avoiding a closed station",
		Args:  cobra.ExactArgs(2),
		RunE:  newShortestCommand(input),
	}
	shortest.Flags().StringVar(&input.avoid, "avoid", "", "station closed for works")

	fastest := &cobra.Command{
		Use:   "fastest FROM TO",
		Short: "Fastest route by travel time, optionally via a city",
		Args:  cobra.ExactArgs(2),
		RunE:  newFastestCommand(input),
	}
	fastest.Flags().StringVar(&input.via, "via", "", "intermediate city")

	crosscheck := &cobra.Command{
		Use:   "crosscheck",
		Short: "Compare Dijkstra and Bellman-Ford distances",
		Args:  cobra.NoArgs,
		RunE:  newCrossCheckCommand(input),
	}
	crosscheck.Flags().StringVar(&input.ewdPath, "ewd", "", "edge-weighted digraph file; the network is used when empty")
	crosscheck.Flags().IntVar(&input.source, "source", 0, "source vertex")
	crosscheck.Flags().StringVar(&input.by, "by", "length", "network weight: length or duration")

	rootCmd.AddCommand(shortest, fastest, crosscheck)

	return rootCmd
}

// setup loads the config and the network and returns a planner. Flags take
// precedence over the config file.
func (i *Input) setup() (*planner.Planner, *Config, error) {
	cfg, err := loadConfig(i.configPath)
	if err != nil {
		return nil, nil, err
	}
	path := i.networkPath
	if path == "" {
		path = i.resolve(cfg.Network)
	}
	if path == "" {
		return nil, nil, errors.New("no network: use --network or set network in the config file")
	}
	method := i.mstMethod
	if method == "" {
		method = cfg.MST
	}

	log.Debugf("Loading network from %s", path)
	n, err := network.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	opts := []planner.Option{planner.WithLogger(log.StandardLogger())}
	if method != "" {
		opts = append(opts, planner.WithMSTMethod(method))
	}
	p, err := planner.New(n, opts...)
	if err != nil {
		return nil, nil, err
	}

	return p, cfg, nil
}

func newInfoCommand(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		p, _, err := input.setup()
		if err != nil {
			return err
		}
		s, err := p.Summary()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s cities, %s lines, %s km, %d component(s)\n",
			humanize.Comma(int64(s.Cities)), humanize.Comma(int64(s.Lines)),
			humanize.Comma(int64(s.TotalLength)), s.Components)

		return nil
	}
}

func newRenovationCommand(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		p, cfg, err := input.setup()
		if err != nil {
			return err
		}
		costs, err := cfg.RenovationCosts()
		if err != nil {
			return err
		}
		r, err := p.CheapestRenovation(costs)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, l := range r.Lines {
			fmt.Fprintf(out, "%s - %s : %s MF\n", l.From, l.To, humanize.Commaf(l.Cost))
		}
		state := "connected"
		if !r.Connected {
			state = fmt.Sprintf("%d components", r.Components)
		}
		fmt.Fprintf(out, "\nTotal cost: %s MF (%d lines, %s)\n", humanize.Commaf(r.Total), len(r.Lines), state)

		return nil
	}
}

func newShortestCommand(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		p, _, err := input.setup()
		if err != nil {
			return err
		}
		var r *planner.Route
		if input.avoid != "" {
			r, err = p.ShortestRouteAvoiding(args[0], args[1], input.avoid)
		} else {
			r, err = p.ShortestRoute(args[0], args[1])
		}
		if err != nil {
			return err
		}
		printRoute(cmd.OutOrStdout(), "length", "km", r)

		return nil
	}
}

func newFastestCommand(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		p, _, err := input.setup()
		if err != nil {
			return err
		}
		var r *planner.Route
		if input.via != "" {
			r, err = p.FastestRouteVia(args[0], args[1], input.via)
		} else {
			r, err = p.FastestRoute(args[0], args[1])
		}
		if err != nil {
			return err
		}
		printRoute(cmd.OutOrStdout(), "time", "minutes", r)

		return nil
	}
}

func printRoute(out io.Writer, what, unit string, r *planner.Route) {
	fmt.Fprintf(out, "  %s = %s %s\n", what, humanize.Commaf(r.Total), unit)
	fmt.Fprintf(out, "  via %s\n", r)
}

func newCrossCheckCommand(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		var (
			g    core.View
			name string
		)
		if input.ewdPath != "" {
			d, err := ewd.LoadFile(input.ewdPath)
			if err != nil {
				return err
			}
			g, name = d, input.ewdPath
		} else {
			p, _, err := input.setup()
			if err != nil {
				return err
			}
			weight := network.ByLength
			switch input.by {
			case "length":
			case "duration":
				weight = network.ByDuration
			default:
				return errors.Errorf("--by must be length or duration, got %q", input.by)
			}
			v, err := network.NewView(p.Network(), weight, network.Directed())
			if err != nil {
				return err
			}
			g, name = v, "network by "+input.by
		}

		c, err := planner.CrossCheck(g, input.source, log.StandardLogger())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Testing %s (%s vertices)\n", name, humanize.Comma(int64(c.Vertices)))
		fmt.Fprintf(out, "Bellman-Ford: %v\n", c.BellmanFord)
		fmt.Fprintf(out, "Dijkstra: %v\n", c.Dijkstra)
		if !c.OK() {
			for _, m := range c.Mismatches {
				fmt.Fprintln(out, m)
			}
			return errors.Errorf("%d mismatches", len(c.Mismatches))
		}
		fmt.Fprintln(out, "Dijkstra and Bellman-Ford agree")

		return nil
	}
}
