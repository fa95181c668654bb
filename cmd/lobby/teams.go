package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/custom-lobby/internal/entities/lol"
	"github.com/KirkDiggler/custom-lobby/internal/errors"
	"github.com/KirkDiggler/custom-lobby/internal/orchestrators/teams"
)

const (
	fairnessPrompt = `
Enter a number for how roughly skilled the teams should be, higher is more fair.
If regenerations keep giving the same teams, decrease the fairness number.
Recommended fairness:
  Rough      player count times 1 or 2
  Fair       player count times 3 to 5
  "Perfect"  100 or more
Enter fairness [%d]: `

	firstPlayerPrompt = "\nEnter player information as such `summoner name, ranked rank, level`\nExample:\n`daisy go bonk, platinum 4, 522`: "
	nextPlayerPrompt  = "Enter new player (enter q to end input): "
	endOfPlayers      = "q"
)

func newTeamsCmd(opts *options, d deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "Split entered players into two balanced teams",
		Long: `Read players from standard input, one "name, rank, level" record per line,
until a line containing only q. The split with the smallest level difference
over --fairness shuffles is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTeams(cmd, opts, d)
		},
	}
	addTeamsFlags(cmd, opts)
	return cmd
}

func runTeams(cmd *cobra.Command, opts *options, d deps) error {
	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	fairness := opts.cfg.Fairness
	if !changed(cmd, "fairness") {
		var err error
		if fairness, err = promptFairness(in, out, fairness); err != nil {
			return err
		}
	}

	players, err := promptPlayers(in, out)
	if err != nil {
		return err
	}

	svc, err := newTeamsService(d)
	if err != nil {
		return err
	}

	result, err := svc.FormTeams(cmd.Context(), &teams.FormTeamsInput{
		Players:  players,
		Fairness: fairness,
	})
	if err != nil {
		return err
	}

	newView(out).teams(result.TeamSet)
	return nil
}

// promptFairness asks until it gets a positive whole number. An empty answer
// keeps fallback.
func promptFairness(in *bufio.Scanner, out io.Writer, fallback int) (int, error) {
	for {
		fmt.Fprintf(out, fairnessPrompt, fallback)

		line, err := readLine(in)
		if errors.IsNotFound(err) {
			return 0, errors.WrapWithCode(err, errors.CodeInvalidArgument, "no fairness entered")
		}
		if err != nil {
			return 0, errors.Wrap(err, "failed to read fairness")
		}
		if line == "" {
			return fallback, nil
		}

		fairness, err := strconv.Atoi(line)
		if err != nil || fairness < 1 {
			fmt.Fprintf(out, "Invalid fairness %q, enter a whole number of at least 1\n", line)
			continue
		}
		return fairness, nil
	}
}

// promptPlayers reads records until q or end of input. Bad records are
// reported and skipped.
func promptPlayers(in *bufio.Scanner, out io.Writer) ([]*lol.Player, error) {
	var players []*lol.Player

	fmt.Fprint(out, firstPlayerPrompt)
	for {
		line, err := readLine(in)
		if errors.IsNotFound(err) {
			fmt.Fprintln(out)
			return players, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read players")
		}

		switch {
		case strings.EqualFold(line, endOfPlayers):
			return players, nil
		case line == "":
		default:
			player, err := lol.ParsePlayer(line)
			if err != nil {
				fmt.Fprintf(out, "\nInvalid player %q: %s\nTry again please!\n\n", line, describe(err))
				break
			}
			players = append(players, player)
			slog.Debug("Player entered", "summoner", player.SummonerName, "level", player.Level)
		}

		fmt.Fprint(out, nextPlayerPrompt)
	}
}

// readLine returns the next trimmed line, or a NotFound error at end of input.
func readLine(in *bufio.Scanner) (string, error) {
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", errors.Unavailablef("failed to read input: %v", err)
		}
		return "", errors.NotFound("no more input")
	}
	return strings.TrimSpace(in.Text()), nil
}

// describe flattens validation field errors into one line
func describe(err error) string {
	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	if !ok || len(fields) == 0 {
		return errors.GetMessage(err)
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+strings.Join(fields[name], ", "))
	}
	return strings.Join(parts, "; ")
}
