package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdemtable/internal/config"
	"github.com/lox/holdemtable/internal/game"
	"github.com/lox/holdemtable/internal/randutil"
	"github.com/lox/holdemtable/internal/simulator"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1B5E20")).
			Padding(0, 1).
			Bold(true)
	phaseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#81D4FA")).Width(8)
	seatStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFF59D")).Width(10)
	amountStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A5D6A7"))
	winStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD54F")).Bold(true)
)

type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging."`

	Play     PlayCmd     `cmd:"" default:"withargs" help:"Auto-play hands at one table and print the transcript."`
	Simulate SimulateCmd `cmd:"" help:"Run many tables in parallel and report aggregate results."`
}

type PlayCmd struct {
	Config string `short:"c" default:"holdem-table.hcl" help:"HCL table configuration file."`
	Hands  int    `short:"n" default:"1" help:"Number of hands to play."`
	Seed   int64  `default:"0" help:"RNG seed (0 seeds from the current time)."`
}

type SimulateCmd struct {
	Tables int   `default:"4" help:"Tables to run in parallel."`
	Hands  int   `short:"n" default:"100" help:"Hands per table."`
	Seats  int   `default:"6" help:"Seats per table."`
	BuyIn  int   `default:"1000" help:"Per-seat buy-in."`
	Blinds int   `default:"10" help:"Small blind (big blind is twice this)."`
	Seed   int64 `default:"1" help:"RNG seed."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem-table"),
		kong.Description("Multi-seat Texas Hold'em table engine."))

	logger := log.New(os.Stderr)
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	var err error
	if ctx.Command() == "simulate" {
		err = cli.Simulate.Run(logger)
	} else {
		err = cli.Play.Run(logger, cli.Play.Seed)
	}
	if err != nil {
		log.Fatal("command failed", "error", err)
	}

	ctx.Exit(0)
}

// Run plays the configured table hand by hand, printing each accepted
// action as the table reports it.
func (c *PlayCmd) Run(logger *log.Logger, seed int64) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	tc := cfg.Tables[0]

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf(" ♠ ♥ %s — %d/%d blinds, %d buy-in ♦ ♣ ",
		tc.Name, tc.SmallBlind, tc.BigBlind, tc.BuyIn)))
	fmt.Println()

	opts := []game.TableOption{
		game.WithLogger(logger),
		game.WithActionHandler(func(ev game.ActionEvent) {
			line := fmt.Sprintf("%s %s %s",
				phaseStyle.Render(ev.Phase.String()),
				seatStyle.Render(ev.Seat),
				ev.Action)
			if ev.Amount > 0 {
				line += " " + amountStyle.Render(fmt.Sprintf("%d", ev.Amount))
			}
			fmt.Println(line)
		}),
	}
	if tc.TurnTimeoutSeconds > 0 {
		opts = append(opts, game.WithTurnTimeout(quartz.NewReal(),
			time.Duration(tc.TurnTimeoutSeconds)*time.Second))
	}

	table := game.NewTable(randutil.New(seed), tc.BuyIn, tc.SmallBlind, tc.BigBlind, opts...)

	seats := tc.Seats
	if len(seats) == 0 {
		seats = []string{"alice", "bob"}
	}
	for _, name := range seats {
		if err := table.SeatPlayer(name); err != nil {
			return err
		}
	}

	decisions := randutil.New(seed + 1)
	for hand := 1; hand <= c.Hands; hand++ {
		fmt.Printf("— hand %d, button %s —\n", hand, table.ButtonSeat())

		if err := table.StartGame(); err != nil {
			return err
		}
		if _, err := simulator.PlayHand(table, decisions, 10000); err != nil {
			return err
		}

		settlement, err := table.Settle()
		if err != nil {
			return err
		}
		fmt.Printf("%s community %v\n", phaseStyle.Render("showdown"), table.Community())
		for _, r := range settlement.Rankings {
			fmt.Printf("  %s %s\n", seatStyle.Render(r.Name), r.Score)
		}
		fmt.Printf("%s %v take %s\n\n",
			winStyle.Render("winners"), settlement.Winners,
			amountStyle.Render(fmt.Sprintf("%d", settlement.Pot)))

		if err := table.NextHand(); err != nil {
			return err
		}
	}

	for _, p := range table.Players() {
		fmt.Printf("%s stack %d\n", seatStyle.Render(p.Name), p.Stack)
	}
	return nil
}

// Run executes a multi-table simulation.
func (c *SimulateCmd) Run(logger *log.Logger) error {
	results, err := simulator.Run(context.Background(), simulator.Config{
		Tables:     c.Tables,
		Hands:      c.Hands,
		Seats:      c.Seats,
		BuyIn:      c.BuyIn,
		SmallBlind: c.Blinds,
		BigBlind:   c.Blinds * 2,
		Seed:       c.Seed,
	}, logger)
	if err != nil {
		return err
	}

	fmt.Printf("played %d hands (%d actions) across %d tables\n",
		results.Hands, results.Actions, c.Tables)
	for seat, wins := range results.Wins {
		fmt.Printf("  %s won %d hands\n", seatStyle.Render(seat), wins)
	}
	return nil
}
