package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"github.com/katalvlaran/secretsanta/export"
	"github.com/katalvlaran/secretsanta/matching"
	"github.com/katalvlaran/secretsanta/reveal"
	"github.com/katalvlaran/secretsanta/roster"
	"github.com/katalvlaran/secretsanta/storage"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("bad usage")
	ErrInterrupted    = errors.New("reveal interrupted")
)

const usage = `usage: secretsanta <command> [arguments]

commands:
  add NAME...                 add participants
  import [FILE|-]             add one participant per line (stdin by default)
  remove NAME                 remove a participant and their exclusions
  exclude GIVER RECEIVER      GIVER must not buy for RECEIVER
  unexclude GIVER RECEIVER    drop an exclusion
  list                        show participants and exclusions
  candidates                  show who each participant could draw
  draw [-format F] [-seed N] [-save] [-chains]
                              draw an assignment (F: table, json, csv)
  reveal [-id DRAW]           pass the device round, one giver at a time
  history                     list saved draws
  verify FILE                 check a JSON assignment against the roster
  reset                       forget every participant and exclusion
`

// App runs one command against a Store. Every command loads the roster first
// and mutating commands save it back before returning.
type App struct {
	config Config
	store  storage.Store
	log    *slog.Logger
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func NewApp(config Config, store storage.Store, log *slog.Logger, in io.Reader, out, errOut io.Writer) *App {
	return &App{config: config, store: store, log: log, in: in, out: out, errOut: errOut}
}

// Run dispatches args[0] to its command.
func (a *App) Run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.errOut, usage)
		return ErrUsage
	}

	cmd, rest := args[0], args[1:]
	a.log.Debug("Running command", "command", cmd, "args", rest)

	switch cmd {
	case "add":
		return a.add(rest)
	case "import":
		return a.importNames(rest)
	case "remove":
		return a.remove(rest)
	case "exclude":
		return a.exclude(rest)
	case "unexclude":
		return a.unexclude(rest)
	case "list":
		return a.list()
	case "candidates":
		return a.candidates()
	case "draw":
		return a.draw(rest)
	case "reveal":
		return a.reveal(rest)
	case "history":
		return a.history()
	case "verify":
		return a.verify(rest)
	case "reset":
		return a.reset()
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprint(a.errOut, usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

func (a *App) load() (*roster.Roster, error) {
	snap, err := a.store.Load()
	if err != nil {
		return nil, err
	}
	var opts []roster.Option
	if a.config.CaseInsensitive {
		opts = append(opts, roster.WithCaseInsensitive())
	}
	r := roster.New(opts...)
	if err := r.Restore(snap); err != nil {
		return nil, err
	}

	return r, nil
}

func (a *App) save(r *roster.Roster) error {
	return a.store.Save(r.Snapshot())
}

// mutate loads the roster, applies fn and saves the result if fn succeeded.
func (a *App) mutate(fn func(r *roster.Roster) error) error {
	r, err := a.load()
	if err != nil {
		return err
	}
	if err := fn(r); err != nil {
		return err
	}

	return a.save(r)
}

func (a *App) add(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: add NAME...", ErrUsage)
	}

	return a.mutate(func(r *roster.Roster) error {
		for _, name := range args {
			if err := r.Add(name); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Added %s\n", strings.TrimSpace(name))
		}
		return nil
	})
}

func (a *App) importNames(args []string) error {
	var src io.Reader = a.in
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}

	return a.mutate(func(r *roster.Roster) error {
		n, err := r.Import(string(data))
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Imported %d participant(s)\n", n)
		return nil
	})
}

func (a *App) remove(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: remove NAME", ErrUsage)
	}

	return a.mutate(func(r *roster.Roster) error {
		return r.Remove(args[0])
	})
}

func (a *App) exclude(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: exclude GIVER RECEIVER", ErrUsage)
	}

	return a.mutate(func(r *roster.Roster) error {
		return r.AddExclusion(args[0], args[1])
	})
}

func (a *App) unexclude(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: unexclude GIVER RECEIVER", ErrUsage)
	}

	return a.mutate(func(r *roster.Roster) error {
		return r.RemoveExclusion(args[0], args[1])
	})
}

func (a *App) list() error {
	r, err := a.load()
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, export.Headline(fmt.Sprintf("Participants (%d)", r.Len()), a.config.Colours))
	for _, name := range r.Participants() {
		fmt.Fprintf(a.out, "  %s\n", name)
	}
	exclusions := r.Exclusions()
	if len(exclusions) == 0 {
		return nil
	}
	fmt.Fprintln(a.out, export.Headline("Exclusions", a.config.Colours))
	for _, ex := range exclusions {
		fmt.Fprintf(a.out, "  %s ✗ %s\n", ex.Giver, ex.Receiver)
	}

	return nil
}

// candidates prints every giver's legal receivers. A "(nobody)" row is the
// giver a ParticipantError would name.
func (a *App) candidates() error {
	r, err := a.load()
	if err != nil {
		return err
	}
	if r.Len() == 0 {
		fmt.Fprintln(a.out, "No participants")
		return nil
	}
	sets, err := matching.Candidates(r.Participants(), r.Exclusions())
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(a.out)
	table.SetHeader([]string{"Giver", "Can draw"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	for _, set := range sets {
		receivers := strings.Join(set.Receivers, ", ")
		if receivers == "" {
			receivers = "(nobody)"
		}
		table.Append([]string{set.Giver, receivers})
	}
	table.Render()

	return nil
}

func (a *App) drawOptions(seed int64, seeded bool) []matching.Option {
	var opts []matching.Option
	if seeded {
		opts = append(opts, matching.WithSeed(seed))
	}
	if a.config.MaxSteps > 0 {
		opts = append(opts, matching.WithMaxSteps(a.config.MaxSteps))
	}
	if a.config.TimeLimit > 0 {
		opts = append(opts, matching.WithTimeLimit(a.config.TimeLimit))
	}

	return opts
}

func (a *App) draw(args []string) error {
	fs := flag.NewFlagSet("draw", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	formatName := fs.String("format", a.config.Format, "output format: table, json or csv")
	seed := fs.Int64("seed", 0, "seed for a reproducible draw")
	save := fs.Bool("save", false, "keep the draw in history")
	chains := fs.Bool("chains", false, "also print the gift chains")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	format, err := export.ParseFormat(*formatName)
	if err != nil {
		return err
	}
	seeded := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seeded = true
		}
	})

	r, err := a.load()
	if err != nil {
		return err
	}
	pairs, err := r.Draw(a.drawOptions(*seed, seeded)...)
	if err != nil {
		var pe *matching.ParticipantError
		if errors.As(err, &pe) {
			a.log.Info("Draw blocked", "giver", pe.Giver)
		}
		return err
	}
	a.log.Info("Draw complete", "pairs", len(pairs))

	if err := export.Write(a.out, pairs, format, export.Options{Colour: a.config.Colours}); err != nil {
		return err
	}
	if *chains {
		for _, c := range pairs.Chains() {
			fmt.Fprintln(a.errOut, strings.Join(append(c, c[0]), " → "))
		}
	}
	if *save {
		d := storage.NewDraw(pairs)
		if err := a.store.SaveDraw(d); err != nil {
			return err
		}
		fmt.Fprintf(a.errOut, "Saved draw %s\n", d.ID)
	}

	return nil
}

// reveal shows one pair at a time, waiting for Enter between steps. Without
// -id the most recent saved draw is used.
func (a *App) reveal(args []string) error {
	fs := flag.NewFlagSet("reveal", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	id := fs.String("id", "", "draw to reveal (default: latest)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	d, err := a.pickDraw(*id)
	if err != nil {
		return err
	}

	s := reveal.NewSession(d.Pairs)
	in := bufio.NewScanner(a.in)
	for s.Step() != reveal.Finished {
		p, step := s.Current()
		switch step {
		case reveal.Handoff:
			fmt.Fprintf(a.out, "Pass the device to %s and press Enter (%d left)\n", p.Giver, s.Remaining())
			if err := waitForEnter(in, s); err != nil {
				return err
			}
			if err := s.Reveal(); err != nil {
				return err
			}
		case reveal.Revealed:
			fmt.Fprintln(a.out, export.ShareMessage(p))
			fmt.Fprintln(a.out, "Press Enter to hide")
			if err := waitForEnter(in, s); err != nil {
				return err
			}
			fmt.Fprint(a.out, strings.Repeat("\n", 40))
			if err := s.Next(); err != nil {
				return err
			}
		}
	}
	fmt.Fprintln(a.out, "Everyone knows who they are buying for 🎁")

	return nil
}

// waitForEnter reads one line. Running out of input before the session is
// finished is an error, so an incomplete reveal never exits cleanly.
func waitForEnter(in *bufio.Scanner, s *reveal.Session) error {
	if in.Scan() {
		return nil
	}
	if err := in.Err(); err != nil {
		return err
	}

	return fmt.Errorf("%w: %d giver(s) have not seen their receiver", ErrInterrupted, s.Remaining())
}

func (a *App) pickDraw(id string) (storage.Draw, error) {
	if id != "" {
		return a.store.LoadDraw(id)
	}
	draws, err := a.store.ListDraws()
	if err != nil {
		return storage.Draw{}, err
	}
	last, ok := lo.Last(draws)
	if !ok {
		return storage.Draw{}, fmt.Errorf("%w: no saved draws, run draw -save first", storage.ErrDrawNotFound)
	}

	return last, nil
}

func (a *App) history() error {
	draws, err := a.store.ListDraws()
	if err != nil {
		return err
	}
	if len(draws) == 0 {
		fmt.Fprintln(a.out, "No saved draws")
		return nil
	}

	table := tablewriter.NewWriter(a.out)
	table.SetHeader([]string{"ID", "Created", "Pairs"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	for _, d := range draws {
		table.Append([]string{d.ID, d.CreatedAt.Local().Format("2006-01-02 15:04"), fmt.Sprint(len(d.Pairs))})
	}
	table.Render()

	return nil
}

func (a *App) verify(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: verify FILE", ErrUsage)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	pairs, err := export.ReadJSON(f)
	if err != nil {
		return err
	}
	r, err := a.load()
	if err != nil {
		return err
	}
	if err := matching.Verify(r.Participants(), r.Exclusions(), pairs); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "OK: %d pairs are valid for the current roster\n", len(pairs))

	return nil
}

func (a *App) reset() error {
	return a.mutate(func(r *roster.Roster) error {
		r.Reset()
		fmt.Fprintln(a.out, "Roster cleared")
		return nil
	})
}
