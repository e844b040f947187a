package cmd

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/attachprop/internal/logging"
	"github.com/bnema/attachprop/pkg/attached"
)

const (
	defaultGCOwners = 10000
	gcWaitTimeout   = 2 * time.Second
	gcPollInterval  = 10 * time.Millisecond
)

var (
	gcOwners int
	gcKeep   int
)

var gcCmd = &cobra.Command{
	Use:   "gc",
	Short: "Show that attached values do not keep their owners alive",
	Long: `Attach a value to N throwaway owners, drop every owner except --keep of them,
force garbage collection and report the store size before and after.

Entries of collected owners are removed by runtime cleanups; whatever is
left is swept with Prune.`,
	Args: cobra.NoArgs,
	RunE: runGC,
}

func init() {
	rootCmd.AddCommand(gcCmd)

	gcCmd.Flags().IntVar(&gcOwners, "owners", defaultGCOwners, "number of throwaway owners")
	gcCmd.Flags().IntVar(&gcKeep, "keep", 0, "number of owners kept reachable")
}

// throwaway is a stand-in for a native UI object.
type throwaway struct {
	id    int
	label string
}

// gcReport is the outcome of a collection run.
type gcReport struct {
	Before  int
	After   int
	Pruned  int
	Elapsed time.Duration
}

func runGC(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	if gcOwners < 0 || gcKeep < 0 || gcKeep > gcOwners {
		return fmt.Errorf("invalid owner counts: --owners %d --keep %d", gcOwners, gcKeep)
	}

	props := attached.New(
		attached.WithStore(app.NewStore()),
		attached.WithLogger(*logging.FromContext(app.Ctx())),
	)

	kept, err := attachOwners(props, gcOwners, gcKeep)
	if err != nil {
		return err
	}
	report := collect(props.Store(), gcKeep)
	runtime.KeepAlive(kept)

	logging.FromContext(app.Ctx()).Debug().
		Int("created", gcOwners).
		Int("after", report.After).
		Dur("elapsed", report.Elapsed).
		Msg("gc run finished")

	out := cmd.OutOrStdout()
	theme := app.Theme
	fmt.Fprintln(out, theme.Title.Render("attached store lifetime"))
	fmt.Fprintf(out, "  owners created   %d\n", gcOwners)
	fmt.Fprintf(out, "  owners kept      %d\n", gcKeep)
	fmt.Fprintf(out, "  entries before   %d\n", report.Before)
	fmt.Fprintf(out, "  entries after    %d\n", report.After)
	fmt.Fprintf(out, "  swept by prune   %d\n", report.Pruned)
	fmt.Fprintf(out, "  elapsed          %s\n", report.Elapsed.Round(time.Millisecond))
	if report.After == gcKeep {
		fmt.Fprintln(out, theme.SuccessStyle.Render("only reachable owners keep entries"))
	} else {
		fmt.Fprintln(out, theme.WarningStyle.Render("some entries outlived their owners; cleanups may still be pending"))
	}
	return nil
}

// attachOwners sets a property on n new owners and returns the first keep of
// them. The rest become unreachable when it returns.
//
//go:noinline
func attachOwners(props *attached.Properties, n, keep int) ([]*throwaway, error) {
	kept := make([]*throwaway, 0, keep)
	for i := range n {
		o := &throwaway{id: i, label: fmt.Sprintf("owner-%d", i)}
		if err := props.SetValue(o, "Index", i); err != nil {
			return nil, err
		}
		if i < keep {
			kept = append(kept, o)
		}
	}
	return kept, nil
}

// collect forces collections until the store shrinks to want entries or the
// wait times out, then prunes what is left.
func collect(store *attached.Store, want int) gcReport {
	r := gcReport{Before: store.Len()}
	start := time.Now()

	deadline := start.Add(gcWaitTimeout)
	for store.Len() > want && time.Now().Before(deadline) {
		runtime.GC()
		time.Sleep(gcPollInterval)
	}

	r.Pruned = store.Prune()
	r.After = store.Len()
	r.Elapsed = time.Since(start)
	return r
}
