package main

import (
	"fmt"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/mazewalk/internal/config"
	"github.com/san-kum/mazewalk/internal/maze"
	"github.com/san-kum/mazewalk/internal/tui"
	"github.com/san-kum/mazewalk/internal/walker"
)

var (
	layoutName string
	layoutFile string
	moves      string
	allFrames  bool
	verbose    bool
)

// main registers commands and flags; the bare command launches the
// interactive walker, subcommands cover scripted runs and layout tooling.
func main() {
	rootCmd := &cobra.Command{
		Use:   "mazewalk",
		Short: "interactive maze walker",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, name, err := newSession(nil)
			if err != nil {
				return err
			}
			return tui.Run(sess, name)
		},
	}

	rootCmd.PersistentFlags().StringVar(&layoutName, "layout", "classic", "built-in layout name")
	rootCmd.PersistentFlags().StringVar(&layoutFile, "config", "", "layout file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log transitions to stderr")

	walkCmd := &cobra.Command{
		Use:   "walk",
		Short: "run a scripted walk",
		RunE:  runWalk,
	}
	walkCmd.Flags().StringVar(&moves, "moves", "", "move script, one letter per step (UDLR)")
	walkCmd.Flags().BoolVar(&allFrames, "frames", false, "print a frame after every step")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "print the starting frame",
		RunE:  runShow,
	}

	layoutsCmd := &cobra.Command{
		Use:   "layouts",
		Short: "list built-in layouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListLayouts() {
				l := config.GetLayout(name)
				fmt.Printf("%-10s %dx%d\n", name, len(l.Rows[0]), len(l.Rows))
			}
			return nil
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "check a layout file",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "plot distance from start over a scripted walk",
		RunE:  runTrace,
	}
	traceCmd.Flags().StringVar(&moves, "moves", "", "move script, one letter per step (UDLR)")

	exportCmd := &cobra.Command{
		Use:   "export [name]",
		Short: "print a built-in layout as yaml",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}

	rootCmd.AddCommand(walkCmd, showCmd, layoutsCmd, validateCmd, traceCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadLayout() (*config.Layout, error) {
	if layoutFile != "" {
		return config.Load(layoutFile)
	}
	l := config.GetLayout(layoutName)
	if l == nil {
		return nil, fmt.Errorf("unknown layout: %s (available: %v)", layoutName, config.ListLayouts())
	}
	return l, nil
}

func newSession(sink walker.Sink) (*walker.Session, string, error) {
	l, err := loadLayout()
	if err != nil {
		return nil, "", err
	}
	grid, err := l.Grid()
	if err != nil {
		return nil, "", err
	}

	opts := []walker.Option{walker.WithRenderOptions(l.Options())}
	if sink != nil {
		opts = append(opts, walker.WithSink(sink))
	}
	if verbose {
		log := logrus.New()
		log.SetOutput(os.Stderr)
		log.SetLevel(logrus.DebugLevel)
		opts = append(opts, walker.WithLogger(log))
	}

	sess, err := walker.New(grid, opts...)
	if err != nil {
		return nil, "", err
	}
	return sess, l.Name, nil
}

func runWalk(cmd *cobra.Command, args []string) error {
	var sink walker.Sink
	if allFrames {
		sink = walker.NewWriterSink(os.Stdout)
	}

	sess, _, err := newSession(sink)
	if err != nil {
		return err
	}

	for _, in := range walker.ParseMoves(moves) {
		sess.Apply(in)
	}

	if !allFrames {
		fmt.Println(sess.Frame())
		fmt.Println()
	}

	p := sess.Player()
	tr := sess.Trace()
	fmt.Printf("position: (%d, %d)\n", p.Pos.X, p.Pos.Y)
	fmt.Printf("facing: %s\n", p.Facing)
	fmt.Printf("steps: %d  bumps: %d  visited: %d\n", tr.Moves(), tr.Blocked(), tr.Visited())

	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	sess, name, err := newSession(nil)
	if err != nil {
		return err
	}
	fmt.Printf("layout: %s\n\n", name)
	fmt.Println(sess.Frame())
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	l, err := config.Load(args[0])
	if err != nil {
		return err
	}

	grid, err := l.Grid()
	if err != nil {
		return fmt.Errorf("layout %q: %w", l.Name, err)
	}

	start, err := maze.FindStart(grid)
	if err != nil {
		return fmt.Errorf("layout %q: %w", l.Name, err)
	}

	fmt.Printf("ok: %dx%d grid, start at (%d, %d)\n", grid.Width(), grid.Height(), start.X, start.Y)
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	sess, name, err := newSession(nil)
	if err != nil {
		return err
	}

	for _, in := range walker.ParseMoves(moves) {
		sess.Apply(in)
	}

	tr := sess.Trace()
	data := tr.Distances()
	if len(data) == 0 {
		fmt.Println("no recognized moves")
		return nil
	}

	fmt.Printf("trace: %s (%d inputs)\n\n", name, len(data))
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("distance from start per step"),
	)
	fmt.Println(graph)
	fmt.Println()
	fmt.Printf("steps: %d  bumps: %d  visited: %d\n", tr.Moves(), tr.Blocked(), tr.Visited())

	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	l := config.GetLayout(args[0])
	if l == nil {
		return fmt.Errorf("unknown layout: %s (available: %v)", args[0], config.ListLayouts())
	}

	data, err := yaml.Marshal(l)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
