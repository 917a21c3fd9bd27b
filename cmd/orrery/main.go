package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/export"
	"github.com/san-kum/orrery/internal/gui"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/storage"
	"github.com/san-kum/orrery/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	timeScale  float64
	frames     int
	plotBody   string
	component  string
	outFile    string
)

// loadConfig resolves the effective configuration: preset, then config
// file, then flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("scale") {
		cfg.Sim.TimeScale = timeScale
	}
	if cmd.Flags().Changed("data") {
		cfg.DataDir = dataDir
	}

	return cfg, cfg.Validate()
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "orrery",
		Short: "interactive 3D solar system",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			reg, err := catalog.NewRegistry()
			if err != nil {
				return err
			}
			gui.Run(cfg, reg)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orrery", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Float64Var(&timeScale, "scale", 1.0, "time scale (simulated days per frame)")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal orbit view",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			reg, err := catalog.NewRegistry()
			if err != nil {
				return err
			}
			return tui.Run(cfg, reg)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "record a headless session",
		RunE:  runSession,
	}
	runCmd.Flags().IntVar(&frames, "frames", 365, "number of frames to record")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded sessions",
		RunE:  listSessions,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [session_id]",
		Short: "plot a recorded body coordinate",
		Args:  cobra.ExactArgs(1),
		RunE:  plotSession,
	}
	plotCmd.Flags().StringVar(&plotBody, "body", "Earth", "body to plot")
	plotCmd.Flags().StringVar(&component, "component", "x", "coordinate: x, z or spin")

	exportCmd := &cobra.Command{
		Use:   "export [session_id]",
		Short: "export a session to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSession,
	}
	exportCmd.Flags().StringVar(&outFile, "out", "", "output file (stdout if empty)")

	svgCmd := &cobra.Command{
		Use:   "svg [session_id]",
		Short: "render a session's orbit paths to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  svgSession,
	}
	svgCmd.Flags().StringVar(&outFile, "out", "orbits.svg", "output file")

	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "show the body catalog",
		RunE:  showCatalog,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list configuration presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("%-10s time scale x%-6.3g grid=%v\n", name, p.Sim.TimeScale, p.Window.Grid)
			}
			return nil
		},
	}

	rootCmd.AddCommand(tuiCmd, runCmd, listCmd, plotCmd, exportCmd, svgCmd, catalogCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", frames)
	}

	reg, err := catalog.NewRegistry()
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}

	stepper := orbit.NewStepper(cfg.Sim.TimeScale)
	track := storage.NewTrack(reg.Names())
	for i := 0; i < frames; i++ {
		stepper.Advance(reg)
		track.Append(stepper.Frames(), orbit.States(reg))
	}

	sessionID, err := st.Save(cfg.Sim.TimeScale, track)
	if err != nil {
		return err
	}

	fmt.Printf("session id: %s\n", sessionID)
	fmt.Printf("frames: %d (x%g days each)\n", frames, cfg.Sim.TimeScale)
	return nil
}

func listSessions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir)
	sessions, err := st.List()
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("no sessions found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tFRAMES\tSCALE\tBODIES")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.3g\t%d\n",
			s.ID,
			s.Timestamp.Format("2006-01-02 15:04:05"),
			s.Frames,
			s.TimeScale,
			len(s.Bodies),
		)
	}
	return w.Flush()
}

func plotSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir)
	track, err := st.LoadTrack(args[0])
	if err != nil {
		return err
	}
	if len(track.Rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	bodyIdx := -1
	for i, name := range track.Bodies {
		if name == plotBody {
			bodyIdx = i
			break
		}
	}
	if bodyIdx < 0 {
		return fmt.Errorf("body %q not in session (have %v)", plotBody, track.Bodies)
	}

	var comp int
	switch component {
	case "x":
		comp = 0
	case "z":
		comp = 1
	case "spin":
		comp = 2
	default:
		return fmt.Errorf("unknown component %q (want x, z or spin)", component)
	}

	data := track.Column(bodyIdx, comp)
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s %s vs frame", plotBody, component)),
	)
	fmt.Println(graph)
	return nil
}

func exportSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	track, err := st.LoadTrack(args[0])
	if err != nil {
		return err
	}

	if outFile != "" {
		return storage.ExportJSON(outFile, meta.TimeScale, track)
	}
	return storage.ExportJSONStdout(meta.TimeScale, track)
}

func svgSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir)
	track, err := st.LoadTrack(args[0])
	if err != nil {
		return err
	}

	svg := export.OrbitsToSVG(track, 1000, 1000)
	if svg == "" {
		return fmt.Errorf("session %s has too little data to render", args[0])
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func showCatalog(cmd *cobra.Command, args []string) error {
	reg, err := catalog.NewRegistry()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDISTANCE (AU)\tMASS (kg)\tDENSITY (kg/m3)\tROTATION\tORBIT (rev/day)")
	reg.Each(func(b *body.Body) {
		orbitCol := "n/a"
		if !b.Central() {
			orbitCol = fmt.Sprintf("%.6f", b.OrbitalSpeed)
		}
		fmt.Fprintf(w, "%s\t%.2f\t%.3e\t%.0f\t%.4f\t%s\n",
			b.Name,
			b.Distance/(body.AU*body.DistanceScale),
			b.Mass,
			b.Density,
			b.RotationSpeed,
			orbitCol,
		)
	})
	return w.Flush()
}
