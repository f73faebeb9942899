package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-evasion/internal/audio"
	"github.com/vovakirdan/space-evasion/internal/config"
	"github.com/vovakirdan/space-evasion/internal/platform/tui"
	"github.com/vovakirdan/space-evasion/internal/session"
	"github.com/vovakirdan/space-evasion/internal/storage"
)

var (
	flagDifficulty  string
	flagWidth       float64
	flagHeight      float64
	flagSeed        int64
	flagTickRate    int
	flagFPS         int
	flagMute        bool
	flagLogFile     string
	flagDebugLogic  bool
	flagDebugRender bool
	flagDebugInput  bool
	flagDebugAudio  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start a game of Space Evasion.

Controls:
  Arrows/WASD  - Move (two keys for diagonals)
  Space        - Fire in the direction you face
  P/Esc        - Pause
  Q/Ctrl+C     - Quit

Difficulty options:
  easy    - Starting difficulty 1
  normal  - Starting difficulty 2
  hard    - Starting difficulty 3
  insane  - Starting difficulty 4

Examples:
  evasion play
  evasion play --difficulty insane
  evasion play --seed 42 --mute
  evasion play --debug-logic --log-file ./evasion.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	// menu starts the same sessions, so it takes the same flags.
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		f := c.Flags()
		f.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, insane")
		f.Float64Var(&flagWidth, "width", 0, "Playfield width in world units (0 = config)")
		f.Float64Var(&flagHeight, "height", 0, "Playfield height in world units (0 = config)")
		f.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
		f.IntVar(&flagTickRate, "tick-rate", 0, "Simulation ticks per second (0 = config)")
		f.IntVar(&flagFPS, "fps", 0, "Render frames per second (0 = config)")
		f.BoolVar(&flagMute, "mute", false, "Disable sound and music")
		f.StringVar(&flagLogFile, "log-file", "~/.evasion/evasion.log", "Log file path")
		f.BoolVar(&flagDebugLogic, "debug-logic", false, "Debug logging for the simulation loop")
		f.BoolVar(&flagDebugRender, "debug-render", false, "Debug logging and fps overlay for the render loop")
		f.BoolVar(&flagDebugInput, "debug-input", false, "Debug logging for the input loop")
		f.BoolVar(&flagDebugAudio, "debug-audio", false, "Debug logging for audio")
	}
}

func runPlay(cmd *cobra.Command, _ []string) error {
	g, err := openGame()
	if err != nil {
		return err
	}
	defer g.Close()

	name := flagDifficulty
	if name == "" {
		name = g.cfg.Difficulty.Preset
	}
	preset, err := config.ParsePreset(name)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := g.play(ctx, preset); err != nil {
		return err
	}

	if best, err := g.store.HighScore(string(preset)); err == nil && best > 0 {
		fmt.Printf("Best on %s: %d\n", preset, best)
	}
	return nil
}

// game holds what every session started by one command shares.
type game struct {
	cfg     config.EvasionConfig
	logger  *log.Logger
	logFile *os.File
	store   *storage.Store
	sink    audio.Sink
	music   audio.Music
}

// openGame loads the config, applies flag overrides and opens the log file
// and the run history.
func openGame() (*game, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	applyOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		return nil, err
	}
	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		Prefix:          "evasion",
	})

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logFile.Close()
		return nil, err
	}
	g := &game{cfg: cfg, logger: logger, logFile: logFile, store: store}
	g.sink, g.music = startAudio(&g.cfg, logger)
	return g, nil
}

func (g *game) Close() {
	if synth, ok := g.sink.(*audio.Synth); ok {
		synth.Close()
	}
	if err := g.store.Close(); err != nil {
		g.logger.Warn("cannot close run history", "error", err)
	}
	g.logFile.Close()
}

// play runs one session at the given preset until the player leaves.
func (g *game) play(ctx context.Context, preset config.DifficultyPreset) error {
	cfg := g.cfg
	config.ApplyPreset(&cfg, preset)

	cols, rows := terminalSize()
	terminal := tui.NewTerminal(cols, rows)

	sess, err := session.New(session.Options{
		Config:   cfg,
		Preset:   preset,
		Seed:     flagSeed,
		Input:    terminal.Keys(),
		Surface:  terminal,
		Prompter: terminal,
		Sink:     g.sink,
		Music:    g.music,
		Runs:     g.store,
		Logger:   g.logger,
		Debug: session.Debug{
			Logic:  flagDebugLogic,
			Input:  flagDebugInput,
			Render: flagDebugRender,
			Audio:  flagDebugAudio,
		},
	})
	if err != nil {
		return err
	}
	return terminal.Run(ctx, sess.Run)
}

func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// applyOverrides copies explicitly set flags over the loaded config.
func applyOverrides(cfg *config.EvasionConfig) {
	if flagWidth > 0 {
		cfg.Playfield.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Playfield.Height = flagHeight
	}
	if flagTickRate > 0 {
		cfg.Simulation.TickRate = flagTickRate
	}
	if flagFPS > 0 {
		cfg.Render.FrameRate = flagFPS
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
}

// startAudio opens the speaker. Failures log a warning and disable audio
// for the session.
func startAudio(cfg *config.EvasionConfig, logger *log.Logger) (audio.Sink, audio.Music) {
	if !cfg.Audio.Enabled {
		return audio.Nop{}, audio.Nop{}
	}
	synth := audio.NewSynth(cfg.Audio, logger.WithPrefix("audio"))
	if err := synth.Initialize(); err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
		cfg.Audio.Enabled = false
		return audio.Nop{}, audio.Nop{}
	}
	return synth, synth
}

func openLogFile(path string) (*os.File, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}
