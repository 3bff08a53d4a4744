package global

import (
	"encoding/json"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/zerologr"
	"github.com/lflygare/wildfray/fray"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

type GlobalConfig struct {
	SaveLocation string
	PlayerName   string
	Debug        bool
}

var (
	TERM_WIDTH, TERM_HEIGHT, _ = term.GetSize(int(os.Stdout.Fd()))

	SelectKey = key.NewBinding(
		key.WithKeys("enter"),
	)
	MoveLeftKey = key.NewBinding(
		key.WithKeys("left", "h"),
	)
	MoveRightKey = key.NewBinding(
		key.WithKeys("right", "l"),
	)
	MoveDownKey = key.NewBinding(
		key.WithKeys("down", "j"),
	)
	MoveUpKey = key.NewBinding(
		key.WithKeys("up", "k"),
	)

	BackKey = key.NewBinding(key.WithKeys(tea.KeyEsc.String()))

	Opt = GlobalConfig{
		SaveLocation: "",
		PlayerName:   "Player",
	}

	// REGISTRY holds all loaded creature/move/chart data
	REGISTRY *fray.Registry

	// Global RNG that can be swapped out for testing purposes
	FrayRand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	previousLevel zerolog.Level
)

// GlobalInit reads (or creates) the config file, wires up logging, and
// loads the embedded game data. Call once before starting the UI.
func GlobalInit(files fs.FS, shouldLog bool) error {
	configDir := DefaultConfigDir()
	configFilepath := DefaultConfigLocation()

	// Basic logging until the real logger exists
	initLogger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	if err := os.MkdirAll(configDir, 0750); err != nil {
		initLogger.Err(err).Msg("error occurred trying to create config dir")
	}

	configContents, err := os.ReadFile(configFilepath)
	if err != nil {
		if _, err := os.Create(configFilepath); err != nil {
			initLogger.Err(err).Msg("error occurred while trying to create config file")
		}
	}

	if len(configContents) > 0 {
		newOpts := GlobalConfig{}
		if err := json.Unmarshal(configContents, &newOpts); err != nil {
			initLogger.Err(err).Msg("error occurred while trying to read config file")
		} else {
			Opt = populateConfig(newOpts)
		}
	} else {
		config := populateConfig(GlobalConfig{})
		if err := SaveConfig(config); err != nil {
			initLogger.Err(err).Msg("error occurred while trying to write default config values")
		}

		Opt = config
	}

	level := zerolog.InfoLevel
	if Opt.Debug {
		level = zerolog.DebugLevel
	}

	log.Logger = createLogger(configDir, level)
	if !shouldLog {
		log.Logger = zerolog.Nop()
	}

	// bridge the app logger into the battle engine
	fray.SetInternalLogger(zerologr.New(&log.Logger))

	registry, err := loadData(files)
	if err != nil {
		return err
	}

	REGISTRY = registry

	return nil
}

func populateConfig(config GlobalConfig) GlobalConfig {
	if config.SaveLocation == "" {
		config.SaveLocation = filepath.Join(DefaultConfigDir(), "saves")
	}

	if config.PlayerName == "" {
		config.PlayerName = "Player"
	}

	return config
}

func createLogger(configDir string, level zerolog.Level) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout}
	fileWriter := zerolog.ConsoleWriter{Out: NewRollingFileWriter(filepath.Join(configDir, "logs"), "wildfray")}

	return zerolog.New(zerolog.MultiLevelWriter(consoleWriter, fileWriter)).With().Timestamp().Logger().Level(level)
}

func loadData(files fs.FS) (*fray.Registry, error) {
	creatureBytes, err := fs.ReadFile(files, "data/creatures.json")
	if err != nil {
		return nil, err
	}

	moveBytes, err := fs.ReadFile(files, "data/moves.json")
	if err != nil {
		return nil, err
	}

	learnsetBytes, err := fs.ReadFile(files, "data/learnsets.json")
	if err != nil {
		return nil, err
	}

	chartBytes, err := fs.ReadFile(files, "data/typechart.json")
	if err != nil {
		return nil, err
	}

	registry, err := fray.NewRegistry(creatureBytes, moveBytes, learnsetBytes, chartBytes)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("creatures", len(registry.Creatures)).
		Int("moves", len(registry.Moves)).
		Msg("loaded game data")

	return registry, nil
}

// StopLogging silences the global logger, mostly so tests don't spew.
func StopLogging() {
	previousLevel = log.Logger.GetLevel()
	log.Logger = log.Logger.Level(zerolog.Disabled)
}

func ContinueLogging() {
	log.Logger = log.Logger.Level(previousLevel)
}

// ForceRng swaps the global RNG for a fixed source.
func ForceRng(source rand.Source) {
	FrayRand = rand.New(source)
}

func SetNormalRng() {
	FrayRand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
