package global

import (
	"math/rand/v2"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestStopAndContinueLogging(t *testing.T) {
	log.Logger = log.Logger.Level(zerolog.InfoLevel)

	StopLogging()
	if got := log.Logger.GetLevel(); got != zerolog.Disabled {
		t.Fatalf("expected logging to be disabled, got level %s", got)
	}

	ContinueLogging()
	if got := log.Logger.GetLevel(); got != zerolog.InfoLevel {
		t.Fatalf("expected the previous level back, got %s", got)
	}
}

func TestForceRngIsDeterministic(t *testing.T) {
	defer SetNormalRng()

	ForceRng(rand.NewPCG(7, 7))
	first := []int{FrayRand.IntN(1000), FrayRand.IntN(1000), FrayRand.IntN(1000)}

	ForceRng(rand.NewPCG(7, 7))
	for i, want := range first {
		if got := FrayRand.IntN(1000); got != want {
			t.Fatalf("draw %d changed after reseeding: got %d, want %d", i, got, want)
		}
	}
}

func TestPopulateConfigDefaults(t *testing.T) {
	config := populateConfig(GlobalConfig{})
	if config.SaveLocation == "" {
		t.Fatal("empty save location should get a default")
	}
	if config.PlayerName != "Player" {
		t.Fatalf("empty player name should default, got %q", config.PlayerName)
	}

	custom := populateConfig(GlobalConfig{SaveLocation: "/tmp/elsewhere", PlayerName: "Morgan"})
	if custom.SaveLocation != "/tmp/elsewhere" || custom.PlayerName != "Morgan" {
		t.Fatalf("explicit values should survive untouched: %+v", custom)
	}
}
