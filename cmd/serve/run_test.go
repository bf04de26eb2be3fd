package serve

import (
	"testing"

	"github.com/spf13/viper"
	"gitlab.com/begraf/tourenblick/config"
)

func TestRunServeCmdReturnsErrorWithoutIndex(t *testing.T) {
	viper.Set(config.KeyBuildDirectory, t.TempDir())
	defer viper.Reset()

	// A directory without tours.json must surface an error through the
	// command's return value, not terminate the process.
	if err := RunServeCmd(nil, nil); err == nil {
		t.Fatal("expected an error for a directory without a tour index")
	}
}
