package configutil

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("bind", "127.0.0.1", "")
	cmd.Flags().Int("port", 8787, "")
	return cmd
}

func TestFlagOrViperStringPrecedence(t *testing.T) {
	defer viper.Reset()

	cmd := newTestCmd()
	if got := FlagOrViperString(cmd, "bind", "server.bind"); got != "127.0.0.1" {
		t.Fatalf("default: got %q", got)
	}

	viper.Set("server.bind", "0.0.0.0")
	if got := FlagOrViperString(cmd, "bind", "server.bind"); got != "0.0.0.0" {
		t.Fatalf("viper over default: got %q", got)
	}

	// An explicitly changed flag beats the viper key.
	if err := cmd.Flags().Set("bind", "10.0.0.5"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if got := FlagOrViperString(cmd, "bind", "server.bind"); got != "10.0.0.5" {
		t.Fatalf("flag over viper: got %q", got)
	}
}

func TestFlagOrViperIntPrecedence(t *testing.T) {
	defer viper.Reset()

	cmd := newTestCmd()
	if got := FlagOrViperInt(cmd, "port", "server.port"); got != 8787 {
		t.Fatalf("default: got %d", got)
	}

	viper.Set("server.port", 9000)
	if got := FlagOrViperInt(cmd, "port", "server.port"); got != 9000 {
		t.Fatalf("viper over default: got %d", got)
	}

	if err := cmd.Flags().Set("port", "9100"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if got := FlagOrViperInt(cmd, "port", "server.port"); got != 9100 {
		t.Fatalf("flag over viper: got %d", got)
	}
}
