package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablebook/config"
	"tablebook/infras/otel/mocks"
	"tablebook/internal/domains/reservation/repository"
	"tablebook/internal/domains/reservation/service"
	"tablebook/transport/cli"
)

func run(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{}
	}

	cfg.App.Name = "tablebook"

	ot := mocks.NewOtel()
	c := cli.New(cfg, service.New(repository.New(ot), cfg, ot), ot)

	var out bytes.Buffer

	c.Command().SetArgs(args)
	c.Command().SetOut(&out)
	c.Command().SetErr(&out)

	err := c.Execute()

	return out.String(), err
}

const demoOutput = `true
false
Free Tables on 2023-12-25:
A - Table 1
A - Table 2
A - Table 3
A - Table 5
A - Table 6
A - Table 7
A - Table 8
A - Table 9
A - Table 10
B - Table 1
B - Table 2
B - Table 3
B - Table 4
B - Table 5
Sorted Restaurants by Availability:
A - Available Tables: 9
B - Available Tables: 5
`

func TestCLI_Demo(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "root command", args: []string{}},
		{name: "demo command", args: []string{"demo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, nil, tt.args...)

			require.NoError(t, err)
			assert.Equal(t, demoOutput, out)
		})
	}
}

func TestCLI_DemoLegacyLabels(t *testing.T) {
	cfg := &config.Config{}
	cfg.Reservation.LegacyTableLabels = true

	out, err := run(t, cfg, "demo")

	require.NoError(t, err)
	assert.Contains(t, out, "A - Table 11\n")
	assert.NotContains(t, out, "A - Table 5\n")
	assert.Contains(t, out, "A - Available Tables: 9\n")
}

func TestCLI_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restaurants.csv")
	require.NoError(t, os.WriteFile(path, []byte("Small,1\nBig,3\nbroken line\n"), 0o600))

	out, err := run(t, nil, "load", "--file", path, "--date", "2024-02-29", "--book", "Big:0", "--book", "Big:0", "-b", "Small:7")

	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		"Book Big table 0: true",
		"Book Big table 0: false",
		"Book Small table 7: false",
		"Free Tables on 2024-02-29:",
		"Small - Table 1",
		"Big - Table 2",
		"Big - Table 3",
		"Sorted Restaurants by Availability:",
		"Big - Available Tables: 2",
		"Small - Available Tables: 1",
	}, lines)
}

func TestCLI_LoadUsesSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.csv")
	require.NoError(t, os.WriteFile(path, []byte("Seeded,2\n"), 0o600))

	cfg := &config.Config{}
	cfg.Reservation.SeedFile = path

	out, err := run(t, cfg, "load", "--date", "2023-12-25")

	require.NoError(t, err)
	assert.Contains(t, out, "Seeded - Available Tables: 2")
}

func TestCLI_LoadInvalidArguments(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "missing file", args: []string{"load"}, wantErr: "no restaurant file"},
		{name: "bad date", args: []string{"load", "-f", "x.csv", "--date", "25/12/2023"}, wantErr: "invalid --date"},
		{name: "booking without separator", args: []string{"load", "-f", "x.csv", "--book", "A3"}, wantErr: "invalid --book"},
		{name: "booking without index", args: []string{"load", "-f", "x.csv", "--book", "A:x"}, wantErr: "invalid --book"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, nil, tt.args...)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCLI_Version(t *testing.T) {
	out, err := run(t, nil, "version")

	require.NoError(t, err)
	assert.Equal(t, "tablebook dev (commit=none, built=unknown)\n", out)
}
