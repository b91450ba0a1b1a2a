package cli

import (
	"bytes"
	"context"
	"encoding/base64"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/gradientlab/pkg/errors"
)

// testEnv isolates config and cache directories for one test.
type testEnv struct {
	configDir string
	cacheDir  string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	env := testEnv{configDir: t.TempDir(), cacheDir: t.TempDir()}
	t.Setenv("XDG_CONFIG_HOME", env.configDir)
	t.Setenv("XDG_CACHE_HOME", env.cacheDir)
	t.Setenv("TERM", "xterm-256color")
	return env
}

type result struct {
	out, stderr, log string
}

func runCLI(t *testing.T, args ...string) (result, error) {
	t.Helper()
	var out, stderr, logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return result{out: out.String(), stderr: stderr.String(), log: logs.String()}, err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCSSCommand(t *testing.T) {
	newTestEnv(t)

	design := writeFile(t, "design.json", `{"type": "radial", "center": {"x": 10, "y": 20},
		"stops": [{"color": "#000000", "position": 0}, {"color": "#ffffff", "position": 100}]}`)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "defaults",
			args: nil,
			want: "linear-gradient(90deg, #4f46e5 0%, #06b6d4 100%)",
		},
		{
			name: "conic flags",
			args: []string{"--type", "conic", "--angle", "45", "--x", "25", "--y", "75", "--stop", "#ff0000:0", "--stop", "#0000ff:100"},
			want: "conic-gradient(from 45deg at 25% 75%, #ff0000 0%, #0000ff 100%)",
		},
		{
			name: "clamped",
			args: []string{"--angle", "400", "--stop", "#ff0000:150", "--stop", "#00ff00:abc"},
			want: "linear-gradient(360deg, #00ff00 0%, #ff0000 100%)",
		},
		{
			name: "mesh nodes",
			args: []string{"-t", "mesh", "--node", "#ffffff:10:90", "--node", "#000000:90:10"},
			want: "radial-gradient(circle at 10% 90%, #ffffff 0%, transparent 50%), " +
				"radial-gradient(circle at 90% 10%, #000000 0%, transparent 50%)",
		},
		{
			name: "file",
			args: []string{"--file", design},
			want: "radial-gradient(circle at 10% 20%, #000000 0%, #ffffff 100%)",
		},
		{
			name: "flags override file",
			args: []string{"--file", design, "--type", "linear"},
			want: "linear-gradient(90deg, #000000 0%, #ffffff 100%)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := runCLI(t, append([]string{"css"}, tt.args...)...)
			if err != nil {
				t.Fatalf("css: %v", err)
			}
			if got := strings.TrimSpace(res.out); got != tt.want {
				t.Errorf("css =\n  %s\nwant\n  %s", got, tt.want)
			}
		})
	}
}

func TestCSSCommandErrors(t *testing.T) {
	newTestEnv(t)

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"unknown type", []string{"--type", "hexagon"}, errors.ErrCodeInvalidKind},
		{"bad stop color", []string{"--stop", "red:0"}, errors.ErrCodeInvalidColor},
		{"bad node", []string{"--type", "mesh", "--node", "#ffffff:10"}, errors.ErrCodeInvalidInput},
		{"missing file", []string{"--file", filepath.Join(t.TempDir(), "nope.json")}, errors.ErrCodeFileNotFound},
		{"missing config", []string{"--config", filepath.Join(t.TempDir(), "nope.toml")}, errors.ErrCodeFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, append([]string{"css"}, tt.args...)...)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestCSSCommandConfig(t *testing.T) {
	newTestEnv(t)
	cfg := writeFile(t, "config.toml", "[design]\ntype = \"radial\"\n")

	res, err := runCLI(t, "--config", cfg, "css")
	if err != nil {
		t.Fatal(err)
	}
	want := "radial-gradient(circle at 50% 50%, #4f46e5 0%, #06b6d4 100%)"
	if got := strings.TrimSpace(res.out); got != want {
		t.Errorf("css = %s, want %s", got, want)
	}
}

func TestCSSCommandCopy(t *testing.T) {
	newTestEnv(t)

	res, err := runCLI(t, "css", "--copy")
	if err != nil {
		t.Fatal(err)
	}
	css := "linear-gradient(90deg, #4f46e5 0%, #06b6d4 100%)"
	if strings.TrimSpace(res.out) != css {
		t.Errorf("stdout = %q, want only the CSS", res.out)
	}
	seq := "]52;c;" + base64.StdEncoding.EncodeToString([]byte(css))
	if !strings.Contains(res.stderr, seq) {
		t.Errorf("stderr = %q, want OSC 52 sequence %q", res.stderr, seq)
	}
}

func TestConvertCommand(t *testing.T) {
	newTestEnv(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"hex", []string{"#4f46e5"}, []string{"#4f46e5", "rgb(79, 70, 229)", "hsl(243, 75%, 59%)"}},
		{"hex without hash", []string{"4F46E5"}, []string{"#4f46e5"}},
		{"rgb", []string{"--from", "rgb", "79,70,229"}, []string{"#4f46e5", "hsl(243, 75%, 59%)"}},
		{"rgb clamped", []string{"--from", "rgb", "300,0,abc"}, []string{"#ff0000", "rgb(255, 0, 0)"}},
		{"hsl", []string{"--from", "hsl", "243,75,59"}, []string{"#5048e5", "rgb(80, 72, 229)"}},
		{"hsl gray", []string{"--from", "HSL", "0,0,50"}, []string{"#808080"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := runCLI(t, append([]string{"convert"}, tt.args...)...)
			if err != nil {
				t.Fatalf("convert: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(res.out, w) {
					t.Errorf("output missing %q:\n%s", w, res.out)
				}
			}
		})
	}
}

func TestConvertCommandErrors(t *testing.T) {
	newTestEnv(t)

	if _, err := runCLI(t, "convert", "#12345"); !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Errorf("short hex: err = %v, want INVALID_COLOR", err)
	}
	if _, err := runCLI(t, "convert", "--from", "rgb", "1,2"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("two channels: err = %v, want INVALID_INPUT", err)
	}
	if _, err := runCLI(t, "convert", "--from", "cmyk", "1,2,3"); err == nil {
		t.Error("unknown notation should fail")
	}
	if _, err := runCLI(t, "convert"); err == nil {
		t.Error("missing argument should fail")
	}
}

func TestRenderCommand(t *testing.T) {
	newTestEnv(t)
	out := filepath.Join(t.TempDir(), "previews", "mesh.png")
	args := []string{"render", "--type", "mesh", "-o", out, "--width", "40", "--height", "20"}

	res, err := runCLI(t, args...)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(res.out, iconFresh) {
		t.Errorf("first render should be fresh:\n%s", res.out)
	}
	if !strings.Contains(res.log, "Rendered 40x20 mesh preview") {
		t.Errorf("log missing progress line:\n%s", res.log)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 40 || cfg.Height != 20 {
		t.Errorf("size = %dx%d, want 40x20", cfg.Width, cfg.Height)
	}

	res, err = runCLI(t, args...)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.out, iconCached) {
		t.Errorf("second render should be cached:\n%s", res.out)
	}

	for _, extra := range []string{"--refresh", "--no-cache"} {
		res, err = runCLI(t, append(args, extra)...)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(res.out, iconFresh) {
			t.Errorf("render %s should be fresh:\n%s", extra, res.out)
		}
	}
}

func TestRenderCommandTooLarge(t *testing.T) {
	newTestEnv(t)
	out := filepath.Join(t.TempDir(), "big.png")

	_, err := runCLI(t, "render", "-o", out, "--width", "5000")
	if !errors.Is(err, errors.ErrCodeInvalidSize) {
		t.Errorf("err = %v, want INVALID_SIZE", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("no file should be written on error")
	}
}

func TestCompletionCommand(t *testing.T) {
	newTestEnv(t)

	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		res, err := runCLI(t, "completion", shell)
		if err != nil {
			t.Fatalf("completion %s: %v", shell, err)
		}
		if !strings.Contains(res.out, appName) {
			t.Errorf("completion %s does not mention %s", shell, appName)
		}
	}
	if _, err := runCLI(t, "completion", "tcsh"); err == nil {
		t.Error("unsupported shell should fail")
	}
}

func TestVersionFlag(t *testing.T) {
	newTestEnv(t)

	res, err := runCLI(t, "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(res.out, appName+" version ") {
		t.Errorf("version output = %q", res.out)
	}
}
