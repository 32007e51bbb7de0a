package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/toplangs/pkg/cache"
	tlio "github.com/matzehuels/toplangs/pkg/io"
)

const usageJSON = `{
  "Go": {"name": "Go", "size": 3000, "color": "#00ADD8"},
  "Python": {"name": "Python", "size": 1000, "color": "#3572A5"}
}`

const graphQLPayload = `{"data":{"user":{"repositories":{"nodes":[
  {"name":"api","languages":{"edges":[
    {"size":3000,"node":{"color":"#00ADD8","name":"Go"}},
    {"size":500,"node":{"color":"#89e051","name":"Shell"}}]}}
]}}}}`

// isolate points config, cache and tokens at a fresh temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	for _, k := range []string{"PAT_1", "GITHUB_TOKEN", "GITHUB_API_URL", "TOPLANGS_CACHE", "TOPLANGS_CACHE_DIR", "TOPLANGS_CACHE_TTL", "PORT", "REDIS_ADDR", "REDIS_PASSWORD"} {
		t.Setenv(k, "")
	}
	return dir
}

func writeUsage(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "usage.json")
	if err := os.WriteFile(path, []byte(usageJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out, errb bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errb)
	root.SetArgs(args)
	err = root.ExecuteContext(context.Background())
	return out.String(), errb.String(), err
}

func TestRenderFromFile(t *testing.T) {
	dir := isolate(t)
	input := writeUsage(t, dir)

	_, stderr, err := run(t, "render", input, "--layout", "donut")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "usage.svg"))
	if err != nil {
		t.Fatalf("expected usage.svg next to the input: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("<svg")) || !bytes.Contains(data, []byte("Python")) {
		t.Errorf("unexpected SVG: %.200s", data)
	}
	if !strings.Contains(stderr, "2 languages") || !strings.Contains(stderr, "usage.svg") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRenderToStdout(t *testing.T) {
	dir := isolate(t)
	input := writeUsage(t, dir)

	stdout, _, err := run(t, "render", input, "-o", "-", "--layout", "pie", "--no-cache")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout, "<svg") {
		t.Errorf("stdout = %.100q", stdout)
	}
}

func TestRenderConfigDefaults(t *testing.T) {
	dir := isolate(t)
	input := writeUsage(t, dir)
	cfgPath := filepath.Join(dir, "toplangs.toml")
	if err := os.WriteFile(cfgPath, []byte("[card]\ntheme = \"dark\"\n\n[cache]\nbackend = \"none\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := run(t, "--config", cfgPath, "render", input, "-o", "-")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, `fill="#151515"`) {
		t.Error("config theme was not applied")
	}

	stdout, _, err = run(t, "--config", cfgPath, "render", input, "-o", "-", "--theme", "default")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(stdout, `fill="#151515"`) {
		t.Error("--theme should override the config theme")
	}
}

func TestRenderErrors(t *testing.T) {
	dir := isolate(t)
	input := writeUsage(t, dir)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no source", []string{"render"}, "a usage file or --user is required"},
		{"both sources", []string{"render", input, "--user", "octocat"}, "not both"},
		{"bad layout", []string{"render", input, "--layout", "bars"}, "Invalid layout"},
		{"bad count", []string{"render", input, "--count", "25"}, "Invalid count"},
		{"bad stats format", []string{"render", input, "--stats-format", "kb"}, "Invalid stats_format"},
		{"missing file", []string{"render", filepath.Join(dir, "nope.json")}, "nope.json"},
		{"no tokens", []string{"render", "--user", "octocat", "--no-cache"}, "No GitHub API tokens found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func newGitHubServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "bearer tok" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(graphQLPayload))
	}))
	t.Cleanup(srv.Close)
	t.Setenv("GITHUB_API_URL", srv.URL)
	t.Setenv("PAT_1", "tok")
	return srv
}

func TestRenderFromUser(t *testing.T) {
	isolate(t)
	newGitHubServer(t)

	stdout, _, err := run(t, "render", "--user", "octocat", "--no-cache")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout, "<svg") || !strings.Contains(stdout, "Shell") {
		t.Errorf("stdout = %.200q", stdout)
	}
}

func TestFetch(t *testing.T) {
	dir := isolate(t)
	newGitHubServer(t)
	out := filepath.Join(dir, "octocat.json")

	_, stderr, err := run(t, "fetch", "--user", "octocat", "-o", out, "--no-cache")
	if err != nil {
		t.Fatal(err)
	}
	usage, err := tlio.ImportUsage(out)
	if err != nil {
		t.Fatal(err)
	}
	if usage["Go"].Size != 3000 || usage["Shell"].Size != 500 {
		t.Errorf("usage = %+v", usage)
	}
	if !strings.Contains(stderr, "toplangs render "+out) {
		t.Errorf("stderr should suggest rendering the export: %q", stderr)
	}

	if _, _, err := run(t, "fetch"); err == nil {
		t.Error("fetch without --user should fail")
	}
}

func TestLangs(t *testing.T) {
	dir := isolate(t)
	input := writeUsage(t, dir)

	stdout, _, err := run(t, "langs", input, "--hide", "python")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Top 1 languages", "Go", "100.00%", "Card sizes", "donut-vertical"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "Python") {
		t.Error("hidden language listed")
	}
}

func TestThemes(t *testing.T) {
	stdout, _, err := run(t, "themes")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"default", "dark", "tokyonight"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("themes output missing %q", want)
		}
	}
}

func TestCachePathAndClear(t *testing.T) {
	dir := isolate(t)
	cacheDir := filepath.Join(dir, "cache", "toplangs")

	stdout, _, err := run(t, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(stdout) != cacheDir {
		t.Errorf("cache path = %q, want %q", stdout, cacheDir)
	}

	stdout, _, err = run(t, "cache", "clear")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "Cache is empty") {
		t.Errorf("stdout = %q", stdout)
	}

	fc, err := cache.NewFileCache(cacheDir)
	if err != nil {
		t.Fatal(err)
	}
	if err := fc.Set(context.Background(), "card:abc", []byte("<svg/>"), time.Hour); err != nil {
		t.Fatal(err)
	}
	stdout, _, err = run(t, "cache", "clear")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "Cleared 1 cached entries") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestCacheClearOtherBackend(t *testing.T) {
	isolate(t)
	t.Setenv("TOPLANGS_CACHE", "memory")

	stdout, _, err := run(t, "cache", "clear")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "only the file cache") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestCompletion(t *testing.T) {
	stdout, _, err := run(t, "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "toplangs") {
		t.Error("bash completion does not mention the command")
	}
	if _, _, err := run(t, "completion", "tcsh"); err == nil {
		t.Error("unsupported shell should fail")
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		output string
		args   []string
		want   string
	}{
		{"card.svg", []string{"in.json"}, "card.svg"},
		{"", []string{"data/in.json"}, "data/in.svg"},
		{"", nil, "-"},
		{"-", []string{"in.json"}, "-"},
	}
	for _, tt := range tests {
		if got := outputPath(tt.output, tt.args); got != tt.want {
			t.Errorf("outputPath(%q, %v) = %q, want %q", tt.output, tt.args, got, tt.want)
		}
	}
}
