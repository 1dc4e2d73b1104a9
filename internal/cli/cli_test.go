package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/DimShadoWWW/npm2ebuild/pkg/errors"
)

var registryDocs = map[string]string{
	"express": `{
		"name": "express",
		"description": "Fast web framework",
		"versions": {
			"0.9.0": {},
			"1.0.0-rc1": {},
			"1.0.0": {"dependencies": {"debug": "~2.6.9", "accepts": "*"}}
		}
	}`,
	"debug": `{
		"name": "debug",
		"description": "small debugging utility",
		"versions": {"2.6.9": {"dependencies": {"ms": "2.0.0"}}}
	}`,
	"accepts": `{"name": "accepts", "versions": {"1.3.8-2": {"dependencies": []}}}`,
	"ms":      `{"name": "ms", "description": "Tiny ms conversion", "versions": {"2.0.0": {}}}`,
	"diamond": `{"name": "diamond", "versions": {"1.0.0": {"dependencies": {"debug": "2.6.9", "ms": "2.0.0"}}}}`,
}

func newTestRegistry(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32

	r := chi.NewRouter()
	r.Get("/{name}", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		name, _ := url.PathUnescape(chi.URLParam(r, "name"))
		doc, ok := registryDocs[name]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(doc))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, &hits
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out, logs bytes.Buffer
	cmd := New(&logs, LogInfo).RootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

var wantRecipes = []string{
	"dev-nodejs/express/express-1.0.0.ebuild",
	"dev-nodejs/accepts/accepts-1.3.8.ebuild",
	"dev-nodejs/debug/debug-2.6.9.ebuild",
	"dev-nodejs/ms/ms-2.0.0.ebuild",
}

func TestGenerate(t *testing.T) {
	srv, _ := newTestRegistry(t)
	dir := t.TempDir()

	out, err := execute(t, "--registry", srv.URL, "-o", dir, "express")
	if err != nil {
		t.Fatalf("execute() error: %v", err)
	}

	wantOrder := []string{"express-1.0.0\n", "accepts-1.3.8-2\n", "debug-2.6.9\n", "ms-2.0.0\n"}
	last := -1
	for _, line := range wantOrder {
		i := strings.Index(out, line)
		if i < 0 {
			t.Fatalf("output missing %q:\n%s", line, out)
		}
		if i < last {
			t.Errorf("%q printed out of order:\n%s", line, out)
		}
		last = i
	}

	for _, p := range wantRecipes {
		if _, err := os.Stat(filepath.Join(dir, p)); err != nil {
			t.Errorf("recipe %s not written: %v", p, err)
		}
		if !strings.Contains(out, filepath.Join(dir, filepath.FromSlash(p))) {
			t.Errorf("output does not list %s", p)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, wantRecipes[0]))
	if err != nil {
		t.Fatal(err)
	}
	recipe := string(data)
	for _, want := range []string{
		`DESCRIPTION="Fast web framework"`,
		"       dev-nodejs/accepts\n",
		"       >=dev-nodejs/debug-2.6.9\n",
	} {
		if !strings.Contains(recipe, want) {
			t.Errorf("express recipe missing %q:\n%s", want, recipe)
		}
	}
	if !strings.Contains(out, "resolved") {
		t.Errorf("output missing summary:\n%s", out)
	}
}

func TestGenerateTwiceWritesNothingNew(t *testing.T) {
	srv, _ := newTestRegistry(t)
	dir := t.TempDir()

	if _, err := execute(t, "--registry", srv.URL, "-o", dir, "express"); err != nil {
		t.Fatalf("first run error: %v", err)
	}
	before, err := os.ReadFile(filepath.Join(dir, wantRecipes[0]))
	if err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "--registry", srv.URL, "-o", dir, "--keywords", "~arm64", "express")
	if err != nil {
		t.Fatalf("second run error: %v", err)
	}
	if strings.Contains(out, "→") {
		t.Errorf("second run should not list written files:\n%s", out)
	}
	after, _ := os.ReadFile(filepath.Join(dir, wantRecipes[0]))
	if !bytes.Equal(before, after) {
		t.Error("existing recipe was overwritten")
	}
}

func TestGenerateDryRun(t *testing.T) {
	srv, _ := newTestRegistry(t)
	dir := t.TempDir()

	out, err := execute(t, "--registry", srv.URL, "-o", dir, "--dry-run", "express")
	if err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	if !strings.Contains(out, "--- dev-nodejs/express/express-1.0.0.ebuild ---") {
		t.Errorf("dry run should print recipes:\n%s", out)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("dry run wrote %d entries to the output directory", len(entries))
	}
}

func TestGenerateDryRunPrintsSharedDependencyOnce(t *testing.T) {
	srv, _ := newTestRegistry(t)

	out, err := execute(t, "--registry", srv.URL, "-o", t.TempDir(), "--dry-run", "diamond")
	if err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	if n := strings.Count(out, "--- dev-nodejs/ms/ms-2.0.0.ebuild ---"); n != 1 {
		t.Errorf("ms printed %d times, want 1:\n%s", n, out)
	}
}

func TestGenerateGraph(t *testing.T) {
	srv, _ := newTestRegistry(t)
	dir := t.TempDir()
	graph := filepath.Join(dir, "deps.dot")

	if _, err := execute(t, "--registry", srv.URL, "-o", dir, "--graph", graph, "express"); err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	data, err := os.ReadFile(graph)
	if err != nil {
		t.Fatalf("graph not written: %v", err)
	}
	if !strings.Contains(string(data), `"debug" -> "ms";`) {
		t.Errorf("graph missing edge:\n%s", data)
	}
}

func TestGenerateBadGraphFormatFailsEarly(t *testing.T) {
	srv, hits := newTestRegistry(t)

	_, err := execute(t, "--registry", srv.URL, "-o", t.TempDir(), "--graph", "deps.png", "express")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
	if hits.Load() != 0 {
		t.Error("registry should not be queried when the graph path is invalid")
	}
}

func TestGenerateConfigFile(t *testing.T) {
	srv, _ := newTestRegistry(t)
	dir := t.TempDir()
	cfg := writeConfig(t, "config.toml", `
registry = "`+srv.URL+`"
output = "`+filepath.ToSlash(dir)+`"
runtime = ">=net-libs/nodejs-18"
keywords = "~amd64"
`)

	if _, err := execute(t, "--config", cfg, "--keywords", "~arm64", "ms"); err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "dev-nodejs", "ms", "ms-2.0.0.ebuild"))
	if err != nil {
		t.Fatalf("recipe not written under configured output: %v", err)
	}
	recipe := string(data)
	if !strings.Contains(recipe, `RDEPEND=">=net-libs/nodejs-18`) {
		t.Errorf("runtime from config file not applied:\n%s", recipe)
	}
	if !strings.Contains(recipe, `KEYWORDS="~arm64"`) {
		t.Errorf("--keywords should override the config file:\n%s", recipe)
	}
}

func TestGenerateNotFound(t *testing.T) {
	srv, _ := newTestRegistry(t)

	_, err := execute(t, "--registry", srv.URL, "-o", t.TempDir(), "left-pad")
	if !errors.Is(err, errors.ErrCodePackageNotFound) {
		t.Errorf("error = %v, want PACKAGE_NOT_FOUND", err)
	}
}

func TestNoArgumentPrintsUsage(t *testing.T) {
	out, err := execute(t)
	if err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	if !strings.Contains(out, "Usage:") || !strings.Contains(out, "npm2ebuild [flags] <package>") {
		t.Errorf("output should be usage:\n%s", out)
	}
}

func TestTimeoutFlagShowsDefault(t *testing.T) {
	out, err := execute(t, "--help")
	if err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	if !strings.Contains(out, "(default 30s)") {
		t.Errorf("--timeout help should mention the 30s default:\n%s", out)
	}
}

func TestTooManyArguments(t *testing.T) {
	if _, err := execute(t, "a", "b"); err == nil {
		t.Error("two positional arguments should be rejected")
	}
}

func TestInvalidRegistryFlag(t *testing.T) {
	_, err := execute(t, "--registry", "registry.npmjs.org", "express")
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}
}
