package generator

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/elm-build-config/internal/literal"
	"github.com/eugenenazirov/elm-build-config/internal/values"
	"github.com/eugenenazirov/elm-build-config/internal/writer"
)

func TestCreateConfigFile(t *testing.T) {
	t.Parallel()

	memFs := afero.NewMemMapFs()
	gen := New(WithFs(memFs), WithLogger(zaptest.NewLogger(t)))
	cfg := goodConfig(t)

	if err := gen.CreateConfigFile(cfg, Options{SourceDirectory: "src", ModuleName: "Static.Config"}); err != nil {
		t.Fatalf("CreateConfigFile returned error: %v", err)
	}

	got, err := afero.ReadFile(memFs, filepath.Join("src", "Static", "Config.elm"))
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}

	want := `module Static.Config exposing (..)

bool: Bool
bool = True

string: String
string = "hello"

int: Int
int = 1

float: Float
float = 3.14159
`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("unexpected module (-want +got):\n%s", diff)
	}
}

func TestCreateConfigFileDefaults(t *testing.T) {
	t.Parallel()

	memFs := afero.NewMemMapFs()
	cfg, _ := values.FromEntries(values.Entry{Key: "debug", Value: values.Bool(false)})

	if err := New(WithFs(memFs)).CreateConfigFile(cfg, Options{}); err != nil {
		t.Fatalf("CreateConfigFile returned error: %v", err)
	}

	got, err := afero.ReadFile(memFs, filepath.Join("src", "BuildConfig.elm"))
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	want := "module BuildConfig exposing (..)\n\ndebug: Bool\ndebug = False\n"
	if string(got) != want {
		t.Fatalf("unexpected module:\n%q\nwant:\n%q", got, want)
	}
}

func TestCreateConfigFileUnsupportedTypeWritesNothing(t *testing.T) {
	t.Parallel()

	memFs := afero.NewMemMapFs()
	cfg := goodConfig(t)
	if err := cfg.SetAny("invalid", map[string]any{"foo": "bar"}); err != nil {
		t.Fatalf("SetAny returned error: %v", err)
	}

	err := New(WithFs(memFs)).CreateConfigFile(cfg, Options{ModuleName: "Static.Config"})

	var typeErr *literal.UnsupportedTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected UnsupportedTypeError, got %v", err)
	}
	if typeErr.Key != "invalid" || typeErr.TypeName != "object" {
		t.Fatalf("unexpected error fields: %+v", typeErr)
	}
	if exists, _ := afero.DirExists(memFs, "src"); exists {
		t.Fatalf("expected nothing to be written on failure")
	}
}

func TestCreateConfigFileKeepsExistingFileOnFailure(t *testing.T) {
	t.Parallel()

	memFs := afero.NewMemMapFs()
	path := filepath.Join("src", "BuildConfig.elm")
	if err := afero.WriteFile(memFs, path, []byte("previous"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	cfg, _ := values.FromEntries(values.Entry{Key: "list", Value: values.FromAny([]int{1})})
	if err := New(WithFs(memFs)).CreateConfigFile(cfg, Options{}); !errors.Is(err, literal.ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}

	got, _ := afero.ReadFile(memFs, path)
	if string(got) != "previous" {
		t.Fatalf("expected existing file untouched, got %q", got)
	}
}

func TestCreateConfigFileFilesystemError(t *testing.T) {
	t.Parallel()

	gen := New(WithFs(afero.NewReadOnlyFs(afero.NewMemMapFs())))

	err := gen.CreateConfigFile(goodConfig(t), Options{})
	var fsErr *writer.FilesystemError
	if !errors.As(err, &fsErr) {
		t.Fatalf("expected FilesystemError, got %v", err)
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("expected permission cause, got %v", err)
	}
}

func TestCreateConfigFileInvalidModuleName(t *testing.T) {
	t.Parallel()

	err := New(WithFs(afero.NewMemMapFs())).CreateConfigFile(goodConfig(t), Options{ModuleName: "Static."})
	if !errors.Is(err, ErrInvalidModuleName) {
		t.Fatalf("expected ErrInvalidModuleName, got %v", err)
	}
}

func TestCreateConfigFileIsIdempotent(t *testing.T) {
	t.Parallel()

	memFs := afero.NewMemMapFs()
	gen := New(WithFs(memFs))
	path := ResolvePath(Options{})

	var outputs [2][]byte
	for i := range outputs {
		if err := gen.CreateConfigFile(goodConfig(t), Options{}); err != nil {
			t.Fatalf("run %d returned error: %v", i, err)
		}
		data, err := afero.ReadFile(memFs, path)
		if err != nil {
			t.Fatalf("run %d: ReadFile returned error: %v", i, err)
		}
		outputs[i] = data
	}

	if diff := cmp.Diff(string(outputs[0]), string(outputs[1])); diff != "" {
		t.Fatalf("outputs differ between runs:\n%s", diff)
	}
}

func TestCreateConfigFileOnDisk(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg, _ := values.FromEntries(values.Entry{Key: "name", Value: values.String("disk")})

	if err := CreateConfigFile(cfg, Options{SourceDirectory: dir, ModuleName: "Gen.Env"}); err != nil {
		t.Fatalf("CreateConfigFile returned error: %v", err)
	}

	got, err := afero.ReadFile(afero.NewOsFs(), filepath.Join(dir, "Gen", "Env.elm"))
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	if want := "module Gen.Env exposing (..)\n\nname: String\nname = \"disk\"\n"; string(got) != want {
		t.Fatalf("unexpected module %q", got)
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	cfg, _ := values.FromEntries(
		values.Entry{Key: "multiline", Value: values.String("line 1\nline 2")},
		values.Entry{Key: "quoted", Value: values.String(`"This is quoted"`)},
	)

	got, err := New().Render(cfg, Options{ModuleName: "Strings"})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	want := "module Strings exposing (..)\n\n" +
		"multiline: String\nmultiline = \"\"\"line 1\nline 2\"\"\"\n\n" +
		"quoted: String\nquoted = \"\\\"This is quoted\\\"\"\n"
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("unexpected module (-want +got):\n%s", diff)
	}
}

func TestRenderEmptyConfiguration(t *testing.T) {
	t.Parallel()

	got, err := New().Render(values.New(), Options{})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if want := "module BuildConfig exposing (..)\n"; string(got) != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func goodConfig(t *testing.T) *values.Configuration {
	t.Helper()

	cfg := values.New()
	for _, e := range []struct {
		key   string
		value any
	}{
		{"bool", true},
		{"string", "hello"},
		{"int", 1},
		{"float", 3.14159},
	} {
		if err := cfg.SetAny(e.key, e.value); err != nil {
			t.Fatalf("SetAny(%q) returned error: %v", e.key, err)
		}
	}
	return cfg
}
