package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func newTestCommand(buf *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	return cmd
}

func TestRunBind_Default(t *testing.T) {
	t.Chdir(t.TempDir())
	configFlag = ""

	var buf bytes.Buffer
	if err := runBind(newTestCommand(&buf), nil); err != nil {
		t.Fatalf("runBind returned error: %v", err)
	}

	want := "image 101\ntext 102\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestRunBind_CustomCatalog(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	content := "version = 1\ncatalog {\n  image = \"201\"\n  text  = \"${defaults.text}-b\"\n}\n"
	if err := os.WriteFile(filepath.Join(dir, ".resbind.hcl"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	configFlag = ""

	var buf bytes.Buffer
	if err := runBind(newTestCommand(&buf), nil); err != nil {
		t.Fatalf("runBind returned error: %v", err)
	}

	want := "image 201\ntext 102-b\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestRunBind_IgnoresFieldFilter(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	content := "version = 1\nfields {\n  exclude = [\"text\"]\n}\n"
	if err := os.WriteFile(filepath.Join(dir, ".resbind.hcl"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	configFlag = ""

	var bindOut bytes.Buffer
	if err := runBind(newTestCommand(&bindOut), nil); err != nil {
		t.Fatalf("runBind returned error: %v", err)
	}
	if bindOut.String() != "image 101\ntext 102\n" {
		t.Errorf("bind output = %q, want both fields", bindOut.String())
	}

	var listOut bytes.Buffer
	if err := runList(newTestCommand(&listOut), nil); err != nil {
		t.Fatalf("runList returned error: %v", err)
	}
	if listOut.String() != "image 101\n" {
		t.Errorf("list output = %q, want %q", listOut.String(), "image 101\n")
	}
}

func TestRunBind_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.hcl")
	if err := os.WriteFile(path, []byte("version = 7\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	configFlag = path
	defer func() { configFlag = "" }()

	var buf bytes.Buffer
	if err := runBind(newTestCommand(&buf), nil); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestExecute_EndToEnd(t *testing.T) {
	t.Chdir(t.TempDir())
	configFlag = ""

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{})
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	}()

	if err := Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	want := "image 101\ntext 102\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}
