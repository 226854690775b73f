package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	lzstring "github.com/daku10/go-lz-string"

	"ladderview/internal/config"
	"ladderview/internal/share"
	"ladderview/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	dataDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	base := testsupport.BaseDir(cfg)
	t.Setenv("HOME", filepath.Join(base, "home"))

	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, cfg)

	dataDir := filepath.Join(base, "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		t.Fatalf("mkdir data dir: %v", err)
	}
	return &cliTestEnv{cfg: cfg, configPath: configPath, dataDir: dataDir}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\nlog_dir = %q\nstate_dir = %q\n\n[server]\nbind = %q\n\n[share]\nbase_url = %q\n\n[logging]\nlevel = \"error\"\n",
		cfg.Paths.LogDir,
		cfg.Paths.StateDir,
		cfg.Server.Bind,
		cfg.Share.BaseURL,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func stubClipboard(t *testing.T, contents string) *string {
	t.Helper()
	written := new(string)
	prevRead, prevWrite := readClipboard, writeClipboard
	readClipboard = func() (string, error) { return contents, nil }
	writeClipboard = func(text string) error {
		*written = text
		return nil
	}
	t.Cleanup(func() {
		readClipboard, writeClipboard = prevRead, prevWrite
	})
	return written
}

func TestInspectRendersRecord(t *testing.T) {
	env := setupCLITestEnv(t)
	path := testsupport.WriteFile(t, env.dataDir, "record.json", []byte(testsupport.SampleRecordJSON))

	out, _, err := runCLI(t, []string{"inspect", path}, env.configPath)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	for _, want := range []string{
		"Record 1 of 1",
		"== Key Identifiers ==",
		"v0200fg10000abc",
		"15.3s",
		"Total Removed: 7 ladders",
		"h265_1080p",
		"3 not selected",
		"== Configuration Settings ==",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("non-terminal output must not be colorized")
	}
}

func TestInspectJSONSelectsRecord(t *testing.T) {
	env := setupCLITestEnv(t)
	path := testsupport.WriteFile(t, env.dataDir, "records.json", []byte(testsupport.SampleDatasetJSON))

	out, _, err := runCLI(t, []string{"inspect", path, "--record", "2", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	var payload struct {
		Position int `json:"position"`
		Total    int `json:"total"`
		Record   struct {
			Identifiers []struct {
				Value string `json:"value"`
			} `json:"identifiers"`
		} `json:"record"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if payload.Position != 2 || payload.Total != 3 || payload.Record.Identifiers[0].Value != "b2" {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestInspectErrors(t *testing.T) {
	env := setupCLITestEnv(t)
	path := testsupport.WriteFile(t, env.dataDir, "records.json", []byte(testsupport.SampleDatasetJSON))
	csv := testsupport.WriteFile(t, env.dataDir, "runs.csv", []byte("vid\nv1\n"))
	legacy := testsupport.WriteFile(t, env.dataDir, "old.xls", []byte("binary"))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no input", args: []string{"inspect"}, want: "file is required"},
		{name: "record out of range", args: []string{"inspect", path, "--record", "9"}, want: "dataset has 3 records"},
		{name: "record zero", args: []string{"inspect", path, "--record", "0"}, want: "at least 1"},
		{name: "csv", args: []string{"inspect", csv}, want: "unsupported"},
		{name: "corrupt legacy workbook", args: []string{"inspect", legacy}, want: "open workbook old.xls"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, tt.args, env.configPath)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestRecordsListsWorkbook(t *testing.T) {
	env := setupCLITestEnv(t)
	data := testsupport.WorkbookBytes(t, [][]string{
		{"vid", "item_id", "user_id"},
		{"v-one", "1", "u1"},
		{"v-two", "2", ""},
	})
	path := testsupport.WriteFile(t, env.dataDir, "export.xlsx", data)

	out, _, err := runCLI(t, []string{"records", path}, env.configPath)
	if err != nil {
		t.Fatalf("records: %v", err)
	}
	for _, want := range []string{"2 records", "VIDEO ID", "v-one", "v-two", "N/A"} {
		if !strings.Contains(out, want) {
			t.Errorf("records output missing %q\n%s", want, out)
		}
	}
}

func TestShareAndOpenRoundTrip(t *testing.T) {
	env := setupCLITestEnv(t)
	written := stubClipboard(t, testsupport.SampleRecordJSON)

	out, stderr, err := runCLI(t, []string{"share", "--from-clipboard", "--copy"}, env.configPath)
	if err != nil {
		t.Fatalf("share: %v", err)
	}
	link := strings.TrimSpace(out)
	if !strings.HasPrefix(link, "http://viewer.test/shared?data=") {
		t.Fatalf("unexpected link %q", link)
	}
	if *written != link {
		t.Fatalf("clipboard = %q, want %q", *written, link)
	}
	if !strings.Contains(stderr, "copied") {
		t.Fatalf("expected copy confirmation, got %q", stderr)
	}

	out, _, err = runCLI(t, []string{"open", link}, env.configPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !strings.Contains(out, "v0200fg10000abc") {
		t.Fatalf("open output missing vid\n%s", out)
	}
	if strings.Contains(out, "Configuration Settings") {
		t.Fatalf("shared view must not include settings\n%s", out)
	}
}

func TestOpenReportsReason(t *testing.T) {
	env := setupCLITestEnv(t)
	notJSON, err := lzstring.CompressToEncodedURIComponent("not json")
	if err != nil {
		t.Fatalf("compress: %v", err)
	}
	tests := []struct {
		input  string
		reason share.Reason
	}{
		{input: "http://viewer.test/shared", reason: share.MissingPayload},
		{input: "AAAA", reason: share.DecompressionFailed},
		{input: "http://viewer.test/shared?data=" + notJSON, reason: share.InvalidContent},
	}
	for _, tt := range tests {
		t.Run(tt.reason.String(), func(t *testing.T) {
			_, _, err := runCLI(t, []string{"open", tt.input}, env.configPath)
			if err == nil || err.Error() != tt.reason.Message() {
				t.Fatalf("error = %v, want %q", err, tt.reason.Message())
			}
		})
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(testsupport.BaseDir(env.cfg), "generated", "config.toml")

	out, _, err := runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Fatalf("expected target path in output, got %q", out)
	}

	_, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected already exists error, got %v", err)
	}

	out, _, err = runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	if !strings.Contains(out, "Configuration valid") || !strings.Contains(out, env.configPath) {
		t.Fatalf("unexpected validate output %q", out)
	}
}

func TestInvalidLogLevelFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	path := testsupport.WriteFile(t, env.dataDir, "record.json", []byte(testsupport.SampleRecordJSON))
	_, _, err := runCLI(t, []string{"--log-level", "loud", "inspect", path}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "--log-level") {
		t.Fatalf("expected log level error, got %v", err)
	}
}

func TestClipboardAndFileAreExclusive(t *testing.T) {
	env := setupCLITestEnv(t)
	stubClipboard(t, testsupport.SampleRecordJSON)
	path := testsupport.WriteFile(t, env.dataDir, "record.json", []byte(testsupport.SampleRecordJSON))
	_, _, err := runCLI(t, []string{"inspect", path, "--from-clipboard"}, env.configPath)
	if err == nil {
		t.Fatal("expected error")
	}

	stubClipboard(t, "  ")
	_, _, err = runCLI(t, []string{"inspect", "--from-clipboard"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "empty") {
		t.Fatalf("expected empty clipboard error, got %v", err)
	}
}

func TestConfigShowPrintsEffectiveValues(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, []string{"config", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	for _, want := range []string{"[share]", "base_url = 'http://viewer.test'", "level = 'error'", "max_upload_mib = 32"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show missing %q\n%s", want, out)
		}
	}
}
