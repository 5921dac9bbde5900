package main

import "testing"

func TestRootCommandFlags(t *testing.T) {
	cmd := newRootCommand()
	if err := cmd.ParseFlags([]string{"-c", "/tmp/picklist.toml", "--prefs", "/tmp/prefs.toml", "--log-level", "debug"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}

	for name, want := range map[string]string{
		"config":    "/tmp/picklist.toml",
		"prefs":     "/tmp/prefs.toml",
		"log-level": "debug",
	} {
		got, err := cmd.Flags().GetString(name)
		if err != nil {
			t.Fatalf("GetString(%q): %v", name, err)
		}
		if got != want {
			t.Fatalf("--%s = %q, want %q", name, got, want)
		}
	}
}

func TestRootCommandRejectsArgs(t *testing.T) {
	cmd := newRootCommand()
	if err := cmd.Args(cmd, []string{"extra"}); err == nil {
		t.Fatalf("Args accepted a positional argument, want error")
	}
}
