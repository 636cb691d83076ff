package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestFormatterWithColor(t *testing.T) {
	os.Unsetenv("NO_COLOR")
	original := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = original }()

	result := Code.Sprint("sealkit secrets seal secret.yaml")
	if strings.Contains(result, "`") {
		t.Errorf("Code.Sprint should not contain backticks when color is enabled, got: %s", result)
	}
	if !strings.Contains(result, "\x1b[") {
		t.Errorf("Code.Sprint should contain ANSI escape codes when color is enabled, got: %s", result)
	}

	result = Highlight.Sprintf("secret: %s", "prod/db")
	if strings.HasPrefix(result, "'") || !strings.Contains(result, "secret: prod/db") {
		t.Errorf("Highlight.Sprintf = %q", result)
	}
}

func TestFormatterWithNoColor(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Code adds backticks", Code, "sealkit secrets decode", "`sealkit secrets decode`"},
		{"Path has no decoration", Path, "secret-sealed.yaml", "secret-sealed.yaml"},
		{"Flag has no decoration", Flag, "--decode", "--decode"},
		{"Success has no decoration", Success, "✓", "✓"},
		{"Error has no decoration", Error, "✗", "✗"},
		{"Highlight adds quotes", Highlight, "prod.pem", "'prod.pem'"},
		{"Muted adds parentheses", Muted, "dry run", "(dry run)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.formatter.Sprint(tt.input)
			if got != tt.want {
				t.Errorf("%s.Sprint(%q) = %q, want %q", tt.name, tt.input, got, tt.want)
			}
		})
	}
}

func TestStatusLines(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Success", SuccessLine("Sealed %s", "db"), "✓ Sealed db\n"},
		{"Error", ErrorLine("Failed"), "✗ Failed\n"},
		{"Warning", WarningLine("Cancelled"), "⚠ Cancelled\n"},
		{"Hint", HintLine("Run %s", "doctor"), "→ Run doctor\n"},
		{"AlreadyTerminated", SuccessLine("done\n"), "✓ done\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestNoColorFunction(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	if !noColor() {
		t.Error("noColor() should return true when NO_COLOR is set")
	}
	os.Unsetenv("NO_COLOR")

	original := color.NoColor
	color.NoColor = true
	if !noColor() {
		t.Error("noColor() should return true when color.NoColor is true")
	}
	color.NoColor = original
}

func TestEnsureNewline(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "\n"},
		{"hello", "hello\n"},
		{"hello\n", "hello\n"},
	}

	for _, tt := range tests {
		if got := EnsureNewline(tt.input); got != tt.want {
			t.Errorf("EnsureNewline(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestColorEnabled(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	if ColorEnabled() {
		t.Error("ColorEnabled() should be false when NO_COLOR is set")
	}
	os.Unsetenv("NO_COLOR")
}
