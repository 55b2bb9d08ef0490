package logger

import "testing"

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		ok       bool
	}{
		{"trace", LevelTrace, true},
		{"debug", LevelDebug, true},
		{"info", LevelInfo, true},
		{"warn", LevelWarn, true},
		{"error", LevelError, true},
		{"critical", LevelCritical, true},
		{"off", LevelOff, true},
		{"INFO", LevelInfo, true},
		{"Warn", LevelWarn, true},
		{"bogus", LevelInfo, false},
		{"", LevelInfo, false},
	}

	for _, test := range tests {
		level, ok := LevelFromString(test.input)
		if ok != test.ok {
			t.Errorf("LevelFromString(%q): got ok=%t, want %t", test.input, ok, test.ok)
			continue
		}
		if level != test.expected {
			t.Errorf("LevelFromString(%q): got %s, want %s",
				test.input, level, test.expected)
		}
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelTrace, "TRC"},
		{LevelDebug, "DBG"},
		{LevelInfo, "INF"},
		{LevelWarn, "WRN"},
		{LevelError, "ERR"},
		{LevelCritical, "CRT"},
		{LevelOff, "OFF"},
	}

	for _, test := range tests {
		if s := test.level.String(); s != test.expected {
			t.Errorf("Level(%d).String(): got %q, want %q",
				uint32(test.level), s, test.expected)
		}
	}
}
