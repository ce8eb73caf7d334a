package settings

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestHeapSizeArg(t *testing.T) {
	// GB_1_5 has no whole-gigabyte form; it must come out in megabytes.
	if got := HeapGb1_5.Arg(); got != "1536m" {
		t.Errorf("HeapGb1_5.Arg() = %q, want %q", got, "1536m")
	}
	if got := HeapGb1.Arg(); got != "1g" {
		t.Errorf("HeapGb1.Arg() = %q, want %q", got, "1g")
	}
}

func TestParseHeapSize(t *testing.T) {
	h, err := ParseHeapSize("GB_1_5")
	if err != nil {
		t.Fatalf("ParseHeapSize(GB_1_5) error = %v", err)
	}
	if h != HeapGb1_5 {
		t.Errorf("ParseHeapSize(GB_1_5) = %v, want %v", h, HeapGb1_5)
	}

	if _, err := ParseHeapSize("GB_99"); err == nil {
		t.Error("ParseHeapSize(GB_99) should fail")
	}
	if _, err := ParseHeapSize(""); err == nil {
		t.Error("ParseHeapSize(\"\") should fail")
	}
}

func TestLogLevelZapMapping(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  zapcore.Level
	}{
		{LevelDefault, zapcore.InfoLevel},
		{LevelDebug, zapcore.DebugLevel},
		{LevelWarn, zapcore.WarnLevel},
		{LevelError, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		if got := tt.level.ZapLevel(); got != tt.want {
			t.Errorf("%s.ZapLevel() = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	l, err := ParseLogLevel("DEFAULT")
	if err != nil {
		t.Fatalf("ParseLogLevel(DEFAULT) error = %v", err)
	}
	if l != LevelDefault {
		t.Errorf("ParseLogLevel(DEFAULT) = %v, want %v", l, LevelDefault)
	}

	if _, err := ParseLogLevel("VERBOSE"); err == nil {
		t.Error("ParseLogLevel(VERBOSE) should fail")
	}
}
