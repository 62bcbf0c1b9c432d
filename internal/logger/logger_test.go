package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.WarnLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestZapLoggerWritesStructuredField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := S
	S = zap.New(core).Sugar()
	t.Cleanup(func() { S = prev })

	var log Logger = ZapLogger{}
	log.WarnObj("request failed", "request_error", map[string]any{"client": "DogApi"})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Message != "request failed" || entries[0].Level != zapcore.WarnLevel {
		t.Fatalf("unexpected entry %+v", entries[0])
	}
	if _, ok := entries[0].ContextMap()["request_error"]; !ok {
		t.Fatalf("missing structured field in %+v", entries[0].ContextMap())
	}
}

func TestHelpersAreSafeBeforeInit(t *testing.T) {
	prev := S
	S = nil
	t.Cleanup(func() { S = prev })

	InfoObj("ignored", "k", 1)
	NopLogger{}.ErrorObj("ignored", "k", 1)
	if err := Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
