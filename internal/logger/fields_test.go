package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  keyword  ", Value: "  golang  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "keyword" || fields[0].String != "golang" {
		t.Fatalf("unexpected keyword field: %+v", fields[0])
	}

	if empty := StringFields(); len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	enriched := WithFields(logger, zap.String("foo", "bar"))
	enriched.Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	if ctx := entries[0].ContextMap(); ctx["foo"] != "bar" {
		t.Fatalf("expected field to be bar, got %q", ctx["foo"])
	}

	fallback := WithFields(nil, zap.String("baz", "qux"))
	if fallback == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}
	fallback.Info("another log")
}

func TestWithView(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	WithView(zap.New(core), "matches", "status=ACCEPTED").Info("summary")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx[FieldDomain] != "matches" {
		t.Fatalf("unexpected domain: %v", ctx[FieldDomain])
	}
	if ctx[FieldView] != "status=ACCEPTED" {
		t.Fatalf("unexpected view: %v", ctx[FieldView])
	}

	if fields := ViewFields("", " "); len(fields) != 0 {
		t.Fatalf("expected empty view fields, got %d", len(fields))
	}
}

func TestNew(t *testing.T) {
	for _, json := range []bool{false, true} {
		logger, err := New(json, true)
		if err != nil {
			t.Fatalf("json=%v: unexpected error: %v", json, err)
		}
		if !logger.Core().Enabled(zapcore.DebugLevel) {
			t.Fatalf("json=%v: expected debug level to be enabled", json)
		}
	}
}

func TestWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobmatch.log")

	base, err := New(true, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger, closeFile := WithFile(base, path)
	logger.Debug("skipped")
	logger.Info("ranked", zap.Int("count", 3))
	_ = logger.Sync()
	if err := closeFile(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, `"msg":"ranked"`) || !strings.Contains(content, `"count":3`) {
		t.Fatalf("unexpected log file content: %s", content)
	}
	if strings.Contains(content, "skipped") {
		t.Fatalf("debug entry must not reach the file at info level")
	}
}
