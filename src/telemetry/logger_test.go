package telemetry

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	defer func() { baseLogger = saved }()

	SetLogLevel("warn")
	Debugf("debug line")
	Infof("info line")
	Warnf("warn line")
	Errorf("error line")

	out := buf.String()
	if strings.Contains(out, "debug line") || strings.Contains(out, "info line") {
		t.Fatalf("below-level lines leaked: %s", out)
	}
	if !strings.Contains(out, "[WARN] warn line") || !strings.Contains(out, "[ERROR] error line") {
		t.Fatalf("expected warn and error lines: %s", out)
	}

	SetLogLevel("info")
}

func TestLogger_PlainMessageWithPercentNotReformatted(t *testing.T) {
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	defer func() { baseLogger = saved }()

	SetLogLevel("info")
	msg := "loaded 100% of samples"
	Infof(msg)

	if strings.Contains(buf.String(), "(MISSING)") {
		t.Fatalf("fmt artifact in output: %s", buf.String())
	}
}
