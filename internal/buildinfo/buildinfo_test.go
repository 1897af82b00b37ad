package buildinfo

import (
	"bytes"
	"testing"
)

func TestPrintBuildData(t *testing.T) {
	old := buildVersion
	buildVersion = "v1.2.3"
	defer func() { buildVersion = old }()

	var buf bytes.Buffer
	PrintBuildData(&buf)

	want := "Build version: v1.2.3\nBuild date: N/A\nBuild commit: N/A\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n%s", got)
	}
}
