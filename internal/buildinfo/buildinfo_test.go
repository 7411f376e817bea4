package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintBuildData_Defaults(t *testing.T) {
	var buf bytes.Buffer
	PrintBuildData(&buf)

	out := buf.String()
	require.Contains(t, out, "Build version: N/A")
	require.Contains(t, out, "Build date: N/A")
	require.Contains(t, out, "Build commit: N/A")
}

func TestPrintBuildData_Set(t *testing.T) {
	buildVersion = "1.2.3"
	defer func() { buildVersion = "" }()

	var buf bytes.Buffer
	PrintBuildData(&buf)

	require.Contains(t, buf.String(), "Build version: 1.2.3")
}
