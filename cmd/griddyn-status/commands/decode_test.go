package commands

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/griddyn/griddyn-go/pkg/status"
	"github.com/griddyn/griddyn-go/pkg/wire"
)

func TestRunDecode(t *testing.T) {
	data, err := wire.EncodeResult(&wire.Result{Call: "gridDynSimulation_run", Status: status.SolveError, Detail: "diverged"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RunDecode(data, &buf))

	output := buf.String()
	assert.Contains(t, output, "Call:   gridDynSimulation_run")
	assert.Contains(t, output, "Status: 8 solve_error (griddyn_solve_error)")
	assert.Contains(t, output, "Detail: diverged")
}

func TestRunDecodeUnknownStatus(t *testing.T) {
	// {1: "run", 2: 12}
	data, err := DecodeHex("a2 01 63 72 75 6e 02 0c")
	require.NoError(t, err)

	var buf bytes.Buffer
	err = RunDecode(data, &buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrUnknownStatusCode), "error = %v", err)
}

func TestDecodeHex(t *testing.T) {
	data, err := DecodeHex("0xA2 01")
	require.NoError(t, err)
	assert.Equal(t, "a201", hex.EncodeToString(data))

	_, err = DecodeHex("zz")
	assert.Error(t, err)
}
