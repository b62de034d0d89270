package diag_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/Flaque/filet"
	"github.com/Sepsepi/blakeaddr/internal/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkthrough_Run(t *testing.T) {
	defer filet.CleanUp(t)
	dir := filet.TmpDir(t, "")

	var out bytes.Buffer
	diag.New(&out, dir).Run()

	report := out.String()

	// Every sample address must round-trip byte-for-byte.
	for i, address := range diag.SampleAddresses {
		assert.Contains(t, report, fmt.Sprintf("%d. Address: '%s'", i+1, address))
		assert.Contains(t, report, fmt.Sprintf("Address: '%s'", address))
	}
	assert.Contains(t, report, "Name: 'TEST PERSON'")
	assert.NotContains(t, report, "Error:")

	// Cleanup postcondition: no transient file survives the run.
	for i := range diag.SampleAddresses {
		path := filepath.Join(dir, fmt.Sprintf("debug_test_%d.csv", i+1))
		_, err := os.Stat(path)
		require.ErrorIs(t, err, os.ErrNotExist)
	}
}

func TestWalkthrough_WriteFailureIsNonFatal(t *testing.T) {
	defer filet.CleanUp(t)
	dir := filet.TmpDir(t, "")

	// Point the walkthrough at a path that cannot hold files.
	missing := filepath.Join(dir, "does", "not", "exist")

	var out bytes.Buffer
	diag.New(&out, missing).Run()

	report := out.String()
	assert.Contains(t, report, "Error:")
	// All four samples are still attempted.
	for i := range diag.SampleAddresses {
		assert.Contains(t, report, fmt.Sprintf("%d. Address:", i+1))
	}
}
