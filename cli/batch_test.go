// SPDX-License-Identifier: MIT
package cli

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/congeneric/covariance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const equalCSV = "1,0.5,0.5\n0.5,1,0.5\n0.5,0.5,1\n"

func TestBatch_TextKeepsArgumentOrder(t *testing.T) {
	t.Parallel()

	a := fixture(t, "a.csv", exampleCSV)
	b := fixture(t, "b.csv", equalCSV)

	out, _, err := run(t, "batch", "--"+jobsFlagName, "2", b, a, b)
	require.NoError(t, err)
	assert.Equal(t,
		b+": Feldt-Gilmer = 0.75\n"+a+": Feldt-Gilmer = 0.67\n"+b+": Feldt-Gilmer = 0.75\n",
		out)
}

func TestBatch_JSON(t *testing.T) {
	t.Parallel()

	a := fixture(t, "a.csv", exampleCSV)
	b := fixture(t, "b.csv", equalCSV)

	out, _, err := run(t, "--"+formatFlagName, "json", "batch", a, b)
	require.NoError(t, err)

	var got []struct {
		Source string `json:"source"`
		Report struct {
			Coefficient float64 `json:"coefficient"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, a, got[0].Source)
	assert.InDelta(t, 2.0/3.0, got[0].Report.Coefficient, 1e-12)
	assert.InDelta(t, 0.75, got[1].Report.Coefficient, 1e-12)
}

func TestBatch_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "batch")
	assert.ErrorIs(t, err, ErrUsage)

	good := fixture(t, "a.csv", exampleCSV)
	bad := fixture(t, "bad.csv", "1,2\n3,1\n")
	out, _, err := run(t, "batch", good, bad)
	assert.ErrorIs(t, err, covariance.ErrAsymmetry)
	assert.Empty(t, out, "nothing is written when any file fails")
	assert.Contains(t, err.Error(), filepath.Base(bad))
	assert.False(t, strings.Contains(out, good))
}
