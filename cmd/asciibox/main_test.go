package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uyouii/ascii-boxplot/common"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const csvInput = `city,temp
oslo,1
oslo,2
oslo,3
rome,10
`

func TestCSV(t *testing.T) {
	out, err := execute(t, csvInput, "--header", "--key", "city", "--value", "temp")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 1+1+9+1+6)
	require.True(t, strings.HasPrefix(lines[0], "|1------|1.9"))
	require.Contains(t, lines[2], "oslo")
	require.Contains(t, lines[3], "n=3")
}

func TestCSV_ByIndex(t *testing.T) {
	out, err := execute(t, "1,a\n2,a\n5,b\n", "--key", "1", "--value", "0")
	require.NoError(t, err)
	require.Contains(t, out, "n=2")
}

func TestCSV_Errors(t *testing.T) {
	_, err := execute(t, "a,x\n", "--whiskers", "tukey")
	require.ErrorIs(t, err, common.ErrorInvalidInput)

	_, err = execute(t, "a\n")
	require.ErrorIs(t, err, common.ErrorInvalidInput)

	_, err = execute(t, csvInput, "--key", "country")
	require.ErrorIs(t, err, common.ErrorInvalidOption)

	_, err = execute(t, csvInput, "--whiskers", "violin")
	require.ErrorIs(t, err, common.ErrorInvalidOption)

	_, err = execute(t, csvInput, "--format", "xml")
	require.ErrorIs(t, err, common.ErrorInvalidOption)

	_, err = execute(t, "", "--header")
	require.ErrorIs(t, err, common.ErrorInvalidInput)

	for _, cell := range []string{"NaN", "Inf", "-inf", "infinity"} {
		_, err = execute(t, "g,"+cell+"\ng,1\ng,2\ng,3\nh,5\n")
		require.ErrorIs(t, err, common.ErrorInvalidInput, cell)
	}
}

func TestJSONLines(t *testing.T) {
	input := `{"host": "web1", "latency": {"p99": 12}}
{"host": "web1", "latency": {"p99": "15"}}

{"host": "web2", "latency": {"p99": 40}}
`
	out, err := execute(t, input, "--format", "json", "--key", "host", "--value", "latency.p99")
	require.NoError(t, err)
	require.Contains(t, out, "web1")
	require.Contains(t, out, "n=2")
}

func TestJSONArray(t *testing.T) {
	input := `[{"key": "a", "value": 1}, {"key": "a", "value": 2}, {"key": "b", "value": 3}]`
	recs, err := readJSON(strings.NewReader(input), "", "")
	require.NoError(t, err)
	require.Equal(t, []record{{"a", 1}, {"a", 2}, {"b", 3}}, recs)

	_, err = readJSON(strings.NewReader(`[{"key": "a"`), "", "")
	require.ErrorIs(t, err, common.ErrorInvalidInput)

	_, err = readJSON(strings.NewReader(`{"key": "a", "value": true}`), "", "")
	require.ErrorIs(t, err, common.ErrorInvalidInput)

	_, err = readJSON(strings.NewReader(`{"value": 1}`), "", "")
	require.ErrorIs(t, err, common.ErrorInvalidInput)

	_, err = readJSON(strings.NewReader(`[{"key": "a", "value": "NaN"}, {"key": "a", "value": 1}]`), "", "")
	require.ErrorIs(t, err, common.ErrorInvalidInput)

	_, err = readJSON(strings.NewReader(`{"key": "a", "value": "-Infinity"}`), "", "")
	require.ErrorIs(t, err, common.ErrorInvalidInput)
}

func TestWhiskerFlag(t *testing.T) {
	input := "g,1\ng,2\ng,3\ng,4\ng,100\n"
	tukey, err := execute(t, input)
	require.NoError(t, err)
	ranged, err := execute(t, input, "--whiskers", "range")
	require.NoError(t, err)

	// the outlier at 100 is marked only when the whiskers stop short of it
	mid := func(out string) string { return strings.Split(out, "\n")[2+4] }
	require.True(t, strings.HasSuffix(mid(tukey), "1"))
	require.True(t, strings.HasSuffix(mid(ranged), "|"))
}
