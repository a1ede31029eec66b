package main

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voidshard/wrapped/pkg/crypto"
)

const export = `ID,Datetime,Type,Amount (total),Note,From,To
1,2023-01-01T12:00:00,Payment,- $20.00,dinner 🍝,Me,Alice
2,2023-01-06T12:00:00,Payment,+ $20.50,my share,Alice,Me
3,2023-01-07T23:30:00,Payment,- $8.00,uber home,Me,Bob
4,2023-01-08T10:00:00,Standard Transfer,- $100.00,,Me,
`

type envelope struct {
	Success bool                       `json:"success"`
	Data    map[string]json.RawMessage `json:"data"`
	Error   *string                    `json:"error"`
}

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func invoke(t *testing.T, args ...string) (int, envelope, string) {
	t.Helper()
	t.Setenv("WRAPPED_OUT", "")
	t.Setenv("WRAPPED_CATEGORIES", "")

	buf := &bytes.Buffer{}
	code := run(args, buf, ioutil.Discard)

	env := envelope{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env), buf.String())
	return code, env, buf.String()
}

func TestRunSuccess(t *testing.T) {
	code, env, _ := invoke(t, write(t, "export.csv", export))

	assert.Equal(t, 0, code)
	assert.True(t, env.Success)
	assert.Nil(t, env.Error)
	assert.Len(t, env.Data, 9)

	overview := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(env.Data["spending_overview"], &overview))
	assert.Equal(t, 3.0, overview["total_transactions"])

	var pingpong []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data["money_pingpong"], &pingpong))
	require.Len(t, pingpong, 1)
	assert.Equal(t, "Alice", pingpong[0]["person"])
}

func TestRunLogsToStderr(t *testing.T) {
	path := write(t, "export.csv", export)
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	code := run([]string{path, "--log-level", "info"}, stdout, stderr)

	require.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "file="+path)
	assert.NotContains(t, stdout.String(), "file=")
}

func TestRunIsDeterministic(t *testing.T) {
	path := write(t, "export.csv", export)

	_, _, first := invoke(t, path)
	_, _, second := invoke(t, path)

	assert.Equal(t, first, second)
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name string
		args func(t *testing.T) []string
		want string
	}{
		{
			"no arguments",
			func(t *testing.T) []string { return nil },
			"usage",
		},
		{
			"two files",
			func(t *testing.T) []string { return []string{"a.csv", "b.csv"} },
			"usage",
		},
		{
			"missing file",
			func(t *testing.T) []string { return []string{filepath.Join(t.TempDir(), "nope.csv")} },
			"file not found",
		},
		{
			"missing columns",
			func(t *testing.T) []string { return []string{write(t, "x.csv", "ID,Datetime\n1,2023-01-01\n")} },
			"missing required columns",
		},
		{
			"no payments",
			func(t *testing.T) []string {
				return []string{write(t, "x.csv", "ID,Datetime,Type,Amount (total),Note\n1,2023-01-01,Standard Transfer,- $1,x\n")}
			},
			"no data",
		},
		{
			"bad timestamp",
			func(t *testing.T) []string {
				return []string{write(t, "x.csv", "ID,Datetime,Type,Amount (total),Note\n1,yesterday,Payment,- $1,x\n")}
			},
			"parse failure",
		},
		{
			"bad out",
			func(t *testing.T) []string { return []string{write(t, "x.csv", export), "--out", "ftp:/x"} },
			"unknown out scheme",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			code, env, _ := invoke(t, tt.args(t)...)

			assert.Equal(t, 1, code)
			assert.False(t, env.Success)
			assert.Nil(t, env.Data)
			require.NotNil(t, env.Error)
			assert.Contains(t, *env.Error, tt.want)
		})
	}
}

func TestRunWritesSink(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")

	code, env, _ := invoke(t, write(t, "export.csv", export), "--out", "jsonfile:"+out)
	require.Equal(t, 0, code)

	data, err := ioutil.ReadFile(out)
	require.NoError(t, err)

	stored := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Equal(t, env.Data, stored)
}

func TestRunSealedInput(t *testing.T) {
	key, sig := strings.Repeat("k", 32), strings.Repeat("s", 32)
	t.Setenv("WRAPPED_SEAL_KEY", key)
	t.Setenv("WRAPPED_SIGN_KEY", sig)

	sealer, err := crypto.NewSealer(key, sig)
	require.NoError(t, err)
	blob, err := sealer.Seal([]byte(export))
	require.NoError(t, err)
	path := write(t, "export.blob", string(blob))

	code, env, _ := invoke(t, path, "--sealed")
	assert.Equal(t, 0, code)
	assert.True(t, env.Success)

	code, env, _ = invoke(t, path)
	assert.Equal(t, 1, code)
	require.NotNil(t, env.Error)

	t.Setenv("WRAPPED_SIGN_KEY", strings.Repeat("x", 32))
	code, env, _ = invoke(t, path, "--sealed")
	assert.Equal(t, 1, code)
	require.NotNil(t, env.Error)
	assert.Contains(t, *env.Error, "parse failure")
}
