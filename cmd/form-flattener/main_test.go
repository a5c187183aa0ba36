package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = `
firstName: John
name: Doe
usernames: [john.doe, jdoe]
diplomas:
  - name: License
    year: 2019
metadatas:
  gender: null
  nickname: JD
`

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRun(t *testing.T) {
	code, out, errOut := runCLI(t, document)
	require.Equal(t, 0, code, errOut)

	assert.Equal(t, strings.Join([]string{
		"diplomas[0][name]=License",
		"diplomas[0][year]=2019",
		"firstName=John",
		"metadatas[gender]=",
		"metadatas[nickname]=JD",
		"name=Doe",
		"usernames[0]=john.doe",
		"usernames[1]=jdoe",
	}, "\n")+"\n", out)
}

func TestRun_Declared(t *testing.T) {
	code, out, errOut := runCLI(t, `{"name": "Doe", "tags": ["a", "b"]}`, "-elements", "declared")
	require.Equal(t, 0, code, errOut)

	assert.Equal(t, "name=Doe\ntags=[a b]\n", out)
}

func TestRun_Encode(t *testing.T) {
	code, out, errOut := runCLI(t, "name: D&D\nfirst name: Jean\n", "-encode", "-")
	require.Equal(t, 0, code, errOut)

	assert.Equal(t, "first+name=Jean&name=D%26D\n", out)
}

func TestRun_File(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "form.yaml")
	require.NoError(t, os.WriteFile(doc, []byte("name: Doe\nlist: [1, 2]\n"), 0o644))

	profile := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(profile, []byte("version: \"1\"\nelements: declared\n"), 0o644))

	code, out, errOut := runCLI(t, "", "-profile", profile, doc)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "list=[1 2]\nname=Doe\n", out, "the profile selects declared elements")

	code, out, errOut = runCLI(t, "", "-profile", profile, "-elements", "runtime", doc)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "list[0]=1\nlist[1]=2\nname=Doe\n", out, "-elements overrides the profile")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		code  int
		want  string
	}{
		{name: "bad flag", args: []string{"-nope"}, code: 2, want: "flag provided but not defined"},
		{name: "elements typo", args: []string{"-elements", "runtme"}, code: 2, want: `did you mean "runtime"?`},
		{name: "too many files", args: []string{"a.yaml", "b.yaml"}, code: 2, want: "at most one input file"},
		{name: "missing file", args: []string{"missing.yaml"}, code: 1, want: "failed to read document missing.yaml"},
		{name: "missing profile", args: []string{"-profile", "missing.yaml"}, code: 1, want: "failed to read profile"},
		{name: "bad yaml", stdin: "a: [", code: 1, want: "failed to parse document"},
		{name: "list root", stdin: "- a\n- b\n", code: 1, want: "form root must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCLI(t, tt.stdin, tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Contains(t, errOut, tt.want)
		})
	}
}

func TestRun_Help(t *testing.T) {
	code, _, errOut := runCLI(t, "", "-h")
	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "-elements")
}
