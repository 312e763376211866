package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"jobboard-backend/internal/figures"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	renderFlags.records, renderFlags.out, renderFlags.config, renderFlags.presets = "", "./figures", "", nil
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute(), buf.String())
	return buf.String()
}

func TestRenderWritesOnePNGPerPreset(t *testing.T) {
	dir := t.TempDir()
	out := execute(t, "render", "--out", dir,
		"--preset", "experience_salary_tree",
		"--preset", "experience_salary_linear")

	require.Contains(t, out, "Applications: 15")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		require.True(t, strings.HasSuffix(e.Name(), ".png"), e.Name())
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)
		require.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
	}
}

func TestRenderRecordsFile(t *testing.T) {
	dir := t.TempDir()
	records := filepath.Join(t.TempDir(), "apps.json")
	body := `[
		{"name":"a","years_of_experience":0,"has_diploma":false,"salary":1000},
		{"name":"b","years_of_experience":5,"has_diploma":true,"salary":3000},
		{"name":"c","years_of_experience":10,"has_diploma":true,"salary":4500}
	]`
	require.NoError(t, os.WriteFile(records, []byte(body), 0o644))

	out := execute(t, "render", "--out", dir, "--records", records, "--preset", "experience_salary_tree")
	require.Contains(t, out, "Applications: 3")
	require.Contains(t, out, "experience_salary_tree")
}

func TestSelectPairingsUnknownPreset(t *testing.T) {
	_, err := selectPairings("", []string{"nope"})
	require.Error(t, err)
}

func TestIDCommandPrintsParsableID(t *testing.T) {
	out := strings.TrimSpace(execute(t, "id", "--feature", "salary", "--target", "years_of_experience"))
	id, err := figures.ParseID(out)
	require.NoError(t, err)
	require.Equal(t, "salary", id.Feature)
	require.Equal(t, "years_of_experience", id.Target)
}
