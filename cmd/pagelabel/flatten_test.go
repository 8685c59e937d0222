package main_test

import (
	"path/filepath"
	"testing"

	main "github.com/fwojciec/pagelabel/cmd/pagelabel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("flattens html and Google Docs exports", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "exports", "C1 Page.html"),
			"<html><body><h1>Tile</h1><table><tr><td>A</td><td>B</td></tr></table></body></html>")
		writeFile(t, filepath.Join(dir, "exports", "C2 Page.json"),
			`{"body":{"content":[{"paragraph":{"elements":[{"textRun":{"content":"Carpet\n"}}]}}]}}`)

		deps, stdout, _ := testDeps()
		cmd := &main.FlattenCmd{
			Exports:     filepath.Join(dir, "exports"),
			DataDir:     filepath.Join(dir, "raw"),
			Concurrency: 2,
		}

		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "Tile\nA\nB\n", readFile(t, filepath.Join(dir, "raw", "C1 Page.txt")))
		assert.Equal(t, "Carpet\n", readFile(t, filepath.Join(dir, "raw", "C2 Page.txt")))
		assert.Contains(t, stdout.String(), "2 of 2 documents")
	})

	t.Run("reports undecodable exports without aborting", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "exports", "C1 Broken.docx"), "not a zip")
		writeFile(t, filepath.Join(dir, "exports", "C2 Page.json"), `{"body":{"content":[]}}`)

		deps, stdout, stderr := testDeps()
		cmd := &main.FlattenCmd{
			Exports: filepath.Join(dir, "exports"),
			DataDir: filepath.Join(dir, "raw"),
		}

		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stderr.String(), "skip C1 Broken.docx")
		assert.Contains(t, stdout.String(), "1 of 2 documents (failed: 1 load)")
	})
}
