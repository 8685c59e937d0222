package main_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/pagelabel"
	main "github.com/fwojciec/pagelabel/cmd/pagelabel"
	"github.com/fwojciec/pagelabel/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const labelCSV = "file_name,title,store_name,store_location,page_template,keywords\n" +
	"C1 Smith Carpet One Tile.txt,Smith Carpet One Tile,Smith Carpet One,,Tile,tile\n" +
	"C2 Fox Floors,Fox Floors,Fox Floors,\"Ottawa Canada\",,\n"

func TestPromptsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("renders one prompt per record and the training CSV", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "metadata.csv"), labelCSV)
		writeFile(t, filepath.Join(dir, "raw", "C1 Smith Carpet One Tile.txt"), "Tile body\n")
		writeFile(t, filepath.Join(dir, "raw", "C2 Fox Floors.txt"), "Fox body\n")

		deps, stdout, _ := testDeps()
		cmd := &main.PromptsCmd{
			LabelCSV:    filepath.Join(dir, "metadata.csv"),
			DataDir:     filepath.Join(dir, "raw"),
			OutputDir:   filepath.Join(dir, "processed"),
			TrainingCSV: filepath.Join(dir, "processed", "training_data.csv"),
		}

		require.NoError(t, cmd.Run(deps))

		want := "[LABELS]\n\n" +
			"title: Smith Carpet One Tile\n\n" +
			"store_name: Smith Carpet One\n\n" +
			"store_location: \n\n" +
			"page_template: Tile\n\n" +
			"keywords: tile\n\n" +
			"[BODY]\n\nTile body\n"
		assert.Equal(t, want, readFile(t, filepath.Join(dir, "processed", main.PromptsDir, "C1 Smith Carpet One Tile.txt")))
		assert.FileExists(t, filepath.Join(dir, "processed", main.PromptsDir, "C2 Fox Floors.txt"))
		assert.NoDirExists(t, filepath.Join(dir, "processed", main.PromptsDir+".tmp"))

		f, err := os.Open(cmd.TrainingCSV)
		require.NoError(t, err)
		defer f.Close()
		prompts, err := csv.ReadPrompts(f)
		require.NoError(t, err)
		require.Len(t, prompts, 2)
		assert.Equal(t, want, prompts[0])
		assert.Contains(t, stdout.String(), "Rendered 2 prompts")
	})

	t.Run("aborts when a raw document is missing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "metadata.csv"), labelCSV)
		writeFile(t, filepath.Join(dir, "raw", "C1 Smith Carpet One Tile.txt"), "Tile body\n")

		deps, _, stderr := testDeps()
		cmd := &main.PromptsCmd{
			LabelCSV:    filepath.Join(dir, "metadata.csv"),
			DataDir:     filepath.Join(dir, "raw"),
			OutputDir:   filepath.Join(dir, "processed"),
			TrainingCSV: filepath.Join(dir, "processed", "training_data.csv"),
		}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, pagelabel.ENOTFOUND, pagelabel.ErrorCode(err))
		assert.Contains(t, stderr.String(), "C2 Fox Floors")
		assert.NoDirExists(t, filepath.Join(dir, "processed", main.PromptsDir))
		assert.NoDirExists(t, filepath.Join(dir, "processed", main.PromptsDir+".tmp"))
	})

	t.Run("returns not found for missing label CSV", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		deps, _, _ := testDeps()
		cmd := &main.PromptsCmd{
			LabelCSV:    filepath.Join(dir, "missing.csv"),
			DataDir:     dir,
			OutputDir:   dir,
			TrainingCSV: filepath.Join(dir, "training_data.csv"),
		}

		err := cmd.Run(deps)

		assert.Equal(t, pagelabel.ENOTFOUND, pagelabel.ErrorCode(err))
	})
}
