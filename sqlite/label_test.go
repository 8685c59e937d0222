package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fwojciec/pagelabel"
	"github.com/fwojciec/pagelabel/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(sqlite.MemoryPath)
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func newLabel(fileName, storeName, template string) *pagelabel.Label {
	return &pagelabel.Label{
		Metadata: pagelabel.Metadata{
			FileName:      fileName,
			Title:         storeName + " " + template,
			StoreName:     storeName,
			StoreLocation: "Nashua ",
			PageTemplate:  template,
			Keywords:      []string{"tile", "ratio 3:1"},
		},
		Body: "Body of " + fileName,
	}
}

func TestLabelService_CreateLabel(t *testing.T) {
	t.Parallel()

	t.Run("creates label with generated ID, hash and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLabelService(setupTestDB(t))
		label := newLabel("C1.txt", "Smith Carpet One", "Tile")

		err := svc.CreateLabel(context.Background(), label)

		require.NoError(t, err)
		assert.NotEmpty(t, label.ID)
		assert.Len(t, label.BodyHash, 16)
		assert.False(t, label.CreatedAt.IsZero())
	})

	t.Run("returns error for invalid label", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLabelService(setupTestDB(t))

		err := svc.CreateLabel(context.Background(), &pagelabel.Label{})

		assert.Equal(t, pagelabel.EINVALID, pagelabel.ErrorCode(err))
	})

	t.Run("replaces label with same file name and keeps its ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLabelService(setupTestDB(t))
		ctx := context.Background()

		first := newLabel("C1.txt", "Smith Carpet One", "Tile")
		require.NoError(t, svc.CreateLabel(ctx, first))

		second := newLabel("C1.txt", "Smith Carpet One", "Hardwood")
		second.Body = "changed"
		require.NoError(t, svc.CreateLabel(ctx, second))

		assert.Equal(t, first.ID, second.ID)
		assert.NotEqual(t, first.BodyHash, second.BodyHash)

		got, err := svc.FindLabelByFileName(ctx, "C1.txt")
		require.NoError(t, err)
		assert.Equal(t, "Hardwood", got.Metadata.PageTemplate)
		assert.Equal(t, "changed", got.Body)

		all, err := svc.FindLabels(ctx, pagelabel.LabelFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("identical bodies hash identically", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLabelService(setupTestDB(t))
		ctx := context.Background()

		a := newLabel("C1.txt", "A", "Tile")
		b := newLabel("C2.txt", "B", "Tile")
		b.Body = a.Body
		require.NoError(t, svc.CreateLabel(ctx, a))
		require.NoError(t, svc.CreateLabel(ctx, b))

		assert.Equal(t, a.BodyHash, b.BodyHash)
	})
}

func TestLabelService_FindLabelByFileName(t *testing.T) {
	t.Parallel()

	t.Run("round trips metadata", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLabelService(setupTestDB(t))
		ctx := context.Background()
		label := newLabel("C1.txt", "Smith Carpet One", "Tile")
		require.NoError(t, svc.CreateLabel(ctx, label))

		got, err := svc.FindLabelByFileName(ctx, "C1.txt")

		require.NoError(t, err)
		assert.Equal(t, label.ID, got.ID)
		assert.Equal(t, label.Metadata, got.Metadata)
		assert.Equal(t, label.Body, got.Body)
		assert.Equal(t, label.BodyHash, got.BodyHash)
		assert.True(t, label.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("returns ENOTFOUND for missing label", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLabelService(setupTestDB(t))

		_, err := svc.FindLabelByFileName(context.Background(), "missing.txt")

		assert.Equal(t, pagelabel.ENOTFOUND, pagelabel.ErrorCode(err))
	})

	t.Run("empty keywords read back as empty", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLabelService(setupTestDB(t))
		ctx := context.Background()
		label := newLabel("C1.txt", "A", "Tile")
		label.Metadata.Keywords = nil
		require.NoError(t, svc.CreateLabel(ctx, label))

		got, err := svc.FindLabelByFileName(ctx, "C1.txt")

		require.NoError(t, err)
		assert.Empty(t, got.Metadata.Keywords)
	})
}

func TestLabelService_FindLabels(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewLabelService(setupTestDB(t))
	ctx := context.Background()
	for _, l := range []*pagelabel.Label{
		newLabel("C3.txt", "Fox Floors", "Tile"),
		newLabel("C1.txt", "Smith Carpet One", "Tile"),
		newLabel("C2.txt", "Smith Carpet One", "Hardwood"),
		newLabel("C4.txt", "Smith Carpet One", "Tile"),
	} {
		require.NoError(t, svc.CreateLabel(ctx, l))
	}

	fileNames := func(labels []*pagelabel.Label) []string {
		names := make([]string, len(labels))
		for i, l := range labels {
			names[i] = l.Metadata.FileName
		}
		return names
	}
	ptr := func(s string) *string { return &s }

	tests := []struct {
		name   string
		filter pagelabel.LabelFilter
		want   []string
	}{
		{name: "all ordered by file name", filter: pagelabel.LabelFilter{}, want: []string{"C1.txt", "C2.txt", "C3.txt", "C4.txt"}},
		{name: "by store name", filter: pagelabel.LabelFilter{StoreName: ptr("Smith Carpet One")}, want: []string{"C1.txt", "C2.txt", "C4.txt"}},
		{name: "by store and template", filter: pagelabel.LabelFilter{StoreName: ptr("Smith Carpet One"), PageTemplate: ptr("Tile")}, want: []string{"C1.txt", "C4.txt"}},
		{name: "limit", filter: pagelabel.LabelFilter{Limit: 2}, want: []string{"C1.txt", "C2.txt"}},
		{name: "limit and offset", filter: pagelabel.LabelFilter{Limit: 2, Offset: 2}, want: []string{"C3.txt", "C4.txt"}},
		{name: "offset without limit", filter: pagelabel.LabelFilter{Offset: 3}, want: []string{"C4.txt"}},
		{name: "no match", filter: pagelabel.LabelFilter{StoreName: ptr("Nice Carpets")}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			labels, err := svc.FindLabels(ctx, tt.filter)

			require.NoError(t, err)
			assert.Equal(t, tt.want, fileNames(labels))
		})
	}
}

func TestLabelService_DeleteLabel(t *testing.T) {
	t.Parallel()

	t.Run("removes label", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLabelService(setupTestDB(t))
		ctx := context.Background()
		require.NoError(t, svc.CreateLabel(ctx, newLabel("C1.txt", "A", "Tile")))

		require.NoError(t, svc.DeleteLabel(ctx, "C1.txt"))

		_, err := svc.FindLabelByFileName(ctx, "C1.txt")
		assert.Equal(t, pagelabel.ENOTFOUND, pagelabel.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for missing label", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLabelService(setupTestDB(t))

		err := svc.DeleteLabel(context.Background(), fmt.Sprintf("C%d.txt", 99))

		assert.Equal(t, pagelabel.ENOTFOUND, pagelabel.ErrorCode(err))
	})
}
