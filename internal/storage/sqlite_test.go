package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pageforge/internal/blueprint"
	"pageforge/internal/component"
	"pageforge/internal/hierarchy"
	"pageforge/internal/section"
	"pageforge/internal/selector"
)

func testStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "pageforge_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testBlueprint(documentID string) *blueprint.Blueprint {
	return &blueprint.Blueprint{
		Schema:     blueprint.SchemaVersion,
		ID:         "bp-" + documentID,
		DocumentID: documentID,
		Version:    1,
		Strategy:   blueprint.PageStrategy{VisualStyle: "minimal", Pacing: "balanced"},
		Sections: []blueprint.SectionDesign{
			{
				SectionID: "s1",
				Type:      section.TypeBenefits,
				Selection: selector.Selection{Component: component.IconList, Confidence: 0.8},
			},
		},
		Meta: blueprint.Metadata{
			GeneratedAt: time.Now().UTC(),
			Mode:        "heuristic",
			InputsHash:  "hash-" + documentID,
		},
	}
}

func TestScopeRecords_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)

	style := "bold"
	rec := &hierarchy.Record{
		ID:      "rec-1",
		Scope:   hierarchy.ScopeCluster,
		OwnerID: "cluster-1",
		Settings: hierarchy.Settings{
			VisualStyle: &style,
			Avoid:       []component.Type{component.DataTable},
		},
		Reasoning: "cluster covers launch announcements",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, store.PutScope(ctx, rec))

	got, err := store.GetScope(ctx, hierarchy.ScopeCluster, "cluster-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.Settings.VisualStyle)
	assert.Equal(t, "bold", *got.Settings.VisualStyle)
	assert.Equal(t, []component.Type{component.DataTable}, got.Settings.Avoid)
	assert.Equal(t, "cluster covers launch announcements", got.Reasoning)
}

func TestGetScope_MissingIsNilNil(t *testing.T) {
	store := testStore(t)
	got, err := store.GetScope(context.Background(), hierarchy.ScopeDocument, "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPutScope_UpsertReplaces(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)

	first := "minimal"
	require.NoError(t, store.PutScope(ctx, &hierarchy.Record{
		ID: "rec-1", Scope: hierarchy.ScopeProject, OwnerID: "acct-1",
		Settings: hierarchy.Settings{VisualStyle: &first},
	}))

	second := "marketing"
	require.NoError(t, store.PutScope(ctx, &hierarchy.Record{
		ID: "rec-2", Scope: hierarchy.ScopeProject, OwnerID: "acct-1",
		Settings: hierarchy.Settings{VisualStyle: &second},
	}))

	got, err := store.GetScope(ctx, hierarchy.ScopeProject, "acct-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "rec-2", got.ID)
	assert.Equal(t, "marketing", *got.Settings.VisualStyle)
}

func TestDeleteScope_MissingIsNoError(t *testing.T) {
	store := testStore(t)
	assert.NoError(t, store.DeleteScope(context.Background(), hierarchy.ScopeDocument, "never-existed"))
}

func TestSaveBlueprint_AssignsSequentialVersions(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)

	first := testBlueprint("doc-1")
	require.NoError(t, store.SaveBlueprint(ctx, first))
	assert.Equal(t, 1, first.Version)

	second := testBlueprint("doc-1")
	second.ID = "bp-doc-1-b"
	require.NoError(t, store.SaveBlueprint(ctx, second))
	assert.Equal(t, 2, second.Version)

	// Versions are per document, not global.
	other := testBlueprint("doc-2")
	require.NoError(t, store.SaveBlueprint(ctx, other))
	assert.Equal(t, 1, other.Version)
}

func TestGetBlueprint_ByVersion(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)

	v1 := testBlueprint("doc-1")
	require.NoError(t, store.SaveBlueprint(ctx, v1))
	v2 := testBlueprint("doc-1")
	v2.Strategy.VisualStyle = "marketing"
	require.NoError(t, store.SaveBlueprint(ctx, v2))

	got, err := store.GetBlueprint(ctx, "doc-1", 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "minimal", got.Strategy.VisualStyle)
	assert.Equal(t, component.IconList, got.Sections[0].Selection.Component)

	missing, err := store.GetBlueprint(ctx, "doc-1", 9)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLatestBlueprint(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)

	none, err := store.LatestBlueprint(ctx, "doc-1")
	require.NoError(t, err)
	assert.Nil(t, none)

	require.NoError(t, store.SaveBlueprint(ctx, testBlueprint("doc-1")))
	newest := testBlueprint("doc-1")
	newest.Strategy.VisualStyle = "bold"
	require.NoError(t, store.SaveBlueprint(ctx, newest))

	got, err := store.LatestBlueprint(ctx, "doc-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.Version)
	assert.Equal(t, "bold", got.Strategy.VisualStyle)
}

func TestListBlueprintVersions_NewestFirst(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.SaveBlueprint(ctx, testBlueprint("doc-1")))
	}

	versions, err := store.ListBlueprintVersions(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, versions, 3)
	assert.Equal(t, 3, versions[0].Version)
	assert.Equal(t, 1, versions[2].Version)
	assert.Equal(t, "heuristic", versions[0].Mode)
	assert.Equal(t, "hash-doc-1", versions[0].InputsHash)
}

func TestStore_SatisfiesResolverContract(t *testing.T) {
	var _ hierarchy.Store = (*SQLiteStore)(nil)
}
