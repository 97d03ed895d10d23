package hierarchy

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pageforge/internal/blueprint"
)

// ErrVersionNotFound reports a revert request against a blueprint
// version that was never stored.
var ErrVersionNotFound = errors.New("blueprint version not found")

// Store is the persistence the resolver needs. A missing scope record is
// reported as (nil, nil), never as an error.
type Store interface {
	GetScope(ctx context.Context, scope Scope, ownerID string) (*Record, error)
	PutScope(ctx context.Context, rec *Record) error
	DeleteScope(ctx context.Context, scope Scope, ownerID string) error

	SaveBlueprint(ctx context.Context, bp *blueprint.Blueprint) error
	GetBlueprint(ctx context.Context, documentID string, version int) (*blueprint.Blueprint, error)
	LatestBlueprint(ctx context.Context, documentID string) (*blueprint.Blueprint, error)
	ListBlueprintVersions(ctx context.Context, documentID string) ([]VersionInfo, error)
}

// VersionInfo is one entry in a document's blueprint history.
type VersionInfo struct {
	Version     int       `json:"version"`
	GeneratedAt time.Time `json:"generated_at"`
	Mode        string    `json:"mode"`
	InputsHash  string    `json:"inputs_hash"`
}

// Resolver merges the three scope levels into effective settings and
// manages blueprint version history.
type Resolver struct {
	store Store
}

func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve reads the Document, Cluster, and Project records and folds
// them into one effective configuration. Absent records simply fall
// through to the next level; only storage failures are errors.
func (r *Resolver) Resolve(ctx context.Context, projectID, clusterID, documentID string) (Resolved, error) {
	doc, err := r.scopeSettings(ctx, ScopeDocument, documentID)
	if err != nil {
		return Resolved{}, err
	}
	cluster, err := r.scopeSettings(ctx, ScopeCluster, clusterID)
	if err != nil {
		return Resolved{}, err
	}
	project, err := r.scopeSettings(ctx, ScopeProject, projectID)
	if err != nil {
		return Resolved{}, err
	}
	return Merge(doc, cluster, project), nil
}

func (r *Resolver) scopeSettings(ctx context.Context, scope Scope, ownerID string) (*Settings, error) {
	if ownerID == "" {
		return nil, nil
	}
	rec, err := r.store.GetScope(ctx, scope, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s settings for %s: %w", scope, ownerID, err)
	}
	if rec == nil {
		return nil, nil
	}
	return &rec.Settings, nil
}

// SetScope creates or replaces one scope record.
func (r *Resolver) SetScope(ctx context.Context, scope Scope, ownerID string, settings Settings, reasoning string) (*Record, error) {
	rec := &Record{
		ID:        uuid.NewString(),
		Scope:     scope,
		OwnerID:   ownerID,
		Settings:  settings,
		Reasoning: reasoning,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.store.PutScope(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to store %s settings: %w", scope, err)
	}
	return rec, nil
}

// DeleteScope removes one scope record. Deleting a record that does not
// exist is not an error: resolution falls back to the next level up.
func (r *Resolver) DeleteScope(ctx context.Context, scope Scope, ownerID string) error {
	return r.store.DeleteScope(ctx, scope, ownerID)
}

// NeedsRegeneration reports whether the stored blueprint for a document
// is stale against the current generation inputs. A document with no
// stored blueprint always needs generation.
func (r *Resolver) NeedsRegeneration(ctx context.Context, documentID, currentInputsHash string) (bool, error) {
	bp, err := r.store.LatestBlueprint(ctx, documentID)
	if err != nil {
		return false, err
	}
	if bp == nil {
		return true, nil
	}
	return bp.Meta.InputsHash != currentInputsHash, nil
}

// History lists a document's stored blueprint versions, newest first.
func (r *Resolver) History(ctx context.Context, documentID string) ([]VersionInfo, error) {
	return r.store.ListBlueprintVersions(ctx, documentID)
}

// Revert copies an old version's content into a new version. It never
// rewinds in place, so the full history stays inspectable.
func (r *Resolver) Revert(ctx context.Context, documentID string, version int) (*blueprint.Blueprint, error) {
	old, err := r.store.GetBlueprint(ctx, documentID, version)
	if err != nil {
		return nil, err
	}
	if old == nil {
		return nil, fmt.Errorf("revert %s to v%d: %w", documentID, version, ErrVersionNotFound)
	}

	// SaveBlueprint assigns the next version number, so the revert lands
	// on top of the history instead of rewinding it.
	restored := *old
	restored.ID = uuid.NewString()
	restored.Meta.GeneratedAt = time.Now().UTC()
	restored.Meta.Mode = fmt.Sprintf("revert-to-v%d", version)
	if err := r.store.SaveBlueprint(ctx, &restored); err != nil {
		return nil, fmt.Errorf("failed to store reverted blueprint: %w", err)
	}
	return &restored, nil
}

// Summary renders the resolved settings for display, annotating each
// value with the scope it came from.
func Summary(res Resolved) string {
	var sb strings.Builder
	line := func(field, value string) {
		src := res.Sources[field]
		if src == "" {
			src = "default"
		}
		fmt.Fprintf(&sb, "%-16s %-14s (%s)\n", field, value, src)
	}
	line("visual_style", res.VisualStyle)
	line("pacing", res.Pacing)
	line("color_intensity", res.ColorIntensity)
	line("cta_placement", res.CTAPlacement)
	line("cta_intensity", res.CTAIntensity)
	if len(res.Prefer) > 0 {
		fmt.Fprintf(&sb, "%-16s %v (%s)\n", "prefer", res.Prefer, res.Sources["prefer"])
	}
	if len(res.Avoid) > 0 {
		fmt.Fprintf(&sb, "%-16s %v (%s)\n", "avoid", res.Avoid, res.Sources["avoid"])
	}
	return sb.String()
}
