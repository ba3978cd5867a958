package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docanalyzer/internal/domain"
)

func TestWorkspace_Status(t *testing.T) {
	ws := domain.NewWorkspace(uuid.New(), time.Now())
	assert.Equal(t, domain.WorkspaceStatusIdle, ws.Status())

	ws.File = &domain.HeldFile{Name: "a.txt"}
	assert.Equal(t, domain.WorkspaceStatusFileSelected, ws.Status())

	ws.Analyzing = true
	assert.Equal(t, domain.WorkspaceStatusAnalyzing, ws.Status())

	ws.Analyzing = false
	ws.Prepend(domain.AnalysisRecord{ID: uuid.New()})
	assert.Equal(t, domain.WorkspaceStatusAnalyzed, ws.Status())
}

func TestWorkspace_PrependSelectsNewest(t *testing.T) {
	ws := domain.NewWorkspace(uuid.New(), time.Now())
	first := domain.AnalysisRecord{ID: uuid.New(), Filename: "first.txt"}
	second := domain.AnalysisRecord{ID: uuid.New(), Filename: "second.txt"}

	ws.Prepend(first)
	ws.Prepend(second)

	require.Len(t, ws.History, 2)
	assert.Equal(t, second.ID, ws.History[0].ID)
	assert.Equal(t, first.ID, ws.History[1].ID)

	selected, ok := ws.Selected()
	require.True(t, ok)
	assert.Equal(t, second.ID, selected.ID)
}

func TestWorkspace_FindRecord(t *testing.T) {
	ws := domain.NewWorkspace(uuid.New(), time.Now())
	rec := domain.AnalysisRecord{ID: uuid.New()}
	ws.Prepend(rec)

	got, ok := ws.FindRecord(rec.ID)
	assert.True(t, ok)
	assert.Equal(t, rec, got)

	_, ok = ws.FindRecord(uuid.New())
	assert.False(t, ok)
}

func TestWorkspace_CloneIsDeep(t *testing.T) {
	ws := domain.NewWorkspace(uuid.New(), time.Now())
	ws.File = &domain.HeldFile{Name: "a.txt", Content: []byte("abc")}
	ws.Prepend(domain.AnalysisRecord{ID: uuid.New(), Summary: "original"})

	c := ws.Clone()
	c.File.Content[0] = 'X'
	c.File.Name = "b.txt"
	c.History[0].Summary = "changed"
	*c.SelectedID = uuid.New()

	assert.Equal(t, "abc", string(ws.File.Content))
	assert.Equal(t, "a.txt", ws.File.Name)
	assert.Equal(t, "original", ws.History[0].Summary)
	assert.Equal(t, ws.History[0].ID, *ws.SelectedID)
}

func TestWorkspace_ViewHidesContent(t *testing.T) {
	ws := domain.NewWorkspace(uuid.New(), time.Now())
	ws.File = &domain.HeldFile{Name: "a.txt", Size: 3, Content: []byte("abc")}
	rec := domain.AnalysisRecord{ID: uuid.New(), Filename: "a.txt"}
	ws.Prepend(rec)

	v := ws.View()
	require.NotNil(t, v.File)
	assert.Nil(t, v.File.Content)
	assert.Equal(t, "abc", string(ws.File.Content))
	require.NotNil(t, v.Selected)
	assert.Equal(t, rec.ID, v.Selected.ID)
	assert.Equal(t, 1, v.HistoryCount)
}
