package environ

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ari-lang/ast"
)

func TestManager_DefineAndGet(t *testing.T) {
	m := NewManager()
	m.Define("x", ast.Number(1))
	v, ok := m.Get("x")
	assert.True(t, ok)
	assert.Equal(t, 1.0, v.Num)
}

func TestManager_GetWalksInnerToOuter(t *testing.T) {
	m := NewManager()
	m.Define("x", ast.Number(1))
	m.Create()
	m.Define("x", ast.Number(2))
	v, _ := m.Get("x")
	assert.Equal(t, 2.0, v.Num)

	m.Destroy()
	v, _ = m.Get("x")
	assert.Equal(t, 1.0, v.Num)
}

func TestManager_AssignMutatesDefiningFrameNoShadowing(t *testing.T) {
	m := NewManager()
	m.Define("x", ast.Number(1))
	m.Create()
	ok := m.Assign("x", ast.Number(99))
	assert.True(t, ok)

	m.Destroy()
	v, _ := m.Get("x")
	assert.Equal(t, 99.0, v.Num)
}

func TestManager_AssignUndefinedFails(t *testing.T) {
	m := NewManager()
	ok := m.Assign("missing", ast.Number(1))
	assert.False(t, ok)
}

func TestManager_SnapshotIsIndependentCopy(t *testing.T) {
	m := NewManager()
	m.Define("c", ast.Number(0))
	snap := m.Snapshot()

	m.Define("c", ast.Number(5))
	assert.Equal(t, 0.0, snap["c"].Num)

	v, _ := m.Get("c")
	assert.Equal(t, 5.0, v.Num)
}

func TestManager_PushFrameThenDestroyRestoresPrior(t *testing.T) {
	m := NewManager()
	depthBefore := m.Depth()
	m.PushFrame(ast.Frame{"y": ast.Number(7)})
	v, ok := m.Get("y")
	assert.True(t, ok)
	assert.Equal(t, 7.0, v.Num)

	m.Destroy()
	assert.Equal(t, depthBefore, m.Depth())
	_, ok = m.Get("y")
	assert.False(t, ok)
}
