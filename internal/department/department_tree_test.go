package department_test

import (
	"testing"

	"go-hrms/internal/department"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dept(name string, parentID *uuid.UUID) department.Department {
	return department.Department{
		ID:             uuid.New(),
		Name:           name,
		Code:           "DEP-" + name,
		IsActive:       true,
		ParentID:       parentID,
		OrganizationID: uuid.New(),
	}
}

func TestBuildTree_NestsChildrenUnderParents(t *testing.T) {
	root := dept("Engineering", nil)
	child := dept("Platform", &root.ID)
	grandchild := dept("Infra", &child.ID)

	tree := department.BuildTree([]department.Department{grandchild, root, child})

	require.Len(t, tree, 1)
	assert.Equal(t, "Engineering", tree[0].Name)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, "Platform", tree[0].Children[0].Name)
	require.Len(t, tree[0].Children[0].Children, 1)
	assert.Equal(t, "Infra", tree[0].Children[0].Children[0].Name)
	assert.Equal(t, 3, department.CountNodes(tree))
}

func TestBuildTree_SiblingsSortedByName(t *testing.T) {
	root := dept("Company", nil)
	b := dept("Bravo", &root.ID)
	a := dept("Alpha", &root.ID)
	c := dept("Charlie", &root.ID)

	tree := department.BuildTree([]department.Department{c, root, b, a})

	require.Len(t, tree, 1)
	require.Len(t, tree[0].Children, 3)
	assert.Equal(t, "Alpha", tree[0].Children[0].Name)
	assert.Equal(t, "Bravo", tree[0].Children[1].Name)
	assert.Equal(t, "Charlie", tree[0].Children[2].Name)
}

func TestBuildTree_OrphanParentBecomesRoot(t *testing.T) {
	missing := uuid.New()
	orphan := dept("Orphan", &missing)
	root := dept("Root", nil)

	tree := department.BuildTree([]department.Department{orphan, root})

	require.Len(t, tree, 2)
	assert.Equal(t, "Orphan", tree[0].Name)
	assert.Equal(t, "Root", tree[1].Name)
	assert.Equal(t, 2, department.CountNodes(tree))
}

func TestBuildTree_CycleTerminatesAndKeepsEveryNode(t *testing.T) {
	a := dept("A", nil)
	b := dept("B", &a.ID)
	a.ParentID = &b.ID // A -> B -> A

	down := dept("Down", &b.ID)

	tree := department.BuildTree([]department.Department{a, b, down})

	// Both cycle members surface as roots; the clean child stays attached.
	assert.Equal(t, 3, department.CountNodes(tree))
	require.Len(t, tree, 2)
	assert.Equal(t, "A", tree[0].Name)
	assert.Equal(t, "B", tree[1].Name)
	require.Len(t, tree[1].Children, 1)
	assert.Equal(t, "Down", tree[1].Children[0].Name)
}

func TestBuildTree_EmptyInput(t *testing.T) {
	assert.Empty(t, department.BuildTree(nil))
}
