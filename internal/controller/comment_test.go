package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ujenziiq/ujenziiq-go/internal/constant"
	"github.com/ujenziiq/ujenziiq-go/internal/model"
)

func newComment(id string, parentID *string) model.Comment {
	return model.Comment{
		BaseModel: model.BaseModel{ID: id},
		AuthorID:  "author-1",
		Content:   "comment " + id,
		CommentOn: constant.CommentOnTask,
		ProjectID: "project-1",
		ParentID:  parentID,
	}
}

func strPtr(s string) *string { return &s }

func TestBuildCommentTreeNesting(t *testing.T) {
	comments := []model.Comment{
		newComment("c1", nil),
		newComment("c2", strPtr("c1")),
		newComment("c3", strPtr("c2")),
		newComment("c4", nil),
		newComment("c5", strPtr("c1")),
	}

	roots := BuildCommentTree(comments)
	require.Len(t, roots, 2)

	// roots keep input order
	assert.Equal(t, "c1", roots[0].ID)
	assert.Equal(t, "c4", roots[1].ID)

	require.Len(t, roots[0].Replies, 2)
	assert.Equal(t, "c2", roots[0].Replies[0].ID)
	assert.Equal(t, "c5", roots[0].Replies[1].ID)

	require.Len(t, roots[0].Replies[0].Replies, 1)
	assert.Equal(t, "c3", roots[0].Replies[0].Replies[0].ID)

	assert.Empty(t, roots[1].Replies)
}

func TestBuildCommentTreeOrphanedParent(t *testing.T) {
	// c2 references a parent that was filtered out of the row set, it should
	// still surface at top level instead of being dropped.
	comments := []model.Comment{
		newComment("c1", nil),
		newComment("c2", strPtr("missing")),
	}

	roots := BuildCommentTree(comments)
	require.Len(t, roots, 2)
	assert.Equal(t, "c1", roots[0].ID)
	assert.Equal(t, "c2", roots[1].ID)
}

func TestBuildCommentTreeCyclicParents(t *testing.T) {
	// Bad data: c1 and c2 point at each other. Shaping must terminate and
	// neither comment may vanish from the output.
	comments := []model.Comment{
		newComment("c1", strPtr("c2")),
		newComment("c2", strPtr("c1")),
		newComment("c3", nil),
	}

	roots := BuildCommentTree(comments)

	seen := map[string]bool{}
	var walk func(nodes []CommentNode)
	walk = func(nodes []CommentNode) {
		for _, n := range nodes {
			seen[n.ID] = true
			walk(n.Replies)
		}
	}
	walk(roots)

	assert.Len(t, seen, 3)
	assert.True(t, seen["c1"])
	assert.True(t, seen["c2"])
	assert.True(t, seen["c3"])
}

func TestBuildCommentTreeEmpty(t *testing.T) {
	assert.Empty(t, BuildCommentTree(nil))
}

// A single-comment fetch serves the comment's own reply subtree, even when
// the comment is itself a nested reply.
func TestFindCommentNode(t *testing.T) {
	comments := []model.Comment{
		newComment("c1", nil),
		newComment("c2", strPtr("c1")),
		newComment("c3", strPtr("c2")),
		newComment("c4", nil),
	}
	forest := BuildCommentTree(comments)

	node := findCommentNode(forest, "c2")
	require.NotNil(t, node)
	assert.Equal(t, "c2", node.ID)
	require.Len(t, node.Replies, 1)
	assert.Equal(t, "c3", node.Replies[0].ID)

	root := findCommentNode(forest, "c4")
	require.NotNil(t, root)
	assert.Empty(t, root.Replies)

	assert.Nil(t, findCommentNode(forest, "missing"))
}
