package department

import "sort"

// BuildTree turns a flat department set into a forest. A row whose
// ParentID is nil, points outside the set, or closes a cycle becomes a
// root, so the output always contains exactly one node per input row and
// always terminates. Siblings are name-sorted at every level, roots
// included.
func BuildTree(depts []Department) []*TreeNode {
	nodes := make(map[string]*TreeNode, len(depts))
	parents := make(map[string]string, len(depts))
	for _, d := range depts {
		id := d.ID.String()
		nodes[id] = &TreeNode{
			DepartmentResponse: mapToResponse(d),
			Children:           []*TreeNode{},
		}
		if d.ParentID != nil {
			parents[id] = d.ParentID.String()
		}
	}

	var roots []*TreeNode
	for _, d := range depts {
		id := d.ID.String()
		node := nodes[id]

		parentID, hasParent := parents[id]
		parent, known := nodes[parentID]
		if !hasParent || !known || formsCycle(id, parentID, parents) {
			// No parent, orphan parent reference, or cycle: treat as root.
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	sortForest(roots)
	return roots
}

// formsCycle walks the parent chain upward from parentID; reaching id
// again means attaching under parentID would close a loop.
func formsCycle(id, parentID string, parents map[string]string) bool {
	visited := make(map[string]bool)
	cur := parentID
	for {
		if cur == id {
			return true
		}
		if visited[cur] {
			return false
		}
		visited[cur] = true

		next, ok := parents[cur]
		if !ok {
			return false
		}
		cur = next
	}
}

func sortForest(nodes []*TreeNode) {
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].Name < nodes[j].Name
	})
	for _, n := range nodes {
		sortForest(n.Children)
	}
}

// CountNodes reports the total node count of a forest.
func CountNodes(nodes []*TreeNode) int {
	total := 0
	for _, n := range nodes {
		total += 1 + CountNodes(n.Children)
	}
	return total
}
