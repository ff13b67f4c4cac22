package core

import "testing"

// kdPoint is a minimal KDItem used only to exercise the generic tree build.
type kdPoint struct {
	pos Vec3
}

func (p kdPoint) AxisValue(axis int) float64 {
	switch axis {
	case 0:
		return p.pos.X
	case 1:
		return p.pos.Y
	default:
		return p.pos.Z
	}
}

func (p kdPoint) Bounds() AABB {
	return NewAABBFromPoint(p.pos)
}

func TestBuildKDTree_EmptyReturnsNil(t *testing.T) {
	if tree := BuildKDTree[kdPoint](nil); tree != nil {
		t.Error("expected nil tree for empty input")
	}
}

func TestBuildKDTree_NodeAABBContainsChildren(t *testing.T) {
	items := []kdPoint{
		{NewVec3(0, 0, 0)}, {NewVec3(5, 1, -2)}, {NewVec3(-3, 4, 1)},
		{NewVec3(2, -2, 3)}, {NewVec3(1, 1, 1)}, {NewVec3(-5, -5, -5)},
		{NewVec3(7, 2, 0)},
	}
	root := BuildKDTree(items)
	if root == nil {
		t.Fatal("expected non-nil tree")
	}
	assertAABBContainsSubtree(t, root)
}

func assertAABBContainsSubtree[T KDItem](t *testing.T, node *KDNode[T]) {
	t.Helper()
	if node == nil {
		return
	}
	itemBox := node.Item.Bounds()
	if !aabbContains(node.AABB, itemBox) {
		t.Errorf("node AABB %v does not contain item AABB %v", node.AABB, itemBox)
	}
	if node.Left != nil {
		if !aabbContains(node.AABB, node.Left.AABB) {
			t.Errorf("node AABB %v does not contain left child AABB %v", node.AABB, node.Left.AABB)
		}
		assertAABBContainsSubtree(t, node.Left)
	}
	if node.Right != nil {
		if !aabbContains(node.AABB, node.Right.AABB) {
			t.Errorf("node AABB %v does not contain right child AABB %v", node.AABB, node.Right.AABB)
		}
		assertAABBContainsSubtree(t, node.Right)
	}
}

func aabbContains(outer, inner AABB) bool {
	const eps = 1e-9
	return outer.Min.X <= inner.Min.X+eps && outer.Min.Y <= inner.Min.Y+eps && outer.Min.Z <= inner.Min.Z+eps &&
		outer.Max.X >= inner.Max.X-eps && outer.Max.Y >= inner.Max.Y-eps && outer.Max.Z >= inner.Max.Z-eps
}

func TestQuickselectByAxis_MedianPartitionedCorrectly(t *testing.T) {
	items := []kdPoint{
		{NewVec3(5, 0, 0)}, {NewVec3(1, 0, 0)}, {NewVec3(9, 0, 0)},
		{NewVec3(3, 0, 0)}, {NewVec3(7, 0, 0)}, {NewVec3(2, 0, 0)}, {NewVec3(8, 0, 0)},
	}
	mid := len(items) / 2
	quickselectByAxis(items, 0, mid)

	medianVal := items[mid].AxisValue(0)
	for i := 0; i < mid; i++ {
		if items[i].AxisValue(0) > medianVal {
			t.Errorf("left partition element %v exceeds median %v", items[i].AxisValue(0), medianVal)
		}
	}
	for i := mid + 1; i < len(items); i++ {
		if items[i].AxisValue(0) < medianVal {
			t.Errorf("right partition element %v is less than median %v", items[i].AxisValue(0), medianVal)
		}
	}
}
