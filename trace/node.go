package trace

// Trace runs the swept-point query described in spec.md §4.4 from
// origin to dest and returns the first-hit result. mask selects which
// brush contents participate; pass 0 to use DefaultMask
// (bsp.ContentsSolid).
func (t *Tracer) Trace(origin, dest Vec3, mask int32) Trace {
	if mask == 0 {
		mask = DefaultMask
	}

	tr := Trace{Fraction: 1, EndPos: dest}
	if len(t.nodes) == 0 {
		return tr
	}

	t.traceNode(0, 0, 1, origin, dest, mask, &tr)

	if tr.StartSolid {
		// The origin began embedded in solid: the trace never got
		// anywhere, regardless of any further geometry along the segment.
		tr.Fraction = 0
	}
	if tr.Fraction < 1 {
		tr.EndPos = origin.Add(dest.Sub(origin).Mul(tr.Fraction))
	}
	return tr
}

// traceNode is the recursive node descent of spec.md §4.4. nodeIndex
// follows the on-disk negative-child-encodes-a-leaf convention.
func (t *Tracer) traceNode(nodeIndex int32, startFrac, endFrac float32, origin, dest Vec3, mask int32, tr *Trace) {
	if tr.Fraction < startFrac {
		// No reachable hit in this interval can improve the current answer.
		return
	}

	if nodeIndex < 0 {
		leaf := int(-1 - nodeIndex)
		t.traceLeaf(leaf, origin, dest, mask, tr)
		return
	}

	node := t.nodes[nodeIndex]
	plane := t.planes[node.PlaneIndex]
	t1 := plane.Classify(origin)
	t2 := plane.Classify(dest)

	if t1 >= 0 && t2 >= 0 {
		t.traceNode(node.Children[0], startFrac, endFrac, origin, dest, mask, tr)
		return
	}
	if t1 < 0 && t2 < 0 {
		t.traceNode(node.Children[1], startFrac, endFrac, origin, dest, mask, tr)
		return
	}

	if absf(t1-t2) < epsilon {
		// Segment runs parallel (or nearly so) to the plane: classify by
		// the sum's sign instead of risking a near-zero division below.
		if t1+t2 >= 0 {
			t.traceNode(node.Children[0], startFrac, endFrac, origin, dest, mask, tr)
		} else {
			t.traceNode(node.Children[1], startFrac, endFrac, origin, dest, mask, tr)
		}
		return
	}

	frac := t1 / (t1 - t2)
	frac1 := clamp01(frac - epsilon)
	frac2 := clamp01(frac + epsilon)

	nearChild, farChild := node.Children[0], node.Children[1]
	if t1 < 0 {
		nearChild, farChild = node.Children[1], node.Children[0]
	}

	mid1 := startFrac + (endFrac-startFrac)*frac1
	t.traceNode(nearChild, startFrac, mid1, origin, dest, mask, tr)

	mid2 := startFrac + (endFrac-startFrac)*frac2
	t.traceNode(farChild, mid2, endFrac, origin, dest, mask, tr)
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
