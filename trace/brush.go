package trace

// traceBrush clips the segment against every brush-side half-space,
// per spec.md §4.5. Axis-aligned "bevel" sides participate exactly like
// any other side; bevel is only a hint the loader carries for on-disk
// fidelity.
func traceBrush(b brush, origin, dest Vec3, tr *Trace) {
	if len(b.sides) == 0 {
		return
	}

	enterFrac := float32(-1)
	leaveFrac := float32(1)
	var hitPlane Plane
	hit := false

	for _, side := range b.sides {
		d1 := side.plane.Classify(origin)
		d2 := side.plane.Classify(dest)

		if d1 > 0 && d2 > 0 {
			// Segment lies entirely in front of this side: it cannot be
			// inside the brush at all.
			return
		}
		if d1 <= 0 && d2 <= 0 {
			// Entirely behind this side: doesn't clip the interval.
			continue
		}

		if d1 > d2 {
			frac := (d1 - epsilon) / (d1 - d2)
			if frac > enterFrac {
				enterFrac = frac
				hitPlane = side.plane
				hit = true
			}
		} else {
			frac := (d1 + epsilon) / (d1 - d2)
			if frac < leaveFrac {
				leaveFrac = frac
			}
		}
	}

	if enterFrac >= leaveFrac {
		return
	}

	if enterFrac < 0 && leaveFrac > 0 {
		tr.StartSolid = true
	}
	if enterFrac <= 0 && leaveFrac >= 1 {
		tr.AllSolid = true
	}

	if hit && enterFrac >= 0 && enterFrac <= 1 && enterFrac < tr.Fraction {
		tr.Fraction = enterFrac
		tr.Plane = hitPlane
		tr.Contents = b.contents
	}
}
