package cdt

// Input validation. These checks run before any topology is built, so
// a failed construction leaves nothing behind.

// checkPointConsistency verifies there are at least three points and
// that they are not all collinear. The scan stops at the first
// non-collinear triple.
func (t *Triangulation) checkPointConsistency(points []Point) {
	if len(points) < 3 {
		failf(InsufficientPoints, "need at least 3 points, got %d", len(points))
	}

	pu := points[0].U()
	pv := points[0].V()
	qu := points[1].U()
	qv := points[1].V()

	allCollinear := true
	i := 2
	for allCollinear && i < len(points) {
		su := points[i].U()
		sv := points[i].V()
		allCollinear = t.preds.Collinear(pu, pv, qu, qv, su, sv)
		if allCollinear {
			i++
		}
	}

	if i == len(points) {
		failf(CollinearInput, "all %d input points are collinear", len(points))
	}
}

// checkSegmentConsistency verifies, pairwise, that no input segment's
// interior intersects another segment, and that no two segments name
// the same endpoint pair. O(n^2) in the number of segments.
func (t *Triangulation) checkSegmentConsistency(points []Point, segments []int) {
	n := len(segments) / 2

	for _, idx := range segments {
		if idx < 0 || idx >= len(points) {
			fatalf("segment index %d out of range for %d points", idx, len(points))
		}
	}

	for i := 1; i < n; i++ {
		ia := segments[2*i]
		ib := segments[2*i+1]
		for j := 0; j < i; j++ {
			ja := segments[2*j]
			jb := segments[2*j+1]

			// Where do the j-th segment's endpoints fall relative to
			// the i-th segment's supporting line?
			res1 := t.preds.Classify(
				points[ia].U(), points[ia].V(),
				points[ib].U(), points[ib].V(),
				points[ja].U(), points[ja].V(),
			)
			res2 := t.preds.Classify(
				points[ia].U(), points[ia].V(),
				points[ib].U(), points[ib].V(),
				points[jb].U(), points[jb].V(),
			)

			switch {
			case (res1 == Left && res2 == Right) || (res1 == Right && res2 == Left):
				// Opposite sides: the i-th segment may pierce the
				// j-th. Classify the i-th endpoints against the j-th
				// segment to decide.
				res3 := t.preds.Classify(
					points[ja].U(), points[ja].V(),
					points[jb].U(), points[jb].V(),
					points[ia].U(), points[ia].V(),
				)

				switch res3 {
				case Between:
					// An endpoint of segment i lies in the interior of
					// segment j.
					failf(CrossingSegments, "segment %d has an endpoint interior to segment %d", i, j)
				case Left:
					res4 := t.preds.Classify(
						points[ja].U(), points[ja].V(),
						points[jb].U(), points[jb].V(),
						points[ib].U(), points[ib].V(),
					)
					if res4 == Right || res4 == Between {
						failf(CrossingSegments, "segments %d and %d cross", i, j)
					}
				case Right:
					res4 := t.preds.Classify(
						points[ja].U(), points[ja].V(),
						points[jb].U(), points[jb].V(),
						points[ib].U(), points[ib].V(),
					)
					if res4 == Left || res4 == Between {
						failf(CrossingSegments, "segments %d and %d cross", i, j)
					}
				}

			case (res1 == Origin && res2 == Destination) || (res1 == Destination && res2 == Origin):
				// Same endpoint pair in either order: the same segment
				// given twice.
				failf(CrossingSegments, "segments %d and %d share both endpoints", i, j)
			}
		}
	}
}
