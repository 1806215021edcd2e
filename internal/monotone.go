package internal

// Facilities for converting a Y-monotone face into triangles. A Y monotone
// polygon is a simple polygon such that any horizontal line intersects at most
// two edges.
//
// IsBelow is used to simulate a slightly rotated coordinate system that
// eliminates horizontal segments but note that this affects where horizontal
// segments are allowed while maintaining strict monotonicity. Specifically, on
// the left chain, a horizontal edge must sit _above_ the inside of the polygon,
// while on the right chain, it must sit _below_. The sweep partition uses the
// same order, so every face it produces satisfies this.
//
// Note that the face must be counterclockwise, which every face of a network
// is.

// Triangulate one monotone face, given as the network vertices around its
// loop. The triangles index into the network's vertex array.
func TriangulateMonotone(n *Network, loop []Index, tracer Tracer) [][3]Index {
	count := len(loop)
	if count < 3 {
		fatalf("cannot triangulate degenerate face with vertex count: %d", count)
	}
	point := func(i int) Point {
		return n.Vertices[loop[i]]
	}

	triangles := make([][3]Index, 0, count-2)
	emit := func(a, b, c int) {
		triangles = appendTriangle(n, triangles, [3]Index{loop[a], loop[b], loop[c]}, tracer)
	}

	if count == 3 {
		emit(0, 1, 2)
		return triangles
	}

	// Find the top point
	top := 0
	for i := range loop {
		if IsAbove(point(i), point(top)) {
			top = i
		}
	}

	// Positions into the loop, sorted from the top down
	sorted := make([]int, 0, count)
	sorted = append(sorted, top)

	// Which positions are on the left chain. The top is not on either chain,
	// and counts as right.
	onLeft := make([]bool, count)

	// Merge the chains starting from top. Walking forward around a
	// counterclockwise loop from the top goes down the left chain. The bottom
	// point is tracked separately.
	leftOffset := 1
	rightOffset := 1
	var bottom int
	for {
		left := CircularIndex(top+leftOffset, count)
		right := CircularIndex(top-rightOffset, count)

		// If we've met up, we're done. We don't add the bottom point to the list,
		// as it's handled at the very end.
		if left == right {
			bottom = left
			break
		}

		if IsAbove(point(left), point(right)) {
			onLeft[left] = true
			sorted = append(sorted, left)
			leftOffset++
		} else {
			sorted = append(sorted, right)
			rightOffset++
		}
	}

	// Create the stack and populate it with the first two points
	var stack IndexStack
	stack.Push(sorted[0])
	stack.Push(sorted[1])
	for i := 2; i < len(sorted); i++ {
		p := sorted[i]
		left := onLeft[p]
		if left != onLeft[stack.Peek()] {
			// Switched to the opposite chain. Monotonicity guarantees that all
			// stack points are visible from the current point, so the whole stack
			// is emptied into triangles.
			for !stack.Empty() {
				a := stack.Pop()
				if !stack.Empty() {
					b := stack.Peek()
					if left {
						/*
						              b
						             /|
						 diagonal-> / |
						           p--a
						*/
						emit(p, a, b)
					} else {
						/*
							b
							|\ <- Diagonal
							| \
							a--p
						*/
						emit(a, p, b)
					}
				}
			}
			stack.Push(sorted[i-1])
			stack.Push(p)
		} else {
			// Same chain. Always pop the last point off. If we don't create any
			// triangles this time, we'll put it back
			v := stack.Pop()
			for !stack.Empty() {
				q := stack.Peek()
				// p sees q past v only if the triangle comes out strictly CCW
				var a, b, c int
				if left {
					/*
						q
						|\
						v \
						  \\ <- diagonal
						    \
						     p
					*/
					a, b, c = p, q, v
				} else {
					/*
						               q
						              /|
						             / v
						            / /
						diagonal-> //
						          /
						         p
					*/
					a, b, c = p, v, q
				}
				if TriangleSignedArea(point(a), point(b), point(c)) <= 0 {
					break
				}
				v = stack.Pop()
				emit(a, b, c)
			}
			stack.Push(v)
			stack.Push(p)
		}
	}

	// Finally, add triangles for all remaining points on the stack. Note that we
	// always have two points.
	l := stack.Pop()
	for !stack.Empty() {
		p := stack.Pop()
		// Unlike the diagonal-only form of this algorithm, we go all the way to
		// the last point, since the bottom point still needs its triangle.
		if onLeft[l] {
			/*
				   p
				 / |
				l  | <- diagonal
				 \ |
				   b
			*/
			emit(bottom, p, l)
		} else {
			/*
				            p
				            | \
				diagonal -> |  l
				            | /
				            b
			*/
			emit(bottom, l, p)
		}
		l = p
	}

	if len(triangles) != count-2 {
		fatalf("face with %d vertices gave %d triangles", count, len(triangles))
	}
	return triangles
}

// Triangulate every face of a partitioned network.
func TriangulateFaces(n *Network, tracer Tracer) [][3]Index {
	triangles := make([][3]Index, 0, len(n.Vertices))
	for _, loop := range n.Loops() {
		triangles = append(triangles, TriangulateMonotone(n, n.LoopVertices(loop), tracer)...)
	}
	return triangles
}

func appendTriangle(n *Network, triangles [][3]Index, tri [3]Index, tracer Tracer) [][3]Index {
	if TriangleSignedArea(n.Vertices[tri[0]], n.Vertices[tri[1]], n.Vertices[tri[2]]) < 0 {
		fatalf("triangle is clockwise: %v", tri)
	}
	trace(tracer, Event{Kind: EventTriangle, Network: n, Triangle: tri})
	return append(triangles, tri)
}
