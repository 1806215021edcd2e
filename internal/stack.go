package internal

// IndexStack is the scan stack of the monotone triangulator. It holds
// positions into the loop being triangulated.
type IndexStack []int

func (s *IndexStack) Push(i int) {
	*s = append(*s, i)
}

func (s *IndexStack) Pop() int {
	if len(*s) == 0 {
		return -1
	}
	i := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return i
}

func (s *IndexStack) Peek() int {
	if len(*s) == 0 {
		return -1
	}
	return (*s)[len(*s)-1]
}

func (s *IndexStack) Empty() bool {
	return len(*s) == 0
}
