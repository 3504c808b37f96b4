package engine

// Snake is the ordered body, head first
type Snake struct {
	body []Point
}

// NewSnake builds a snake of length cells with head at head, trailing opposite to dir
func NewSnake(head Point, dir Direction, length int) *Snake {
	if length < 1 {
		length = 1
	}
	back := dir.Opposite()
	body := make([]Point, 0, length)
	p := head
	for i := 0; i < length; i++ {
		body = append(body, p)
		p = p.Add(back)
	}
	return &Snake{body: body}
}

// Head returns segment 0
func (s *Snake) Head() Point {
	return s.body[0]
}

// Tail returns the last segment
func (s *Snake) Tail() Point {
	return s.body[len(s.body)-1]
}

// Len returns the segment count
func (s *Snake) Len() int {
	return len(s.body)
}

// Segment returns segment i, 0 is the head
func (s *Snake) Segment(i int) Point {
	return s.body[i]
}

// Segments returns a copy of the body, head first
func (s *Snake) Segments() []Point {
	out := make([]Point, len(s.body))
	copy(out, s.body)
	return out
}

// Occupies scans every segment including the tail
func (s *Snake) Occupies(p Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// PushHead inserts p at the front
func (s *Snake) PushHead(p Point) {
	s.body = append(s.body, Point{})
	copy(s.body[1:], s.body)
	s.body[0] = p
}

// PopTail removes the last segment
func (s *Snake) PopTail() Point {
	last := s.body[len(s.body)-1]
	s.body = s.body[:len(s.body)-1]
	return last
}
