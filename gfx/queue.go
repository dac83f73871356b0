package gfx

// Queue buffers discrete input commands between polling and the render loop.
// It is not safe for concurrent use; GLFW delivers callbacks on the thread
// that calls PollEvents, which is also the render thread.
type Queue[C any] struct {
	pending []C
}

func (q *Queue[C]) Push(c C) {
	q.pending = append(q.pending, c)
}

func (q *Queue[C]) Len() int { return len(q.pending) }

// Drain hands every pending command to apply in push order and empties the
// queue. Commands pushed by apply are kept for the next Drain.
func (q *Queue[C]) Drain(apply func(C)) {
	pending := q.pending
	q.pending = nil
	for _, c := range pending {
		apply(c)
	}
}
