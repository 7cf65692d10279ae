package control

// Frame is an open container.
type Frame struct {
	Type Type

	// Offset is the position of the container's control block in the
	// stream.
	Offset uint64

	// If the type is ContainerBounded then Size is the total size of the
	// container and Remaining is how many bytes remain to be read from it.
	Size      uint64
	Remaining uint64
}

// Stack holds the containers the decoder is currently inside of.
type Stack []*Frame

func (s *Stack) Push(f *Frame) {
	*s = append(*s, f)
}

func (s *Stack) Top() *Frame {
	if len(*s) == 0 {
		return nil
	}

	return (*s)[len(*s)-1]
}

func (s *Stack) Pop() (err error) {
	top := s.Top()
	if top == nil {
		return Error.New("no frame on stack")
	}

	if top.Type == ContainerBounded && top.Remaining != 0 {
		return Error.New(
			"data remaining in bounded: size=%d remaining=%d",
			top.Size,
			top.Remaining,
		)
	}

	*s = (*s)[:len(*s)-1]

	return nil
}

// Consume accounts for size bytes read from the stream. Every bounded frame
// must have at least size bytes remaining.
func (s *Stack) Consume(size uint64) (err error) {
	for i, f := range *s {
		if f.Type != ContainerBounded {
			continue
		}

		if size > f.Remaining {
			return Error.New(
				"exceeded bounded: depth=%d/%d size=%d remaining=%d consuming=%d",
				i,
				len(*s),
				f.Size,
				f.Remaining,
				size,
			)
		}
	}

	for _, f := range *s {
		if f.Type == ContainerBounded {
			f.Remaining -= size
		}
	}

	return nil
}

// Collapse pops the bounded frames on the top of the stack that have been
// fully read.
func (s *Stack) Collapse() (err error) {
	for {
		top := s.Top()
		if top == nil || top.Type != ContainerBounded || top.Remaining != 0 {
			return nil
		}

		err = s.Pop()
		if err != nil {
			return err
		}
	}
}
