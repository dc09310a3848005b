// File: core/chain/builder.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Chain construction: uniform chains sliced out of one extent, and
// reference-appends that copy link nodes but never buffer contents.

package chain

// NewBufferChain allocates one contiguous extent of num*size bytes,
// slices it into num writable buffers of size bytes each, and links
// them into a chain. Any allocation failure aborts and returns the
// error; partially built links stay on the arena and are reclaimed at
// reset.
func NewBufferChain(a *Arena, num, size int) (*Link, error) {
	mem, err := a.Alloc(num * size)
	if err != nil {
		return nil, err
	}

	var head *Link
	tail := &head
	for i := 0; i < num; i++ {
		b := &Buffer{
			Mem:       mem[i*size : (i+1)*size : (i+1)*size],
			Temporary: true,
			gen:       a.Generation(),
		}
		l, err := a.Link()
		if err != nil {
			return nil, err
		}
		l.Buf = b
		*tail = l
		tail = &l.Next
	}
	*tail = nil
	return head, nil
}

// AppendCopy appends link-node copies of src to dst and returns the
// resulting head (dst may be nil). The new links reference src's
// buffers directly; no content is copied.
//
// On allocation failure the returned chain is still well-formed and
// nil-terminated after the last successfully appended node: callers
// get a usable partial result, never a corrupt one.
func AppendCopy(a *Arena, dst, src *Link) (*Link, error) {
	head := dst
	tail := &head
	for l := head; l != nil; l = l.Next {
		tail = &l.Next
	}

	for ; src != nil; src = src.Next {
		l, err := a.Link()
		if err != nil {
			*tail = nil
			return head, err
		}
		l.Buf = src.Buf
		*tail = l
		tail = &l.Next
	}
	*tail = nil
	return head, nil
}
