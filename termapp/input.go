package termapp

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/sys/unix"
)

// pollSlice bounds a single poll(2) so blocked reads notice cancellation.
const pollSlice = 100 * time.Millisecond

// PollKey waits at most timeout for one key. ok is false when the timeout
// passes with no input.
func (t *Terminal) PollKey(ctx context.Context, timeout time.Duration) (Key, bool, error) {
	deadline := time.Now().Add(timeout)
	for {
		if k, ok := t.nextPending(); ok {
			return k, true, nil
		}
		if err := ctx.Err(); err != nil {
			return 0, false, err
		}

		wait := time.Until(deadline)
		if wait <= 0 {
			return 0, false, nil
		}
		if wait > pollSlice {
			wait = pollSlice
		}

		if err := t.read(wait); err != nil {
			return 0, false, err
		}
	}
}

// WaitKey blocks until a key arrives or ctx is done.
func (t *Terminal) WaitKey(ctx context.Context) (Key, error) {
	for {
		if k, ok := t.nextPending(); ok {
			return k, nil
		}
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if err := t.read(pollSlice); err != nil {
			return 0, err
		}
	}
}

func (t *Terminal) nextPending() (Key, bool) {
	k, n := decodeKey(t.pending)
	if n == 0 {
		return 0, false
	}
	t.pending = t.pending[n:]
	return k, true
}

// read waits up to d for input and appends whatever is available to pending.
func (t *Terminal) read(d time.Duration) error {
	ms := int(d / time.Millisecond)
	if ms < 1 {
		ms = 1
	}

	fds := []unix.PollFd{
		{Fd: int32(t.fd), Events: unix.POLLIN},
	}
	n, err := unix.Poll(fds, ms)
	if err != nil {
		if err == unix.EINTR {
			return nil
		}
		return fmt.Errorf("termapp: poll: %w", err)
	}
	if n == 0 {
		return nil
	}

	var buf [64]byte
	rn, err := unix.Read(t.fd, buf[:])
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return nil
		}
		return fmt.Errorf("termapp: read: %w", err)
	}
	if rn == 0 {
		return io.EOF
	}

	t.pending = append(t.pending, buf[:rn]...)
	return nil
}
