package concurrency

import (
	"bytes"
	"errors"
	"math/rand"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/eapache/queue"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/api"
)

func TestByteRing_Init(t *testing.T) {
	r := NewByteRing(256)
	require.True(t, r.IsEmpty())
	require.False(t, r.IsFull())
	require.Equal(t, 255, r.Cap())
	require.Equal(t, 256, r.Size())
	rd, wr := r.Cursors()
	require.Zero(t, rd)
	require.Zero(t, wr)
}

func TestByteRing_RejectsTinySize(t *testing.T) {
	for _, size := range []int{-1, 0, 1} {
		func() {
			defer func() {
				rec := recover()
				require.NotNil(t, rec)
				require.True(t, errors.Is(rec.(error), api.ErrInvalidArgument))
			}()
			NewByteRing(size)
		}()
	}
}

// Capacity 8 walk-through: fill, reject, partial read, wrapped write, drain.
func TestByteRing_WrapExample(t *testing.T) {
	r := NewByteRing(8)

	require.Equal(t, 7, r.Write([]byte("ABCDEFG")))
	require.True(t, r.IsFull())
	require.Equal(t, 0, r.Write([]byte("X")))

	dst := make([]byte, 3)
	require.Equal(t, 3, r.Read(dst))
	require.Equal(t, "ABC", string(dst))

	require.Equal(t, 2, r.Write([]byte("XY")))
	require.Equal(t, 6, r.Len())

	out := make([]byte, 10)
	n := r.Read(out)
	require.Equal(t, 6, n)
	require.Equal(t, "DEFGXY", string(out[:n]))
	require.True(t, r.IsEmpty())
}

func TestByteRing_CapacityInvariant(t *testing.T) {
	r := NewByteRing(16)
	require.Equal(t, 15, r.Write(bytes.Repeat([]byte{0xAA}, 40)))
	require.True(t, r.IsFull())
	require.Zero(t, r.Free())
	require.Equal(t, 0, r.Write([]byte{1}))

	dst := make([]byte, 15)
	require.Equal(t, 15, r.Read(dst))
	require.True(t, r.IsEmpty())
	require.Equal(t, bytes.Repeat([]byte{0xAA}, 15), dst)
}

func TestByteRing_FullWriteKeepsContent(t *testing.T) {
	r := NewByteRing(8)
	r.Write([]byte("1234567"))
	before, _ := r.Cursors()
	require.Equal(t, 0, r.Write([]byte("zz")))
	after, _ := r.Cursors()
	require.Equal(t, before, after)

	dst := make([]byte, 7)
	r.Read(dst)
	require.Equal(t, "1234567", string(dst))
}

func TestByteRing_EmptyReadLeavesCursors(t *testing.T) {
	r := NewByteRing(8)
	r.Write([]byte("abcde"))
	r.Read(make([]byte, 5))
	rd, wr := r.Cursors()

	require.Equal(t, 0, r.Read(make([]byte, 4)))
	rd2, wr2 := r.Cursors()
	require.Equal(t, rd, rd2)
	require.Equal(t, wr, wr2)
}

func TestByteRing_ZeroLengthCalls(t *testing.T) {
	r := NewByteRing(8)
	require.Equal(t, 0, r.Write(nil))
	r.Write([]byte("ab"))
	require.Equal(t, 0, r.Read(nil))
	require.Equal(t, 2, r.Len())
}

func TestByteRing_WrapBothSegments(t *testing.T) {
	r := NewByteRing(8)
	require.Equal(t, 6, r.Write([]byte("abcdef")))
	dst := make([]byte, 4)
	require.Equal(t, 4, r.Read(dst))
	require.Equal(t, "abcd", string(dst))

	// write cursor at 6, read cursor at 4: two bytes to the end, three after wrap
	require.Equal(t, 5, r.Write([]byte("ghijkl")))
	require.True(t, r.IsFull())
	rd, wr := r.Cursors()
	require.Equal(t, uint64(4), rd)
	require.Equal(t, uint64(3), wr)

	// data wraps: tail run first, then head run
	out := make([]byte, 16)
	n := r.Read(out)
	require.Equal(t, "efghijk", string(out[:n]))
}

func TestByteRing_ResetClearsStorage(t *testing.T) {
	r := NewByteRing(8)
	r.Write([]byte("secret"))
	r.Reset()
	require.True(t, r.IsEmpty())
	require.Zero(t, r.Written())
	require.Equal(t, make([]byte, 8), r.storage)
}

// Random single-goroutine schedule checked against an unbounded FIFO.
func TestByteRing_MatchesFIFOModel(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, size := range []int{2, 3, 8, 17, 64} {
		r := NewByteRing(size)
		model := queue.New()
		var next byte

		for step := 0; step < 5000; step++ {
			if rng.Intn(2) == 0 {
				src := make([]byte, rng.Intn(2*size))
				for i := range src {
					src[i] = next
					next++
				}
				free := r.Cap() - model.Length()
				n := r.Write(src)
				require.Equal(t, min(len(src), free), n)
				for _, b := range src[:n] {
					model.Add(b)
				}
				// rewind the generator past the rejected suffix
				next -= byte(len(src) - n)
			} else {
				dst := make([]byte, rng.Intn(2*size))
				n := r.Read(dst)
				require.Equal(t, min(len(dst), model.Length()), n)
				for _, b := range dst[:n] {
					require.Equal(t, model.Remove().(byte), b)
				}
			}
			require.Equal(t, model.Length(), r.Len())
			require.Equal(t, model.Length() == 0, r.IsEmpty())
			require.Equal(t, model.Length() == r.Cap(), r.IsFull())
		}
	}
}

func TestByteRing_SPSCStress(t *testing.T) {
	r := NewByteRing(64)
	const total = 1 << 20

	var (
		wg       sync.WaitGroup
		received = make([]byte, 0, total)
	)
	wg.Add(2)

	go func() {
		defer wg.Done()
		chunk := make([]byte, 13)
		var seq byte
		sent := 0
		for sent < total {
			want := min(len(chunk), total-sent)
			for i := 0; i < want; i++ {
				chunk[i] = seq + byte(i)
			}
			n := r.Write(chunk[:want])
			if n == 0 {
				runtime.Gosched()
				continue
			}
			seq += byte(n)
			sent += n
		}
	}()

	go func() {
		defer wg.Done()
		buf := make([]byte, 11)
		for len(received) < total {
			n := r.Read(buf)
			if n == 0 {
				runtime.Gosched()
				continue
			}
			received = append(received, buf[:n]...)
		}
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(30 * time.Second):
		t.Fatalf("timeout: consumer received %d/%d bytes", r.Drained(), total)
	}

	require.Len(t, received, total)
	for i, b := range received {
		if b != byte(i) {
			t.Fatalf("byte %d = %d, want %d", i, b, byte(i))
		}
	}
	require.Equal(t, uint64(total), r.Written())
	require.Equal(t, uint64(total), r.Drained())
	require.True(t, r.IsEmpty())
}
