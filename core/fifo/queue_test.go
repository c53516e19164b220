package fifo_test

import (
	"math/rand"
	"runtime"
	"testing"

	"github.com/momentics/hioload-stream/core/fifo"
)

type item struct {
	node fifo.Node[item]
	id   int
}

func link(it *item) *fifo.Node[item] { return &it.node }

func TestQueueFIFO(t *testing.T) {
	q := fifo.New(link)
	items := make([]item, 100)
	for i := range items {
		items[i].id = i
		q.Push(&items[i])
	}
	for i := 0; i < 100; i++ {
		got := q.Pop()
		if got == nil {
			t.Fatalf("pop %d: unexpected empty queue", i)
		}
		if got.id != i {
			t.Fatalf("pop %d: got id %d, FIFO order violated", i, got.id)
		}
	}
	if q.Pop() != nil {
		t.Error("drained queue should pop nil")
	}
}

func TestQueueEmpty(t *testing.T) {
	q := fifo.New(link)
	if q.Pop() != nil {
		t.Error("fresh queue should pop nil")
	}
	if !q.Empty() || q.Len() != 0 {
		t.Error("fresh queue should be empty")
	}
	q.Push(nil) // ignored
	if q.Len() != 0 {
		t.Error("nil push must not count")
	}
}

func TestQueueStubRecycle(t *testing.T) {
	// Draining to empty re-inserts the internal stub; push/pop cycles
	// must keep working across that path.
	q := fifo.New(link)
	it := &item{id: 7}
	for i := 0; i < 1000; i++ {
		q.Push(it)
		got := q.Pop()
		if got != it {
			t.Fatalf("cycle %d: got %v", i, got)
		}
		if q.Pop() != nil {
			t.Fatalf("cycle %d: queue should be empty", i)
		}
	}
}

func TestQueueInterleaved(t *testing.T) {
	q := fifo.New(link)
	items := make([]item, 64)
	for i := range items {
		items[i].id = i
	}
	next, expect := 0, 0
	rng := rand.New(rand.NewSource(42))
	for expect < len(items) {
		if next < len(items) && (rng.Intn(2) == 0 || expect == next) {
			q.Push(&items[next])
			next++
			continue
		}
		got := q.Pop()
		if got == nil {
			continue
		}
		if got.id != expect {
			t.Fatalf("got id %d, want %d", got.id, expect)
		}
		expect++
	}
}

func TestQueueLenAdvisory(t *testing.T) {
	q := fifo.New(link)
	items := make([]item, 10)
	for i := range items {
		q.Push(&items[i])
		if q.Len() != i+1 {
			t.Fatalf("after %d pushes Len = %d", i+1, q.Len())
		}
	}
	for i := 9; i >= 0; i-- {
		q.Pop()
		if q.Len() != i {
			t.Fatalf("Len = %d, want %d", q.Len(), i)
		}
	}
}

func TestQueueConcurrentHandOff(t *testing.T) {
	// One producer, one consumer, mirroring the application/interrupt
	// split. Every item must arrive exactly once, in order.
	const n = 100000
	q := fifo.New(link)
	items := make([]item, n)
	for i := range items {
		items[i].id = i
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		expect := 0
		for expect < n {
			got := q.Pop()
			if got == nil {
				runtime.Gosched()
				continue
			}
			if got.id != expect {
				t.Errorf("got id %d, want %d", got.id, expect)
				return
			}
			expect++
		}
	}()

	for i := range items {
		q.Push(&items[i])
	}
	<-done
	if q.Pop() != nil {
		t.Error("queue should be drained")
	}
}
