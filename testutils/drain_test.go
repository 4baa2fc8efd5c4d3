package testutils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

// recorder captures Error calls so failure paths can be asserted
// without failing the real test.
type recorder struct {
	errors []string
}

func (r *recorder) Log(...any)                {}
func (r *recorder) Logf(string, ...any)       {}
func (r *recorder) Error(args ...any)         { r.errors = append(r.errors, fmt.Sprint(args...)) }
func (r *recorder) Errorf(f string, a ...any) { r.errors = append(r.errors, fmt.Sprintf(f, a...)) }

func TestDrain(t *testing.T) {
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)

	Drain(t, []int{1, 2, 3}, ch)
}

func TestDrain_Unclosed(t *testing.T) {
	ch := make(chan int, 1)
	ch <- 1

	r := &recorder{}
	Drain[int](r, []int{1}, ch)
	assert.NotEmpty(t, r.errors)
}

func TestDrainBlocking(t *testing.T) {
	ch := make(chan int)
	go func() {
		defer close(ch)
		for i := 1; i <= 3; i++ {
			time.Sleep(time.Millisecond)
			ch <- i
		}
	}()

	DrainBlocking(t, []int{1, 2, 3}, ch, time.Second)
	goleak.VerifyNone(t)
}

func TestDrainBlocking_Timeout(t *testing.T) {
	ch := make(chan int)

	r := &recorder{}
	DrainBlocking[int](r, []int{1}, ch, 10*time.Millisecond)
	assert.NotEmpty(t, r.errors)
}
