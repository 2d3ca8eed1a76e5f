package dicesync

import (
	"sync"
	"testing"

	"github.com/rollforge/dicechat"
)

// ensure Source implements dice.RandSource
var _ dice.RandSource = (*Source)(nil)

func TestSourceConcurrentUniform(t *testing.T) {
	src := Wrap(dice.MaxFaceSource{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := src.Uniform(1, 20)
			if err != nil {
				t.Errorf("Uniform: %v", err)
			}
			if v != 20 {
				t.Errorf("Uniform() = %d, want 20", v)
			}
		}()
	}
	wg.Wait()
}
