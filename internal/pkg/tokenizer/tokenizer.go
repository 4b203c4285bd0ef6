package tokenizer

import (
	"log"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// Counter measures how many AI tokens a piece of text consumes. Charging is
// done in these units, so the same counter must be used for input and output
// accounting.
type Counter interface {
	Count(text string) int
}

const encodingName = "cl100k_base"

type tiktokenCounter struct {
	enc *tiktoken.Tiktoken
}

// NewTiktokenCounter builds a counter backed by the cl100k_base encoding.
func NewTiktokenCounter() (Counter, error) {
	enc, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, err
	}
	return &tiktokenCounter{enc: enc}, nil
}

func (c *tiktokenCounter) Count(text string) int {
	return len(c.enc.Encode(text, nil, nil))
}

// ApproximateCounter estimates tokens when the real encoding cannot be
// loaded (e.g. the BPE data is unavailable offline). Roughly four bytes per
// token, matching common English text.
type ApproximateCounter struct{}

func (ApproximateCounter) Count(text string) int {
	if text == "" {
		return 0
	}
	return (len(text) + 3) / 4
}

var (
	defaultCounter Counter
	defaultOnce    sync.Once
)

// Default returns the process-wide token counter, falling back to the
// approximation when the tiktoken encoding cannot be initialized.
func Default() Counter {
	defaultOnce.Do(func() {
		counter, err := NewTiktokenCounter()
		if err != nil {
			log.Printf("tokenizer: falling back to approximate counting: %v", err)
			counter = ApproximateCounter{}
		}
		defaultCounter = counter
	})
	return defaultCounter
}
