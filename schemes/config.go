package schemes

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/minimizers/order"
)

// Secondary order names accepted in configuration documents.
const (
	SecondaryRandom = "random"
	SecondaryLex    = "lex"
)

// document is the on-disk shape of an OpenClosed configuration.
type document struct {
	OpenClosed `yaml:",inline"`
	Secondary  *secondary `yaml:"secondary,omitempty"`
}

type secondary struct {
	Type string `yaml:"type"`
	Seed uint64 `yaml:"seed"`
}

// LoadOpenClosed decodes a YAML OpenClosed configuration. Unknown fields are
// rejected and r is required. The optional secondary block selects the t-mer
// order:
//
//	secondary:
//	  type: random   # or lex
//	  seed: 7
//
// Errors: ErrConfig wrapping the decode or validation failure.
func LoadOpenClosed(r io.Reader) (OpenClosed, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return OpenClosed{}, fmt.Errorf("%w: empty document", ErrConfig)
		}
		return OpenClosed{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	cfg := doc.OpenClosed
	if cfg.R < 1 {
		return OpenClosed{}, fmt.Errorf("%w: r must be set and positive, got %d", ErrConfig, cfg.R)
	}
	if cfg.Offset != nil && *cfg.Offset < 0 {
		return OpenClosed{}, fmt.Errorf("%w: %w", ErrConfig, ErrBadOffset)
	}

	cfg.O = order.Random{}
	if s := doc.Secondary; s != nil {
		switch s.Type {
		case "", SecondaryRandom:
			cfg.O = order.Random{Seed: s.Seed}
		case SecondaryLex:
			if s.Seed != 0 {
				return OpenClosed{}, fmt.Errorf("%w: lex order takes no seed", ErrConfig)
			}
			cfg.O = order.Lex{}
		default:
			return OpenClosed{}, fmt.Errorf("%w: unknown secondary order %q", ErrConfig, s.Type)
		}
	}
	return cfg, nil
}
