package preset

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/cwbudde/algo-voicefx/dsp/buffer"
	"github.com/cwbudde/algo-voicefx/dsp/effects"
)

var (
	// ErrDuplicateName is returned when a chain name is already registered.
	ErrDuplicateName = errors.New("preset: duplicate chain name")
	// ErrUnknownPreset is returned when Run is asked for an unregistered chain.
	ErrUnknownPreset = errors.New("preset: unknown preset")
	// ErrUnknownEffect is returned when a step references an effect
	// identifier with no factory.
	ErrUnknownEffect = errors.New("preset: unknown effect")

	errDuplicateEffect = errors.New("preset: duplicate effect type")
)

// Factory builds one effect instance from a chain step.
type Factory func(step Step) (effects.Effect, error)

// RegistryOption configures registry construction.
type RegistryOption func(*registryConfig)

type registryConfig struct {
	noiseSeed uint64
}

// WithNoiseSeed sets the default seed for noise steps that carry no "seed"
// parameter of their own.
func WithNoiseSeed(seed uint64) RegistryOption {
	return func(cfg *registryConfig) { cfg.noiseSeed = seed }
}

// Registry owns the effect factory table, the registered chains, and the
// collaborator provider the factories close over.
//
// Registration is not synchronized: register chains and effects up front,
// then Run and RunAll are safe for concurrent use.
type Registry struct {
	provider  effects.Processor
	noiseSeed uint64
	factories map[string]Factory
	chains    map[string]Chain
}

// NewRegistry creates a registry with the built-in effect factory table and
// no chains. RegisterBuiltins adds the stock catalogue.
func NewRegistry(provider effects.Processor, opts ...RegistryOption) (*Registry, error) {
	if provider == nil {
		return nil, errors.New("preset: provider must not be nil")
	}

	cfg := registryConfig{noiseSeed: defaultNoiseSeed}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		opt(&cfg)
	}

	r := &Registry{
		provider:  provider,
		noiseSeed: cfg.noiseSeed,
		factories: make(map[string]Factory),
		chains:    make(map[string]Chain),
	}
	r.registerBuiltinFactories()

	return r, nil
}

// RegisterEffect adds a factory for a new effect identifier.
func (r *Registry) RegisterEffect(name string, factory Factory) error {
	if name == "" {
		return errors.New("preset: effect name must not be empty")
	}

	if factory == nil {
		return errors.New("preset: factory must not be nil")
	}

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("%w: %s", errDuplicateEffect, name)
	}

	r.factories[name] = factory

	return nil
}

// Register adds a chain. Names are unique across the registry, and every
// step must reference a known effect identifier.
func (r *Registry) Register(chain Chain) error {
	if chain.Name == "" {
		return errors.New("preset: chain name must not be empty")
	}

	if _, exists := r.chains[chain.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateName, chain.Name)
	}

	for i, step := range chain.Steps {
		if _, ok := r.factories[step.Effect]; !ok {
			return fmt.Errorf("chain %q step %d: %w: %s", chain.Name, i+1, ErrUnknownEffect, step.Effect)
		}
	}

	r.chains[chain.Name] = chain

	return nil
}

// Lookup returns the registered chain by name.
func (r *Registry) Lookup(name string) (Chain, bool) {
	chain, ok := r.chains[name]
	return chain, ok
}

// Names returns the registered chain names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.chains))
	for name := range r.chains {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Run applies the named chain to in and returns the result. Every step
// effect is built up front, so configuration errors surface before any
// sample is processed. The input buffer is never modified.
func (r *Registry) Run(name string, in buffer.Buffer) (buffer.Buffer, error) {
	chain, ok := r.chains[name]
	if !ok {
		return buffer.Buffer{}, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}

	if err := in.Validate(); err != nil {
		return buffer.Buffer{}, err
	}

	if len(chain.Steps) == 0 {
		return in.Clone(), nil
	}

	built := make([]effects.Effect, len(chain.Steps))

	for i, step := range chain.Steps {
		fx, err := r.buildStep(step)
		if err != nil {
			return buffer.Buffer{}, fmt.Errorf("preset %q step %d (%s): %w", name, i+1, step.Effect, err)
		}

		built[i] = fx
	}

	out := in
	for i, fx := range built {
		next, err := fx.Apply(out)
		if err != nil {
			return buffer.Buffer{}, fmt.Errorf("preset %q step %d (%s): %w", name, i+1, chain.Steps[i].Effect, err)
		}

		out = next
	}

	return out, nil
}

func (r *Registry) buildStep(step Step) (effects.Effect, error) {
	factory, ok := r.factories[step.Effect]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEffect, step.Effect)
	}

	return factory(step)
}

// Result is one chain's outcome from RunAll.
type Result struct {
	Output buffer.Buffer
	Err    error
}

// RunAll runs every registered chain against in, one goroutine per chain.
// The input is shared read-only; each result owns its output. A failing
// chain reports its error in its Result without affecting the rest.
func (r *Registry) RunAll(in buffer.Buffer) map[string]Result {
	names := r.Names()
	results := make([]Result, len(names))

	var wg sync.WaitGroup

	for i, name := range names {
		wg.Add(1)

		go func() {
			defer wg.Done()

			out, err := r.Run(name, in)
			results[i] = Result{Output: out, Err: err}
		}()
	}

	wg.Wait()

	byName := make(map[string]Result, len(names))
	for i, name := range names {
		byName[name] = results[i]
	}

	return byName
}
