package registration

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/signup/pkg/logger"
	"github.com/dmitrymomot/signup/pkg/validator"
)

// Registrar runs the full flow for one request: optional normalization,
// field validation with the configured Strategy, then resolution into a User.
//
// A Registrar holds no mutable state after construction and is safe for
// concurrent use.
type Registrar struct {
	strategy  Strategy
	regions   RegionTable
	normalize bool
	logger    *slog.Logger
}

// Option configures a Registrar.
type Option func(*Registrar)

// WithStrategy sets how field validators are combined. Unknown strategies are
// ignored.
func WithStrategy(s Strategy) Option {
	return func(r *Registrar) {
		if _, err := ParseStrategy(string(s)); err == nil {
			r.strategy = s
		}
	}
}

// WithRegions replaces the built-in country table. Empty tables are ignored.
func WithRegions(t RegionTable) Option {
	return func(r *Registrar) {
		if t.Len() > 0 {
			r.regions = t
		}
	}
}

// WithNormalization toggles Normalize before validation.
func WithNormalization(enabled bool) Option {
	return func(r *Registrar) {
		r.normalize = enabled
	}
}

// WithLogger sets the logger used to trace outcomes. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registrar) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistrar returns a Registrar that accumulates validation errors, uses
// the built-in region table, does not normalize and discards logs unless
// configured otherwise.
func NewRegistrar(opts ...Option) *Registrar {
	r := &Registrar{
		strategy: StrategyAccumulate,
		regions:  DefaultRegions(),
		logger:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Strategy reports the configured validation strategy.
func (r *Registrar) Strategy() Strategy {
	return r.strategy
}

// Validate normalizes req when enabled and runs the field validators.
// On success the (possibly normalized) request is returned.
func (r *Registrar) Validate(req Request) (Request, error) {
	if r.normalize {
		req = Normalize(req)
	}
	return r.strategy.Validate(req)
}

// Register validates req and resolves it into a User.
//
// A validation failure is returned as validator.ValidationErrors. A request
// that validates but cannot be resolved returns ErrUnresolvable.
//
// ctx is only used for logging: records carry the attempt ID set with
// ContextWithAttemptID (a new UUID otherwise), and ctx is handed to the
// logger's context extractors. The call never blocks.
func (r *Registrar) Register(ctx context.Context, req Request) (User, error) {
	attemptID, ok := AttemptIDFromContext(ctx)
	if !ok {
		attemptID = uuid.NewString()
	}
	log := r.logger.With(
		logger.AttemptID(attemptID),
		logger.Strategy(string(r.strategy)),
	)

	valid, err := r.Validate(req)
	if err != nil {
		log.DebugContext(ctx, "registration rejected",
			logger.ValidationMessages(validator.ExtractValidationErrors(err).Messages()),
			logger.Error(err),
		)
		return User{}, err
	}

	user, ok := r.regions.Resolve(valid)
	if !ok {
		log.InfoContext(ctx, "registration unresolvable", logger.Country(valid.Country))
		return User{}, ErrUnresolvable
	}

	log.InfoContext(ctx, "registration accepted",
		logger.Country(valid.Country),
		logger.Region(RegionName(user.Region())),
	)
	return user, nil
}
