package query

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Konsultn-Engineering/sqltpl/cache"
	"github.com/Konsultn-Engineering/sqltpl/config"
	"github.com/Konsultn-Engineering/sqltpl/database"
	"github.com/Konsultn-Engineering/sqltpl/dialect"
	"github.com/Konsultn-Engineering/sqltpl/specifier"
)

// Builder renders query templates. It holds no per-call state and is safe
// for concurrent use.
type Builder struct {
	db      database.Database
	dialect dialect.Dialect
	cache   *cache.TemplateCache[[]Token]
	logger  *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithDialect sets the quoting rules. The default is MySQL.
func WithDialect(d dialect.Dialect) Option {
	return func(b *Builder) {
		b.dialect = d
	}
}

// WithCache keeps scanned templates in c.
func WithCache(c *cache.TemplateCache[[]Token]) Option {
	return func(b *Builder) {
		b.cache = c
	}
}

// WithLogger sets the logger for debug records. The default discards them.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = l
	}
}

// New creates a Builder. db is carried for callers and never used for rendering;
// it may be nil.
func New(db database.Database, opts ...Option) *Builder {
	b := &Builder{
		db:      db,
		dialect: dialect.NewMySQLDialect(),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewFromConfig creates a Builder with the dialect and cache named by cfg.
// A zero CacheSize disables caching.
func NewFromConfig(db database.Database, cfg config.Config, opts ...Option) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d, err := dialect.ByName(cfg.Dialect)
	if err != nil {
		return nil, err
	}
	base := []Option{WithDialect(d)}

	if cfg.CacheSize > 0 {
		c, err := cache.NewTemplateCache[[]Token](cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("template cache: %w", err)
		}
		base = append(base, WithCache(c))
	}

	return New(db, append(base, opts...)...), nil
}

// DB returns the handle the Builder was created with.
func (b *Builder) DB() database.Database {
	return b.db
}

// Skip returns the marker that suppresses the enclosing conditional block.
func (b *Builder) Skip() Value {
	return Skip()
}

// Build substitutes args into template, one argument per placeholder or block.
// On error no partial text is returned.
func (b *Builder) Build(template string, args ...any) (string, error) {
	values := make([]Value, len(args))
	for i, a := range args {
		values[i] = ValueOf(a)
	}

	out, _, err := b.build(template, newArgFeeder(values), 0)
	if err != nil {
		b.logger.Debug("query build failed", "error", err)
		return "", err
	}
	return out, nil
}

// Tokens returns the scanned form of template, from the cache when one is set.
func (b *Builder) Tokens(template string) []Token {
	if b.cache == nil {
		return Scan(template)
	}
	if tokens, ok := b.cache.Get(template); ok {
		b.logger.Debug("template cache hit", "len", len(template))
		return tokens
	}
	b.logger.Debug("template cache miss", "len", len(template))
	tokens := Scan(template)
	b.cache.Add(template, tokens)
	return tokens
}

// build renders one pass over template. skipped reports whether a placeholder of
// this pass consumed the skip marker; suppression inside nested blocks is
// resolved by resolveBlock and not reported. offset locates template in the
// top-level input for error messages.
func (b *Builder) build(template string, feed *argFeeder, offset int) (string, bool, error) {
	tokens := b.Tokens(template)
	if len(tokens) == 0 {
		return template, false, nil
	}

	var sb strings.Builder
	sb.Grow(len(template))

	skipped := false
	last := 0
	for _, tok := range tokens {
		sb.WriteString(template[last:tok.Pos])
		last = tok.End()

		arg, err := feed.next()
		if err != nil {
			return "", false, fmt.Errorf("%w: %q at offset %d", err, tok.Text, offset+tok.Pos)
		}

		switch tok.Kind {
		case TokenPlaceholder:
			kind, ok := specifier.Lookup(tok.Symbol())
			if !ok {
				return "", false, fmt.Errorf("%w: %q at offset %d", ErrUnknownSpecifier, tok.Text, offset+tok.Pos)
			}
			text, skip, err := b.convert(arg, kind)
			if err != nil {
				return "", false, fmt.Errorf("%w (%q at offset %d)", err, tok.Text, offset+tok.Pos)
			}
			skipped = skipped || skip
			sb.WriteString(text)
		case TokenBlock:
			text, err := b.resolveBlock(tok, arg, feed.rest(), offset)
			if err != nil {
				return "", false, err
			}
			sb.WriteString(text)
		}
	}
	sb.WriteString(template[last:])

	return sb.String(), skipped, nil
}
