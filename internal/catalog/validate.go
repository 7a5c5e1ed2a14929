package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sentquant/analytics/internal/series"
)

var (
	ErrEmptyCatalog       = errors.New("catalog is empty")
	ErrMissingID          = errors.New("strategy id is required")
	ErrDuplicateID        = errors.New("duplicate strategy id")
	ErrNegativeVolatility = series.ErrNegativeVolatility
	ErrNegativeCapital    = errors.New("tracked capital must be >= 0")
	ErrInvalidIdentity    = errors.New("invalid strategy identity")
)

// ConfigurationError rejects a catalog at build time
type ConfigurationError struct {
	Field   string
	Message string
	Err     error
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e ConfigurationError) Unwrap() error {
	return e.Err
}

var validate = validator.New()

// Validate checks every entry; the first violation is returned
func Validate(entries []Entry) error {
	if len(entries) == 0 {
		return ConfigurationError{"strategies", "at least one strategy is required", ErrEmptyCatalog}
	}

	seen := make(map[string]int, len(entries))
	for i, e := range entries {
		field := fmt.Sprintf("strategies[%d]", i)
		id := e.Identity.ID

		if strings.TrimSpace(id) == "" {
			return ConfigurationError{field + ".id", "required", ErrMissingID}
		}
		if prev, ok := seen[id]; ok {
			return ConfigurationError{
				field + ".id",
				fmt.Sprintf("%q already used by strategies[%d]", id, prev),
				ErrDuplicateID,
			}
		}
		seen[id] = i

		if e.Behavior.Volatility < 0 {
			return ConfigurationError{
				field + ".volatility",
				fmt.Sprintf("must be >= 0, got %v", e.Behavior.Volatility),
				ErrNegativeVolatility,
			}
		}
		if e.Identity.TrackedCapital.IsNegative() {
			return ConfigurationError{
				field + ".tracked_capital",
				fmt.Sprintf("must be >= 0, got %s", e.Identity.TrackedCapital),
				ErrNegativeCapital,
			}
		}

		if err := validate.Struct(e); err != nil {
			var ve validator.ValidationErrors
			if errors.As(err, &ve) && len(ve) > 0 {
				fe := ve[0]
				return ConfigurationError{
					field + "." + fieldPath(fe.Namespace()),
					fmt.Sprintf("failed %q (%v)", fe.Tag(), fe.Value()),
					ErrInvalidIdentity,
				}
			}
			return ConfigurationError{field, err.Error(), ErrInvalidIdentity}
		}
	}

	return nil
}

// fieldPath drops the root type from a validator namespace: Entry.Identity.Status → identity.status
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.ToLower(ns)
}
