package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gatewayz/gatewayz-go/pkg/types"
)

// State describes the availability of live model data.
type State int

// Source states.
const (
	StateLoading State = iota
	StateReady
	StateUnavailable
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Errors recorded on unavailable sources.
var (
	ErrNoData   = errors.New("catalog: no model data")
	ErrNotArray = errors.New("catalog: models payload is not an array")
)

// Source is the live model data as seen by the reconciliation layer:
// loading, ready with records, or unavailable with the reason.
type Source struct {
	state  State
	models []types.Model
	err    error
}

// Loading returns a source whose fetch has not completed.
func Loading() Source {
	return Source{state: StateLoading}
}

// Ready returns a source holding live records.
func Ready(models []types.Model) Source {
	return Source{state: StateReady, models: models}
}

// Unavailable returns a source whose fetch failed.
func Unavailable(err error) Source {
	if err == nil {
		err = ErrNoData
	}
	return Source{state: StateUnavailable, err: err}
}

// FromFetch converts the result of a client call into a Source.
// A nil slice without an error (a JSON null body) is unavailable.
func FromFetch(models []types.Model, err error) Source {
	if err != nil {
		return Unavailable(err)
	}
	if models == nil {
		return Unavailable(ErrNoData)
	}
	return Ready(models)
}

// FromPayload decodes a raw /models body. Anything other than a JSON array of
// model objects yields an unavailable source.
func FromPayload(raw json.RawMessage) Source {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return Unavailable(ErrNotArray)
	}
	var models []types.Model
	if err := json.Unmarshal(trimmed, &models); err != nil {
		return Unavailable(fmt.Errorf("catalog: decode models: %w", err))
	}
	if models == nil {
		models = []types.Model{}
	}
	return Ready(models)
}

// State returns the source state.
func (s Source) State() State { return s.state }

// Models returns the live records; nil unless the source is ready.
func (s Source) Models() []types.Model { return s.models }

// Err returns why the source is unavailable, or nil.
func (s Source) Err() error { return s.err }

// IsLive reports whether Reconcile will use live records.
func (s Source) IsLive() bool { return s.state == StateReady }
