package ladder

import (
	"log/slog"

	"github.com/tidwall/gjson"

	"ladderview/internal/logging"
	"ladderview/internal/record"
)

// Option customizes parsing and classification.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger traces parse fallbacks at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Parse extracts every candidate from a ladder info value in source order.
// Unparseable input yields no candidates.
func Parse(v record.Value, opts ...Option) []Candidate {
	o := buildOptions(opts)
	logger := o.logger

	var root gjson.Result
	switch v.Kind() {
	case record.KindText:
		parsed, ok := v.ParseText()
		if !ok {
			logger.Debug("ladder info is not valid json", logging.Int("length", len(v.String())))
			return nil
		}
		root = parsed
	case record.KindSequence, record.KindStructured:
		root = v.Result()
	default:
		return nil
	}

	switch {
	case root.IsArray():
		return parseArray(root, logger)
	case root.IsObject():
		return parseObject(root, logger)
	default:
		logger.Debug("ladder info is neither object nor array", logging.String("type", root.Type.String()))
		return nil
	}
}

// parseArray handles a list of maps from ladder name to ladder info.
func parseArray(root gjson.Result, logger *slog.Logger) []Candidate {
	var out []Candidate
	for i, elem := range root.Array() {
		if !elem.IsObject() {
			logger.Debug("skipping non-object ladder info element", logging.Int("index", i))
			continue
		}
		elem.ForEach(func(key, info gjson.Result) bool {
			if info.IsObject() {
				out = append(out, newCandidate(key.String(), info))
			} else {
				logger.Debug("skipping non-object ladder entry", logging.String("ladder", key.String()))
			}
			return true
		})
	}
	return out
}

// parseObject handles a single map from ladder name to ladder info. Entry
// values encoded as JSON strings are decoded once more; strings that are
// not JSON are kept under a "value" key.
func parseObject(root gjson.Result, logger *slog.Logger) []Candidate {
	var out []Candidate
	root.ForEach(func(key, info gjson.Result) bool {
		name := key.String()
		if info.Type == gjson.String {
			if !gjson.Valid(info.Str) {
				logger.Debug("ladder entry is a plain string", logging.String("ladder", name))
				out = append(out, fromFields(record.New(
					record.Field{Name: "name", Value: record.Text(name)},
					record.Field{Name: "value", Value: record.Text(info.Str)},
				)))
				return true
			}
			info = gjson.Parse(info.Str)
		}
		if !info.IsObject() {
			logger.Debug("skipping non-object ladder entry", logging.String("ladder", name))
			return true
		}
		out = append(out, newCandidate(name, info))
		return true
	})
	return out
}
