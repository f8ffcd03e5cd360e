package logger

import (
	"log/slog"
	"time"

	"github.com/cliffjones/neologizer/pkg/generator"
)

// Group creates a slog group attribute from attrs.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component names the part of the program emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Mode records the pipeline mode, generate or convert.
func Mode(mode string) slog.Attr {
	return slog.String("mode", mode)
}

// Duration records an elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// RequestID records a request identifier.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Stats groups the counters of a generation run under the key "stats".
func Stats(s generator.Stats) slog.Attr {
	return Group("stats",
		slog.Int("passes", s.Passes),
		slog.Int("succeeded", s.Succeeded),
		slog.Int("abandoned", s.Abandoned),
		slog.Int("corpus_hits", s.CorpusHits),
		slog.Int("duplicates", s.Duplicates),
		slog.Int("rejected", s.Rejected),
		slog.Int("rules", s.Rules),
	)
}
