// SPDX-License-Identifier: GPL-3.0-or-later

package argcheck

import (
	"log/slog"
	"time"
)

// actionSpan holds the logging state shared by all the variants.
type actionSpan struct {
	classifier ErrClassifier
	logger     SLogger
	name       string
	timeNow    func() time.Time
	variant    string
}

func (s *actionSpan) logStart(values Values, t0 time.Time) {
	s.logger.Info(
		"validateStart",
		slog.String("name", s.name),
		slog.String("variant", s.variant),
		slog.Any("values", values.items),
		slog.Bool("list", values.list),
		slog.Time("t", t0),
	)
}

func (s *actionSpan) logValue(index int, value string, accepted bool, err error) {
	s.logger.Debug(
		"validateValue",
		slog.String("name", s.name),
		slog.Int("index", index),
		slog.String("value", value),
		slog.Bool("accepted", accepted),
		slog.Any("err", err),
		slog.String("errClass", s.classifier.Classify(err)),
	)
}

func (s *actionSpan) logDone(values Values, t0 time.Time, err error) {
	s.logger.Info(
		"validateDone",
		slog.String("name", s.name),
		slog.String("variant", s.variant),
		slog.Any("values", values.items),
		slog.Bool("list", values.list),
		slog.Any("err", err),
		slog.String("errClass", s.classifier.Classify(err)),
		slog.Time("t0", t0),
		slog.Time("t", s.timeNow()),
	)
}

// reject builds the [*ValidationError] for the element at index.
func (s *actionSpan) reject(msg string, values Values, index int, cause error) *ValidationError {
	return &ValidationError{
		Name:    s.name,
		Message: msg,
		Value:   values.items[index],
		Index:   index,
		List:    values.list,
		Class:   s.classifier.Classify(cause),
		Err:     cause,
	}
}
