package molcmd

import (
	"errors"
	"io"

	"github.com/rs/zerolog"

	"github.com/andrew-torda/molfile/pkg/mol"
)

// newLogger writes human readable lines to w. An unknown level is
// an error rather than a silent default. The stats readers log from
// several goroutines, so writes to w are serialised.
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	cw := zerolog.ConsoleWriter{Out: zerolog.SyncWriter(w), NoColor: true}
	return zerolog.New(cw).Level(lvl).With().Timestamp().Logger(), nil
}

// logErr reports a failure. Parse errors get their block, line and
// field as separate fields so they can be grepped for.
func logErr(lg *zerolog.Logger, err error, msg string) {
	ev := lg.Error().Err(err)
	var pe *mol.ParseError
	if errors.As(err, &pe) {
		ev = ev.Str("block", pe.Block).Int("line", pe.Line)
		if pe.Field != "" {
			ev = ev.Str("field", pe.Field)
		}
	}
	ev.Msg(msg)
}
