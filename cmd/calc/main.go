package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/zephyrtronium/calc"
)

type cli struct {
	Prec     uint     `help:"Precision in bits of powers with no exact result." default:"256"`
	Places   int      `help:"Fractional digits printed for non-terminating results." default:"28"`
	Postfix  bool     `help:"Read expressions in postfix notation, e.g. \"2 3 ~ +\" (~ negates, # is unary plus)."`
	Echo     bool     `help:"Print the parse tree and postfix form of each expression."`
	LogLevel string   `help:"Log level (debug, info, warn, error)." default:"info"`
	Exprs    []string `arg:"" optional:"" help:"Expressions to evaluate. With none, run an interactive session on stdin."`
}

func (c *cli) options() []calc.Option {
	opts := []calc.Option{calc.Prec(c.Prec), calc.Places(c.Places)}
	if c.Postfix {
		opts = append(opts, calc.Postfix())
	}
	return opts
}

func main() {
	var c cli
	k := kong.Parse(&c,
		kong.Name("calc"),
		kong.Description("Exact decimal calculator."),
		kong.UsageOnError(),
	)
	if c.Prec == 0 {
		k.Fatalf("precision must be positive")
	}
	if c.Places < 0 {
		k.Fatalf("places (%d) must not be negative", c.Places)
	}

	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("component", "calc").
		Logger()

	s := &session{
		opts:    c.options(),
		postfix: c.Postfix,
		echo:    c.Echo,
		out:     os.Stdout,
		log:     logger,
	}
	if len(c.Exprs) > 0 {
		ok := true
		for _, e := range c.Exprs {
			ok = s.eval(e) && ok
		}
		if !ok {
			os.Exit(1)
		}
		return
	}
	if err := s.repl(os.Stdin); err != nil {
		logger.Fatal().Err(err).Msg("reading input")
	}
}
