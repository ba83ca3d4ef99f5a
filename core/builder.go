package core

import (
	"log/slog"

	"github.com/sarchlab/ipparse/instr"
)

// TranslatorBuilder can create new translators.
type TranslatorBuilder struct {
	isa    *instr.ISA
	logger *slog.Logger
}

// NewTranslatorBuilder returns a builder for IPPcode24 translators that log
// nothing.
func NewTranslatorBuilder() TranslatorBuilder {
	return TranslatorBuilder{
		isa:    instr.IPPcode24,
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithISA sets the instruction set the translator validates against.
func (b TranslatorBuilder) WithISA(isa *instr.ISA) TranslatorBuilder {
	b.isa = isa
	return b
}

// WithLogger sets the logger that receives progress and trace records.
func (b TranslatorBuilder) WithLogger(logger *slog.Logger) TranslatorBuilder {
	b.logger = logger
	return b
}

// Build creates a translator.
func (b TranslatorBuilder) Build() *Translator {
	if b.isa == nil {
		panic("translator needs an instruction set")
	}

	logger := b.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Translator{
		isa:     b.isa,
		logger:  logger,
		program: Program{Language: b.isa.Name()},
	}
}
