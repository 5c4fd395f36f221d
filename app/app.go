package app

import (
	"sparkcalc/hal"
	"sparkcalc/internal/buildinfo"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/services/logger"
	"sparkcalc/sparkos/services/term"
	"sparkcalc/sparkos/services/termkbd"
	timesvc "sparkcalc/sparkos/services/time"
	calctask "sparkcalc/sparkos/tasks/calc"
	"sparkcalc/sparkos/tasks/calcscript"
)

type system struct {
	k *kernel.Kernel
}

type Config struct {
	// Tape prints completed calculations to a tinyterm terminal instead of
	// drawing the calculator widget.
	Tape bool

	// Script is typed into the calculator at boot, one button per rune.
	Script string
}

// New initializes and starts the OS with default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// Run starts the OS and blocks forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, Config{})
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	_ = newSystem(h, cfg)
	return func() error { return nil }
}

func RunWithConfig(h hal.HAL, cfg Config) {
	_ = NewWithConfig(h, cfg)
	select {}
}

func newSystem(h hal.HAL, cfg Config) *system {
	bootDiagStart(h)
	installPanicHandler(h)
	if l := h.Logger(); l != nil {
		l.WriteLineString("spark calc " + buildinfo.Short())
	}

	k := kernel.New()

	bootScreen(h, "endpoints")
	logEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	timeEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	calcEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)

	logSend := logEP.Restrict(kernel.RightSend)
	timeSend := timeEP.Restrict(kernel.RightSend)
	calcSend := calcEP.Restrict(kernel.RightSend)

	bootScreen(h, "services")
	k.AddTask(logger.New(h.Logger(), logEP.Restrict(kernel.RightRecv)))
	k.AddTask(timesvc.New(timeEP.Restrict(kernel.RightRecv)))
	k.AddTask(termkbd.NewInput(h.Input(), calcSend))

	bootScreen(h, "calc")
	if cfg.Tape {
		termEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
		k.AddTask(term.New(h.Display(), termEP.Restrict(kernel.RightRecv)))
		k.AddTask(calctask.NewTape(calcEP.Restrict(kernel.RightRecv), logSend, timeSend, termEP.Restrict(kernel.RightSend)))
	} else {
		k.AddTask(calctask.New(h.Display(), calcEP.Restrict(kernel.RightRecv), logSend, timeSend))
	}

	if cfg.Script != "" {
		k.AddTask(calcscript.New(calcSend, logSend, timeSend, cfg.Script))
	}

	if ht := h.Time(); ht != nil {
		if ch := ht.Ticks(); ch != nil {
			go func() {
				for seq := range ch {
					k.TickTo(seq)
				}
			}()
		}
	}

	return &system{k: k}
}
