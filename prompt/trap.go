package prompt

import (
	"context"
	"github.com/kurumiimari/bithub/log"
	"gopkg.in/tomb.v2"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var trapLogger = log.ModuleLogger("prompt")

type scope struct {
	cancel context.CancelFunc
}

// Trap turns interrupt signals into context cancellation. Each signal
// cancels only the innermost open scope, so an interrupt inside a mode ends
// the mode and an interrupt at the menu ends the program.
type Trap struct {
	signals <-chan os.Signal
	scopes  []*scope
	stop    func()
	tmb     *tomb.Tomb
	mtx     sync.Mutex
}

func NewTrap(signals <-chan os.Signal) *Trap {
	t := &Trap{
		signals: signals,
		stop:    func() {},
		tmb:     new(tomb.Tomb),
	}
	t.tmb.Go(t.listen)
	return t
}

// NotifyTrap traps SIGINT and SIGTERM for the current process.
func NotifyTrap() *Trap {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	t := NewTrap(ch)
	t.stop = func() {
		signal.Stop(ch)
	}
	return t
}

// Scope opens a new innermost scope. The returned release func closes it
// and must always be called.
func (t *Trap) Scope(parent context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(parent)
	s := &scope{cancel: cancel}

	t.mtx.Lock()
	t.scopes = append(t.scopes, s)
	t.mtx.Unlock()

	return ctx, func() {
		t.remove(s)
		cancel()
	}
}

func (t *Trap) Stop() error {
	t.stop()
	t.tmb.Kill(nil)
	return t.tmb.Wait()
}

func (t *Trap) listen() error {
	for {
		select {
		case sig := <-t.signals:
			t.interrupt(sig)
		case <-t.tmb.Dying():
			return nil
		}
	}
}

func (t *Trap) interrupt(sig os.Signal) {
	t.mtx.Lock()
	n := len(t.scopes)
	if n == 0 {
		t.mtx.Unlock()
		trapLogger.Debug("signal with no open scope", "signal", sig)
		return
	}
	s := t.scopes[n-1]
	t.scopes = t.scopes[:n-1]
	t.mtx.Unlock()

	trapLogger.Debug("interrupting scope", "signal", sig, "depth", n)
	s.cancel()
}

func (t *Trap) remove(s *scope) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	for i, open := range t.scopes {
		if open == s {
			t.scopes = append(t.scopes[:i], t.scopes[i+1:]...)
			return
		}
	}
}
