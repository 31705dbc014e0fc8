package quotes

import (
	"context"
	"github.com/kurumiimari/bithub/ghttp"
	"github.com/kurumiimari/bithub/log"
	"github.com/pkg/errors"
	"golang.org/x/text/message"
	"gopkg.in/tomb.v2"
	"io"
	"time"
)

var monitorLogger = log.ModuleLogger("quotes")

type Monitor struct {
	fetcher  Fetcher
	interval time.Duration
	out      io.Writer
	printer  *message.Printer
	cycle    int
}

func NewMonitor(fetcher Fetcher, interval time.Duration, out io.Writer, printer *message.Printer) *Monitor {
	return &Monitor{
		fetcher:  fetcher,
		interval: interval,
		out:      out,
		printer:  printer,
	}
}

// Run polls immediately and then on every tick until ctx is done. Failed
// cycles are logged and produce no output.
func (m *Monitor) Run(ctx context.Context) error {
	tmb, tctx := tomb.WithContext(ctx)
	tmb.Go(func() error {
		m.poll(tctx)

		tick := time.NewTicker(m.interval)
		defer tick.Stop()
		for {
			select {
			case <-tick.C:
				m.poll(tctx)
			case <-tmb.Dying():
				return nil
			}
		}
	})
	err := tmb.Wait()
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

func (m *Monitor) poll(ctx context.Context) {
	m.cycle++
	lgr := monitorLogger.Child("cycle", m.cycle)

	q, err := m.fetcher.Fetch(ctx)
	if err != nil {
		if ctx.Err() == nil {
			lgr.Warning("skipping quote cycle", "status", ghttp.StatusCode(err), "err", err)
		}
		return
	}
	lgr.Debug("fetched quotes", "indices", len(q.Indices))
	if _, err := io.WriteString(m.out, "\n"+Format(q, m.printer)); err != nil {
		lgr.Error("error writing quotes", "err", err)
	}
}
