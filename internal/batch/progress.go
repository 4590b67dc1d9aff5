package batch

import (
	"time"

	"github.com/schollz/progressbar/v3"
)

type progressTicker interface {
	Add(int) error
	Finish() error
}

func (r *Runner) newBar(total int) progressTicker {
	if r.Progress == nil || total == 0 {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.Progress),
		progressbar.OptionSetDescription("converting"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionThrottle(65*time.Millisecond),
	)
}

func tick(bar progressTicker) {
	if bar == nil {
		return
	}
	_ = bar.Add(1)
}

func finishBar(bar progressTicker) {
	if bar == nil {
		return
	}
	_ = bar.Finish()
}
